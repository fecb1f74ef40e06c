// Package service contains the application's business logic, sitting
// between the HTTP transport and the persistence layer.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kairos-agro/kairos-server/internal/config"
	"github.com/kairos-agro/kairos-server/internal/logger"
	"github.com/kairos-agro/kairos-server/internal/store"
	"github.com/kairos-agro/kairos-server/internal/utils"
	"github.com/kairos-agro/kairos-server/models"
)

// defaultLanguage is used when a registration request does not state a
// language preference.
const defaultLanguage = "es"

// authService is the concrete implementation of AuthService. It handles
// producer registration, credential verification, and the bearer-token
// lifecycle, using a ProducerRepository for persistence, bcrypt for
// password hashing, and HMAC-SHA256 signed JWTs as tokens.
type authService struct {
	// producerRepository is the credential store used to create and look
	// up producer accounts.
	producerRepository store.ProducerRepository

	// tokenSignKey is the symmetric secret used to sign and verify bearer
	// tokens. Injected once from configuration at startup; there is no
	// other source of the secret in the process.
	tokenSignKey string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// ProducerRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(producerRepository store.ProducerRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		producerRepository: producerRepository,
		tokenSignKey:       cfg.TokenSignKey,
		tokenDuration:      cfg.TokenDuration(),
		logger:             logger,
	}
}

// RegisterProducer creates a new producer account.
//
// The password is hashed with bcrypt before the record is handed to the
// repository; the plaintext never crosses the store boundary. Email
// uniqueness is enforced exclusively by the database constraint: the
// service performs no existence pre-check, so concurrent registrations of
// the same email cannot race past an advisory lookup — exactly one of them
// receives store.ErrEmailAlreadyExists.
//
// Returns the persisted producer (with server-assigned ID, active flag and
// pending status) or:
//   - ErrInvalidDataProvided if full name, email, or password is empty.
//   - store.ErrEmailAlreadyExists if the email is already registered.
//   - A wrapped internal error if hashing or the insert fails.
func (a *authService) RegisterProducer(ctx context.Context, request models.RegisterProducerRequest) (models.Producer, error) {
	log := logger.FromContext(ctx)

	if request.FullName == "" || request.Email == "" || request.Password == "" {
		log.Error().Str("email", request.Email).Msg("invalid registration data provided")
		return models.Producer{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Producer{}, fmt.Errorf("password hashing failed: %w", err)
	}

	language := request.LanguagePreference
	if language == "" {
		language = defaultLanguage
	}

	registered, err := a.producerRepository.CreateProducer(ctx, models.Producer{
		FullName:           request.FullName,
		Email:              request.Email,
		PasswordHash:       passwordHash,
		FarmName:           request.FarmName,
		Phone:              request.Phone,
		LanguagePreference: language,
	})
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("producer creation ended with error")
		return models.Producer{}, fmt.Errorf("producer creation ended with error: %w", err)
	}

	return registered, nil
}

// Login authenticates an existing producer.
//
// It looks up the account by email and verifies the password against the
// stored bcrypt hash. Both failure modes — unknown email and password
// mismatch — collapse into the same ErrInvalidCredentials, and a corrupt
// stored hash is treated the same way (logged, never surfaced), so the
// error tells the caller nothing about whether the account exists.
//
// Store failures other than a missing record propagate as internal errors.
func (a *authService) Login(ctx context.Context, email, password string) (models.Producer, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Msg("invalid login data provided")
		return models.Producer{}, ErrInvalidDataProvided
	}

	found, err := a.producerRepository.FindProducerByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrProducerNotFound) {
			log.Debug().Str("email", email).Msg("login attempt for unknown email")
			return models.Producer{}, ErrInvalidCredentials
		}

		log.Err(err).Msg("producer search by email failed")
		return models.Producer{}, fmt.Errorf("producer search by email failed: %w", err)
	}

	match, err := utils.VerifyPassword(password, found.PasswordHash)
	if err != nil {
		log.Err(err).Str("producer_id", found.ID.String()).Msg("stored password hash is malformed")
		return models.Producer{}, ErrInvalidCredentials
	}
	if !match {
		log.Debug().Str("producer_id", found.ID.String()).Msg("password mismatch")
		return models.Producer{}, ErrInvalidCredentials
	}

	return found, nil
}

// CreateToken issues a signed bearer token for the given producer.
//
// The token is signed with the configured secret and expires after the
// configured duration; its validity window is reported back through
// Token.ExpiresIn.
func (a *authService) CreateToken(ctx context.Context, producer models.Producer) (models.Token, error) {
	token, err := utils.GenerateJWTToken(producer.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw bearer token string.
//
// It delegates to utils.ValidateAndParseJWTToken, which verifies the
// HMAC-SHA256 signature and the expiry claim. The returned error is one of
// the utils token sentinels (expired, malformed, unexpected signing
// method); the transport layer collapses all of them into a single
// unauthorized response so validation internals never leak to clients.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey)
	if err != nil {
		return models.Token{}, err
	}

	return token, nil
}

// ResolveProducer re-fetches the live producer record for a validated
// token subject. It is the store round-trip behind the principal-resolving
// gate: the price of one lookup per request buys immediate effect of
// account deactivation, which pure token validation cannot provide.
//
// Returns store.ErrProducerNotFound if the subject no longer resolves, or
// ErrAccountInactive if the account's active flag has been cleared.
func (a *authService) ResolveProducer(ctx context.Context, id uuid.UUID) (models.Producer, error) {
	log := logger.FromContext(ctx)

	producer, err := a.producerRepository.FindProducerByID(ctx, id)
	if err != nil {
		log.Err(err).Str("producer_id", id.String()).Msg("token subject did not resolve to a producer")
		return models.Producer{}, err
	}

	if !producer.IsActive {
		log.Debug().Str("producer_id", id.String()).Msg("producer account is inactive")
		return models.Producer{}, ErrAccountInactive
	}

	return producer, nil
}
