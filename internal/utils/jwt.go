package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/kairos-agro/kairos-server/models"
)

// Sentinel errors returned by ValidateAndParseJWTToken. Callers match them
// with errors.Is to decide how to reject the request.
var (
	// ErrTokenExpired is returned when the token's exp claim is in the past.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenMalformed is returned when the token string cannot be parsed,
	// the signature does not verify, or a required claim is missing or
	// unusable.
	ErrTokenMalformed = errors.New("token is malformed or has invalid signature")

	// ErrUnexpectedSigningMethod is returned when the token was signed with
	// an algorithm other than HMAC-SHA256.
	ErrUnexpectedSigningMethod = errors.New("unexpected token signing method")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT for the given producer.
//
// The token carries the following registered claims:
//   - Subject   (sub): the producer ID in canonical UUID form
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// Returns an error if tokenDuration is zero, signKey is empty, or signing
// fails.
func GenerateJWTToken(producerID uuid.UUID, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT token")
	}

	now := time.Now()
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   producerID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error signing JWT token: %w", err)
	}

	return models.Token{
		SignedString: tokenString,
		Claims:       claims,
		ProducerID:   producerID,
		ExpiresIn:    int64(tokenDuration.Seconds()),
	}, nil
}

// ValidateAndParseJWTToken verifies the signature of tokenString against
// signKey, checks the expiry claim, and extracts the producer ID from the
// subject claim.
//
// Validation accepts HMAC-SHA256 signatures only; tokens signed with any
// other algorithm fail with ErrUnexpectedSigningMethod. No clock-skew leeway
// is applied. Validation is a pure computation: accepting a token requires
// no store lookup.
//
// Returns the decoded token or one of ErrTokenExpired, ErrTokenMalformed,
// ErrUnexpectedSigningMethod.
func ValidateAndParseJWTToken(tokenString, signKey string) (models.Token, error) {
	var claims models.Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return models.Token{}, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid) && isAlgMismatch(err):
			return models.Token{}, ErrUnexpectedSigningMethod
		default:
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
		}
	}

	producerID, err := claims.ProducerID()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}

	return models.Token{
		SignedString: tokenString,
		Claims:       claims,
		ProducerID:   producerID,
	}, nil
}

// isAlgMismatch reports whether the validation failure was caused by the
// signing-method allowlist rather than a broken signature.
func isAlgMismatch(err error) bool {
	return errors.Is(err, jwt.ErrTokenSignatureInvalid) &&
		!errors.Is(err, jwt.ErrSignatureInvalid)
}
