package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kairos-agro/kairos-server/internal/config"
	"github.com/kairos-agro/kairos-server/internal/logger"
	"github.com/kairos-agro/kairos-server/internal/store"
	"github.com/kairos-agro/kairos-server/internal/utils"
	"github.com/kairos-agro/kairos-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProducerRepository implements store.ProducerRepository for unit tests.
// Each method field can be overridden per test case.
type mockProducerRepository struct {
	createProducerFn      func(ctx context.Context, producer models.Producer) (models.Producer, error)
	findProducerByEmailFn func(ctx context.Context, email string) (models.Producer, error)
	findProducerByIDFn    func(ctx context.Context, id uuid.UUID) (models.Producer, error)
	listProducersFn       func(ctx context.Context, filter models.ProducerFilter) ([]models.Producer, error)
	updateProducerFn      func(ctx context.Context, id uuid.UUID, update models.ProducerUpdate) (models.Producer, error)
	deleteProducerFn      func(ctx context.Context, id uuid.UUID) error
}

func (m *mockProducerRepository) CreateProducer(ctx context.Context, producer models.Producer) (models.Producer, error) {
	return m.createProducerFn(ctx, producer)
}

func (m *mockProducerRepository) FindProducerByEmail(ctx context.Context, email string) (models.Producer, error) {
	return m.findProducerByEmailFn(ctx, email)
}

func (m *mockProducerRepository) FindProducerByID(ctx context.Context, id uuid.UUID) (models.Producer, error) {
	return m.findProducerByIDFn(ctx, id)
}

func (m *mockProducerRepository) ListProducers(ctx context.Context, filter models.ProducerFilter) ([]models.Producer, error) {
	return m.listProducersFn(ctx, filter)
}

func (m *mockProducerRepository) UpdateProducer(ctx context.Context, id uuid.UUID, update models.ProducerUpdate) (models.Producer, error) {
	return m.updateProducerFn(ctx, id, update)
}

func (m *mockProducerRepository) DeleteProducer(ctx context.Context, id uuid.UUID) error {
	return m.deleteProducerFn(ctx, id)
}

func newAuthService(repo store.ProducerRepository) AuthService {
	return NewAuthService(repo, config.App{
		TokenSignKey:    "test-sign-key",
		TokenTTLSeconds: 86400,
	}, logger.Nop())
}

func TestRegisterProducer_Success(t *testing.T) {
	var stored models.Producer
	repo := &mockProducerRepository{
		createProducerFn: func(_ context.Context, p models.Producer) (models.Producer, error) {
			stored = p
			p.ID = uuid.New()
			p.IsActive = true
			p.Status = models.ProducerStatusPending
			return p, nil
		},
	}
	svc := newAuthService(repo)

	registered, err := svc.RegisterProducer(context.Background(), models.RegisterProducerRequest{
		FullName: "Ana García",
		Email:    "a@x.com",
		Password: "p4ss",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, registered.ID)
	assert.True(t, registered.IsActive)
	assert.Equal(t, models.ProducerStatusPending, registered.Status)

	// the plaintext never crosses the store boundary
	assert.NotEqual(t, "p4ss", stored.PasswordHash)
	match, err := utils.VerifyPassword("p4ss", stored.PasswordHash)
	require.NoError(t, err)
	assert.True(t, match)

	// language preference defaults when the request omits it
	assert.Equal(t, "es", stored.LanguagePreference)
}

func TestRegisterProducer_InvalidData(t *testing.T) {
	svc := newAuthService(&mockProducerRepository{})

	tests := []struct {
		name    string
		request models.RegisterProducerRequest
	}{
		{"empty full name", models.RegisterProducerRequest{Email: "a@x.com", Password: "p"}},
		{"empty email", models.RegisterProducerRequest{FullName: "Ana", Password: "p"}},
		{"empty password", models.RegisterProducerRequest{FullName: "Ana", Email: "a@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterProducer(context.Background(), tt.request)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestRegisterProducer_DuplicateEmail(t *testing.T) {
	repo := &mockProducerRepository{
		createProducerFn: func(_ context.Context, _ models.Producer) (models.Producer, error) {
			return models.Producer{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newAuthService(repo)

	_, err := svc.RegisterProducer(context.Background(), models.RegisterProducerRequest{
		FullName: "Ana García",
		Email:    "a@x.com",
		Password: "p4ss",
	})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	hash, err := utils.HashPassword("p4ss")
	require.NoError(t, err)

	producerID := uuid.New()
	repo := &mockProducerRepository{
		findProducerByEmailFn: func(_ context.Context, email string) (models.Producer, error) {
			require.Equal(t, "a@x.com", email)
			return models.Producer{ID: producerID, Email: email, PasswordHash: hash, IsActive: true}, nil
		},
	}
	svc := newAuthService(repo)

	found, err := svc.Login(context.Background(), "a@x.com", "p4ss")
	require.NoError(t, err)
	assert.Equal(t, producerID, found.ID)
}

// Unknown email and wrong password must surface the identical error so a
// caller cannot probe which accounts exist.
func TestLogin_EnumerationSafety(t *testing.T) {
	hash, err := utils.HashPassword("correct")
	require.NoError(t, err)

	repo := &mockProducerRepository{
		findProducerByEmailFn: func(_ context.Context, email string) (models.Producer, error) {
			if email == "known@x.com" {
				return models.Producer{ID: uuid.New(), Email: email, PasswordHash: hash}, nil
			}
			return models.Producer{}, store.ErrProducerNotFound
		},
	}
	svc := newAuthService(repo)

	_, unknownEmailErr := svc.Login(context.Background(), "unknown@x.com", "anything")
	_, wrongPasswordErr := svc.Login(context.Background(), "known@x.com", "wrong")

	assert.ErrorIs(t, unknownEmailErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPasswordErr, ErrInvalidCredentials)
	assert.Equal(t, unknownEmailErr.Error(), wrongPasswordErr.Error())
}

// A corrupt stored hash is an authentication failure, not an internal
// error: the client learns nothing about the account's state.
func TestLogin_MalformedStoredHash(t *testing.T) {
	repo := &mockProducerRepository{
		findProducerByEmailFn: func(_ context.Context, email string) (models.Producer, error) {
			return models.Producer{ID: uuid.New(), Email: email, PasswordHash: "corrupt"}, nil
		},
	}
	svc := newAuthService(repo)

	_, err := svc.Login(context.Background(), "a@x.com", "p4ss")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateToken_DefaultTTL(t *testing.T) {
	svc := newAuthService(&mockProducerRepository{})

	token, err := svc.CreateToken(context.Background(), models.Producer{ID: uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, int64(86400), token.ExpiresIn)
	assert.NotEmpty(t, token.SignedString)
}

func TestCreateToken_ParseToken_RoundTrip(t *testing.T) {
	svc := newAuthService(&mockProducerRepository{})
	producer := models.Producer{ID: uuid.New()}

	issued, err := svc.CreateToken(context.Background(), producer)
	require.NoError(t, err)

	parsed, err := svc.ParseToken(context.Background(), issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, producer.ID, parsed.ProducerID)
}

func TestParseToken_Expired(t *testing.T) {
	producerID := uuid.New()
	expired, err := utils.GenerateJWTToken(producerID, -time.Hour, "test-sign-key")
	require.NoError(t, err)

	svc := newAuthService(&mockProducerRepository{})

	_, err = svc.ParseToken(context.Background(), expired.SignedString)
	assert.ErrorIs(t, err, utils.ErrTokenExpired)
}

func TestResolveProducer_Active(t *testing.T) {
	producerID := uuid.New()
	repo := &mockProducerRepository{
		findProducerByIDFn: func(_ context.Context, id uuid.UUID) (models.Producer, error) {
			require.Equal(t, producerID, id)
			return models.Producer{ID: id, IsActive: true}, nil
		},
	}
	svc := newAuthService(repo)

	producer, err := svc.ResolveProducer(context.Background(), producerID)
	require.NoError(t, err)
	assert.Equal(t, producerID, producer.ID)
}

func TestResolveProducer_Inactive(t *testing.T) {
	repo := &mockProducerRepository{
		findProducerByIDFn: func(_ context.Context, id uuid.UUID) (models.Producer, error) {
			return models.Producer{ID: id, IsActive: false}, nil
		},
	}
	svc := newAuthService(repo)

	_, err := svc.ResolveProducer(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrAccountInactive)
}

func TestResolveProducer_NotFound(t *testing.T) {
	repo := &mockProducerRepository{
		findProducerByIDFn: func(_ context.Context, _ uuid.UUID) (models.Producer, error) {
			return models.Producer{}, store.ErrProducerNotFound
		},
	}
	svc := newAuthService(repo)

	_, err := svc.ResolveProducer(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrProducerNotFound)
}
