package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/kairos-agro/kairos-server/internal/logger"
	"github.com/kairos-agro/kairos-server/internal/service"
	"github.com/kairos-agro/kairos-server/internal/store"
	"github.com/kairos-agro/kairos-server/internal/utils"
	"github.com/kairos-agro/kairos-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerProducerFn func(ctx context.Context, request models.RegisterProducerRequest) (models.Producer, error)
	loginFn            func(ctx context.Context, email, password string) (models.Producer, error)
	createTokenFn      func(ctx context.Context, producer models.Producer) (models.Token, error)
	parseTokenFn       func(ctx context.Context, tokenString string) (models.Token, error)
	resolveProducerFn  func(ctx context.Context, id uuid.UUID) (models.Producer, error)
}

func (m *mockAuthService) RegisterProducer(ctx context.Context, request models.RegisterProducerRequest) (models.Producer, error) {
	return m.registerProducerFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.Producer, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, producer models.Producer) (models.Token, error) {
	return m.createTokenFn(ctx, producer)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) ResolveProducer(ctx context.Context, id uuid.UUID) (models.Producer, error) {
	return m.resolveProducerFn(ctx, id)
}

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{AuthService: auth}, logger.Nop())
}

// injectNopLogger puts a nop logger into the request context so handlers
// that call logger.FromRequest stay silent in tests.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func decodeTokenResponse(t *testing.T, rr *httptest.ResponseRecorder) models.TokenResponse {
	t.Helper()
	var resp models.TokenResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func decodeErrorResponse(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func stubToken(signed string, expiresIn int64) models.Token {
	return models.Token{SignedString: signed, ExpiresIn: expiresIn}
}

func TestRegister_Success(t *testing.T) {
	producerID := uuid.New()
	auth := &mockAuthService{
		registerProducerFn: func(_ context.Context, request models.RegisterProducerRequest) (models.Producer, error) {
			return models.Producer{ID: producerID, Email: request.Email, IsActive: true}, nil
		},
		createTokenFn: func(_ context.Context, producer models.Producer) (models.Token, error) {
			assert.Equal(t, producerID, producer.ID)
			return stubToken("signed.jwt.token", 86400), nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	body := `{"full_name":"Ana García","email":"a@x.com","password":"p4ss"}`
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body)))
	rr := httptest.NewRecorder()

	h.register(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	resp := decodeTokenResponse(t, rr)
	assert.Equal(t, "signed.jwt.token", resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(86400), resp.ExpiresIn)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	auth := &mockAuthService{
		registerProducerFn: func(_ context.Context, _ models.RegisterProducerRequest) (models.Producer, error) {
			return models.Producer{}, store.ErrEmailAlreadyExists
		},
	}
	h := newHandlerWithAuth(t, auth)

	body := `{"full_name":"Ana García","email":"a@x.com","password":"p4ss"}`
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body)))
	rr := httptest.NewRecorder()

	h.register(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Email already exists", decodeErrorResponse(t, rr).Error)
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not json")))
	rr := httptest.NewRecorder()

	h.register(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLogin_Success(t *testing.T) {
	producerID := uuid.New()
	auth := &mockAuthService{
		loginFn: func(_ context.Context, email, password string) (models.Producer, error) {
			assert.Equal(t, "a@x.com", email)
			assert.Equal(t, "p4ss", password)
			return models.Producer{ID: producerID, IsActive: true}, nil
		},
		createTokenFn: func(_ context.Context, _ models.Producer) (models.Token, error) {
			return stubToken("signed.jwt.token", 86400), nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	body := `{"email":"a@x.com","password":"p4ss"}`
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body)))
	rr := httptest.NewRecorder()

	h.login(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decodeTokenResponse(t, rr)
	assert.Equal(t, "signed.jwt.token", resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(86400), resp.ExpiresIn)
}

// The login rejection carries no hint of whether the account exists: the
// body is the fixed string "Invalid credentials" in every credential
// failure mode.
func TestLogin_BadCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.Producer, error) {
			return models.Producer{}, service.ErrInvalidCredentials
		},
	}
	h := newHandlerWithAuth(t, auth)

	body := `{"email":"a@x.com","password":"wrong"}`
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body)))
	rr := httptest.NewRecorder()

	h.login(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid credentials", decodeErrorResponse(t, rr).Error)
}

func TestLogout_Acknowledges(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
	rr := httptest.NewRecorder()

	h.logout(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Logged out successfully", resp["message"])
}

func TestMe_ReturnsLivePrincipal(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	producer := models.Producer{ID: uuid.New(), FullName: "Ana García", Email: "a@x.com", IsActive: true}

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	req = req.WithContext(utils.WithProducer(req.Context(), producer))
	rr := httptest.NewRecorder()

	h.me(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp models.Producer
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, producer.ID, resp.ID)
	assert.Equal(t, producer.Email, resp.Email)
}

// tokenWithSubject builds a models.Token whose claims carry the given
// producer ID as subject, the way ParseToken would return it.
func tokenWithSubject(producerID uuid.UUID) models.Token {
	return models.Token{
		SignedString: "stub",
		Claims: models.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: producerID.String()},
		},
		ProducerID: producerID,
	}
}
