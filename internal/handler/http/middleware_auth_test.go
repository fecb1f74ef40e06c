package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/kairos-agro/kairos-server/internal/service"
	"github.com/kairos-agro/kairos-server/internal/store"
	"github.com/kairos-agro/kairos-server/internal/utils"
	"github.com/kairos-agro/kairos-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- getTokenFromAuthHeader unit tests ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid Bearer token",
			header:    "Bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:    "missing token part",
			header:  "Bearer",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "empty header",
			header:  "",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "non-Bearer scheme is rejected",
			header:  "Basic dXNlcjpwYXNz",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "scheme with empty token",
			header:  "Bearer ",
			wantErr: ErrEmptyToken,
		},
		{
			name:      "extra parts — second part is used",
			header:    "Bearer token extra-part",
			wantToken: "token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

// ---- helpers ----

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/test", nil))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ---- token-only gate ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	producerID := uuid.New()

	tests := []struct {
		name           string
		authHeader     string
		parseTokenFn   func(ctx context.Context, s string) (models.Token, error)
		expectedStatus int
		nextCalled     bool
	}{
		{
			name:           "empty Authorization header → 401",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed header → 401",
			authHeader:     "Bearer",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token → 401",
			authHeader: "Bearer expired.token",
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{}, utils.ErrTokenExpired
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed token → 401",
			authHeader: "Bearer garbage",
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{}, utils.ErrTokenMalformed
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token → next handler called",
			authHeader: "Bearer valid.token",
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return tokenWithSubject(producerID), nil
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuth(t, &mockAuthService{parseTokenFn: tt.parseTokenFn})

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true

				claims, ok := utils.ClaimsFromContext(r.Context())
				require.True(t, ok, "claims must be attached to the context")
				sub, err := claims.ProducerID()
				require.NoError(t, err)
				assert.Equal(t, producerID, sub)

				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
		})
	}
}

// ---- principal-resolving gate ----

func executeAuthProducer(h *Handler, token models.Token, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.authProducer(next)
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/test", nil))
	req = req.WithContext(utils.WithClaims(req.Context(), token.Claims))
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func TestAuthProducer_AttachesLivePrincipal(t *testing.T) {
	producerID := uuid.New()
	h := newHandlerWithAuth(t, &mockAuthService{
		resolveProducerFn: func(_ context.Context, id uuid.UUID) (models.Producer, error) {
			require.Equal(t, producerID, id)
			return models.Producer{ID: id, IsActive: true}, nil
		},
	})

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true

		producer, ok := utils.ProducerFromContext(r.Context())
		require.True(t, ok, "producer must be attached to the context")
		assert.Equal(t, producerID, producer.ID)

		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuthProducer(h, tokenWithSubject(producerID), next)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, nextCalled)
}

func TestAuthProducer_PrincipalNotFound(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{
		resolveProducerFn: func(_ context.Context, _ uuid.UUID) (models.Producer, error) {
			return models.Producer{}, store.ErrProducerNotFound
		},
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("next handler must not be called")
	})

	rr := executeAuthProducer(h, tokenWithSubject(uuid.New()), next)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Producer not found", decodeErrorResponse(t, rr).Error)
}

func TestAuthProducer_InactiveAccount(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{
		resolveProducerFn: func(_ context.Context, _ uuid.UUID) (models.Producer, error) {
			return models.Producer{}, service.ErrAccountInactive
		},
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("next handler must not be called")
	})

	rr := executeAuthProducer(h, tokenWithSubject(uuid.New()), next)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "Producer account is inactive", decodeErrorResponse(t, rr).Error)
}

func TestAuthProducer_MissingClaims(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	middleware := h.authProducer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("next handler must not be called")
	}))
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/test", nil))
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// A still-unexpired token issued before deactivation keeps working on the
// token-only gate but is rejected by the principal-resolving gate: the
// documented staleness trade-off between the two variants.
func TestGates_StalenessTradeOff(t *testing.T) {
	producerID := uuid.New()
	staleToken := tokenWithSubject(producerID)

	h := newHandlerWithAuth(t, &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return staleToken, nil // the token itself is still valid
		},
		resolveProducerFn: func(_ context.Context, _ uuid.UUID) (models.Producer, error) {
			return models.Producer{}, service.ErrAccountInactive // the account is not
		},
	})

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tokenOnly := executeAuth(h, "Bearer stale.token", ok)
	assert.Equal(t, http.StatusOK, tokenOnly.Code, "token-only gate admits the stale token")

	principalResolving := executeAuthProducer(h, staleToken, ok)
	assert.Equal(t, http.StatusForbidden, principalResolving.Code, "principal-resolving gate rejects immediately")
}
