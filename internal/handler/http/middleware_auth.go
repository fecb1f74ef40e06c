// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/kairos-agro/kairos-server/internal/logger"
	"github.com/kairos-agro/kairos-server/internal/service"
	"github.com/kairos-agro/kairos-server/internal/utils"
)

// auth is the token-only authorization gate.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and — on success — stores
// the validated claims in the request context under [utils.ClaimsCtxKey]
// before delegating to the next handler. No store round-trip is performed:
// the claims are trusted for the token's lifetime even if the account has
// been deactivated since issuance.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - the "Authorization" header is absent ([ErrEmptyAuthorizationHeader]);
//   - the header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]);
//   - the token has expired ([utils.ErrTokenExpired]);
//   - the token is malformed, carries an unexpected signing algorithm, or
//     its signature does not verify.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, "Missing authorization header", http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, "Invalid authorization header", http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, utils.ErrTokenExpired):
				log.Err(err).Msg("token expired")
				utils.WriteError(w, "Token expired", http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during parsing token")
				utils.WriteError(w, "Invalid token", http.StatusUnauthorized)
				return
			}
		}

		// Store the validated claims in the context so that downstream
		// handlers can retrieve the subject without re-parsing the token.
		ctx = utils.WithClaims(ctx, token.Claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authProducer is the principal-resolving authorization gate. It must be
// mounted after [Handler.auth].
//
// It re-fetches the producer identified by the claims' subject on every
// request via [service.AuthService.ResolveProducer] and stores the live
// record under [utils.ProducerCtxKey]. The extra store round-trip buys
// freshness: deactivating an account takes effect immediately on these
// routes, while still-valid tokens keep working on token-only routes until
// they expire.
//
// Rejections:
//   - 401 when the subject no longer resolves to a producer;
//   - 403 when the resolved producer's account is inactive.
func (h *Handler) authProducer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		ctx := r.Context()
		claims, ok := utils.ClaimsFromContext(ctx)
		if !ok {
			log.Error().Msg("principal-resolving gate mounted without token gate")
			utils.WriteError(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		producerID, err := claims.ProducerID()
		if err != nil {
			log.Err(err).Msg("token subject is not a valid producer id")
			utils.WriteError(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		producer, err := h.services.AuthService.ResolveProducer(ctx, producerID)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrAccountInactive):
				log.Err(err).Str("producer_id", producerID.String()).Msg("producer account is inactive")
				utils.WriteError(w, "Producer account is inactive", http.StatusForbidden)
				return
			default:
				log.Err(err).Str("producer_id", producerID.String()).Msg("token subject no longer resolves")
				utils.WriteError(w, "Producer not found", http.StatusUnauthorized)
				return
			}
		}

		ctx = utils.WithProducer(ctx, producer)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts or the scheme is not "Bearer".
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 || parts[0] != "Bearer" {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
