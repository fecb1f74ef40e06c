// Package utils provides helper utilities shared across the application:
// typed context keys for the authenticated principal, JWT issuance and
// validation, password hashing, and HTTP response writing.
package utils

import (
	"context"

	"github.com/kairos-agro/kairos-server/models"
)

// contextKey is a private type for context keys. Using a dedicated type
// instead of a plain string prevents collisions with other packages storing
// values in the same context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey is the key under which the auth middleware stores the
// validated token claims of the current request.
var ClaimsCtxKey = contextKey("claims")

// ProducerCtxKey is the key under which the principal-resolving auth
// middleware stores the live producer record of the current request.
var ProducerCtxKey = contextKey("producer")

// WithClaims returns a copy of ctx carrying the validated token claims.
func WithClaims(ctx context.Context, claims models.Claims) context.Context {
	return context.WithValue(ctx, ClaimsCtxKey, claims)
}

// WithProducer returns a copy of ctx carrying the resolved producer.
func WithProducer(ctx context.Context, producer models.Producer) context.Context {
	return context.WithValue(ctx, ProducerCtxKey, producer)
}

// ClaimsFromContext retrieves the validated token claims from the context.
// ok is false when the request passed through no auth middleware, which is a
// wiring defect in the route table rather than a client-facing condition.
func ClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.Claims)
	return claims, ok
}

// ProducerFromContext retrieves the resolved producer from the context.
// ok is false when the route is not behind the principal-resolving
// middleware.
func ProducerFromContext(ctx context.Context) (models.Producer, bool) {
	producer, ok := ctx.Value(ProducerCtxKey).(models.Producer)
	return producer, ok
}
