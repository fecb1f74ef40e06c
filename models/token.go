package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenScheme is the authorization scheme used on the wire
// ("Authorization: Bearer <token>").
const TokenScheme = "Bearer"

// Claims is the payload of an issued bearer token: the producer it was
// issued to (sub) plus the standard issued-at and expiry timestamps.
// Embedding jwt.RegisteredClaims makes it usable directly with the jwt
// parser.
type Claims struct {
	jwt.RegisteredClaims
}

// ProducerID extracts the subject claim and parses it as a producer UUID.
// Returns an error if the claim is missing or is not a valid UUID.
func (c *Claims) ProducerID() (uuid.UUID, error) {
	sub, err := c.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf("error extracting subject from token: %w", err)
	}

	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("error parsing subject as producer ID: %w", err)
	}

	return id, nil
}

// Token is an issued bearer credential: the compact signed string, the
// decoded claims, and the producer ID cached from the subject claim.
type Token struct {
	// SignedString is the compact JWS form (header.payload.signature)
	// transmitted to clients. Excluded from JSON; responses use
	// TokenResponse instead.
	SignedString string `json:"-"`

	// Claims is the decoded payload of the token.
	Claims Claims `json:"-"`

	// ProducerID is the subject claim parsed as a UUID, cached so
	// downstream code does not re-parse the string form.
	ProducerID uuid.UUID `json:"-"`

	// ExpiresIn is the declared validity window in seconds, reported to
	// clients as expires_in.
	ExpiresIn int64 `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the fmt.Stringer interface.
func (t Token) String() string {
	return t.SignedString
}
