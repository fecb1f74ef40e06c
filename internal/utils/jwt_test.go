package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSignKey = "test-sign-key"

func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	producerID := uuid.New()

	issued, err := GenerateJWTToken(producerID, 24*time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, issued.SignedString)
	assert.Equal(t, producerID, issued.ProducerID)
	assert.Equal(t, int64(86400), issued.ExpiresIn)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey)
	require.NoError(t, err)
	assert.Equal(t, producerID, parsed.ProducerID)
	assert.Equal(t, producerID.String(), parsed.Claims.Subject)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	_, err := GenerateJWTToken(uuid.New(), 0, testSignKey)
	assert.Error(t, err)

	_, err = GenerateJWTToken(uuid.New(), time.Hour, "")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issued, err := GenerateJWTToken(uuid.New(), -time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	issued, err := GenerateJWTToken(uuid.New(), time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "a-different-key")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", testSignKey)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

// A token signed with an algorithm outside the HS256 allowlist must be
// rejected as such, even when the signature itself would verify.
func TestValidateAndParseJWTToken_UnexpectedSigningMethod(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, testSignKey)
	assert.ErrorIs(t, err, ErrUnexpectedSigningMethod)
}

// The subject claim must parse as a UUID; anything else is a malformed
// token even if the signature verifies.
func TestValidateAndParseJWTToken_NonUUIDSubject(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, testSignKey)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

// Validation is a pure computation: running it twice on the same token
// yields identical claims both times.
func TestValidateAndParseJWTToken_Idempotent(t *testing.T) {
	issued, err := GenerateJWTToken(uuid.New(), time.Hour, testSignKey)
	require.NoError(t, err)

	first, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey)
	require.NoError(t, err)

	second, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey)
	require.NoError(t, err)

	assert.Equal(t, first.Claims, second.Claims)
	assert.Equal(t, first.ProducerID, second.ProducerID)
}
