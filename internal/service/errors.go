package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request body is missing
	// required fields.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is the single error returned for every failed
	// login, whether the email is unknown or the password does not match.
	// Callers must never be able to distinguish the two cases, so account
	// existence cannot be probed through the login endpoint.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenCreationFailed is returned when signing a new token fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrAccountInactive is returned by principal resolution when the
	// producer exists but has been deactivated after the token was issued.
	ErrAccountInactive = errors.New("producer account is inactive")

	// ErrAccessDenied is returned when an authenticated producer operates
	// on a resource owned by a different producer.
	ErrAccessDenied = errors.New("access to another producer's resource")
)
