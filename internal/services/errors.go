package services

import "errors"

// Sentinel errors for the authentication and authorization taxonomy.
// Callers distinguish them with errors.Is; none of them is retryable.
var (
	// ErrMalformedToken means the credential was absent or not
	// parseable as a signed token.
	ErrMalformedToken = errors.New("malformed token")
	// ErrExpiredToken means the token parsed and its signature checked
	// out, but it is past its expiration.
	ErrExpiredToken = errors.New("token expired")
	// ErrInvalidSignature means the token parsed but was not signed
	// with the configured secret.
	ErrInvalidSignature = errors.New("invalid token signature")
	// ErrUnknownIdentity means the token verified cryptographically
	// but its user id resolves to no existing user.
	ErrUnknownIdentity = errors.New("unknown identity")

	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords on login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrDuplicateUsername is returned on registration conflicts.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrForbidden means the authenticated identity is not permitted
	// to perform the mutation on the resource.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound means the resource id resolves to no record.
	ErrNotFound = errors.New("not found")
	// ErrValidation covers malformed or incomplete input fields.
	ErrValidation = errors.New("validation failed")
)
