// Package auth provides session token issuance/validation and password
// hashing for the API's authentication gate.
package auth

import "errors"

// Authentication errors.
var (
	// ErrInvalidToken is returned when a session token is malformed or its
	// signature does not verify.
	ErrInvalidToken = errors.New("invalid session token")

	// ErrExpiredToken is returned when a session token has expired.
	ErrExpiredToken = errors.New("session token expired")

	// ErrTokenNotYetValid is returned when a session token's validity window
	// has not started yet.
	ErrTokenNotYetValid = errors.New("session token not yet valid")

	// ErrInvalidCredentials is returned when an email/password pair does not
	// match a stored user. Deliberately indistinguishable between unknown
	// email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
