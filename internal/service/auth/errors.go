// Package auth provides token issuance/validation and password hashing
// services for the API.
package auth

import "errors"

// Common authentication errors.
var (
	// ErrInvalidToken is returned when a token is malformed, has an invalid
	// signature, or fails validation for any reason other than expiry.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token is well-formed but expired.
	ErrExpiredToken = errors.New("token expired")
)
