package service

import "errors"

var (
	// ErrLoginFailed indicates a login the server accepted without issuing
	// a usable token.
	ErrLoginFailed = errors.New("login failed: no token issued")
	// ErrTokenRejected indicates a freshly issued token that the server
	// refused on the validation ping.
	ErrTokenRejected = errors.New("login failed: token validation failed")
)
