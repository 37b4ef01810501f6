package session

import "errors"

// ErrUnauthenticated is returned by [Session.RequireToken] when an
// authenticated operation is attempted without a token.
var ErrUnauthenticated = errors.New("no auth token set")
