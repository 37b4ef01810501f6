// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer for communicating with the
// remote chat server.
//
// The primary abstraction is [ChatServerAdapter], a stateless typed wrapper
// over the server's REST endpoints. The package ships an HTTP implementation
// ([NewHTTPChatAdapter]) built on resty. The adapter performs no retries and
// no caching; callers are responsible for running it off any UI thread.
//
// Every endpoint may answer with one of two JSON shapes, a wrapped object or
// a bare array. Decoding always tries the wrapped shape first, then the bare
// one, then degrades to an empty result (see decode.go).
package adapter

import (
	"context"

	"github.com/fhnw-projects/go-chat-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/chat_adapter_mock.go -package=mock

// ChatServerAdapter defines typed communication with the chat server.
//
// Operations fall into two groups. Register, Login and SendMessage surface
// transport and server errors to the caller so the UI can show a failure
// message. All remaining operations run unattended on timers and therefore
// swallow errors internally, degrading to false or an empty result with a
// log line.
type ChatServerAdapter interface {
	// Ping performs the unauthenticated GET /ping health check. It reports
	// whether the server answered with HTTP 200; any transport error counts
	// as unreachable.
	Ping(ctx context.Context) bool

	// Register creates a new account via POST /user/register and returns the
	// server's confirmation payload. A non-200 status yields a *ServerError
	// carrying the status code and response body.
	Register(ctx context.Context, creds models.Credentials) (string, error)

	// Login authenticates via POST /user/login, parses the token wrapper from
	// the response body and stores the token in the session. It reports true
	// iff a non-empty token was obtained. A non-200 status yields a
	// *ServerError.
	Login(ctx context.Context, creds models.Credentials) (bool, error)

	// PingWithToken validates the currently held token against the server.
	// Callers use it directly after Login to detect a token that was issued
	// but is already invalid; on false the caller must treat the login as
	// failed and clear the token.
	PingWithToken(ctx context.Context) bool

	// SendMessage delivers text to recipient via POST /chat/send. It reports
	// true only if the server confirms delivery; false means the recipient is
	// offline or unreachable, which is a normal outcome and must not be
	// recorded in history. Without a token it returns
	// [session.ErrUnauthenticated].
	SendMessage(ctx context.Context, recipient, text string) (bool, error)

	// PollMessages drains the pending inbox via POST /chat/poll. The server
	// returns each pending message exactly once, so the caller must persist
	// the result before the next poll. Without a token, or on any transport
	// or decode failure, it returns an empty slice.
	PollMessages(ctx context.Context) []models.Message

	// Logout posts the token for invalidation, best-effort, and always clears
	// the local token afterwards regardless of the server response.
	Logout(ctx context.Context) bool

	// IsUserOnline checks the presence of a single user via POST /user/online.
	// It fails closed: any error, including a missing token, reads as offline.
	IsUserOnline(ctx context.Context, username string) bool

	// FetchAllUsers loads the full user directory via GET /users. The result
	// is deduplicated; any failure yields an empty slice.
	FetchAllUsers(ctx context.Context) []string

	// FetchOnlineUsers loads the currently online users. The primary path is
	// the authenticated POST /user/online; when it cannot be used or fails,
	// the unauthenticated GET /users/online fallback is tried with the same
	// accepted shapes. Both failing yields an empty slice.
	FetchOnlineUsers(ctx context.Context) []string
}
