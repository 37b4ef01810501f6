// SPDX-License-Identifier: Apache-2.0

// Package service implements the chat client's synchronization engine.
//
// The central type is [ChatService]: it owns the logged-in user state, the
// three periodic background tasks (inbox poll, presence refresh, directory
// refresh), and the user-initiated operations that share the same code
// paths. Results are merged into the history ledger and an in-memory
// directory view and published through the [Events] observer; the package
// has no dependency on any particular UI or threading model.
package service

import (
	"context"

	"github.com/fhnw-projects/go-chat-client/models"
)

// ChatService is the client-side session and scheduling engine.
//
// Register, Login, Ping and Send surface failures (Send through a Status
// event); everything that runs on a timer degrades silently to an
// empty/false result with a log line, so a transient network blip never
// halts the background tasks.
type ChatService interface {
	// Ping points the session at serverURL and performs the unauthenticated
	// health check.
	Ping(ctx context.Context, serverURL string) bool

	// Register points the session at serverURL and creates a new account.
	// It returns the server's confirmation payload.
	Register(ctx context.Context, serverURL, username, password string) (string, error)

	// Login points the session at serverURL, authenticates, and validates
	// the issued token with an authenticated ping. When the validation ping
	// fails the token is cleared and the login counts as failed. On success
	// the user becomes the current history owner.
	Login(ctx context.Context, serverURL, username, password string) error

	// Logout stops the background tasks, invalidates the token server-side
	// (best-effort) and clears the local session state.
	Logout(ctx context.Context)

	// CurrentUser returns the logged-in username, or "" before login.
	CurrentUser() string

	// ActiveContact returns the currently selected conversation partner.
	ActiveContact() string

	// SelectContact makes contact the active conversation: its stored
	// history is published immediately and a presence probe for it is
	// issued right away.
	SelectContact(ctx context.Context, contact string)

	// Send delivers text to the active contact. Only a server-confirmed
	// delivery is appended to history and republished; an offline recipient
	// yields a Status event and no history entry.
	Send(ctx context.Context, text string)

	// RefreshDirectory runs the directory refresh immediately, outside the
	// timer schedule.
	RefreshDirectory(ctx context.Context)

	// Start launches the three periodic tasks. A previous run is fully
	// stopped first, so timer generations never overlap. The tasks stop
	// when ctx is cancelled or Stop is called.
	Start(ctx context.Context)

	// Stop cancels the periodic tasks and blocks until they have exited.
	// Tasks already executing finish their tick but discard results instead
	// of publishing into a torn-down UI.
	Stop()
}

// Events receives state-change notifications from the service. All payloads
// are immutable snapshots; implementations decide how to marshal them onto
// a rendering thread.
type Events interface {
	// IncomingMessage fires when a polled message belongs to the active
	// conversation.
	IncomingMessage(contact string, entry models.HistoryEntry)

	// ConversationLoaded replaces the rendered conversation wholesale, after
	// a contact selection or a successful send.
	ConversationLoaded(contact string, entries []models.HistoryEntry)

	// PresenceChanged reports the online state of the active contact.
	PresenceChanged(contact string, online bool)

	// DirectoryUpdated replaces the contact directory and the deduplicated
	// online list.
	DirectoryUpdated(contacts []string, online []string)

	// Status carries a human-readable status line for explicit actions.
	Status(text string, ok bool)
}
