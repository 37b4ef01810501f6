package models

// HistoryEntry is a single stored line of a conversation. Entries are
// immutable once appended to the history file.
type HistoryEntry struct {
	// Contact is the other party of the conversation the entry belongs to.
	Contact string `json:"contact"`
	// Outgoing is true for messages sent by the owner, false for received ones.
	Outgoing bool `json:"outgoing"`
	// Message is the plain message text.
	Message string `json:"message"`
	// Timestamp is the local arrival time in Unix milliseconds. The server
	// does not transmit timestamps, so this is always client-assigned.
	Timestamp int64 `json:"timestamp"`
}
