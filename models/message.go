// SPDX-License-Identifier: Apache-2.0

package models

// Message is the wire shape shared by /chat/send and /chat/poll.
// Outbound, Username is the recipient and Token authenticates the sender;
// inbound, Username is the sender and the token field is absent.
type Message struct {
	Token    string `json:"token,omitempty"`
	Username string `json:"username"`
	Message  string `json:"message"`
}
