// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/fhnw-projects/go-chat-client/models"
)

const conversationWindow = 18

type chatFocus int

const (
	focusContacts chatFocus = iota
	focusInput
)

// chatModel is the main screen: contact directory on the left, the active
// conversation on the right, a message input below.
type chatModel struct {
	owner    string
	contacts []string
	online   map[string]bool
	idx      int

	activeContact string
	entries       []models.HistoryEntry

	input      textinput.Model
	focus      chatFocus
	statusText string
	statusOK   bool
}

func newChatModel(owner string) chatModel {
	input := textinput.New()
	input.Placeholder = "message"
	input.CharLimit = 512
	input.Width = 48

	return chatModel{
		owner:  owner,
		online: make(map[string]bool),
		input:  input,
	}
}

func (m chatModel) selectedContact() (string, bool) {
	if len(m.contacts) == 0 || m.idx < 0 || m.idx >= len(m.contacts) {
		return "", false
	}
	return m.contacts[m.idx], true
}

func (m chatModel) onlineCount() int {
	n := 0
	for _, up := range m.online {
		if up {
			n++
		}
	}
	return n
}

func (m chatModel) View() string {
	header := titleStyle.Render(fmt.Sprintf("Chat: %s", m.owner)) +
		helpStyle.Render(fmt.Sprintf("  %d online", m.onlineCount()))

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.viewContacts(), "  ", m.viewConversation())

	inputLabel := "Message  "
	if m.focus == focusInput {
		inputLabel = "Message> "
	}

	out := header + "\n\n" + body + "\n\n" + inputLabel + m.input.View() + "\n"

	if m.statusText != "" {
		style := statusOKStyle
		if !m.statusOK {
			style = statusErrStyle
		}
		out += "\n" + style.Render(m.statusText) + "\n"
	}

	out += "\n" + helpStyle.Render("tab switch pane  enter select/send  ctrl+r refresh  ctrl+l logout  ctrl+c quit")
	return out
}

func (m chatModel) viewContacts() string {
	var b strings.Builder
	b.WriteString("Contacts\n")
	b.WriteString("────────────────\n")

	if len(m.contacts) == 0 {
		b.WriteString(helpStyle.Render("nobody here yet"))
		return b.String()
	}

	for i, contact := range m.contacts {
		cursor := "  "
		if i == m.idx && m.focus == focusContacts {
			cursor = "> "
		}

		marker := "  "
		if m.online[contact] {
			marker = onlineStyle.Render("● ")
		}

		line := contact
		if contact == m.activeContact {
			line = selectedStyle.Render(contact)
		}
		b.WriteString(cursor + marker + line + "\n")
	}
	return b.String()
}

func (m chatModel) viewConversation() string {
	var b strings.Builder
	if m.activeContact == "" {
		b.WriteString(helpStyle.Render("select a contact to start chatting"))
		return b.String()
	}

	b.WriteString(m.activeContact + "\n")
	b.WriteString("────────────────────────────────────────\n")

	entries := m.entries
	if len(entries) > conversationWindow {
		entries = entries[len(entries)-conversationWindow:]
	}

	for _, entry := range entries {
		stamp := time.UnixMilli(entry.Timestamp).Format("15:04")
		who := entry.Contact
		line := fmt.Sprintf("[%s] %s: %s", stamp, who, entry.Message)
		if entry.Outgoing {
			line = outgoingStyle.Render(fmt.Sprintf("[%s] %s: %s", stamp, m.owner, entry.Message))
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
