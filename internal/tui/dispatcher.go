package tui

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fhnw-projects/go-chat-client/models"
)

// Dispatcher bridges service notifications into the Bubble Tea event loop.
// The chat service is wired up before the program exists, so the program is
// attached later; notifications arriving before Attach are dropped.
type Dispatcher struct {
	program atomic.Pointer[tea.Program]
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Attach binds the running program. Safe to call from any goroutine.
func (d *Dispatcher) Attach(p *tea.Program) {
	d.program.Store(p)
}

func (d *Dispatcher) send(msg tea.Msg) {
	if p := d.program.Load(); p != nil {
		p.Send(msg)
	}
}

func (d *Dispatcher) IncomingMessage(contact string, entry models.HistoryEntry) {
	d.send(incomingMsg{contact: contact, entry: entry})
}

func (d *Dispatcher) ConversationLoaded(contact string, entries []models.HistoryEntry) {
	d.send(conversationMsg{contact: contact, entries: entries})
}

func (d *Dispatcher) PresenceChanged(contact string, online bool) {
	d.send(presenceMsg{contact: contact, online: online})
}

func (d *Dispatcher) DirectoryUpdated(contacts, online []string) {
	d.send(directoryMsg{contacts: contacts, online: online})
}

func (d *Dispatcher) Status(text string, ok bool) {
	d.send(statusMsg{text: text, ok: ok})
}
