package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fhnw-projects/go-chat-client/internal/service"
)

// TUI owns the Bubble Tea program for the whole client lifetime: welcome,
// sign-in and registration, then the chat screen.
type TUI struct {
	services   service.ChatService
	dispatcher *Dispatcher
}

func New(services service.ChatService, dispatcher *Dispatcher) *TUI {
	return &TUI{services: services, dispatcher: dispatcher}
}

// Run blocks until the user quits or logs out. Returning [ErrUserQuit] tells
// the caller the user left before signing in.
func (t *TUI) Run(ctx context.Context, serverAddress string) error {
	model := newAppModel(ctx, t.services, serverAddress)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.dispatcher.Attach(program)

	finalModel, err := program.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	return result.err
}
