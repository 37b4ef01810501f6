package client

import (
	"context"
	"errors"

	"github.com/fhnw-projects/go-chat-client/internal/config"
	"github.com/fhnw-projects/go-chat-client/internal/logger"
	"github.com/fhnw-projects/go-chat-client/internal/service"
	"github.com/fhnw-projects/go-chat-client/internal/tui"
)

type App struct {
	services      service.ChatService
	ui            *tui.TUI
	serverAddress string
	logger        *logger.Logger
}

func NewApp(services service.ChatService, ui *tui.TUI, adapterCfg config.ClientAdapter, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("app requires services and ui")
	}

	return &App{
		services:      services,
		ui:            ui,
		serverAddress: adapterCfg.HTTPAddress,
		logger:        log,
	}, nil
}

// Run drives the UI until exit. Whatever way the program ends, the
// background tasks are stopped and the server is told the user went offline
// before Run returns.
func (a *App) Run() error {
	ctx := context.Background()

	defer func() {
		a.services.Stop()
		if a.services.CurrentUser() != "" {
			a.services.Logout(context.Background())
		}
	}()

	err := a.ui.Run(ctx, a.serverAddress)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("user quit before signing in")
		return nil
	}
	return err
}
