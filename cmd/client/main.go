// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/fhnw-projects/go-chat-client/internal/adapter"
	"github.com/fhnw-projects/go-chat-client/internal/client"
	"github.com/fhnw-projects/go-chat-client/internal/config"
	"github.com/fhnw-projects/go-chat-client/internal/logger"
	"github.com/fhnw-projects/go-chat-client/internal/service"
	"github.com/fhnw-projects/go-chat-client/internal/session"
	"github.com/fhnw-projects/go-chat-client/internal/store"
	"github.com/fhnw-projects/go-chat-client/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("chat-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	sess := session.New(cfg.Adapter.HTTPAddress)
	serverAdapter := adapter.NewHTTPChatAdapter(sess, cfg.Adapter, log)

	history, err := store.NewHistoryStore(cfg.Storage.HistoryFile, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create history store")
	}

	dispatcher := tui.NewDispatcher()
	services := service.NewChatService(sess, serverAdapter, history, dispatcher, cfg.Workers, log)
	ui := tui.New(services, dispatcher)

	app, err := client.NewApp(services, ui, cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
