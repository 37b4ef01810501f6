package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server base URL (e.g. "http://javaprojects.ch:50001")
//	-history-file conversation history file path
//	-request-timeout outbound request timeout (e.g. "30s", "1m")
//	-poll-interval inbox poll period (e.g. "1s")
//	-presence-interval presence refresh period (e.g. "4s")
//	-directory-interval directory refresh period (e.g. "10s")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var historyFile string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var pollInterval time.Duration
	var presenceInterval time.Duration
	var directoryInterval time.Duration

	flag.StringVar(&serverAddress, "a", "", "Chat server base URL")
	flag.StringVar(&historyFile, "history-file", "", "Conversation history file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&pollInterval, "poll-interval", 0, "Inbox poll period (e.g., 1s)")
	flag.DurationVar(&presenceInterval, "presence-interval", 0, "Presence refresh period (e.g., 4s)")
	flag.DurationVar(&directoryInterval, "directory-interval", 0, "Directory refresh period (e.g., 10s)")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			HistoryFile: historyFile,
		},
		Workers: Workers{
			PollInterval:      pollInterval,
			PresenceInterval:  presenceInterval,
			DirectoryInterval: directoryInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
