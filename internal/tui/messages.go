package tui

import (
	"github.com/fhnw-projects/go-chat-client/models"
)

type pingDoneMsg struct {
	ok bool
}

type registerDoneMsg struct {
	confirmation string
	err          error
}

type loginDoneMsg struct {
	username string
	err      error
}

type incomingMsg struct {
	contact string
	entry   models.HistoryEntry
}

type conversationMsg struct {
	contact string
	entries []models.HistoryEntry
}

type presenceMsg struct {
	contact string
	online  bool
}

type directoryMsg struct {
	contacts []string
	online   []string
}

type statusMsg struct {
	text string
	ok   bool
}

type clearStatusMsg struct{}
