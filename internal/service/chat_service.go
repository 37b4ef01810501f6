// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/fhnw-projects/go-chat-client/internal/adapter"
	"github.com/fhnw-projects/go-chat-client/internal/config"
	"github.com/fhnw-projects/go-chat-client/internal/logger"
	"github.com/fhnw-projects/go-chat-client/internal/session"
	"github.com/fhnw-projects/go-chat-client/internal/store"
	"github.com/fhnw-projects/go-chat-client/internal/workers"
	"github.com/fhnw-projects/go-chat-client/models"
)

type chatService struct {
	session *session.Session
	adapter adapter.ChatServerAdapter
	history *store.HistoryStore
	events  Events
	logger  *logger.Logger

	intervals config.ClientWorkers

	mu            sync.RWMutex
	currentUser   string
	activeContact string

	dirMu       sync.Mutex
	serverUsers []string
	online      []string
	members     map[string]struct{}

	jobMu  sync.Mutex
	cancel context.CancelFunc
	group  *workers.Workers
}

// NewChatService wires the synchronization engine. Non-positive worker
// intervals fall back to the package defaults of the config package, so a
// zero-value ClientWorkers is safe.
func NewChatService(
	sess *session.Session,
	serverAdapter adapter.ChatServerAdapter,
	history *store.HistoryStore,
	events Events,
	workersCfg config.ClientWorkers,
	log *logger.Logger,
) ChatService {
	if workersCfg.PollInterval <= 0 {
		workersCfg.PollInterval = config.DefaultPollInterval
	}
	if workersCfg.PresenceInterval <= 0 {
		workersCfg.PresenceInterval = config.DefaultPresenceInterval
	}
	if workersCfg.DirectoryInterval <= 0 {
		workersCfg.DirectoryInterval = config.DefaultDirectoryInterval
	}

	return &chatService{
		session:   sess,
		adapter:   serverAdapter,
		history:   history,
		events:    events,
		logger:    log,
		intervals: workersCfg,
		members:   make(map[string]struct{}),
	}
}

// Ping implements [ChatService].
func (s *chatService) Ping(ctx context.Context, serverURL string) bool {
	if err := s.session.SetBaseURL(serverURL); err != nil {
		s.logger.Warn().Err(err).Str("url", serverURL).Msg("invalid server address")
		return false
	}
	return s.adapter.Ping(ctx)
}

// Register implements [ChatService].
func (s *chatService) Register(ctx context.Context, serverURL, username, password string) (string, error) {
	if err := s.session.SetBaseURL(serverURL); err != nil {
		return "", fmt.Errorf("invalid server address: %w", err)
	}

	confirmation, err := s.adapter.Register(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("username", username).Msg("registered")
	return confirmation, nil
}

// Login implements [ChatService]. The issued token is validated with an
// authenticated ping before the login counts; a token the server refuses is
// cleared immediately.
func (s *chatService) Login(ctx context.Context, serverURL, username, password string) error {
	if err := s.session.SetBaseURL(serverURL); err != nil {
		return fmt.Errorf("invalid server address: %w", err)
	}

	ok, err := s.adapter.Login(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		return err
	}
	if !ok {
		return ErrLoginFailed
	}

	if !s.adapter.PingWithToken(ctx) {
		s.session.ClearToken()
		return ErrTokenRejected
	}

	s.mu.Lock()
	s.currentUser = username
	s.activeContact = ""
	s.mu.Unlock()

	s.resetDirectory()

	s.logger.Info().Str("username", username).Msg("logged in")
	return nil
}

// Logout implements [ChatService].
func (s *chatService) Logout(ctx context.Context) {
	s.Stop()
	s.adapter.Logout(ctx)

	s.mu.Lock()
	s.currentUser = ""
	s.activeContact = ""
	s.mu.Unlock()

	s.resetDirectory()
	s.logger.Info().Msg("logged out")
}

// CurrentUser implements [ChatService].
func (s *chatService) CurrentUser() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentUser
}

// ActiveContact implements [ChatService].
func (s *chatService) ActiveContact() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeContact
}

// SelectContact implements [ChatService].
func (s *chatService) SelectContact(ctx context.Context, contact string) {
	s.mu.Lock()
	s.activeContact = contact
	owner := s.currentUser
	s.mu.Unlock()

	if owner == "" || contact == "" {
		return
	}

	s.events.ConversationLoaded(contact, s.history.Conversation(owner, contact))
	s.refreshPresence(ctx)
}

// Send implements [ChatService].
func (s *chatService) Send(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	owner, active := s.snapshot()
	if text == "" || owner == "" || active == "" {
		return
	}

	sent, err := s.adapter.SendMessage(ctx, active, text)
	if err != nil {
		s.logger.Warn().Err(err).Str("recipient", active).Msg("send failed")
		s.events.Status(fmt.Sprintf("send failed: %v", err), false)
		return
	}
	if !sent {
		s.events.Status(fmt.Sprintf("%s is offline, message not delivered", active), false)
		return
	}

	s.history.Append(owner, active, true, text)
	s.events.ConversationLoaded(active, s.history.Conversation(owner, active))
}

func (s *chatService) snapshot() (owner, active string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentUser, s.activeContact
}

func (s *chatService) resetDirectory() {
	s.dirMu.Lock()
	defer s.dirMu.Unlock()
	s.serverUsers = nil
	s.online = nil
	s.members = make(map[string]struct{})
}
