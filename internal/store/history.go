// SPDX-License-Identifier: Apache-2.0

// Package store implements the durable conversation history of the chat
// client.
//
// All conversations of all local users live in one pretty-printed JSON file,
// keyed owner → contact → ordered entry list. Every operation performs a
// full read-modify-write of that file under a single process-wide lock; the
// file is never accessed by any other component. Cost per append is
// O(total stored entries), a known and accepted limit for a desktop history
// file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fhnw-projects/go-chat-client/internal/logger"
	"github.com/fhnw-projects/go-chat-client/models"
)

const defaultHistoryFileName = ".chat-client-history.json"

// historyData is the on-disk layout: owner username → contact username →
// ordered conversation entries.
type historyData map[string]map[string][]models.HistoryEntry

// HistoryStore is the append-only, file-backed conversation ledger. Appended
// entries are never reordered, deduplicated, mutated or deleted.
//
// Durability is best-effort: a read failure is treated as an empty store and
// a write failure is logged and swallowed, so a crash or full disk loses at
// most the entry being written, never the ability to run.
type HistoryStore struct {
	path string
	log  *logger.Logger

	mu  sync.Mutex
	now func() time.Time
}

// NewHistoryStore opens the history ledger at path. An empty path selects
// the per-user default file in the home directory; resolving that default is
// the only way construction can fail.
func NewHistoryStore(path string, log *logger.Logger) (*HistoryStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve default history path: %w", err)
		}
		path = filepath.Join(home, defaultHistoryFileName)
	}

	return &HistoryStore{path: path, log: log, now: time.Now}, nil
}

// Append records one message at the end of the (owner, contact) conversation
// with the current timestamp and returns the created entry. Concurrent
// appends are serialised; appends for the same pair keep their call order.
func (s *HistoryStore) Append(owner, contact string, outgoing bool, text string) models.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.readAll()
	byContact, ok := data[owner]
	if !ok {
		byContact = make(map[string][]models.HistoryEntry)
		data[owner] = byContact
	}

	entry := models.HistoryEntry{
		Contact:   contact,
		Outgoing:  outgoing,
		Message:   text,
		Timestamp: s.now().UnixMilli(),
	}
	byContact[contact] = append(byContact[contact], entry)

	s.writeAll(data)
	return entry
}

// Conversation returns the stored entries for the pair in append order, or
// an empty slice when the owner or contact is unknown.
func (s *HistoryStore) Conversation(owner, contact string) []models.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readAll()[owner][contact]
}

// Contacts returns all contact names the owner has conversations with,
// sorted case-insensitively. Unknown owners yield an empty slice.
func (s *HistoryStore) Contacts(owner string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	byContact := s.readAll()[owner]
	contacts := make([]string, 0, len(byContact))
	for contact := range byContact {
		contacts = append(contacts, contact)
	}

	sort.Slice(contacts, func(i, j int) bool {
		a, b := strings.ToLower(contacts[i]), strings.ToLower(contacts[j])
		if a == b {
			return contacts[i] < contacts[j]
		}
		return a < b
	})
	return contacts
}

// readAll loads the full on-disk store. Callers must hold s.mu. Any read or
// decode failure degrades to an empty store.
func (s *HistoryStore) readAll() historyData {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("cannot read chat history")
		}
		return make(historyData)
	}

	var data historyData
	if err := json.Unmarshal(raw, &data); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("cannot decode chat history")
		return make(historyData)
	}
	if data == nil {
		return make(historyData)
	}
	return data
}

// writeAll rewrites the full on-disk store. Callers must hold s.mu. Failures
// are logged and swallowed; the entry being written is lost.
func (s *HistoryStore) writeAll(data historyData) {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		s.log.Warn().Err(err).Msg("cannot encode chat history")
		return
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			s.log.Warn().Err(err).Str("path", s.path).Msg("cannot create history directory")
			return
		}
	}

	if err := os.WriteFile(s.path, raw, 0600); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("cannot save chat history")
	}
}
