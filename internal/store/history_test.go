// SPDX-License-Identifier: Apache-2.0

package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fhnw-projects/go-chat-client/internal/logger"
)

func newTestStore(t *testing.T) *HistoryStore {
	t.Helper()
	s, err := NewHistoryStore(filepath.Join(t.TempDir(), "history.json"), logger.Nop())
	require.NoError(t, err)
	return s
}

// ── Append / Conversation ────────────────────────────────────────────────────

func TestAppend_PreservesOrder(t *testing.T) {
	s := newTestStore(t)

	s.Append("alice", "bob", true, "hi")
	s.Append("alice", "bob", false, "hello")
	s.Append("alice", "bob", true, "how are you")

	got := s.Conversation("alice", "bob")
	require.Len(t, got, 3)
	assert.Equal(t, "hi", got[0].Message)
	assert.True(t, got[0].Outgoing)
	assert.Equal(t, "hello", got[1].Message)
	assert.False(t, got[1].Outgoing)
	assert.Equal(t, "how are you", got[2].Message)

	for _, entry := range got {
		assert.Equal(t, "bob", entry.Contact)
		assert.NotZero(t, entry.Timestamp)
	}
}

func TestAppend_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")

	s, err := NewHistoryStore(path, logger.Nop())
	require.NoError(t, err)
	s.Append("alice", "bob", true, "persisted")

	reopened, err := NewHistoryStore(path, logger.Nop())
	require.NoError(t, err)

	got := reopened.Conversation("alice", "bob")
	require.Len(t, got, 1)
	assert.Equal(t, "persisted", got[0].Message)
}

func TestConversation_UnknownKeysAreEmpty(t *testing.T) {
	s := newTestStore(t)
	s.Append("alice", "bob", true, "hi")

	assert.Empty(t, s.Conversation("alice", "carol"))
	assert.Empty(t, s.Conversation("nobody", "bob"))
}

func TestAppend_SeparatesOwnersAndContacts(t *testing.T) {
	s := newTestStore(t)

	s.Append("alice", "bob", true, "from alice to bob")
	s.Append("alice", "carol", true, "from alice to carol")
	s.Append("dave", "bob", true, "from dave to bob")

	assert.Len(t, s.Conversation("alice", "bob"), 1)
	assert.Len(t, s.Conversation("alice", "carol"), 1)
	assert.Len(t, s.Conversation("dave", "bob"), 1)
}

// ── Contacts ─────────────────────────────────────────────────────────────────

func TestContacts_SortedCaseInsensitive(t *testing.T) {
	s := newTestStore(t)

	s.Append("alice", "Zoe", true, "a")
	s.Append("alice", "bob", true, "b")
	s.Append("alice", "Carol", true, "c")
	s.Append("alice", "bob", true, "again")

	assert.Equal(t, []string{"bob", "Carol", "Zoe"}, s.Contacts("alice"))
}

func TestContacts_UnknownOwner(t *testing.T) {
	s := newTestStore(t)
	assert.Empty(t, s.Contacts("ghost"))
}

// ── Failure policy ───────────────────────────────────────────────────────────

func TestReadAll_CorruptFileTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	s, err := NewHistoryStore(path, logger.Nop())
	require.NoError(t, err)

	assert.Empty(t, s.Conversation("alice", "bob"))

	// appending over the corrupt file starts a fresh store
	s.Append("alice", "bob", true, "fresh")
	assert.Len(t, s.Conversation("alice", "bob"), 1)
}

func TestWriteAll_FailureIsSwallowed(t *testing.T) {
	dir := t.TempDir()
	// the store path is a directory, so every write fails
	s, err := NewHistoryStore(dir, logger.Nop())
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		s.Append("alice", "bob", true, "lost")
	})
}

// ── Concurrency ──────────────────────────────────────────────────────────────

func TestAppend_ConcurrentNoLostUpdates(t *testing.T) {
	s := newTestStore(t)
	const writers = 50

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.Append("alice", "bob", n%2 == 0, fmt.Sprintf("message %d", n))
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.Conversation("alice", "bob"), writers)
}
