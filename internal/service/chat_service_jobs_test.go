package service

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fhnw-projects/go-chat-client/internal/config"
	"github.com/fhnw-projects/go-chat-client/internal/logger"
	"github.com/fhnw-projects/go-chat-client/internal/session"
	"github.com/fhnw-projects/go-chat-client/internal/store"
	"github.com/fhnw-projects/go-chat-client/models"
)

// fakeAdapter drives the background tasks without a server. Poll batches are
// delivered once each, in order, then polling yields empty batches.
type fakeAdapter struct {
	mu          sync.Mutex
	pollBatches [][]models.Message
	pollCalls   atomic.Int64
	userOnline  bool
	allUsers    []string
	onlineUsers []string
}

func (f *fakeAdapter) Ping(context.Context) bool { return true }

func (f *fakeAdapter) Register(context.Context, models.Credentials) (string, error) {
	return "", nil
}

func (f *fakeAdapter) Login(context.Context, models.Credentials) (bool, error) {
	return true, nil
}

func (f *fakeAdapter) PingWithToken(context.Context) bool { return true }

func (f *fakeAdapter) SendMessage(context.Context, string, string) (bool, error) {
	return true, nil
}

func (f *fakeAdapter) PollMessages(context.Context) []models.Message {
	f.pollCalls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.pollBatches) == 0 {
		return nil
	}
	batch := f.pollBatches[0]
	f.pollBatches = f.pollBatches[1:]
	return batch
}

func (f *fakeAdapter) Logout(context.Context) bool { return true }

func (f *fakeAdapter) IsUserOnline(context.Context, string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.userOnline
}

func (f *fakeAdapter) FetchAllUsers(context.Context) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.allUsers...)
}

func (f *fakeAdapter) FetchOnlineUsers(context.Context) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.onlineUsers...)
}

func newJobsService(t *testing.T, adapter *fakeAdapter) (*chatService, *spyEvents) {
	t.Helper()

	events := newSpyEvents()
	history, err := store.NewHistoryStore(filepath.Join(t.TempDir(), "history.json"), logger.Nop())
	require.NoError(t, err)

	intervals := config.ClientWorkers{
		PollInterval:      10 * time.Millisecond,
		PresenceInterval:  10 * time.Millisecond,
		DirectoryInterval: 10 * time.Millisecond,
	}
	svc := NewChatService(session.New("http://localhost:50001"), adapter, history, events, intervals, logger.Nop()).(*chatService)
	return svc, events
}

// ── Polling ──────────────────────────────────────────────────────────────────

func TestStart_PollPersistsMessages(t *testing.T) {
	fake := &fakeAdapter{
		pollBatches: [][]models.Message{
			{{Username: "carol", Message: "hello"}, {Username: "carol", Message: "again"}},
		},
	}
	svc, _ := newJobsService(t, fake)
	loginAs(svc, "alice", "bob")

	svc.Start(context.Background())
	defer svc.Stop()

	assert.Eventually(t, func() bool {
		return len(svc.history.Conversation("alice", "carol")) == 2
	}, time.Second, 5*time.Millisecond)

	got := svc.history.Conversation("alice", "carol")
	assert.Equal(t, "hello", got[0].Message)
	assert.False(t, got[0].Outgoing)
}

func TestStart_ActiveContactMessagesSurfaced(t *testing.T) {
	fake := &fakeAdapter{
		pollBatches: [][]models.Message{
			{{Username: "bob", Message: "for the open chat"}, {Username: "carol", Message: "background"}},
		},
	}
	svc, events := newJobsService(t, fake)
	loginAs(svc, "alice", "bob")

	svc.Start(context.Background())
	defer svc.Stop()

	assert.Eventually(t, func() bool {
		events.mu.Lock()
		defer events.mu.Unlock()
		return len(events.incoming) == 1
	}, time.Second, 5*time.Millisecond)

	events.mu.Lock()
	defer events.mu.Unlock()
	assert.Equal(t, "for the open chat", events.incoming[0].Message)

	// carol was persisted but never surfaced as incoming
	assert.Len(t, svc.history.Conversation("alice", "carol"), 1)
}

func TestStart_UnknownSenderExtendsDirectory(t *testing.T) {
	fake := &fakeAdapter{
		pollBatches: [][]models.Message{
			{{Username: "mallory", Message: "hi there"}},
		},
	}
	svc, events := newJobsService(t, fake)
	loginAs(svc, "alice", "")

	svc.Start(context.Background())
	defer svc.Stop()

	assert.Eventually(t, func() bool {
		events.mu.Lock()
		defer events.mu.Unlock()
		for _, name := range events.directory {
			if name == "mallory" {
				return true
			}
		}
		return false
	}, time.Second, 5*time.Millisecond)
}

func TestPoll_WithoutLogin_IsNoop(t *testing.T) {
	fake := &fakeAdapter{
		pollBatches: [][]models.Message{{{Username: "carol", Message: "hi"}}},
	}
	svc, events := newJobsService(t, fake)

	svc.pollOnce(context.Background())

	events.mu.Lock()
	defer events.mu.Unlock()
	assert.Empty(t, events.incoming)
	assert.Zero(t, fake.pollCalls.Load(), "no poll request without a signed-in user")
}

// ── Presence and directory ───────────────────────────────────────────────────

func TestRefreshPresence_ActiveContactOnly(t *testing.T) {
	fake := &fakeAdapter{userOnline: true}
	svc, events := newJobsService(t, fake)
	loginAs(svc, "alice", "bob")

	svc.refreshPresence(context.Background())

	events.mu.Lock()
	online, seen := events.presence["bob"]
	events.mu.Unlock()
	assert.True(t, seen)
	assert.True(t, online)

	// without an active contact nothing is probed or published
	loginAs(svc, "alice", "")
	svc.refreshPresence(context.Background())
	events.mu.Lock()
	assert.Len(t, events.presence, 1)
	events.mu.Unlock()
}

func TestRefreshDirectory_MergesHistoryContactsAndDedupesOnline(t *testing.T) {
	fake := &fakeAdapter{
		allUsers:    []string{"bob", "carol"},
		onlineUsers: []string{"bob", "bob"},
	}
	svc, events := newJobsService(t, fake)
	loginAs(svc, "alice", "")

	// dave exists only in the local ledger, not on the server
	svc.history.Append("alice", "dave", true, "old conversation")

	svc.refreshDirectory(context.Background())

	events.mu.Lock()
	defer events.mu.Unlock()
	assert.Equal(t, []string{"bob", "carol", "dave"}, events.directory)
	assert.Equal(t, []string{"bob"}, events.online, "duplicate presence entries collapse")
}

// ── Start / Stop lifecycle ───────────────────────────────────────────────────

func TestStop_HaltsPolling(t *testing.T) {
	fake := &fakeAdapter{}
	svc, _ := newJobsService(t, fake)
	loginAs(svc, "alice", "")

	svc.Start(context.Background())

	assert.Eventually(t, func() bool {
		return fake.pollCalls.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	svc.Stop()
	after := fake.pollCalls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, fake.pollCalls.Load(), "no polls after Stop returns")
}

func TestStop_WithoutStart_IsSafe(t *testing.T) {
	svc, _ := newJobsService(t, &fakeAdapter{})

	svc.Stop()
	svc.Stop()
}

func TestStart_ReplacesPreviousRun(t *testing.T) {
	fake := &fakeAdapter{}
	svc, _ := newJobsService(t, fake)
	loginAs(svc, "alice", "")

	svc.Start(context.Background())
	svc.Start(context.Background())
	defer svc.Stop()

	assert.Eventually(t, func() bool {
		return fake.pollCalls.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	svc.Stop()
	after := fake.pollCalls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, fake.pollCalls.Load(), "single Stop halts the replacement run too")
}
