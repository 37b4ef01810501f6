// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"sort"
	"strings"

	"github.com/fhnw-projects/go-chat-client/internal/workers"
)

// Start implements [ChatService]. It stops any previous run first, then
// launches the inbox poll, presence refresh, and directory refresh tickers
// on a fresh generation context. The tickers exit when ctx is cancelled or
// Stop is called.
func (s *chatService) Start(ctx context.Context) {
	s.Stop()

	s.jobMu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	group := workers.New(
		&workers.Ticker{Interval: s.intervals.PollInterval, Fn: s.pollOnce},
		&workers.Ticker{Interval: s.intervals.PresenceInterval, Fn: s.refreshPresence},
		&workers.Ticker{Interval: s.intervals.DirectoryInterval, Fn: s.refreshDirectory},
	)
	s.group = group
	s.jobMu.Unlock()

	group.Run(jobCtx)
	s.logger.Debug().
		Dur("poll", s.intervals.PollInterval).
		Dur("presence", s.intervals.PresenceInterval).
		Dur("directory", s.intervals.DirectoryInterval).
		Msg("background tasks started")
}

// Stop implements [ChatService]. It cancels the generation context and
// blocks until all tickers have fully exited. Safe to call when nothing is
// running.
func (s *chatService) Stop() {
	s.jobMu.Lock()
	cancel, group := s.cancel, s.group
	s.cancel, s.group = nil, nil
	s.jobMu.Unlock()

	if cancel != nil {
		cancel()
	}
	if group != nil {
		group.Wait()
	}
}

// pollOnce drains the server inbox and persists every message before the
// next poll can run; the server delivers each message only once. Entries for
// the active contact are additionally surfaced to the UI, and previously
// unknown senders extend the directory. Failures are logged inside the
// adapter and simply yield an empty batch; polling always continues at the
// fixed period.
func (s *chatService) pollOnce(ctx context.Context) {
	owner, active := s.snapshot()
	if owner == "" {
		return
	}

	messages := s.adapter.PollMessages(ctx)
	if len(messages) == 0 {
		return
	}

	unknownSender := false
	for _, msg := range messages {
		entry := s.history.Append(owner, msg.Username, false, msg.Message)

		if ctx.Err() != nil {
			// run ended mid-batch: keep persisting, stop publishing
			continue
		}
		if msg.Username == active {
			s.events.IncomingMessage(msg.Username, entry)
		}
		if !s.isDirectoryMember(msg.Username) {
			unknownSender = true
		}
	}

	if unknownSender && ctx.Err() == nil {
		s.publishDirectory()
	}
}

// refreshPresence probes the active contact only and publishes the result.
func (s *chatService) refreshPresence(ctx context.Context) {
	_, active := s.snapshot()
	if active == "" {
		return
	}

	online := s.adapter.IsUserOnline(ctx, active)
	if ctx.Err() != nil {
		return
	}
	s.events.PresenceChanged(active, online)
}

// refreshDirectory reloads the full user list and the online list from the
// server, replaces the presence set wholesale, and publishes the merged
// directory.
func (s *chatService) refreshDirectory(ctx context.Context) {
	serverUsers := s.adapter.FetchAllUsers(ctx)
	online := s.adapter.FetchOnlineUsers(ctx)

	s.dirMu.Lock()
	s.serverUsers = serverUsers
	s.online = dedupe(online)
	s.dirMu.Unlock()

	if ctx.Err() != nil {
		return
	}
	s.publishDirectory()
}

// RefreshDirectory implements [ChatService].
func (s *chatService) RefreshDirectory(ctx context.Context) {
	s.refreshDirectory(ctx)
}

// publishDirectory merges the last fetched server users with the owner's
// history contacts and the active contact, records the membership set for
// new-sender detection, and emits the snapshot.
func (s *chatService) publishDirectory() {
	owner, active := s.snapshot()

	s.dirMu.Lock()
	merged := make(map[string]struct{}, len(s.serverUsers))
	for _, name := range s.serverUsers {
		merged[name] = struct{}{}
	}
	if owner != "" {
		for _, name := range s.history.Contacts(owner) {
			merged[name] = struct{}{}
		}
	}
	if active != "" {
		merged[active] = struct{}{}
	}

	directory := make([]string, 0, len(merged))
	for name := range merged {
		directory = append(directory, name)
	}
	sort.Slice(directory, func(i, j int) bool {
		a, b := strings.ToLower(directory[i]), strings.ToLower(directory[j])
		if a == b {
			return directory[i] < directory[j]
		}
		return a < b
	})

	s.members = merged
	online := append([]string(nil), s.online...)
	s.dirMu.Unlock()

	s.events.DirectoryUpdated(directory, online)
}

func (s *chatService) isDirectoryMember(name string) bool {
	s.dirMu.Lock()
	defer s.dirMu.Unlock()
	_, ok := s.members[name]
	return ok
}

func dedupe(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, name := range list {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
