// SPDX-License-Identifier: Apache-2.0

// Package session holds the client's connection target and bearer token.
//
// Exactly one [Session] exists per running client. It is created during
// process wiring and shared by the transport adapter and the chat service;
// all mutation goes through atomic-replace methods so concurrent readers
// never observe a half-written value.
package session

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
)

// Session is the single source of truth for the server base URL and the
// current auth token. The zero value is usable and starts unauthenticated.
type Session struct {
	mu      sync.RWMutex
	baseURL string
	token   string
}

// New returns a Session pointed at baseURL. An empty or invalid baseURL is
// ignored and can be set later via SetBaseURL.
func New(baseURL string) *Session {
	s := &Session{}
	_ = s.SetBaseURL(baseURL)
	return s
}

// SetBaseURL normalises and stores the server address. Missing schemes
// default to http://, a trailing slash is stripped. The new address applies
// to all subsequent requests; in-flight requests are unaffected.
func (s *Session) SetBaseURL(raw string) error {
	normalized, err := normalizeBaseURL(raw)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseURL = normalized
	return nil
}

// BaseURL returns the normalised server address, or an empty string if none
// has been set.
func (s *Session) BaseURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baseURL
}

// SetToken stores token (whitespace-trimmed) as the current auth token.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = strings.TrimSpace(token)
}

// Token returns the current auth token, or an empty string if none is set.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// ClearToken removes the current auth token.
func (s *Session) ClearToken() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// RequireToken returns the current token, or ErrUnauthenticated when none is
// set. The transport calls it before every authenticated request so an
// absent token is never silently sent as an empty string.
func (s *Session) RequireToken() (string, error) {
	token := s.Token()
	if token == "" {
		return "", ErrUnauthenticated
	}
	return token, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
