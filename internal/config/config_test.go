// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Defaults and validation ──────────────────────────────────────────────────

func TestClientConfig_ApplyDefaults(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultServerAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultPollInterval, cfg.Workers.PollInterval)
	assert.Equal(t, DefaultPresenceInterval, cfg.Workers.PresenceInterval)
	assert.Equal(t, DefaultDirectoryInterval, cfg.Workers.DirectoryInterval)
	require.NoError(t, cfg.validate())
}

func TestClientConfig_ApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "http://localhost:9999", RequestTimeout: time.Minute},
		Workers: ClientWorkers{PollInterval: 2 * time.Second},
	}
	cfg.applyDefaults()

	assert.Equal(t, "http://localhost:9999", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Workers.PollInterval)
	assert.Equal(t, DefaultPresenceInterval, cfg.Workers.PresenceInterval)
}

func TestClientConfig_Validate_NegativeInterval(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()
	cfg.Workers.PollInterval = -time.Second

	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
}

func TestClientConfig_Validate_MissingAddress(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()
	cfg.Adapter.HTTPAddress = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
}

// ── Environment source ───────────────────────────────────────────────────────

func TestParseEnv_PopulatesStructuredConfig(t *testing.T) {
	t.Setenv("ADAPTER_HTTP_ADDRESS", "http://chat.example.org:50001")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "30s")
	t.Setenv("WORKERS_POLL_INTERVAL", "500ms")
	t.Setenv("STORAGE_HISTORY_FILE", "/tmp/history.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "http://chat.example.org:50001", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Workers.PollInterval)
	assert.Equal(t, "/tmp/history.json", cfg.Storage.HistoryFile)
}

// ── JSON source ──────────────────────────────────────────────────────────────

func TestParseJSON_DurationsAsStrings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	payload := `{
		"adapter": {"http_address": "http://localhost:50001", "request_timeout": "45s"},
		"storage": {"history_file": "/var/chat/history.json"},
		"workers": {"poll_interval": "2s", "presence_interval": "8s", "directory_interval": "20s"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:50001", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/var/chat/history.json", cfg.Storage.HistoryFile)
	assert.Equal(t, 2*time.Second, cfg.Workers.PollInterval)
	assert.Equal(t, 8*time.Second, cfg.Workers.PresenceInterval)
	assert.Equal(t, 20*time.Second, cfg.Workers.DirectoryInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON_Number(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte("1000000000"), &d))
	assert.Equal(t, time.Second, time.Duration(d))
}

func TestDuration_MarshalJSON_RoundTrip(t *testing.T) {
	raw, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)

	var d Duration
	require.NoError(t, json.Unmarshal(raw, &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))
}

// ── Builder merge priority ───────────────────────────────────────────────────

func TestConfigBuilder_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://env:1"}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://flags:2", RequestTimeout: time.Minute}},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "http://env:1", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout, "later sources fill gaps")
}
