package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewClientLogger_NotNil verifies that NewClientLogger returns a non-nil
// *Logger.
func TestNewClientLogger_NotNil(t *testing.T) {
	l := NewClientLogger("test")
	require.NotNil(t, l)
}

// TestNewClientLogger_RoleField verifies that every log entry carries the
// configured "role" field.
func TestNewClientLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewClientLogger("test-role")
	// redirect output to buffer for inspection
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
}

// TestNewClientLogger_ContainsTimestamp verifies that log entries contain a
// timestamp field.
func TestNewClientLogger_ContainsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewClientLogger("test")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Contains(t, entry, zerolog.TimestampFieldName)
}

// TestNop verifies that the no-op logger swallows output without panicking.
func TestNop(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	l.Info().Msg("discarded")
	l.Error().Msg("discarded too")
}

// TestGetChildLogger verifies that a child logger inherits the parent's
// fields.
func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := NewClientLogger("parent-role")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	require.NotNil(t, child)
	child.Info().Msg("from child")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "parent-role", entry["role"])
}

// TestFromContext verifies the logger round-trips through a context.
func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf).With().Str("role", "ctx-role").Logger()
	ctx := base.WithContext(context.Background())

	l := FromContext(ctx)
	require.NotNil(t, l)
	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx-role", entry["role"])
}
