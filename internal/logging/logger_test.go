package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Format: "json", Output: &buf})

	logger.Error(errors.New("boom"), "request failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "request failed", entry["message"])
}

func TestNewFallsBackToInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "chatty", Output: &buf})

	logger.logger.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())

	logger.Info("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestWithContextAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	previous := log.Logger
	t.Cleanup(func() { log.Logger = previous })
	SetGlobalLogger(New(Config{Level: "debug", Output: &buf}))

	ctx := WithRequestID(context.Background(), "req-42")
	WithContext(ctx).Info().Msg("hello")

	assert.Equal(t, "req-42", RequestID(ctx))
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
}
