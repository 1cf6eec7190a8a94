package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCaptureLogger(t *testing.T) (Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return NewSlogLogger(logger), &buf
}

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	return record
}

func TestSlogLogger_LogRequest_LevelEscalation(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantLevel  string
	}{
		{"success stays info", 200, "INFO"},
		{"client error warns", 404, "WARN"},
		{"server error errors", 500, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newCaptureLogger(t)

			logger.LogRequest("GET", "/api/v1/sessions/s1/progress", tt.statusCode, "1ms")

			record := decodeLogLine(t, buf)
			assert.Equal(t, tt.wantLevel, record["level"])
			assert.Equal(t, "HTTP Request", record["msg"])
			assert.Equal(t, "GET", record["method"])
			assert.Equal(t, float64(tt.statusCode), record["status_code"])
		})
	}
}

func TestSlogLogger_LogError(t *testing.T) {
	logger, buf := newCaptureLogger(t)

	logger.LogError(errors.New("broker down"), "Failed to publish event", "event_id", "evt-1")

	record := decodeLogLine(t, buf)
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "Failed to publish event", record["msg"])
	assert.Equal(t, "broker down", record["error"])
	assert.Equal(t, "evt-1", record["event_id"])
}

func TestSlogLogger_Levels(t *testing.T) {
	logger, buf := newCaptureLogger(t)

	logger.Info("Analyzing submission", "session_id", "s1")

	record := decodeLogLine(t, buf)
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "s1", record["session_id"])
}
