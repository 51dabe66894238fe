package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_RecordsEntries(t *testing.T) {
	mock := NewMockLogger()
	mock.Info("loaded", Field{Key: "count", Value: 3})
	mock.WithError(errors.New("boom")).Warn("failed")
	mock.WithField("file", "x.pdf").Error("bad file")

	require.Len(t, mock.Entries, 3)
	assert.Equal(t, "info", mock.Entries[0].Level)
	assert.Equal(t, "count", mock.Entries[0].Fields[0].Key)
	assert.EqualError(t, mock.Entries[1].Err, "boom")
	assert.Equal(t, "error", mock.Entries[2].Level)
	assert.True(t, mock.HasMessage("failed"))
	assert.False(t, mock.HasMessage("never logged"))
}

func TestLogrusAdapter_WritesStructuredOutput(t *testing.T) {
	logger := logrus.New()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	adapter := NewLogrusAdapterFromLogger(logger)
	adapter.WithField("bank", "HDFC").Info("parsed statement", Field{Key: "rows", Value: 12})

	out := buf.String()
	assert.Contains(t, out, `"bank":"HDFC"`)
	assert.Contains(t, out, `"rows":12`)
	assert.Contains(t, out, "parsed statement")
}

func TestNewLogrusAdapter_InvalidLevelFallsBack(t *testing.T) {
	adapter := NewLogrusAdapter("nonsense", "text")
	require.NotNil(t, adapter)
}

func TestSetDefaultLogger(t *testing.T) {
	original := GetLogger()
	defer SetDefaultLogger(original)

	mock := NewMockLogger()
	SetDefaultLogger(mock)
	assert.Same(t, Logger(mock), GetLogger())

	// Nil is ignored, the previous logger stays.
	SetDefaultLogger(nil)
	assert.Same(t, Logger(mock), GetLogger())
}
