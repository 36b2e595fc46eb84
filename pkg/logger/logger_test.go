package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("debug", "", &buf)

	log.WithField("service", "wizard").Debug("Draft persisted")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "wizard", entry["service"])
	assert.Equal(t, "Draft persisted", entry["msg"])
}

func TestNew_TextFormatAndFallbackLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("verbose", "TEXT", &buf)

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	log.Info("Server started")
	assert.Contains(t, buf.String(), `msg="Server started"`)
}
