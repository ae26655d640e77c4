package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroLogger_Info(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", "", buf)

	log.Info("info-test", F("key", "value"), F("seats", 120))

	output := buf.String()
	assert.Contains(t, output, "info-test")
	assert.Contains(t, output, `"key":"value"`)
	assert.Contains(t, output, `"seats":120`)
	assert.Contains(t, output, `"level":"info"`)
}

func TestZeroLogger_DebugShownInDev(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", "", buf)

	log.Debug("debug-test")

	assert.Contains(t, buf.String(), "debug-test")
}

func TestZeroLogger_DebugHiddenInProduction(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("production", "", buf)

	log.Debug("debug-hidden")

	assert.Empty(t, buf.String())
}

func TestZeroLogger_ExplicitLevelWins(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", "warn", buf)

	log.Info("info-hidden")
	log.Warn("warn-test", F("warn", "yes"))

	output := buf.String()
	assert.NotContains(t, output, "info-hidden")
	assert.Contains(t, output, `"level":"warn"`)
	assert.Contains(t, output, `"warn":"yes"`)
}

func TestZeroLogger_ErrorField(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", "", buf)

	log.Error("error-test", F("error", errors.New("boom")))

	output := buf.String()
	assert.Contains(t, output, `"level":"error"`)
	assert.Contains(t, output, `"error":"boom"`)
}
