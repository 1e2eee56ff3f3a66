package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZapLoggerWritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l := NewZapLogger(path, true)

	l.Debug("chat", "debug is below the file level", nil)
	l.Info("chat", "reply sent", map[string]interface{}{"intent": "benefit_goal"})
	l.Error("lead", "mail failed", map[string]interface{}{"error": "dial tcp: refused"})
	_ = l.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(raw)

	assert.Contains(t, out, `"message":"reply sent"`)
	assert.Contains(t, out, `"module":"chat"`)
	assert.Contains(t, out, `"intent":"benefit_goal"`)
	assert.Contains(t, out, `"error_ref":"dial tcp: refused"`)
	assert.NotContains(t, out, "debug is below the file level")
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	assert.NotPanics(t, func() {
		l.Info("chat", "ignored", nil)
		l.Error("chat", "ignored", nil)
	})
	assert.NoError(t, l.Sync())
}
