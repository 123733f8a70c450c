package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("debug"))
	assert.Equal(t, InfoLevel, ParseLevel("info"))
	assert.Equal(t, WarnLevel, ParseLevel("warn"))
	assert.Equal(t, ErrorLevel, ParseLevel("error"))
	assert.Equal(t, DebugLevel, ParseLevel("verbose"))
}

func TestInitializeWithLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "mongosync.log")
	InitializeWithOptions("info", Options{File: logFile, MaxSizeMB: 1})
	defer Initialize("info")

	Debug("hidden %d", 1)
	Info("inserted %d documents into %s", 3, "users")
	_ = Sync()

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "inserted 3 documents into users")
	assert.Contains(t, string(data), "INFO")
	assert.NotContains(t, string(data), "hidden")
}
