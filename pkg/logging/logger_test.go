package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kerbaras/bookshelf/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewWithoutFileIsNop(t *testing.T) {
	logger, err := New(config.LoggingConfig{Level: "debug"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "bookshelf.log")

	logger, err := New(config.LoggingConfig{Level: "warn", File: path})
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	logger.Warn("index out of range", zap.Int("index", 9))
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"index out of range"`)
	assert.Contains(t, string(raw), `"logger":"bookshelf"`)
}

func TestNewDefaultsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookshelf.log")

	logger, err := New(config.LoggingConfig{File: path})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "loud", File: filepath.Join(t.TempDir(), "x.log")})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
