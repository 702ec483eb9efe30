package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, source, dest, hours string) {
	t.Setenv("SOURCE_DIR", source)
	t.Setenv("DEST_DIR", dest)
	t.Setenv("RETENTION_PERIOD_HOURS", hours)
	unsetEnv(t, "LOG_LEVEL")
}

// переменная удаляется на время теста и восстанавливается после
func unsetEnv(t *testing.T, key string) {
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Success(t *testing.T) {
	setEnv(t, "/data/src", "/data/backups", "24")

	cfg, err := Load(noEnvFile(t))

	require.NoError(t, err)
	assert.Equal(t, "/data/src", cfg.SourceDir)
	assert.Equal(t, "/data/backups", cfg.DestDir)
	assert.Equal(t, Hours(24), cfg.RetentionPeriodHours)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, int64(24*3600), cfg.RetentionSeconds())
	assert.Equal(t, 24*time.Hour, cfg.RetentionPeriod())
}

func TestLoad_ZeroRetention(t *testing.T) {
	setEnv(t, "/src", "/dst", "0")

	cfg, err := Load(noEnvFile(t))

	require.NoError(t, err)
	assert.Zero(t, cfg.RetentionSeconds())
}

func TestLoad_MissingVariable(t *testing.T) {
	t.Setenv("SOURCE_DIR", "/src")
	t.Setenv("DEST_DIR", "/dst")
	unsetEnv(t, "RETENTION_PERIOD_HOURS")

	_, err := Load(noEnvFile(t))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEnvParse)
	assert.Contains(t, err.Error(), "RETENTION_PERIOD_HOURS")
}

func TestLoad_InvalidRetention(t *testing.T) {
	for _, v := range []string{"-1", "abc", "1.5", "", "0x10", "0b11", "1_0"} {
		t.Run(v, func(t *testing.T) {
			setEnv(t, "/src", "/dst", v)

			_, err := Load(noEnvFile(t))

			assert.ErrorIs(t, err, ErrEnvParse)
		})
	}
}

func TestLoad_RetentionIsDecimal(t *testing.T) {
	setEnv(t, "/src", "/dst", "010")

	cfg, err := Load(noEnvFile(t))

	require.NoError(t, err)
	assert.Equal(t, Hours(10), cfg.RetentionPeriodHours)
	assert.Equal(t, int64(10*3600), cfg.RetentionSeconds())
}

func TestLoad_EmptyDirs(t *testing.T) {
	setEnv(t, "", "/dst", "1")
	_, err := Load(noEnvFile(t))
	assert.ErrorIs(t, err, ErrSourceDirNone)

	setEnv(t, "/src", "", "1")
	_, err = Load(noEnvFile(t))
	assert.ErrorIs(t, err, ErrDestDirNone)
}

func TestLoad_EnvFile(t *testing.T) {
	unsetEnv(t, "SOURCE_DIR")
	unsetEnv(t, "DEST_DIR")
	unsetEnv(t, "RETENTION_PERIOD_HOURS")
	t.Setenv("LOG_LEVEL", "debug")

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "SOURCE_DIR=/from/file\nDEST_DIR=/to/file\nRETENTION_PERIOD_HOURS=48\nLOG_LEVEL=warn\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0644))

	cfg, err := Load(envFile)

	require.NoError(t, err)
	assert.Equal(t, "/from/file", cfg.SourceDir)
	assert.Equal(t, "/to/file", cfg.DestDir)
	assert.Equal(t, Hours(48), cfg.RetentionPeriodHours)
	assert.Equal(t, "debug", cfg.LogLevel, "значение из окружения важнее .env")
}

func TestRetentionSeconds_Saturates(t *testing.T) {
	cfg := &Config{RetentionPeriodHours: math.MaxUint64}

	assert.Equal(t, int64(math.MaxInt64), cfg.RetentionSeconds())
	assert.Equal(t, time.Duration(math.MaxInt64), cfg.RetentionPeriod())
}
