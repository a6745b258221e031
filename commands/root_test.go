package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigWritesAndClosesLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", ":memory:")
	t.Setenv("APP_LOG_DIR", dir)

	cfg, log, closeLog, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.LogDir)

	log.Info("front desk open")
	closeLog()
	log.Info("front desk closed")

	data, err := os.ReadFile(filepath.Join(dir, "app-"+time.Now().Format("2006-01-02")+".log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "front desk open")
	assert.NotContains(t, string(data), "front desk closed")
}

func TestLoadConfigWithoutLogDir(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", ":memory:")
	t.Setenv("APP_LOG_DIR", "")

	_, log, closeLog, err := loadConfig()
	require.NoError(t, err)
	require.NotNil(t, closeLog)
	closeLog()
	log.Info("still logging")
}
