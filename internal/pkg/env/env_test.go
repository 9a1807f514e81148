package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withEnvMap(t *testing.T, m map[string]string) {
	t.Helper()
	prev := Env
	Env = m
	t.Cleanup(func() { Env = prev })
}

func TestGetEnvPrefersEnvFile(t *testing.T) {
	t.Setenv("QB_TEST_KEY", "from-os")
	withEnvMap(t, map[string]string{"QB_TEST_KEY": "from-file"})

	assert.Equal(t, "from-file", GetEnv("QB_TEST_KEY", "default"))
	assert.Equal(t, "default", GetEnv("QB_TEST_MISSING", "default"))
}

func TestLoadConfigDefaults(t *testing.T) {
	withEnvMap(t, map[string]string{})

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "4000", cfg.AppPort)
	assert.Equal(t, 10*time.Minute, cfg.CheckInCacheTTL)
	assert.Equal(t, time.Hour, cfg.QuestExpiryInterval)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	withEnvMap(t, map[string]string{
		"APP_ENV":           "dev",
		"DEV_USER_ID":       "7",
		"CHECKIN_CACHE_TTL": "30s",
	})

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, uint(7), cfg.DevUserID)
	assert.Equal(t, 30*time.Second, cfg.CheckInCacheTTL)
	assert.Equal(t, "localhost:8080", cfg.Addr())
}

func TestLoadConfigInvalidDuration(t *testing.T) {
	withEnvMap(t, map[string]string{"QUEST_EXPIRY_INTERVAL": "soon"})

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestSetupEnvFileReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("APP_ENV=dev\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	withEnvMap(t, nil)

	SetupEnvFile()
	assert.Equal(t, "dev", Env["APP_ENV"])
	assert.True(t, IsDev())
}
