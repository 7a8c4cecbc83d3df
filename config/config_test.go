package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 30*time.Second, cfg.PlannerTimeout)
	assert.Equal(t, 30*time.Minute, cfg.PlanTTL)
	assert.Equal(t, PlanStoreMemory, cfg.PlanStore)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.False(t, cfg.PlannerEnabled())
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PLANNER_TIMEOUT", "5s")
	t.Setenv("PLAN_STORE", "redis")
	t.Setenv("APP_PORT", "9090")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.True(t, cfg.PlannerEnabled())
	assert.Equal(t, 5*time.Second, cfg.PlannerTimeout)
	assert.Equal(t, PlanStoreRedis, cfg.PlanStore)
	assert.Equal(t, "9090", cfg.AppPort)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "festeasy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("GEMINI_MODEL: gemini-test\nPLAN_STORE: carrier-pigeon\n"), 0o600))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "gemini-test", cfg.GeminiModel)
	assert.Equal(t, PlanStoreMemory, cfg.PlanStore)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
