package fdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, int64(42), settings.Seed)
	assert.Equal(t, "data", settings.OutputDir)
	assert.Empty(t, settings.SQLitePath)
	assert.False(t, settings.Report)
	assert.Equal(t, "info", settings.LogLevel)
}

func TestLoadSettingsFromEnvironment(t *testing.T) {
	t.Setenv("FDL_SEED", "1234")
	t.Setenv("FDL_OUTPUT_DIR", "/tmp/league")
	t.Setenv("FDL_SQLITE_PATH", "/tmp/league.db")
	t.Setenv("FDL_REPORT", "true")
	t.Setenv("FDL_LOG_LEVEL", "debug")

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, int64(1234), settings.Seed)
	assert.Equal(t, "/tmp/league", settings.OutputDir)
	assert.Equal(t, "/tmp/league.db", settings.SQLitePath)
	assert.True(t, settings.Report)
	assert.Equal(t, "debug", settings.LogLevel)

	t.Setenv("FDL_SEED", "many")
	_, err = LoadSettings()
	assert.Error(t, err)
}
