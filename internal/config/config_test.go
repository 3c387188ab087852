package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `{
  "profiles": {
    "default": {"api_key": "", "model": "gpt-4o-mini"},
    "Work": {"api_key": "sk-test", "base_url": "https://api.example.com/v1", "model": "gpt-4o"}
  },
  "active_profile": "work",
  "assistant_name": "Kuber",
  "log_level": "debug"
}`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".niveshak", "config.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestLoadFrom_CreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".niveshak", "config.json")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.FileExists(t, path)
	assert.Equal(t, DefaultProfile, cfg.ActiveProfile)
	assert.False(t, cfg.IsValid(), "default profile has no API key")
	assert.Equal(t, DefaultModel, cfg.GetModel())
	assert.Equal(t, "Niveshak", cfg.GetAssistantName())
	assert.Equal(t, "Hi there! I'm Niveshak, an AI assistant. How can I help you today?", cfg.GetGreeting())
	assert.Equal(t, filepath.Join(filepath.Dir(path), "niveshak.log"), cfg.LogFile)
}

func TestLoadFrom_ActiveProfile(t *testing.T) {
	cfg, err := LoadFrom(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.True(t, cfg.IsValid())
	assert.Equal(t, "sk-test", cfg.GetAPIKey())
	assert.Equal(t, "gpt-4o", cfg.GetModel())
	assert.Equal(t, "https://api.example.com/v1", cfg.GetBaseURL())
	assert.Equal(t, "Kuber", cfg.GetAssistantName())
	assert.Contains(t, cfg.GetGreeting(), "I'm Kuber")
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadFrom_EnvOverride(t *testing.T) {
	t.Setenv("NIVESHAK_ASSISTANT_NAME", "Lakshmi")
	t.Setenv("NIVESHAK_LOG_LEVEL", "warn")

	cfg, err := LoadFrom(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "Lakshmi", cfg.GetAssistantName())
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadFrom_UnknownActiveProfileFallsBack(t *testing.T) {
	cfg, err := LoadFrom(writeConfig(t, `{"profiles": {"only": {"model": "m"}}, "active_profile": "missing"}`))
	require.NoError(t, err)

	assert.Equal(t, "only", cfg.ActiveProfile)
	assert.Equal(t, "m", cfg.GetModel())
}

func TestLoadFrom_NoProfiles(t *testing.T) {
	_, err := LoadFrom(writeConfig(t, `{"profiles": {}}`))
	assert.Error(t, err)
}

func TestLoadConfig_UsesHomeEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("NIVESHAK_HOME", home)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".niveshak", "config.json"), cfg.Path())
}

func TestSaveRoundTrip(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	cfg.Profiles["personal"] = Profile{APIKey: "sk-2", Model: "gpt-4.1"}
	require.NoError(t, cfg.SwitchProfile("Personal"))
	require.NoError(t, cfg.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	reloaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "personal", reloaded.ActiveProfile)
	assert.Equal(t, "sk-2", reloaded.GetAPIKey())
}

func TestSwitchProfile_Unknown(t *testing.T) {
	cfg, err := LoadFrom(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Error(t, cfg.SwitchProfile("nope"))
	assert.Equal(t, "work", cfg.ActiveProfile)
}

func TestRemoveProfile(t *testing.T) {
	cfg, err := LoadFrom(writeConfig(t, `{"profiles": {"solo": {"api_key": "k", "model": "m"}}, "active_profile": "solo"}`))
	require.NoError(t, err)

	require.NoError(t, cfg.RemoveProfile("solo"))
	assert.Equal(t, DefaultProfile, cfg.ActiveProfile)
	assert.Contains(t, cfg.Profiles, DefaultProfile)
	assert.False(t, cfg.IsValid())

	assert.Error(t, cfg.RemoveProfile("solo"))
}
