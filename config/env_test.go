package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var settingsVars = []string{
	"PATHSIM_FRONTEND", "PATHSIM_LOG_LEVEL", "PATHSIM_LOG_FORMAT", "PATHSIM_LOG_FILE",
	"PATHSIM_TEMPLATE_DIR", "PATHSIM_INITIAL_ENTITIES", "PATHSIM_SEED", "PATHSIM_PROFILE",
	"PATHSIM_FULLSCREEN",
}

// clearSettingsEnv unsets every settings variable for the test's duration
func clearSettingsEnv(t *testing.T) {
	t.Helper()
	for _, k := range settingsVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	clearSettingsEnv(t)

	s, err := LoadSettings(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, DefaultSettings(), s)
	assert.False(t, s.EnvFileLoaded)
}

func TestLoadSettingsFromEnvFile(t *testing.T) {
	clearSettingsEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	content := "PATHSIM_FRONTEND=terminal\nPATHSIM_INITIAL_ENTITIES=10\nPATHSIM_SEED=1234\nPATHSIM_PROFILE=cpu\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)

	assert.True(t, s.EnvFileLoaded)
	assert.Equal(t, FrontendTerminal, s.Frontend)
	assert.Equal(t, 10, s.InitialEntities)
	assert.Equal(t, uint64(1234), s.Seed)
	assert.Equal(t, "cpu", s.Profile)
}

func TestLoadSettingsEnvironmentWins(t *testing.T) {
	clearSettingsEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PATHSIM_LOG_LEVEL=debug\n"), 0o644))
	t.Setenv("PATHSIM_LOG_LEVEL", "warn")

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", s.LogLevel)
}

func TestLoadSettingsClampsEntities(t *testing.T) {
	clearSettingsEnv(t)
	t.Setenv("PATHSIM_INITIAL_ENTITIES", "100000")

	s, err := LoadSettings(filepath.Join(t.TempDir(), "none.env"))
	require.NoError(t, err)
	assert.Equal(t, MaxEntities, s.InitialEntities)
}

func TestLoadSettingsRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"PATHSIM_FRONTEND":         "vr",
		"PATHSIM_INITIAL_ENTITIES": "-1",
		"PATHSIM_SEED":             "abc",
		"PATHSIM_PROFILE":          "trace",
		"PATHSIM_FULLSCREEN":       "maybe",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearSettingsEnv(t)
			t.Setenv(key, value)

			_, err := LoadSettings(filepath.Join(t.TempDir(), "none.env"))
			assert.ErrorContains(t, err, key)
		})
	}
}

func TestNewLogger(t *testing.T) {
	s := DefaultSettings()
	s.LogLevel = "debug"
	s.LogFormat = "json"
	s.LogFile = filepath.Join(t.TempDir(), "sim.log")

	log, closer, err := NewLogger(s)
	require.NoError(t, err)
	log.Info("hello")
	require.NoError(t, closer.Close())

	raw, err := os.ReadFile(s.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"hello"`)

	s.LogLevel = "loud"
	_, _, err = NewLogger(s)
	assert.Error(t, err)
}
