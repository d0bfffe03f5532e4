package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func readConfig(t *testing.T, path string) Config {
	t.Helper()
	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())
	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	return cfg
}

func TestSaveSettings_ReplacesSectionAndKeepsComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	err := SaveSettings(path, map[string]bool{"notifications": false, "usage_alerts": true, "dark_charts": true})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "# strata configuration")

	cfg := readConfig(t, path)
	require.Equal(t, map[string]bool{"notifications": false, "usage_alerts": true, "dark_charts": true}, cfg.Settings)
	require.Equal(t, "marketing", cfg.UI.StartMode)
}

func TestSaveSettings_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveSettings(path, map[string]bool{"notifications": true}))

	cfg := readConfig(t, path)
	require.Equal(t, map[string]bool{"notifications": true}, cfg.Settings)
}

func TestSaveFlags_AppendsSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("auto_reload: false\n"), 0o600))

	require.NoError(t, SaveFlags(path, map[string]bool{"charts": false}))

	cfg := readConfig(t, path)
	require.False(t, cfg.AutoReload)
	require.Equal(t, map[string]bool{"charts": false}, cfg.Flags)
}

func TestSaveSettings_RejectsNonMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- a\n- b\n"), 0o600))

	require.Error(t, SaveSettings(path, map[string]bool{"x": true}))
}
