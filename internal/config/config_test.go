package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/strata-labs/strata/internal/tracing"
)

func TestDefaults_AreValid(t *testing.T) {
	require.NoError(t, Validate(Defaults()))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"bad start mode", func(c *Config) { c.UI.StartMode = "admin" }, "ui.start_mode"},
		{"bad start page", func(c *Config) { c.UI.StartPage = "/pricing" }, "ui.start_page"},
		{"nested start page ok", func(c *Config) { c.UI.StartPage = "/dashboard/streams" }, ""},
		{"negative delay", func(c *Config) { c.Loading.Delay = -time.Second }, "loading.delay"},
		{"huge delay", func(c *Config) { c.Loading.Delay = time.Hour }, "loading.delay"},
		{"zero delay ok", func(c *Config) { c.Loading.Delay = 0 }, ""},
		{"bad markdown style", func(c *Config) { c.UI.MarkdownStyle = "neon" }, "markdown_style"},
		{"bad color", func(c *Config) { c.Theme.Accent = "purple" }, "theme.accent"},
		{"short hex ok", func(c *Config) { c.Theme.Muted = "#abc" }, ""},
		{"bad exporter", func(c *Config) { c.Tracing.Exporter = "zipkin" }, "tracing.exporter"},
		{"bad sample rate", func(c *Config) { c.Tracing.SampleRate = 2 }, "sample_rate"},
		{"file exporter needs path", func(c *Config) {
			c.Tracing.Enabled = true
			c.Tracing.FilePath = ""
		}, "file_path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidConfig)
			require.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestDefaultConfigTemplate_LoadsThroughViper(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(DefaultConfigTemplate())))

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	defaults := Defaults()
	require.Equal(t, defaults.Loading, cfg.Loading)
	require.Equal(t, defaults.UI, cfg.UI)
	require.Equal(t, defaults.Settings, cfg.Settings)
	require.Equal(t, tracing.ExporterFile, cfg.Tracing.Exporter)
	require.True(t, cfg.Flags["charts"])
	require.True(t, cfg.AutoReload)
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, DefaultConfigTemplate(), string(data))
}
