// Package config provides configuration types and defaults for strata.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/strata-labs/strata/internal/log"
	"github.com/strata-labs/strata/internal/tracing"
)

// Start modes.
const (
	ModeMarketing = "marketing"
	ModeDashboard = "dashboard"
)

// Config holds all configuration options for strata.
type Config struct {
	DataDir    string          `mapstructure:"data_dir"`    // Override for the embedded mock data
	AutoReload bool            `mapstructure:"auto_reload"` // Watch DataDir and reload on change
	Loading    LoadingConfig   `mapstructure:"loading"`
	UI         UIConfig        `mapstructure:"ui"`
	Theme      ThemeConfig     `mapstructure:"theme"`
	Tracing    tracing.Config  `mapstructure:"tracing"`
	Flags      map[string]bool `mapstructure:"flags"`
	Settings   map[string]bool `mapstructure:"settings"` // Dashboard settings page toggles
}

// LoadingConfig controls the simulated refresh latency.
type LoadingConfig struct {
	Delay time.Duration `mapstructure:"delay"`
}

// UIConfig holds user interface options.
type UIConfig struct {
	EmptyText     string `mapstructure:"empty_text"`     // Default table empty message
	StartMode     string `mapstructure:"start_mode"`     // "marketing" (default) or "dashboard"
	StartPage     string `mapstructure:"start_page"`     // Dashboard path shown first
	MarkdownStyle string `mapstructure:"markdown_style"` // "dark" (default) or "light"
}

// ThemeConfig overrides individual palette colors. Empty keeps the default.
type ThemeConfig struct {
	Muted   string `mapstructure:"muted"`
	Error   string `mapstructure:"error"`
	Success string `mapstructure:"success"`
	Accent  string `mapstructure:"accent"`
}

// MaxLoadingDelay bounds loading.delay.
const MaxLoadingDelay = 30 * time.Second

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		AutoReload: true,
		Loading:    LoadingConfig{Delay: 1500 * time.Millisecond},
		UI: UIConfig{
			EmptyText:     "No data available",
			StartMode:     ModeMarketing,
			StartPage:     "/dashboard",
			MarkdownStyle: "dark",
		},
		Tracing: defaultTracing(),
		Settings: map[string]bool{
			"notifications": true,
			"usage_alerts":  false,
			"dark_charts":   true,
		},
	}
}

func defaultTracing() tracing.Config {
	t := tracing.DefaultConfig()
	t.FilePath = DefaultTracesFilePath()
	return t
}

// DefaultTracesFilePath returns ~/.config/strata/traces/traces.jsonl.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".strata", "traces", "traces.jsonl")
	}
	return filepath.Join(home, ".config", "strata", "traces", "traces.jsonl")
}

// Validate checks cross-field constraints viper cannot express.
func Validate(cfg Config) error {
	var errs []error

	switch cfg.UI.StartMode {
	case "", ModeMarketing, ModeDashboard:
	default:
		errs = append(errs, fmt.Errorf("ui.start_mode must be %q or %q, got %q", ModeMarketing, ModeDashboard, cfg.UI.StartMode))
	}
	if p := cfg.UI.StartPage; p != "" && p != "/dashboard" && !strings.HasPrefix(p, "/dashboard/") {
		errs = append(errs, fmt.Errorf("ui.start_page must be a /dashboard path, got %q", p))
	}
	switch cfg.UI.MarkdownStyle {
	case "", "dark", "light":
	default:
		errs = append(errs, fmt.Errorf("ui.markdown_style must be dark or light, got %q", cfg.UI.MarkdownStyle))
	}
	if cfg.Loading.Delay < 0 || cfg.Loading.Delay > MaxLoadingDelay {
		errs = append(errs, fmt.Errorf("loading.delay must be between 0 and %s, got %s", MaxLoadingDelay, cfg.Loading.Delay))
	}
	if err := ValidateTheme(cfg.Theme); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateTracing(cfg.Tracing); err != nil {
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// ValidateTheme checks every non-empty color is a hex code.
func ValidateTheme(theme ThemeConfig) error {
	for name, value := range map[string]string{
		"muted":   theme.Muted,
		"error":   theme.Error,
		"success": theme.Success,
		"accent":  theme.Accent,
	} {
		if value != "" && !hexColor.MatchString(value) {
			return fmt.Errorf("theme.%s must be a hex color like #A78BFA, got %q", name, value)
		}
	}
	return nil
}

// ValidateTracing checks the tracing section.
func ValidateTracing(cfg tracing.Config) error {
	switch cfg.Exporter {
	case "", tracing.ExporterNone, tracing.ExporterFile, tracing.ExporterStdout, tracing.ExporterOTLP:
	default:
		return fmt.Errorf("tracing.exporter must be none, file, stdout or otlp, got %q", cfg.Exporter)
	}
	if cfg.SampleRate < 0 || cfg.SampleRate > 1 {
		return fmt.Errorf("tracing.sample_rate must be between 0 and 1, got %v", cfg.SampleRate)
	}
	if cfg.Enabled && cfg.Exporter == tracing.ExporterFile && cfg.FilePath == "" {
		return fmt.Errorf("tracing.file_path is required for the file exporter")
	}
	return nil
}

// DefaultConfigTemplate returns the default config as YAML with comments.
func DefaultConfigTemplate() string {
	return `# strata configuration

# Directory of dataset YAML files overriding the built-in mock data.
# data_dir: ./data

# Reload datasets when files in data_dir change.
auto_reload: true

loading:
  # How long the refresh action shows the loading state.
  delay: 1.5s

ui:
  empty_text: "No data available"
  # marketing or dashboard
  start_mode: marketing
  start_page: /dashboard
  markdown_style: dark

theme: {}
  # muted: "#6E6E6E"
  # error: "#FF8787"
  # success: "#73F59F"
  # accent: "#A78BFA"

tracing:
  enabled: false
  # none, file, stdout or otlp
  exporter: file
  otlp_endpoint: localhost:4317
  sample_rate: 1.0

flags:
  charts: true
  api-key-create: true
  marketing: true

settings:
  notifications: true
  usage_alerts: false
  dark_charts: true
`
}

// WriteDefaultConfig writes the default template to configPath.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "created default config", "path", configPath)
	return nil
}
