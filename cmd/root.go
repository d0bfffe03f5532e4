package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/strata-labs/strata/internal/app"
	"github.com/strata-labs/strata/internal/config"
	"github.com/strata-labs/strata/internal/dataset"
	"github.com/strata-labs/strata/internal/log"
	"github.com/strata-labs/strata/internal/tracing"
	"github.com/strata-labs/strata/internal/ui/styles"
)

func init() {
	// Query the terminal background before any Bubble Tea program starts so
	// the OSC 11 response cannot race with the input loop.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

// localConfigPath is checked before the user config directory.
const localConfigPath = ".strata/config.yaml"

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:   "strata",
	Short: "A terminal tour of the Strata data platform",
	Long: `Strata renders the marketing site and the admin dashboard of the Strata
data platform in the terminal. All data is mock data loaded from YAML files,
either built in or read from --data-dir.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/strata/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write debug logs to $STRATA_LOG (default debug.log)")
	rootCmd.PersistentFlags().String("data-dir", "",
		"directory of dataset YAML files overriding the built-in data")
	rootCmd.Flags().Bool("dashboard", false, "start on the dashboard instead of the marketing site")
	rootCmd.Flags().Bool("no-auto-reload", false, "do not reload datasets when files in the data dir change")

	_ = viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("auto_reload", defaults.AutoReload)
	viper.SetDefault("loading.delay", defaults.Loading.Delay)
	viper.SetDefault("ui.empty_text", defaults.UI.EmptyText)
	viper.SetDefault("ui.start_mode", defaults.UI.StartMode)
	viper.SetDefault("ui.start_page", defaults.UI.StartPage)
	viper.SetDefault("ui.markdown_style", defaults.UI.MarkdownStyle)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.file_path", defaults.Tracing.FilePath)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)
	viper.SetDefault("settings", defaults.Settings)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .strata/config.yaml (current directory)
		// 2. ~/.config/strata/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "strata"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if writeErr := config.WriteDefaultConfig(localConfigPath); writeErr == nil {
				viper.SetConfigFile(localConfigPath)
				_ = viper.ReadInConfig()
			}
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// configPath returns the file settings are saved to.
func configPath() string {
	if p := viper.ConfigFileUsed(); p != "" {
		return p
	}
	return localConfigPath
}

// setupLogging enables the file logger when --debug or STRATA_DEBUG is set.
// The returned cleanup is never nil.
func setupLogging(prefix string) (func(), bool, error) {
	if os.Getenv("STRATA_DEBUG") == "" && !debugFlag {
		return func() {}, false, nil
	}
	logPath := os.Getenv("STRATA_LOG")
	if logPath == "" {
		logPath = "debug.log"
	}
	cleanup, err := log.InitWithTeaLog(logPath, prefix)
	if err != nil {
		return func() {}, false, fmt.Errorf("initializing logging: %w", err)
	}
	log.Info(log.CatConfig, "strata starting", "debug", true, "logPath", logPath, "config", viper.ConfigFileUsed())
	return cleanup, true, nil
}

// setupTracing installs the configured tracer provider. The returned
// shutdown flushes pending spans.
func setupTracing() (func(), error) {
	provider, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return func() {}, fmt.Errorf("initializing tracing: %w", err)
	}
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			log.ErrorErr(log.CatTrace, "tracing shutdown", err)
		}
	}, nil
}

// newStore returns the dataset store for cfg.DataDir, falling back to the
// built-in data for anything the directory lacks.
func newStore(c config.Config) *dataset.Store {
	if c.DataDir == "" {
		return dataset.NewStore(dataset.DefaultFS(), false)
	}
	return dataset.NewStore(dataset.Overlay(os.DirFS(c.DataDir)), false)
}

func runApp(cmd *cobra.Command, _ []string) error {
	if dash, _ := cmd.Flags().GetBool("dashboard"); dash {
		cfg.UI.StartMode = config.ModeDashboard
	}
	if noReload, _ := cmd.Flags().GetBool("no-auto-reload"); noReload {
		cfg.AutoReload = false
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	cleanup, debug, err := setupLogging("strata")
	if err != nil {
		return err
	}
	defer cleanup()

	shutdown, err := setupTracing()
	if err != nil {
		return err
	}
	defer shutdown()

	styles.ApplyTheme(cfg.Theme.Muted, cfg.Theme.Error, cfg.Theme.Success, cfg.Theme.Accent)

	model := app.New(app.Options{
		Config:     cfg,
		ConfigPath: configPath(),
		Store:      newStore(cfg),
		Debug:      debug,
		WatchDir:   cfg.DataDir,
	})
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()

	// Clean up watcher resources
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
