package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"splitpane/internal/cli/middleware"
	"splitpane/internal/cli/output"
	"splitpane/internal/config"
	"splitpane/internal/logger"
	"splitpane/internal/storage"

	// Register the SQL storage backends.
	_ "splitpane/internal/storage/postgres"
	_ "splitpane/internal/storage/sqlite"
)

var (
	// cfgFile is the path to the config file (set via --config flag)
	cfgFile string

	// cfg holds the loaded configuration
	cfg *config.Config

	// log is the logger instance
	log *logger.Logger

	verboseMode bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "splitpane",
	Short: "Split-pane layout solver and state tool",
	Long: `splitpane computes, validates and adjusts percentage layouts for groups
of resizable panes, and manages the layouts saved for them.

Pane groups are described in YAML files:

  id: editor
  direction: horizontal
  autosave_id: editor
  panes:
    - id: sidebar
      constraints: {min_size: 10, max_size: 40, collapsible: true, default_size: 25}
    - id: main
      constraints: {min_size: 30}`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}

		var err error
		log, err = logger.New(cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		storage.SetLogger(log.Component("storage").Logger)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return log.Close()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command. It is called by main.main.
func Execute() {
	middleware.ApplyRecursive(rootCmd,
		middleware.Logging(middleware.LoggingOptions{
			Logger:       func() *logger.Logger { return log },
			SkipCommands: []string{"help"},
		}),
		middleware.Timing(func() bool { return verboseMode }),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/splitpane/config.yaml)")
	pf.StringP("output", "o", "table", "output format (table, json, yaml, quiet)")
	pf.BoolVarP(&verboseMode, "verbose", "v", false, "print command timing")
	pf.String("storage-backend", "", "storage backend (memory, file, sqlite, postgres)")
	pf.String("storage-path", "", "path of the file storage backend")
	pf.String("namespace", "", "storage key namespace")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
}

// loadConfig loads the configuration, letting changed flags win.
func loadConfig(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// newOutput returns a writer for the configured output format.
func newOutput(cmd *cobra.Command) *output.Writer {
	return output.NewWriter(output.ParseFormat(cfg.Output.Format)).
		WithOutput(cmd.OutOrStdout())
}

// cmdLogger returns the request-scoped logger set by the logging middleware.
func cmdLogger(cmd *cobra.Command) *logger.Logger {
	if cmd.Context() == nil {
		return log
	}
	return logger.FromContext(cmd.Context())
}
