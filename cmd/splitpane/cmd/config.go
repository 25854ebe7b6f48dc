package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"splitpane/internal/config"
)

var (
	configInitForce  bool
	configInitFormat string
	configInitDir    string
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View and manage splitpane configuration.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// configShowCmd shows current configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the configuration in effect after files, environment and flags are applied.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newOutput(cmd).Write(config.NewViperFromConfig(cfg).AllSettings())
	},
}

// configPathCmd shows config file path
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := newOutput(cmd)
		if path := config.ConfigFileUsed(cfgFile); path != "" {
			return out.Line(path)
		}
		return out.Line("No config file found, using defaults")
	},
}

// configInitCmd generates default configuration
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate default configuration",
	Long: `Generate a default configuration file.

An existing file is only replaced with --force.

Examples:
  splitpane config init
  splitpane config init --format toml
  splitpane config init --dir . --force`,
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configPathCmd, configInitCmd)

	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite existing configuration")
	configInitCmd.Flags().StringVar(&configInitFormat, "format", "yaml", "file format (yaml, toml, json)")
	configInitCmd.Flags().StringVar(&configInitDir, "dir", "", "target directory (default is $HOME/.config/splitpane)")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	dir := configInitDir
	if dir == "" {
		var err error
		if dir, err = config.UserConfigDir(config.AppName); err != nil {
			return err
		}
	}

	if configInitForce {
		for _, ext := range config.SupportedFormats {
			existing := filepath.Join(dir, "config."+ext)
			if err := os.Remove(existing); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove existing config: %w", err)
			}
		}
	}

	path, created, err := config.GenerateConfigIfNotExists(dir, configInitFormat)
	if err != nil {
		return fmt.Errorf("failed to generate config: %w", err)
	}

	out := newOutput(cmd)
	if !created {
		return fmt.Errorf("config file already exists at %s; use --force to overwrite", path)
	}
	out.Done("Configuration initialized at: %s", path)
	return nil
}
