package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// AppName is used for config directories and the environment prefix.
const AppName = "splitpane"

// configSearchPaths returns the paths to search for config files in order of precedence
// (later paths have higher priority in Viper)
func configSearchPaths(appName string) []string {
	paths := []string{}

	// System-wide (lowest priority)
	paths = append(paths, filepath.Join("/etc", appName))

	// User-specific
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName))
	}

	// Current directory (highest priority for files)
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, cwd)
	}

	return paths
}

// UserConfigDir returns the user-specific config directory for the app
func UserConfigDir(appName string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// newViper creates and configures a new Viper instance for the given app
func newViper(appName string) *viper.Viper {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	for _, path := range configSearchPaths(appName) {
		v.AddConfigPath(path)
	}

	v.SetEnvPrefix(strings.ToUpper(appName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load loads the configuration from cfgFile (or the search paths when empty),
// environment variables and defaults. Flags in fs, when given, override all of them.
func Load(cfgFile string, fs *pflag.FlagSet) (*Config, error) {
	v := newViper(AppName)
	setViperDefaults(v, DefaultConfig())

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found; use defaults + env vars
	}

	if fs != nil {
		if err := bindFlags(v, fs); err != nil {
			return nil, err
		}
	}

	return decode(v)
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"output":          "output.format",
	"storage-backend": "storage.backend",
	"storage-path":    "storage.file.path",
	"namespace":       "persistence.namespace",
	"keyboard-step":   "keyboard.step",
	"metrics-addr":    "metrics.addr",
	"log-level":       "log.level",
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", name, err)
		}
	}
	return nil
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Storage.File.Path = expandHome(cfg.Storage.File.Path)
	cfg.Storage.SQLite.Path = expandHome(cfg.Storage.SQLite.Path)
	cfg.Log.FilePath = expandHome(cfg.Log.FilePath)

	return &cfg, nil
}

// setViperDefaults sets default values in Viper from a config struct
func setViperDefaults(v *viper.Viper, c *Config) {
	v.SetDefault("log.level", c.Log.Level)
	v.SetDefault("log.format", c.Log.Format)
	v.SetDefault("log.output", c.Log.Output)
	v.SetDefault("log.file_path", c.Log.FilePath)
	v.SetDefault("log.max_size_mb", c.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", c.Log.MaxBackups)
	v.SetDefault("log.max_age_days", c.Log.MaxAgeDays)
	v.SetDefault("log.enable_caller", c.Log.EnableCaller)
	v.SetDefault("log.no_color", c.Log.NoColor)
	v.SetDefault("output.format", c.Output.Format)
	v.SetDefault("output.color", c.Output.Color)
	v.SetDefault("storage.backend", string(c.Storage.Backend))
	v.SetDefault("storage.file.path", c.Storage.File.Path)
	v.SetDefault("storage.sqlite.path", c.Storage.SQLite.Path)
	v.SetDefault("storage.sqlite.max_open_conns", c.Storage.SQLite.MaxOpenConns)
	v.SetDefault("storage.postgres.dsn", c.Storage.Postgres.DSN)
	v.SetDefault("storage.postgres.max_conns", c.Storage.Postgres.MaxConns)
	v.SetDefault("storage.timeout", c.Storage.Timeout)
	v.SetDefault("persistence.namespace", c.Persistence.Namespace)
	v.SetDefault("persistence.debounce", c.Persistence.Debounce)
	v.SetDefault("keyboard.step", c.Keyboard.Step)
	v.SetDefault("metrics.enabled", c.Metrics.Enabled)
	v.SetDefault("metrics.addr", c.Metrics.Addr)
}

// NewViperFromConfig creates a viper instance populated with values from a config struct
func NewViperFromConfig(c *Config) *viper.Viper {
	v := viper.New()

	v.Set("log.level", c.Log.Level)
	v.Set("log.format", c.Log.Format)
	v.Set("log.output", c.Log.Output)
	v.Set("log.file_path", c.Log.FilePath)
	v.Set("log.max_size_mb", c.Log.MaxSizeMB)
	v.Set("log.max_backups", c.Log.MaxBackups)
	v.Set("log.max_age_days", c.Log.MaxAgeDays)
	v.Set("log.enable_caller", c.Log.EnableCaller)
	v.Set("log.no_color", c.Log.NoColor)
	v.Set("output.format", c.Output.Format)
	v.Set("output.color", c.Output.Color)
	v.Set("storage.backend", string(c.Storage.Backend))
	v.Set("storage.file.path", c.Storage.File.Path)
	v.Set("storage.sqlite.path", c.Storage.SQLite.Path)
	v.Set("storage.sqlite.max_open_conns", c.Storage.SQLite.MaxOpenConns)
	v.Set("storage.postgres.dsn", c.Storage.Postgres.DSN)
	v.Set("storage.postgres.max_conns", c.Storage.Postgres.MaxConns)
	v.Set("storage.timeout", c.Storage.Timeout.String())
	v.Set("persistence.namespace", c.Persistence.Namespace)
	v.Set("persistence.debounce", c.Persistence.Debounce.String())
	v.Set("keyboard.step", c.Keyboard.Step)
	v.Set("metrics.enabled", c.Metrics.Enabled)
	v.Set("metrics.addr", c.Metrics.Addr)

	return v
}

// ConfigFileUsed returns the config file path that was loaded, if any
func ConfigFileUsed(cfgFile string) string {
	v := newViper(AppName)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	}
	_ = v.ReadInConfig()
	return v.ConfigFileUsed()
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
