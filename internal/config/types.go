package config

import (
	"time"

	"splitpane/internal/storage"
)

// LogConfig holds logging configuration
type LogConfig struct {
	Level        string `mapstructure:"level"`         // debug, info, warn, error
	Format       string `mapstructure:"format"`        // text, json, pretty
	Output       string `mapstructure:"output"`        // stdout, stderr, or file path
	FilePath     string `mapstructure:"file_path"`     // path to log file (in addition to output)
	MaxSizeMB    int    `mapstructure:"max_size_mb"`   // max size in MB before rotation
	MaxBackups   int    `mapstructure:"max_backups"`   // max number of old log files to keep
	MaxAgeDays   int    `mapstructure:"max_age_days"`  // max days to retain old log files
	EnableCaller bool   `mapstructure:"enable_caller"` // include source file/line in logs
	NoColor      bool   `mapstructure:"no_color"`      // disable colored output (pretty format only)
}

// OutputConfig holds output formatting options
type OutputConfig struct {
	Format string `mapstructure:"format"` // table, json, yaml
	Color  bool   `mapstructure:"color"`
}

// PersistenceConfig controls how pane group layouts are saved
type PersistenceConfig struct {
	// Namespace prefixes every storage key.
	Namespace string `mapstructure:"namespace"`

	// Debounce is the idle window that coalesces layout writes.
	Debounce time.Duration `mapstructure:"debounce"`
}

// KeyboardConfig holds keyboard resize settings for the terminal view
type KeyboardConfig struct {
	// Step is the percentage a single arrow key moves a handle.
	Step float64 `mapstructure:"step"`
}

// MetricsConfig holds Prometheus metrics settings
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

// Config is the full splitpane configuration
type Config struct {
	Log         LogConfig         `mapstructure:"log"`
	Output      OutputConfig      `mapstructure:"output"`
	Storage     storage.Config    `mapstructure:"storage"`
	Persistence PersistenceConfig `mapstructure:"persistence"`
	Keyboard    KeyboardConfig    `mapstructure:"keyboard"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			Output:     "stderr",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Output: OutputConfig{
			Format: "table",
			Color:  true,
		},
		Storage: storage.Config{
			Backend: storage.BackendFile,
			File: storage.FileConfig{
				Path: "~/.local/share/splitpane/layouts.json",
			},
			SQLite: storage.SQLiteConfig{
				Path:         "~/.local/share/splitpane/layouts.db",
				MaxOpenConns: 4,
			},
			Postgres: storage.PostgresConfig{
				MaxConns: 4,
			},
			Timeout: 2 * time.Second,
		},
		Persistence: PersistenceConfig{
			Namespace: "splitpane",
			Debounce:  100 * time.Millisecond,
		},
		Keyboard: KeyboardConfig{
			Step: 10,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Addr:    "127.0.0.1:9464",
		},
	}
}
