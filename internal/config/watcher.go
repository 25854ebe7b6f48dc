package config

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Watcher reloads the configuration when its file changes and hands the new
// value to registered callbacks.
type Watcher struct {
	v         *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	current   *Config
	onError   func(error)
}

// NewWatcher creates a watcher for cfgFile (or the search paths when empty).
func NewWatcher(cfgFile string) (*Watcher, error) {
	v := newViper(AppName)
	setViperDefaults(v, DefaultConfig())

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}

	return &Watcher{v: v, current: cfg}, nil
}

// OnChange registers a callback to be called when configuration changes.
func (w *Watcher) OnChange(callback func(*Config)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// OnError registers a callback for reload failures.
func (w *Watcher) OnError(callback func(error)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onError = callback
}

// Start begins watching for configuration changes.
func (w *Watcher) Start() {
	w.v.OnConfigChange(func(e fsnotify.Event) {
		if e.Has(fsnotify.Write) || e.Has(fsnotify.Create) {
			w.handleChange()
		}
	})
	w.v.WatchConfig()
}

// Current returns the last loaded configuration.
func (w *Watcher) Current() *Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Reload forces a configuration reload.
func (w *Watcher) Reload() error {
	if err := w.v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}
	return w.apply()
}

func (w *Watcher) handleChange() {
	if err := w.apply(); err != nil {
		w.mu.RLock()
		onError := w.onError
		w.mu.RUnlock()
		if onError != nil {
			onError(err)
		}
	}
}

func (w *Watcher) apply() error {
	cfg, err := decode(w.v)
	if err != nil {
		return err
	}

	w.mu.Lock()
	w.current = cfg
	callbacks := make([]func(*Config), len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
	return nil
}
