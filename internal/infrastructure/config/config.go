package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config is the complete application configuration.
type Config struct {
	Browse     BrowseConfig     `mapstructure:"browse" yaml:"browse"`
	Downloads  DownloadsConfig  `mapstructure:"downloads" yaml:"downloads"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging"`
	Database   DatabaseConfig   `mapstructure:"database" yaml:"database"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance"`
}

// BrowseConfig holds catalog browsing configuration.
type BrowseConfig struct {
	PageSize        int `mapstructure:"page_size" yaml:"page_size"`
	SuggestionLimit int `mapstructure:"suggestion_limit" yaml:"suggestion_limit"`
}

// DownloadsConfig holds download configuration.
type DownloadsConfig struct {
	// Dir is where font files are saved; empty means ~/Downloads/fonts.
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// DatabaseConfig holds download history database configuration.
type DatabaseConfig struct {
	// Path is the sqlite file; empty means the XDG data dir default.
	Path string `mapstructure:"path" yaml:"path"`
}

// AppearanceConfig holds TUI theming configuration.
type AppearanceConfig struct {
	DarkPalette ColorPalette `mapstructure:"dark_palette" yaml:"dark_palette"`
}

// ColorPalette holds hex color values for the TUI theme.
type ColorPalette struct {
	Background     string `mapstructure:"background" yaml:"background"`
	Surface        string `mapstructure:"surface" yaml:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" yaml:"surface_variant"`
	Text           string `mapstructure:"text" yaml:"text"`
	Muted          string `mapstructure:"muted" yaml:"muted"`
	Accent         string `mapstructure:"accent" yaml:"accent"`
	Border         string `mapstructure:"border" yaml:"border"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config") // finds config.toml, config.yaml, ...

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // current directory for development

	v.SetEnvPrefix("FONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load reads the configuration from file and environment variables.
// A missing config file is not an error: defaults apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(config); err != nil {
		return err
	}

	m.config = config
	return nil
}

// Get returns the current configuration snapshot.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// OnChange registers a callback invoked after a config reload.
func (m *Manager) OnChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

// Watch starts watching the config file for changes and reloads on
// write. Safe to call once; later calls are no-ops.
func (m *Manager) Watch() {
	m.mu.Lock()
	if m.watching {
		m.mu.Unlock()
		return
	}
	m.watching = true
	m.mu.Unlock()

	m.viper.OnConfigChange(func(_ fsnotify.Event) {
		config := &Config{}
		if err := m.viper.Unmarshal(config); err != nil {
			return
		}
		if err := validate(config); err != nil {
			return
		}

		m.mu.Lock()
		m.config = config
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.Unlock()

		for _, fn := range callbacks {
			fn(config)
		}
	})
	m.viper.WatchConfig()
}
