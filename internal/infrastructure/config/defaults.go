package config

// Default browsing constants.
const (
	DefaultPageSize        = 9
	DefaultSuggestionLimit = 6
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Browse: BrowseConfig{
			PageSize:        DefaultPageSize,
			SuggestionLimit: DefaultSuggestionLimit,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// setDefaults registers defaults with viper so unset keys fall back.
func (m *Manager) setDefaults() {
	m.viper.SetDefault("browse.page_size", DefaultPageSize)
	m.viper.SetDefault("browse.suggestion_limit", DefaultSuggestionLimit)
	m.viper.SetDefault("downloads.dir", "")
	m.viper.SetDefault("logging.level", "warn")
	m.viper.SetDefault("logging.format", "console")
	m.viper.SetDefault("database.path", "")
}
