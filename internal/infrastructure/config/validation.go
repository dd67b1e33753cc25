package config

import "fmt"

// validate rejects configs the application cannot run with. Values
// that merely look odd are normalized instead of rejected.
func validate(c *Config) error {
	if c.Browse.PageSize < 1 {
		c.Browse.PageSize = DefaultPageSize
	}
	if c.Browse.SuggestionLimit < 1 {
		c.Browse.SuggestionLimit = DefaultSuggestionLimit
	}

	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("invalid logging format %q (want console or json)", c.Logging.Format)
	}
	return nil
}
