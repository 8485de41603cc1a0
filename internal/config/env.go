package config

import "fmt"

// envMapping maps environment variables to the settings they override.
var envMapping = map[string]func(c *Config, v string) error{
	"PLACEHOLDER_LOG_LEVEL": func(c *Config, v string) error {
		c.Logging.Level = v
		return nil
	},
	"PLACEHOLDER_LOG_FORMAT": func(c *Config, v string) error {
		c.Logging.Format = v
		return nil
	},
	"PLACEHOLDER_RENDER_FORMAT": func(c *Config, v string) error {
		c.Render.Format = v
		return nil
	},
	"PLACEHOLDER_WATCH_DEBOUNCE": func(c *Config, v string) error {
		return c.Watch.Debounce.UnmarshalText([]byte(v))
	},
}

// applyEnv applies every set variable of envMapping to c.
// Empty values are treated as valid values, not as unset.
func applyEnv(c *Config, lookup func(string) (string, bool)) error {
	if lookup == nil {
		return nil
	}
	for name, set := range envMapping {
		v, ok := lookup(name)
		if !ok {
			continue
		}
		if err := set(c, v); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
