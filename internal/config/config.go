package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds all settings.
type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Render  RenderConfig  `toml:"render"`
	Watch   WatchConfig   `toml:"watch"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	Level  string `toml:"level" validate:"oneof=debug info warn error"`
	Format string `toml:"format" validate:"oneof=text json"`
}

// RenderConfig configures document output.
type RenderConfig struct {
	Format    string `toml:"format" validate:"oneof=text yaml json"`
	Open      string `toml:"open"`
	Close     string `toml:"close"`
	Highlight string `toml:"highlight" validate:"omitempty,hexcolor"`
}

// WatchConfig configures the file watcher.
type WatchConfig struct {
	Debounce Duration `toml:"debounce" validate:"gt=0"`
}

// Duration is a time.Duration written as a string such as "250ms".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "warn", Format: "text"},
		Render:  RenderConfig{Format: "text", Open: "[", Close: "]", Highlight: "#ffd75f"},
		Watch:   WatchConfig{Debounce: Duration(100 * time.Millisecond)},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every setting.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: invalid value %v (%s)", settingPath(fe.Namespace()), fe.Value(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrValidationFailed, strings.Join(msgs, "; "))
}

// settingPath turns "Config.Logging.Level" into "logging.level".
func settingPath(ns string) string {
	_, rest, _ := strings.Cut(ns, ".")
	return strings.ToLower(rest)
}

// SlogLevel returns the configured level.
func (c LoggingConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewLogger returns a logger writing to w in the configured format.
func (c LoggingConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
