package config

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func env(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadFS(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.toml", `
[logging]
level = "debug"
format = "json"

[render]
format = "yaml"
open = "{{"
close = "}}"

[watch]
debounce = "250ms"
`)

	cfg, err := LoadFS(memfs, "/config.toml", nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "yaml", cfg.Render.Format)
	assert.Equal(t, "{{", cfg.Render.Open)
	assert.Equal(t, "}}", cfg.Render.Close)
	assert.Equal(t, Default().Render.Highlight, cfg.Render.Highlight)
	assert.Equal(t, Duration(250*time.Millisecond), cfg.Watch.Debounce)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := LoadFS(NewMemFS(), "/nope.toml", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = LoadFS(NewMemFS(), "", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEnvOverrides(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.toml", "[logging]\nlevel = \"debug\"\n")

	cfg, err := LoadFS(memfs, "/config.toml", env(map[string]string{
		"PLACEHOLDER_LOG_LEVEL":      "error",
		"PLACEHOLDER_RENDER_FORMAT":  "json",
		"PLACEHOLDER_WATCH_DEBOUNCE": "1s",
	}))
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Render.Format)
	assert.Equal(t, Duration(time.Second), cfg.Watch.Debounce)

	_, err = LoadFS(memfs, "/config.toml", env(map[string]string{"PLACEHOLDER_WATCH_DEBOUNCE": "soon"}))
	assert.ErrorContains(t, err, "PLACEHOLDER_WATCH_DEBOUNCE")
}

func TestLoadParseError(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.toml", "[logging\nlevel = 1\n")

	_, err := LoadFS(memfs, "/bad.toml", nil)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "/bad.toml", pe.Path)
	assert.Positive(t, pe.Line)
}

func TestLoadUnknownKey(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/c.toml", "[render]\ncolour = \"red\"\n")

	_, err := LoadFS(memfs, "/c.toml", nil)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Message, "colour")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		path   string
	}{
		{"level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"render format", func(c *Config) { c.Render.Format = "html" }, "render.format"},
		{"highlight", func(c *Config) { c.Render.Highlight = "yellow" }, "render.highlight"},
		{"debounce", func(c *Config) { c.Watch.Debounce = 0 }, "watch.debounce"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			assert.ErrorIs(t, err, ErrValidationFailed)
			assert.ErrorContains(t, err, tt.path)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := LoggingConfig{Level: "info", Format: "json"}.NewLogger(&buf)
	l.Debug("hidden")
	l.Info("shown", "op", "render")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"op":"render"`)
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "placeholder.toml")
	require.NoError(t, os.WriteFile(path, []byte("[render]\nformat = \"json\"\n"), 0o644))
	t.Setenv("PLACEHOLDER_RENDER_FORMAT", "yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Render.Format)
}
