package script

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/placeholder/internal/placeholder"
)

func list(t *testing.T, items ...placeholder.Placeholder) placeholder.List {
	t.Helper()
	l, err := placeholder.NewList(items...)
	require.NoError(t, err)
	return l
}

func TestApplyTable(t *testing.T) {
	s := New("static", `values = { city = "Rome", firstName = "Ada", zip = 100 }`)
	got, err := s.Apply(context.Background(), list(t,
		placeholder.New("firstName", "Cristian"),
		placeholder.New("lastName", "Graziano"),
	))
	require.NoError(t, err)

	assert.Equal(t, []placeholder.Placeholder{
		placeholder.New("firstName", "Ada"),
		placeholder.New("lastName", "Graziano"),
		placeholder.New("city", "Rome"),
		placeholder.New("zip", "100"),
	}, got.Items())
}

func TestApplyFunction(t *testing.T) {
	s := New("computed", `
function values(current)
  return { greeting = "Dear " .. string.upper(current.firstName or "friend") }
end
`)
	got, err := s.Apply(context.Background(), list(t, placeholder.New("firstName", "ada")))
	require.NoError(t, err)
	p, ok := got.Get("greeting")
	require.True(t, ok)
	assert.Equal(t, "Dear ADA", p.Value)
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   error
	}{
		{"no values", `x = 1`, ErrNoValues},
		{"not a table", `values = "nope"`, ErrBadResult},
		{"numeric key", `values = { "a" }`, ErrBadResult},
		{"nested table", `values = { a = {} }`, ErrBadResult},
		{"empty name", `values = { [""] = "x" }`, placeholder.ErrEmptyName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.name, tt.source).Apply(context.Background(), placeholder.List{})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestApplySyntaxError(t *testing.T) {
	_, err := New("broken", `values = {`).Apply(context.Background(), placeholder.List{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestSandbox(t *testing.T) {
	for _, src := range []string{
		`values = { a = tostring(os) }; os.exit(1)`,
		`values = { a = io.read() }`,
		`require("os")`,
		`dofile("/etc/passwd")`,
	} {
		_, err := New("sandbox", src).Apply(context.Background(), placeholder.List{})
		assert.Error(t, err, src)
	}
}

func TestTimeout(t *testing.T) {
	s := New("loop", `while true do end`, WithTimeout(50*time.Millisecond))
	start := time.Now()
	_, err := s.Apply(context.Background(), placeholder.List{})
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.lua")
	require.NoError(t, os.WriteFile(path, []byte(`values = { a = "1" }`), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	got, err := s.Apply(context.Background(), placeholder.List{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got.Names())

	_, err = Load(filepath.Join(t.TempDir(), "missing.lua"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
