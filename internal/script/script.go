// Package script computes placeholder values with sandboxed Lua.
//
// A script defines a global named values, either a table or a function:
//
//	-- static
//	values = { city = "Rome" }
//
//	-- computed from the current list
//	function values(current)
//	  return { greeting = "Dear " .. (current.firstName or "friend") }
//	end
//
// The returned names update the list in place; names the list lacks are
// appended in sorted order. Only the base, table, string and math libraries
// are available.
package script

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/placeholder/internal/placeholder"
)

// DefaultTimeout bounds a single script run.
const DefaultTimeout = 5 * time.Second

// Errors returned by scripts.
var (
	// ErrNoValues indicates the script defined no values global.
	ErrNoValues = errors.New("script defines no values")

	// ErrBadResult indicates values produced something other than a table
	// of string keys and scalar values.
	ErrBadResult = errors.New("script returned invalid values")
)

// Script is a loaded Lua source.
type Script struct {
	name    string
	source  string
	timeout time.Duration
}

// Option configures a Script.
type Option func(*Script)

// WithTimeout sets the run timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Script) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// New wraps Lua source. name is used in error messages.
func New(name, source string, opts ...Option) *Script {
	s := &Script{name: name, source: source, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the script at path.
func Load(path string, opts ...Option) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(path, string(data), opts...), nil
}

// Apply runs the script against list and returns the updated list. Each
// call uses a fresh Lua state.
func (s *Script) Apply(ctx context.Context, list placeholder.List) (placeholder.List, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	L := newState()
	defer L.Close()
	L.SetContext(ctx)

	if err := L.DoString(s.source); err != nil {
		return list, fmt.Errorf("%s: %w", s.name, err)
	}

	result, err := s.values(L, list)
	if err != nil {
		return list, err
	}
	return merge(list, result)
}

// values evaluates the values global.
func (s *Script) values(L *lua.LState, list placeholder.List) (map[string]string, error) {
	v := L.GetGlobal("values")
	switch v.Type() {
	case lua.LTNil:
		return nil, fmt.Errorf("%s: %w", s.name, ErrNoValues)
	case lua.LTFunction:
		current := L.NewTable()
		for _, p := range list.Items() {
			current.RawSetString(p.Name, lua.LString(p.Value))
		}
		if err := L.CallByParam(lua.P{Fn: v, NRet: 1, Protect: true}, current); err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
		v = L.Get(-1)
		L.Pop(1)
	}

	tbl, ok := v.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%s: %w: got %s", s.name, ErrBadResult, v.Type())
	}

	out := make(map[string]string)
	var bad error
	tbl.ForEach(func(k, val lua.LValue) {
		if bad != nil {
			return
		}
		name, ok := k.(lua.LString)
		if !ok {
			bad = fmt.Errorf("%s: %w: key %s is a %s", s.name, ErrBadResult, k.String(), k.Type())
			return
		}
		switch val.Type() {
		case lua.LTString, lua.LTNumber, lua.LTBool:
			out[string(name)] = val.String()
		default:
			bad = fmt.Errorf("%s: %w: %s is a %s", s.name, ErrBadResult, name, val.Type())
		}
	})
	return out, bad
}

// merge writes values into list: existing names in place, new names
// appended in sorted order.
func merge(list placeholder.List, values map[string]string) (placeholder.List, error) {
	var added []string
	for name, value := range values {
		if list.Index(name) < 0 {
			added = append(added, name)
			continue
		}
		var err error
		if list, err = list.Update(name, value); err != nil {
			return list, err
		}
	}
	slices.Sort(added)
	for _, name := range added {
		var err error
		if list, err = list.Add(placeholder.New(name, values[name])); err != nil {
			return list, err
		}
	}
	return list, nil
}

// newState creates a Lua state with only safe libraries open.
func newState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
	return L
}
