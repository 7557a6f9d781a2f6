package lua

import (
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// State is a sandboxed Lua interpreter with the panes module
// installed.
//
// gopher-lua's LState is not goroutine-safe; the mutex serializes
// script execution, but the workspace calls a script makes still run
// on the goroutine invoking DoFile or DoString, which must be the UI
// thread.
type State struct {
	mu     sync.Mutex
	L      *lua.LState
	closed bool
}

// NewState creates a Lua state scripting the given workspace.
func NewState(ws Workspace) (*State, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// Base brings loaders along; take them back out so scripts cannot
	// pull in arbitrary code.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	s := &State{L: L}
	registerPanes(L, ws)
	return s, nil
}

// DoFile runs a script file to completion.
func (s *State) DoFile(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStateClosed
	}
	if err := s.L.DoFile(path); err != nil {
		return &ScriptError{Source: path, Err: err}
	}
	return nil
}

// DoString runs a script from a string.
func (s *State) DoString(src string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStateClosed
	}
	if err := s.L.DoString(src); err != nil {
		return &ScriptError{Source: "<string>", Err: err}
	}
	return nil
}

// Close shuts the interpreter down. Close is idempotent.
func (s *State) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.L.Close()
}
