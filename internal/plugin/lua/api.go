package lua

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/panestorm/internal/pane"
)

// Workspace is the command surface scripts drive. Satisfied by
// workspace.Manager.
type Workspace interface {
	SplitHorizontal() error
	SplitVertical() error
	Focus(dir pane.Direction) error
	FocusNext() error
	FocusPrev() error
	FocusIndex(index int) error
	Close() error
	CloseOthers() error
	ResizeDivider(delta int) error
	Equalize() error
	NewTab() error
	NextTab() error
	SelectTab(index int) error
	WindowCount() int
	CurrentWindow() int
	Surfaces() []pane.Surface
}

// identified matches surfaces exposing a stable ID.
type identified interface {
	ID() string
}

// registerPanes installs the panes module as a global table.
func registerPanes(L *lua.LState, ws Workspace) {
	mod := L.NewTable()
	L.SetFuncs(mod, map[string]lua.LGFunction{
		"split_horizontal": command(ws.SplitHorizontal),
		"split_vertical":   command(ws.SplitVertical),
		"focus_next":       command(ws.FocusNext),
		"focus_prev":       command(ws.FocusPrev),
		"close":            command(ws.Close),
		"close_others":     command(ws.CloseOthers),
		"equalize":         command(ws.Equalize),
		"new_tab":          command(ws.NewTab),
		"next_tab":         command(ws.NextTab),

		"focus": func(L *lua.LState) int {
			dir, err := parseDirection(L.CheckString(1))
			if err != nil {
				L.ArgError(1, err.Error())
				return 0
			}
			return report(L, ws.Focus(dir))
		},
		"focus_index": func(L *lua.LState) int {
			return report(L, ws.FocusIndex(L.CheckInt(1)-1))
		},
		"resize": func(L *lua.LState) int {
			return report(L, ws.ResizeDivider(L.CheckInt(1)))
		},
		"select_tab": func(L *lua.LState) int {
			return report(L, ws.SelectTab(L.CheckInt(1)-1))
		},
		"count": func(L *lua.LState) int {
			L.Push(lua.LNumber(ws.WindowCount()))
			return 1
		},
		"current": func(L *lua.LState) int {
			L.Push(lua.LNumber(ws.CurrentWindow() + 1))
			return 1
		},
		"ids": func(L *lua.LState) int {
			t := L.NewTable()
			for _, s := range ws.Surfaces() {
				if id, ok := s.(identified); ok {
					t.Append(lua.LString(id.ID()))
				}
			}
			L.Push(t)
			return 1
		},
	})
	L.SetGlobal("panes", mod)
}

// command wraps a no-argument workspace call.
func command(fn func() error) lua.LGFunction {
	return func(L *lua.LState) int {
		return report(L, fn())
	}
}

// report raises failed commands as Lua errors so scripts stop at the
// first command that cannot apply.
func report(L *lua.LState, err error) int {
	if err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func parseDirection(name string) (pane.Direction, error) {
	switch name {
	case "left":
		return pane.DirLeft, nil
	case "right":
		return pane.DirRight, nil
	case "up":
		return pane.DirUp, nil
	case "down":
		return pane.DirDown, nil
	}
	return 0, fmt.Errorf("unknown direction %q (want left, right, up or down)", name)
}
