// Package lua embeds a sandboxed Lua runtime for scripting pane
// layouts.
//
// Scripts see a single "panes" module exposing the pane command
// surface: splits, directional focus, close, divider adjustment and
// tabs. The state opens only the base, table, string and math
// libraries; io, os, debug and the loaders are unavailable, so a
// script cannot reach outside the workspace it is driving.
//
// # Usage
//
//	state, err := lua.NewState(manager)
//	if err != nil { ... }
//	defer state.Close()
//	err = state.DoFile("layout.lua")
//
// A layout script:
//
//	panes.split_horizontal()
//	panes.split_vertical()
//	panes.focus("left")
//	panes.resize(4)
package lua
