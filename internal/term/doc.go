// Package term provides PTY-backed terminal surfaces for the pane tree.
//
// A Terminal runs a shell on a pseudo-terminal and buffers its most
// recent output for display. Terminals implement pane.Surface: the tree
// rewires where a terminal is anchored, while this package owns the
// terminal's process lifecycle.
//
// The Manager tracks all live terminals for one application:
//
//	mgr := term.NewManager(term.ManagerConfig{Shell: "/bin/zsh"})
//	tm, err := mgr.Create(term.Options{Name: "main"})
//	if err != nil {
//	    return err
//	}
//	defer mgr.CloseAll()
//
// Terminals and the manager are safe for concurrent use; output
// callbacks are invoked from the terminal's read goroutine.
package term
