package input

// Action names a pane command a key chord can be bound to.
type Action string

const (
	ActionSplitHorizontal Action = "pane.splitHorizontal"
	ActionSplitVertical   Action = "pane.splitVertical"
	ActionFocusLeft       Action = "pane.focusLeft"
	ActionFocusRight      Action = "pane.focusRight"
	ActionFocusUp         Action = "pane.focusUp"
	ActionFocusDown       Action = "pane.focusDown"
	ActionFocusNext       Action = "pane.focusNext"
	ActionFocusPrev       Action = "pane.focusPrev"
	ActionClose           Action = "pane.close"
	ActionCloseOthers     Action = "pane.closeOthers"
	ActionGrow            Action = "pane.grow"
	ActionShrink          Action = "pane.shrink"
	ActionEqualize        Action = "pane.equalize"
	ActionNewTab          Action = "tab.new"
	ActionNextTab         Action = "tab.next"
	ActionQuit            Action = "app.quit"
)

// Actions returns every known action name.
func Actions() []Action {
	return []Action{
		ActionSplitHorizontal,
		ActionSplitVertical,
		ActionFocusLeft,
		ActionFocusRight,
		ActionFocusUp,
		ActionFocusDown,
		ActionFocusNext,
		ActionFocusPrev,
		ActionClose,
		ActionCloseOthers,
		ActionGrow,
		ActionShrink,
		ActionEqualize,
		ActionNewTab,
		ActionNextTab,
		ActionQuit,
	}
}

// Known reports whether name is a recognized action.
func Known(name string) bool {
	for _, a := range Actions() {
		if a == Action(name) {
			return true
		}
	}
	return false
}
