package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"rgbctl/internal/tui/model"
)

// handleKeyMsgInputMode processes key presses while a row's input is being
// edited. Every change is applied live; enter, tab and shift+tab commit the
// value, esc discards it.
func handleKeyMsgInputMode(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		stopEditing(m)
		m.RefreshInputs()
		return m, nil

	case "enter":
		commitEdit(m)
		return m, nil

	case "tab":
		commitEdit(m)
		m.Focus = nextFocus(m.Focus, 1)
		return m, nil

	case "shift+tab":
		commitEdit(m)
		m.Focus = nextFocus(m.Focus, -1)
		return m, nil
	}

	input := &m.Inputs[m.Focus]
	before := input.Value()
	var inputCmd tea.Cmd
	*input, inputCmd = input.Update(keyMsg)
	if after := input.Value(); after != before && m.Controller != nil {
		m.Controller.Dispatch(m.Focus.Source(), after)
	}
	return m, inputCmd
}

func stopEditing(m *model.Model) {
	m.Inputs[m.Focus].Blur()
	m.CurrentAppMode = model.ModeMain
}

// commitEdit applies the input with blur semantics and then rewrites every
// input from the controller's value, so rejected text disappears.
func commitEdit(m *model.Model) {
	raw := m.Inputs[m.Focus].Value()
	stopEditing(m)
	if m.Controller != nil {
		m.Controller.Commit(m.Focus.Source(), raw)
	}
	m.RefreshInputs()
}
