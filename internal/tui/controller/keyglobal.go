package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"rgbctl/internal/tui/model"
	"rgbctl/pkg/logging"
)

// handleKeyMsgGlobal processes key presses when no input is being edited.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	// --- Overlay-specific key handling --------------------------------------
	if m.CurrentAppMode == model.ModeLogOverlay {
		switch keyMsg.String() {
		case "L", "esc":
			m.CurrentAppMode = m.LastAppMode
			return m, nil
		case "y":
			return m, copyLogs(m)
		case "k", "up", "j", "down", "pgup", "pgdown", "home", "end":
			var vpCmd tea.Cmd
			m.LogViewport, vpCmd = m.LogViewport.Update(keyMsg)
			return m, vpCmd
		case "q":
			return quit(m)
		default:
			return m, nil
		}
	}

	if m.CurrentAppMode == model.ModeHelpOverlay && key.Matches(keyMsg, m.Keys.Esc) {
		m.CurrentAppMode = model.ModeMain
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m)

	case key.Matches(keyMsg, m.Keys.Help):
		if m.CurrentAppMode == model.ModeHelpOverlay {
			m.CurrentAppMode = model.ModeMain
		} else {
			m.CurrentAppMode = model.ModeHelpOverlay
		}
		m.Help.ShowAll = m.CurrentAppMode == model.ModeHelpOverlay
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.LastAppMode = model.ModeMain
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.GotoBottom()
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleDebug):
		m.DebugMode = !m.DebugMode
		return m, m.SetStatusMessage(fmt.Sprintf("Debug mode %v", m.DebugMode), model.StatusBarInfo, statusMessageDuration)
	}

	if m.CurrentAppMode == model.ModeHelpOverlay || m.Controller == nil {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Up):
		m.Focus = nextFocus(m.Focus, -1)
	case key.Matches(keyMsg, m.Keys.Down):
		m.Focus = nextFocus(m.Focus, 1)
	case key.Matches(keyMsg, m.Keys.BigLeft):
		nudge(m, -m.BigStep)
	case key.Matches(keyMsg, m.Keys.BigRight):
		nudge(m, m.BigStep)
	case key.Matches(keyMsg, m.Keys.Left):
		nudge(m, -m.Step)
	case key.Matches(keyMsg, m.Keys.Right):
		nudge(m, m.Step)
	case key.Matches(keyMsg, m.Keys.Edit):
		return startEditing(m)
	case key.Matches(keyMsg, m.Keys.Random):
		p := m.Controller.Randomize()
		logging.Debug(tuiSubsystem, "Randomized to %s", p.DisplayHex)
	case key.Matches(keyMsg, m.Keys.Reset):
		m.Controller.Reset()
	case key.Matches(keyMsg, m.Keys.Copy):
		return m, copyHex(m)
	case key.Matches(keyMsg, m.Keys.ToggleTheme):
		theme := m.Controller.ToggleTheme()
		return m, m.SetStatusMessage(fmt.Sprintf("Theme: %s", theme), model.StatusBarInfo, statusMessageDuration)
	}
	return m, nil
}

// nudge moves the focused channel, or the decimal value, by delta.
func nudge(m *model.Model, delta int) {
	if ch, ok := m.Focus.Channel(); ok {
		m.Controller.Nudge(ch, delta)
		return
	}
	if m.Focus == model.FieldDecimal {
		m.Controller.ApplyDecimal(m.Decimal + delta)
	}
}

func startEditing(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeEditing
	input := &m.Inputs[m.Focus]
	input.SetValue(m.CanonicalValue(m.Focus))
	input.CursorEnd()
	return m, tea.Batch(input.Focus(), textinput.Blink)
}

// copyHex starts a clipboard write unless one is still pending or confirmed.
func copyHex(m *model.Model) tea.Cmd {
	if m.CopyPending {
		return nil
	}
	if m.Copier == nil {
		return m.SetStatusMessage("Clipboard not available", model.StatusBarWarning, statusMessageDuration)
	}
	m.CopyPending = true
	return model.CopyCmd(m.Copier, m.HexDisplay)
}

func copyLogs(m *model.Model) tea.Cmd {
	if m.Copier == nil {
		return m.SetStatusMessage("Clipboard not available", model.StatusBarWarning, statusMessageDuration)
	}
	if _, err := m.Copier.Copy(strings.Join(m.ActivityLog, "\n")); err != nil {
		logging.Error(tuiSubsystem, err, "Failed to copy logs")
		return m.SetStatusMessage("Copy logs failed", model.StatusBarError, statusMessageDuration)
	}
	return m.SetStatusMessage("Logs copied to clipboard", model.StatusBarSuccess, statusMessageDuration)
}

// nextFocus returns the row delta steps away from current, wrapping at
// either end.
func nextFocus(current model.Field, delta int) model.Field {
	n := len(model.Fields)
	idx := 0
	for i, f := range model.Fields {
		if f == current {
			idx = i
			break
		}
	}
	idx = ((idx+delta)%n + n) % n
	return model.Fields[idx]
}
