package controller

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"rgbctl/internal/tui/model"
	"rgbctl/pkg/logging"
)

const tuiSubsystem = "TUI"

const statusMessageDuration = 3 * time.Second

// Update is the central message routing function for the TUI. It directs
// every message to its handler based on type and current mode.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return quit(m)
		}
		if m.CurrentAppMode == model.ModeEditing {
			return handleKeyMsgInputMode(m, msg)
		}
		return handleKeyMsgGlobal(m, msg)

	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case tea.MouseMsg:
		if m.CurrentAppMode == model.ModeLogOverlay {
			var cmd tea.Cmd
			m.LogViewport, cmd = m.LogViewport.Update(msg)
			return m, cmd
		}
		return m, nil

	case model.CopyResultMsg:
		return handleCopyResult(m, msg)

	case model.CopyFeedbackDoneMsg:
		m.CopyConfirmed = false
		m.CopyPending = false
		return m, nil

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		m.StatusBarClearCancel = nil
		return m, nil

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		return m, model.ListenForLogEntriesCmd(m.LogChannel)
	}

	return m, nil
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Bye."
	return m, tea.Quit
}

// handleCopyResult confirms a successful copy on the button for the
// configured feedback time. A failed copy releases the button silently.
func handleCopyResult(m *model.Model, msg model.CopyResultMsg) (*model.Model, tea.Cmd) {
	if msg.Err != nil {
		logging.Warn(tuiSubsystem, "Copy of %s failed: %v", msg.Text, msg.Err)
		m.CopyPending = false
		m.CopyConfirmed = false
		return m, nil
	}
	logging.Debug(tuiSubsystem, "Copied %s via %s", msg.Text, msg.Method)
	m.CopyConfirmed = true
	return m, model.CopyFeedbackCmd(m.CopyFeedback)
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	entry := msg.Entry

	// Debug entries only reach the activity log in debug mode.
	if entry.Level >= logging.LevelInfo || m.DebugMode {
		logLine := fmt.Sprintf("%s [%s] [%s] %s",
			entry.Timestamp.Format("15:04:05.000"),
			entry.Level.String(),
			entry.Subsystem,
			entry.Message)

		if entry.Err != nil {
			logLine = fmt.Sprintf("%s -- Error: %v", logLine, entry.Err)
		}
		model.AddRawLineToActivityLog(m, logLine)
	}
	return m
}
