package model

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"rgbctl/pkg/logging"
)

// ListenForLogEntriesCmd waits for the next log entry. It returns nil once
// the channel is closed, which stops the listening loop.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// CopyCmd writes text to the clipboard off the update loop.
func CopyCmd(c Copier, text string) tea.Cmd {
	return func() tea.Msg {
		method, err := c.Copy(text)
		return CopyResultMsg{Text: text, Method: method, Err: err}
	}
}

// CopyFeedbackCmd ends the copy confirmation after d.
func CopyFeedbackCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return CopyFeedbackDoneMsg{}
	})
}
