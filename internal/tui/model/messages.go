package model

import (
	"rgbctl/internal/clipboard"
	"rgbctl/pkg/logging"
)

// NewLogEntryMsg carries one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// CopyResultMsg reports the outcome of a clipboard write.
type CopyResultMsg struct {
	Text   string
	Method clipboard.Method
	Err    error
}

// CopyFeedbackDoneMsg ends the "Copied" confirmation.
type CopyFeedbackDoneMsg struct{}

// ClearStatusBarMsg clears the transient status bar message.
type ClearStatusBarMsg struct{}
