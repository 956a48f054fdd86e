package model

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"rgbctl/internal/clipboard"
	"rgbctl/internal/colormodel"
	"rgbctl/internal/picker"
	"rgbctl/pkg/logging"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeMain AppMode = iota
	ModeEditing
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeMain:
		return "Main"
	case ModeEditing:
		return "Editing"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// Field identifies one focusable row of the picker.
type Field int

const (
	FieldRed Field = iota
	FieldGreen
	FieldBlue
	FieldHex
	FieldDecimal
	fieldCount
)

// Fields lists the rows in focus order.
var Fields = []Field{FieldRed, FieldGreen, FieldBlue, FieldHex, FieldDecimal}

// String returns the row label.
func (f Field) String() string {
	switch f {
	case FieldRed:
		return "Red"
	case FieldGreen:
		return "Green"
	case FieldBlue:
		return "Blue"
	case FieldHex:
		return "Hex"
	case FieldDecimal:
		return "Decimal"
	default:
		return "Unknown"
	}
}

// Channel reports the color channel a slider row controls.
func (f Field) Channel() (colormodel.Channel, bool) {
	switch f {
	case FieldRed:
		return colormodel.Red, true
	case FieldGreen:
		return colormodel.Green, true
	case FieldBlue:
		return colormodel.Blue, true
	default:
		return 0, false
	}
}

// Source maps the row's text input to its dispatch source.
func (f Field) Source() picker.Source {
	switch f {
	case FieldRed:
		return picker.SourceRedField
	case FieldGreen:
		return picker.SourceGreenField
	case FieldBlue:
		return picker.SourceBlueField
	case FieldHex:
		return picker.SourceHexField
	default:
		return picker.SourceDecimalField
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Constants for UI
const (
	MaxActivityLogLines = 1000
	CopyLabel           = "Copy"
	CopiedLabel         = "Copied"
)

// Copier puts text on the clipboard.
type Copier interface {
	Copy(text string) (clipboard.Method, error)
}

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	BigLeft     key.Binding
	BigRight    key.Binding
	Edit        key.Binding
	Commit      key.Binding
	Esc         key.Binding
	Random      key.Binding
	Reset       key.Binding
	Copy        key.Binding
	ToggleTheme key.Binding
	ToggleLog   key.Binding
	ToggleDebug key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Edit, k.Random, k.Copy, k.ToggleTheme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.BigLeft, k.BigRight},
		{k.Edit, k.Commit, k.Esc},
		{k.Random, k.Reset, k.Copy, k.ToggleTheme},
		{k.ToggleLog, k.ToggleDebug, k.Help, k.Quit},
	}
}

// Model is the TUI state. It is also the picker surface the controller
// writes every update to.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Global application state
	CurrentAppMode  AppMode
	LastAppMode     AppMode
	DebugMode       bool
	QuittingMessage string

	Controller *picker.Controller
	Copier     Copier

	// Focus and editing
	Focus  Field
	Inputs []textinput.Model

	// Values projected by the controller
	Channels   colormodel.RGB
	HexDisplay string
	HexValue   string
	RGBText    string
	PickerHex  string
	Decimal    int
	Style      picker.Style
	Theme      picker.Theme
	Writes     int

	// Tuning
	Step         int
	BigStep      int
	SliderWidth  int
	CopyFeedback time.Duration

	// Copy button state
	CopyPending   bool
	CopyConfirmed bool

	// UI State & Output
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewport          viewport.Model
	Keys                 KeyMap
	Help                 help.Model
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	// Logging
	LogChannel <-chan logging.LogEntry
}

// SetStatusMessage updates the status bar message
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// Editing reports whether f's text input currently owns the keyboard.
func (m *Model) Editing(f Field) bool {
	return m.CurrentAppMode == ModeEditing && m.Focus == f
}

// CopyButtonLabel is the copy button text for the current state.
func (m *Model) CopyButtonLabel() string {
	if m.CopyConfirmed {
		return CopiedLabel
	}
	return CopyLabel
}
