package model

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"rgbctl/internal/config"
	"rgbctl/internal/picker"
	"rgbctl/internal/tui/design"
	"rgbctl/pkg/logging"
)

// TUIConfig carries everything the TUI needs from the application.
type TUIConfig struct {
	DebugMode  bool
	Controller *picker.Controller
	Copier     Copier
	UI         config.UIConfig
	Feedback   time.Duration
	LogChannel <-chan logging.LogEntry
}

var inputLimits = map[Field]int{
	FieldRed:     3,
	FieldGreen:   3,
	FieldBlue:    3,
	FieldHex:     7,
	FieldDecimal: 8,
}

// InitialModel constructs the model and registers it with the controller,
// which immediately brings it up to date.
func InitialModel(cfg TUIConfig) *Model {
	inputs := make([]textinput.Model, fieldCount)
	for _, f := range Fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = inputLimits[f]
		ti.Width = design.FieldInputWidth
		inputs[f] = ti
	}

	defaults := config.GetDefaultConfig().UI
	ui := cfg.UI
	if ui.Step <= 0 {
		ui.Step = defaults.Step
	}
	if ui.BigStep <= 0 {
		ui.BigStep = defaults.BigStep
	}
	if ui.SliderWidth <= 0 {
		ui.SliderWidth = defaults.SliderWidth
	}
	feedback := cfg.Feedback
	if feedback <= 0 {
		feedback = config.GetDefaultConfig().Clipboard.Feedback
	}

	m := &Model{
		CurrentAppMode: ModeMain,
		LastAppMode:    ModeMain,
		DebugMode:      cfg.DebugMode,
		Controller:     cfg.Controller,
		Copier:         cfg.Copier,
		Focus:          FieldRed,
		Inputs:         inputs,
		Step:           ui.Step,
		BigStep:        ui.BigStep,
		SliderWidth:    ui.SliderWidth,
		CopyFeedback:   feedback,
		ActivityLog:    []string{},
		LogViewport:    viewport.New(0, 0),
		Keys:           DefaultKeyMap(),
		Help:           help.New(),
		LogChannel:     cfg.LogChannel,
	}

	if m.Controller != nil {
		m.Controller.AddSurface(m)
	}
	return m
}

// Init implements the first command of the program.
func (m *Model) Init() tea.Cmd {
	return ListenForLogEntriesCmd(m.LogChannel)
}
