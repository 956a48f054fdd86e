package controller

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"rgbctl/internal/tui/model"
)

// NewProgram creates the Bubble Tea program for the interactive picker. The
// program stops when ctx is cancelled.
func NewProgram(ctx context.Context, cfg model.TUIConfig) *tea.Program {
	m := model.InitialModel(cfg)
	return tea.NewProgram(NewAppModel(m), tea.WithAltScreen(), tea.WithContext(ctx))
}
