package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rgbctl/internal/tui/design"
	"rgbctl/internal/tui/model"
)

const defaultWidth = 72

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return design.TextSecondaryStyle.Render(m.QuittingMessage)
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	default:
		return renderMain(m)
	}
}

func renderMain(m *model.Model) string {
	width := m.Width
	if width <= 0 {
		width = defaultWidth
	}

	sections := []string{
		renderHeader(m, width),
		renderSwatch(m, width),
		renderRows(m, width),
		"",
		renderButtons(m),
		"",
		m.Help.View(m.Keys),
	}
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	statusBar := renderStatusBar(m, width)
	if m.Height > 0 {
		if gap := m.Height - lipgloss.Height(body) - lipgloss.Height(statusBar); gap > 0 {
			body += strings.Repeat("\n", gap)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, statusBar)
}

func renderHeader(m *model.Model, width int) string {
	title := SafeIcon(IconPalette) + "rgbctl"
	if m.DebugMode {
		title += design.DimStyle.Render("  [" + m.CurrentAppMode.String() + "]")
	}
	return design.HeaderStyle.Width(width).Render(title)
}
