package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rgbctl/internal/tui/design"
	"rgbctl/internal/tui/model"
)

func renderHelpOverlay(m *model.Model) string {
	titleView := design.HelpTitleStyle.Render("KEYBOARD SHORTCUTS")
	container := design.CenteredOverlayContainerStyle.Render(titleView + "\n" + m.Help.View(m.Keys))
	if m.Width <= 0 || m.Height <= 0 {
		return container
	}
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, container)
}

func renderLogOverlay(m *model.Model) string {
	title := design.LogPanelTitleStyle.Render(SafeIcon(IconScroll) + "Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)")
	titleHeight := lipgloss.Height(title)

	width, height := m.Width, m.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = 24
	}
	overlayWidth := int(float64(width) * 0.9)
	overlayHeight := int(float64(height) * 0.8)

	vpWidth := overlayWidth - design.LogOverlayStyle.GetHorizontalFrameSize()
	vpHeight := overlayHeight - design.LogOverlayStyle.GetVerticalFrameSize() - titleHeight
	if vpWidth < 0 {
		vpWidth = 0
	}
	if vpHeight < 0 {
		vpHeight = 0
	}

	dimensionsChanged := m.LogViewport.Width != vpWidth || m.LogViewport.Height != vpHeight
	m.LogViewport.Width = vpWidth
	m.LogViewport.Height = vpHeight
	if m.ActivityLogDirty || dimensionsChanged {
		m.LogViewport.SetContent(PrepareLogContent(m.ActivityLog))
		m.LogViewport.GotoBottom()
		m.ActivityLogDirty = false
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View())
	overlay := design.LogOverlayStyle.
		Width(overlayWidth - design.LogOverlayStyle.GetHorizontalFrameSize()).
		Height(overlayHeight - design.LogOverlayStyle.GetVerticalFrameSize()).
		Render(content)

	canvas := lipgloss.Place(width, height-1, lipgloss.Center, lipgloss.Center, overlay)
	return lipgloss.JoinVertical(lipgloss.Left, canvas, renderStatusBar(m, width))
}

// PrepareLogContent applies color styles based on log level keywords.
func PrepareLogContent(lines []string) string {
	out := make([]string, len(lines))
	for i, rawLine := range lines {
		out[i] = styleLogLine(rawLine)
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}
