package view

import (
	"fmt"

	"rgbctl/internal/tui/design"
	"rgbctl/internal/tui/model"
)

func renderStatusBar(m *model.Model, width int) string {
	if m.StatusBarMessage == "" {
		text := fmt.Sprintf("%s  %s", m.HexDisplay, m.RGBText)
		return design.StatusBarStyle.Width(width).Render(text)
	}

	var style = design.StatusBarInfoStyle
	icon := IconInfo
	switch m.StatusBarMessageType {
	case model.StatusBarSuccess:
		style = design.StatusBarSuccessStyle
		icon = IconSparkles
	case model.StatusBarError:
		style = design.StatusBarErrorStyle
		icon = IconCross
	case model.StatusBarWarning:
		style = design.StatusBarWarningStyle
		icon = IconLightbulb
	}
	return style.Width(width).Render(SafeIcon(icon) + m.StatusBarMessage)
}
