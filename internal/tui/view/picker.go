package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rgbctl/internal/colormodel"
	"rgbctl/internal/tui/design"
	"rgbctl/internal/tui/model"
)

// renderSwatch paints the preview with the controller's style.
func renderSwatch(m *model.Model, width int) string {
	if width < design.MinSwatchWidth {
		width = design.MinSwatchWidth
	}
	label := design.SwatchLabelStyle.
		Foreground(lipgloss.Color(m.Style.Foreground)).
		Background(lipgloss.Color(m.Style.Label)).
		Render(m.PickerHex)

	return design.SwatchStyle.
		Width(width - design.SwatchStyle.GetHorizontalFrameSize()).
		Background(lipgloss.Color(m.Style.Background)).
		BorderForeground(lipgloss.Color(m.Style.Border)).
		Render(label)
}

// renderSlider draws a gradient track for ch with a knob at the channel value.
func renderSlider(m *model.Model, ch colormodel.Channel, width int) string {
	if width < 2 {
		width = 2
	}
	value := int(m.Channels.Channel(ch))
	knob := value * (width - 1) / colormodel.MaxChannel

	var b strings.Builder
	for i := 0; i < width; i++ {
		cell := m.Channels.WithChannel(ch, uint8(i*colormodel.MaxChannel/(width-1)))
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(cell.DisplayHex()))
		switch {
		case i == knob:
			b.WriteString(lipgloss.NewStyle().Foreground(design.ChannelColor(ch)).Bold(true).Render("┃"))
		case i < knob:
			b.WriteString(style.Render("█"))
		default:
			b.WriteString(design.SliderEmptyStyle.Render("─"))
		}
	}
	return b.String()
}

func renderLabel(m *model.Model, f model.Field) string {
	label := padLabel(f.String(), design.LabelWidth)
	if m.Focus == f {
		return design.LabelFocusedStyle.Render("›" + label)
	}
	return design.LabelStyle.Render(" " + label)
}

func renderInput(m *model.Model, f model.Field) string {
	style := design.InputStyle
	if m.Editing(f) {
		style = design.InputFocusedStyle
	}
	var content string
	if m.Editing(f) {
		content = m.Inputs[f].View()
	} else {
		content = padLabel(m.Inputs[f].Value(), design.FieldInputWidth)
	}
	return style.Render(content)
}

// renderRows draws the three channel sliders followed by the hex and
// decimal rows.
func renderRows(m *model.Model, width int) string {
	sliderWidth := m.SliderWidth
	if limit := width - design.LabelWidth - design.FieldInputWidth - 8; sliderWidth > limit && limit > 0 {
		sliderWidth = limit
	}

	var rows []string
	for _, f := range model.Fields {
		var middle string
		if ch, ok := f.Channel(); ok {
			middle = renderSlider(m, ch, sliderWidth)
		} else if f == model.FieldHex {
			middle = design.ValueStyle.Render(padLabel(m.HexDisplay, sliderWidth))
		} else {
			middle = design.ValueStyle.Render(padLabel(m.RGBText, sliderWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center,
			renderLabel(m, f), " ", middle, "  ", renderInput(m, f)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderButtons(m *model.Model) string {
	copyStyle := design.ButtonStyle
	if m.CopyConfirmed {
		copyStyle = design.ButtonConfirmedStyle
	}
	themeIcon := IconSun
	if m.Theme.IsDark() {
		themeIcon = IconMoon
	}
	buttons := []string{
		design.ButtonSecondaryStyle.Render("r Random"),
		design.ButtonSecondaryStyle.Render("x Reset"),
		copyStyle.Render(fmt.Sprintf("c %s", m.CopyButtonLabel())),
		design.ButtonSecondaryStyle.Render(fmt.Sprintf("t %s%s", SafeIcon(themeIcon), m.Theme)),
	}
	return strings.Join(buttons, " ")
}
