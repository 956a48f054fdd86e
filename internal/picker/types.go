package picker

import (
	"strings"

	"rgbctl/internal/colormodel"
)

// Theme is the light/dark display preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme is used when nothing valid was saved.
const DefaultTheme = ThemeLight

// ParseTheme accepts exactly "light" or "dark" (case-insensitive).
func ParseTheme(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	default:
		return "", false
	}
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool {
	return t == ThemeDark
}

// Style paints the preview surface.
type Style struct {
	Background string `json:"background" yaml:"background"`
	Foreground string `json:"foreground" yaml:"foreground"`
	Border     string `json:"border" yaml:"border"`
	Label      string `json:"label" yaml:"label"`
}

// Projection holds every derived representation of one color.
type Projection struct {
	Color      colormodel.RGB      `json:"rgb" yaml:"rgb"`
	Hex        string              `json:"hex" yaml:"hex"`
	DisplayHex string              `json:"displayHex" yaml:"displayHex"`
	CSS        string              `json:"css" yaml:"css"`
	Decimal    int                 `json:"decimal" yaml:"decimal"`
	Luminance  float64             `json:"luminance" yaml:"luminance"`
	Contrast   colormodel.Contrast `json:"contrast" yaml:"contrast"`
}

// Project derives all representations from c.
func Project(c colormodel.RGB) Projection {
	lum := colormodel.RelativeLuminance(c)
	return Projection{
		Color:      c,
		Hex:        c.Hex(),
		DisplayHex: c.DisplayHex(),
		CSS:        c.CSS(),
		Decimal:    c.Decimal(),
		Luminance:  lum,
		Contrast:   colormodel.ContrastFor(lum),
	}
}

// Style returns the preview style for the projection.
func (p Projection) Style() Style {
	return Style{
		Background: p.DisplayHex,
		Foreground: p.Contrast.Text,
		Border:     p.Contrast.Border,
		Label:      p.Contrast.Label,
	}
}

// Surface receives the outputs of every update. Methods are called in the
// order they are declared, once per update.
type Surface interface {
	// SetChannels updates sliders, numeric fields and plain channel displays.
	SetChannels(c colormodel.RGB)
	// SetHex updates the #RRGGBB display and the RRGGBB value field.
	SetHex(display, value string)
	// SetRGBText updates the rgb(r, g, b) display.
	SetRGBText(css string)
	// PickerValue returns what the color picker control currently shows.
	PickerValue() string
	// SetPickerValue is only called when the value differs from PickerValue.
	SetPickerValue(hex string)
	// SetDecimal updates the packed decimal field.
	SetDecimal(d int)
	// SetStyle repaints the preview.
	SetStyle(s Style)
	// SetTheme applies the display theme.
	SetTheme(t Theme)
}
