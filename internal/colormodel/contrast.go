package colormodel

import "github.com/lucasb-eyer/go-colorful"

const (
	// TextThreshold separates light backgrounds (dark text) from dark ones.
	TextThreshold = 0.5
	// BorderThreshold selects the lighter border tint.
	BorderThreshold = 0.7
)

// Colors chosen by ContrastFor.
const (
	TextOnLight   = "#000000"
	TextOnDark    = "#FFFFFF"
	BorderOnLight = "#ADB5BD"
	BorderOnDark  = "#444444"
	LabelOnLight  = "#D9D9D9"
	LabelOnDark   = "#262626"
)

// Contrast is the set of foreground decorations for a preview surface.
type Contrast struct {
	// Light reports whether the background counts as light.
	Light bool `json:"light" yaml:"light"`
	// Text is the label foreground.
	Text string `json:"text" yaml:"text"`
	// Border is the outline tint of the preview.
	Border string `json:"border" yaml:"border"`
	// Label is the chip behind the label text.
	Label string `json:"label" yaml:"label"`
}

// RelativeLuminance returns the perceptual luminance of c in [0,1].
func RelativeLuminance(c RGB) float64 {
	r, g, b := colorful.Color{
		R: float64(c.R) / MaxChannel,
		G: float64(c.G) / MaxChannel,
		B: float64(c.B) / MaxChannel,
	}.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastFor picks text, border and label colors for a background with
// luminance l.
func ContrastFor(l float64) Contrast {
	c := Contrast{
		Text:   TextOnDark,
		Border: BorderOnDark,
		Label:  LabelOnDark,
	}
	if l > TextThreshold {
		c.Light = true
		c.Text = TextOnLight
		c.Label = LabelOnLight
	}
	if l > BorderThreshold {
		c.Border = BorderOnLight
	}
	return c
}
