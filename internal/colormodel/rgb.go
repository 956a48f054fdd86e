package colormodel

import "fmt"

const (
	// MaxChannel is the largest value of a single channel.
	MaxChannel = 255
	// MaxDecimal is the packed value of white.
	MaxDecimal = 0xFFFFFF
)

// RGB is the canonical color value.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// Black is the default color.
var Black = RGB{}

// NewRGB clamps each channel independently.
func NewRGB(r, g, b int) RGB {
	return RGB{R: clampInt(r), G: clampInt(g), B: clampInt(b)}
}

// Hex returns the color as RRGGBB without a leading '#'.
func (c RGB) Hex() string {
	return RGBToHex(int(c.R), int(c.G), int(c.B))
}

// DisplayHex returns the color as #RRGGBB.
func (c RGB) DisplayHex() string {
	return "#" + c.Hex()
}

// Decimal returns the packed integer form.
func (c RGB) Decimal() int {
	return RGBToDecimal(int(c.R), int(c.G), int(c.B))
}

// CSS returns the human readable rgb(r, g, b) form.
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Channel returns the value of channel ch.
func (c RGB) Channel(ch Channel) uint8 {
	switch ch {
	case Red:
		return c.R
	case Green:
		return c.G
	default:
		return c.B
	}
}

// WithChannel returns a copy of c with channel ch replaced.
func (c RGB) WithChannel(ch Channel, v uint8) RGB {
	switch ch {
	case Red:
		c.R = v
	case Green:
		c.G = v
	case Blue:
		c.B = v
	}
	return c
}

// String makes RGB satisfy fmt.Stringer.
func (c RGB) String() string {
	return c.DisplayHex()
}

// Channel identifies one of the three components.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// Channels lists the components in display order.
var Channels = []Channel{Red, Green, Blue}

// String returns the channel name.
func (ch Channel) String() string {
	switch ch {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

// Short returns the single letter label used in compact displays.
func (ch Channel) Short() string {
	switch ch {
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return "?"
	}
}
