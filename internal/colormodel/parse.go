package colormodel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Format names a textual color notation.
type Format string

const (
	FormatAuto    Format = "auto"
	FormatHex     Format = "hex"
	FormatRGB     Format = "rgb"
	FormatDecimal Format = "decimal"
)

// Formats lists the notations accepted by ParseFormat.
var Formats = []Format{FormatAuto, FormatHex, FormatRGB, FormatDecimal}

// ErrInvalidColor is returned when text cannot be read in the requested format.
var ErrInvalidColor = errors.New("invalid color")

// ParseFormat resolves a format name, case-insensitive. Empty means auto.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatAuto, nil
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown color format %q", s)
}

// Parse reads text in format f. With FormatAuto a leading '#' selects hex,
// "rgb(...)" or a comma list selects rgb, plain digits select decimal and
// anything else is tried as hex. Unlike the live input paths, Parse rejects
// out-of-range values instead of clamping them.
func Parse(text string, f Format) (RGB, error) {
	s := strings.TrimSpace(text)
	if f == FormatAuto {
		f = detectFormat(s)
	}
	switch f {
	case FormatHex:
		return HexToRGB(s)
	case FormatRGB:
		return parseTriple(s)
	case FormatDecimal:
		d, err := strconv.Atoi(s)
		if err != nil || d < 0 || d > MaxDecimal {
			return RGB{}, fmt.Errorf("%w: decimal must be 0..%d, got %q", ErrInvalidColor, MaxDecimal, text)
		}
		return DecimalToRGB(d), nil
	default:
		return RGB{}, fmt.Errorf("unknown color format %q", f)
	}
}

func detectFormat(s string) Format {
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(s, "#"):
		return FormatHex
	case strings.HasPrefix(lower, "rgb(") || strings.Contains(s, ","):
		return FormatRGB
	case s != "" && strings.Trim(s, "0123456789") == "":
		return FormatDecimal
	default:
		return FormatHex
	}
}

// parseTriple reads "rgb(r, g, b)" or "r,g,b".
func parseTriple(s string) (RGB, error) {
	body := s
	if lower := strings.ToLower(body); strings.HasPrefix(lower, "rgb(") {
		if !strings.HasSuffix(body, ")") {
			return RGB{}, fmt.Errorf("%w: unterminated %q", ErrInvalidColor, s)
		}
		body = body[len("rgb(") : len(body)-1]
	}
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("%w: want three channels, got %q", ErrInvalidColor, s)
	}
	var ch [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > MaxChannel {
			return RGB{}, fmt.Errorf("%w: channel %q must be 0..%d", ErrInvalidColor, strings.TrimSpace(p), MaxChannel)
		}
		ch[i] = v
	}
	return NewRGB(ch[0], ch[1], ch[2]), nil
}
