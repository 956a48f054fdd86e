package colormodel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned for input that is not a 3 or 6 digit hex color.
var ErrInvalidHex = errors.New("invalid hex color")

// RGBToHex clamps each channel and formats the triple as RRGGBB.
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("%02X%02X%02X", clampInt(r), clampInt(g), clampInt(b))
}

// HexToRGB parses #RGB, RGB, #RRGGBB or RRGGBB (case-insensitive).
// Anything else returns ErrInvalidHex and the zero color.
func HexToRGB(s string) (RGB, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if !isHexDigits(digits) {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	switch len(digits) {
	case 3:
		digits = expandShorthand(digits)
	case 6:
	default:
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return parseSix(digits), nil
}

// PadHex is the lenient form of HexToRGB used when the user explicitly
// commits a value. A valid 3 or 6 digit string is parsed normally; any other
// string of at most six hex digits is left-padded with zeros ("ab" becomes
// 0000AB). Non-hex characters and overlong input are still rejected.
func PadHex(s string) (RGB, error) {
	if c, err := HexToRGB(s); err == nil {
		return c, nil
	}
	digits := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if digits == "" || len(digits) > 6 || !isHexDigits(digits) {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return parseSix(strings.Repeat("0", 6-len(digits)) + digits), nil
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

func expandShorthand(s string) string {
	var b strings.Builder
	b.Grow(6)
	for i := 0; i < 3; i++ {
		b.WriteByte(s[i])
		b.WriteByte(s[i])
	}
	return b.String()
}

// parseSix expects exactly six validated hex digits.
func parseSix(s string) RGB {
	v, _ := strconv.ParseUint(s, 16, 32)
	return DecimalToRGB(int(v))
}
