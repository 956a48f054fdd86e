// Package colormodel converts a color between its three representations:
// an RGB triple of 8-bit channels, a six digit hex string and a packed
// decimal integer (r*65536 + g*256 + b).
//
// Everything in this package is pure. Channel input is never rejected: out
// of range or unparseable values are clamped to the nearest valid bound, and
// non-finite values become zero.
//
// # Luminance policy
//
// Relative luminance uses the perceptual sRGB transform: every channel is
// normalized to [0,1], linearized (c/12.92 at or below 0.04045, otherwise
// ((c+0.055)/1.055)^2.4) and combined as 0.2126R + 0.7152G + 0.0722B.
// ContrastFor picks dark text above TextThreshold (0.5) and the lighter
// border tint above BorderThreshold (0.7).
//
// # Usage Example
//
//	c, err := colormodel.HexToRGB("#F80")
//	if err != nil {
//	    return // leave the current color alone
//	}
//	fmt.Println(c.Hex(), c.Decimal(), c.CSS())
//	// FF8800 16746496 rgb(255, 136, 0)
package colormodel
