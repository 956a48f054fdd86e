package colormodel

// RGBToDecimal packs the clamped channels as (r<<16)|(g<<8)|b.
func RGBToDecimal(r, g, b int) int {
	return int(clampInt(r))<<16 | int(clampInt(g))<<8 | int(clampInt(b))
}

// DecimalToRGB clamps d into [0,MaxDecimal] and unpacks it.
func DecimalToRGB(d int) RGB {
	if d < 0 {
		d = 0
	}
	if d > MaxDecimal {
		d = MaxDecimal
	}
	return RGB{
		R: uint8(d >> 16 & 0xFF),
		G: uint8(d >> 8 & 0xFF),
		B: uint8(d & 0xFF),
	}
}
