package colormodel

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampChannel(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want uint8
	}{
		{"zero", 0, 0},
		{"in range", 128, 128},
		{"rounds down", 12.4, 12},
		{"rounds half up", 12.5, 13},
		{"negative", -10, 0},
		{"above max", 300, 255},
		{"max", 255, 255},
		{"nan", math.NaN(), 0},
		{"positive infinity", math.Inf(1), 0},
		{"negative infinity", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampChannel(tt.in))
		})
	}
}

func TestClampChannel_Idempotent(t *testing.T) {
	inputs := []float64{-1e9, -1, -0.4, 0, 0.5, 1, 127.49, 254.6, 255, 256, 1e9, math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, in := range inputs {
		once := ClampChannel(in)
		twice := ClampChannel(float64(once))
		assert.Equal(t, once, twice, "clamp should be idempotent for %v", in)
		assert.LessOrEqual(t, int(once), MaxChannel)
	}
}

func TestNormalizeChannel(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want uint8
	}{
		{"string", "42", 42},
		{"padded string", "  42 ", 42},
		{"float string", "41.6", 42},
		{"exponent string", "1e2", 100},
		{"empty string", "", 0},
		{"garbage", "abc", 0},
		{"negative string", "-5", 0},
		{"large string", "9000", 255},
		{"int", 17, 17},
		{"float", 254.7, 255},
		{"json number", json.Number("33"), 33},
		{"nil", nil, 0},
		{"nan string", "NaN", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeChannel(tt.in))
		})
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   int
		wantOK bool
	}{
		{"nil", nil, 0, false},
		{"empty", "", 0, false},
		{"blank", "   ", 0, false},
		{"value", "65408", 65408, true},
		{"negative", "-1", 0, true},
		{"too large", "99999999", MaxDecimal, true},
		{"rounded", 10.6, 11, true},
		{"garbage", "xyz", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDecimal(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRGBToHex(t *testing.T) {
	assert.Equal(t, "000000", RGBToHex(0, 0, 0))
	assert.Equal(t, "FFFFFF", RGBToHex(255, 255, 255))
	assert.Equal(t, "0A0B0C", RGBToHex(10, 11, 12))
	assert.Equal(t, "00FF80", RGBToHex(-10, 300, 128))
}

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    RGB
		wantErr bool
	}{
		{"short", "F00", RGB{255, 0, 0}, false},
		{"long", "FF0000", RGB{255, 0, 0}, false},
		{"hash short", "#abc", RGB{0xAA, 0xBB, 0xCC}, false},
		{"hash long lowercase", "#00ff80", RGB{0, 255, 128}, false},
		{"surrounding space", " #123456 ", RGB{0x12, 0x34, 0x56}, false},
		{"not hex", "zzz", RGB{}, true},
		{"incomplete", "ab", RGB{}, true},
		{"four digits", "abcd", RGB{}, true},
		{"seven digits", "1234567", RGB{}, true},
		{"empty", "", RGB{}, true},
		{"only hash", "#", RGB{}, true},
		{"double hash", "##abc", RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexToRGB(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidHex)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHexToRGB_ShorthandMatchesLongForm(t *testing.T) {
	short, err := HexToRGB("F00")
	require.NoError(t, err)
	long, err := HexToRGB("FF0000")
	require.NoError(t, err)
	assert.Equal(t, long, short)
	assert.Equal(t, RGB{R: 255}, short)
}

func TestPadHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    RGB
		wantErr bool
	}{
		{"two digits", "ab", RGB{0, 0, 0xAB}, false},
		{"one digit", "#f", RGB{0, 0, 0x0F}, false},
		{"four digits", "abcd", RGB{0, 0xAB, 0xCD}, false},
		{"shorthand still expands", "abc", RGB{0xAA, 0xBB, 0xCC}, false},
		{"full", "123456", RGB{0x12, 0x34, 0x56}, false},
		{"empty", "", RGB{}, true},
		{"not hex", "xy", RGB{}, true},
		{"too long", "1234567", RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PadHex(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidHex)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for r := 0; r <= MaxChannel; r += 5 {
		for g := 0; g <= MaxChannel; g += 3 {
			for b := 0; b <= MaxChannel; b += 7 {
				got, err := HexToRGB(RGBToHex(r, g, b))
				require.NoError(t, err)
				require.Equal(t, NewRGB(r, g, b), got)
			}
		}
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	for d := 0; d <= MaxDecimal; d += 997 {
		c := DecimalToRGB(d)
		require.Equal(t, d, RGBToDecimal(int(c.R), int(c.G), int(c.B)))
	}
	c := DecimalToRGB(MaxDecimal)
	assert.Equal(t, MaxDecimal, c.Decimal())
}

func TestRGBDecimalRoundTrip(t *testing.T) {
	for r := 0; r <= MaxChannel; r += 15 {
		for g := 0; g <= MaxChannel; g++ {
			for b := 0; b <= MaxChannel; b += 51 {
				want := NewRGB(r, g, b)
				require.Equal(t, want, DecimalToRGB(RGBToDecimal(r, g, b)))
			}
		}
	}
}

func TestDecimalToRGB_Clamps(t *testing.T) {
	assert.Equal(t, Black, DecimalToRGB(-5))
	assert.Equal(t, RGB{255, 255, 255}, DecimalToRGB(MaxDecimal+10))
	assert.Equal(t, RGB{0, 255, 128}, DecimalToRGB(65408))
}

func TestRGBToDecimal(t *testing.T) {
	assert.Equal(t, 65408, RGBToDecimal(-10, 300, 128))
	assert.Equal(t, 0xFF0000, RGBToDecimal(255, 0, 0))
}

func TestRGBFormatting(t *testing.T) {
	c := NewRGB(-10, 300, 128)
	assert.Equal(t, RGB{0, 255, 128}, c)
	assert.Equal(t, "00FF80", c.Hex())
	assert.Equal(t, "#00FF80", c.DisplayHex())
	assert.Equal(t, 65408, c.Decimal())
	assert.Equal(t, "rgb(0, 255, 128)", c.CSS())
	assert.Equal(t, "#00FF80", c.String())
}

func TestRGBChannelAccess(t *testing.T) {
	c := RGB{1, 2, 3}
	assert.Equal(t, uint8(1), c.Channel(Red))
	assert.Equal(t, uint8(2), c.Channel(Green))
	assert.Equal(t, uint8(3), c.Channel(Blue))
	assert.Equal(t, RGB{1, 9, 3}, c.WithChannel(Green, 9))
	assert.Equal(t, "green", Green.String())
	assert.Equal(t, "B", Blue.Short())
}

func TestRelativeLuminance(t *testing.T) {
	assert.InDelta(t, 0.0, RelativeLuminance(Black), 1e-9)
	assert.InDelta(t, 1.0, RelativeLuminance(RGB{255, 255, 255}), 1e-9)
	assert.InDelta(t, 0.2126, RelativeLuminance(RGB{R: 255}), 1e-9)
	assert.InDelta(t, 0.7152, RelativeLuminance(RGB{G: 255}), 1e-9)
	assert.InDelta(t, 0.0722, RelativeLuminance(RGB{B: 255}), 1e-9)

	// mid grey sits just below the text threshold
	grey := RelativeLuminance(RGB{128, 128, 128})
	expected := math.Pow((128.0/255+0.055)/1.055, 2.4)
	assert.InDelta(t, expected, grey, 1e-9)
	assert.Less(t, grey, TextThreshold)

	// values at or below 0.04045 use the linear segment
	assert.InDelta(t, (10.0/255)/12.92, RelativeLuminance(RGB{10, 10, 10}), 1e-9)
}

func TestContrastFor(t *testing.T) {
	dark := ContrastFor(RelativeLuminance(Black))
	assert.False(t, dark.Light)
	assert.Equal(t, TextOnDark, dark.Text)
	assert.Equal(t, BorderOnDark, dark.Border)
	assert.Equal(t, LabelOnDark, dark.Label)

	light := ContrastFor(RelativeLuminance(RGB{255, 255, 255}))
	assert.True(t, light.Light)
	assert.Equal(t, TextOnLight, light.Text)
	assert.Equal(t, BorderOnLight, light.Border)
	assert.Equal(t, LabelOnLight, light.Label)

	between := ContrastFor(0.6)
	assert.True(t, between.Light)
	assert.Equal(t, BorderOnDark, between.Border)

	atThreshold := ContrastFor(TextThreshold)
	assert.False(t, atThreshold.Light, "threshold itself is not light")
}
