package colormodel

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// ClampChannel rounds v to the nearest integer and clamps it into [0,255].
// NaN and infinities map to 0.
func ClampChannel(v float64) uint8 {
	return uint8(clampRound(v, MaxChannel))
}

// NormalizeChannel accepts a raw channel value as it arrives from an input
// (string, any numeric type, nil) and clamps it. Anything that cannot be
// read as a number maps to 0.
func NormalizeChannel(raw any) uint8 {
	v, ok := toFloat(raw)
	if !ok {
		return 0
	}
	return ClampChannel(v)
}

// ParseDecimal reads a raw packed decimal value. Empty or nil input reports
// ok=false so callers can skip the update; any other input is rounded and
// clamped into [0,MaxDecimal], unparseable text counting as 0.
func ParseDecimal(raw any) (int, bool) {
	if raw == nil {
		return 0, false
	}
	if s, isString := raw.(string); isString && strings.TrimSpace(s) == "" {
		return 0, false
	}
	v, ok := toFloat(raw)
	if !ok {
		return 0, true
	}
	return clampRound(v, MaxDecimal), true
}

func toFloat(raw any) (float64, bool) {
	if s, ok := raw.(string); ok {
		raw = strings.TrimSpace(s)
	}
	v, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func clampRound(v float64, limit int) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > float64(limit) {
		return limit
	}
	return int(v)
}

func clampInt(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > MaxChannel {
		return MaxChannel
	}
	return uint8(v)
}
