package state

import (
	"errors"
	"math"
)

// ErrNoState is returned by Load when nothing has been saved yet.
var ErrNoState = errors.New("no saved state")

// Keys of the picker record.
const (
	KeyRed   = "r"
	KeyGreen = "g"
	KeyBlue  = "b"
	KeyTheme = "theme"
)

// Payload is one keyed record. Values are kept as decoded so that fields
// written by someone else survive a read-merge-write cycle untouched.
type Payload map[string]any

// Number returns the value stored under key when it was stored as a number.
// Strings are not coerced. The value may still be NaN or infinite.
func (p Payload) Number(key string) (float64, bool) {
	switch v := p[key].(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint8:
		return float64(v), true
	case float64:
		return v, true
	case float32:
		return float64(v), true
	default:
		return 0, false
	}
}

// FiniteNumber is Number restricted to finite values.
func (p Payload) FiniteNumber(key string) (float64, bool) {
	v, ok := p.Number(key)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// String returns the value stored under key when it is a string.
func (p Payload) String(key string) (string, bool) {
	s, ok := p[key].(string)
	return s, ok
}

// Merge overlays patch onto a copy of p.
func (p Payload) Merge(patch Payload) Payload {
	out := make(Payload, len(p)+len(patch))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range patch {
		out[k] = v
	}
	return out
}

// Store persists the picker record.
type Store interface {
	// Load returns the saved record, ErrNoState if there is none, or an
	// error when the backing storage is unreadable or corrupt.
	Load() (Payload, error)
	// Save reads the current record, overlays patch and writes it back.
	Save(patch Payload) error
}
