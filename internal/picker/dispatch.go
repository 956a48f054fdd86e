package picker

import (
	"fmt"
	"strings"

	"rgbctl/internal/colormodel"
)

// Source identifies the control an input event came from.
type Source int

const (
	SourceRedSlider Source = iota
	SourceGreenSlider
	SourceBlueSlider
	SourceRedField
	SourceGreenField
	SourceBlueField
	SourceHexField
	SourcePicker
	SourceDecimalField
)

// String returns the control name used in logs.
func (s Source) String() string {
	switch s {
	case SourceRedSlider:
		return "red-slider"
	case SourceGreenSlider:
		return "green-slider"
	case SourceBlueSlider:
		return "blue-slider"
	case SourceRedField:
		return "red-field"
	case SourceGreenField:
		return "green-field"
	case SourceBlueField:
		return "blue-field"
	case SourceHexField:
		return "hex-field"
	case SourcePicker:
		return "picker"
	case SourceDecimalField:
		return "decimal-field"
	default:
		return fmt.Sprintf("source(%d)", int(s))
	}
}

// inputHandler normalizes one raw value. commit is true for blur/enter.
type inputHandler func(c *Controller, raw any, commit bool) bool

var dispatchTable = map[Source]inputHandler{
	SourceRedSlider:    sliderInput(colormodel.Red),
	SourceGreenSlider:  sliderInput(colormodel.Green),
	SourceBlueSlider:   sliderInput(colormodel.Blue),
	SourceRedField:     fieldInput(colormodel.Red),
	SourceGreenField:   fieldInput(colormodel.Green),
	SourceBlueField:    fieldInput(colormodel.Blue),
	SourceHexField:     hexFieldInput,
	SourcePicker:       pickerInput,
	SourceDecimalField: decimalInput,
}

// Dispatch routes a live input event (slider drag, keystroke) to the
// normalization rule of its source. It reports whether the color changed
// hands; false means the input was ignored.
func (c *Controller) Dispatch(src Source, raw any) bool {
	return c.route(src, raw, false)
}

// Commit routes a confirming event (focus loss, enter). Numeric fields
// treat empty input as 0 and the hex field pads short input.
func (c *Controller) Commit(src Source, raw any) bool {
	return c.route(src, raw, true)
}

func (c *Controller) route(src Source, raw any, commit bool) bool {
	h, ok := dispatchTable[src]
	if !ok {
		return false
	}
	return h(c, raw, commit)
}

func sliderInput(ch colormodel.Channel) inputHandler {
	return func(c *Controller, raw any, _ bool) bool {
		c.ApplyChannel(ch, raw)
		return true
	}
}

func fieldInput(ch colormodel.Channel) inputHandler {
	return func(c *Controller, raw any, commit bool) bool {
		if isBlank(raw) {
			if !commit {
				return false
			}
			raw = 0
		}
		c.ApplyChannel(ch, raw)
		return true
	}
}

func hexFieldInput(c *Controller, raw any, commit bool) bool {
	s := rawString(raw)
	if strings.TrimSpace(s) == "" {
		return false
	}
	if commit {
		return c.CommitHex(s)
	}
	return c.ApplyHex(s)
}

func pickerInput(c *Controller, raw any, _ bool) bool {
	return c.ApplyHex(rawString(raw))
}

func decimalInput(c *Controller, raw any, _ bool) bool {
	return c.ApplyDecimal(raw)
}

func isBlank(raw any) bool {
	if raw == nil {
		return true
	}
	s, ok := raw.(string)
	return ok && strings.TrimSpace(s) == ""
}

func rawString(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
