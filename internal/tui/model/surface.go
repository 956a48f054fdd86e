package model

import (
	"strconv"

	"rgbctl/internal/colormodel"
	"rgbctl/internal/picker"
	"rgbctl/internal/tui/design"
)

var _ picker.Surface = (*Model)(nil)

// SetChannels implements picker.Surface. A channel input that is being
// edited keeps the raw text the user typed.
func (m *Model) SetChannels(c colormodel.RGB) {
	m.Writes++
	m.Channels = c
	for _, f := range []Field{FieldRed, FieldGreen, FieldBlue} {
		ch, _ := f.Channel()
		m.setInput(f, strconv.Itoa(int(c.Channel(ch))))
	}
}

// SetHex implements picker.Surface.
func (m *Model) SetHex(display, value string) {
	m.HexDisplay = display
	m.HexValue = value
	m.setInput(FieldHex, value)
}

// SetRGBText implements picker.Surface.
func (m *Model) SetRGBText(css string) {
	m.RGBText = css
}

// PickerValue implements picker.Surface.
func (m *Model) PickerValue() string {
	return m.PickerHex
}

// SetPickerValue implements picker.Surface.
func (m *Model) SetPickerValue(hex string) {
	m.PickerHex = hex
}

// SetDecimal implements picker.Surface.
func (m *Model) SetDecimal(d int) {
	m.Decimal = d
	m.setInput(FieldDecimal, strconv.Itoa(d))
}

// SetStyle implements picker.Surface.
func (m *Model) SetStyle(s picker.Style) {
	m.Style = s
}

// SetTheme implements picker.Surface.
func (m *Model) SetTheme(t picker.Theme) {
	m.Theme = t
	design.Initialize(t.IsDark())
}

func (m *Model) setInput(f Field, value string) {
	if int(f) >= len(m.Inputs) || m.Editing(f) {
		return
	}
	m.Inputs[f].SetValue(value)
}

// RefreshInputs rewrites every input from the projected values.
func (m *Model) RefreshInputs() {
	for _, f := range Fields {
		if int(f) >= len(m.Inputs) {
			return
		}
		m.Inputs[f].SetValue(m.CanonicalValue(f))
	}
}

// CanonicalValue is what f's input shows when it is not being edited.
func (m *Model) CanonicalValue(f Field) string {
	if ch, ok := f.Channel(); ok {
		return strconv.Itoa(int(m.Channels.Channel(ch)))
	}
	if f == FieldHex {
		return m.HexValue
	}
	return strconv.Itoa(m.Decimal)
}
