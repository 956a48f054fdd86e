package picker

import (
	"rgbctl/internal/colormodel"
	"rgbctl/pkg/logging"
)

// LogSurface records every update in the debug log. Headless commands use it
// as their only surface.
type LogSurface struct {
	Subsystem string
	picker    string
}

// NewLogSurface creates a surface logging under subsystem.
func NewLogSurface(subsystem string) *LogSurface {
	return &LogSurface{Subsystem: subsystem}
}

func (l *LogSurface) SetChannels(c colormodel.RGB) {
	logging.Debug(l.Subsystem, "channels r=%d g=%d b=%d", c.R, c.G, c.B)
}

func (l *LogSurface) SetHex(display, value string) {
	logging.Debug(l.Subsystem, "hex %s (%s)", display, value)
}

func (l *LogSurface) SetRGBText(css string) {
	logging.Debug(l.Subsystem, "css %s", css)
}

func (l *LogSurface) PickerValue() string { return l.picker }

func (l *LogSurface) SetPickerValue(hex string) { l.picker = hex }

func (l *LogSurface) SetDecimal(d int) {
	logging.Debug(l.Subsystem, "decimal %d", d)
}

func (l *LogSurface) SetStyle(s Style) {
	logging.Debug(l.Subsystem, "style bg=%s fg=%s border=%s", s.Background, s.Foreground, s.Border)
}

func (l *LogSurface) SetTheme(t Theme) {
	logging.Debug(l.Subsystem, "theme %s", t)
}
