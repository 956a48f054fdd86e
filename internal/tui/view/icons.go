package view

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Icon constants
const (
	IconCheck     = "✔" // U+2714
	IconCross     = "❌" // U+274C
	IconSparkles  = "✨" // U+2728 (for success messages)
	IconLightbulb = "💡" // U+1F4A1
	IconScroll    = "📜" // U+1F4DC
	IconInfo      = "ℹ" // U+2139 without VS16
	IconPalette   = "🎨" // U+1F3A8
	IconSun       = "☀" // U+2600 without VS16
	IconMoon      = "☾" // U+263E
)

// SafeIcon wraps an icon with proper spacing to prevent rendering issues.
// Icons that occupy two cells get two trailing spaces so that at least one
// space stays visible after the glyph.
func SafeIcon(icon string) string {
	spaces := 1
	if runewidth.StringWidth(icon) >= 2 {
		spaces = 2
	}
	return fmt.Sprintf("%s%s", icon, strings.Repeat(" ", spaces))
}

// padLabel left-aligns s in a column of width cells.
func padLabel(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}
