// Package tui is the terminal front end of rgbctl.
//
// The package itself holds no code; the TUI is split across three
// subpackages in a Model-View-Controller layout built on Bubble Tea:
//
//   - model: the TUI state. *model.Model is registered with the
//     picker.Controller as a Surface, so every color change made anywhere
//     (keys, text inputs, the random and reset actions) is written into it
//     by the controller.
//   - view: pure rendering of the swatch, the channel sliders, the hex and
//     decimal rows, the button bar, the status bar and the overlays.
//   - controller: key and message routing, and the tea.Program setup.
//
// Styling lives in design, which wraps lipgloss adaptive colors and is
// re-initialized whenever the picker theme changes.
//
// # Editing
//
// Each row has a text input. Enter starts editing the focused row; every
// keystroke is dispatched live to the picker controller, which ignores
// input it cannot use yet (an incomplete hex value, an empty field).
// Enter, tab and shift+tab commit the value with focus-loss semantics:
// short hex is zero padded and empty numeric fields become 0. Esc
// restores the canonical value.
//
// # Keys
//
//	up/down, j/k, tab   move between rows
//	left/right, -/+     nudge the focused value by one step
//	shift+left/right    nudge by the big step
//	enter, e            edit the focused row
//	r                   random color
//	x                   reset to black
//	c, y                copy the hex value
//	t, D                toggle light/dark theme
//	L                   activity log
//	h, ?                help
//	q, ctrl+c           quit
//
// # Usage
//
//	p := controller.NewProgram(model.TUIConfig{
//	    Controller: pickerController,
//	    Copier:     copier,
//	    LogChannel: logChannel,
//	})
//	if _, err := p.Run(); err != nil {
//	    return err
//	}
package tui
