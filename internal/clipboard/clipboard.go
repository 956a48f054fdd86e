// Package clipboard copies text to the system clipboard, falling back to an
// OSC52 escape sequence written to the terminal when no clipboard utility is
// available (for example over SSH).
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"rgbctl/pkg/logging"
)

const subsystem = "Clipboard"

// ErrUnavailable is returned when neither the system clipboard nor the
// terminal fallback accepted the text.
var ErrUnavailable = errors.New("clipboard unavailable")

// Method reports which mechanism delivered the text.
type Method string

const (
	MethodNone   Method = ""
	MethodSystem Method = "system"
	MethodOSC52  Method = "osc52"
)

// Copier writes text to the clipboard.
type Copier struct {
	writeAll func(string) error
	terminal io.Writer
	getenv   func(string) string
}

// Option configures a Copier.
type Option func(*Copier)

// WithTerminal sets the writer OSC52 sequences go to. A nil writer disables
// the fallback.
func WithTerminal(w io.Writer) Option {
	return func(c *Copier) {
		c.terminal = w
	}
}

// WithSystemClipboard replaces the primary clipboard writer.
func WithSystemClipboard(writeAll func(string) error) Option {
	return func(c *Copier) {
		c.writeAll = writeAll
	}
}

// New creates a Copier using the system clipboard and an OSC52 fallback to
// stdout.
func New(opts ...Option) *Copier {
	c := &Copier{
		writeAll: systemWriteAll,
		terminal: os.Stdout,
		getenv:   os.Getenv,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func systemWriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard utility found")
	}
	return clipboard.WriteAll(text)
}

// Copy writes text to the clipboard and reports the mechanism that worked.
func (c *Copier) Copy(text string) (Method, error) {
	primaryErr := c.writeAll(text)
	if primaryErr == nil {
		logging.Debug(subsystem, "Copied %q via system clipboard", text)
		return MethodSystem, nil
	}
	logging.Debug(subsystem, "System clipboard failed: %v", primaryErr)

	if c.terminal == nil {
		return MethodNone, fmt.Errorf("%w: %v", ErrUnavailable, primaryErr)
	}

	seq := osc52.New(text)
	switch {
	case c.getenv("TMUX") != "":
		seq = seq.Tmux()
	case c.getenv("STY") != "":
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(c.terminal); err != nil {
		return MethodNone, fmt.Errorf("%w: %v; osc52: %v", ErrUnavailable, primaryErr, err)
	}
	logging.Debug(subsystem, "Copied %q via OSC52", text)
	return MethodOSC52, nil
}
