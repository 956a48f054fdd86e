package picker

import (
	"errors"
	"math/rand/v2"
	"strings"
	"sync"

	"rgbctl/internal/colormodel"
	"rgbctl/internal/state"
	"rgbctl/pkg/logging"
)

const subsystem = "Picker"

// Controller owns the current color and theme and fans every change out to
// its surfaces and store.
type Controller struct {
	mu       sync.Mutex
	store    state.Store
	surfaces []Surface
	intN     func(n int) int

	color colormodel.RGB
	theme Theme
}

// Option configures a Controller.
type Option func(*Controller)

// WithSurface registers a surface. Surfaces are written in registration order.
func WithSurface(s Surface) Option {
	return func(c *Controller) {
		c.surfaces = append(c.surfaces, s)
	}
}

// WithRandom replaces the generator behind Randomize. intN must return a
// uniform integer in [0,n).
func WithRandom(intN func(n int) int) Option {
	return func(c *Controller) {
		c.intN = intN
	}
}

// New creates a controller holding black and the default theme. A nil
// store disables persistence.
func New(store state.Store, opts ...Option) *Controller {
	c := &Controller{
		store: store,
		intN:  rand.IntN,
		color: colormodel.Black,
		theme: DefaultTheme,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddSurface registers a surface after construction and brings it up to
// date with the current theme and color.
func (c *Controller) AddSurface(s Surface) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.surfaces = append(c.surfaces, s)
	s.SetTheme(c.theme)
	writeProjection(s, Project(c.color))
}

// Color returns the current color.
func (c *Controller) Color() colormodel.RGB {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.color
}

// Theme returns the current theme.
func (c *Controller) Theme() Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.theme
}

// Snapshot returns the projection of the current color.
func (c *Controller) Snapshot() Projection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Project(c.color)
}

// Initialize restores the saved theme and color. Unreadable or corrupt
// state falls back to the defaults. The theme is applied before the color.
func (c *Controller) Initialize() Projection {
	c.mu.Lock()
	defer c.mu.Unlock()

	initial := colormodel.Black
	theme := DefaultTheme

	if c.store != nil {
		saved, err := c.store.Load()
		switch {
		case errors.Is(err, state.ErrNoState):
			logging.Debug(subsystem, "No saved state, starting from defaults")
		case err != nil:
			logging.Warn(subsystem, "Ignoring unreadable saved state: %v", err)
		default:
			if col, ok := savedColor(saved); ok {
				initial = col
			}
			if s, ok := saved.String(state.KeyTheme); ok {
				if t, ok := ParseTheme(s); ok && string(t) == s {
					theme = t
				}
			}
		}
	}

	c.applyTheme(theme)
	return c.applyColor(initial)
}

func savedColor(p state.Payload) (colormodel.RGB, bool) {
	r, okR := p.FiniteNumber(state.KeyRed)
	g, okG := p.FiniteNumber(state.KeyGreen)
	b, okB := p.FiniteNumber(state.KeyBlue)
	if !okR || !okG || !okB {
		return colormodel.Black, false
	}
	return colormodel.RGB{
		R: colormodel.ClampChannel(r),
		G: colormodel.ClampChannel(g),
		B: colormodel.ClampChannel(b),
	}, true
}

// ApplyColor clamps the triple, writes it to every surface and persists it.
func (c *Controller) ApplyColor(r, g, b int) Projection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.applyColor(colormodel.NewRGB(r, g, b))
}

// ApplyRGB is ApplyColor for an already valid triple.
func (c *Controller) ApplyRGB(col colormodel.RGB) Projection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.applyColor(col)
}

// ApplyHex applies a 3 or 6 digit hex color. Anything else leaves the
// current color untouched and reports false.
func (c *Controller) ApplyHex(raw string) bool {
	col, err := colormodel.HexToRGB(raw)
	if err != nil {
		logging.Debug(subsystem, "Ignoring hex input %q", raw)
		return false
	}
	c.ApplyRGB(col)
	return true
}

// CommitHex is ApplyHex for an explicitly confirmed value: short input is
// left-padded with zeros before giving up.
func (c *Controller) CommitHex(raw string) bool {
	col, err := colormodel.PadHex(raw)
	if err != nil {
		logging.Debug(subsystem, "Ignoring committed hex input %q", raw)
		return false
	}
	c.ApplyRGB(col)
	return true
}

// ApplyDecimal applies a packed decimal value. Empty input is a no-op.
func (c *Controller) ApplyDecimal(raw any) bool {
	d, ok := colormodel.ParseDecimal(raw)
	if !ok {
		return false
	}
	c.ApplyRGB(colormodel.DecimalToRGB(d))
	return true
}

// ApplyChannel replaces one channel of the current color.
func (c *Controller) ApplyChannel(ch colormodel.Channel, raw any) Projection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.applyColor(c.color.WithChannel(ch, colormodel.NormalizeChannel(raw)))
}

// Nudge moves one channel by delta, clamping at the bounds.
func (c *Controller) Nudge(ch colormodel.Channel, delta int) Projection {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := int(c.color.Channel(ch)) + delta
	return c.applyColor(c.color.WithChannel(ch, colormodel.NewRGB(v, 0, 0).R))
}

// Randomize applies three independent uniform channels.
func (c *Controller) Randomize() Projection {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := colormodel.MaxChannel + 1
	return c.applyColor(colormodel.NewRGB(c.intN(n), c.intN(n), c.intN(n)))
}

// Reset applies black.
func (c *Controller) Reset() Projection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.applyColor(colormodel.Black)
}

// ToggleTheme flips the theme, applies and persists it.
func (c *Controller) ToggleTheme() Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setTheme(c.theme.Toggle())
}

// SetTheme applies and persists t.
func (c *Controller) SetTheme(t Theme) Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setTheme(t)
}

func (c *Controller) setTheme(t Theme) Theme {
	c.applyTheme(t)
	c.persist(state.Payload{state.KeyTheme: string(t)})
	return t
}

func (c *Controller) applyTheme(t Theme) {
	c.theme = t
	for _, s := range c.surfaces {
		s.SetTheme(t)
	}
}

// applyColor is the single funnel every color change goes through.
func (c *Controller) applyColor(col colormodel.RGB) Projection {
	c.color = col
	p := Project(col)
	for _, s := range c.surfaces {
		writeProjection(s, p)
	}
	c.persist(state.Payload{
		state.KeyRed:   int(col.R),
		state.KeyGreen: int(col.G),
		state.KeyBlue:  int(col.B),
	})
	return p
}

func writeProjection(s Surface, p Projection) {
	s.SetChannels(p.Color)
	s.SetHex(p.DisplayHex, p.Hex)
	s.SetRGBText(p.CSS)
	if !strings.EqualFold(s.PickerValue(), p.DisplayHex) {
		s.SetPickerValue(p.DisplayHex)
	}
	s.SetDecimal(p.Decimal)
	s.SetStyle(p.Style())
}

func (c *Controller) persist(patch state.Payload) {
	if c.store == nil {
		return
	}
	if err := c.store.Save(patch); err != nil {
		logging.Warn(subsystem, "Failed to persist picker state: %v", err)
	}
}
