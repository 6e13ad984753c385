package canvas

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB colour. The zero value means "terminal default".
type Color struct {
	colorful.Color
	Set bool
}

// RGB builds a colour from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{
		Color: colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255},
		Set:   true,
	}
}

// Hex parses "#rrggbb".
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	return Color{Color: c, Set: true}, nil
}

// MustHex is Hex for constants.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromLipgloss converts a hex lipgloss colour; ANSI palette colours are
// not representable and give the default colour.
func FromLipgloss(c lipgloss.Color) Color {
	col, err := Hex(string(c))
	if err != nil {
		return Color{}
	}
	return col
}

// Blend mixes c towards other by t in [0,1]. An unset side yields the
// other side unchanged.
func (c Color) Blend(other Color, t float64) Color {
	switch {
	case !c.Set:
		return other
	case !other.Set:
		return c
	}
	t = min(max(t, 0), 1)
	return Color{Color: c.BlendRgb(other.Color, t).Clamped(), Set: true}
}

// Lipgloss returns the colour for lipgloss styles.
func (c Color) Lipgloss() lipgloss.TerminalColor {
	if !c.Set {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(c.Hex())
}

// Equal compares colours at hex precision.
func (c Color) Equal(other Color) bool {
	if c.Set != other.Set {
		return false
	}
	return !c.Set || c.Hex() == other.Hex()
}
