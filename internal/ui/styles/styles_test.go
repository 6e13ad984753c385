package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestBoldGradient_KeepsText(t *testing.T) {
	out := BoldGradient("tracklist", T().BorderFocus, T().Primary)
	assert.Equal(t, "tracklist", ansi.Strip(out))
}

func TestBoldGradient_Empty(t *testing.T) {
	assert.Empty(t, BoldGradient("", T().BorderFocus, T().Primary))
}

func TestBoldGradient_NonHexFallsBack(t *testing.T) {
	out := BoldGradient("x", lipgloss.Color("39"), T().Primary)
	assert.Equal(t, "x", ansi.Strip(out))
}

func TestThemeStylesCached(t *testing.T) {
	assert.Same(t, T().S(), T().S())
}
