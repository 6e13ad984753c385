package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// BoldGradient renders bold text with a horizontal color gradient blended in
// HCL space. Colors that are not #rrggbb fall back to plain bold text.
func BoldGradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}
	c1, err1 := colorful.Hex(string(from))
	c2, err2 := colorful.Hex(string(to))
	if err1 != nil || err2 != nil {
		return lipgloss.NewStyle().Foreground(from).Bold(true).Render(text)
	}

	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	var b strings.Builder
	for i, cluster := range clusters {
		t := 0.0
		if len(clusters) > 1 {
			t = float64(i) / float64(len(clusters)-1)
		}
		c := c1.BlendHcl(c2, t).Clamped()
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Hex())).
			Bold(true).
			Render(cluster))
	}
	return b.String()
}
