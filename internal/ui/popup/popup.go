package popup

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/tracklist/internal/ui/render"
	"github.com/llehouerou/tracklist/internal/ui/styles"
)

// Style configures the box appearance.
type Style struct {
	Border      lipgloss.Border
	BorderColor lipgloss.Color
	TitleStyle  lipgloss.Style
	TextStyle   lipgloss.Style
}

// DefaultStyle returns the default box style.
func DefaultStyle() Style {
	t := styles.T()
	return Style{
		Border:      lipgloss.RoundedBorder(),
		BorderColor: t.Border,
		TitleStyle:  t.S().Title,
		TextStyle:   t.S().Base,
	}
}

// Box is a bordered block of text with an optional title line.
type Box struct {
	Title    string
	Content  string
	MaxWidth int // 0 = no limit besides the screen
	Style    Style
}

// NewBox creates a box with the default style.
func NewBox(title, content string) *Box {
	return &Box{
		Title:   title,
		Content: content,
		Style:   DefaultStyle(),
	}
}

// Render returns the box without positioning.
func (b *Box) Render() string {
	inner := maxLineWidth(b.Content)
	if w := lipgloss.Width(b.Title); w > inner {
		inner = w
	}
	if b.MaxWidth > 0 {
		// border and padding take four columns
		inner = min(inner, max(b.MaxWidth-4, 1))
	}

	lines := make([]string, 0, strings.Count(b.Content, "\n")+3)
	if b.Title != "" {
		lines = append(lines, b.Style.TitleStyle.Render(render.TruncateAndPad(b.Title, inner)))
	}
	for line := range strings.SplitSeq(b.Content, "\n") {
		lines = append(lines, b.Style.TextStyle.Render(render.TruncateAndPad(line, inner)))
	}

	return lipgloss.NewStyle().
		Border(b.Style.Border).
		BorderForeground(b.Style.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		if w := lipgloss.Width(line); w > maxW {
			maxW = w
		}
	}
	return maxW
}

// Size returns the display size of pre-rendered content.
func Size(content string) image.Point {
	return image.Pt(maxLineWidth(content), strings.Count(content, "\n")+1)
}

// Place offsets pre-rendered content so its top-left corner lands on at.
// The position is clamped so the content stays on screen when it fits.
// The result is meant for Compose.
func Place(content string, at image.Point, screenW, screenH int) string {
	size := Size(content)
	x := max(min(at.X, screenW-size.X), 0)
	y := max(min(at.Y, screenH-size.Y), 0)

	var b strings.Builder
	for range y {
		b.WriteString("\n")
	}
	pad := strings.Repeat(" ", x)
	for i, line := range strings.Split(content, "\n") {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(pad)
		b.WriteString(line)
	}
	return b.String()
}

// Center places pre-rendered content in the middle of the screen.
func Center(content string, screenW, screenH int) string {
	size := Size(content)
	return Place(content, image.Pt((screenW-size.X)/2, (screenH-size.Y)/2), screenW, screenH)
}

// Compose overlays content on top of a base view.
// Leading and trailing spaces of each overlay line keep the base visible.
// Lines that are blank leave the base line untouched.
func Compose(base, overlayView string, width, _ int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlayView, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plainOverlay := ansi.Strip(overlayLine)
		if strings.TrimSpace(plainOverlay) == "" {
			continue
		}

		startCol := 0
		for _, r := range plainOverlay {
			if r != ' ' {
				break
			}
			startCol++
		}
		endCol := ansi.StringWidth(strings.TrimRight(plainOverlay, " "))

		overlayContent := ansi.Cut(overlayLine, startCol, endCol)

		baseLine := baseLines[i]
		if baseWidth := ansi.StringWidth(baseLine); baseWidth < width {
			baseLine += strings.Repeat(" ", width-baseWidth)
		}

		// Cutting through a wide character may leave the prefix short or
		// the suffix long; pad or trim to keep columns aligned.
		prefix := ansi.Cut(baseLine, 0, startCol)
		if w := ansi.StringWidth(prefix); w < startCol {
			prefix += strings.Repeat(" ", startCol-w)
		}

		result := prefix + overlayContent
		if endCol < width {
			suffix := ansi.Cut(baseLine, endCol, width)
			suffixWidth := ansi.StringWidth(suffix)
			want := width - endCol
			switch {
			case suffixWidth > want:
				suffix = " " + ansi.Cut(suffix, suffixWidth-want+1, suffixWidth)
			case suffixWidth < want:
				suffix += strings.Repeat(" ", want-suffixWidth)
			}
			result += suffix
		}

		baseLines[i] = result
	}

	return strings.Join(baseLines, "\n")
}
