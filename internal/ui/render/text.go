// Package render provides single-line text helpers for the playlist view.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Sanitize flattens tag text to one line. Line breaks and tabs become
// spaces, other control characters and invalid UTF-8 bytes are dropped.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
		case r == '\n' || r == '\t' || r == '\u00a0':
			b.WriteByte(' ')
		case r == '\r' || unicode.IsControl(r):
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

func needsSanitize(s string) bool {
	for i := range len(s) {
		c := s[i]
		if c < 0x20 || c == 0x7f {
			return true
		}
		if c >= 0x80 {
			// Leave the multi-byte path to the slow loop.
			return true
		}
	}
	return false
}

// Truncate sanitizes s and shortens it to maxWidth display columns.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, Ellipsis)
}

// Pad fills s with spaces up to width display columns.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad returns s at exactly width display columns.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Row puts left and right on one line of width columns. The left part is
// truncated when both do not fit.
func Row(left, right string, width int) string {
	rightWidth := lipgloss.Width(right)
	room := width - rightWidth - 1
	if room < 0 {
		return TruncateAndPad(right, width)
	}
	if lipgloss.Width(left) > room {
		left = Truncate(left, room)
	}
	gap := max(width-lipgloss.Width(left)-rightWidth, 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator creates a horizontal rule of the given width.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}
