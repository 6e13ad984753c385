package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the glyphs for the current style.
type Icons struct {
	Playing    string
	BadgeLeft  string
	BadgeRight string
}

var (
	nerdIcons = Icons{
		Playing:    "", // nf-fa-play
		BadgeLeft:  "", // nf-ple-left_half_circle_thick
		BadgeRight: "", // nf-ple-right_half_circle_thick
	}

	unicodeIcons = Icons{
		Playing:    "▶",
		BadgeLeft:  "▐",
		BadgeRight: "▌",
	}

	noneIcons = Icons{
		Playing:    ">",
		BadgeLeft:  "",
		BadgeRight: "",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// Playing returns the now-playing marker.
func Playing() string {
	return current.Playing
}

// BadgeCaps returns the glyphs closing a badge on the left and right.
// Both are empty for the "none" style, where the badge is a plain block.
func BadgeCaps() (left, right string) {
	return current.BadgeLeft, current.BadgeRight
}
