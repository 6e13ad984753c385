// Package ui holds what the playlist view and its popups share: layout
// constants and size bookkeeping.
package ui

import "image"

const (
	// ScrollMargin is the number of rows kept visible around the cursor.
	ScrollMargin = 3

	// HeaderHeight is the column titles line plus the separator.
	HeaderHeight = 2
)

// Base stores a component's size in cells. Embed it in a model:
//
//	type Model struct {
//	    ui.Base
//	    cursor cursor.Grid
//	    list   *playlist.Playlist
//	}
type Base struct {
	width, height int
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the component dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// Bounds is the component area with its origin at 0,0.
func (b Base) Bounds() image.Rectangle {
	return image.Rect(0, 0, max(b.width, 0), max(b.height, 0))
}

// Hidden reports whether there is no room to draw anything.
func (b Base) Hidden() bool {
	return b.Bounds().Empty()
}
