// Package tooltip shows cell help text in a small box near the pointer.
package tooltip

import (
	"image"

	"github.com/llehouerou/tracklist/internal/ui/popup"
	"github.com/llehouerou/tracklist/internal/ui/styles"
)

// Kind is the flavour of help being shown.
type Kind int

const (
	KindToolTip Kind = iota
	KindWhatsThis
)

// WhatsThisTitle heads the what's-this box.
const WhatsThisTitle = "What's this?"

// Model holds at most one visible help box.
type Model struct {
	kind    Kind
	pos     image.Point
	text    string
	visible bool
}

// New returns a hidden tooltip.
func New() *Model {
	return &Model{}
}

// ShowToolTip shows text in a plain box below pos.
func (m *Model) ShowToolTip(pos image.Point, text string) {
	m.show(KindToolTip, pos, text)
}

// ShowWhatsThis shows text in a titled box below pos.
func (m *Model) ShowWhatsThis(pos image.Point, text string) {
	m.show(KindWhatsThis, pos, text)
}

func (m *Model) show(kind Kind, pos image.Point, text string) {
	m.kind = kind
	m.pos = pos
	m.text = text
	m.visible = true
}

// Hide dismisses the box.
func (m *Model) Hide() {
	m.visible = false
}

// Visible reports whether a box is shown.
func (m *Model) Visible() bool {
	return m.visible
}

// Kind returns the flavour of the last shown box.
func (m *Model) Kind() Kind {
	return m.kind
}

// Text returns the text of the last shown box.
func (m *Model) Text() string {
	return m.text
}

// Pos returns the anchor of the last shown box.
func (m *Model) Pos() image.Point {
	return m.pos
}

// Render returns the box, at most maxWidth columns wide.
func (m *Model) Render(maxWidth int) string {
	box := popup.NewBox("", m.text)
	box.MaxWidth = maxWidth
	if m.kind == KindWhatsThis {
		box.Title = WhatsThisTitle
		box.Style.BorderColor = styles.T().BorderFocus
	}
	return box.Render()
}

// Overlay draws the box over base, a view of width x height cells. The box
// goes below the anchor and flips above it when there is no room.
func (m *Model) Overlay(base string, width, height int) string {
	if !m.visible || width <= 0 || height <= 0 {
		return base
	}
	box := m.Render(width)
	size := popup.Size(box)

	at := image.Pt(m.pos.X, m.pos.Y+1)
	if at.Y+size.Y > height && m.pos.Y-size.Y >= 0 {
		at.Y = m.pos.Y - size.Y
	}
	return popup.Compose(base, popup.Place(box, at, width, height), width, height)
}
