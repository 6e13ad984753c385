package delegate

import "image"

// HelpKind is the type of a help request.
type HelpKind int

const (
	HelpToolTip HelpKind = iota
	HelpQueryWhatsThis
	HelpWhatsThis
)

// HelpRequest is a help interaction over a cell at a screen position.
type HelpRequest struct {
	Kind HelpKind
	Pos  image.Point
}

// HelpHost displays help text for the view.
type HelpHost interface {
	ShowToolTip(pos image.Point, text string)
	ShowWhatsThis(pos image.Point, text string)
}

// HelpEvent shows the cell's formatted text as help. It reports false
// when there is nothing to show, leaving the host to its default.
// A what's-this query is accepted without showing anything.
func (d Delegate) HelpEvent(req HelpRequest, host HelpHost, ref CellRef) bool {
	if host == nil {
		return false
	}
	text := d.DisplayText(ref.Value())
	if text == "" {
		return false
	}

	switch req.Kind {
	case HelpToolTip:
		host.ShowToolTip(req.Pos, text)
		return true
	case HelpQueryWhatsThis:
		return true
	case HelpWhatsThis:
		host.ShowWhatsThis(req.Pos, text)
		return true
	}
	return false
}
