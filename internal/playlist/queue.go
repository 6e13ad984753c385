package playlist

import "slices"

// CurrentIndex returns the index of the currently playing track (-1 if none).
func (p *Playlist) CurrentIndex() int {
	return p.current
}

// Current returns the currently playing track, or nil if none.
func (p *Playlist) Current() *Track {
	return p.Track(p.current)
}

// IsCurrent reports whether row is the now-playing row.
func (p *Playlist) IsCurrent(row int) bool {
	return row >= 0 && row == p.current
}

// SetCurrent marks row as playing. A queued row leaves the queue when it
// starts playing. Returns the track at that position, or nil if invalid.
func (p *Playlist) SetCurrent(row int) *Track {
	if !p.valid(row) {
		return nil
	}
	p.current = row
	p.Dequeue(row)
	return p.Current()
}

// Next advances playback: the head of the play-next queue wins over the
// following row. Returns nil when playback should stop, either because
// the current row carries the stop-after flag or nothing follows.
func (p *Playlist) Next() *Track {
	if p.current >= 0 && p.current == p.stopAfter {
		p.stopAfter = -1
		return nil
	}
	if len(p.queue) > 0 {
		return p.SetCurrent(p.queue[0])
	}
	if p.current+1 >= len(p.tracks) {
		return nil
	}
	return p.SetCurrent(p.current + 1)
}

// QueuePosition returns the zero-based rank of row in the play-next queue,
// or -1 if the row is not queued.
func (p *Playlist) QueuePosition(row int) int {
	return slices.Index(p.queue, row)
}

// Queued returns the queued rows in play order.
func (p *Playlist) Queued() []int {
	return slices.Clone(p.queue)
}

// Enqueue appends rows to the play-next queue, skipping rows already queued.
func (p *Playlist) Enqueue(rows ...int) {
	for _, row := range rows {
		if p.valid(row) && !slices.Contains(p.queue, row) {
			p.queue = append(p.queue, row)
		}
	}
}

// Dequeue removes a row from the play-next queue.
// Returns false if it was not queued.
func (p *Playlist) Dequeue(row int) bool {
	i := slices.Index(p.queue, row)
	if i < 0 {
		return false
	}
	p.queue = slices.Delete(p.queue, i, i+1)
	return true
}

// ToggleQueued queues an unqueued row or dequeues a queued one.
// Returns true if the row is queued afterwards.
func (p *Playlist) ToggleQueued(row int) bool {
	if p.Dequeue(row) {
		return false
	}
	p.Enqueue(row)
	return p.QueuePosition(row) >= 0
}

// ClearQueue empties the play-next queue.
func (p *Playlist) ClearQueue() {
	p.queue = nil
}

// StopAfter reports whether playback halts after row finishes.
func (p *Playlist) StopAfter(row int) bool {
	return row >= 0 && row == p.stopAfter
}

// StopAfterIndex returns the stop-after row (-1 if unset).
func (p *Playlist) StopAfterIndex() int {
	return p.stopAfter
}

// SetStopAfter sets the stop-after row; -1 clears it.
func (p *Playlist) SetStopAfter(row int) {
	if !p.valid(row) {
		p.stopAfter = -1
		return
	}
	p.stopAfter = row
}

// ToggleStopAfter flips the stop-after flag on row.
func (p *Playlist) ToggleStopAfter(row int) {
	if p.stopAfter == row {
		p.stopAfter = -1
		return
	}
	p.SetStopAfter(row)
}
