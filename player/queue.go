package player

import "previewfm/blueprint"

// Queue is the ordered list of playable tracks plus a cursor. It is replaced
// wholesale whenever a new source is selected, never merged.
type Queue struct {
	Tracks       []blueprint.Track `json:"tracks"`
	CurrentIndex int               `json:"current_index"`
}

// Current returns the track under the cursor, or nil if the queue is empty.
func (q *Queue) Current() *blueprint.Track {
	if q == nil || len(q.Tracks) == 0 || q.CurrentIndex < 0 || q.CurrentIndex >= len(q.Tracks) {
		return nil
	}
	return &q.Tracks[q.CurrentIndex]
}

// Len returns the total number of tracks in the queue.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.Tracks)
}

// IsEmpty returns true if the queue has no tracks.
func (q *Queue) IsEmpty() bool {
	return q.Len() == 0
}

// Replace swaps the whole queue for tracks and resets the cursor.
func (q *Queue) Replace(tracks []blueprint.Track) {
	q.Tracks = tracks
	q.CurrentIndex = 0
}

// Advance moves the cursor by delta, wrapping around both ends, and returns
// the new index. Advancing an empty queue returns -1.
func (q *Queue) Advance(delta int) int {
	if q.IsEmpty() {
		return -1
	}
	length := len(q.Tracks)
	q.CurrentIndex = ((q.CurrentIndex+delta)%length + length) % length
	return q.CurrentIndex
}
