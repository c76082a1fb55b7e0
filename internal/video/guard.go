// Package video implements the anti-skip guard over playback progress
// callbacks.
package video

// SeekTolerance is the largest forward jump, in seconds, accepted between two
// progress callbacks before the position is clamped back.
const SeekTolerance = 2.0

// Guard tracks the last known-good playback position for one viewing session.
// Callbacks may arrive at arbitrary intervals, repeated or out of order; every
// observation re-clamps independently, so the guard is idempotent under
// redelivery.
type Guard struct {
	duration  float64
	tolerance float64
	position  float64
}

// NewGuard starts a guard for a video of the given duration in seconds.
func NewGuard(duration float64) *Guard {
	return &Guard{duration: duration, tolerance: SeekTolerance}
}

// Observe processes one progress callback and returns the allowed playback
// position. A jump further than the tolerance ahead of the last known-good
// position is rejected and the player must seek back to the returned value.
func (g *Guard) Observe(current float64) float64 {
	if current > g.position+g.tolerance {
		return g.position
	}
	if current > g.position {
		g.position = current
	}
	return g.position
}

// Position returns the last known-good playback position.
func (g *Guard) Position() float64 {
	return g.position
}

// Completed reports whether honest playback has reached the end of the video.
func (g *Guard) Completed() bool {
	return g.duration > 0 && g.position >= g.duration
}
