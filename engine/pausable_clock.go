package engine

import (
	"time"
)

// PausableClock converts host frame timestamps into pausable game time
//
// The host supplies monotonic wall-clock timestamps; game time is that
// timestamp minus the accumulated pause duration. While paused, game time
// is frozen at the pause point, so timers resume where they left off
// rather than resetting.
//
// Main-loop exclusive: driven only by Session, no internal locking
type PausableClock struct {
	paused      bool
	pausedAt    time.Time     // Host time when current pause began
	totalPaused time.Duration // Cumulative pause duration
}

// GameTime maps a host timestamp to game time
func (pc *PausableClock) GameTime(now time.Time) time.Time {
	if pc.paused {
		return pc.pausedAt.Add(-pc.totalPaused)
	}
	return now.Add(-pc.totalPaused)
}

// Pause freezes game time at the given host timestamp
func (pc *PausableClock) Pause(now time.Time) {
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pausedAt = now
}

// Resume continues game time from the frozen point
func (pc *PausableClock) Resume(now time.Time) {
	if !pc.paused {
		return
	}
	pc.totalPaused += now.Sub(pc.pausedAt)
	pc.paused = false
	pc.pausedAt = time.Time{}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.paused
}

// TotalPaused returns cumulative pause time up to the last Resume
func (pc *PausableClock) TotalPaused() time.Duration {
	return pc.totalPaused
}
