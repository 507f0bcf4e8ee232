package constants

import "time"

// Pop Sound Timing
const (
	PopSoundDuration = 90 * time.Millisecond
	PopSoundAttack   = 5 * time.Millisecond
	PopSoundRelease  = 40 * time.Millisecond
	PopSoundFreq     = 520.0
)

// Hit Sound Timing
const (
	HitSoundDuration = 140 * time.Millisecond
	HitSoundAttack   = 2 * time.Millisecond
	HitSoundRelease  = 80 * time.Millisecond
	HitSoundFreq     = 880.0
)

// Miss Sound Timing
const (
	MissSoundDuration = 180 * time.Millisecond
	MissSoundAttack   = 10 * time.Millisecond
	MissSoundRelease  = 120 * time.Millisecond
	MissSoundFreq     = 180.0
)
