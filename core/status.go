package core

// Status is the session-level state surfaced to the host HUD
type Status uint8

const (
	StatusSearching Status = iota
	StatusReadyToPlace
	StatusActive
)

func (s Status) String() string {
	switch s {
	case StatusSearching:
		return "Searching for surface"
	case StatusReadyToPlace:
		return "Tap to place"
	case StatusActive:
		return "Active"
	default:
		return "Unknown"
	}
}
