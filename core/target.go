package core

import (
	"github.com/lixenwraith/mole-rush/vmath"
)

// TargetState is the pop-cycle lifecycle state of the single target
type TargetState uint8

const (
	TargetDown TargetState = iota
	TargetRising
	TargetUp
	TargetRetreating
)

// String returns the state name for logs and HUD
func (s TargetState) String() string {
	switch s {
	case TargetDown:
		return "Down"
	case TargetRising:
		return "Rising"
	case TargetUp:
		return "Up"
	case TargetRetreating:
		return "Retreating"
	default:
		return "Unknown"
	}
}

// NoSlot marks an absent active slot index (valid only while Down)
const NoSlot = -1

// TargetSnapshot is the read-only per-frame view of the target
// Produced by the state machine, consumed by hit resolution and rendering
type TargetSnapshot struct {
	State     TargetState
	SlotIndex int // NoSlot while Down
	Visible   bool
	WorldPos  vmath.Vec3F // Center of the target's bounding sphere
	Height    float64     // Vertical offset from the surface, hidden..exposed
}
