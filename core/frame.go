package core

import (
	"github.com/lixenwraith/mole-rush/vmath"
)

// Slot is one fixed target-appearance position in the placed grid
// Slots are immutable once built; the whole set is replaced on re-placement
type Slot struct {
	Index  int
	LocalX float64 // Offset along anchor local X
	LocalZ float64 // Offset along anchor local Z
	World  vmath.Vec3F
}

// RenderState is the full per-frame output handed to rendering adapters
// Renderers only ever read this struct; they never reach back into the core
type RenderState struct {
	// Placement phase
	ReticleVisible bool
	ReticlePose    Pose
	Placed         bool
	Anchor         Pose // Valid only when Placed

	// Target
	TargetVisible bool
	TargetState   TargetState
	TargetPos     vmath.Vec3F
	TargetOrient  vmath.QuatF

	// Grid
	Slots      []vmath.Vec3F
	HoleRadius float64 // World-space hole radius for rim drawing

	// HUD
	Score  int
	Streak int
	Status Status
	Paused bool
}
