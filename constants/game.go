package constants

import "time"

// Grid Layout
const (
	// DefaultGridRows is the number of slot rows laid out on the surface
	DefaultGridRows = 3

	// DefaultGridCols is the number of slot columns laid out on the surface
	DefaultGridCols = 3

	// DefaultGridSpacing is the center-to-center slot distance in meters
	DefaultGridSpacing = 0.38

	// DefaultHoleRadius is the visual hole radius in meters
	DefaultHoleRadius = 0.12

	// DefaultTargetRadius is the target's bounding sphere radius used for
	// tap hit resolution, slightly larger than the hole for forgiving input
	DefaultTargetRadius = 0.14
)

// Target Vertical Travel
const (
	// TargetHiddenDepth is the target's vertical offset while fully retracted
	TargetHiddenDepth = -0.18

	// TargetExposedHeight is the target's vertical offset while fully up
	TargetExposedHeight = 0.16
)

// Pop Cycle Timing
const (
	// PopRiseDuration is how long the target takes to emerge
	PopRiseDuration = 180 * time.Millisecond

	// UpDuration is how long the target stays exposed before a timeout miss
	UpDuration = 900 * time.Millisecond

	// RetreatHitDuration is the retract time after a resolved hit
	RetreatHitDuration = 140 * time.Millisecond

	// RetreatMissDuration is the retract time after an unresolved timeout
	RetreatMissDuration = 160 * time.Millisecond

	// PopIntervalMin is the shortest idle gap between pop cycles
	PopIntervalMin = 700 * time.Millisecond

	// PopIntervalMax is the longest idle gap between pop cycles
	PopIntervalMax = 1400 * time.Millisecond
)

// Placement Fallback
// Used when the host has no surface estimate at the moment of placement
const (
	// FallbackDistance is how far in front of the camera the grid anchors
	FallbackDistance = 1.2

	// FallbackDrop is how far below the camera the fallback surface sits
	FallbackDrop = 0.4
)
