package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/mole-rush/constants"
	"github.com/lixenwraith/mole-rush/core"
	"github.com/lixenwraith/mole-rush/vmath"
)

// Session is the frame-driven gameplay orchestrator
//
// Two top-level modes: Unplaced (tracking a surface estimate, waiting for
// the committing tap) and Placed (grid anchored, pop cycle running).
// Everything the session owns is main-loop exclusive: the host calls
// OnFrame once per display refresh and OnTap/Reset/SetPaused between
// frames, never concurrently
type Session struct {
	cfg     Config
	machine *TargetMachine
	score   ScoreTracker
	clock   PausableClock

	placed bool
	anchor core.Pose
	slots  []core.Slot

	// Cached world positions handed out through RenderState
	slotPositions []vmath.Vec3F

	// Most recent anchor estimate from the host, refreshed every frame
	estimate    core.Pose
	hasEstimate bool

	// Pause requests latch here and apply at the next frame boundary,
	// so a transition never lands mid-frame
	wantPaused bool

	// Game time as of the start of the current frame; taps resolve
	// against this, never against a timestamp of their own
	frameTime time.Time
}

// NewSession validates the config and builds an idle, unplaced session
// A nil rng falls back to a fixed-seed generator
func NewSession(cfg Config, rng RandSource) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}
	return &Session{
		cfg:     cfg,
		machine: NewTargetMachine(cfg, rng),
	}, nil
}

// OnFrame advances the session to the host-supplied timestamp and
// returns the complete render state for this frame
func (s *Session) OnFrame(now time.Time, estimate *core.Pose) core.RenderState {
	// Apply any pause toggle at the frame boundary
	if s.wantPaused && !s.clock.IsPaused() {
		s.clock.Pause(now)
	} else if !s.wantPaused && s.clock.IsPaused() {
		s.clock.Resume(now)
	}
	s.frameTime = s.clock.GameTime(now)

	s.hasEstimate = estimate != nil
	if estimate != nil {
		s.estimate = *estimate
	}

	rs := core.RenderState{
		Paused: s.clock.IsPaused(),
		Score:  s.score.Score(),
		Streak: s.score.Streak(),
		Status: s.Status(),
	}

	if !s.placed {
		rs.ReticleVisible = s.hasEstimate
		rs.ReticlePose = s.estimate
		return rs
	}

	// While paused game time is frozen, so Advance is a pure no-op and
	// resuming picks the timers up exactly where they stopped
	snap, timedOut := s.machine.Advance(s.frameTime)
	if timedOut {
		s.score.OnTimeout()
		rs.Streak = 0
	}

	rs.Placed = true
	rs.Anchor = s.anchor
	rs.TargetVisible = snap.Visible
	rs.TargetState = snap.State
	rs.TargetPos = snap.WorldPos
	rs.TargetOrient = s.anchor.Orientation
	rs.Slots = s.slotPositions
	rs.HoleRadius = s.cfg.HoleRadius
	return rs
}

// OnTap routes a normalized screen tap. Before placement it commits the
// anchor; after placement it attempts hit resolution against the live
// target. Taps while paused or in any non-Up state are silently dropped
func (s *Session) OnTap(nx, ny float64, cam *core.CameraTransform) {
	// A tap before the first frame has no game time to resolve against
	// or anchor the pop schedule to
	if s.frameTime.IsZero() {
		return
	}
	if s.clock.IsPaused() {
		return
	}

	if !s.placed {
		s.tryPlace(cam)
		return
	}

	if cam == nil {
		return
	}
	snap := s.machine.Snapshot(s.frameTime)
	if !ResolveHit(nx, ny, *cam, snap, s.cfg.TargetRadius) {
		return
	}
	// ForceRetreat only succeeds from Up, so one pop cycle can score
	// at most once no matter how many taps land
	if s.machine.ForceRetreat(s.frameTime) {
		s.score.OnHit()
	}
}

// Reset returns to Unplaced from any state: grid discarded, target
// forced Down, counters zeroed. The pause flag is left as-is
func (s *Session) Reset() {
	s.placed = false
	s.anchor = core.Pose{}
	s.slots = nil
	s.slotPositions = nil
	s.machine.Reset()
	s.score.Reset()
}

// SetPaused requests a pause state; it takes effect on the next frame
func (s *Session) SetPaused(paused bool) {
	s.wantPaused = paused
}

// Score returns the current score counter
func (s *Session) Score() int {
	return s.score.Score()
}

// Streak returns the count of consecutive hits since the last timeout
func (s *Session) Streak() int {
	return s.score.Streak()
}

// Status reports the HUD status for the current mode
func (s *Session) Status() core.Status {
	if s.placed {
		return core.StatusActive
	}
	if s.hasEstimate {
		return core.StatusReadyToPlace
	}
	return core.StatusSearching
}

// Placed reports whether the grid is anchored
func (s *Session) Placed() bool {
	return s.placed
}

// Anchor returns the frozen anchor pose; meaningful only once placed
func (s *Session) Anchor() core.Pose {
	return s.anchor
}

// Slots returns the current slot set. Callers must treat it as read-only
func (s *Session) Slots() []core.Slot {
	return s.slots
}

// TargetState returns the machine's current lifecycle state
func (s *Session) TargetState() core.TargetState {
	return s.machine.State()
}

// ActiveSlot returns the active slot index, core.NoSlot while Down
func (s *Session) ActiveSlot() int {
	return s.machine.ActiveSlot()
}

// tryPlace commits placement from the current estimate, or from a
// deterministic fallback in front of the camera. With neither estimate
// nor camera available placement silently does not proceed
func (s *Session) tryPlace(cam *core.CameraTransform) {
	var anchor core.Pose
	switch {
	case s.hasEstimate:
		anchor = s.estimate
	case cam != nil:
		fwd := cam.Pose.Forward()
		fwd.Y = 0
		if vmath.V3FMagSq(fwd) < 1e-12 {
			// Camera looking straight up or down, no usable heading
			return
		}
		fwd = vmath.V3FNormalize(fwd)

		pos := vmath.V3FAdd(cam.Pose.Position, vmath.V3FScale(fwd, constants.FallbackDistance))
		pos.Y = cam.Pose.Position.Y - constants.FallbackDrop

		yaw := math.Atan2(-fwd.X, -fwd.Z)
		anchor = core.Pose{Position: pos, Orientation: vmath.QFromYaw(yaw)}
	default:
		return
	}
	s.place(anchor)
}

// place freezes the anchor, rebuilds the grid and schedules the first pop
func (s *Session) place(anchor core.Pose) {
	s.anchor = anchor
	s.slots = BuildGrid(anchor, s.cfg.GridRows, s.cfg.GridCols, s.cfg.GridSpacing)

	s.slotPositions = make([]vmath.Vec3F, len(s.slots))
	for i, slot := range s.slots {
		s.slotPositions[i] = slot.World
	}

	s.machine.SetGrid(s.slots, anchor.Up())
	s.machine.Schedule(s.frameTime)
	s.placed = true
}
