package engine

import (
	"time"

	"github.com/lixenwraith/mole-rush/core"
	"github.com/lixenwraith/mole-rush/vmath"
)

// RandSource supplies bounded random integers for slot selection and
// pop scheduling. *vmath.FastRand satisfies it; tests inject scripted
// sequences to assert exact outcomes
type RandSource interface {
	Intn(n int) int
}

// TargetMachine drives the single target through its pop cycle:
// Down → Rising → Up → Retreating → Down
//
// All timing is wall-clock game time supplied by the caller, never frame
// counts. Automatic transitions use phase-boundary times as the next
// phase's start, so a late frame cascades through every elapsed phase and
// self-heals; calling Advance twice with the same timestamp is a no-op
// the second time.
//
// Main-loop exclusive, owned by Session
type TargetMachine struct {
	cfg Config
	rng RandSource

	state      core.TargetState
	slot       int // Active slot index, core.NoSlot while Down
	phaseStart time.Time
	phaseDur   time.Duration

	nextPopAt time.Time
	scheduled bool // nextPopAt is valid; only meaningful while Down

	slots []core.Slot
	up    vmath.Vec3F // Anchor up axis, vertical travel direction
}

// NewTargetMachine creates the machine in the Down state with no grid
func NewTargetMachine(cfg Config, rng RandSource) *TargetMachine {
	return &TargetMachine{
		cfg:  cfg,
		rng:  rng,
		slot: core.NoSlot,
		up:   vmath.Vec3F{Y: 1},
	}
}

// SetGrid installs a freshly built slot set and the anchor's up axis
// Replaces any previous grid wholesale; old slots never leak through
func (m *TargetMachine) SetGrid(slots []core.Slot, up vmath.Vec3F) {
	m.slots = slots
	m.up = up
	m.state = core.TargetDown
	m.slot = core.NoSlot
	m.scheduled = false
}

// Reset forces Down with no grid and no schedule
func (m *TargetMachine) Reset() {
	m.slots = nil
	m.state = core.TargetDown
	m.slot = core.NoSlot
	m.scheduled = false
}

// Schedule sets the next pop to a uniform random interval after now
func (m *TargetMachine) Schedule(now time.Time) {
	span := int((m.cfg.PopIntervalMax-m.cfg.PopIntervalMin)/time.Millisecond) + 1
	jitter := time.Duration(m.rng.Intn(span)) * time.Millisecond
	m.nextPopAt = now.Add(m.cfg.PopIntervalMin + jitter)
	m.scheduled = true
}

// Advance processes all transitions due at the given game time and
// returns the resulting snapshot. timedOut reports that at least one
// Up phase expired without a hit since the previous call
func (m *TargetMachine) Advance(now time.Time) (snap core.TargetSnapshot, timedOut bool) {
loop:
	for {
		switch m.state {
		case core.TargetDown:
			if len(m.slots) == 0 || !m.scheduled || now.Before(m.nextPopAt) {
				break loop
			}
			// Uniform selection over all slots; consecutive repeats allowed
			m.slot = m.rng.Intn(len(m.slots))
			m.state = core.TargetRising
			m.phaseStart = m.nextPopAt
			m.phaseDur = m.cfg.RiseDuration
			m.scheduled = false

		case core.TargetRising:
			end := m.phaseStart.Add(m.phaseDur)
			if now.Before(end) {
				break loop
			}
			m.state = core.TargetUp
			m.phaseStart = end
			m.phaseDur = m.cfg.UpDuration

		case core.TargetUp:
			end := m.phaseStart.Add(m.phaseDur)
			if now.Before(end) {
				break loop
			}
			// Timeout miss path
			m.state = core.TargetRetreating
			m.phaseStart = end
			m.phaseDur = m.cfg.RetreatMissDuration
			timedOut = true

		case core.TargetRetreating:
			end := m.phaseStart.Add(m.phaseDur)
			if now.Before(end) {
				break loop
			}
			m.state = core.TargetDown
			m.slot = core.NoSlot
			m.Schedule(end)
		}
	}
	return m.Snapshot(now), timedOut
}

// ForceRetreat begins the hit-path retreat. Returns false unless the
// target is Up: the state transition is the double-resolution guard
func (m *TargetMachine) ForceRetreat(now time.Time) bool {
	if m.state != core.TargetUp {
		return false
	}
	m.state = core.TargetRetreating
	m.phaseStart = now
	m.phaseDur = m.cfg.RetreatHitDuration
	return true
}

// State returns the current lifecycle state
func (m *TargetMachine) State() core.TargetState {
	return m.state
}

// ActiveSlot returns the active slot index, core.NoSlot while Down
func (m *TargetMachine) ActiveSlot() int {
	return m.slot
}

// NextPopAt returns the scheduled pop time; valid only while Down
func (m *TargetMachine) NextPopAt() (time.Time, bool) {
	return m.nextPopAt, m.scheduled && m.state == core.TargetDown
}

// Snapshot computes the read-only view at the given game time without
// performing any transitions
func (m *TargetMachine) Snapshot(now time.Time) core.TargetSnapshot {
	snap := core.TargetSnapshot{
		State:     m.state,
		SlotIndex: m.slot,
	}
	if m.state == core.TargetDown {
		return snap
	}

	var h float64
	switch m.state {
	case core.TargetRising:
		t := m.progress(now)
		h = vmath.Lerp(m.cfg.HiddenDepth, m.cfg.ExposedHeight, vmath.EaseOutCubic(t))
	case core.TargetUp:
		h = m.cfg.ExposedHeight
	case core.TargetRetreating:
		t := m.progress(now)
		h = vmath.Lerp(m.cfg.ExposedHeight, m.cfg.HiddenDepth, vmath.EaseOutCubic(t))
	}

	snap.Visible = true
	snap.Height = h
	snap.WorldPos = vmath.V3FAdd(m.slots[m.slot].World, vmath.V3FScale(m.up, h))
	return snap
}

// progress returns phase completion clamped to [0,1]
func (m *TargetMachine) progress(now time.Time) float64 {
	if m.phaseDur <= 0 {
		return 1
	}
	return vmath.Clamp01(float64(now.Sub(m.phaseStart)) / float64(m.phaseDur))
}
