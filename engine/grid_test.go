package engine

import (
	"math"
	"testing"

	"github.com/lixenwraith/mole-rush/core"
	"github.com/lixenwraith/mole-rush/vmath"
)

func posApproxEq(a, b vmath.Vec3F) bool {
	const tol = 1e-9
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol && math.Abs(a.Z-b.Z) < tol
}

// TestBuildGridIdentity3x3 lays a 3x3 grid at the identity pose and
// checks every slot lands on the {-0.38, 0, 0.38}² lattice
func TestBuildGridIdentity3x3(t *testing.T) {
	anchor := core.Pose{Orientation: vmath.QIdentity()}
	slots := BuildGrid(anchor, 3, 3, 0.38)

	if len(slots) != 9 {
		t.Fatalf("Expected 9 slots, got %d", len(slots))
	}

	offsets := []float64{-0.38, 0, 0.38}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			slot := slots[r*3+c]
			want := vmath.Vec3F{X: offsets[c], Z: offsets[r]}
			if !posApproxEq(slot.World, want) {
				t.Errorf("Slot (%d,%d): expected %v, got %v", r, c, want, slot.World)
			}
			if slot.Index != r*3+c {
				t.Errorf("Slot (%d,%d): expected index %d, got %d", r, c, r*3+c, slot.Index)
			}
		}
	}
}

// TestBuildGridSingleSlot covers the rows=cols=1 boundary
func TestBuildGridSingleSlot(t *testing.T) {
	anchor := core.Pose{
		Position:    vmath.Vec3F{X: 1, Y: 2, Z: 3},
		Orientation: vmath.QIdentity(),
	}
	slots := BuildGrid(anchor, 1, 1, 0.38)

	if len(slots) != 1 {
		t.Fatalf("Expected 1 slot, got %d", len(slots))
	}
	if slots[0].Index != 0 {
		t.Errorf("Expected index 0, got %d", slots[0].Index)
	}
	if !posApproxEq(slots[0].World, anchor.Position) {
		t.Errorf("Expected single slot at anchor position %v, got %v", anchor.Position, slots[0].World)
	}
}

// TestBuildGridTranslated verifies the anchor translation carries through
func TestBuildGridTranslated(t *testing.T) {
	anchor := core.Pose{
		Position:    vmath.Vec3F{X: 10, Y: -1, Z: 5},
		Orientation: vmath.QIdentity(),
	}
	slots := BuildGrid(anchor, 2, 2, 1.0)

	want := vmath.Vec3F{X: 9.5, Y: -1, Z: 4.5}
	if !posApproxEq(slots[0].World, want) {
		t.Errorf("Expected %v, got %v", want, slots[0].World)
	}
}

// TestBuildGridRotated rotates the anchor a quarter turn and verifies
// local X maps onto world -Z
func TestBuildGridRotated(t *testing.T) {
	anchor := core.Pose{Orientation: vmath.QFromYaw(math.Pi / 2)}
	slots := BuildGrid(anchor, 1, 3, 0.5)

	// Local offsets are (-0.5,0), (0,0), (0.5,0) along X.
	// Yaw +90° sends +X to -Z
	wants := []vmath.Vec3F{{Z: 0.5}, {}, {Z: -0.5}}
	for i, want := range wants {
		if !posApproxEq(slots[i].World, want) {
			t.Errorf("Slot %d: expected %v, got %v", i, want, slots[i].World)
		}
	}
}

// TestBuildGridDeterministic verifies two builds from the same pose are
// identical slot for slot
func TestBuildGridDeterministic(t *testing.T) {
	anchor := core.Pose{
		Position:    vmath.Vec3F{X: 0.2, Y: 0.1, Z: -0.7},
		Orientation: vmath.QFromYaw(0.3),
	}
	a := BuildGrid(anchor, 4, 5, 0.38)
	b := BuildGrid(anchor, 4, 5, 0.38)

	if len(a) != 20 || len(b) != 20 {
		t.Fatalf("Expected 20 slots each, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Slot %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
