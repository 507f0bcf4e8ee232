package engine

import (
	"github.com/lixenwraith/mole-rush/core"
	"github.com/lixenwraith/mole-rush/vmath"
)

// BuildGrid lays out rows×cols slots centered on the anchor pose
//
// Pure and deterministic: slot (r,c) sits at local offset
// ((c-(cols-1)/2)·spacing, (r-(rows-1)/2)·spacing) on the anchor's X/Z
// plane, rotated and translated into world space. Row-major order.
// Grid dimensions are validated by Config before this is ever called
func BuildGrid(anchor core.Pose, rows, cols int, spacing float64) []core.Slot {
	slots := make([]core.Slot, 0, rows*cols)

	halfC := float64(cols-1) / 2
	halfR := float64(rows-1) / 2

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			lx := (float64(c) - halfC) * spacing
			lz := (float64(r) - halfR) * spacing

			world := vmath.V3FAdd(anchor.Position,
				vmath.QRotate(anchor.Orientation, vmath.Vec3F{X: lx, Z: lz}))

			slots = append(slots, core.Slot{
				Index:  r*cols + c,
				LocalX: lx,
				LocalZ: lz,
				World:  world,
			})
		}
	}
	return slots
}
