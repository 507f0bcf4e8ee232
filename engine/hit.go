package engine

import (
	"github.com/lixenwraith/mole-rush/core"
	"github.com/lixenwraith/mole-rush/vmath"
)

// ResolveHit decides whether a tap at normalized screen coordinates
// intersects the target's bounding sphere
//
// Pure: reports only, never mutates. Taps while the target is not Up are
// stale input and resolve false with no side effects anywhere
func ResolveHit(nx, ny float64, cam core.CameraTransform, snap core.TargetSnapshot, radius float64) bool {
	if snap.State != core.TargetUp {
		return false
	}
	ray := vmath.ScreenRay(cam.Pose.Position, cam.Pose.Orientation, nx, ny, cam.FOVY, cam.Aspect)
	_, hit := vmath.RaySphere(ray, snap.WorldPos, radius)
	return hit
}
