package core

import (
	"github.com/lixenwraith/mole-rush/vmath"
)

// Pose is a world-space position and orientation
// The grid anchor pose is frozen at placement and immutable for the session
type Pose struct {
	Position    vmath.Vec3F
	Orientation vmath.QuatF
}

// Up returns the pose's local +Y axis in world space
func (p Pose) Up() vmath.Vec3F {
	return vmath.QRotate(p.Orientation, vmath.Vec3F{Y: 1})
}

// Forward returns the pose's local -Z axis in world space
func (p Pose) Forward() vmath.Vec3F {
	return vmath.QRotate(p.Orientation, vmath.Vec3F{Z: -1})
}

// CameraTransform describes the viewing camera for input hit resolution
// Supplied by the host with each tap; the core never tracks the camera itself
type CameraTransform struct {
	Pose   Pose
	FOVY   float64 // Full vertical field of view, radians
	Aspect float64 // Width / height
}
