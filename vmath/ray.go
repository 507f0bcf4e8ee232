package vmath

import (
	"math"
)

// Ray is a half-line in world space with normalized direction
type Ray struct {
	Origin Vec3F
	Dir    Vec3F
}

// ScreenRay builds a world-space ray through a normalized screen point
//
// nx/ny are device-independent coordinates in [-1,1], ny positive up.
// The camera convention is right-handed: -Z forward, +X right, +Y up.
// fovY is the full vertical field of view in radians
func ScreenRay(origin Vec3F, orient QuatF, nx, ny, fovY, aspect float64) Ray {
	tanHalf := math.Tan(fovY * 0.5)
	local := Vec3F{
		X: nx * tanHalf * aspect,
		Y: ny * tanHalf,
		Z: -1,
	}
	return Ray{
		Origin: origin,
		Dir:    V3FNormalize(QRotate(orient, local)),
	}
}

// RaySphere intersects a ray with a sphere
// Returns the nearest non-negative ray parameter and whether it hit
func RaySphere(r Ray, center Vec3F, radius float64) (float64, bool) {
	oc := V3FSub(r.Origin, center)
	b := V3FDot(oc, r.Dir)
	c := V3FMagSq(oc) - radius*radius

	disc := b*b - c
	if disc < 0 {
		return 0, false
	}

	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		// Origin inside the sphere, take the far intersection
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// ProjectPoint maps a world point to normalized screen coordinates
// Inverse of ScreenRay for points in front of the camera
// Returns ok=false when the point is at or behind the camera plane
func ProjectPoint(origin Vec3F, orient QuatF, fovY, aspect float64, p Vec3F) (nx, ny float64, ok bool) {
	local := QRotate(QConjugate(orient), V3FSub(p, origin))
	if local.Z >= 0 {
		return 0, 0, false
	}

	tanHalf := math.Tan(fovY * 0.5)
	inv := -1.0 / local.Z
	nx = local.X * inv / (tanHalf * aspect)
	ny = local.Y * inv / tanHalf
	return nx, ny, true
}
