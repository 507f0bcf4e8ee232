package vmath

import (
	"math"
)

// QuatF is a unit quaternion representing a world-space orientation
type QuatF struct {
	W, X, Y, Z float64
}

// QIdentity returns the identity orientation
func QIdentity() QuatF {
	return QuatF{W: 1}
}

// QFromAxisAngle builds a rotation of angle radians around axis
// Axis does not need to be normalized
func QFromAxisAngle(axis Vec3F, angle float64) QuatF {
	n := V3FNormalize(axis)
	half := angle * 0.5
	s := math.Sin(half)
	return QuatF{
		W: math.Cos(half),
		X: n.X * s,
		Y: n.Y * s,
		Z: n.Z * s,
	}
}

// QFromYaw builds a rotation of yaw radians around the world up axis (+Y)
func QFromYaw(yaw float64) QuatF {
	return QFromAxisAngle(Vec3F{Y: 1}, yaw)
}

// QMul composes two rotations: applying QMul(a, b) rotates by b, then a
func QMul(a, b QuatF) QuatF {
	return QuatF{
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
	}
}

// QConjugate returns the inverse rotation for unit quaternions
func QConjugate(q QuatF) QuatF {
	return QuatF{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// QNormalize renormalizes a quaternion drifted by repeated composition
func QNormalize(q QuatF) QuatF {
	mag := math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if mag == 0 {
		return QIdentity()
	}
	inv := 1.0 / mag
	return QuatF{q.W * inv, q.X * inv, q.Y * inv, q.Z * inv}
}

// QRotate rotates vector v by quaternion q
// Uses the expanded sandwich product q*v*q⁻¹ without building temporaries
func QRotate(q QuatF, v Vec3F) Vec3F {
	u := Vec3F{q.X, q.Y, q.Z}
	s := q.W

	uv := V3FCross(u, v)
	uuv := V3FCross(u, uv)

	// v + 2*(s*uv + uuv)
	return V3FAdd(v, V3FScale(V3FAdd(V3FScale(uv, s), uuv), 2))
}
