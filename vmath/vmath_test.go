package vmath

import (
	"math"
	"testing"
)

func approxEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func v3ApproxEq(a, b Vec3F) bool {
	return approxEq(a.X, b.X) && approxEq(a.Y, b.Y) && approxEq(a.Z, b.Z)
}

// TestEaseOutCubicEndpoints verifies the curve hits its endpoints exactly
func TestEaseOutCubicEndpoints(t *testing.T) {
	if got := EaseOutCubic(0); got != 0 {
		t.Errorf("Expected EaseOutCubic(0) = 0, got %f", got)
	}
	if got := EaseOutCubic(1); got != 1 {
		t.Errorf("Expected EaseOutCubic(1) = 1, got %f", got)
	}
}

// TestEaseOutCubicMonotonicAndBounded verifies the interpolation contract:
// strictly increasing on (0,1) and never outside [0,1]
func TestEaseOutCubicMonotonicAndBounded(t *testing.T) {
	prev := EaseOutCubic(0)
	for i := 1; i <= 100; i++ {
		v := EaseOutCubic(float64(i) / 100)
		if v < prev {
			t.Fatalf("Curve not monotonic at t=%f: %f < %f", float64(i)/100, v, prev)
		}
		if v < 0 || v > 1 {
			t.Fatalf("Curve escaped [0,1] at t=%f: %f", float64(i)/100, v)
		}
		prev = v
	}

	// Out-of-range input clamps, never overshoots
	if got := EaseOutCubic(1.5); got != 1 {
		t.Errorf("Expected clamp at t>1, got %f", got)
	}
	if got := EaseOutCubic(-0.5); got != 0 {
		t.Errorf("Expected clamp at t<0, got %f", got)
	}
}

// TestEaseOutCubicMidpoint pins the curve shape: 1-(1-t)^3
func TestEaseOutCubicMidpoint(t *testing.T) {
	if got, want := EaseOutCubic(0.5), 0.875; !approxEq(got, want) {
		t.Errorf("Expected EaseOutCubic(0.5) = %f, got %f", want, got)
	}
}

// TestQRotateYaw rotates the forward vector a quarter turn around +Y
func TestQRotateYaw(t *testing.T) {
	q := QFromYaw(math.Pi / 2)
	fwd := Vec3F{Z: -1}

	got := QRotate(q, fwd)
	want := Vec3F{X: -1}
	if !v3ApproxEq(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

// TestQRotateIdentity verifies identity rotation is a no-op
func TestQRotateIdentity(t *testing.T) {
	v := Vec3F{1.5, -2.25, 0.38}
	if got := QRotate(QIdentity(), v); !v3ApproxEq(got, v) {
		t.Errorf("Expected %v, got %v", v, got)
	}
}

// TestQConjugateInverts verifies q⁻¹ undoes q
func TestQConjugateInverts(t *testing.T) {
	q := QFromAxisAngle(Vec3F{1, 2, 3}, 0.7)
	v := Vec3F{0.3, -1.1, 2.4}

	back := QRotate(QConjugate(q), QRotate(q, v))
	if !v3ApproxEq(back, v) {
		t.Errorf("Expected %v, got %v", v, back)
	}
}

// TestQMulCompose verifies composed yaws rotate like their sum
func TestQMulCompose(t *testing.T) {
	q := QMul(QFromYaw(0.4), QFromYaw(0.3))

	got := QRotate(q, Vec3F{Z: -1})
	want := QRotate(QFromYaw(0.7), Vec3F{Z: -1})
	if !v3ApproxEq(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

// TestQNormalize verifies scaling leaves the rotation unchanged and the
// zero quaternion maps to identity
func TestQNormalize(t *testing.T) {
	q := QFromAxisAngle(Vec3F{1, 2, 3}, 0.7)
	scaled := QuatF{q.W * 3, q.X * 3, q.Y * 3, q.Z * 3}
	v := Vec3F{0.3, -1.1, 2.4}

	got := QRotate(QNormalize(scaled), v)
	want := QRotate(q, v)
	if !v3ApproxEq(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	if QNormalize(QuatF{}) != QIdentity() {
		t.Error("Expected identity for zero quaternion")
	}
}

// TestV3FDist pins a 3-4-5 triangle and the zero case
func TestV3FDist(t *testing.T) {
	if got := V3FDist(Vec3F{1, 2, 3}, Vec3F{4, 6, 3}); !approxEq(got, 5) {
		t.Errorf("Expected distance 5, got %f", got)
	}
	if got := V3FDist(Vec3F{1, 2, 3}, Vec3F{1, 2, 3}); got != 0 {
		t.Errorf("Expected zero distance, got %f", got)
	}
}

// TestRaySphereHit fires a ray straight at a sphere center
func TestRaySphereHit(t *testing.T) {
	r := Ray{Origin: Vec3F{}, Dir: Vec3F{Z: -1}}
	tHit, ok := RaySphere(r, Vec3F{Z: -5}, 1)
	if !ok {
		t.Fatal("Expected hit, got miss")
	}
	if !approxEq(tHit, 4) {
		t.Errorf("Expected t = 4, got %f", tHit)
	}
}

// TestRaySphereMiss fires a ray past the sphere
func TestRaySphereMiss(t *testing.T) {
	r := Ray{Origin: Vec3F{}, Dir: Vec3F{Z: -1}}
	if _, ok := RaySphere(r, Vec3F{X: 3, Z: -5}, 1); ok {
		t.Error("Expected miss, got hit")
	}
}

// TestRaySphereBehind verifies spheres behind the origin do not hit
func TestRaySphereBehind(t *testing.T) {
	r := Ray{Origin: Vec3F{}, Dir: Vec3F{Z: -1}}
	if _, ok := RaySphere(r, Vec3F{Z: 5}, 1); ok {
		t.Error("Expected miss for sphere behind ray origin")
	}
}

// TestRaySphereInside verifies a ray starting inside a sphere still hits
func TestRaySphereInside(t *testing.T) {
	r := Ray{Origin: Vec3F{}, Dir: Vec3F{Z: -1}}
	tHit, ok := RaySphere(r, Vec3F{Z: -0.5}, 2)
	if !ok {
		t.Fatal("Expected hit from inside sphere")
	}
	if tHit < 0 {
		t.Errorf("Expected non-negative t, got %f", tHit)
	}
}

// TestScreenRayCenter verifies the center of the screen maps to camera forward
func TestScreenRayCenter(t *testing.T) {
	orient := QFromYaw(math.Pi / 4)
	r := ScreenRay(Vec3F{Y: 1.5}, orient, 0, 0, math.Pi/3, 16.0/9.0)

	want := V3FNormalize(QRotate(orient, Vec3F{Z: -1}))
	if !v3ApproxEq(r.Dir, want) {
		t.Errorf("Expected %v, got %v", want, r.Dir)
	}
	if !v3ApproxEq(r.Origin, Vec3F{Y: 1.5}) {
		t.Errorf("Expected origin preserved, got %v", r.Origin)
	}
}

// TestProjectPointRoundTrip projects a point and casts a ray back through it
func TestProjectPointRoundTrip(t *testing.T) {
	origin := Vec3F{X: 0.2, Y: 1.4, Z: 0.1}
	orient := QFromAxisAngle(Vec3F{1, 0, 0}, -math.Pi/2) // Looking straight down
	fovY, aspect := math.Pi/3, 1.6

	p := Vec3F{X: 0.4, Y: 0, Z: 0.3}
	nx, ny, ok := ProjectPoint(origin, orient, fovY, aspect, p)
	if !ok {
		t.Fatal("Expected point in front of camera")
	}

	ray := ScreenRay(origin, orient, nx, ny, fovY, aspect)
	// The ray must pass through p
	d := V3FSub(p, ray.Origin)
	cross := V3FCross(d, ray.Dir)
	if V3FMag(cross) > 1e-6 {
		t.Errorf("Ray does not pass through projected point, cross magnitude %g", V3FMag(cross))
	}
}

// TestProjectPointBehind verifies points behind the camera report not ok
func TestProjectPointBehind(t *testing.T) {
	if _, _, ok := ProjectPoint(Vec3F{}, QIdentity(), math.Pi/3, 1, Vec3F{Z: 2}); ok {
		t.Error("Expected ok=false for point behind camera")
	}
}

// TestFastRandDeterminism verifies identical seeds yield identical sequences
func TestFastRandDeterminism(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("Sequences diverged at step %d", i)
		}
	}
}

// TestFastRandIntnBounds verifies Intn stays in [0,n)
func TestFastRandIntnBounds(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 1000; i++ {
		v := r.Intn(9)
		if v < 0 || v >= 9 {
			t.Fatalf("Intn(9) out of range: %d", v)
		}
	}
	if got := r.Intn(0); got != 0 {
		t.Errorf("Expected Intn(0) = 0, got %d", got)
	}
}

// TestFastRandZeroSeed verifies zero seed does not lock the generator
func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 && r.Next() == 0 {
		t.Error("Generator stuck at zero")
	}
}

// TestV3FNormalize covers the zero-vector guard
func TestV3FNormalize(t *testing.T) {
	if got := V3FNormalize(Vec3F{}); got != (Vec3F{}) {
		t.Errorf("Expected zero vector, got %v", got)
	}
	n := V3FNormalize(Vec3F{3, 4, 0})
	if !approxEq(V3FMag(n), 1) {
		t.Errorf("Expected unit magnitude, got %f", V3FMag(n))
	}
}
