package math3d

import (
	"math"
	"testing"
)

const eps = 1e-9

func vecNear(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

func TestVec3Basics(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(-2, 0.5, 4)

	if got := a.Add(b); !vecNear(got, V3(-1, 2.5, 7), eps) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); !vecNear(got, V3(3, 1.5, -1), eps) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Dot(b); math.Abs(got-11) > eps {
		t.Errorf("Dot = %v, want 11", got)
	}
	if got := V3(1, 0, 0).Cross(V3(0, 1, 0)); !vecNear(got, V3(0, 0, 1), eps) {
		t.Errorf("Cross = %v, want (0,0,1)", got)
	}
	if got := V3(3, 4, 0).Normalize(); !vecNear(got, V3(0.6, 0.8, 0), eps) {
		t.Errorf("Normalize = %v", got)
	}
	if got := (Vec3{}).Normalize(); !vecNear(got, Vec3{}, 0) {
		t.Errorf("Normalize zero = %v, want zero", got)
	}
}

func TestMat4Identity(t *testing.T) {
	p := V3(1.5, -2, 7)
	if got := Mat4Identity().TransformPoint(p); !vecNear(got, p, eps) {
		t.Errorf("identity moved point: %v", got)
	}
}

func TestRotationRoundTrip(t *testing.T) {
	// rotate(-θ, rotate(θ, v)) == v within tolerance, for each axis.
	rotations := []struct {
		name string
		mk   func(float64) Mat4
	}{
		{"x", Mat4RotateX},
		{"y", Mat4RotateY},
		{"z", Mat4RotateZ},
	}
	vectors := []Vec3{V3(1, 0, 0), V3(0.3, -1.2, 4.5), V3(-7, 2, 0.001)}
	angles := []float64{0, 0.37, math.Pi / 2, 2.9, -1.4}

	for _, rot := range rotations {
		t.Run(rot.name, func(t *testing.T) {
			for _, v := range vectors {
				for _, angle := range angles {
					got := rot.mk(-angle).TransformPoint(rot.mk(angle).TransformPoint(v))
					if !vecNear(got, v, 1e-5) {
						t.Errorf("round trip angle=%v v=%v got %v", angle, v, got)
					}
				}
			}
		})
	}
}

func TestModelMatrixOrder(t *testing.T) {
	// Scale applies before translation: (1,0,0) with scale 2 and
	// translate (10,0,0) lands at 12, not 22.
	m := ModelMatrix(V3(10, 0, 0), 2, Vec3{})
	if got := m.TransformPoint(V3(1, 0, 0)); !vecNear(got, V3(12, 0, 0), 1e-9) {
		t.Errorf("scale/translate order: got %v, want (12,0,0)", got)
	}

	// Rotation applies after scale, before translation: scaling by 3 then
	// rotating (1,0,0) a quarter turn about Z gives (0,3,0), then +10 X.
	m = ModelMatrix(V3(10, 0, 0), 3, V3(0, 0, math.Pi/2))
	if got := m.TransformPoint(V3(1, 0, 0)); !vecNear(got, V3(10, 3, 0), 1e-9) {
		t.Errorf("rotate position: got %v, want (10,3,0)", got)
	}
}

func TestModelMatrixRotationOrder(t *testing.T) {
	// X then Y then Z must match the explicitly composed matrices.
	rot := V3(0.4, -1.1, 2.2)
	want := Mat4RotateZ(rot.Z).Mul(Mat4RotateY(rot.Y)).Mul(Mat4RotateX(rot.X))
	got := ModelMatrix(Vec3{}, 1, rot)
	p := V3(0.7, -0.2, 1.9)
	if !vecNear(got.TransformPoint(p), want.TransformPoint(p), 1e-9) {
		t.Errorf("rotation composition order differs: %v vs %v",
			got.TransformPoint(p), want.TransformPoint(p))
	}
}

func TestRotateXYZMatchesMatrices(t *testing.T) {
	rot := V3(0.3, 0.9, -0.5)
	p := V3(1.2, -3.4, 0.8)
	want := ModelMatrix(Vec3{}, 1, rot).TransformPoint(p)
	if got := RotateXYZ(p, rot); !vecNear(got, want, 1e-9) {
		t.Errorf("RotateXYZ = %v, matrix path = %v", got, want)
	}
}

func TestTransformPointPerspectiveDivide(t *testing.T) {
	// A matrix with a non-trivial bottom row forces w != 1.
	var m Mat4
	m[0], m[5], m[10] = 1, 1, 1
	m[3] = 0.5 // w = 0.5*x + 1
	m[15] = 1
	got := m.TransformPoint(V3(2, 4, 6))
	if !vecNear(got, V3(1, 2, 3), eps) {
		t.Errorf("perspective divide: got %v, want (1,2,3)", got)
	}
}

func TestMat4OrthoMapsBoxToNDC(t *testing.T) {
	// Screen-style box: y grows downward, near/far symmetric about zero.
	m := Mat4Ortho(0, 800, 600, 0, -1, 1)
	cases := []struct{ in, want Vec3 }{
		{V3(0, 0, 0), V3(-1, 1, 0)},
		{V3(800, 600, 0), V3(1, -1, 0)},
		{V3(400, 300, 0), V3(0, 0, 0)},
	}
	for _, c := range cases {
		if got := m.TransformPoint(c.in); !vecNear(got, c.want, eps) {
			t.Errorf("ortho(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestMat4LookAtViewSpace(t *testing.T) {
	// The eye maps to the view-space origin and the target sits on -Z at
	// eye distance; +X stays the camera's right.
	eye, center := V3(0, 0, 10), V3(0, 0, 0)
	m := Mat4LookAt(eye, center, V3(0, 1, 0))

	if got := m.TransformPoint(eye); !vecNear(got, Vec3{}, eps) {
		t.Errorf("eye maps to %v, want origin", got)
	}
	if got := m.TransformPoint(center); !vecNear(got, V3(0, 0, -10), eps) {
		t.Errorf("target maps to %v, want (0,0,-10)", got)
	}
	if got := m.TransformPoint(V3(1, 0, 10)); !vecNear(got, V3(1, 0, 0), eps) {
		t.Errorf("right offset maps to %v, want (1,0,0)", got)
	}
}

func TestTransformDirIgnoresTranslation(t *testing.T) {
	m := Mat4Translate(100, -50, 25)
	if got := m.TransformDir(V3(0, 1, 0)); !vecNear(got, V3(0, 1, 0), eps) {
		t.Errorf("TransformDir picked up translation: %v", got)
	}
}

func TestColor3(t *testing.T) {
	c := Color3{R: 0.2, G: 0.4, B: 0.6}
	if got := c.Lerp(Color3{R: 1, G: 0, B: 0}, 0.5); math.Abs(got.R-0.6) > eps || math.Abs(got.G-0.2) > eps {
		t.Errorf("Lerp = %v", got)
	}
	if got := (Color3{R: 1.7, G: -0.2, B: 0.5}).Clamp(); got.R != 1 || got.G != 0 || got.B != 0.5 {
		t.Errorf("Clamp = %v", got)
	}
	r, g, b := (Color3{R: 1, G: 0, B: 0.5}).RGBA()
	if r != 255 || g != 0 || b != 127 {
		t.Errorf("RGBA = %d,%d,%d", r, g, b)
	}
}
