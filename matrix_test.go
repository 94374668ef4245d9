package orrery

import (
	"math"
	"testing"
)

func TestIdentityTransform(t *testing.T) {
	p := V3(1.5, -2, 7)
	out, w := Identity4().TransformPoint(p)
	if !out.Approx(p, 1e-12) {
		t.Errorf("identity transform = %+v, want %+v", out, p)
	}
	if w != 1 {
		t.Errorf("w = %v, want 1", w)
	}
}

func TestMultiplyIdentity(t *testing.T) {
	m := Perspective(math.Pi/3, 4.0/3, 0.1, 1000)
	if got := m.Multiply(Identity4()); got != m {
		t.Errorf("m * I != m")
	}
	if got := Identity4().Multiply(m); got != m {
		t.Errorf("I * m != m")
	}
}

func TestLookAtMapsTargetToAxis(t *testing.T) {
	eye := V3(0, 25, 60)
	view := LookAt(eye, Vec3{}, Vec3{Y: 1})

	// The target lands on the view-space -Z axis at the eye distance.
	out, _ := view.TransformPoint(Vec3{})
	dist := eye.Length()
	if math.Abs(out.X) > 1e-9 || math.Abs(out.Y) > 1e-9 {
		t.Errorf("target maps to (%v, %v), want on -Z axis", out.X, out.Y)
	}
	if math.Abs(out.Z+dist) > 1e-9 {
		t.Errorf("target depth = %v, want %v", out.Z, -dist)
	}

	// The eye maps to the view-space origin.
	origin, _ := view.TransformPoint(eye)
	if !origin.Approx(Vec3{}, 1e-9) {
		t.Errorf("eye maps to %+v, want origin", origin)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	near, far := 0.1, 1000.0
	proj := Perspective(math.Pi/3, 1, near, far)

	tests := []struct {
		name string
		z    float64
		want float64
	}{
		{"near plane", -near, -1},
		{"far plane", -far, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, w := proj.TransformPoint(V3(0, 0, tt.z))
			if w <= 0 {
				t.Fatalf("w = %v, want positive in front of camera", w)
			}
			if math.Abs(out.Z-tt.want) > 1e-9 {
				t.Errorf("NDC z = %v, want %v", out.Z, tt.want)
			}
		})
	}
}

func TestPerspectiveAspectScalesX(t *testing.T) {
	p := V3(1, 1, -10)

	square, _ := Perspective(math.Pi/3, 1, 0.1, 1000).TransformPoint(p)
	wide, _ := Perspective(math.Pi/3, 2, 0.1, 1000).TransformPoint(p)

	if math.Abs(wide.X-square.X/2) > 1e-12 {
		t.Errorf("x at aspect 2 = %v, want %v", wide.X, square.X/2)
	}
	if wide.Y != square.Y {
		t.Errorf("y changed with aspect: %v vs %v", wide.Y, square.Y)
	}
}
