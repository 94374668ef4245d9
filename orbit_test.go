package orrery

import (
	"math"
	"testing"
)

func TestOrbitPositionStaysOnCircle(t *testing.T) {
	times := []float64{0, 16.7, 500, 12345, 1e6, -250}

	for _, d := range Planets {
		for _, tm := range times {
			pos := OrbitPosition(tm, d.OrbitRadius, d.Speed, 0.3)

			if pos.Y != 0 {
				t.Errorf("%s at t=%v: Y = %v, want 0", d.Name, tm, pos.Y)
			}
			r := math.Hypot(pos.X, pos.Z)
			if math.Abs(r-d.OrbitRadius) > 1e-9 {
				t.Errorf("%s at t=%v: radius = %v, want %v", d.Name, tm, r, d.OrbitRadius)
			}
		}
	}
}

func TestOrbitPositionAtEpoch(t *testing.T) {
	// With zero phase the body starts on the +X axis.
	pos := OrbitPosition(0, 16, 1.0, 0)
	want := Vec3{X: 16}
	if !pos.Approx(want, 1e-9) {
		t.Errorf("OrbitPosition(0) = %+v, want %+v", pos, want)
	}
}

func TestOrbitPositionPhaseOffset(t *testing.T) {
	pos := OrbitPosition(0, 10, 1.0, math.Pi/2)
	want := Vec3{Z: 10}
	if !pos.Approx(want, 1e-9) {
		t.Errorf("phase π/2 at t=0 = %+v, want %+v", pos, want)
	}
}

func TestOrbitPositionPeriodicity(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
	}{
		{"earth rate", 1.0},
		{"fast", 4.15},
		{"slow", 0.006},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period := 2 * math.Pi / (tt.speed * 0.0005)
			p0 := OrbitPosition(100, 20, tt.speed, 1.1)
			p1 := OrbitPosition(100+period, 20, tt.speed, 1.1)
			if !p0.Approx(p1, 1e-9) {
				t.Errorf("position after one period %+v, want %+v", p1, p0)
			}
		})
	}
}

func TestOrbitSpeedOrdering(t *testing.T) {
	// Inner bodies sweep angle faster than outer ones.
	for i := 1; i < len(Planets); i++ {
		if Planets[i].Speed >= Planets[i-1].Speed {
			t.Errorf("%s speed %v not below %s speed %v",
				Planets[i].Name, Planets[i].Speed, Planets[i-1].Name, Planets[i-1].Speed)
		}
		if Planets[i].OrbitRadius <= Planets[i-1].OrbitRadius {
			t.Errorf("%s orbit %v not beyond %s orbit %v",
				Planets[i].Name, Planets[i].OrbitRadius, Planets[i-1].Name, Planets[i-1].OrbitRadius)
		}
	}
}

func TestAdvanceMovesPlanets(t *testing.T) {
	s := BuildScene(nil)

	s.Advance(1000)
	for i, p := range s.Planets {
		want := OrbitPosition(1000, p.OrbitRadius, p.Speed, p.Phase)
		if !p.Mesh.Position.Approx(want, 1e-9) {
			t.Errorf("planet %d position %+v, want %+v", i, p.Mesh.Position, want)
		}
	}
}

func TestAdvanceIsTimeParametricForPlanets(t *testing.T) {
	// Planet positions depend only on t, not on how many updates ran.
	a := BuildScene(nil)
	b := BuildScene(nil)

	a.Advance(5000)
	for _, tm := range []float64{100, 2000, 3500, 5000} {
		b.Advance(tm)
	}

	for i := range a.Planets {
		if !a.Planets[i].Mesh.Position.Approx(b.Planets[i].Mesh.Position, 1e-9) {
			t.Errorf("planet %d diverged: %+v vs %+v",
				i, a.Planets[i].Mesh.Position, b.Planets[i].Mesh.Position)
		}
	}
}

func TestAdvanceStepsSunPerCall(t *testing.T) {
	// The sun's spin accumulates per update call, independent of t.
	s := BuildScene(nil)

	s.Advance(0)
	s.Advance(0)
	s.Advance(99999)

	want := 3 * sunSpinIncrement
	if math.Abs(s.Sun.RotationY-want) > 1e-12 {
		t.Errorf("sun rotation after 3 updates = %v, want %v", s.Sun.RotationY, want)
	}
}
