package orrery

import "math"

// OrbitPosition computes a body's planar position at time t (milliseconds
// since an arbitrary monotonic epoch). Orbits are circles in the XZ plane
// centered on the origin; the period is 2π / (speed * orbitSpeedScale).
func OrbitPosition(t, orbitRadius, speed, phase float64) Vec3 {
	angle := t*speed*orbitSpeedScale + phase
	return Vec3{
		X: orbitRadius * math.Cos(angle),
		Y: 0,
		Z: orbitRadius * math.Sin(angle),
	}
}

// Advance moves every planet to its position at time t and steps the sun's
// self-rotation. It is pure with respect to t except for the sun's spin,
// which accumulates a fixed increment per call (see sunSpinIncrement).
// Within a frame, Advance strictly precedes the draw call.
func (s *Scene) Advance(t float64) {
	for _, p := range s.Planets {
		p.Mesh.Position = OrbitPosition(t, p.OrbitRadius, p.Speed, p.Phase)
	}
	s.Sun.RotationY += sunSpinIncrement
}
