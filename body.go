package orrery

// Sun parameters. The sun sits at the origin, spins slowly in place, and
// carries the scene's point light.
const (
	SunRadius   = 5.0
	sunSegments = 32

	// sunSpinIncrement is added to the sun's Y rotation on every update
	// call. It is intentionally per-call rather than per-elapsed-time, so
	// the spin rate follows the display cadence; planet orbits do not.
	sunSpinIncrement = 0.002
)

// Planet geometry parameters.
const (
	planetSegments = 24

	// Ring proportions relative to the owning body's size.
	ringInnerFactor = 1.4
	ringOuterFactor = 2.2
	ringSegments    = 64
	ringOpacity     = 0.6

	// Orbit guides are near-degenerate flat rings along each orbit path.
	orbitGuideHalfWidth = 0.01
	orbitGuideSegments  = 64
	orbitGuideOpacity   = 0.08
)

// orbitSpeedScale converts elapsed milliseconds times a descriptor's Speed
// constant into an orbit angle in radians.
const orbitSpeedScale = 0.0005

// BodyDescriptor is the static description of one orbiting body. The table
// below is the source of truth for planet construction and is never mutated
// at runtime.
type BodyDescriptor struct {
	Name        string
	Inner       RGBA    // surface gradient color at the center
	Outer       RGBA    // surface gradient color at the edge
	OrbitRadius float64 // planar distance from the origin
	Size        float64 // sphere radius
	Speed       float64 // angular speed constant, scaled by orbitSpeedScale
	HasRing     bool
}

// Planets lists the eight bodies in orbit order. Colors are decorative
// approximations, not albedo data.
var Planets = [8]BodyDescriptor{
	{Name: "mercury", Inner: RGB(0.78, 0.75, 0.70), Outer: RGB(0.42, 0.40, 0.38), OrbitRadius: 9, Size: 0.7, Speed: 4.15},
	{Name: "venus", Inner: RGB(0.93, 0.80, 0.54), Outer: RGB(0.63, 0.48, 0.28), OrbitRadius: 12, Size: 1.1, Speed: 1.62},
	{Name: "earth", Inner: RGB(0.35, 0.62, 0.93), Outer: RGB(0.10, 0.24, 0.52), OrbitRadius: 16, Size: 1.2, Speed: 1.0},
	{Name: "mars", Inner: RGB(0.89, 0.48, 0.29), Outer: RGB(0.48, 0.20, 0.12), OrbitRadius: 20, Size: 0.9, Speed: 0.53},
	{Name: "jupiter", Inner: RGB(0.85, 0.72, 0.55), Outer: RGB(0.55, 0.42, 0.28), OrbitRadius: 27, Size: 3.2, Speed: 0.084},
	{Name: "saturn", Inner: RGB(0.90, 0.82, 0.61), Outer: RGB(0.60, 0.52, 0.34), OrbitRadius: 35, Size: 2.8, Speed: 0.034, HasRing: true},
	{Name: "uranus", Inner: RGB(0.60, 0.85, 0.89), Outer: RGB(0.27, 0.51, 0.58), OrbitRadius: 42, Size: 1.8, Speed: 0.012},
	{Name: "neptune", Inner: RGB(0.33, 0.50, 0.92), Outer: RGB(0.13, 0.22, 0.55), OrbitRadius: 48, Size: 1.7, Speed: 0.006},
}

// Sun surface gradient: yellow core fading to orange.
var (
	sunInnerColor = RGB(1.0, 0.95, 0.45)
	sunOuterColor = RGB(0.98, 0.55, 0.12)
)
