package orrery

import "math"

// Default camera placement: above and behind the sun, looking at the origin.
const (
	cameraFOVDegrees = 60.0
	cameraNear       = 0.1
	cameraFar        = 1000.0
)

var cameraPosition = Vec3{X: 0, Y: 25, Z: 60}

// Camera is a fixed perspective camera. Everything except the aspect ratio
// is immutable after construction; resize events update the aspect and
// refresh the cached projection.
type Camera struct {
	FOV      float64 // vertical field of view, radians
	Near     float64
	Far      float64
	Position Vec3
	Target   Vec3

	aspect   float64
	view     Mat4
	proj     Mat4
	viewProj Mat4
}

// NewCamera creates the backdrop camera with the given aspect ratio.
func NewCamera(aspect float64) *Camera {
	c := &Camera{
		FOV:      cameraFOVDegrees * math.Pi / 180,
		Near:     cameraNear,
		Far:      cameraFar,
		Position: cameraPosition,
		Target:   Vec3{},
		aspect:   aspect,
	}
	c.view = LookAt(c.Position, c.Target, Vec3{Y: 1})
	c.refreshProjection()
	return c
}

// Aspect returns the current aspect ratio.
func (c *Camera) Aspect() float64 {
	return c.aspect
}

// SetAspect updates the aspect ratio and refreshes the projection matrix.
func (c *Camera) SetAspect(aspect float64) {
	if aspect <= 0 || aspect == c.aspect {
		return
	}
	c.aspect = aspect
	c.refreshProjection()
}

func (c *Camera) refreshProjection() {
	c.proj = Perspective(c.FOV, c.aspect, c.Near, c.Far)
	c.viewProj = c.proj.Multiply(c.view)
}

// Basis returns the camera's right, up, and forward unit vectors in world
// space. The software renderer uses them to orient sphere impostor normals.
func (c *Camera) Basis() (right, up, forward Vec3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(Vec3{Y: 1}).Normalize()
	up = right.Cross(forward)
	return right, up, forward
}

// ViewDepth returns the distance along the camera's forward axis to a world
// point. Used for painter's-algorithm ordering.
func (c *Camera) ViewDepth(world Vec3) float64 {
	forward := c.Target.Sub(c.Position).Normalize()
	return world.Sub(c.Position).Dot(forward)
}

// Project maps a world point to pixel coordinates on a surface of the given
// size. ok is false when the point is behind the near plane.
func (c *Camera) Project(world Vec3, width, height int) (x, y float64, ok bool) {
	ndc, w := c.viewProj.TransformPoint(world)
	if w <= c.Near {
		return 0, 0, false
	}
	x = (ndc.X + 1) / 2 * float64(width)
	y = (1 - ndc.Y) / 2 * float64(height)
	return x, y, true
}

// ProjectedRadius returns the on-screen radius in pixels of a sphere of the
// given world radius centered at world.
func (c *Camera) ProjectedRadius(world Vec3, radius float64, height int) float64 {
	depth := c.ViewDepth(world)
	if depth <= c.Near {
		return 0
	}
	focal := float64(height) / 2 / math.Tan(c.FOV/2)
	return radius * focal / depth
}
