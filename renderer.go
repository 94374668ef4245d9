package orrery

// Renderer is the interface for drawing one frame of the scene to a pixmap.
type Renderer interface {
	// Render draws the scene as seen by the camera into target.
	// Returns an error if the rendering operation fails.
	Render(target *Pixmap, scene *Scene, camera *Camera) error
}
