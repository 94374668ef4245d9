package orrery

import (
	"math"
	"sort"
)

// spaceBlack is the frame clear color.
var spaceBlack = RGB(0.01, 0.01, 0.03)

// SoftwareRenderer rasterizes the scene on the CPU. Spheres are drawn as
// shaded impostor discs sampling their gradient texture, rings and orbit
// guides as projected polyline loops. Objects are composited back-to-front.
type SoftwareRenderer struct{}

// NewSoftwareRenderer creates a CPU renderer.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{}
}

// Render implements the Renderer interface.
func (r *SoftwareRenderer) Render(target *Pixmap, scene *Scene, camera *Camera) error {
	target.Clear(spaceBlack)

	// Orbit guides sit at the scene floor and are nearly invisible; they
	// never occlude a body, so they are drawn first, unsorted.
	for _, guide := range scene.OrbitGuides {
		r.fillRing(target, camera, guide, guide.Position)
	}

	// Painter's algorithm over the bodies.
	type drawItem struct {
		mesh  *Mesh
		depth float64
	}
	items := make([]drawItem, 0, len(scene.Planets)+1)
	items = append(items, drawItem{mesh: scene.Sun, depth: camera.ViewDepth(scene.Sun.Position)})
	for _, p := range scene.Planets {
		items = append(items, drawItem{mesh: p.Mesh, depth: camera.ViewDepth(p.Mesh.Position)})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].depth > items[j].depth
	})

	light := scene.SunLight
	light.Position = scene.Sun.Position

	for _, item := range items {
		mesh := item.mesh

		// A ring child straddles its planet: the far half is occluded by
		// the body, the near half occludes it.
		for _, child := range mesh.Children {
			if child.Ring != nil {
				r.fillRingHalf(target, camera, child, mesh.Position, item.depth, true)
			}
		}

		r.fillSphere(target, camera, mesh, light, scene.Ambient)

		for _, child := range mesh.Children {
			if child.Ring != nil {
				r.fillRingHalf(target, camera, child, mesh.Position, item.depth, false)
			}
		}
	}

	return nil
}

// fillSphere draws a sphere mesh as a lit impostor disc.
func (r *SoftwareRenderer) fillSphere(target *Pixmap, camera *Camera, mesh *Mesh, light PointLight, ambient AmbientLight) {
	if mesh.Sphere == nil {
		return
	}

	cx, cy, ok := camera.Project(mesh.Position, target.Width(), target.Height())
	if !ok {
		return
	}
	radius := camera.ProjectedRadius(mesh.Position, mesh.Sphere.Radius, target.Height())
	if radius < 0.5 {
		return
	}

	right, up, forward := camera.Basis()
	tex := mesh.Material.Texture

	minX := int(math.Floor(cx - radius))
	maxX := int(math.Ceil(cx + radius))
	minY := int(math.Floor(cy - radius))
	maxY := int(math.Ceil(cy + radius))

	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			dx := (float64(px) + 0.5 - cx) / radius
			dy := (float64(py) + 0.5 - cy) / radius
			d2 := dx*dx + dy*dy
			if d2 > 1 {
				continue
			}

			t := math.Sqrt(d2)
			base := mesh.Material.Color
			if tex != nil {
				base = tex.ColorAt(t)
			}

			if mesh.Material.Emissive {
				target.SetPixel(px, py, base)
				continue
			}

			// Impostor normal in world space: screen-facing hemisphere
			// oriented by the camera basis. Screen y grows downward.
			nz := math.Sqrt(1 - d2)
			normal := right.Mul(dx).Add(up.Mul(-dy)).Add(forward.Mul(-nz))

			toLight := light.Position.Sub(mesh.Position)
			dist := toLight.Length()
			attenuation := clamp01(1 - dist/light.Range)
			diffuse := math.Max(0, normal.Dot(toLight.Normalize())) * light.Intensity * attenuation

			shadeR := ambient.Color.R*ambient.Intensity + light.Color.R*diffuse
			shadeG := ambient.Color.G*ambient.Intensity + light.Color.G*diffuse
			shadeB := ambient.Color.B*ambient.Intensity + light.Color.B*diffuse

			target.SetPixel(px, py, RGBA{
				R: base.R * shadeR,
				G: base.G * shadeG,
				B: base.B * shadeB,
				A: 1,
			})
		}
	}
}

// fillRing draws a full ring mesh centered at origin (world space).
func (r *SoftwareRenderer) fillRing(target *Pixmap, camera *Camera, mesh *Mesh, origin Vec3) {
	r.ringLoops(target, camera, mesh, origin, func(Vec3) bool { return true })
}

// fillRingHalf draws only the ring samples that are behind (farHalf) or in
// front of the given reference depth.
func (r *SoftwareRenderer) fillRingHalf(target *Pixmap, camera *Camera, mesh *Mesh, origin Vec3, refDepth float64, farHalf bool) {
	r.ringLoops(target, camera, mesh, origin, func(world Vec3) bool {
		if farHalf {
			return camera.ViewDepth(world) >= refDepth
		}
		return camera.ViewDepth(world) < refDepth
	})
}

// ringLoops rasterizes a flat annulus as a set of concentric projected
// polyline loops. keep filters individual samples by world position.
func (r *SoftwareRenderer) ringLoops(target *Pixmap, camera *Camera, mesh *Mesh, origin Vec3, keep func(Vec3) bool) {
	ring := mesh.Ring
	if ring == nil {
		return
	}

	color := mesh.Material.Color.WithAlpha(mesh.Material.Opacity)

	// Enough loops that adjacent strokes touch at the ring's projected scale.
	midRadius := (ring.InnerRadius + ring.OuterRadius) / 2
	projMid := camera.ProjectedRadius(origin, midRadius, target.Height())
	if projMid < 0.5 {
		return
	}
	pixelsPerUnit := projMid / midRadius
	loops := int(math.Ceil((ring.OuterRadius-ring.InnerRadius)*pixelsPerUnit)) + 1
	if loops < 2 {
		loops = 2
	}

	// Oversample the angular resolution so projected segments stay short.
	samples := ring.Segments * 4

	for li := 0; li < loops; li++ {
		radius := ring.InnerRadius + (ring.OuterRadius-ring.InnerRadius)*float64(li)/float64(loops-1)

		var prevX, prevY float64
		prevOK := false
		for i := 0; i <= samples; i++ {
			angle := float64(i) / float64(samples) * 2 * math.Pi
			world := origin.Add(Vec3{X: radius * math.Cos(angle), Z: radius * math.Sin(angle)})
			if !keep(world) {
				prevOK = false
				continue
			}

			x, y, ok := camera.Project(world, target.Width(), target.Height())
			if !ok {
				prevOK = false
				continue
			}
			if prevOK {
				drawLine(target, prevX, prevY, x, y, color)
			}
			prevX, prevY = x, y
			prevOK = true
		}
	}
}

// drawLine blends a 1px line between two points using simple DDA stepping.
func drawLine(target *Pixmap, x0, y0, x1, y1 float64, c RGBA) {
	dx := x1 - x0
	dy := y1 - y0
	steps := int(math.Max(math.Abs(dx), math.Abs(dy))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		target.BlendPixel(int(x0+dx*t), int(y0+dy*t), c)
	}
}
