package orrery

import (
	"math"
	"math/rand"
)

// SphereGeometry describes a tessellated sphere. The software renderer draws
// spheres as shaded impostors, but segment counts are kept so GPU backends
// can tessellate real geometry from the same records.
type SphereGeometry struct {
	Radius         float64
	WidthSegments  int
	HeightSegments int
}

// RingGeometry describes a flat annulus in the XZ plane, centered on its
// mesh origin.
type RingGeometry struct {
	InnerRadius float64
	OuterRadius float64
	Segments    int
}

// Material describes how a mesh surface is colored. A material has either a
// synthesized gradient texture or a flat color; translucent materials carry
// an opacity below 1 and are always rendered double-sided.
type Material struct {
	Texture     *Texture
	Color       RGBA
	Opacity     float64
	Transparent bool
	DoubleSided bool
	// Emissive materials ignore scene lighting (the sun lights itself).
	Emissive bool
}

// Mesh is one renderable object: geometry, material, and a transform.
// Children move with their parent (a planet's ring travels with the planet).
type Mesh struct {
	Sphere   *SphereGeometry
	Ring     *RingGeometry
	Material Material
	Position Vec3
	// RotationY is the only rotation the scene animates (the sun's spin).
	RotationY float64
	Children  []*Mesh
}

// PointLight is an omnidirectional light with distance attenuation,
// attached to the sun.
type PointLight struct {
	Color     RGBA
	Intensity float64
	Range     float64
	Position  Vec3
}

// AmbientLight is a uniform light term so unlit faces remain visible.
type AmbientLight struct {
	Color     RGBA
	Intensity float64
}

// Planet is the runtime entry for one orbiting body. It owns its mesh,
// copies the descriptor's orbit parameters, and fixes a random phase offset
// for the session at construction.
type Planet struct {
	Descriptor  BodyDescriptor
	Mesh        *Mesh
	OrbitRadius float64
	Speed       float64
	Phase       float64
}

// Scene is the static scene graph: built once, positions mutated in place by
// the per-frame update. All graphics resources are allocated here and held
// for the component's lifetime.
type Scene struct {
	Sun         *Mesh
	SunLight    PointLight
	Ambient     AmbientLight
	Planets     []*Planet
	OrbitGuides []*Mesh
}

// BuildScene constructs the scene graph from the Planets table. rng is used
// only for each planet's starting phase; geometry is fully deterministic.
// A nil rng leaves every phase at zero.
func BuildScene(rng *rand.Rand) *Scene {
	s := &Scene{
		Sun: &Mesh{
			Sphere: &SphereGeometry{
				Radius:         SunRadius,
				WidthSegments:  sunSegments,
				HeightSegments: sunSegments,
			},
			Material: Material{
				Texture:  RadialTexture(sunInnerColor, sunOuterColor, SunTextureSize),
				Opacity:  1,
				Emissive: true,
			},
		},
		SunLight: PointLight{
			Color:     RGB(1.0, 0.85, 0.6),
			Intensity: 2,
			Range:     100,
		},
		Ambient: AmbientLight{
			Color:     White,
			Intensity: 1,
		},
	}

	for _, d := range Planets {
		mesh := &Mesh{
			Sphere: &SphereGeometry{
				Radius:         d.Size,
				WidthSegments:  planetSegments,
				HeightSegments: planetSegments,
			},
			Material: Material{
				Texture: RadialTexture(d.Inner, d.Outer, DefaultTextureSize),
				Opacity: 1,
			},
		}

		if d.HasRing {
			// The ring lies in the orbital plane and is parented to the
			// planet mesh so it travels with it.
			mesh.Children = append(mesh.Children, &Mesh{
				Ring: &RingGeometry{
					InnerRadius: d.Size * ringInnerFactor,
					OuterRadius: d.Size * ringOuterFactor,
					Segments:    ringSegments,
				},
				Material: Material{
					Color:       d.Inner,
					Opacity:     ringOpacity,
					Transparent: true,
					DoubleSided: true,
				},
			})
		}

		phase := 0.0
		if rng != nil {
			phase = rng.Float64() * 2 * math.Pi
		}

		s.Planets = append(s.Planets, &Planet{
			Descriptor:  d,
			Mesh:        mesh,
			OrbitRadius: d.OrbitRadius,
			Speed:       d.Speed,
			Phase:       phase,
		})

		s.OrbitGuides = append(s.OrbitGuides, &Mesh{
			Ring: &RingGeometry{
				InnerRadius: d.OrbitRadius - orbitGuideHalfWidth,
				OuterRadius: d.OrbitRadius + orbitGuideHalfWidth,
				Segments:    orbitGuideSegments,
			},
			Material: Material{
				Color:       RGB(0.7, 0.75, 0.85),
				Opacity:     orbitGuideOpacity,
				Transparent: true,
				DoubleSided: true,
			},
		})
	}

	return s
}
