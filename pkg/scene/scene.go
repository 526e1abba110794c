package scene

import (
	"github.com/briancchu/Raycaml/pkg/core"
	"github.com/briancchu/Raycaml/pkg/geometry"
	"github.com/briancchu/Raycaml/pkg/lights"
)

// Scene contains the renderable objects and the background color returned
// for rays that escape them. Lights and camera are not part of the scene;
// they are supplied alongside it at render time.
type Scene struct {
	Objects    []geometry.Object
	Background core.Vec3
}

// NewScene creates an empty scene with the given background color
func NewScene(background core.Vec3) *Scene {
	return &Scene{
		Objects:    make([]geometry.Object, 0),
		Background: background,
	}
}

// Add appends objects to the scene
func (s *Scene) Add(objects ...geometry.Object) {
	s.Objects = append(s.Objects, objects...)
}

// Intersect resolves the ray against every object and returns the hit with
// the smallest parametric distance. On an exact tie the first-encountered
// object wins, keeping results deterministic regardless of float noise.
func (s *Scene) Intersect(ray core.Ray) (*core.Hit, bool) {
	var closest *core.Hit
	for _, object := range s.Objects {
		hit, isHit := object.Intersect(ray)
		if !isHit {
			continue
		}
		if closest == nil || hit.T < closest.T {
			closest = hit
		}
	}
	return closest, closest != nil
}

// IntersectAny reports whether any object blocks the ray strictly before
// parametric distance maxT, returning on the first blocker found. Shadow
// tests use this with maxT set to the distance to the light.
func (s *Scene) IntersectAny(ray core.Ray, maxT float64) bool {
	for _, object := range s.Objects {
		if hit, isHit := object.Intersect(ray); isHit && hit.T < maxT {
			return true
		}
	}
	return false
}

// Setup bundles a scene with the camera and lights that render it, plus the
// preferred image width and recursion bound when the source specified them
// (zero means unspecified, callers fall back to their defaults).
type Setup struct {
	Scene    *Scene
	Camera   *geometry.Camera
	Lights   []lights.Light
	Width    int
	MaxDepth int
}
