package integrator

import (
	"github.com/briancchu/Raycaml/pkg/core"
	"github.com/briancchu/Raycaml/pkg/lights"
	"github.com/briancchu/Raycaml/pkg/scene"
)

// WhittedIntegrator resolves a ray to a color: Phong direct lighting at the
// closest hit plus perfect mirror reflection up to a depth bound. Rays that
// escape the scene, including reflection rays, take the background color.
type WhittedIntegrator struct {
	scene  *scene.Scene
	lights []lights.Light
}

// NewWhittedIntegrator creates an integrator for a scene and its lights
func NewWhittedIntegrator(s *scene.Scene, lightList []lights.Light) *WhittedIntegrator {
	return &WhittedIntegrator{scene: s, lights: lightList}
}

// RayColor computes the color seen along a ray with at most depth mirror
// bounces. The recursion is unrolled into a loop carrying the running product
// of mirror attenuations, so a generous depth bound cannot grow the stack.
func (wi *WhittedIntegrator) RayColor(ray core.Ray, depth int) core.Vec3 {
	color := core.Vec3{}
	weight := core.NewVec3(1, 1, 1)

	for {
		hit, isHit := wi.scene.Intersect(ray)
		if !isHit {
			return color.Add(weight.MultiplyVec(wi.scene.Background))
		}

		direct := core.Vec3{}
		for _, light := range wi.lights {
			direct = direct.Add(light.Illuminate(hit, ray, wi.scene))
		}
		color = color.Add(weight.MultiplyVec(direct))

		// A zero mirror color would attenuate the bounce to nothing, so
		// skip the cast entirely
		if depth <= 0 || !hit.Material.Reflective() {
			return color
		}

		reflected := ray.Direction.Reflect(hit.Normal)
		ray = core.NewRay(hit.Point, reflected).Offset(core.Epsilon)
		weight = weight.MultiplyVec(hit.Material.Mirror)
		depth--
	}
}
