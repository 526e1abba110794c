package lights

import (
	"math"

	"github.com/briancchu/Raycaml/pkg/core"
)

// PointLight illuminates from a single position with no distance falloff.
// An occluded hit receives exactly zero contribution.
type PointLight struct {
	Position  core.Vec3
	Intensity core.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(position, intensity core.Vec3) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

// Type returns the light type
func (l *PointLight) Type() LightType {
	return LightTypePoint
}

// Illuminate computes the Phong diffuse and specular terms for the hit, after
// a shadow ray toward the light position. The shadow ray leaves from the
// epsilon-offset hit point so the surface does not shadow itself.
func (l *PointLight) Illuminate(hit *core.Hit, ray core.Ray, world Occluder) core.Vec3 {
	toLight := l.Position.Subtract(hit.Point)
	distance := toLight.Length()
	lightDir := toLight.Normalize()

	shadowRay := core.NewRay(hit.Point, lightDir).Offset(core.Epsilon)
	if world.IntersectAny(shadowRay, distance) {
		return core.Vec3{}
	}

	nDotL := hit.Normal.Dot(lightDir)
	diffuse := hit.Material.Diffuse.Multiply(math.Max(0, nDotL)).MultiplyVec(l.Intensity)

	// Phong highlight: the light direction mirrored about the normal,
	// compared against the view direction
	reflected := hit.Normal.Multiply(2 * nDotL).Subtract(lightDir)
	viewDir := ray.Direction.Negate().Normalize()
	specFactor := math.Pow(math.Max(0, reflected.Dot(viewDir)), hit.Material.Shininess)
	specular := hit.Material.Specular.Multiply(specFactor).MultiplyVec(l.Intensity)

	return diffuse.Add(specular)
}
