package lights

import "github.com/briancchu/Raycaml/pkg/core"

// AmbientLight contributes uniform environmental illumination, independent of
// surface orientation, view direction, and occlusion.
type AmbientLight struct {
	Intensity core.Vec3
}

// NewAmbientLight creates a new ambient light
func NewAmbientLight(intensity core.Vec3) *AmbientLight {
	return &AmbientLight{Intensity: intensity}
}

// Type returns the light type
func (l *AmbientLight) Type() LightType {
	return LightTypeAmbient
}

// Illuminate returns the ambient reflectance modulated by the light intensity.
// No shadow test, no normal dependency.
func (l *AmbientLight) Illuminate(hit *core.Hit, ray core.Ray, world Occluder) core.Vec3 {
	return hit.Material.Ambient.MultiplyVec(l.Intensity)
}
