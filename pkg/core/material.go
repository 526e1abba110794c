package core

import "fmt"

// Material bundles the per-surface reflectance coefficients used by the
// shading model. Materials are created once, shared by pointer across any
// number of objects, and never mutated afterwards.
type Material struct {
	Diffuse   Vec3    // diffuse reflectance per channel
	Specular  Vec3    // specular highlight color per channel
	Shininess float64 // specular exponent, higher = tighter highlight
	Mirror    Vec3    // perfect-reflection attenuation per channel
	Ambient   Vec3    // ambient reflectance per channel
}

// NewMaterial creates a material, rejecting a negative specular exponent.
func NewMaterial(diffuse, specular Vec3, shininess float64, mirror, ambient Vec3) (*Material, error) {
	if shininess < 0 {
		return nil, fmt.Errorf("material shininess must be >= 0, got %g", shininess)
	}
	return &Material{
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
		Mirror:    mirror,
		Ambient:   ambient,
	}, nil
}

// Reflective reports whether the material contributes a mirror bounce.
func (m *Material) Reflective() bool {
	return m.Mirror != (Vec3{})
}
