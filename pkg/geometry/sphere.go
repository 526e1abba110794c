package geometry

import (
	"fmt"
	"math"

	"github.com/briancchu/Raycaml/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material *core.Material
}

// NewSphere creates a new sphere, rejecting degenerate geometry
func NewSphere(center core.Vec3, radius float64, material *core.Material) (*Sphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius must be positive, got %g", radius)
	}
	if material == nil {
		return nil, fmt.Errorf("sphere requires a material")
	}
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}, nil
}

// Intersect tests if a ray intersects with the sphere
func (s *Sphere) Intersect(ray core.Ray) (*core.Hit, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c

	// No intersection if discriminant is negative
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first, fall back to the farther one
	root := (-halfB - sqrtD) / a
	if root <= core.Epsilon {
		root = (-halfB + sqrtD) / a
		if root <= core.Epsilon {
			// Both roots behind the origin or under the epsilon cutoff
			return nil, false
		}
	}

	point := ray.At(root)
	return &core.Hit{
		T:        root,
		Point:    point,
		Normal:   point.Subtract(s.Center).Multiply(1.0 / s.Radius),
		Material: s.Material,
	}, true
}
