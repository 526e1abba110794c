package geometry

import (
	"fmt"
	"math"

	"github.com/briancchu/Raycaml/pkg/core"
)

// parallelEpsilon bounds the plane-equation denominator below which a ray
// counts as parallel to the triangle's plane.
const parallelEpsilon = 1e-8

// Triangle represents a single flat-shaded triangle defined by three vertices.
// The face normal follows the vertex winding: counter-clockwise vertices seen
// from a point produce a normal toward that point.
type Triangle struct {
	V0, V1, V2 core.Vec3
	Material   *core.Material
	normal     core.Vec3 // Cached unit normal from the vertex winding
}

// NewTriangle creates a new triangle from three vertices, rejecting
// degenerate (collinear) geometry
func NewTriangle(v0, v1, v2 core.Vec3, material *core.Material) (*Triangle, error) {
	if material == nil {
		return nil, fmt.Errorf("triangle requires a material")
	}

	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)
	cross := edge1.Cross(edge2)
	if cross.Length() < 1e-12 {
		return nil, fmt.Errorf("degenerate triangle: vertices %v, %v, %v are collinear", v0, v1, v2)
	}

	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
		normal:   cross.Normalize(),
	}, nil
}

// Intersect tests if a ray intersects with the triangle. The ray is first
// intersected with the supporting plane, then the plane point is tested for
// inclusion by checking that it lies on the inner side of all three edges.
func (t *Triangle) Intersect(ray core.Ray) (*core.Hit, bool) {
	// Ray parallel to the plane (or degenerate direction) is a miss
	denom := ray.Direction.Dot(t.normal)
	if math.Abs(denom) < parallelEpsilon {
		return nil, false
	}

	tParam := t.V0.Subtract(ray.Origin).Dot(t.normal) / denom
	if tParam <= core.Epsilon {
		return nil, false
	}

	point := ray.At(tParam)

	// Edge sign-consistency test: the point is inside iff every
	// edge-to-point cross product agrees with the face normal
	if t.V1.Subtract(t.V0).Cross(point.Subtract(t.V0)).Dot(t.normal) < 0 {
		return nil, false
	}
	if t.V2.Subtract(t.V1).Cross(point.Subtract(t.V1)).Dot(t.normal) < 0 {
		return nil, false
	}
	if t.V0.Subtract(t.V2).Cross(point.Subtract(t.V2)).Dot(t.normal) < 0 {
		return nil, false
	}

	return &core.Hit{
		T:        tParam,
		Point:    point,
		Normal:   t.normal,
		Material: t.Material,
	}, true
}

// GetNormal returns the triangle's cached face normal
func (t *Triangle) GetNormal() core.Vec3 {
	return t.normal
}
