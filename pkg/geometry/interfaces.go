package geometry

import (
	"github.com/briancchu/Raycaml/pkg/core"
)

// Object is the closed set of renderable primitives. Intersect returns the
// nearest hit with T > core.Epsilon, or false for a miss. Intersection never
// errors: degenerate configurations (parallel plane, negative discriminant)
// are misses.
type Object interface {
	Intersect(ray core.Ray) (*core.Hit, bool)
}
