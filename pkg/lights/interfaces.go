package lights

import "github.com/briancchu/Raycaml/pkg/core"

type LightType string

const (
	LightTypeAmbient LightType = "ambient"
	LightTypePoint   LightType = "point"
)

// Occluder answers shadow queries. The scene implements it; lights depend on
// this one method rather than on the scene package itself.
type Occluder interface {
	// IntersectAny reports whether any object blocks the ray strictly
	// before parametric distance maxT.
	IntersectAny(ray core.Ray, maxT float64) bool
}

// Light is the closed set of light kinds. Illuminate returns the color
// contribution a light adds to a shaded hit. The incoming ray supplies the
// view direction for the specular highlight; the occluder answers shadow
// tests for light kinds that cast them.
type Light interface {
	Type() LightType
	Illuminate(hit *core.Hit, ray core.Ray, world Occluder) core.Vec3
}
