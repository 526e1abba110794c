package geometry

import (
	"fmt"
	"math"

	"github.com/briancchu/Raycaml/pkg/core"
)

// CameraConfig holds camera configuration parameters
type CameraConfig struct {
	Center      core.Vec3 // Camera position in world space
	LookAt      core.Vec3 // Point the camera aims at
	Up          core.Vec3 // Up hint, must not be parallel to the view direction
	VFov        float64   // Vertical field of view in degrees, in (0, 180)
	AspectRatio float64   // Width / height
}

// Camera implements a pinhole model: one ray per image-plane coordinate from
// a single viewpoint. The orthonormal basis is derived once at construction
// and never changes.
type Camera struct {
	Center core.Vec3

	forward    core.Vec3
	right      core.Vec3
	trueUp     core.Vec3
	halfWidth  float64
	halfHeight float64
	aspect     float64
}

// NewCamera creates a camera from the config, failing fast on degenerate
// setups instead of producing garbage geometry
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.AspectRatio <= 0 {
		return nil, fmt.Errorf("camera aspect ratio must be positive, got %g", config.AspectRatio)
	}
	if config.VFov <= 0 || config.VFov >= 180 {
		return nil, fmt.Errorf("camera vertical fov must be in (0, 180) degrees, got %g", config.VFov)
	}

	view := config.LookAt.Subtract(config.Center)
	if view.Length() < 1e-12 {
		return nil, fmt.Errorf("camera center and look-at point coincide at %v", config.Center)
	}
	forward := view.Normalize()

	rightCross := forward.Cross(config.Up)
	if rightCross.Length() < 1e-12 {
		return nil, fmt.Errorf("camera up vector %v is parallel to the view direction", config.Up)
	}
	right := rightCross.Normalize()
	trueUp := right.Cross(forward)

	theta := config.VFov * math.Pi / 180
	halfHeight := math.Tan(theta / 2)

	return &Camera{
		Center:     config.Center,
		forward:    forward,
		right:      right,
		trueUp:     trueUp,
		halfWidth:  halfHeight * config.AspectRatio,
		halfHeight: halfHeight,
		aspect:     config.AspectRatio,
	}, nil
}

// AspectRatio returns the configured width/height ratio
func (c *Camera) AspectRatio() float64 {
	return c.aspect
}

// GenerateRay maps normalized image coordinates u, v in [0,1) to a world
// space ray. u is the column fraction, v the row fraction with row 0 at the
// top of the image. The returned direction is intentionally not normalized.
func (c *Camera) GenerateRay(u, v float64) core.Ray {
	offsetRight := (2*u - 1) * c.halfWidth
	offsetUp := (1 - 2*v) * c.halfHeight

	direction := c.forward.
		Add(c.right.Multiply(offsetRight)).
		Add(c.trueUp.Multiply(offsetUp))

	return core.NewRay(c.Center, direction)
}
