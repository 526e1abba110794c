package geometry

import (
	"math"
	"testing"

	"github.com/briancchu/Raycaml/pkg/core"
)

func forwardCamera(t *testing.T) *Camera {
	t.Helper()
	camera, err := NewCamera(CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 1.0,
	})
	if err != nil {
		t.Fatalf("Unexpected error creating camera: %v", err)
	}
	return camera
}

func TestNewCamera_Validation(t *testing.T) {
	valid := CameraConfig{
		Center:      core.NewVec3(0, 1, 4),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        60,
		AspectRatio: 16.0 / 9.0,
	}

	tests := []struct {
		name    string
		mutate  func(*CameraConfig)
		wantErr bool
	}{
		{name: "valid config", mutate: func(c *CameraConfig) {}, wantErr: false},
		{name: "center equals look-at", mutate: func(c *CameraConfig) { c.LookAt = c.Center }, wantErr: true},
		{name: "up parallel to view", mutate: func(c *CameraConfig) {
			c.Center = core.NewVec3(0, 0, 0)
			c.LookAt = core.NewVec3(0, 5, 0)
		}, wantErr: true},
		{name: "up anti-parallel to view", mutate: func(c *CameraConfig) {
			c.Center = core.NewVec3(0, 5, 0)
			c.LookAt = core.NewVec3(0, 0, 0)
		}, wantErr: true},
		{name: "zero aspect", mutate: func(c *CameraConfig) { c.AspectRatio = 0 }, wantErr: true},
		{name: "negative aspect", mutate: func(c *CameraConfig) { c.AspectRatio = -2 }, wantErr: true},
		{name: "zero fov", mutate: func(c *CameraConfig) { c.VFov = 0 }, wantErr: true},
		{name: "fov at 180", mutate: func(c *CameraConfig) { c.VFov = 180 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid
			tt.mutate(&config)
			_, err := NewCamera(config)
			if tt.wantErr && err == nil {
				t.Errorf("Expected error, got none")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestCamera_GenerateRay_Center(t *testing.T) {
	camera := forwardCamera(t)

	ray := camera.GenerateRay(0.5, 0.5)

	if ray.Origin != camera.Center {
		t.Errorf("Expected ray origin at camera center, got %v", ray.Origin)
	}

	// The image-center ray is exactly the forward direction
	expected := core.NewVec3(0, 0, -1)
	if ray.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected center ray direction %v, got %v", expected, ray.Direction)
	}
}

func TestCamera_GenerateRay_Corners(t *testing.T) {
	// 90 degree vfov with aspect 1 puts the image plane edges at ±1
	camera := forwardCamera(t)

	tests := []struct {
		name     string
		u, v     float64
		expected core.Vec3
	}{
		{name: "left edge", u: 0, v: 0.5, expected: core.NewVec3(-1, 0, -1)},
		{name: "right edge", u: 1, v: 0.5, expected: core.NewVec3(1, 0, -1)},
		{name: "top edge", u: 0.5, v: 0, expected: core.NewVec3(0, 1, -1)},
		{name: "bottom edge", u: 0.5, v: 1, expected: core.NewVec3(0, -1, -1)},
		{name: "top-left corner", u: 0, v: 0, expected: core.NewVec3(-1, 1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GenerateRay(tt.u, tt.v)
			if ray.Direction.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction)
			}
		})
	}
}

func TestCamera_GenerateRay_ObliqueBasis(t *testing.T) {
	center := core.NewVec3(3, 2, 5)
	lookAt := core.NewVec3(-1, 0, -2)
	camera, err := NewCamera(CameraConfig{
		Center:      center,
		LookAt:      lookAt,
		Up:          core.NewVec3(0, 1, 0),
		VFov:        45,
		AspectRatio: 2.0,
	})
	if err != nil {
		t.Fatalf("Unexpected error creating camera: %v", err)
	}

	// Center ray still points straight at the target
	forward := lookAt.Subtract(center).Normalize()
	centerDir := camera.GenerateRay(0.5, 0.5).Direction
	if centerDir.Cross(forward).Length() > 1e-9 || centerDir.Dot(forward) <= 0 {
		t.Errorf("Expected center ray parallel to %v, got %v", forward, centerDir)
	}

	// Moving v toward the top of the image must raise the ray above forward
	topDir := camera.GenerateRay(0.5, 0.0).Direction.Normalize()
	if topDir.Dot(core.NewVec3(0, 1, 0)) <= forward.Dot(core.NewVec3(0, 1, 0)) {
		t.Errorf("Expected top-of-image ray to tilt toward the up hint")
	}

	// Half-height follows tan(vfov/2)
	halfHeight := math.Tan(45 * math.Pi / 180 / 2)
	upComponent := camera.GenerateRay(0.5, 0.0).Direction.Subtract(forward)
	if math.Abs(upComponent.Length()-halfHeight) > 1e-9 {
		t.Errorf("Expected vertical offset %v, got %v", halfHeight, upComponent.Length())
	}
}

func TestCamera_AspectRatio(t *testing.T) {
	camera, err := NewCamera(CameraConfig{
		Center:      core.NewVec3(0, 0, 1),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        60,
		AspectRatio: 4.0 / 3.0,
	})
	if err != nil {
		t.Fatalf("Unexpected error creating camera: %v", err)
	}
	if math.Abs(camera.AspectRatio()-4.0/3.0) > 1e-12 {
		t.Errorf("Expected aspect ratio %v, got %v", 4.0/3.0, camera.AspectRatio())
	}
}
