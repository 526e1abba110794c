package scene

import (
	"fmt"
	"sort"

	"github.com/briancchu/Raycaml/pkg/core"
	"github.com/briancchu/Raycaml/pkg/geometry"
	"github.com/briancchu/Raycaml/pkg/lights"
)

// quad builds two triangles spanning the corners a, b, c, d, which must be
// given in winding order so both faces share the quad's normal.
func quad(a, b, c, d core.Vec3, material *core.Material) ([]geometry.Object, error) {
	first, err := geometry.NewTriangle(a, b, c, material)
	if err != nil {
		return nil, err
	}
	second, err := geometry.NewTriangle(a, c, d, material)
	if err != nil {
		return nil, err
	}
	return []geometry.Object{first, second}, nil
}

// NewDefaultScene creates the showcase scene: a mirror sphere flanked by a
// matte and a glossy sphere over a triangle floor, under one key and one
// fill light.
func NewDefaultScene() (*Setup, error) {
	camera, err := geometry.NewCamera(geometry.CameraConfig{
		Center:      core.NewVec3(0, 1.2, 4),
		LookAt:      core.NewVec3(0, 0.5, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: 16.0 / 9.0,
	})
	if err != nil {
		return nil, err
	}

	floorMat := &core.Material{
		Diffuse: core.NewVec3(0.45, 0.55, 0.4),
		Ambient: core.NewVec3(0.05, 0.06, 0.05),
	}
	matteRed := &core.Material{
		Diffuse: core.NewVec3(0.75, 0.2, 0.18),
		Ambient: core.NewVec3(0.08, 0.02, 0.02),
	}
	glossyBlue := &core.Material{
		Diffuse:   core.NewVec3(0.15, 0.25, 0.65),
		Specular:  core.NewVec3(0.8, 0.8, 0.8),
		Shininess: 64,
		Ambient:   core.NewVec3(0.02, 0.03, 0.07),
	}
	mirrorSilver := &core.Material{
		Diffuse:   core.NewVec3(0.08, 0.08, 0.08),
		Specular:  core.NewVec3(0.9, 0.9, 0.9),
		Shininess: 128,
		Mirror:    core.NewVec3(0.85, 0.85, 0.85),
	}

	s := NewScene(core.NewVec3(0.5, 0.7, 1.0))

	floor, err := quad(
		core.NewVec3(-8, 0, 8),
		core.NewVec3(8, 0, 8),
		core.NewVec3(8, 0, -8),
		core.NewVec3(-8, 0, -8),
		floorMat,
	)
	if err != nil {
		return nil, err
	}
	s.Add(floor...)

	center, err := geometry.NewSphere(core.NewVec3(0, 0.5, 0), 0.5, mirrorSilver)
	if err != nil {
		return nil, err
	}
	left, err := geometry.NewSphere(core.NewVec3(-1.1, 0.5, -0.4), 0.5, matteRed)
	if err != nil {
		return nil, err
	}
	right, err := geometry.NewSphere(core.NewVec3(1.1, 0.5, -0.2), 0.5, glossyBlue)
	if err != nil {
		return nil, err
	}
	s.Add(center, left, right)

	lightList := []lights.Light{
		lights.NewAmbientLight(core.NewVec3(0.08, 0.08, 0.1)),
		lights.NewPointLight(core.NewVec3(4, 6, 3), core.NewVec3(0.9, 0.85, 0.8)),
		lights.NewPointLight(core.NewVec3(-5, 4, 1), core.NewVec3(0.25, 0.25, 0.3)),
	}

	return &Setup{Scene: s, Camera: camera, Lights: lightList}, nil
}

// NewMirrorRoomScene creates a closed five-wall room built from triangles
// with two mirror spheres bouncing reflections between colored walls.
func NewMirrorRoomScene() (*Setup, error) {
	camera, err := geometry.NewCamera(geometry.CameraConfig{
		Center:      core.NewVec3(0, 2, 2.8),
		LookAt:      core.NewVec3(0, 1.6, -2),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        55,
		AspectRatio: 1.0,
	})
	if err != nil {
		return nil, err
	}

	white := &core.Material{
		Diffuse: core.NewVec3(0.73, 0.73, 0.73),
		Ambient: core.NewVec3(0.06, 0.06, 0.06),
	}
	red := &core.Material{
		Diffuse: core.NewVec3(0.65, 0.05, 0.05),
		Ambient: core.NewVec3(0.06, 0.01, 0.01),
	}
	green := &core.Material{
		Diffuse: core.NewVec3(0.12, 0.45, 0.15),
		Ambient: core.NewVec3(0.01, 0.05, 0.01),
	}
	mirror := &core.Material{
		Diffuse:   core.NewVec3(0.05, 0.05, 0.05),
		Specular:  core.NewVec3(0.9, 0.9, 0.9),
		Shininess: 200,
		Mirror:    core.NewVec3(0.9, 0.9, 0.9),
	}
	gold := &core.Material{
		Diffuse:   core.NewVec3(0.35, 0.28, 0.1),
		Specular:  core.NewVec3(0.9, 0.8, 0.5),
		Shininess: 96,
		Mirror:    core.NewVec3(0.7, 0.55, 0.25),
		Ambient:   core.NewVec3(0.03, 0.025, 0.01),
	}

	s := NewScene(core.NewVec3(0, 0, 0))

	walls := []struct {
		a, b, c, d core.Vec3
		material   *core.Material
	}{
		// Floor, inward normal up
		{core.NewVec3(-2, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(2, 0, -4), core.NewVec3(-2, 0, -4), white},
		// Ceiling, inward normal down
		{core.NewVec3(2, 4, 0), core.NewVec3(-2, 4, 0), core.NewVec3(-2, 4, -4), core.NewVec3(2, 4, -4), white},
		// Back wall, inward normal toward the camera
		{core.NewVec3(-2, 0, -4), core.NewVec3(2, 0, -4), core.NewVec3(2, 4, -4), core.NewVec3(-2, 4, -4), white},
		// Left wall
		{core.NewVec3(-2, 0, 0), core.NewVec3(-2, 0, -4), core.NewVec3(-2, 4, -4), core.NewVec3(-2, 4, 0), red},
		// Right wall
		{core.NewVec3(2, 0, -4), core.NewVec3(2, 0, 0), core.NewVec3(2, 4, 0), core.NewVec3(2, 4, -4), green},
	}
	for _, w := range walls {
		faces, err := quad(w.a, w.b, w.c, w.d, w.material)
		if err != nil {
			return nil, err
		}
		s.Add(faces...)
	}

	big, err := geometry.NewSphere(core.NewVec3(-0.75, 0.75, -2.6), 0.75, mirror)
	if err != nil {
		return nil, err
	}
	small, err := geometry.NewSphere(core.NewVec3(0.9, 0.55, -1.6), 0.55, gold)
	if err != nil {
		return nil, err
	}
	s.Add(big, small)

	lightList := []lights.Light{
		lights.NewAmbientLight(core.NewVec3(0.05, 0.05, 0.05)),
		lights.NewPointLight(core.NewVec3(0, 3.6, -1.8), core.NewVec3(1, 0.95, 0.9)),
	}

	return &Setup{Scene: s, Camera: camera, Lights: lightList, MaxDepth: 16}, nil
}

// builtinScenes maps scene names to their constructors
var builtinScenes = map[string]func() (*Setup, error){
	"default":     NewDefaultScene,
	"mirror-room": NewMirrorRoomScene,
}

// BuiltinSceneNames returns the available built-in scene names, sorted
func BuiltinSceneNames() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewBuiltinScene creates a built-in scene by name
func NewBuiltinScene(name string) (*Setup, error) {
	construct, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, BuiltinSceneNames())
	}
	return construct()
}
