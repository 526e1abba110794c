package lights

import (
	"math"
	"testing"

	"github.com/briancchu/Raycaml/pkg/core"
)

// fakeOccluder records the shadow query and answers with a fixed result
type fakeOccluder struct {
	blocked  bool
	queried  bool
	lastRay  core.Ray
	lastMaxT float64
}

func (f *fakeOccluder) IntersectAny(ray core.Ray, maxT float64) bool {
	f.queried = true
	f.lastRay = ray
	f.lastMaxT = maxT
	return f.blocked
}

func shinyHit() *core.Hit {
	return &core.Hit{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
		T:      5,
		Material: &core.Material{
			Diffuse:   core.NewVec3(1, 1, 1),
			Specular:  core.NewVec3(1, 1, 1),
			Shininess: 2,
			Ambient:   core.NewVec3(0.3, 0.3, 0.3),
		},
	}
}

func viewRay() core.Ray {
	return core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
}

func TestAmbientLight_Illuminate(t *testing.T) {
	light := NewAmbientLight(core.NewVec3(0.5, 0.25, 1))
	hit := shinyHit()

	got := light.Illuminate(hit, viewRay(), &fakeOccluder{})
	expected := core.NewVec3(0.15, 0.075, 0.3)
	if got.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestAmbientLight_IgnoresGeometryAndOcclusion(t *testing.T) {
	light := NewAmbientLight(core.NewVec3(0.5, 0.5, 0.5))
	base := light.Illuminate(shinyHit(), viewRay(), &fakeOccluder{})

	// Flip the normal, move the viewer, block every shadow ray: the
	// ambient contribution must not change
	flipped := shinyHit()
	flipped.Normal = core.NewVec3(0, 0, -1)
	sideRay := core.NewRay(core.NewVec3(9, 9, 9), core.NewVec3(-1, -1, -1))
	occluded := &fakeOccluder{blocked: true}

	got := light.Illuminate(flipped, sideRay, occluded)
	if got != base {
		t.Errorf("Expected invariant contribution %v, got %v", base, got)
	}
	if occluded.queried {
		t.Errorf("Ambient light must not cast shadow rays")
	}
}

func TestPointLight_Illuminate(t *testing.T) {
	tests := []struct {
		name     string
		position core.Vec3
		expected core.Vec3
	}{
		{
			name:     "head-on light adds full diffuse and specular",
			position: core.NewVec3(0, 0, 5),
			expected: core.NewVec3(2, 2, 2),
		},
		{
			name:     "distance does not attenuate",
			position: core.NewVec3(0, 0, 1000),
			expected: core.NewVec3(2, 2, 2),
		},
		{
			name:     "45 degree light",
			position: core.NewVec3(0, 3, 3),
			expected: core.NewVec3(math.Sqrt2/2+0.5, math.Sqrt2/2+0.5, math.Sqrt2/2+0.5),
		},
		{
			name:     "light below the surface contributes nothing",
			position: core.NewVec3(0, 0, -5),
			expected: core.NewVec3(0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			light := NewPointLight(tt.position, core.NewVec3(1, 1, 1))
			got := light.Illuminate(shinyHit(), viewRay(), &fakeOccluder{})

			const tolerance = 1e-9
			if got.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPointLight_OccludedContributesExactlyZero(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 0, 5), core.NewVec3(3, 3, 3))
	occluded := &fakeOccluder{blocked: true}

	got := light.Illuminate(shinyHit(), viewRay(), occluded)
	if got != (core.Vec3{}) {
		t.Errorf("Expected exact zero contribution when occluded, got %v", got)
	}
}

func TestPointLight_ShadowRayGeometry(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 4, 3), core.NewVec3(1, 1, 1))
	occ := &fakeOccluder{}

	light.Illuminate(shinyHit(), viewRay(), occ)

	if !occ.queried {
		t.Fatal("Expected a shadow query")
	}

	distance := 5.0 // |(0,4,3)|
	lightDir := core.NewVec3(0, 4, 3).Multiply(1.0 / distance)

	if math.Abs(occ.lastMaxT-distance) > 1e-9 {
		t.Errorf("Expected shadow range %v, got %v", distance, occ.lastMaxT)
	}
	if occ.lastRay.Direction.Subtract(lightDir).Length() > 1e-9 {
		t.Errorf("Expected shadow direction %v, got %v", lightDir, occ.lastRay.Direction)
	}
	expectedOrigin := lightDir.Multiply(core.Epsilon)
	if occ.lastRay.Origin.Subtract(expectedOrigin).Length() > 1e-12 {
		t.Errorf("Expected offset shadow origin %v, got %v", expectedOrigin, occ.lastRay.Origin)
	}
}

func TestLightTypes(t *testing.T) {
	if NewAmbientLight(core.Vec3{}).Type() != LightTypeAmbient {
		t.Errorf("Wrong type for ambient light")
	}
	if NewPointLight(core.Vec3{}, core.Vec3{}).Type() != LightTypePoint {
		t.Errorf("Wrong type for point light")
	}
}
