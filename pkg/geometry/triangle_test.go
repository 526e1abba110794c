package geometry

import (
	"math"
	"testing"

	"github.com/briancchu/Raycaml/pkg/core"
)

func xyTriangle(t *testing.T) *Triangle {
	t.Helper()
	tri, err := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		testMaterial(),
	)
	if err != nil {
		t.Fatalf("Unexpected error creating triangle: %v", err)
	}
	return tri
}

func TestNewTriangle_Validation(t *testing.T) {
	collinear := [][3]core.Vec3{
		{core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), core.NewVec3(2, 2, 2)},
		{core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)},
		{core.NewVec3(3, 3, 3), core.NewVec3(3, 3, 3), core.NewVec3(3, 3, 3)},
	}
	for _, verts := range collinear {
		if _, err := NewTriangle(verts[0], verts[1], verts[2], testMaterial()); err == nil {
			t.Errorf("Expected error for collinear vertices %v", verts)
		}
	}

	if _, err := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), nil); err == nil {
		t.Errorf("Expected error for nil material")
	}
}

func TestTriangle_WindingNormal(t *testing.T) {
	tri := xyTriangle(t)

	// Counter-clockwise winding in the XY plane faces +Z
	expected := core.NewVec3(0, 0, 1)
	if tri.GetNormal().Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected normal %v, got %v", expected, tri.GetNormal())
	}

	// Swapping two vertices flips the winding and the normal
	flipped, err := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0), testMaterial())
	if err != nil {
		t.Fatalf("Unexpected error creating triangle: %v", err)
	}
	if flipped.GetNormal().Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected flipped normal (0,0,-1), got %v", flipped.GetNormal())
	}
}

func TestTriangle_Intersect(t *testing.T) {
	tri := xyTriangle(t)

	tests := []struct {
		name      string
		ray       core.Ray
		wantHit   bool
		wantT     float64
		wantPoint core.Vec3
	}{
		{
			name:      "interior hit from above",
			ray:       core.NewRay(core.NewVec3(0.2, 0.2, 1), core.NewVec3(0, 0, -1)),
			wantHit:   true,
			wantT:     1,
			wantPoint: core.NewVec3(0.2, 0.2, 0),
		},
		{
			name:    "outside the hypotenuse",
			ray:     core.NewRay(core.NewVec3(0.9, 0.9, 1), core.NewVec3(0, 0, -1)),
			wantHit: false,
		},
		{
			name:    "outside negative u",
			ray:     core.NewRay(core.NewVec3(-0.1, 0.5, 1), core.NewVec3(0, 0, -1)),
			wantHit: false,
		},
		{
			name:    "parallel to the plane",
			ray:     core.NewRay(core.NewVec3(0.2, 0.2, 1), core.NewVec3(1, 0, 0)),
			wantHit: false,
		},
		{
			name:    "plane behind the ray",
			ray:     core.NewRay(core.NewVec3(0.2, 0.2, 1), core.NewVec3(0, 0, 1)),
			wantHit: false,
		},
		{
			name:      "edge counts as inside",
			ray:       core.NewRay(core.NewVec3(0.5, 0, 1), core.NewVec3(0, 0, -1)),
			wantHit:   true,
			wantT:     1,
			wantPoint: core.NewVec3(0.5, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := tri.Intersect(tt.ray)
			if isHit != tt.wantHit {
				t.Fatalf("Expected hit=%v, got %v", tt.wantHit, isHit)
			}
			if !isHit {
				return
			}

			const tolerance = 1e-9
			if math.Abs(hit.T-tt.wantT) > tolerance {
				t.Errorf("Expected t=%v, got %v", tt.wantT, hit.T)
			}
			if hit.Point.Subtract(tt.wantPoint).Length() > tolerance {
				t.Errorf("Expected point %v, got %v", tt.wantPoint, hit.Point)
			}
		})
	}
}

func TestTriangle_Intersect_NormalNotFlipped(t *testing.T) {
	tri := xyTriangle(t)

	// Hits from either side report the same stored winding normal;
	// flat shading never reorients the face toward the viewer
	above, isHit := tri.Intersect(core.NewRay(core.NewVec3(0.2, 0.2, 1), core.NewVec3(0, 0, -1)))
	if !isHit {
		t.Fatal("Expected hit from above")
	}
	below, isHit := tri.Intersect(core.NewRay(core.NewVec3(0.2, 0.2, -1), core.NewVec3(0, 0, 1)))
	if !isHit {
		t.Fatal("Expected hit from below")
	}

	expected := core.NewVec3(0, 0, 1)
	if above.Normal.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected normal %v from above, got %v", expected, above.Normal)
	}
	if below.Normal.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected normal %v from below, got %v", expected, below.Normal)
	}
}
