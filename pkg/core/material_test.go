package core

import "testing"

func TestNewMaterial(t *testing.T) {
	diffuse := NewVec3(0.8, 0.2, 0.2)
	specular := NewVec3(0.5, 0.5, 0.5)

	mat, err := NewMaterial(diffuse, specular, 32, NewVec3(0.1, 0.1, 0.1), NewVec3(0.05, 0.05, 0.05))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if mat.Diffuse != diffuse || mat.Shininess != 32 {
		t.Errorf("Material fields not set: %+v", mat)
	}
	if !mat.Reflective() {
		t.Errorf("Expected material with nonzero mirror to be reflective")
	}

	if _, err := NewMaterial(diffuse, specular, -1, Vec3{}, Vec3{}); err == nil {
		t.Errorf("Expected error for negative shininess")
	}
}

func TestMaterial_Reflective(t *testing.T) {
	matte, err := NewMaterial(NewVec3(0.5, 0.5, 0.5), Vec3{}, 1, Vec3{}, Vec3{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if matte.Reflective() {
		t.Errorf("Expected zero-mirror material to be non-reflective")
	}
}
