package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuildSetup_Builtins(t *testing.T) {
	tests := []struct {
		name      string
		sceneName string
	}{
		{"default scene", "default"},
		{"mirror room scene", "mirror-room"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup, err := buildSetup(tt.sceneName)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if setup.Scene == nil {
				t.Error("Expected a scene, got nil")
			}
			if setup.Camera == nil {
				t.Error("Expected a camera, got nil")
			}
			if len(setup.Lights) == 0 {
				t.Error("Expected at least one light")
			}
		})
	}
}

func TestBuildSetup_SceneFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.scene")
	text := "image 64 48\nmaxdepth 5\ncamera 0 0 1  0 0 0  0 1 0  90\n"
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatalf("Failed to write scene file: %v", err)
	}

	setup, err := buildSetup(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if setup.Width != 64 {
		t.Errorf("Expected width 64, got %d", setup.Width)
	}
	if setup.MaxDepth != 5 {
		t.Errorf("Expected max depth 5, got %d", setup.MaxDepth)
	}
	if setup.Camera == nil {
		t.Error("Expected a camera, got nil")
	}
}

func TestBuildSetup_Errors(t *testing.T) {
	tests := []struct {
		name        string
		sceneName   string
		errContains string
	}{
		{"unknown builtin", "nonexistent", "unknown scene"},
		{"empty name", "", "unknown scene"},
		{"missing scene file", filepath.Join(t.TempDir(), "gone.scene"), "failed to open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup, err := buildSetup(tt.sceneName)
			if err == nil {
				t.Fatal("Expected an error, got none")
			}
			if setup != nil {
				t.Error("Expected nil setup on error")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Expected error containing %q, got %q", tt.errContains, err.Error())
			}
		})
	}
}

func TestBuildSetup_BadSceneFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.scene")
	if err := os.WriteFile(path, []byte("image 64 48\nwibble 1 2 3\n"), 0644); err != nil {
		t.Fatalf("Failed to write scene file: %v", err)
	}

	_, err := buildSetup(path)
	if err == nil {
		t.Fatal("Expected an error, got none")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Expected error to name line 2, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "unknown directive") {
		t.Errorf("Expected unknown directive error, got %q", err.Error())
	}
}
