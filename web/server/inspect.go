package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/briancchu/Raycaml/pkg/core"
	"github.com/briancchu/Raycaml/pkg/geometry"
	"github.com/briancchu/Raycaml/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Material     map[string]interface{} `json:"material"`
	Geometry     map[string]interface{} `json:"geometry"`
}

// handleInspect casts a ray through the requested pixel of a built-in scene
// and reports what it hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	width, err := parseIntParam(r.URL.Query(), "width", 400, minRenderWidth, maxRenderWidth)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid x coordinate"})
		return
	}

	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid y coordinate"})
		return
	}

	setup, err := scene.NewBuiltinScene(sceneName)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	height := int(float64(width) / setup.Camera.AspectRatio())
	if pixelX < 0 || pixelX >= width || pixelY < 0 || pixelY >= height {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": fmt.Sprintf("Pixel coordinates out of bounds for %dx%d", width, height)})
		return
	}

	response := inspectPixel(setup, width, height, pixelX, pixelY)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// inspectPixel casts a ray through the center of the specified pixel and
// returns information about the first object hit
func inspectPixel(setup *scene.Setup, width, height, pixelX, pixelY int) InspectResponse {
	u := (float64(pixelX) + 0.5) / float64(width)
	v := (float64(pixelY) + 0.5) / float64(height)
	ray := setup.Camera.GenerateRay(u, v)

	hit, isHit := setup.Scene.Intersect(ray)
	if !isHit {
		return InspectResponse{Hit: false}
	}

	geometryType, geometryProps := geometryInfo(findHitObject(setup.Scene, ray, hit.T))

	return InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		Point:        vec3Triple(hit.Point),
		Normal:       vec3Triple(hit.Normal),
		Distance:     hit.T,
		FrontFace:    ray.Direction.Dot(hit.Normal) < 0,
		Material:     materialInfo(hit.Material),
		Geometry:     geometryProps,
	}
}

// findHitObject locates the object that produced the closest hit. The hit
// record carries no object reference, so the objects are retested and
// matched on the exact parametric distance.
func findHitObject(sc *scene.Scene, ray core.Ray, t float64) geometry.Object {
	for _, object := range sc.Objects {
		if hit, isHit := object.Intersect(ray); isHit && hit.T == t {
			return object
		}
	}
	return nil
}

// materialInfo extracts the shading coefficients for the JSON response
func materialInfo(mat *core.Material) map[string]interface{} {
	return map[string]interface{}{
		"diffuse":    vec3Triple(mat.Diffuse),
		"specular":   vec3Triple(mat.Specular),
		"shininess":  mat.Shininess,
		"mirror":     vec3Triple(mat.Mirror),
		"ambient":    vec3Triple(mat.Ambient),
		"reflective": mat.Reflective(),
		"color": fmt.Sprintf("#%02x%02x%02x",
			int(mat.Diffuse.X*255), int(mat.Diffuse.Y*255), int(mat.Diffuse.Z*255)),
	}
}

// geometryInfo extracts detailed geometry information
func geometryInfo(object geometry.Object) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := object.(type) {
	case *geometry.Sphere:
		properties["center"] = vec3Triple(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Triangle:
		properties["vertices"] = [3][3]float64{
			vec3Triple(geom.V0),
			vec3Triple(geom.V1),
			vec3Triple(geom.V2),
		}
		return "triangle", properties

	default:
		return "unknown", properties
	}
}

func vec3Triple(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
