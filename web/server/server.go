package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/briancchu/Raycaml/pkg/renderer"
	"github.com/briancchu/Raycaml/pkg/scene"
)

const (
	minRenderWidth   = 16
	maxRenderWidth   = 4096
	maxRenderDepth   = 1000
	maxRenderWorkers = 256

	defaultRenderTimeout = 60 * time.Second
)

// Server handles web requests for the ray tracer
type Server struct {
	port          int
	renderTimeout time.Duration
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port, renderTimeout: defaultRenderTimeout}
}

// RenderRequest represents a render request from the client. Width 0 and
// depth -1 mean unspecified; the scene's own settings or the render
// defaults apply.
type RenderRequest struct {
	Scene   string `json:"scene"`   // Built-in scene name
	Width   int    `json:"width"`   // Image width in pixels
	Depth   int    `json:"depth"`   // Maximum mirror reflection depth
	Workers int    `json:"workers"` // Number of render workers (0 = CPU count)
}

// Start starts the web server
func (s *Server) Start() error {
	// API endpoints
	http.HandleFunc("/api/render", s.handleRender)
	http.HandleFunc("/api/health", s.handleHealth)
	http.HandleFunc("/api/scenes", s.handleScenes)
	http.HandleFunc("/api/inspect", s.handleInspect)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes with the render parameter limits
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	response := map[string]interface{}{
		"scenes": scene.BuiltinSceneNames(),
		"limits": map[string]interface{}{
			"width": map[string]int{
				"min": minRenderWidth,
				"max": maxRenderWidth,
			},
			"depth": map[string]int{
				"min": 0,
				"max": maxRenderDepth,
			},
			"workers": map[string]int{
				"min": 0,
				"max": maxRenderWorkers,
			},
		},
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// handleRender renders a built-in scene and responds with the PNG image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		s.writeError(w, http.StatusMethodNotAllowed, "render requires POST")
		return
	}

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	setup, err := scene.NewBuiltinScene(req.Scene)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Scene settings override the defaults, request parameters override the scene
	config := renderer.DefaultRenderConfig()
	if setup.Width > 0 {
		config.Width = setup.Width
	}
	if setup.MaxDepth > 0 {
		config.MaxDepth = setup.MaxDepth
	}
	if req.Width > 0 {
		config.Width = req.Width
	}
	if req.Depth >= 0 {
		config.MaxDepth = req.Depth
	}
	config.NumWorkers = req.Workers

	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	raytracer, err := renderer.NewRaytracer(setup.Scene, setup.Camera, setup.Lights, config, NewServerLogger(renderID))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Bound the render and stop it early when the client disconnects
	ctx, cancel := context.WithTimeout(r.Context(), s.renderTimeout)
	defer cancel()

	img, _, err := raytracer.Render(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			s.writeError(w, http.StatusGatewayTimeout, fmt.Sprintf("render timed out after %v", s.renderTimeout))
			return
		}
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("render failed: %v", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if err := png.Encode(w, img); err != nil {
		log.Printf("Error writing PNG response for %s: %v", renderID, err)
	}
}

// parseRenderRequest decodes and validates the JSON request body. Absent
// fields keep their defaults, so a bare {} renders the default scene.
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{Scene: "default", Width: 0, Depth: -1, Workers: 0}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return nil, err
	}

	if req.Width != 0 && (req.Width < minRenderWidth || req.Width > maxRenderWidth) {
		return nil, fmt.Errorf("width must be between %d and %d, got: %d", minRenderWidth, maxRenderWidth, req.Width)
	}
	if req.Depth < -1 || req.Depth > maxRenderDepth {
		return nil, fmt.Errorf("depth must be between 0 and %d, got: %d", maxRenderDepth, req.Depth)
	}
	if req.Workers < 0 || req.Workers > maxRenderWorkers {
		return nil, fmt.Errorf("workers must be between 0 and %d, got: %d", maxRenderWorkers, req.Workers)
	}

	return req, nil
}

// writeError sends an error response as JSON
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
