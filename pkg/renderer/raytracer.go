package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/briancchu/Raycaml/pkg/core"
	"github.com/briancchu/Raycaml/pkg/geometry"
	"github.com/briancchu/Raycaml/pkg/integrator"
	"github.com/briancchu/Raycaml/pkg/lights"
	"github.com/briancchu/Raycaml/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RenderConfig contains rendering configuration
type RenderConfig struct {
	Width      int // Output image width in pixels
	MaxDepth   int // Maximum mirror reflection depth (0 = direct lighting only)
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:      800,
		MaxDepth:   100,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene      *scene.Scene
	camera     *geometry.Camera
	integrator *integrator.WhittedIntegrator
	config     RenderConfig
	width      int
	height     int
	logger     core.Logger
}

// NewRaytracer creates a raytracer for the given scene, camera and lights.
// The image height is derived from the width and the camera's aspect ratio.
// A nil logger falls back to the default stdout logger.
func NewRaytracer(sc *scene.Scene, camera *geometry.Camera, lightList []lights.Light, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	if sc == nil {
		return nil, fmt.Errorf("scene must not be nil")
	}
	if camera == nil {
		return nil, fmt.Errorf("camera must not be nil")
	}
	if config.Width <= 0 {
		return nil, fmt.Errorf("image width must be positive, got %d", config.Width)
	}
	if config.MaxDepth < 0 {
		return nil, fmt.Errorf("max depth must not be negative, got %d", config.MaxDepth)
	}

	height := int(float64(config.Width) / camera.AspectRatio())
	if height < 1 {
		return nil, fmt.Errorf("image width %d at aspect ratio %g leaves no pixel rows", config.Width, camera.AspectRatio())
	}

	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Raytracer{
		scene:      sc,
		camera:     camera,
		integrator: integrator.NewWhittedIntegrator(sc, lightList),
		config:     config,
		width:      config.Width,
		height:     height,
		logger:     logger,
	}, nil
}

// Width returns the output image width in pixels
func (rt *Raytracer) Width() int {
	return rt.width
}

// Height returns the output image height in pixels
func (rt *Raytracer) Height() int {
	return rt.height
}

// Render traces one ray through the center of every pixel, fanning rows out
// across a worker pool, and returns the assembled image. Cancelling the
// context abandons the remaining rows and returns the context's error.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	startTime := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))

	pool := NewWorkerPool(rt, rt.config.NumWorkers)
	rt.logger.Printf("Rendering %dx%d with %d workers (max depth %d)...\n",
		rt.width, rt.height, pool.GetNumWorkers(), rt.config.MaxDepth)

	pool.Start(ctx)
	for y := 0; y < rt.height; y++ {
		pool.SubmitTask(RowTask{Y: y, Image: img})
	}

	// Every submitted row reports back exactly once, rendered or not.
	progressStep := rt.height / 4
	if progressStep < 1 {
		progressStep = 1
	}
	var renderErr error
	for i := 0; i < rt.height; i++ {
		result, ok := pool.GetResult()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Err != nil && renderErr == nil {
			renderErr = result.Err
		}
		if done := i + 1; done%progressStep == 0 && done < rt.height {
			rt.logger.Printf("  Rows %d/%d complete (%v)\n", done, rt.height, time.Since(startTime).Round(time.Millisecond))
		}
	}
	pool.Stop()

	if renderErr != nil {
		return nil, RenderStats{}, renderErr
	}

	elapsed := time.Since(startTime)
	stats := NewRenderStats(rt.width, rt.height, pool.GetNumWorkers(), elapsed)
	rt.logger.Printf("Render completed in %v (%.0f rays/sec)\n", elapsed, stats.RaysPerSecond)

	return img, stats, nil
}

// renderRow traces the pixels of row i into the shared image. Rows are
// disjoint, so concurrent workers never write to the same pixel.
func (rt *Raytracer) renderRow(img *image.RGBA, i int) {
	for j := 0; j < rt.width; j++ {
		// Pixel centers in normalized [0,1) image coordinates, row 0 at the top
		u := (float64(j) + 0.5) / float64(rt.width)
		v := (float64(i) + 0.5) / float64(rt.height)

		ray := rt.camera.GenerateRay(u, v)
		colorVec := rt.integrator.RayColor(ray, rt.config.MaxDepth)

		img.SetRGBA(j, i, rt.vec3ToColor(colorVec))
	}
}

// vec3ToColor converts a linear color to 8-bit RGBA with clamping
func (rt *Raytracer) vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Clamp to valid color range
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
