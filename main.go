package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/joho/godotenv"

	"github.com/briancchu/Raycaml/pkg/loaders"
	"github.com/briancchu/Raycaml/pkg/output"
	"github.com/briancchu/Raycaml/pkg/renderer"
	"github.com/briancchu/Raycaml/pkg/scene"
)

type options struct {
	scene       string
	interactive bool
	width       int
	depth       int
	workers     int
	output      string
	thumbWidth  int
	publishKey  string
	cpuprofile  string
}

func main() {
	var opts options
	flag.StringVar(&opts.scene, "scene", "default", "Built-in scene name or path to a .scene file")
	flag.BoolVar(&opts.interactive, "interactive", false, "Build the scene interactively from stdin")
	flag.IntVar(&opts.width, "width", 0, "Output image width in pixels (0 = scene default)")
	flag.IntVar(&opts.depth, "depth", -1, "Maximum mirror reflection depth (-1 = scene default)")
	flag.IntVar(&opts.workers, "workers", 0, "Number of render workers (0 = CPU count)")
	flag.StringVar(&opts.output, "o", "render.png", "Output file (.ppm, .png, .jpg), or - for PPM on stdout")
	flag.IntVar(&opts.thumbWidth, "thumb", 0, "Also write a PNG thumbnail of this width (0 = off)")
	flag.StringVar(&opts.publishKey, "publish", "", "Upload the render as a PNG to S3 under this key")
	flag.StringVar(&opts.cpuprofile, "cpuprofile", "", "Write a CPU profile to this file")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	if err := run(opts); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	// Optional .env provides the S3 settings for publishing
	_ = godotenv.Load()

	var setup *scene.Setup
	var err error
	if opts.interactive {
		setup, err = loaders.NewInteractiveBuilder(os.Stdin, os.Stdout).Run()
		if errors.Is(err, loaders.ErrAborted) {
			fmt.Println("Aborted.")
			return nil
		}
	} else {
		setup, err = buildSetup(opts.scene)
	}
	if err != nil {
		return err
	}

	// Scene settings override the defaults, flags override the scene
	config := renderer.DefaultRenderConfig()
	if setup.Width > 0 {
		config.Width = setup.Width
	}
	if setup.MaxDepth > 0 {
		config.MaxDepth = setup.MaxDepth
	}
	if opts.width > 0 {
		config.Width = opts.width
	}
	if opts.depth >= 0 {
		config.MaxDepth = opts.depth
	}
	config.NumWorkers = opts.workers

	if opts.cpuprofile != "" {
		f, err := os.Create(opts.cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile file: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	logger := renderer.NewDefaultLogger()
	rt, err := renderer.NewRaytracer(setup.Scene, setup.Camera, setup.Lights, config, logger)
	if err != nil {
		return err
	}

	img, _, err := rt.Render(context.Background())
	if err != nil {
		return err
	}

	if err := output.SaveImage(opts.output, img); err != nil {
		return err
	}
	if opts.output != "-" {
		fmt.Printf("Render saved as %s\n", opts.output)
	}

	if opts.thumbWidth > 0 {
		thumbPath, err := output.SaveThumbnail(opts.output, img, opts.thumbWidth)
		if err != nil {
			return err
		}
		fmt.Printf("Thumbnail saved as %s\n", thumbPath)
	}

	if opts.publishKey != "" {
		publisher, err := output.NewPublisher(output.PublishConfigFromEnv(), logger)
		if err != nil {
			return err
		}
		if err := publisher.PublishPNG(context.Background(), img, opts.publishKey); err != nil {
			return err
		}
	}

	return nil
}

// buildSetup resolves the scene argument: a path ending in .scene is parsed
// as a scene file, anything else is looked up as a built-in scene name.
func buildSetup(name string) (*scene.Setup, error) {
	if strings.HasSuffix(strings.ToLower(name), ".scene") {
		return loaders.LoadScene(name)
	}
	return scene.NewBuiltinScene(name)
}

func printHelp() {
	fmt.Println("Raycaml ray tracer")
	fmt.Println("Usage: raycaml [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, name := range scene.BuiltinSceneNames() {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println()
	fmt.Println("A -scene argument ending in .scene is parsed as a scene file.")
	fmt.Println("With -interactive the scene is read as directives from stdin.")
}
