package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/briancchu/Raycaml/pkg/scene"
)

// ErrAborted is returned when the user quits the interactive builder
// without completing a scene.
var ErrAborted = errors.New("scene entry aborted")

// InteractiveBuilder assembles a scene from directives entered one line at
// a time. Directive lines use the same format as scene files; parse errors
// are reported and the session continues.
type InteractiveBuilder struct {
	parser *SceneParser
	in     *bufio.Scanner
	out    io.Writer
}

// NewInteractiveBuilder creates a builder reading directives from in and
// writing prompts and feedback to out
func NewInteractiveBuilder(in io.Reader, out io.Writer) *InteractiveBuilder {
	return &InteractiveBuilder{
		parser: NewSceneParser(),
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run prompts for directives until the scene is complete. The done command
// builds and returns the scene; quit or end of input abandons it.
func (b *InteractiveBuilder) Run() (*scene.Setup, error) {
	fmt.Fprintln(b.out, "Interactive scene builder. Type 'help' for directives, 'done' to finish.")

	for {
		fmt.Fprint(b.out, "> ")
		if !b.in.Scan() {
			if err := b.in.Err(); err != nil {
				return nil, fmt.Errorf("error reading input: %v", err)
			}
			return nil, ErrAborted
		}

		line := strings.TrimSpace(b.in.Text())
		switch line {
		case "help":
			b.printHelp()
			continue
		case "show":
			b.printState()
			continue
		case "done":
			setup, err := b.parser.Build()
			if err != nil {
				fmt.Fprintf(b.out, "scene incomplete: %v\n", err)
				continue
			}
			return setup, nil
		case "quit", "exit":
			return nil, ErrAborted
		}

		if err := b.parser.parseLine(line); err != nil {
			fmt.Fprintf(b.out, "error: %v\n", err)
		}
	}
}

func (b *InteractiveBuilder) printHelp() {
	fmt.Fprint(b.out, `Directives:
  image W H                                 output size in pixels
  background r g b                          background color
  maxdepth n                                mirror reflection depth
  camera px py pz lx ly lz ux uy uz vfov    position, look-at, up, fov in degrees
  material <name> [diffuse r g b] [specular r g b] [shininess s] [mirror r g b] [ambient r g b]
  sphere <material> cx cy cz radius
  triangle <material> x1 y1 z1 x2 y2 z2 x3 y3 z3
  light ambient r g b
  light point px py pz r g b
Commands: help, show, done, quit
`)
}

func (b *InteractiveBuilder) printState() {
	image := "not set"
	if b.parser.hasImage {
		image = fmt.Sprintf("%dx%d", b.parser.width, b.parser.height)
	}
	camera := "not set"
	if b.parser.hasCamera {
		camera = "set"
	}
	fmt.Fprintf(b.out, "image: %s, camera: %s, materials: %d, objects: %d, lights: %d\n",
		image, camera, len(b.parser.materials), len(b.parser.objects), len(b.parser.lightList))
}
