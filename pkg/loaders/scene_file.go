package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/briancchu/Raycaml/pkg/core"
	"github.com/briancchu/Raycaml/pkg/geometry"
	"github.com/briancchu/Raycaml/pkg/lights"
	"github.com/briancchu/Raycaml/pkg/scene"
)

// SceneParser accumulates scene directives line by line and assembles them
// into a renderable setup. One directive per line, fields separated by
// whitespace, lines starting with # are comments:
//
//	image W H
//	background r g b
//	maxdepth n
//	camera px py pz lx ly lz ux uy uz vfov
//	material <name> [diffuse r g b] [specular r g b] [shininess s] [mirror r g b] [ambient r g b]
//	sphere <material> cx cy cz radius
//	triangle <material> x1 y1 z1 x2 y2 z2 x3 y3 z3
//	light ambient r g b
//	light point px py pz r g b
//
// The camera's vertical field of view is in degrees; its aspect ratio comes
// from the image directive. Materials must be defined before the shapes
// that reference them. The image and camera directives are required,
// everything else is optional.
type SceneParser struct {
	width        int
	height       int
	maxDepth     int
	background   core.Vec3
	cameraConfig geometry.CameraConfig
	hasImage     bool
	hasCamera    bool
	materials    map[string]*core.Material
	objects      []geometry.Object
	lightList    []lights.Light
}

// NewSceneParser creates an empty scene parser
func NewSceneParser() *SceneParser {
	return &SceneParser{
		materials: make(map[string]*core.Material),
	}
}

// ParseScene parses scene directives from an io.Reader
func ParseScene(reader io.Reader) (*scene.Setup, error) {
	parser := NewSceneParser()

	scanner := bufio.NewScanner(reader)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if err := parser.parseLine(scanner.Text()); err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %v", err)
	}

	return parser.Build()
}

// LoadScene loads and parses a scene file
func LoadScene(filename string) (*scene.Setup, error) {
	if err := validateScenePath(filename); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %v", err)
	}
	defer file.Close()

	return ParseScene(file)
}

// Build assembles the accumulated directives into a renderable setup
func (p *SceneParser) Build() (*scene.Setup, error) {
	if !p.hasImage {
		return nil, fmt.Errorf("scene is missing an image directive")
	}
	if !p.hasCamera {
		return nil, fmt.Errorf("scene is missing a camera directive")
	}

	config := p.cameraConfig
	config.AspectRatio = float64(p.width) / float64(p.height)
	camera, err := geometry.NewCamera(config)
	if err != nil {
		return nil, fmt.Errorf("invalid camera: %v", err)
	}

	sc := scene.NewScene(p.background)
	sc.Add(p.objects...)

	return &scene.Setup{
		Scene:    sc,
		Camera:   camera,
		Lights:   p.lightList,
		Width:    p.width,
		MaxDepth: p.maxDepth,
	}, nil
}

// parseLine processes a single directive line. Empty lines and comments
// are skipped.
func (p *SceneParser) parseLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	fields := strings.Fields(line)
	directive, args := fields[0], fields[1:]

	switch directive {
	case "image":
		return p.parseImage(args)
	case "background":
		return p.parseBackground(args)
	case "maxdepth":
		return p.parseMaxDepth(args)
	case "camera":
		return p.parseCamera(args)
	case "material":
		return p.parseMaterial(args)
	case "sphere":
		return p.parseSphere(args)
	case "triangle":
		return p.parseTriangle(args)
	case "light":
		return p.parseLight(args)
	default:
		return fmt.Errorf("unknown directive '%s'", directive)
	}
}

func (p *SceneParser) parseImage(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("image requires width and height, got %d values", len(args))
	}
	width, err := strconv.Atoi(args[0])
	if err != nil || width < 1 {
		return fmt.Errorf("invalid image width '%s'", args[0])
	}
	height, err := strconv.Atoi(args[1])
	if err != nil || height < 1 {
		return fmt.Errorf("invalid image height '%s'", args[1])
	}
	p.width = width
	p.height = height
	p.hasImage = true
	return nil
}

func (p *SceneParser) parseBackground(args []string) error {
	values, err := parseFloats(args, 3, "background")
	if err != nil {
		return err
	}
	p.background = vec3At(values, 0)
	return nil
}

func (p *SceneParser) parseMaxDepth(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("maxdepth requires one value, got %d", len(args))
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 1 {
		return fmt.Errorf("invalid maxdepth '%s': must be a positive integer", args[0])
	}
	p.maxDepth = depth
	return nil
}

func (p *SceneParser) parseCamera(args []string) error {
	values, err := parseFloats(args, 10, "camera")
	if err != nil {
		return err
	}

	config := geometry.CameraConfig{
		Center:      vec3At(values, 0),
		LookAt:      vec3At(values, 3),
		Up:          vec3At(values, 6),
		VFov:        values[9],
		AspectRatio: 1.0, // placeholder, replaced from the image directive in Build
	}

	// Validate the geometry now so errors point at the camera line
	if _, err := geometry.NewCamera(config); err != nil {
		return err
	}

	p.cameraConfig = config
	p.hasCamera = true
	return nil
}

func (p *SceneParser) parseMaterial(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("material requires a name")
	}
	name := args[0]
	if _, exists := p.materials[name]; exists {
		return fmt.Errorf("material '%s' already defined", name)
	}

	var diffuse, specular, mirror, ambient core.Vec3
	shininess := 1.0

	rest := args[1:]
	i := 0
	for i < len(rest) {
		key := rest[i]
		switch key {
		case "diffuse", "specular", "mirror", "ambient":
			if i+3 >= len(rest) {
				return fmt.Errorf("material '%s': %s requires 3 values", name, key)
			}
			values, err := parseFloats(rest[i+1:i+4], 3, key)
			if err != nil {
				return fmt.Errorf("material '%s': %v", name, err)
			}
			switch key {
			case "diffuse":
				diffuse = vec3At(values, 0)
			case "specular":
				specular = vec3At(values, 0)
			case "mirror":
				mirror = vec3At(values, 0)
			case "ambient":
				ambient = vec3At(values, 0)
			}
			i += 4
		case "shininess":
			if i+1 >= len(rest) {
				return fmt.Errorf("material '%s': shininess requires a value", name)
			}
			values, err := parseFloats(rest[i+1:i+2], 1, "shininess")
			if err != nil {
				return fmt.Errorf("material '%s': %v", name, err)
			}
			shininess = values[0]
			i += 2
		default:
			return fmt.Errorf("material '%s': unknown property '%s'", name, key)
		}
	}

	material, err := core.NewMaterial(diffuse, specular, shininess, mirror, ambient)
	if err != nil {
		return fmt.Errorf("material '%s': %v", name, err)
	}
	p.materials[name] = material
	return nil
}

func (p *SceneParser) parseSphere(args []string) error {
	if len(args) != 5 {
		return fmt.Errorf("sphere requires a material name, a center and a radius")
	}
	material, err := p.lookupMaterial(args[0])
	if err != nil {
		return err
	}
	values, err := parseFloats(args[1:], 4, "sphere")
	if err != nil {
		return err
	}

	sphere, err := geometry.NewSphere(vec3At(values, 0), values[3], material)
	if err != nil {
		return err
	}
	p.objects = append(p.objects, sphere)
	return nil
}

func (p *SceneParser) parseTriangle(args []string) error {
	if len(args) != 10 {
		return fmt.Errorf("triangle requires a material name and three vertices")
	}
	material, err := p.lookupMaterial(args[0])
	if err != nil {
		return err
	}
	values, err := parseFloats(args[1:], 9, "triangle")
	if err != nil {
		return err
	}

	triangle, err := geometry.NewTriangle(vec3At(values, 0), vec3At(values, 3), vec3At(values, 6), material)
	if err != nil {
		return err
	}
	p.objects = append(p.objects, triangle)
	return nil
}

func (p *SceneParser) parseLight(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("light requires a kind (ambient or point)")
	}

	switch kind := args[0]; kind {
	case "ambient":
		values, err := parseFloats(args[1:], 3, "light ambient")
		if err != nil {
			return err
		}
		p.lightList = append(p.lightList, lights.NewAmbientLight(vec3At(values, 0)))
	case "point":
		values, err := parseFloats(args[1:], 6, "light point")
		if err != nil {
			return err
		}
		p.lightList = append(p.lightList, lights.NewPointLight(vec3At(values, 0), vec3At(values, 3)))
	default:
		return fmt.Errorf("unknown light kind '%s'", kind)
	}
	return nil
}

func (p *SceneParser) lookupMaterial(name string) (*core.Material, error) {
	material, exists := p.materials[name]
	if !exists {
		return nil, fmt.Errorf("unknown material '%s'", name)
	}
	return material, nil
}

// parseFloats parses exactly want float values
func parseFloats(args []string, want int, what string) ([]float64, error) {
	if len(args) != want {
		return nil, fmt.Errorf("%s requires %d values, got %d", what, want, len(args))
	}
	values := make([]float64, want)
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid number '%s'", what, arg)
		}
		values[i] = v
	}
	return values, nil
}

// vec3At builds a vector from three consecutive parsed values
func vec3At(values []float64, i int) core.Vec3 {
	return core.NewVec3(values[i], values[i+1], values[i+2])
}

// validateScenePath rejects suspicious scene file paths before opening them
func validateScenePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}

	cleanPath := filepath.Clean(filename)
	if len(cleanPath) > 512 {
		return fmt.Errorf("file path too long: maximum 512 characters allowed")
	}
	if !strings.HasSuffix(strings.ToLower(cleanPath), ".scene") {
		return fmt.Errorf("invalid file type: only .scene files are allowed")
	}

	return nil
}
