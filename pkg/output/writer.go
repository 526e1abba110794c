package output

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// WritePPM writes an image as binary PPM (P6, 8 bits per channel)
func WritePPM(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if _, err := fmt.Fprintf(w, "P6\n%d %d 255\n", width, height); err != nil {
		return err
	}

	row := make([]byte, width*3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		i := 0
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			row[i+0] = byte(r >> 8)
			row[i+1] = byte(g >> 8)
			row[i+2] = byte(b >> 8)
			i += 3
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

// SaveImage writes img to path, choosing the format from the file
// extension. PPM is written directly; PNG and JPEG go through the imaging
// library. The path "-" writes PPM to stdout.
func SaveImage(path string, img image.Image) error {
	if path == "-" {
		return WritePPM(os.Stdout, img)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ppm":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("could not create output file %q: %v", path, err)
		}
		defer f.Close()
		return WritePPM(f, img)
	case ".png", ".jpg", ".jpeg":
		return imaging.Save(img, path)
	default:
		return fmt.Errorf("unsupported file extension %q (supported: ppm, png, jpg/jpeg)", ext)
	}
}

// Thumbnail downscales img to the given width, preserving aspect ratio
func Thumbnail(img image.Image, width int) image.Image {
	return resize.Resize(uint(width), 0, img, resize.Bilinear)
}

// ThumbnailPath derives the thumbnail filename from the primary output path
func ThumbnailPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "_thumb.png"
}

// SaveThumbnail writes a PNG thumbnail of img next to the primary output
// path and returns the path it wrote
func SaveThumbnail(path string, img image.Image, width int) (string, error) {
	if path == "-" {
		return "", fmt.Errorf("cannot write a thumbnail alongside stdout output")
	}
	if width < 1 {
		return "", fmt.Errorf("thumbnail width must be positive, got %d", width)
	}

	thumbPath := ThumbnailPath(path)
	if err := imaging.Save(Thumbnail(img, width), thumbPath); err != nil {
		return "", fmt.Errorf("failed to save thumbnail: %v", err)
	}
	return thumbPath, nil
}
