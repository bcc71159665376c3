package preprocess

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// NotFoundError indicates that a path did not resolve to decodable image data.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("image not found: %s: %v", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// SupportedImageExtensions lists supported file extensions for loading.
var SupportedImageExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".tif", ".tiff"}

// IsSupportedImage reports whether the path has a supported image extension.
func IsSupportedImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range SupportedImageExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// Metadata captures lightweight file and pixel information.
type Metadata struct {
	Path      string
	Format    string
	SizeBytes int64
	Width     int
	Height    int
}

// Config holds binarization parameters.
type Config struct {
	// BlockSize is the local neighborhood size for adaptive thresholding.
	// Must be odd and greater than 1.
	BlockSize int
	// Constant is subtracted from the local weighted mean before comparing.
	Constant float64
}

// DefaultConfig returns the default preprocessing parameters.
func DefaultConfig() Config {
	return Config{BlockSize: 11, Constant: 2}
}

// Validate checks the config for usable values.
func (c Config) Validate() error {
	if c.BlockSize <= 1 || c.BlockSize%2 == 0 {
		return fmt.Errorf("block size must be odd and greater than 1, got %d", c.BlockSize)
	}
	return nil
}

// Load opens and decodes an image file, returning the image and metadata.
// A missing or undecodable file yields a *NotFoundError.
func Load(path string) (image.Image, Metadata, error) {
	f, err := os.Open(path) //nolint:gosec // G304: Reading user-provided image file path is expected
	if err != nil {
		return nil, Metadata{}, &NotFoundError{Path: path, Err: err}
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing image file: %v\n", err)
		}
	}()

	fi, statErr := f.Stat()
	if statErr != nil {
		return nil, Metadata{}, &NotFoundError{Path: path, Err: statErr}
	}

	img, format, decErr := image.Decode(f)
	if decErr != nil {
		return nil, Metadata{}, &NotFoundError{Path: path, Err: decErr}
	}

	b := img.Bounds()
	meta := Metadata{
		Path:      path,
		Format:    format,
		SizeBytes: fi.Size(),
		Width:     b.Dx(),
		Height:    b.Dy(),
	}
	return img, meta, nil
}

// Grayscale converts an image to a single-channel grayscale image.
func Grayscale(img image.Image) *image.Gray {
	flat := imaging.Grayscale(img)
	b := flat.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := range b.Dy() {
		for x := range b.Dx() {
			// Channels are equal after imaging.Grayscale; take red.
			px := flat.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			gray.SetGray(x, y, color.Gray{Y: px.R})
		}
	}
	return gray
}

// Run loads the image at path and produces the binarized version ready for OCR.
// The output has the same pixel dimensions as the input; on any failure no
// partial image is returned.
func Run(path string, cfg Config) (*image.Gray, Metadata, error) {
	if err := cfg.Validate(); err != nil {
		return nil, Metadata{}, err
	}
	img, meta, err := Load(path)
	if err != nil {
		return nil, Metadata{}, err
	}
	gray := Grayscale(img)
	bin := AdaptiveThreshold(gray, cfg.BlockSize, cfg.Constant)
	return bin, meta, nil
}
