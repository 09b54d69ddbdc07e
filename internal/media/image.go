package media

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"media-picker/internal/logging"
	"media-picker/internal/mediatypes"

	// Image format decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // BMP format support
	_ "golang.org/x/image/tiff" // TIFF format support
	_ "golang.org/x/image/webp" // WebP format support
)

// MaxImagePixels is the largest photo (width * height) LoadPhoto will decode.
// A 50MP image would use ~200MB in RGBA.
const MaxImagePixels = 50_000_000

// ErrUnsupportedMedia is returned for files that are neither images nor videos.
var ErrUnsupportedMedia = errors.New("unsupported media")

// LoadPhoto decodes the image at path, applying EXIF orientation.
func LoadPhoto(path string) (Photo, error) {
	dimensions, err := GetImageDimensions(path)
	if err != nil {
		return Photo{}, fmt.Errorf("failed to read image header: %w", err)
	}

	if pixels := dimensions.Width * dimensions.Height; pixels > MaxImagePixels {
		return Photo{}, fmt.Errorf("image %s is %dx%d, exceeds %d pixels",
			filepath.Base(path), dimensions.Width, dimensions.Height, MaxImagePixels)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return Photo{}, fmt.Errorf("failed to open image: %w", err)
	}

	logging.Debug("Loaded photo %s: %dx%d", filepath.Base(path), img.Bounds().Dx(), img.Bounds().Dy())
	return Photo{Image: img}, nil
}

// LoadItem turns a picked file into an Item: images are decoded, videos are
// referenced by their file URI.
func LoadItem(path string) (Item, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	kind, err := mediatypes.Classify(abs)
	if err != nil {
		return nil, err
	}

	switch kind {
	case mediatypes.KindImage:
		return LoadPhoto(abs)
	case mediatypes.KindVideo:
		return Video{Location: FileURI(abs)}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMedia, filepath.Base(abs))
	}
}

// ImageDimensions holds image width and height
type ImageDimensions struct {
	Width  int
	Height int
}

// GetImageDimensions returns image dimensions without fully decoding the image
func GetImageDimensions(path string) (*ImageDimensions, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			logging.Warn("failed to close image file %s: %v", path, err)
		}
	}()

	config, format, err := image.DecodeConfig(file)
	if err != nil {
		return nil, err
	}
	logging.Debug("Image %s format %s", filepath.Base(path), strings.ToUpper(format))

	return &ImageDimensions{
		Width:  config.Width,
		Height: config.Height,
	}, nil
}
