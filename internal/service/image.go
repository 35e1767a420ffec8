// Package service loads pictures from disk for the viewer.
package service

import (
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"os"
	"path/filepath"
	"time"

	"imageviewer/internal/viewer"

	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/draw"
)

// largeSource is the pixel count above which scaling switches to the faster
// bilinear interpolator.
const largeSource = 4000 * 3000

// ImageInfo holds metadata about an image file.
type ImageInfo struct {
	Width   int
	Height  int
	Size    int64
	ModTime time.Time
	Format  string
	Taken   string
}

// ImageService decodes and scales pictures. It implements viewer.Loader.
type ImageService struct {
}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

var _ viewer.Loader = (*ImageService)(nil)

// GetTaken returns the EXIF capture time of the image read from r, or an
// empty string when the image carries no EXIF data.
func (is *ImageService) GetTaken(r io.Reader) string {
	x, err := exif.Decode(r)
	if err != nil {
		return "" // not all images have EXIF
	}
	tm, err := x.DateTime()
	if err != nil {
		return ""
	}
	return tm.Format("2006-01-02 15:04")
}

// GetImageInfo opens and decodes path, returning its metadata and pixels.
func (is *ImageService) GetImageInfo(path string) (*ImageInfo, image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to stat image file: %w", err)
	}

	taken := is.GetTaken(f)

	if _, err = f.Seek(0, io.SeekStart); err != nil {
		return nil, nil, fmt.Errorf("failed to seek in image file: %w", err)
	}

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:   bounds.Dx(),
		Height:  bounds.Dy(),
		Size:    fi.Size(),
		ModTime: fi.ModTime(),
		Format:  format,
		Taken:   taken,
	}, img, nil
}

// Load decodes path and scales it so its longer side is longest pixels.
func (is *ImageService) Load(path string, longest int) (*viewer.Picture, error) {
	info, img, err := is.GetImageInfo(path)
	if err != nil {
		return nil, err
	}
	src := viewer.Size{Width: info.Width, Height: info.Height}
	dst := viewer.FitLongest(src, longest)
	if dst.Empty() {
		return nil, fmt.Errorf("cannot fit %s image into %dpx", src, longest)
	}
	return &viewer.Picture{
		Path:     path,
		Name:     filepath.Base(path),
		Image:    Scale(img, dst),
		Original: src,
		Scaled:   dst,
		Taken:    info.Taken,
	}, nil
}

// Scale resamples img to exactly size.
func Scale(img image.Image, size viewer.Size) image.Image {
	b := img.Bounds()
	if b.Dx() == size.Width && b.Dy() == size.Height {
		return img
	}
	var scaler draw.Interpolator = draw.CatmullRom
	if b.Dx()*b.Dy() > largeSource {
		scaler = draw.ApproxBiLinear
	}
	dst := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	scaler.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
