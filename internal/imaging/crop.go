package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ErrImageTooSmall is returned when a crop would leave no pixels.
var ErrImageTooSmall = errors.New("image too small")

// StripHeader drops the top px rows of img, removing a window title bar.
// The result is re-based to (0,0). A px of zero returns img unchanged.
func StripHeader(img image.Image, px int) (image.Image, error) {
	if px < 0 {
		return nil, fmt.Errorf("header height must be >= 0, got %d", px)
	}
	if px == 0 {
		return img, nil
	}

	b := img.Bounds()
	if b.Dy() <= px {
		return nil, fmt.Errorf("%w: height %d does not exceed header %d", ErrImageTooSmall, b.Dy(), px)
	}
	return imaging.Crop(img, image.Rect(b.Min.X, b.Min.Y+px, b.Max.X, b.Max.Y)), nil
}

// Crop extracts r from img. r is given in img's coordinate space and is
// clamped to the image bounds; an empty intersection is an error.
func Crop(img image.Image, r image.Rectangle) (image.Image, error) {
	clamped := r.Intersect(img.Bounds())
	if clamped.Empty() {
		return nil, fmt.Errorf("%w: crop region %v outside image bounds %v", ErrImageTooSmall, r, img.Bounds())
	}
	return imaging.Crop(img, clamped), nil
}

// Thumbnail scales img down to fit within size x size keeping the aspect
// ratio. Images already inside the box are returned as a copy at their
// original size.
func Thumbnail(img image.Image, size int) image.Image {
	if size <= 0 {
		return imaging.Clone(img)
	}
	return imaging.Fit(img, size, size, imaging.Lanczos)
}
