// Package imaging prepares captured screenshots and test images for OCR.
//
// It covers decoding with an in-memory cache, the fixed header strip that
// removes a window's title bar, grayscale conversion, inverted binary
// thresholding for text block detection, clamped cropping, thumbnails
// and encoding.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner:
//   - X increases rightward, Y increases downward
//   - For regions, the minimum point is inclusive and the maximum exclusive
//
// Images returned by the cropping helpers are re-based so that their
// bounds start at (0,0).
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The transformation functions are
// stateless and never mutate their input.
//
// # Thresholding
//
// BinarizeInverted follows the inverse binary rule used for dark text on
// a light background: pixels brighter than the threshold become black and
// everything else becomes white, so text strokes end up as the
// foreground for contour extraction.
package imaging
