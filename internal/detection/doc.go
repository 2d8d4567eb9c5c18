// Package detection locates the block of text in an image before OCR.
//
// The heuristic is deliberately simple: text strokes are assumed to be
// darker than their background, so the image is converted to grayscale and
// thresholded with the inverse binary rule, external contours are traced
// on the mask, and the bounding rectangle of the contour with the largest
// area is taken as the text block.
//
// # Coordinate System
//
// Block bounds are expressed in the coordinate space of the input image:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward, Y increases downward
//   - Min is inclusive, Max exclusive
//
// # No Text
//
// When the mask contains no contours at all, FindTextBlock reports
// Found == false and returns the full image bounds, so callers can fall
// back to the whole image.
//
// # OpenCV
//
// Contour tracing uses OpenCV through gocv. The library and its headers
// must be installed for this package to build.
package detection
