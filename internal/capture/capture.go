// Package capture grabs a rectangular region of the screen and stores it
// as a PNG file for the OCR pipeline.
package capture

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/kbinani/screenshot"
)

// Region is a screen rectangle in virtual-screen pixel coordinates.
type Region struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect converts the region to an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Left+r.Width, r.Top+r.Height)
}

// Validate rejects regions with no area.
func (r Region) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("invalid region dimensions: width=%d, height=%d", r.Width, r.Height)
	}
	return nil
}

// Grabber captures screen pixels.
type Grabber interface {
	Grab(r Region) (*image.RGBA, error)
}

// ScreenGrabber captures from the live display.
type ScreenGrabber struct{}

// NewScreenGrabber returns a Grabber backed by the system display.
func NewScreenGrabber() *ScreenGrabber {
	return &ScreenGrabber{}
}

// Grab captures r from the screen.
func (g *ScreenGrabber) Grab(r Region) (*image.RGBA, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if screenshot.NumActiveDisplays() == 0 {
		return nil, fmt.Errorf("no active displays found")
	}
	img, err := screenshot.CaptureRect(r.Rect())
	if err != nil {
		return nil, fmt.Errorf("failed to capture region: %w", err)
	}
	return img, nil
}

// Capturer grabs regions and persists them.
type Capturer struct {
	grabber Grabber
}

// New returns a Capturer over g.
func New(g Grabber) *Capturer {
	return &Capturer{grabber: g}
}

// CaptureToFile grabs r and writes it to path as an image whose format
// follows the file extension. It returns path and the captured image.
func (c *Capturer) CaptureToFile(r Region, path string) (string, image.Image, error) {
	if err := r.Validate(); err != nil {
		return "", nil, err
	}
	img, err := c.grabber.Grab(r)
	if err != nil {
		return "", nil, err
	}
	if err := imaging.Save(img, path); err != nil {
		return "", nil, fmt.Errorf("failed to save screenshot: %w", err)
	}
	return path, img, nil
}
