package capture

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

type fakeGrabber struct {
	calls []Region
	err   error
}

func (f *fakeGrabber) Grab(r Region) (*image.RGBA, error) {
	f.calls = append(f.calls, r)
	if f.err != nil {
		return nil, f.err
	}
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			img.Set(x, y, color.RGBA{0, 128, 255, 255})
		}
	}
	return img, nil
}

func TestRegion_Rect(t *testing.T) {
	r := Region{Left: 10, Top: 20, Width: 300, Height: 200}
	rect := r.Rect()
	if rect.Min.X != 10 || rect.Min.Y != 20 || rect.Max.X != 310 || rect.Max.Y != 220 {
		t.Errorf("Rect: got %v", rect)
	}
}

func TestRegion_Validate(t *testing.T) {
	tests := []struct {
		name    string
		region  Region
		wantErr bool
	}{
		{"valid", Region{Width: 10, Height: 10}, false},
		{"negative origin is fine", Region{Left: -1920, Top: 0, Width: 10, Height: 10}, false},
		{"zero width", Region{Width: 0, Height: 10}, true},
		{"zero height", Region{Width: 10, Height: 0}, true},
		{"negative width", Region{Width: -5, Height: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.region.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate: got %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCaptureToFile(t *testing.T) {
	fake := &fakeGrabber{}
	c := New(fake)
	path := filepath.Join(t.TempDir(), "screenshot.png")

	got, img, err := c.CaptureToFile(Region{Left: 5, Top: 5, Width: 40, Height: 30}, path)
	if err != nil {
		t.Fatalf("CaptureToFile failed: %v", err)
	}
	if got != path {
		t.Errorf("path: got %s, want %s", got, path)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 30 {
		t.Errorf("image size: got %v", img.Bounds())
	}

	saved, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("failed to reopen screenshot: %v", err)
	}
	if saved.Bounds().Dx() != 40 || saved.Bounds().Dy() != 30 {
		t.Errorf("saved size: got %v", saved.Bounds())
	}
}

func TestCaptureToFile_InvalidRegion(t *testing.T) {
	fake := &fakeGrabber{}
	c := New(fake)

	_, _, err := c.CaptureToFile(Region{Width: 0, Height: 10}, filepath.Join(t.TempDir(), "x.png"))
	if err == nil {
		t.Error("CaptureToFile should reject an empty region")
	}
	if len(fake.calls) != 0 {
		t.Error("grabber should not be called for an invalid region")
	}
}

func TestCaptureToFile_GrabError(t *testing.T) {
	c := New(&fakeGrabber{err: errors.New("display locked")})
	path := filepath.Join(t.TempDir(), "x.png")

	if _, _, err := c.CaptureToFile(Region{Width: 10, Height: 10}, path); err == nil {
		t.Error("CaptureToFile should propagate grab errors")
	}
	if _, err := os.Stat(path); err == nil {
		t.Error("no file should be written when the grab fails")
	}
}

func TestCaptureToFile_BadPath(t *testing.T) {
	c := New(&fakeGrabber{})
	path := filepath.Join(t.TempDir(), "missing-dir", "x.png")

	if _, _, err := c.CaptureToFile(Region{Width: 10, Height: 10}, path); err == nil {
		t.Error("CaptureToFile should fail when the directory does not exist")
	}
}
