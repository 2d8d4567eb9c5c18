package pipeline

import (
	"context"
	"errors"
	"image"
	"image/color"
	"sync"

	"github.com/ironsheep/rtt/internal/capture"
	"github.com/ironsheep/rtt/internal/detection"
	"github.com/ironsheep/rtt/internal/ocr"
	"github.com/ironsheep/rtt/internal/translate"
	"github.com/ironsheep/rtt/internal/window"
)

type fakeBackend struct {
	windows   []window.Info
	activated []string
}

func (f *fakeBackend) Windows() ([]window.Info, error) {
	return f.windows, nil
}

func (f *fakeBackend) Activate(w window.Info) error {
	f.activated = append(f.activated, w.Title)
	return nil
}

type fakeGrabber struct {
	regions []capture.Region
}

func (f *fakeGrabber) Grab(r capture.Region) (*image.RGBA, error) {
	f.regions = append(f.regions, r)
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	return img, nil
}

type fakeEngine struct {
	mu     sync.Mutex
	text   string
	err    error
	images []image.Image
}

func (f *fakeEngine) Recognize(ctx context.Context, img image.Image) (*ocr.Result, error) {
	f.mu.Lock()
	f.images = append(f.images, img)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &ocr.Result{Text: f.text}, nil
}

func (f *fakeEngine) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.images)
}

// fakeTranslator prefixes the target so tests can see which language was
// requested.
type fakeTranslator struct {
	mu       sync.Mutex
	err      error
	requests []translate.Request
}

func (f *fakeTranslator) Translate(ctx context.Context, req translate.Request) (string, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return "[" + req.Target + "] " + req.Text, nil
}

func (f *fakeTranslator) Name() string { return "fake" }

type fakeFinder struct {
	block detection.Block
	err   error
	seen  []image.Rectangle
}

func (f *fakeFinder) FindTextBlock(img image.Image) (detection.Block, error) {
	f.seen = append(f.seen, img.Bounds())
	if f.err != nil {
		return detection.Block{}, f.err
	}
	b := f.block
	if !b.Found {
		b.Bounds = img.Bounds()
	}
	return b, nil
}

var errBoom = errors.New("boom")
