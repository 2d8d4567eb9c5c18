package server

import (
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/rtt/internal/capture"
	"github.com/ironsheep/rtt/internal/detection"
	"github.com/ironsheep/rtt/internal/ocr"
	"github.com/ironsheep/rtt/internal/pipeline"
	"github.com/ironsheep/rtt/internal/translate"
	"github.com/ironsheep/rtt/internal/window"
)

type fakeBackend struct {
	windows []window.Info
}

func (f *fakeBackend) Windows() ([]window.Info, error) {
	return f.windows, nil
}

func (f *fakeBackend) Activate(w window.Info) error {
	return nil
}

type fakeGrabber struct{}

func (f *fakeGrabber) Grab(r capture.Region) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	return img, nil
}

type fakeEngine struct {
	text   string
	err    error
	bounds []image.Rectangle
}

func (f *fakeEngine) Recognize(ctx context.Context, img image.Image) (*ocr.Result, error) {
	f.bounds = append(f.bounds, img.Bounds())
	if f.err != nil {
		return nil, f.err
	}
	return &ocr.Result{Text: f.text, Regions: []ocr.TextRegion{}}, nil
}

type fakeTranslator struct {
	err      error
	requests []translate.Request
}

func (f *fakeTranslator) Translate(ctx context.Context, req translate.Request) (string, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	return "[" + req.Target + "] " + req.Text, nil
}

func (f *fakeTranslator) Name() string { return "fake" }

type fakeFinder struct {
	block detection.Block
}

func (f *fakeFinder) FindTextBlock(img image.Image) (detection.Block, error) {
	b := f.block
	if !b.Found {
		b.Bounds = img.Bounds()
	}
	return b, nil
}

type fixture struct {
	srv        *Server
	engine     *fakeEngine
	translator *fakeTranslator
	finder     *fakeFinder
	backend    *fakeBackend
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		engine:     &fakeEngine{text: "Привет\nМир"},
		translator: &fakeTranslator{},
		finder: &fakeFinder{block: detection.Block{
			Bounds: image.Rect(10, 10, 60, 40),
			Area:   1200,
			Found:  true,
		}},
		backend: &fakeBackend{windows: []window.Info{
			{Title: "Game", PID: 7, Left: 0, Top: 0, Width: 200, Height: 150},
			{Title: "  ", PID: 8, Width: 10, Height: 10},
		}},
	}

	windows := window.NewManager(f.backend)
	live := pipeline.NewLive(windows, capture.New(&fakeGrabber{}), f.engine, f.translator, pipeline.LiveConfig{
		HeaderCrop:     30,
		ScreenshotPath: filepath.Join(t.TempDir(), "screenshot.png"),
	})
	batch := pipeline.NewBatch(f.finder, f.engine, f.translator, pipeline.BatchConfig{
		HeaderCrop:    30,
		ThumbnailSize: 50,
	})

	f.srv = New(Options{
		Windows:    windows,
		Live:       live,
		Batch:      batch,
		Finder:     f.finder,
		Engine:     f.engine,
		Translator: f.translator,
		HeaderCrop: 30,
		Source:     "auto",
		Version:    "test",
	})
	return f
}

// createTestImageFile writes a solid-color PNG into a temp dir and returns its path
func createTestImageFile(t *testing.T, dir string, width, height int, c color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	tmpFile, err := os.CreateTemp(dir, "handler-test-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer tmpFile.Close()

	if err := png.Encode(tmpFile, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return tmpFile.Name()
}

func callTool(t *testing.T, s *Server, name string, args map[string]interface{}) *MCPResponse {
	t.Helper()

	params := map[string]interface{}{
		"name":      name,
		"arguments": args,
	}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("failed to marshal params: %v", err)
	}

	resp := s.handleRequest(context.Background(), &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  paramsJSON,
	})
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	return resp
}

// decodeContent unmarshals the text content of a successful tool response into v.
func decodeContent(t *testing.T, resp *MCPResponse, v interface{}) {
	t.Helper()

	if resp.Error != nil {
		t.Fatalf("Unexpected error: %+v", resp.Error)
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("Result should be a map, got %T", resp.Result)
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) != 1 {
		t.Fatalf("content: got %#v", result["content"])
	}
	text, ok := content[0]["text"].(string)
	if !ok {
		t.Fatalf("content text should be a string, got %T", content[0]["text"])
	}
	if err := json.Unmarshal([]byte(text), v); err != nil {
		t.Fatalf("failed to decode content: %v\n%s", err, text)
	}
}
