package ocr

import (
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/ironsheep/rtt/internal/imaging"
	"github.com/otiai10/gosseract/v2"
)

// DefaultLanguages is the language set used when none is configured.
var DefaultLanguages = []string{"rus", "eng"}

// Bounds represents a rectangular bounding box in pixel coordinates.
type Bounds struct {
	X1 int `json:"x1"` // Left edge
	Y1 int `json:"y1"` // Top edge
	X2 int `json:"x2"` // Right edge
	Y2 int `json:"y2"` // Bottom edge
}

// TextRegion is a recognized word with its location and confidence.
type TextRegion struct {
	Text string `json:"text"`

	// Confidence is the OCR confidence score (0.0 to 1.0).
	Confidence float64 `json:"confidence"`

	Bounds Bounds `json:"bounds"`
}

// Result is the outcome of recognizing one image.
type Result struct {
	// Text is the recognized text, trimmed of surrounding whitespace.
	Text string `json:"text"`

	// Regions contains individual words. May be empty even when Text is not.
	Regions []TextRegion `json:"regions"`
}

// Engine recognizes text in images.
type Engine interface {
	Recognize(ctx context.Context, img image.Image) (*Result, error)
}

// Options configures a Tesseract engine.
type Options struct {
	Languages      []string
	TessdataPrefix string
	// PageSegMode is a Tesseract page segmentation mode; zero keeps the
	// engine default.
	PageSegMode int
}

// Tesseract is an Engine backed by a local Tesseract installation. Each
// call creates its own client, so a Tesseract value is safe for
// concurrent use.
type Tesseract struct {
	opts Options
}

// NewTesseract returns an engine with opts, filling in DefaultLanguages.
func NewTesseract(opts Options) *Tesseract {
	if len(opts.Languages) == 0 {
		opts.Languages = DefaultLanguages
	}
	return &Tesseract{opts: opts}
}

// Languages returns the configured language codes.
func (t *Tesseract) Languages() []string {
	return t.opts.Languages
}

// LanguageSpec returns the languages joined the way Tesseract writes
// them, e.g. "rus+eng".
func (t *Tesseract) LanguageSpec() string {
	return strings.Join(t.opts.Languages, "+")
}

// Recognize runs OCR over img.
func (t *Tesseract) Recognize(ctx context.Context, img image.Image) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, wrap("recognize", fmt.Errorf("%w: %v", ErrCanceled, err))
	}

	data, err := imaging.EncodePNG(img)
	if err != nil {
		return nil, wrap("encode image", err)
	}

	client, err := t.newClient()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	if err := client.SetImageFromBytes(data); err != nil {
		return nil, wrap("set image", err)
	}
	return recognize(client)
}

func (t *Tesseract) newClient() (*gosseract.Client, error) {
	client := gosseract.NewClient()

	if t.opts.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(t.opts.TessdataPrefix); err != nil {
			client.Close()
			return nil, wrap("set tessdata path", err)
		}
	}
	if err := client.SetLanguage(t.opts.Languages...); err != nil {
		client.Close()
		return nil, wrap("set language", err)
	}
	if t.opts.PageSegMode > 0 {
		if err := client.SetPageSegMode(gosseract.PageSegMode(t.opts.PageSegMode)); err != nil {
			client.Close()
			return nil, wrap("set page segmentation mode", err)
		}
	}
	return client, nil
}

func recognize(client *gosseract.Client) (*Result, error) {
	text, err := client.Text()
	if err != nil {
		return nil, wrap("recognize", err)
	}

	result := &Result{
		Text:    strings.TrimSpace(text),
		Regions: []TextRegion{},
	}

	// Word boxes are best effort
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return result, nil
	}
	for _, box := range boxes {
		if box.Word == "" {
			continue
		}
		result.Regions = append(result.Regions, TextRegion{
			Text:       box.Word,
			Confidence: float64(box.Confidence) / 100.0,
			Bounds: Bounds{
				X1: box.Box.Min.X,
				Y1: box.Box.Min.Y,
				X2: box.Box.Max.X,
				Y2: box.Box.Max.Y,
			},
		})
	}
	return result, nil
}

// Info describes the OCR subsystem.
type Info struct {
	Available bool     `json:"available"`
	Version   string   `json:"version,omitempty"`
	Languages []string `json:"languages"`
	// LanguageSpec is Languages in Tesseract's "rus+eng" form.
	LanguageSpec string `json:"language_spec"`
	Backend      string `json:"backend"`
}

// Info reports the Tesseract version and configured languages.
func (t *Tesseract) Info() Info {
	client := gosseract.NewClient()
	defer client.Close()

	version := client.Version()
	return Info{
		Available:    version != "",
		Version:      version,
		Languages:    t.Languages(),
		LanguageSpec: t.LanguageSpec(),
		Backend:      "gosseract",
	}
}
