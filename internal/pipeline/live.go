package pipeline

import (
	"context"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/ironsheep/rtt/internal/capture"
	"github.com/ironsheep/rtt/internal/imaging"
	"github.com/ironsheep/rtt/internal/logger"
	"github.com/ironsheep/rtt/internal/ocr"
	"github.com/ironsheep/rtt/internal/results"
	"github.com/ironsheep/rtt/internal/translate"
	"github.com/ironsheep/rtt/internal/window"
	"github.com/rs/zerolog"
)

// LiveConfig tunes the live capture flow.
type LiveConfig struct {
	HeaderCrop     int
	SettleDelay    time.Duration
	ScreenshotPath string
	// Contrast is applied to the grayscale image before OCR when non-zero.
	Contrast float64
	Source   string
}

// LiveResult is the outcome of one capture.
type LiveResult struct {
	Window     window.Info    `json:"window"`
	Screenshot string         `json:"screenshot"`
	Target     string         `json:"target"`
	Original   string         `json:"original"`
	Translated string         `json:"translated"`
	Table      *results.Table `json:"table"`
}

// Live captures a window, recognizes its text and translates it.
type Live struct {
	windows    *window.Manager
	capturer   *capture.Capturer
	engine     ocr.Engine
	translator translate.Translator
	images     *imaging.ImageCache
	cfg        LiveConfig
	log        zerolog.Logger
}

// NewLive wires a live pipeline.
func NewLive(windows *window.Manager, capturer *capture.Capturer, engine ocr.Engine, translator translate.Translator, cfg LiveConfig) *Live {
	if cfg.ScreenshotPath == "" {
		cfg.ScreenshotPath = "screenshot.png"
	}
	return &Live{
		windows:    windows,
		capturer:   capturer,
		engine:     engine,
		translator: translator,
		images:     imaging.NewImageCache(),
		cfg:        cfg,
		log:        logger.WithComponent("live"),
	}
}

// Run performs one capture of the window titled title and translates the
// recognized text into target.
func (l *Live) Run(ctx context.Context, title, target string) (*LiveResult, error) {
	if title == "" {
		return nil, window.ErrNoWindowSelected
	}

	w, err := l.windows.Find(title)
	if err != nil {
		return nil, err
	}

	activated, err := l.windows.Activate(w.Title)
	if err != nil {
		return nil, err
	}
	if !activated {
		l.log.Warn().Str("window", w.Title).Msg("window disappeared before activation")
	}

	if err := sleep(ctx, l.cfg.SettleDelay); err != nil {
		return nil, err
	}

	region := capture.Region{Left: w.Left, Top: w.Top, Width: w.Width, Height: w.Height}
	path, _, err := l.capturer.CaptureToFile(region, l.cfg.ScreenshotPath)
	if err != nil {
		return nil, err
	}
	l.log.Debug().Str("path", path).Interface("region", region).Msg("captured window")

	text, err := l.recognize(ctx, path)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, ErrNoText
	}

	translated, err := l.translator.Translate(ctx, translate.Request{
		Text:   text,
		Source: l.cfg.Source,
		Target: target,
	})
	if err != nil {
		return nil, err
	}

	l.log.Info().
		Str("window", w.Title).
		Str("target", target).
		Int("lines", strings.Count(text, "\n")+1).
		Msg("translated capture")

	return &LiveResult{
		Window:     w,
		Screenshot: path,
		Target:     target,
		Original:   text,
		Translated: translated,
		Table:      results.NewLiveTable(text, translated),
	}, nil
}

// recognize loads the screenshot, strips the title bar and runs OCR on
// the grayscale image.
func (l *Live) recognize(ctx context.Context, path string) (string, error) {
	// The screenshot file is rewritten on every capture.
	l.images.Evict(path)
	img, err := l.images.Load(path)
	if err != nil {
		return "", &ocr.Error{Op: "load", Err: err}
	}

	var prepared image.Image
	prepared, err = imaging.StripHeader(img, l.cfg.HeaderCrop)
	if err != nil {
		return "", &ocr.Error{Op: "crop", Err: err}
	}
	prepared = imaging.Grayscale(prepared)
	if l.cfg.Contrast != 0 {
		prepared = imaging.Contrast(prepared, l.cfg.Contrast)
	}

	res, err := l.engine.Recognize(ctx, prepared)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(res.Text), nil
}

// Watch repeats Run every interval until ctx ends, handing each outcome
// to fn. Failed iterations are reported through fn and do not stop the
// loop.
func (l *Live) Watch(ctx context.Context, title, target string, interval time.Duration, fn func(*LiveResult, error)) error {
	if interval <= 0 {
		return fmt.Errorf("watch interval must be positive, got %v", interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		res, err := l.Run(ctx, title, target)
		if ctx.Err() != nil {
			return nil
		}
		fn(res, err)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
