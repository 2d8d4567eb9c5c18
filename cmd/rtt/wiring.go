package main

import (
	"github.com/ironsheep/rtt/internal/capture"
	"github.com/ironsheep/rtt/internal/detection"
	"github.com/ironsheep/rtt/internal/ocr"
	"github.com/ironsheep/rtt/internal/pipeline"
	"github.com/ironsheep/rtt/internal/translate"
	"github.com/ironsheep/rtt/internal/window"
)

func (a *app) windows() *window.Manager {
	return window.NewManager(window.NewRobotgoBackend())
}

func (a *app) engine() *ocr.Tesseract {
	return ocr.NewTesseract(ocr.Options{
		Languages:      a.cfg.OCR.Languages,
		TessdataPrefix: a.cfg.OCR.TessdataPrefix,
		PageSegMode:    a.cfg.OCR.PageSegMode,
	})
}

func (a *app) translator() (translate.Translator, error) {
	return translate.New(translate.Options{
		Provider: a.cfg.Translate.Provider,
		Endpoint: a.cfg.Translate.Endpoint,
		APIKey:   a.cfg.Translate.APIKey,
		Timeout:  a.cfg.Translate.Timeout,
	})
}

func (a *app) detector() *detection.Detector {
	return detection.NewDetector(a.cfg.Detection.Threshold)
}

func (a *app) live(windows *window.Manager, engine ocr.Engine, tr translate.Translator) *pipeline.Live {
	return pipeline.NewLive(windows, capture.New(capture.NewScreenGrabber()), engine, tr, pipeline.LiveConfig{
		HeaderCrop:     a.cfg.Capture.HeaderCrop,
		SettleDelay:    a.cfg.Capture.SettleDelay,
		ScreenshotPath: a.cfg.Capture.ScreenshotPath,
		Contrast:       a.cfg.OCR.Contrast,
		Source:         a.cfg.Translate.Source,
	})
}

func (a *app) batch(engine ocr.Engine, tr translate.Translator, outDir string) *pipeline.Batch {
	return pipeline.NewBatch(a.detector(), engine, tr, pipeline.BatchConfig{
		HeaderCrop:    a.cfg.Capture.HeaderCrop,
		Extensions:    a.cfg.Batch.Extensions,
		ThumbnailSize: a.cfg.Batch.ThumbnailSize,
		OutputDir:     outDir,
		Source:        a.cfg.Translate.Source,
	})
}
