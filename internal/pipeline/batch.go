package pipeline

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ironsheep/rtt/internal/detection"
	"github.com/ironsheep/rtt/internal/imaging"
	"github.com/ironsheep/rtt/internal/logger"
	"github.com/ironsheep/rtt/internal/ocr"
	"github.com/ironsheep/rtt/internal/results"
	"github.com/ironsheep/rtt/internal/translate"
	"github.com/rs/zerolog"
)

// BlockFinder locates the main text block of an image.
type BlockFinder interface {
	FindTextBlock(img image.Image) (detection.Block, error)
}

// BatchConfig tunes batch processing.
type BatchConfig struct {
	HeaderCrop    int
	Extensions    []string
	ThumbnailSize int
	// OutputDir receives thumbnails of each image and its block. Empty
	// disables thumbnail output.
	OutputDir string
	Source    string
}

// ImageResult is the outcome for one image.
type ImageResult struct {
	Path        string          `json:"path"`
	Block       detection.Block `json:"block"`
	Text        string          `json:"text"`
	Translation string          `json:"translation"`
	// Error holds the load, detection or OCR failure, if any.
	Error          string `json:"error,omitempty"`
	OriginalThumb  string `json:"original_thumb,omitempty"`
	BlockThumb     string `json:"block_thumb,omitempty"`
	TranslateError bool   `json:"translate_error,omitempty"`
}

// BatchResult is the outcome of a batch run.
type BatchResult struct {
	Target string         `json:"target"`
	Images []ImageResult  `json:"images"`
	Table  *results.Table `json:"table"`
}

// Batch runs detection, OCR and translation over static images.
type Batch struct {
	finder     BlockFinder
	engine     ocr.Engine
	translator translate.Translator
	cfg        BatchConfig
	log        zerolog.Logger
}

// NewBatch wires a batch pipeline.
func NewBatch(finder BlockFinder, engine ocr.Engine, translator translate.Translator, cfg BatchConfig) *Batch {
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = []string{".png", ".jpg", ".jpeg"}
	}
	return &Batch{
		finder:     finder,
		engine:     engine,
		translator: translator,
		cfg:        cfg,
		log:        logger.WithComponent("batch"),
	}
}

// WithOutputDir returns a copy of b that writes thumbnails to dir.
func (b *Batch) WithOutputDir(dir string) *Batch {
	c := *b
	c.cfg.OutputDir = dir
	return &c
}

// Load lists the images in dir, sorted by name. The directory is created
// when it does not exist.
func (b *Batch) Load(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read image directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !imaging.HasImageExt(e.Name(), b.cfg.Extensions) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoImages, dir)
	}
	b.log.Info().Str("dir", dir).Int("images", len(paths)).Msg("loaded images")
	return paths, nil
}

// Process handles every path in order. Per-image failures are recorded in
// the image's row; only cancellation stops the run.
func (b *Batch) Process(ctx context.Context, paths []string, target string) (*BatchResult, error) {
	if b.cfg.OutputDir != "" {
		if err := os.MkdirAll(b.cfg.OutputDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	out := &BatchResult{Target: target, Images: make([]ImageResult, 0, len(paths))}
	rows := make([]results.BatchRow, 0, len(paths))

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res := b.processOne(ctx, path, target)
		out.Images = append(out.Images, res)
		rows = append(rows, batchRow(res))
	}

	out.Table = results.NewBatchTable(rows)
	return out, nil
}

func (b *Batch) processOne(ctx context.Context, path, target string) ImageResult {
	res := ImageResult{Path: path}
	log := b.log.With().Str("image", path).Logger()

	img, err := imaging.Open(path)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load image")
		res.Text = TextLoadError
		res.Error = err.Error()
		return res
	}

	img, err = imaging.StripHeader(img, b.cfg.HeaderCrop)
	if err != nil {
		log.Warn().Err(err).Msg("failed to strip header")
		res.Text = TextLoadError
		res.Error = err.Error()
		return res
	}

	block, err := b.finder.FindTextBlock(img)
	if err != nil {
		log.Warn().Err(err).Msg("text block detection failed")
		res.Text = err.Error()
		res.Error = err.Error()
		return res
	}
	res.Block = block

	blockImg := img
	if block.Found {
		if blockImg, err = imaging.Crop(img, block.Bounds); err != nil {
			res.Text = err.Error()
			res.Error = err.Error()
			return res
		}
	}

	b.writeThumbnails(&res, img, blockImg)

	if !block.Found {
		log.Debug().Msg("no contours found")
		res.Text = TextNotFound
		return res
	}

	ocrRes, err := b.engine.Recognize(ctx, blockImg)
	if err != nil {
		log.Warn().Err(err).Msg("OCR failed")
		res.Text = err.Error()
		res.Error = err.Error()
		return res
	}
	res.Text = strings.TrimSpace(ocrRes.Text)

	translated, err := b.translator.Translate(ctx, translate.Request{
		Text:   res.Text,
		Source: b.cfg.Source,
		Target: target,
	})
	if err != nil {
		log.Warn().Err(err).Msg("translation failed")
		res.Translation = translationCell(err)
		res.TranslateError = true
		return res
	}
	res.Translation = translated

	log.Debug().
		Interface("bounds", block.Bounds).
		Float64("area", block.Area).
		Msg("processed image")
	return res
}

// writeThumbnails saves scaled copies of the image and its block. Failures
// are logged and leave the thumbnail fields empty.
func (b *Batch) writeThumbnails(res *ImageResult, img, blockImg image.Image) {
	if b.cfg.OutputDir == "" {
		return
	}

	base := strings.TrimSuffix(filepath.Base(res.Path), filepath.Ext(res.Path))
	orig := filepath.Join(b.cfg.OutputDir, base+"_original.png")
	blk := filepath.Join(b.cfg.OutputDir, base+"_block.png")

	if err := imaging.Save(imaging.Thumbnail(img, b.cfg.ThumbnailSize), orig); err != nil {
		b.log.Warn().Err(err).Str("path", orig).Msg("failed to save thumbnail")
	} else {
		res.OriginalThumb = orig
	}
	if err := imaging.Save(imaging.Thumbnail(blockImg, b.cfg.ThumbnailSize), blk); err != nil {
		b.log.Warn().Err(err).Str("path", blk).Msg("failed to save thumbnail")
	} else {
		res.BlockThumb = blk
	}
}

func batchRow(res ImageResult) results.BatchRow {
	original := res.Path
	if res.OriginalThumb != "" {
		original = res.OriginalThumb
	}

	block := ""
	switch {
	case res.BlockThumb != "":
		block = res.BlockThumb
	case res.Block.Found:
		r := res.Block.Bounds
		block = fmt.Sprintf("%dx%d at (%d,%d)", r.Dx(), r.Dy(), r.Min.X, r.Min.Y)
	}

	return results.BatchRow{
		Image:       original,
		Block:       block,
		Text:        res.Text,
		Translation: res.Translation,
	}
}
