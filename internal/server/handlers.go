package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"

	"github.com/ironsheep/rtt/internal/detection"
	"github.com/ironsheep/rtt/internal/imaging"
	"github.com/ironsheep/rtt/internal/language"
	"github.com/ironsheep/rtt/internal/ocr"
	"github.com/ironsheep/rtt/internal/translate"
	"github.com/ironsheep/rtt/internal/window"
)

// errNotConfigured is returned by tools whose backing component was not wired.
var errNotConfigured = errors.New("not configured")

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "rtt_ocr_image").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		s.log.Warn().Err(err).Str("tool", params.Name).Msg("tool failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Windows and live capture
	case "rtt_list_windows":
		return s.handleListWindows()
	case "rtt_capture_translate":
		return s.handleCaptureTranslate(ctx, args)

	// Static images
	case "rtt_ocr_image":
		return s.handleOCRImage(ctx, args)
	case "rtt_detect_text_block":
		return s.handleDetectTextBlock(args)
	case "rtt_batch_process":
		return s.handleBatchProcess(ctx, args)

	// Text and reference
	case "rtt_translate_text":
		return s.handleTranslateText(ctx, args)
	case "rtt_languages":
		return s.handleLanguages(), nil
	case "rtt_ocr_info":
		return s.handleOCRInfo()

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

func (s *Server) resolveTarget(target string) (language.Language, error) {
	return language.Resolve(s.opts.Languages, target)
}

// loadImage reads path through the cache and optionally strips the header.
func (s *Server) loadImage(path string, stripHeader bool) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("path is required")
	}
	img, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}
	if !stripHeader {
		return img, nil
	}
	return imaging.StripHeader(img, s.opts.HeaderCrop)
}

// boolOr returns *b, or def when the argument was omitted.
func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// === Window and Live Capture Handlers ===

type listWindowsResult struct {
	Windows []window.Info `json:"windows"`
	Count   int           `json:"count"`
}

func (s *Server) handleListWindows() (interface{}, error) {
	if s.opts.Windows == nil {
		return nil, fmt.Errorf("window manager %w", errNotConfigured)
	}
	windows, err := s.opts.Windows.List()
	if err != nil {
		return nil, err
	}
	return listWindowsResult{Windows: windows, Count: len(windows)}, nil
}

type captureTranslateArgs struct {
	Title  string `json:"title"`
	Target string `json:"target"`
}

func (s *Server) handleCaptureTranslate(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a captureTranslateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if s.opts.Live == nil {
		return nil, fmt.Errorf("live capture %w", errNotConfigured)
	}
	lang, err := s.resolveTarget(a.Target)
	if err != nil {
		return nil, err
	}
	return s.opts.Live.Run(ctx, a.Title, lang.Code)
}

// === Static Image Handlers ===

type ocrImageArgs struct {
	Path        string `json:"path"`
	StripHeader *bool  `json:"strip_header"`
}

type ocrImageResult struct {
	Path    string           `json:"path"`
	Width   int              `json:"width"`
	Height  int              `json:"height"`
	Text    string           `json:"text"`
	Regions []ocr.TextRegion `json:"regions"`
}

func (s *Server) handleOCRImage(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a ocrImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if s.opts.Engine == nil {
		return nil, fmt.Errorf("OCR engine %w", errNotConfigured)
	}

	img, err := s.loadImage(a.Path, boolOr(a.StripHeader, true))
	if err != nil {
		return nil, err
	}

	res, err := s.opts.Engine.Recognize(ctx, imaging.Grayscale(img))
	if err != nil {
		return nil, err
	}
	return ocrImageResult{
		Path:    a.Path,
		Width:   img.Bounds().Dx(),
		Height:  img.Bounds().Dy(),
		Text:    res.Text,
		Regions: res.Regions,
	}, nil
}

type detectTextBlockArgs struct {
	Path         string `json:"path"`
	StripHeader  *bool  `json:"strip_header"`
	IncludeImage bool   `json:"include_image"`
}

type detectTextBlockResult struct {
	Path  string          `json:"path"`
	Block detection.Block `json:"block"`
	// Image is the block crop as base64 PNG when requested.
	Image string `json:"image,omitempty"`
}

func (s *Server) handleDetectTextBlock(args json.RawMessage) (interface{}, error) {
	var a detectTextBlockArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if s.opts.Finder == nil {
		return nil, fmt.Errorf("text block detector %w", errNotConfigured)
	}

	img, err := s.loadImage(a.Path, boolOr(a.StripHeader, true))
	if err != nil {
		return nil, err
	}

	block, err := s.opts.Finder.FindTextBlock(img)
	if err != nil {
		return nil, err
	}

	result := detectTextBlockResult{Path: a.Path, Block: block}
	if a.IncludeImage && block.Found {
		crop, err := imaging.Crop(img, block.Bounds)
		if err != nil {
			return nil, err
		}
		if result.Image, err = imaging.EncodeBase64PNG(crop); err != nil {
			return nil, err
		}
	}
	return result, nil
}

type batchProcessArgs struct {
	Dir       string `json:"dir"`
	Target    string `json:"target"`
	OutputDir string `json:"output_dir"`
}

func (s *Server) handleBatchProcess(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a batchProcessArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if s.opts.Batch == nil {
		return nil, fmt.Errorf("batch processing %w", errNotConfigured)
	}
	if a.Dir == "" {
		a.Dir = s.opts.BatchDir
	}
	if a.Dir == "" {
		return nil, fmt.Errorf("dir is required")
	}

	lang, err := s.resolveTarget(a.Target)
	if err != nil {
		return nil, err
	}

	batch := s.opts.Batch
	if a.OutputDir != "" {
		batch = batch.WithOutputDir(a.OutputDir)
	}

	paths, err := batch.Load(a.Dir)
	if err != nil {
		return nil, err
	}
	return batch.Process(ctx, paths, lang.Code)
}

// === Text and Reference Handlers ===

type translateTextArgs struct {
	Text   string `json:"text"`
	Target string `json:"target"`
	Source string `json:"source"`
}

type translateTextResult struct {
	Text       string `json:"text"`
	Translated string `json:"translated"`
	Source     string `json:"source"`
	Target     string `json:"target"`
	Provider   string `json:"provider"`
}

func (s *Server) handleTranslateText(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a translateTextArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if s.opts.Translator == nil {
		return nil, fmt.Errorf("translator %w", errNotConfigured)
	}
	if a.Source == "" {
		a.Source = s.opts.Source
	}
	if a.Source == "" {
		a.Source = "auto"
	}

	lang, err := s.resolveTarget(a.Target)
	if err != nil {
		return nil, err
	}

	translated, err := s.opts.Translator.Translate(ctx, translate.Request{
		Text:   a.Text,
		Source: a.Source,
		Target: lang.Code,
	})
	if err != nil {
		return nil, err
	}
	return translateTextResult{
		Text:       a.Text,
		Translated: translated,
		Source:     a.Source,
		Target:     lang.Code,
		Provider:   s.opts.Translator.Name(),
	}, nil
}

type languageEntry struct {
	Name  string `json:"name"`
	Code  string `json:"code"`
	Label string `json:"label"`
}

type languagesResult struct {
	Languages []languageEntry `json:"languages"`
}

func (s *Server) handleLanguages() interface{} {
	entries := make([]languageEntry, len(s.opts.Languages))
	for i, l := range s.opts.Languages {
		entries[i] = languageEntry{Name: l.Name, Code: l.Code, Label: l.Label()}
	}
	return languagesResult{Languages: entries}
}

func (s *Server) handleOCRInfo() (interface{}, error) {
	if s.opts.OCRInfo == nil {
		return ocr.Info{Available: false, Languages: ocr.DefaultLanguages, Backend: "none"}, nil
	}
	return s.opts.OCRInfo(), nil
}
