package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func targetProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Target language code (e.g., \"en\") or label (e.g., \"Английский (en)\")",
	}
}

func stripHeaderProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "boolean",
		"description": "Drop the window title bar before processing. Default true",
		"default":     true,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Windows and live capture
		{
			Name:        "rtt_list_windows",
			Description: "List visible windows with their titles and screen geometry. Use a returned title with rtt_capture_translate.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "rtt_capture_translate",
			Description: "Bring a window to the front, capture it, recognize its text (Russian and English) and translate it. Returns the original and translated text as line pairs.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"title": map[string]interface{}{
						"type":        "string",
						"description": "Exact window title as returned by rtt_list_windows",
					},
					"target": targetProperty(),
				},
				"required": []string{"title", "target"},
			},
		},

		// Static images
		{
			Name:        "rtt_ocr_image",
			Description: "Recognize text in an image file. The image is converted to grayscale before OCR.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":         pathProperty(),
					"strip_header": stripHeaderProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "rtt_detect_text_block",
			Description: "Find the bounding box of the largest dark region in an image, a heuristic for its main block of text.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":         pathProperty(),
					"strip_header": stripHeaderProperty(),
					"include_image": map[string]interface{}{
						"type":        "boolean",
						"description": "Return the cropped block as base64-encoded PNG. Default false",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "rtt_batch_process",
			Description: "Detect the text block, recognize and translate every PNG/JPEG image in a directory. Per-image failures are reported in that image's row.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"dir": map[string]interface{}{
						"type":        "string",
						"description": "Directory of images. Defaults to the configured batch directory",
					},
					"target": targetProperty(),
					"output_dir": map[string]interface{}{
						"type":        "string",
						"description": "Optional directory for thumbnails of each image and its detected block",
					},
				},
				"required": []string{"target"},
			},
		},

		// Text and reference
		{
			Name:        "rtt_translate_text",
			Description: "Translate text into the target language.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"text": map[string]interface{}{
						"type":        "string",
						"description": "Text to translate (at most 5000 characters)",
					},
					"target": targetProperty(),
					"source": map[string]interface{}{
						"type":        "string",
						"description": "Source language code. Default \"auto\"",
						"default":     "auto",
					},
				},
				"required": []string{"text", "target"},
			},
		},
		{
			Name:        "rtt_languages",
			Description: "List the supported target languages.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "rtt_ocr_info",
			Description: "Report whether the OCR engine is available, its version and configured languages.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
