// Package server exposes the capture, OCR and translation pipeline as MCP
// (Model Context Protocol) tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// Logs go to stderr; stdout carries only protocol messages.
//
// # Available Tools
//
// Windows and live capture:
//   - rtt_list_windows: Titles and geometry of visible windows
//   - rtt_capture_translate: Capture a window, OCR it and translate the text
//
// Static images:
//   - rtt_ocr_image: Recognize text in an image file
//   - rtt_detect_text_block: Locate the largest text block in an image
//   - rtt_batch_process: Detect, recognize and translate every image in a directory
//
// Text and reference:
//   - rtt_translate_text: Translate a string
//   - rtt_languages: Supported target languages
//   - rtt_ocr_info: OCR engine availability and version
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string, which starts with "OCR error",
//     "translation error" or "window not found" for those failures
package server
