// Package ocr extracts text from images with the Tesseract engine.
//
// This package wraps Tesseract (via gosseract/v2). The pipeline talks to
// the Engine interface; Tesseract is the production implementation and
// tests substitute their own.
//
// # Prerequisites
//
// Tesseract and its language data must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-rus
//   - macOS: brew install tesseract tesseract-lang
//   - Windows: https://github.com/UB-Mannheim/tesseract/wiki
//
// A non-default tessdata directory can be given through TessdataPrefix.
//
// # Languages
//
// The default language set is Russian plus English ("rus+eng"), which
// lets a single pass read mixed Cyrillic and Latin text. Any installed
// Tesseract codes may be configured instead.
//
// # Results
//
// Result.Text is the recognized text with leading and trailing whitespace
// removed; an empty string means nothing was recognized. Word regions are
// collected on a best-effort basis: if bounding box extraction fails the
// text is still returned with an empty Regions slice.
//
// # Error Handling
//
// Engine failures are returned as *Error, whose message starts with
// "OCR error" and which unwraps to the underlying cause.
package ocr
