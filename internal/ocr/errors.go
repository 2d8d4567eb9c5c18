package ocr

import (
	"errors"
	"fmt"
)

// ErrCanceled is returned when the context ends before recognition starts.
var ErrCanceled = errors.New("OCR processing was canceled")

// Error wraps an engine failure with the step that failed.
type Error struct {
	// Op is the step that failed (e.g., "set language", "recognize").
	Op string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("OCR error: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var ocrErr *Error
	if errors.As(err, &ocrErr) {
		return err
	}
	return &Error{Op: op, Err: err}
}
