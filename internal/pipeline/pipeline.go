// Package pipeline chains window capture, preprocessing, text detection,
// OCR and translation into the two flows rtt offers: a live capture of one
// window and a batch pass over a directory of images.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/ironsheep/rtt/internal/translate"
)

var (
	// ErrNoText is returned when OCR finds nothing in a live capture.
	ErrNoText = errors.New("no text recognized")

	// ErrNoImages is returned when a batch directory holds no images.
	ErrNoImages = errors.New("no images found")
)

// Row texts recorded by batch processing in place of recognized text.
const (
	TextLoadError = "image load error"
	TextNotFound  = "no text found"
)

// translationCell formats a translation failure for a batch row.
func translationCell(err error) string {
	if errors.Is(err, translate.ErrTranslation) {
		return err.Error()
	}
	return fmt.Sprintf("%s: %v", translate.ErrTranslation, err)
}
