package imaging

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/disintegration/imaging"
)

// Grayscale converts img to luminance, the form the OCR engine reads best.
func Grayscale(img image.Image) image.Image {
	return imaging.Grayscale(img)
}

// Contrast adjusts img contrast by change in the range -1..1. Zero
// returns img unchanged.
func Contrast(img image.Image, change float64) image.Image {
	if change == 0 {
		return img
	}
	return adjust.Contrast(img, change)
}

// BinarizeInverted produces a binary mask where pixels with luminance
// greater than threshold are 0 and all others are 255. Alpha is ignored,
// so a fully transparent pixel is judged by its color channels alone.
func BinarizeInverted(img image.Image, threshold int) *image.Gray {
	b := img.Bounds()
	mask := image.NewGray(rebase(b))

	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := mask.Pix[(y-b.Min.Y)*mask.Stride:]
		for x := b.Min.X; x < b.Max.X; x++ {
			if luminance(img.At(x, y)) <= threshold {
				row[x-b.Min.X] = 255
			}
		}
	}
	return mask
}

// luminance returns the rounded BT.601 luma of c's unpremultiplied color.
func luminance(c color.Color) int {
	switch c := c.(type) {
	case color.Gray:
		return int(c.Y)
	case color.NRGBA:
		return luma(c.R, c.G, c.B)
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return luma(n.R, n.G, n.B)
}

func luma(r, g, b uint8) int {
	return (299*int(r) + 587*int(g) + 114*int(b) + 500) / 1000
}

func rebase(r image.Rectangle) image.Rectangle {
	return image.Rect(0, 0, r.Dx(), r.Dy())
}
