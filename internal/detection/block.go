package detection

import (
	"fmt"
	"image"

	"github.com/ironsheep/rtt/internal/imaging"
	"gocv.io/x/gocv"
)

// DefaultThreshold is the gray level above which pixels count as background.
const DefaultThreshold = 150

// Block is the detected text block.
type Block struct {
	// Bounds is the bounding rectangle of the largest contour, or the
	// whole image when Found is false.
	Bounds image.Rectangle `json:"bounds"`

	// Area is the contour area (not the bounding rectangle area).
	Area float64 `json:"area"`

	// Found reports whether any contour was detected.
	Found bool `json:"found"`

	// Contours is the number of external contours traced.
	Contours int `json:"contours"`
}

// Detector finds text blocks with a fixed threshold.
type Detector struct {
	threshold int
}

// NewDetector returns a Detector. A threshold outside 0..255 falls back
// to DefaultThreshold.
func NewDetector(threshold int) *Detector {
	if threshold < 0 || threshold > 255 {
		threshold = DefaultThreshold
	}
	return &Detector{threshold: threshold}
}

// FindTextBlock returns the bounding box of the largest dark region in img.
func (d *Detector) FindTextBlock(img image.Image) (Block, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return Block{}, fmt.Errorf("cannot detect text in an empty image")
	}

	mask := imaging.BinarizeInverted(imaging.Grayscale(img), d.threshold)

	mat, err := gocv.ImageGrayToMatGray(mask)
	if err != nil {
		return Block{}, fmt.Errorf("failed to convert mask: %w", err)
	}
	defer mat.Close()

	contours := gocv.FindContours(mat, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	candidates := make([]candidate, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		pv := contours.At(i)
		candidates = append(candidates, candidate{
			area: gocv.ContourArea(pv),
			rect: gocv.BoundingRect(pv),
		})
	}

	best, ok := largest(candidates)
	if !ok {
		return Block{Bounds: bounds, Found: false}, nil
	}

	return Block{
		Bounds:   best.rect.Add(bounds.Min).Intersect(bounds),
		Area:     best.area,
		Found:    true,
		Contours: len(candidates),
	}, nil
}

type candidate struct {
	area float64
	rect image.Rectangle
}

// largest returns the candidate with the greatest area. Ties keep the
// earliest candidate.
func largest(cs []candidate) (candidate, bool) {
	if len(cs) == 0 {
		return candidate{}, false
	}
	best := cs[0]
	for _, c := range cs[1:] {
		if c.area > best.area {
			best = c
		}
	}
	return best, true
}
