// Package export turns a captured summary image into downloadable artifacts:
// a paginated A4 PDF of the rendered payload and an XLSX workbook of the
// recovered fields.
package export

import (
	"errors"
	"fmt"
	"math"

	"github.com/atharva-patil-create/discharge-summary-generator/internal/render"
)

// ErrInvalidImage is returned when a captured image has no usable width.
var ErrInvalidImage = errors.New("captured image has non-positive width")

// ErrInvalidGeometry is returned for non-positive page dimensions.
var ErrInvalidGeometry = errors.New("page geometry has non-positive dimensions")

// PageGeometry is the fixed physical size of one output page, in millimeters.
type PageGeometry struct {
	WidthUnits  float64
	HeightUnits float64
}

// PagePlacement positions one page's window into the scaled source image.
// The full image is drawn at (0, VerticalOffsetUnits) and clipped to the
// page, so page i sees the vertical band [i*h, (i+1)*h) of the scaled image.
type PagePlacement struct {
	Source              render.CapturedImage
	VerticalOffsetUnits float64
}

// Paginate slices a captured image into page placements. The image is scaled
// to fill the page width exactly; the page count is the ceiling of the scaled
// height over the page height, never less than one, and an exact multiple of
// the page height yields no trailing blank page. Pure and deterministic.
func Paginate(img render.CapturedImage, geom PageGeometry) ([]PagePlacement, error) {
	if img.PixelWidth <= 0 {
		return nil, fmt.Errorf("paginate: %w", ErrInvalidImage)
	}
	if geom.WidthUnits <= 0 || geom.HeightUnits <= 0 {
		return nil, fmt.Errorf("paginate: %w", ErrInvalidGeometry)
	}

	scaledHeight := float64(img.PixelHeight) * geom.WidthUnits / float64(img.PixelWidth)
	pages := int(math.Ceil(scaledHeight / geom.HeightUnits))
	if pages < 1 {
		pages = 1
	}

	placements := make([]PagePlacement, pages)
	for i := range placements {
		placements[i] = PagePlacement{
			Source:              img,
			VerticalOffsetUnits: -float64(i) * geom.HeightUnits,
		}
	}
	return placements, nil
}

// ScaledHeightUnits reports the image height once scaled to the page width.
func ScaledHeightUnits(img render.CapturedImage, geom PageGeometry) float64 {
	if img.PixelWidth <= 0 {
		return 0
	}
	return float64(img.PixelHeight) * geom.WidthUnits / float64(img.PixelWidth)
}
