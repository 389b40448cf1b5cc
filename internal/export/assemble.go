package export

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"

	"github.com/go-pdf/fpdf"
)

// ErrEmptyDocument is returned when assembly is asked to produce a document
// with no pages. Failing loudly beats silently emitting a corrupt file.
var ErrEmptyDocument = errors.New("no page placements to assemble")

// Assemble builds the PDF: one physical page per placement, the full scaled
// image drawn at (0, offset) and clipped to the page bounds. Placement order
// is page order.
func Assemble(placements []PagePlacement, geom PageGeometry) ([]byte, error) {
	if len(placements) == 0 {
		return nil, fmt.Errorf("assemble: %w", ErrEmptyDocument)
	}
	if geom.WidthUnits <= 0 || geom.HeightUnits <= 0 {
		return nil, fmt.Errorf("assemble: %w", ErrInvalidGeometry)
	}

	// All placements share one source capture; encode and register it once.
	src := placements[0].Source
	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, src.Bitmap); err != nil {
		return nil, fmt.Errorf("assemble: encode capture: %w", err)
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: geom.WidthUnits, Ht: geom.HeightUnits},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	opts := fpdf.ImageOptions{ImageType: "PNG", AllowNegativePosition: true}
	pdf.RegisterImageOptionsReader("capture", opts, &pngBuf)

	for _, p := range placements {
		pdf.AddPage()
		pdf.ClipRect(0, 0, geom.WidthUnits, geom.HeightUnits, false)
		pdf.ImageOptions("capture", 0, p.VerticalOffsetUnits, geom.WidthUnits, 0, false, opts, 0, "")
		pdf.ClipEnd()
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("assemble: write pdf: %w", err)
	}
	return out.Bytes(), nil
}
