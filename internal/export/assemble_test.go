package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/atharva-patil-create/discharge-summary-generator/internal/render"
)

func testImage(w, h int) render.CapturedImage {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 0x40, A: 0xFF})
		}
	}
	return render.CapturedImage{PixelWidth: w, PixelHeight: h, Bitmap: img}
}

func TestAssembleEmptyFails(t *testing.T) {
	if _, err := Assemble(nil, A4); !errors.Is(err, ErrEmptyDocument) {
		t.Errorf("error = %v, want ErrEmptyDocument", err)
	}
}

func TestAssembleSinglePage(t *testing.T) {
	img := testImage(100, 80)
	placements, err := Paginate(img, A4)
	if err != nil {
		t.Fatalf("Paginate returned error: %v", err)
	}
	doc, err := Assemble(placements, A4)
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}
	if !bytes.HasPrefix(doc, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header")
	}
}

func TestAssemblePageCountFollowsPlacements(t *testing.T) {
	geom := PageGeometry{WidthUnits: 100, HeightUnits: 50}
	img := testImage(100, 480) // scaled height 480 units -> 10 pages of 50
	placements, err := Paginate(img, geom)
	if err != nil {
		t.Fatalf("Paginate returned error: %v", err)
	}
	if len(placements) != 10 {
		t.Fatalf("placements = %d, want 10", len(placements))
	}
	doc, err := Assemble(placements, geom)
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}
	if !bytes.Contains(doc, []byte(fmt.Sprintf("/Count %d", len(placements)))) {
		t.Errorf("document page count does not match %d placements", len(placements))
	}
}
