package render

import (
	"image/color"
	"strings"
	"testing"

	"github.com/atharva-patil-create/discharge-summary-generator/constants"
)

func TestCaptureDimensions(t *testing.T) {
	r, err := NewRasterizer(nil, nil)
	if err != nil {
		t.Fatalf("NewRasterizer returned error: %v", err)
	}

	img, err := r.Capture(samplePayload)
	if err != nil {
		t.Fatalf("Capture returned error: %v", err)
	}
	if img.PixelWidth != constants.CaptureWidthPx {
		t.Errorf("PixelWidth = %d, want %d", img.PixelWidth, constants.CaptureWidthPx)
	}
	if img.PixelHeight <= 0 {
		t.Errorf("PixelHeight = %d, want > 0", img.PixelHeight)
	}
	if img.Bitmap == nil {
		t.Fatal("Bitmap is nil")
	}
	b := img.Bitmap.Bounds()
	if b.Dx() != img.PixelWidth || b.Dy() != img.PixelHeight {
		t.Errorf("bitmap bounds %v disagree with declared %dx%d", b, img.PixelWidth, img.PixelHeight)
	}
}

func TestCaptureHeightGrowsWithContent(t *testing.T) {
	r, err := NewRasterizer(nil, nil)
	if err != nil {
		t.Fatalf("NewRasterizer returned error: %v", err)
	}

	short, err := r.Capture("one line")
	if err != nil {
		t.Fatalf("Capture returned error: %v", err)
	}
	tall, err := r.Capture(strings.Repeat("a line of discharge notes\n", 200))
	if err != nil {
		t.Fatalf("Capture returned error: %v", err)
	}
	if tall.PixelHeight <= short.PixelHeight {
		t.Errorf("tall capture height %d not greater than short %d", tall.PixelHeight, short.PixelHeight)
	}
}

func TestCaptureDrawsInk(t *testing.T) {
	r, err := NewRasterizer(nil, nil)
	if err != nil {
		t.Fatalf("NewRasterizer returned error: %v", err)
	}
	img, err := r.Capture("Diagnosis: community acquired pneumonia")
	if err != nil {
		t.Fatalf("Capture returned error: %v", err)
	}

	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	inked := false
	b := img.Bitmap.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !inked; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if color.RGBAModel.Convert(img.Bitmap.At(x, y)) != white {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Error("capture of non-empty payload produced a fully white bitmap")
	}
}

func TestCaptureConfigOverride(t *testing.T) {
	cfg := CaptureConfig{
		RoleHeader: {Color: color.RGBA{A: 0xFF}, Bold: true, SizePt: 30, Centered: true},
	}
	r, err := NewRasterizer(cfg, nil)
	if err != nil {
		t.Fatalf("NewRasterizer returned error: %v", err)
	}
	// Roles absent from the override fall back to defaults, so a plain body
	// payload still renders.
	if _, err := r.Capture("body text only"); err != nil {
		t.Fatalf("Capture returned error: %v", err)
	}
}
