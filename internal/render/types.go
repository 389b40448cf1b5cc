// Package render turns the extraction service's HTML-ish payload into a
// raster image suitable for pagination. Markup is honored only through an
// element allow-list; everything else is flattened to text, which doubles as
// the sanitization boundary for untrusted service output.
package render

import (
	"image"
	"image/color"
)

// Role classifies a piece of payload content for styling purposes.
type Role int

const (
	RoleBody Role = iota
	RoleHeader
	RoleLabel
	RoleBullet
)

// Segment is a run of text with a single style within a line.
type Segment struct {
	Text string
	Role Role
}

// Line is one logical line of flattened payload content.
type Line struct {
	Role     Role
	Segments []Segment
}

// Text returns the concatenated segment text.
func (l Line) Text() string {
	var s string
	for _, seg := range l.Segments {
		s += seg.Text
	}
	return s
}

// CapturedImage is a rasterized snapshot of the rendered payload.
type CapturedImage struct {
	PixelWidth  int
	PixelHeight int
	Bitmap      image.Image
}

// Style describes how one role is drawn.
type Style struct {
	Color    color.RGBA
	Bold     bool
	SizePt   float64
	Centered bool
	LeadPx   int // extra vertical space above a line of this role
	IndentPx int
}

// CaptureConfig maps content roles to styles. Passing the whole mapping into
// the rasterizer keeps styling declarative instead of being patched in at
// call sites.
type CaptureConfig map[Role]Style

var medicalGreen = color.RGBA{R: 0x2E, G: 0x7D, B: 0x32, A: 0xFF}

// DefaultCaptureConfig mirrors the styling the service is prompted to emit:
// a centered green header and green field labels over plain body text.
func DefaultCaptureConfig() CaptureConfig {
	return CaptureConfig{
		RoleHeader: {Color: medicalGreen, Bold: true, SizePt: 20, Centered: true, LeadPx: 16},
		RoleLabel:  {Color: medicalGreen, Bold: true, SizePt: 12},
		RoleBody:   {Color: color.RGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xFF}, SizePt: 12},
		RoleBullet: {Color: color.RGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xFF}, SizePt: 12, IndentPx: 28},
	}
}
