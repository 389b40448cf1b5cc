package render

import (
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/atharva-patil-create/discharge-summary-generator/constants"
)

// captureDPI fixes the raster resolution. CaptureWidthPx at this DPI is
// close to A4 width, so a full-width page placement keeps text legible.
const captureDPI = 150

const marginPx = 60

// Rasterizer captures a payload into a fixed-width bitmap. Construction
// parses the fonts once; Capture itself is pure with respect to the
// rasterizer's state and holds no buffers between calls.
type Rasterizer struct {
	cfg    CaptureConfig
	faces  map[Role]font.Face
	logger *slog.Logger
}

func NewRasterizer(cfg CaptureConfig, logger *slog.Logger) (*Rasterizer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	merged := DefaultCaptureConfig()
	for role, st := range cfg {
		merged[role] = st
	}

	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}

	faces := make(map[Role]font.Face, len(merged))
	for role, st := range merged {
		src := regular
		if st.Bold {
			src = bold
		}
		face, err := opentype.NewFace(src, &opentype.FaceOptions{
			Size:    st.SizePt,
			DPI:     captureDPI,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("build face for role %d: %w", role, err)
		}
		faces[role] = face
	}

	return &Rasterizer{cfg: merged, faces: faces, logger: logger}, nil
}

type placedSeg struct {
	text string
	role Role
	x    int
}

type visualLine struct {
	segs     []placedSeg
	baseline int
}

// Capture flattens the payload, lays the lines out at the fixed capture
// width, and draws them onto a white bitmap whose height follows the content.
func (r *Rasterizer) Capture(payload string) (CapturedImage, error) {
	start := time.Now()

	lines, dropped, err := Flatten(payload)
	if err != nil {
		return CapturedImage{}, err
	}
	if len(dropped) > 0 {
		r.logger.Warn("render.capture.sanitized", "dropped", dropped)
	}

	vis, height := r.layout(lines)

	img := image.NewRGBA(image.Rect(0, 0, constants.CaptureWidthPx, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	for _, vl := range vis {
		for _, ps := range vl.segs {
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(r.cfg[ps.role].Color),
				Face: r.faces[ps.role],
				Dot:  fixed.P(marginPx+ps.x, vl.baseline),
			}
			d.DrawString(ps.text)
		}
	}

	r.logger.Info("render.capture.ok",
		"lines", len(lines),
		"width_px", constants.CaptureWidthPx,
		"height_px", height,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return CapturedImage{
		PixelWidth:  constants.CaptureWidthPx,
		PixelHeight: height,
		Bitmap:      img,
	}, nil
}

// layout wraps lines at the content width and assigns baselines. Returned
// height includes the top and bottom margins.
func (r *Rasterizer) layout(lines []Line) ([]visualLine, int) {
	maxW := constants.CaptureWidthPx - 2*marginPx
	y := marginPx
	var vis []visualLine

	for _, ln := range lines {
		st := r.cfg[ln.Role]
		metrics := r.faces[ln.Role].Metrics()
		lineH := metrics.Height.Ceil()
		ascent := metrics.Ascent.Ceil()

		y += st.LeadPx
		if strings.TrimSpace(ln.Text()) == "" {
			y += lineH
			continue
		}

		indent := st.IndentPx
		x := indent
		var segs []placedSeg
		flush := func() {
			if st.Centered {
				shift := (maxW - x) / 2
				for i := range segs {
					segs[i].x += shift
				}
			}
			vis = append(vis, visualLine{segs: segs, baseline: y + ascent})
			y += lineH
			segs = nil
			x = indent
		}

		for _, seg := range ln.Segments {
			face := r.faces[seg.Role]
			for _, word := range strings.SplitAfter(seg.Text, " ") {
				if word == "" {
					continue
				}
				w := font.MeasureString(face, word).Ceil()
				if x > indent && x+w > maxW {
					flush()
				}
				segs = append(segs, placedSeg{text: word, role: seg.Role, x: x})
				x += w
			}
		}
		if len(segs) > 0 {
			flush()
		}
	}

	return vis, y + marginPx
}
