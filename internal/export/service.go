package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/atharva-patil-create/discharge-summary-generator/constants"
	"github.com/atharva-patil-create/discharge-summary-generator/internal/render"
)

// A4 is the fixed geometry for exported documents.
var A4 = PageGeometry{WidthUnits: constants.PageWidthMM, HeightUnits: constants.PageHeightMM}

// Filename names the export artifact for a given day.
func Filename(t time.Time) string {
	return "medical_record_" + t.Format("2006-01-02") + ".pdf"
}

// Service runs export jobs: capture the payload, paginate the capture,
// assemble the document. A job is transient; the capture buffer lives only
// for the duration of the call on both success and failure paths.
type Service struct {
	rasterizer *render.Rasterizer
	geom       PageGeometry
	logger     *slog.Logger
}

func NewService(r *render.Rasterizer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{rasterizer: r, geom: A4, logger: logger}
}

// ExportPDF produces the document bytes and the artifact filename for a
// payload. Failures are typed per stage and nothing is retried; the caller
// may simply run another job.
func (s *Service) ExportPDF(ctx context.Context, payload string) ([]byte, string, error) {
	jobID := uuid.New().String()
	start := time.Now()

	img, err := s.rasterizer.Capture(payload)
	if err != nil {
		s.logger.Error("export.pdf.capture_failed", "job_id", jobID, "error", err)
		return nil, "", fmt.Errorf("capture: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	placements, err := Paginate(img, s.geom)
	if err != nil {
		s.logger.Error("export.pdf.paginate_failed", "job_id", jobID, "error", err)
		return nil, "", err
	}

	doc, err := Assemble(placements, s.geom)
	if err != nil {
		s.logger.Error("export.pdf.assemble_failed", "job_id", jobID, "error", err)
		return nil, "", err
	}

	name := Filename(time.Now())
	s.logger.Info("export.pdf.ok",
		"job_id", jobID,
		"pages", len(placements),
		"capture_px", fmt.Sprintf("%dx%d", img.PixelWidth, img.PixelHeight),
		"bytes", len(doc),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return doc, name, nil
}

// WritePDF runs ExportPDF and writes the artifact into dir, returning the
// full path.
func (s *Service) WritePDF(ctx context.Context, payload, dir string) (string, error) {
	doc, name, err := s.ExportPDF(ctx, payload)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return "", fmt.Errorf("write artifact: %w", err)
	}
	return path, nil
}
