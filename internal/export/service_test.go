package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/atharva-patil-create/discharge-summary-generator/internal/render"
	"github.com/atharva-patil-create/discharge-summary-generator/internal/summary"
)

const payload = `<h2 style="color: #2E7D32">Discharge Summary</h2>

1. <span style="color: #2E7D32">Admission Date</span>: 2024-01-10

15. <span style="color: #2E7D32">Discharge Medications</span>:
- Amoxicillin 500mg TID`

func newTestService(t *testing.T) *Service {
	t.Helper()
	r, err := render.NewRasterizer(nil, nil)
	if err != nil {
		t.Fatalf("NewRasterizer returned error: %v", err)
	}
	return NewService(r, nil)
}

func TestExportPDF(t *testing.T) {
	svc := newTestService(t)
	doc, name, err := svc.ExportPDF(context.Background(), payload)
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	if !bytes.HasPrefix(doc, []byte("%PDF-")) {
		t.Error("artifact is not a PDF")
	}
	if want := Filename(time.Now()); name != want {
		t.Errorf("filename = %q, want %q", name, want)
	}
	if ok, _ := regexp.MatchString(`^medical_record_\d{4}-\d{2}-\d{2}\.pdf$`, name); !ok {
		t.Errorf("filename %q does not match medical_record_<ISO-date>.pdf", name)
	}
}

func TestWritePDF(t *testing.T) {
	svc := newTestService(t)
	dir := t.TempDir()
	path, err := svc.WritePDF(context.Background(), payload, dir)
	if err != nil {
		t.Fatalf("WritePDF returned error: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("artifact written to %q, want directory %q", path, dir)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("artifact missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("artifact is empty")
	}
}

func TestExportPDFCancelled(t *testing.T) {
	svc := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := svc.ExportPDF(ctx, payload); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestExportSummaryXLSX(t *testing.T) {
	svc := newTestService(t)
	sum, err := summary.Parse(payload, nil)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	wb, err := svc.ExportSummaryXLSX(sum)
	if err != nil {
		t.Fatalf("ExportSummaryXLSX returned error: %v", err)
	}
	// XLSX is a zip archive.
	if !bytes.HasPrefix(wb, []byte("PK")) {
		t.Error("workbook bytes are not a zip archive")
	}
}

func TestExportSummaryXLSXEmpty(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.ExportSummaryXLSX(nil); err == nil {
		t.Error("expected error for nil summary")
	}
}
