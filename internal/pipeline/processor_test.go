package pipeline

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/atharva-patil-create/discharge-summary-generator/internal/export"
	"github.com/atharva-patil-create/discharge-summary-generator/internal/extract"
	"github.com/atharva-patil-create/discharge-summary-generator/internal/render"
)

const serviceBody = `{"success": true, "raw_llama_output": "<h2 style=\"color: #2E7D32\">Discharge Summary</h2>\n\n1. <span style=\"color: #2E7D32\">Admission Date</span>: 2024-01-10\n\n19. <span style=\"color: #2E7D32\">Doctor</span>:\n- Dr. A. Sharma"}`

func newTestProcessor(t *testing.T, baseURL string) *Processor {
	t.Helper()
	r, err := render.NewRasterizer(nil, nil)
	if err != nil {
		t.Fatalf("NewRasterizer returned error: %v", err)
	}
	client := extract.NewClient(extract.Config{BaseURL: baseURL}, nil)
	return NewProcessor(nil, client, export.NewService(r, nil))
}

func TestRunProducesArtifacts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(serviceBody))
	}))
	defer srv.Close()

	p := newTestProcessor(t, srv.URL)
	dir := t.TempDir()
	res, err := p.Run(context.Background(), "patient notes", dir, true)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if res.Exchange == nil || res.Exchange.Payload == "" {
		t.Fatal("exchange result missing")
	}
	if _, err := os.Stat(res.PDFPath); err != nil {
		t.Errorf("PDF artifact missing: %v", err)
	}
	if res.XLSXPath == "" {
		t.Fatal("workbook path empty")
	}
	if _, err := os.Stat(res.XLSXPath); err != nil {
		t.Errorf("workbook artifact missing: %v", err)
	}
	if !strings.HasSuffix(res.XLSXPath, ".xlsx") {
		t.Errorf("workbook path = %q, want .xlsx suffix", res.XLSXPath)
	}
}

func TestRunSkipsWorkbookForUnstructuredPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "raw_llama_output": "free-form prose without any labels"}`))
	}))
	defer srv.Close()

	p := newTestProcessor(t, srv.URL)
	res, err := p.Run(context.Background(), "patient notes", t.TempDir(), true)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.XLSXPath != "" {
		t.Errorf("workbook written for unstructured payload: %q", res.XLSXPath)
	}
	if res.PDFPath == "" {
		t.Error("PDF should still be produced")
	}
}

func TestRunSurfacesExtractionErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := newTestProcessor(t, srv.URL)
	_, err := p.Run(context.Background(), "patient notes", t.TempDir(), false)
	var se *extract.ServiceError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *ServiceError", err)
	}
}

func TestRunEmptyInput(t *testing.T) {
	p := newTestProcessor(t, "http://localhost:0")
	if _, err := p.Run(context.Background(), "  ", t.TempDir(), false); !errors.Is(err, extract.ErrEmptyInput) {
		t.Errorf("error = %v, want ErrEmptyInput", err)
	}
}
