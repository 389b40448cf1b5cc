// Package pipeline coordinates the extract stage and the export stages as
// one user action: notes in, artifacts out.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/atharva-patil-create/discharge-summary-generator/constants"
	"github.com/atharva-patil-create/discharge-summary-generator/internal/export"
	"github.com/atharva-patil-create/discharge-summary-generator/internal/extract"
	"github.com/atharva-patil-create/discharge-summary-generator/internal/summary"
)

// Processor coordinates extraction then export. It owns no state between
// runs; each Run is one submission with one ExchangeResult that replaces
// whatever the caller held before.
type Processor struct {
	Logger *slog.Logger
	Client *extract.Client
	Export *export.Service
}

func NewProcessor(logger *slog.Logger, client *extract.Client, exportSvc *export.Service) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Client: client, Export: exportSvc}
}

// Result aggregates one run's outcome.
type Result struct {
	Exchange *extract.ExchangeResult
	PDFPath  string
	XLSXPath string
}

// Run submits the notes, writes the paginated PDF into outDir, and, when
// withFields is set, additionally writes the recovered field workbook. A
// payload without recognizable fields downgrades the workbook to a warning
// rather than failing the run.
func (p *Processor) Run(ctx context.Context, text, outDir string, withFields bool) (*Result, error) {
	res, err := p.Client.Submit(ctx, text)
	if err != nil {
		p.Logger.Error("processor.extract.failed", "stage", constants.StageExtract, "err", err)
		return nil, err
	}
	p.Logger.Info("processor.extract.ok",
		"req_id", res.RequestID,
		"payload_bytes", len(res.Payload),
		"cache_hit", res.CacheHit,
		"elapsed_ms", res.Elapsed.Milliseconds(),
	)

	pdfPath, err := p.Export.WritePDF(ctx, res.Payload, outDir)
	if err != nil {
		p.Logger.Error("processor.export.failed", "stage", constants.StageAssemble, "req_id", res.RequestID, "err", err)
		return nil, err
	}
	p.Logger.Info("processor.export.ok", "req_id", res.RequestID, "path", pdfPath)

	out := &Result{Exchange: res, PDFPath: pdfPath}
	if !withFields {
		return out, nil
	}

	sum, err := summary.Parse(res.Payload, p.Logger)
	if err != nil {
		if errors.Is(err, summary.ErrNoFields) {
			p.Logger.Warn("processor.fields.skipped", "stage", constants.StageParse, "req_id", res.RequestID, "err", err)
			return out, nil
		}
		p.Logger.Error("processor.fields.failed", "stage", constants.StageParse, "req_id", res.RequestID, "err", err)
		return nil, err
	}

	wb, err := p.Export.ExportSummaryXLSX(sum)
	if err != nil {
		p.Logger.Error("processor.fields.failed", "stage", constants.StageAssemble, "req_id", res.RequestID, "err", err)
		return nil, err
	}
	xlsxPath := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(pdfPath), ".pdf")+".xlsx")
	if err := os.WriteFile(xlsxPath, wb, 0o644); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	out.XLSXPath = xlsxPath
	p.Logger.Info("processor.fields.ok", "req_id", res.RequestID, "path", xlsxPath, "fields", sum.Len())
	return out, nil
}
