package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atharva-patil-create/discharge-summary-generator/constants"
)

// Config for the extraction client.
type Config struct {
	BaseURL        string        // default http://localhost:8000
	Timeout        time.Duration // http client timeout
	CacheThreshold time.Duration // latency below which a response counts as cached
}

// Client owns the request/response exchange with the extraction service.
// One Submit call is exactly one network exchange; there is no internal
// retry, and overlapping submissions are not coordinated here.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if cfg.CacheThreshold <= 0 {
		cfg.CacheThreshold = constants.CacheLatencyThreshold
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Submit sends the medical text to the service and returns the exchange
// result. Elapsed covers request start through the fully parsed response, so
// the cache classification sees the same latency a user would.
func (c *Client) Submit(ctx context.Context, inputText string) (*ExchangeResult, error) {
	if strings.TrimSpace(inputText) == "" {
		return nil, ErrEmptyInput
	}

	rid := uuid.New().String()
	start := time.Now()

	bs, err := json.Marshal(extractRequest{MedicalText: inputText})
	if err != nil {
		c.logger.Error("extract.http.encode_error", "req_id", rid, "error", err)
		return nil, fmt.Errorf("encode json: %w", err)
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + constants.ExtractPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bs))
	if err != nil {
		c.logger.Error("extract.http.build_request_error", "req_id", rid, "error", err)
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Info("extract.http.request",
		"req_id", rid,
		"url", url,
		"content_length", len(bs),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("extract.http.send_error", "req_id", rid, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return nil, &TransportError{Err: err}
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.Warn("extract.http.response_body_close_error", "req_id", rid, "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode/100 != 2 {
		c.logger.Error("extract.http.service_error",
			"req_id", rid,
			"status", resp.StatusCode,
			"bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, &ServiceError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if err := ValidateJSONAgainstSchema(envelopeSchema(), raw); err != nil {
		c.logger.Error("extract.http.envelope_invalid", "req_id", rid, "error", err, "raw_bytes", len(raw))
		return nil, fmt.Errorf("invalid response envelope: %w", err)
	}

	var env extractResponse
	if err := json.Unmarshal(raw, &env); err != nil {
		c.logger.Error("extract.http.decode_error", "req_id", rid, "error", err, "raw_bytes", len(raw))
		return nil, fmt.Errorf("decode response: %w", err)
	}

	// The full body stands in as the display payload when the envelope
	// carries no formatted output.
	payload := string(raw)
	if env.RawLlamaOutput != nil && *env.RawLlamaOutput != "" {
		payload = *env.RawLlamaOutput
	}

	elapsed := time.Since(start)
	result := &ExchangeResult{
		RequestID:  rid,
		Payload:    payload,
		Elapsed:    elapsed,
		CacheHit:   IsCacheHit(elapsed, c.cfg.CacheThreshold),
		StatusCode: resp.StatusCode,
	}

	c.logger.Info("extract.http.response",
		"req_id", rid,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"cache_hit", result.CacheHit,
		"elapsed_ms", elapsed.Milliseconds(),
	)
	return result, nil
}
