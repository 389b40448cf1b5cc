package extract

import "time"

// extractRequest is the wire request for POST /extract.
type extractRequest struct {
	MedicalText string `json:"medical_text"`
}

// extractResponse is the service's response envelope. raw_llama_output keeps
// its historical name for compatibility with the deployed service.
type extractResponse struct {
	Success        bool    `json:"success"`
	Error          *string `json:"error,omitempty"`
	RawLlamaOutput *string `json:"raw_llama_output,omitempty"`
}

// ExchangeResult is the outcome of one submitted request. It is immutable
// after creation; a new submission produces a fresh result and the caller is
// expected to discard the previous one.
type ExchangeResult struct {
	// RequestID is the client-assigned id used for log correlation.
	RequestID string

	// Payload is the formatted content to display and export. It is
	// raw_llama_output when the envelope carries one, otherwise the full
	// response body.
	Payload string

	// Elapsed is the wall-clock duration from request start to the fully
	// parsed response.
	Elapsed time.Duration

	// CacheHit is the latency-based classification of this exchange.
	CacheHit bool

	// StatusCode is the HTTP status of the successful exchange.
	StatusCode int
}
