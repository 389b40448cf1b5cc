package extract

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when the submitted medical text is blank after
// trimming. No network exchange is attempted in that case.
var ErrEmptyInput = errors.New("medical text is empty")

// TransportError wraps a network-level failure reaching the extraction
// service. The message points the user at service availability since that is
// the usual cause.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("extraction service unreachable (check that the backend is running): %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServiceError reports a non-2xx response from the extraction service.
type ServiceError struct {
	StatusCode int
	Body       string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("extraction service returned status %d: %s", e.StatusCode, e.Body)
}
