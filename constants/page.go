package constants

import "time"

// A4 page geometry in millimeters. Every exported document uses this size.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
)

// CaptureWidthPx is the fixed raster width for captured summary panels,
// roughly A4 at 150 dpi. Height grows with content.
const CaptureWidthPx = 1240

// CacheLatencyThreshold is the round-trip latency below which a response is
// classified as served-from-cache. A heuristic, not a protocol guarantee.
const CacheLatencyThreshold = 100 * time.Millisecond

// ExtractPath is the extraction service endpoint, relative to its base URL.
const ExtractPath = "/extract"
