package extract

import "time"

// IsCacheHit classifies a completed exchange as served-from-cache when its
// round-trip latency is strictly below threshold. The service does not report
// cache status itself; this is a latency heuristic and can misclassify in
// both directions (a fast cold compute looks cached, a slow network hides a
// real hit). A threshold at or below zero classifies nothing as cached.
func IsCacheHit(elapsed, threshold time.Duration) bool {
	return elapsed < threshold
}
