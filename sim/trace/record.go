// Package trace provides decision-trace recording for resource contention
// analysis. It has no dependencies on sim/ or its sub-packages and stores
// pure data types only.
package trace

// GrantRecord captures a single server grant.
type GrantRecord struct {
	Process  string  `json:"process"`
	Clock    float64 `json:"week"`
	InUse    int     `json:"in_use"`    // servers granted after this grant
	QueueLen int     `json:"queue_len"` // processes still waiting after this grant
	Queued   bool    `json:"queued"`    // false when granted on request, true when handed over by a release
}

// ReleaseRecord captures a single server release.
type ReleaseRecord struct {
	Process  string  `json:"process"`
	Clock    float64 `json:"week"`
	InUse    int     `json:"in_use"` // servers granted after the release and any hand-over
	QueueLen int     `json:"queue_len"`
	HandedTo string  `json:"handed_to,omitempty"` // next holder if the server went straight to a waiter
}

// WaitRecord captures a request that found no free server and was queued.
type WaitRecord struct {
	Process  string  `json:"process"`
	Clock    float64 `json:"week"`
	Position int     `json:"position"` // 1-based position in the wait queue at enqueue time
}
