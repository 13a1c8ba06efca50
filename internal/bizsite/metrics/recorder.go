// Package metrics defines export observability hooks and a Prometheus
// implementation.
package metrics

import "time"

// Outcome labels the result of one export.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailed  Outcome = "failed"
)

// Recorder receives export metrics. Implementations must be safe for
// concurrent use; the assembler calls ObserveArtifact from worker goroutines.
type Recorder interface {
	ObserveArtifact(kind string, bytes int, d time.Duration)
	ObserveExport(files int, d time.Duration, outcome Outcome)
	IncAIFallback(pageType string)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveArtifact(string, int, time.Duration) {}
func (NoopRecorder) ObserveExport(int, time.Duration, Outcome) {}
func (NoopRecorder) IncAIFallback(string)                      {}
