package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	promcollect "github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	artifactDuration *prom.HistogramVec
	artifactBytes    *prom.CounterVec
	exportDuration   prom.Histogram
	exportOutcome    *prom.CounterVec
	lastExportFiles  prom.Gauge
	aiFallbacks      *prom.CounterVec
}

// NewPrometheusRecorder constructs the metrics and registers them on reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		artifactDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "bizsite",
			Name:      "artifact_duration_seconds",
			Help:      "Time to generate one output file",
			Buckets:   prom.DefBuckets,
		}, []string{"kind"}),
		artifactBytes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "bizsite",
			Name:      "artifact_bytes_total",
			Help:      "Bytes generated by artifact kind",
		}, []string{"kind"}),
		exportDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "bizsite",
			Name:      "export_duration_seconds",
			Help:      "Total export duration",
			Buckets:   prom.DefBuckets,
		}),
		exportOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "bizsite",
			Name:      "export_outcomes_total",
			Help:      "Exports by final status",
		}, []string{"outcome"}),
		lastExportFiles: prom.NewGauge(prom.GaugeOpts{
			Namespace: "bizsite",
			Name:      "last_export_files",
			Help:      "Files produced by the most recent successful export",
		}),
		aiFallbacks: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "bizsite",
			Name:      "ai_fallbacks_total",
			Help:      "AI copy requests answered by the template fallback",
		}, []string{"page_type"}),
	}
	reg.MustRegister(pr.artifactDuration, pr.artifactBytes, pr.exportDuration, pr.exportOutcome, pr.lastExportFiles, pr.aiFallbacks)
	return pr
}

func (p *PrometheusRecorder) ObserveArtifact(kind string, bytes int, d time.Duration) {
	if p == nil {
		return
	}
	p.artifactDuration.WithLabelValues(kind).Observe(d.Seconds())
	p.artifactBytes.WithLabelValues(kind).Add(float64(bytes))
}

func (p *PrometheusRecorder) ObserveExport(files int, d time.Duration, outcome Outcome) {
	if p == nil {
		return
	}
	p.exportDuration.Observe(d.Seconds())
	p.exportOutcome.WithLabelValues(string(outcome)).Inc()
	if outcome == OutcomeSuccess {
		p.lastExportFiles.Set(float64(files))
	}
}

func (p *PrometheusRecorder) IncAIFallback(pageType string) {
	if p == nil {
		return
	}
	p.aiFallbacks.WithLabelValues(pageType).Inc()
}

// NewRegistry returns a registry with the Go and process collectors
// already registered.
func NewRegistry() *prom.Registry {
	reg := prom.NewRegistry()
	reg.MustRegister(promcollect.NewGoCollector(), promcollect.NewProcessCollector(promcollect.ProcessCollectorOpts{}))
	return reg
}

// HTTPHandler returns an http.Handler that serves Prometheus metrics for the provided registry.
func HTTPHandler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
