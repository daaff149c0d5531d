// Package metrics exposes Prometheus counters for the review pipeline.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/domain"
)

const namespace = "review_sentiment"

// Metrics holds every collector the service records to.
// All methods are safe to call on a nil *Metrics, which records nothing.
type Metrics struct {
	Predictions      *prometheus.CounterVec
	ReviewsSaved     *prometheus.CounterVec
	Translations     *prometheus.CounterVec
	TranslationCache *prometheus.CounterVec
	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
}

// NewRegistry creates a registry with Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// New creates the service collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Classifier predictions by label and calling endpoint.",
		}, []string{"endpoint", "label"}),
		ReviewsSaved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reviews_saved_total",
			Help:      "Reviews persisted by sentiment tag.",
		}, []string{"sentiment"}),
		Translations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "translation",
			Name:      "requests_total",
			Help:      "Calls to the translation service.",
		}, []string{"operation", "outcome"}),
		TranslationCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "translation",
			Name:      "cache_events_total",
			Help:      "Translation cache hits, misses, sets and errors.",
		}, []string{"event"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests.",
		}, []string{"method", "route", "status_code"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(m.Predictions, m.ReviewsSaved, m.Translations, m.TranslationCache, m.HTTPRequests, m.HTTPDuration)
	return m
}

// ObservePrediction counts one classification made for endpoint.
func (m *Metrics) ObservePrediction(endpoint string, label domain.Label) {
	if m == nil {
		return
	}
	m.Predictions.WithLabelValues(endpoint, strconv.Itoa(int(label))).Inc()
}

// ObserveSaved counts one persisted review.
func (m *Metrics) ObserveSaved(sentiment string) {
	if m == nil {
		return
	}
	m.ReviewsSaved.WithLabelValues(sentiment).Inc()
}

// ObserveTranslation counts one call to the translation service.
func (m *Metrics) ObserveTranslation(operation string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.Translations.WithLabelValues(operation, outcome).Inc()
}

// ObserveCache counts a cache event: hit, miss, set or error.
func (m *Metrics) ObserveCache(event string) {
	if m == nil {
		return
	}
	m.TranslationCache.WithLabelValues(event).Inc()
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(dur.Seconds())
}
