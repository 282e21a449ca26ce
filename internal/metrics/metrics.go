package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultSuccess         = "success"
	ResultInvalidURL      = "invalid_url"
	ResultFetchError      = "fetch_error"
	ResultDecodeError     = "decode_error"
	ResultInvalidResponse = "invalid_response"
	ResultUnknown         = "unknown"
)

// FetchMetrics holds the collectors for outbound rate fetches.
type FetchMetrics struct {
	registry *prometheus.Registry

	FetchTotal    *prometheus.CounterVec
	FetchDuration prometheus.Histogram
}

func NewFetchMetrics() *FetchMetrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &FetchMetrics{
		registry: reg,
		FetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "btcrate_fetch_total",
				Help: "Exchange rate fetches by result",
			},
			[]string{"result"},
		),
		FetchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "btcrate_fetch_duration_seconds",
				Help:    "Exchange rate fetch latency in seconds",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 8), // 50ms .. 6.4s
			},
		),
	}
}

func (m *FetchMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
