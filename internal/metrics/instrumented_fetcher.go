package metrics

import (
	"btcrate/internal/adapters"
	"btcrate/internal/domain"
	"context"
	"errors"
	"time"
)

// InstrumentedFetcher counts and times every call of the wrapped fetcher.
type InstrumentedFetcher struct {
	next    adapters.RateFetcher
	metrics *FetchMetrics
}

func (f *InstrumentedFetcher) FetchRate(ctx context.Context) (string, error) {
	start := time.Now()
	rate, err := f.next.FetchRate(ctx)
	f.metrics.FetchDuration.Observe(time.Since(start).Seconds())
	f.metrics.FetchTotal.WithLabelValues(resultLabel(err)).Inc()
	return rate, err
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, domain.ErrInvalidURL):
		return ResultInvalidURL
	case errors.Is(err, domain.ErrFetch):
		return ResultFetchError
	case errors.Is(err, domain.ErrDecode):
		return ResultDecodeError
	case errors.Is(err, domain.ErrInvalidResponse):
		return ResultInvalidResponse
	default:
		return ResultUnknown
	}
}

func NewInstrumentedFetcher(next adapters.RateFetcher, m *FetchMetrics) *InstrumentedFetcher {
	return &InstrumentedFetcher{next: next, metrics: m}
}
