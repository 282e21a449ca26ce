package metrics

import (
	"btcrate/internal/adapters/fixed"
	"btcrate/internal/domain"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestInstrumentedFetcher_CountsSuccess(t *testing.T) {
	m := NewFetchMetrics()
	f := NewInstrumentedFetcher(fixed.NewRateClient("12345.67"), m)

	rate, err := f.FetchRate(context.Background())
	require.NoError(t, err)
	require.Equal(t, "12345.67", rate)
	require.InDelta(t, 1, testutil.ToFloat64(m.FetchTotal.WithLabelValues(ResultSuccess)), 1e-9)
	require.Equal(t, 1, testutil.CollectAndCount(m.FetchDuration))
}

func TestInstrumentedFetcher_LabelsErrors(t *testing.T) {
	cases := []struct {
		err   error
		label string
	}{
		{err: fmt.Errorf("%w: bad", domain.ErrInvalidURL), label: ResultInvalidURL},
		{err: fmt.Errorf("%w: 500", domain.ErrFetch), label: ResultFetchError},
		{err: fmt.Errorf("%w: eof", domain.ErrDecode), label: ResultDecodeError},
		{err: fmt.Errorf("%w: no AUD", domain.ErrInvalidResponse), label: ResultInvalidResponse},
		{err: errors.New("something else"), label: ResultUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			m := NewFetchMetrics()
			f := NewInstrumentedFetcher(fixed.NewFailingRateClient(tc.err), m)

			_, err := f.FetchRate(context.Background())
			require.ErrorIs(t, err, tc.err)
			require.InDelta(t, 1, testutil.ToFloat64(m.FetchTotal.WithLabelValues(tc.label)), 1e-9)
			require.InDelta(t, 0, testutil.ToFloat64(m.FetchTotal.WithLabelValues(ResultSuccess)), 1e-9)
		})
	}
}

func TestFetchMetrics_HandlerExposesCounters(t *testing.T) {
	m := NewFetchMetrics()
	f := NewInstrumentedFetcher(fixed.NewRateClient("1"), m)
	_, _ = f.FetchRate(context.Background())

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `btcrate_fetch_total{result="success"} 1`)
}
