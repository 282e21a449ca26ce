package handler

import (
	"btcrate/internal/domain"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPresenter struct{ mock.Mock }

func (m *MockPresenter) State() domain.DisplayState {
	args := m.Called()
	s, _ := args.Get(0).(domain.DisplayState)
	return s
}

func (m *MockPresenter) Status() domain.Status {
	args := m.Called()
	s, _ := args.Get(0).(domain.Status)
	return s
}

func (m *MockPresenter) Activate(ctx context.Context) {
	m.Called(ctx)
}

type errorJSON struct {
	Error string `json:"error"`
}

// --- GetRate ---

func TestHandler_GetRate_Loaded(t *testing.T) {
	mockPresenter := new(MockPresenter)
	h := NewRateHandler(context.Background(), mockPresenter)

	mockPresenter.On("State").Return(domain.DisplayState{Rate: "12345.67"}).Once()
	mockPresenter.On("Status").Return(domain.StatusLoaded).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rate", nil)
	rr := httptest.NewRecorder()

	h.GetRate(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var res GetRateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "12345.67", res.Rate)
	require.Equal(t, domain.StatusLoaded, res.Status)
	mockPresenter.AssertExpectations(t)
	mockPresenter.AssertNotCalled(t, "Activate", mock.Anything)
}

func TestHandler_GetRate_NotLoadedYet(t *testing.T) {
	mockPresenter := new(MockPresenter)
	h := NewRateHandler(context.Background(), mockPresenter)

	mockPresenter.On("State").Return(domain.DisplayState{}).Once()
	mockPresenter.On("Status").Return(domain.StatusIdle).Once()

	rr := httptest.NewRecorder()
	h.GetRate(rr, httptest.NewRequest(http.MethodGet, "/api/v1/rate", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"rate":"","status":"idle"}`, rr.Body.String())
	mockPresenter.AssertExpectations(t)
}

// --- Refresh ---

func TestHandler_Refresh_TriggersActivation(t *testing.T) {
	type ctxKey struct{}
	baseCtx := context.WithValue(context.Background(), ctxKey{}, "app")

	activated := make(chan context.Context, 1)
	mockPresenter := new(MockPresenter)
	mockPresenter.On("Activate", mock.Anything).Run(func(args mock.Arguments) {
		activated <- args.Get(0).(context.Context)
	}).Return().Once()
	h := NewRateHandler(baseCtx, mockPresenter)

	rr := httptest.NewRecorder()
	h.Refresh(rr, httptest.NewRequest(http.MethodPost, "/api/v1/rate/refresh", nil))

	require.Equal(t, http.StatusAccepted, rr.Code)
	var res RefreshResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "refreshing", res.Status)

	select {
	case ctx := <-activated:
		require.Equal(t, "app", ctx.Value(ctxKey{}))
	case <-time.After(2 * time.Second):
		t.Fatal("presenter was not activated")
	}
	mockPresenter.AssertExpectations(t)
}

func TestHandler_Refresh_AfterShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	mockPresenter := new(MockPresenter)
	h := NewRateHandler(ctx, mockPresenter)

	rr := httptest.NewRecorder()
	h.Refresh(rr, httptest.NewRequest(http.MethodPost, "/api/v1/rate/refresh", nil))

	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	var ej errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
	require.Equal(t, "shutting down", ej.Error)
	mockPresenter.AssertNotCalled(t, "Activate", mock.Anything)
}
