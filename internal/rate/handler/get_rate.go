package handler

import (
	"btcrate/internal/domain"
	"net/http"
)

type GetRateResponse struct {
	Rate   string        `json:"rate"`
	Status domain.Status `json:"status"`
}

func (h *Handler) GetRate(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, GetRateResponse{
		Rate:   h.presenter.State().Rate,
		Status: h.presenter.Status(),
	})
}
