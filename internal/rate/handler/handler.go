package handler

import (
	"btcrate/internal/domain"
	"context"
	"encoding/json"
	"net/http"
)

type Presenter interface {
	State() domain.DisplayState
	Status() domain.Status
	Activate(ctx context.Context)
}

// Handler is the HTTP rendering of the rate label.
type Handler struct {
	presenter Presenter
	// background work started by requests is bound to this context, not to the request
	baseCtx context.Context
}

func NewRateHandler(ctx context.Context, presenter Presenter) *Handler {
	return &Handler{presenter: presenter, baseCtx: ctx}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{Error: errorMsg})
}
