package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

type RefreshResponse struct {
	Status string `json:"status"`
}

func (h *Handler) Refresh(w http.ResponseWriter, _ *http.Request) {
	if err := h.baseCtx.Err(); err != nil {
		writeError(w, http.StatusServiceUnavailable, "shutting down")
		return
	}

	go h.presenter.Activate(h.baseCtx)
	logrus.WithField("handler", "Refresh").Debug("Rate refresh requested")

	writeJSON(w, http.StatusAccepted, RefreshResponse{Status: "refreshing"})
}
