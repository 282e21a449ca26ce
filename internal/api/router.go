package api

import (
	"btcrate/internal/rate/handler"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(rateHandler *handler.Handler, metricsHandler http.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	router.Handle("/metrics", metricsHandler)

	router.Get("/api/v1/rate", rateHandler.GetRate)
	router.Post("/api/v1/rate/refresh", rateHandler.Refresh)
	return router
}
