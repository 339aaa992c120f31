// Package http exposes the catalog over a JSON REST API.
package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Version is reported by the banner endpoint.
const Version = "1.0.0"

type banner struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// NewRouter builds the HTTP API. Every route, including the fallback for
// unknown paths, is instrumented.
func NewRouter(categories *CategoryHandler, products *ProductHandler, events *EventsHandler, log logrus.FieldLogger) *mux.Router {
	r := mux.NewRouter()
	r.Use(func(next http.Handler) http.Handler { return instrument(log, next) })

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, log, http.StatusOK, banner{
			Message: "Product Management API",
			Version: Version,
			Endpoints: map[string]string{
				"categories": "/api/categories",
				"products":   "/api/products",
				"events":     "/api/events",
			},
		})
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	categories.Register(api)
	products.Register(api)
	events.Register(api)

	notFound := instrument(log, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, log, http.StatusNotFound, errorResponse{Success: false, Message: "Route not found"})
	}))
	r.NotFoundHandler = notFound
	r.MethodNotAllowedHandler = notFound

	return r
}
