package http

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

type dataResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type listResponse struct {
	Success    bool        `json:"success"`
	Count      int         `json:"count"`
	Total      *int64      `json:"total,omitempty"`
	Page       *int        `json:"page,omitempty"`
	TotalPages *int        `json:"totalPages,omitempty"`
	Data       interface{} `json:"data"`
}

type errorResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, log logrus.FieldLogger, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Error("write response body")
	}
}

func respondData(w http.ResponseWriter, log logrus.FieldLogger, status int, message string, data interface{}) {
	writeJSON(w, log, status, dataResponse{Success: true, Message: message, Data: data})
}

func respondMessage(w http.ResponseWriter, log logrus.FieldLogger, status int, message string) {
	writeJSON(w, log, status, errorResponse{Success: status < http.StatusBadRequest, Message: message})
}

func respondValidation(w http.ResponseWriter, log logrus.FieldLogger, errs FieldErrors) {
	writeJSON(w, log, http.StatusBadRequest, errorResponse{
		Success: false,
		Message: "Validation failed",
		Errors:  errs,
	})
}
