package http

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	categorydomain "github.com/light-bringer/catalog-service/internal/app/category/domain"
	"github.com/light-bringer/catalog-service/internal/app/product/domain"
	"github.com/light-bringer/catalog-service/internal/pkg/productcode"
)

// statusFor maps an application error to an HTTP status and client message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "Product not found"
	case errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, categorydomain.ErrCategoryNotFound):
		return http.StatusNotFound, "Category not found"
	case errors.Is(err, domain.ErrDuplicateKey):
		return http.StatusConflict, "Product code already exists"
	case errors.Is(err, domain.ErrConcurrentUpdate):
		return http.StatusConflict, "Product was modified concurrently, please retry"
	case errors.Is(err, productcode.ErrCodeGenerationExhausted):
		return http.StatusInternalServerError, "Could not generate a unique product code"
	case errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrEmptyDescription),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrEmptyImage),
		errors.Is(err, domain.ErrInvalidDiscount),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, categorydomain.ErrInvalidName):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// respondError writes the error envelope for err. Server-side failures are
// logged with the request path; their details never reach the client.
func respondError(w http.ResponseWriter, r *http.Request, log logrus.FieldLogger, err error) {
	status, message := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.WithFields(logrus.Fields{
			"method": r.Method,
			"url":    r.URL.Path,
		}).WithError(err).Error("request failed")
	}
	writeJSON(w, log, status, errorResponse{Success: false, Message: message})
}
