package httperr

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/service/order"
	"service/pkg/logger"
)

const (
	CodeBadRequest   = "BAD_REQUEST"
	CodeNotFound     = "NOT_FOUND"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeInternal     = "INTERNAL_SERVER_ERROR"
)

// Issue describes a single request field violation.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Response is the canonical error body shared by every endpoint.
type Response struct {
	StatusCode int     `json:"statusCode"`
	Code       string  `json:"code"`
	Message    string  `json:"message,omitempty"`
	Issues     []Issue `json:"issues,omitempty"`
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// WriteError maps a service error onto the canonical response. This is the
// only place status codes for domain errors are decided; unexpected errors
// collapse to 500 without leaking detail.
func WriteError(w http.ResponseWriter, log handlerLogger, err error) {
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		write(w, log, Response{
			StatusCode: http.StatusNotFound,
			Code:       CodeNotFound,
			Message:    "Not Found",
		})
	case errors.Is(err, order.ErrFieldNotUpdatable):
		write(w, log, Response{
			StatusCode: http.StatusBadRequest,
			Code:       CodeBadRequest,
			Message:    "Bad Request",
		})
	default:
		log.With(
			logger.NewField("error", err),
		).Error("unhandled service error")

		write(w, log, Response{
			StatusCode: http.StatusInternalServerError,
			Code:       CodeInternal,
			Message:    "Internal Server Error",
		})
	}
}

// WriteValidation reports request shape violations collected by a handler
// validator before the service was invoked.
func WriteValidation(w http.ResponseWriter, log handlerLogger, issues []Issue) {
	write(w, log, Response{
		StatusCode: http.StatusBadRequest,
		Code:       CodeBadRequest,
		Message:    "Bad Request",
		Issues:     issues,
	})
}

// WriteUnauthorized is used by the auth gate middleware, not by the core
// handlers.
func WriteUnauthorized(w http.ResponseWriter, log handlerLogger) {
	write(w, log, Response{
		StatusCode: http.StatusUnauthorized,
		Code:       CodeUnauthorized,
		Message:    "Unauthorized",
	})
}

func write(w http.ResponseWriter, log handlerLogger, res Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON error response")
	}
}
