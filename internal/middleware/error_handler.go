package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"

	"finance-ledger/internal/errors"
	"finance-ledger/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NewHTTPErrorHandler returns an echo error handler that writes standardized
// error responses, logs them and counts them in api_errors_total on reg
func NewHTTPErrorHandler(reg prometheus.Registerer) echo.HTTPErrorHandler {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	apiErrorsTotal := promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Total number of API errors by code, endpoint, and status",
		},
		[]string{"code", "endpoint", "status"},
	)

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "unknown"
		}

		errorResponse, httpStatus := buildErrorResponse(err, traceID)

		logLevel := slog.LevelWarn
		if httpStatus >= 500 {
			logLevel = slog.LevelError
		}

		slog.Log(c.Request().Context(), logLevel, "HTTP error occurred",
			"trace_id", traceID,
			"error_code", errorResponse.Error.Code,
			"status", httpStatus,
			"message", errorResponse.Error.Message,
			"path", c.Request().URL.Path,
			"method", c.Request().Method,
			"error", err.Error(),
		)

		apiErrorsTotal.WithLabelValues(
			errorResponse.Error.Code,
			c.Path(),
			fmt.Sprintf("%d", httpStatus),
		).Inc()

		if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
			slog.Error("Failed to send error response",
				"trace_id", traceID,
				"error", sendErr.Error(),
			)
		}
	}
}

func buildErrorResponse(err error, traceID string) (*errors.ErrorResponse, int) {
	var echoErr *echo.HTTPError
	if stderrors.As(err, &echoErr) {
		errorCode := mapHTTPStatusToErrorCode(echoErr.Code)
		return errors.NewErrorResponse(
			errorCode,
			traceID,
			errors.WithMessage(fmt.Sprintf("%v", echoErr.Message)),
		), echoErr.Code
	}

	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		return errors.NewValidationErrorFromList(validation.FormatValidationErrors(validationErrs), traceID), http.StatusBadRequest
	}

	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return errorResponse, errorResponse.GetHTTPStatus()
}

// mapHTTPStatusToErrorCode maps HTTP status codes to error codes
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnprocessableEntity:
		return errors.ValidationGeneral
	case http.StatusNotFound:
		return errors.CategoryNotFound
	case http.StatusRequestEntityTooLarge:
		return errors.ImportFileTooLarge
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}
