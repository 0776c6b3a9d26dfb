package handlers

import (
	"log/slog"
	"net/http"

	"finance-ledger/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers respond with one of two helpers:
//
// SendError for client and business rule errors (4xx), for example
// SendError(c, errors.TransactionInsufficientFunds).
//
// SendSystemError for storage and other internal failures (500). The
// internal error is logged with the trace ID and never sent to the client.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError logs the internal error and responds with a generic system error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := errors.WrapSystemError(err, traceID)

	slog.ErrorContext(c.Request().Context(), "request failed",
		"error", internalErr,
		"trace_id", traceID,
		"method", c.Request().Method,
		"path", c.Path(),
	)

	return c.JSON(http.StatusInternalServerError, errorResponse)
}
