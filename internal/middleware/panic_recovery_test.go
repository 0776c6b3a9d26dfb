package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-ledger/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// PanicRecoveryTestSuite defines the test suite for panic recovery middleware
type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_RecoverFromPanic() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")

	handler := PanicRecovery()(func(c echo.Context) error {
		panic("test panic")
	})

	s.NotPanics(func() {
		s.NoError(handler(c))
	})
	s.Equal(http.StatusInternalServerError, rec.Code)

	var errorResponse errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal("SYSTEM_001", errorResponse.Error.Code)
	s.Equal("test-trace-id", errorResponse.Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_NoTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		panic("test panic")
	})
	s.NoError(handler(c))

	var errorResponse errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal("unknown", errorResponse.Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_NormalFlow() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("ok", rec.Body.String())
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_DifferentPanicTypes() {
	panics := map[string]interface{}{
		"string": "boom",
		"code":   errors.ErrorCode("SYSTEM_005"),
		"int":    42,
		"struct": struct{ Reason string }{Reason: "broken"},
	}

	for name, value := range panics {
		s.Run(name, func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := s.echo.NewContext(req, rec)
			c.Set(TraceIDContextKey, "test-trace-id")

			handler := PanicRecovery()(func(c echo.Context) error {
				panic(value)
			})

			s.NotPanics(func() { _ = handler(c) })
			s.Equal(http.StatusInternalServerError, rec.Code)
		})
	}
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_ErrAbortHandlerPropagates() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		panic(http.ErrAbortHandler)
	})

	s.Panics(func() { _ = handler(c) })
}
