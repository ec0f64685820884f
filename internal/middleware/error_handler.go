package middleware

import (
	"net/http"

	"github.com/eventhub/events-api/internal/dto"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every error that escapes a handler as a JSON message
// body with the handler's status code.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	_ = c.JSON(code, dto.ErrorResponse{Message: msg})
}
