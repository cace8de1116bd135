package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
	Title string `json:"title,omitempty"`
}

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := Respond(err)
		if status >= http.StatusInternalServerError {
			slog.Error("Unhandled error", "method", c.Request().Method, "uri", c.Request().RequestURI, "error", err)
		}
		_ = c.JSON(status, body)
	}
}

// Respond maps err to an HTTP status and response body.
// Expression errors are 422 with the error kind as title.
func Respond(err error) (int, ErrorBody) {
	if IsExpressionError(err) {
		return http.StatusUnprocessableEntity, ErrorBody{Error: err.Error(), Title: string(KindOf(err))}
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ErrorBody{Error: ve.Error(), Title: "validation error"}
	}

	var ne *NotFoundError
	if errors.As(err, &ne) {
		return http.StatusNotFound, ErrorBody{Error: ne.Error(), Title: "not found"}
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, ErrorBody{Error: fmt.Sprintf("%v", he.Message)}
	}

	return http.StatusInternalServerError, ErrorBody{Error: "internal server error"}
}
