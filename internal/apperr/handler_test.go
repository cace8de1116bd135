package apperr_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  int
		wantTitle string
	}{
		{
			name:      "unknown symbol",
			err:       fmt.Errorf("evaluate: %w", apperr.NewSymbol("!", 3)),
			wantCode:  http.StatusUnprocessableEntity,
			wantTitle: "unknown_symbol",
		},
		{
			name:      "malformed expression",
			err:       apperr.NewSyntax("extra tokens", 1),
			wantCode:  http.StatusUnprocessableEntity,
			wantTitle: "malformed_expression",
		},
		{
			name:      "arithmetic",
			err:       apperr.NewArithmetic("/", "division by zero"),
			wantCode:  http.StatusUnprocessableEntity,
			wantTitle: "arithmetic",
		},
		{
			name:      "validation",
			err:       apperr.NewValidation("notation is required"),
			wantCode:  http.StatusBadRequest,
			wantTitle: "validation error",
		},
		{
			name:      "not found",
			err:       apperr.NewNotFound("evaluation", "abc"),
			wantCode:  http.StatusNotFound,
			wantTitle: "not found",
		},
		{
			name:     "echo http error",
			err:      echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"),
			wantCode: http.StatusMethodNotAllowed,
		},
		{
			name:     "unhandled",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
		},
	}

	handler := apperr.GlobalErrorHandler()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
			if tt.wantTitle != "" {
				assert.Equal(t, tt.wantTitle, body["title"])
			}
		})
	}
}

func TestRespond_KeepsExpressionMessage(t *testing.T) {
	status, body := apperr.Respond(fmt.Errorf("compile: %w", apperr.NewSyntax("no matching )", 0)))

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "malformed_expression", body.Title)
	assert.Contains(t, body.Error, "no matching )")
}
