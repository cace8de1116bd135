package dto

import (
	"github.com/DjordjeVuckovic/calc-hunter/internal/calc"
	"github.com/DjordjeVuckovic/calc-hunter/internal/expr"
	"github.com/google/uuid"
)

// EvaluateRequest is the body of POST /api/v1/evaluate. Notation defaults to infix.
type EvaluateRequest struct {
	Notation   string `json:"notation" example:"infix"`
	Expression string `json:"expression" example:"( 5 + 3 ) * ( -5 - -7 )"`
}

type EvaluateResponse struct {
	ID         uuid.UUID `json:"id"`
	Notation   string    `json:"notation" example:"infix"`
	Expression string    `json:"expression" example:"( 5 + 3 ) * ( -5 - -7 )"`
	Result     int64     `json:"result" example:"16"`
	Infix      string    `json:"infix" example:"(5 + 3) * (-5 - -7)"`
	Polish     string    `json:"polish" example:"* + 5 3 - (- 5) (- 7)"`
	DurationUs int64     `json:"duration_us" example:"12"`
}

func NewEvaluateResponse(id uuid.UUID, o calc.Outcome) EvaluateResponse {
	return EvaluateResponse{
		ID:         id,
		Notation:   o.Notation.String(),
		Expression: o.Expression,
		Result:     o.Value,
		Infix:      expr.Infix(o.Tree),
		Polish:     expr.Polish(o.Tree),
		DurationUs: o.Duration.Microseconds(),
	}
}

// ErrorResponse documents the body written by the global error handler.
type ErrorResponse struct {
	Error string `json:"error" example:"malformed expression: extra tokens at position 2"`
	Title string `json:"title,omitempty" example:"malformed_expression"`
}
