package router

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/calc"
	"github.com/DjordjeVuckovic/calc-hunter/internal/dto"
	"github.com/DjordjeVuckovic/calc-hunter/internal/history"
	"github.com/DjordjeVuckovic/calc-hunter/pkg/pagination"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type EvalRouter struct {
	e     *echo.Echo
	calc  *calc.Calculator
	store history.Store
}

func NewEvalRouter(e *echo.Echo, c *calc.Calculator, store history.Store) *EvalRouter {
	return &EvalRouter{
		e:     e,
		calc:  c,
		store: store,
	}
}

func (r *EvalRouter) Bind() {
	g := r.e.Group("/api/v1")
	g.POST("/evaluate", r.evaluateHandler)
	g.GET("/evaluate/:notation", r.evaluateQueryHandler)
	g.GET("/history", r.listHistoryHandler)
	g.GET("/history/:id", r.getHistoryHandler)
}

// evaluateHandler godoc
// @Summary Evaluate an expression
// @Description Evaluates an infix or Polish expression over 64-bit integers. Every evaluation is recorded in history.
// @Tags evaluate
// @Accept json
// @Produce json
// @Param request body dto.EvaluateRequest true "Expression to evaluate"
// @Success 200 {object} dto.EvaluateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/evaluate [post]
func (r *EvalRouter) evaluateHandler(c echo.Context) error {
	var req dto.EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if req.Notation == "" {
		req.Notation = calc.Infix.String()
	}
	return r.evaluate(c, req.Notation, req.Expression)
}

// evaluateQueryHandler godoc
// @Summary Evaluate an expression from the query string
// @Tags evaluate
// @Produce json
// @Param notation path string true "infix or polish"
// @Param expr query string true "Expression to evaluate"
// @Success 200 {object} dto.EvaluateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/evaluate/{notation} [get]
func (r *EvalRouter) evaluateQueryHandler(c echo.Context) error {
	if !c.QueryParams().Has("expr") {
		return apperr.NewValidation("expr query parameter is required")
	}
	return r.evaluate(c, c.Param("notation"), c.QueryParam("expr"))
}

func (r *EvalRouter) evaluate(c echo.Context, rawNotation, expression string) error {
	notation, err := calc.ParseNotation(rawNotation)
	if err != nil {
		return err
	}

	out := r.calc.Run(notation, expression)

	rec := history.FromOutcome(out)
	if _, err := r.store.Save(c.Request().Context(), rec); err != nil {
		slog.Error("Failed to save evaluation", "id", rec.ID, "error", err)
	}

	if out.Err != nil {
		return out.Err
	}
	return c.JSON(http.StatusOK, dto.NewEvaluateResponse(rec.ID, out))
}

// listHistoryHandler godoc
// @Summary List evaluation history
// @Description Newest evaluations first.
// @Tags history
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} pagination.OffsetResult[history.Evaluation]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/history [get]
func (r *EvalRouter) listHistoryHandler(c echo.Context) error {
	var req pagination.OffsetRequest
	var err error

	if page := c.QueryParam("page"); page != "" {
		if req.Page, err = strconv.Atoi(page); err != nil {
			return apperr.NewValidationWrap("page must be an integer", err)
		}
	}
	if size := c.QueryParam("size"); size != "" {
		if req.Size, err = strconv.Atoi(size); err != nil {
			return apperr.NewValidationWrap("size must be an integer", err)
		}
	}
	if err := req.Validate(); err != nil {
		return apperr.NewValidationWrap("invalid pagination", err)
	}

	res, err := r.store.List(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// getHistoryHandler godoc
// @Summary Get one recorded evaluation
// @Tags history
// @Produce json
// @Param id path string true "Evaluation id"
// @Success 200 {object} history.Evaluation
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/history/{id} [get]
func (r *EvalRouter) getHistoryHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidationWrap("invalid evaluation id", err)
	}

	e, err := r.store.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, e)
}
