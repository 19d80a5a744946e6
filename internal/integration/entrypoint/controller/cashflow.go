package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bk-finance/backend/internal/application/usecase/cashflow"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
	"github.com/bk-finance/backend/internal/integration/entrypoint/dto"
)

// CashflowController handles cash-flow statement endpoints. Statements are
// JSON-serializable as built, so no separate response DTO is needed.
type CashflowController struct {
	buildUseCase *cashflow.BuildStatementUseCase
	diffUseCase  *cashflow.DiffStatementsUseCase
}

// NewCashflowController creates a new cashflow controller instance.
func NewCashflowController(
	buildUseCase *cashflow.BuildStatementUseCase,
	diffUseCase *cashflow.DiffStatementsUseCase,
) *CashflowController {
	return &CashflowController{
		buildUseCase: buildUseCase,
		diffUseCase:  diffUseCase,
	}
}

// GetStatement handles GET /cashflow/statement requests. The forecast query
// parameter selects the forecast or actual variant; months selects the
// window length.
func (c *CashflowController) GetStatement(ctx *gin.Context) {
	input := cashflow.BuildStatementInput{
		IsForecast: ctx.Query("forecast") == "true",
	}

	if monthsStr := ctx.Query("months"); monthsStr != "" {
		months, err := strconv.Atoi(monthsStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid months parameter",
			})
			return
		}
		input.Months = months
	}

	output, err := c.buildUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCashflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output.Statement)
}

// GetDiff handles GET /cashflow/diff requests, returning forecast minus
// actual per taxonomy cell.
func (c *CashflowController) GetDiff(ctx *gin.Context) {
	input := cashflow.DiffStatementsInput{}

	if monthsStr := ctx.Query("months"); monthsStr != "" {
		months, err := strconv.Atoi(monthsStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid months parameter",
			})
			return
		}
		input.Months = months
	}

	output, err := c.diffUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCashflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output.Diff)
}

// handleCashflowError maps cash-flow errors to HTTP responses.
func (c *CashflowController) handleCashflowError(ctx *gin.Context, err error) {
	var cfErr *domainerror.CashflowError
	if errors.As(err, &cfErr) {
		status := http.StatusInternalServerError
		if cfErr.Code == domainerror.ErrCodeInvalidWindow {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: cfErr.Message,
			Code:  string(cfErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
