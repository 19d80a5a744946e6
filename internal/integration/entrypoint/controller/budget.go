package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/bk-finance/backend/internal/application/usecase/budget"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
	"github.com/bk-finance/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget and reconciliation endpoints.
type BudgetController struct {
	upsertUseCase    *budget.UpsertBudgetUseCase
	getUseCase       *budget.GetBudgetUseCase
	reconcileUseCase *budget.ReconcileBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	upsertUseCase *budget.UpsertBudgetUseCase,
	getUseCase *budget.GetBudgetUseCase,
	reconcileUseCase *budget.ReconcileBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		upsertUseCase:    upsertUseCase,
		getUseCase:       getUseCase,
		reconcileUseCase: reconcileUseCase,
	}
}

// Upsert handles PUT /budgets requests. The (category, subcategory, month)
// key decides between insert and update.
func (c *BudgetController) Upsert(ctx *gin.Context) {
	var req dto.UpsertBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	month, err := parseMonth(req.Month)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid month format, expected YYYY-MM",
		})
		return
	}

	output, err := c.upsertUseCase.Execute(ctx.Request.Context(), budget.UpsertBudgetInput{
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		YearMonth:     month,
		PlannedValue:  decimal.NewFromFloat(req.PlannedValue),
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetLineResponse(output.Line))
}

// Get handles GET /budgets requests for a given month.
func (c *BudgetController) Get(ctx *gin.Context) {
	month, ok := c.monthQuery(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), budget.GetBudgetInput{YearMonth: month})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve budget",
		})
		return
	}

	response := dto.BudgetListResponse{
		Month: month.Format("2006-01"),
		Lines: make([]dto.BudgetLineResponse, 0, len(output.Lines)),
	}
	for _, line := range output.Lines {
		response.Lines = append(response.Lines, dto.ToBudgetLineResponseWithNames(line))
	}

	ctx.JSON(http.StatusOK, response)
}

// Reconcile handles GET /budgets/reconciliation requests. The comparison is
// category-level: one row per active category, planned from budget lines
// without a subcategory, actuals from the month's paid transactions.
func (c *BudgetController) Reconcile(ctx *gin.Context) {
	month, ok := c.monthQuery(ctx)
	if !ok {
		return
	}

	output, err := c.reconcileUseCase.Execute(ctx.Request.Context(), budget.ReconcileBudgetInput{YearMonth: month})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to reconcile budget",
		})
		return
	}

	response := dto.BudgetReconciliationResponse{
		Month: month.Format("2006-01"),
		Rows:  make([]dto.BudgetComparisonResponse, 0, len(output.Rows)),
	}
	for _, row := range output.Rows {
		response.Rows = append(response.Rows, dto.ToBudgetComparisonResponse(row))
	}

	ctx.JSON(http.StatusOK, response)
}

// monthQuery parses the required month query parameter, writing the error
// response itself on failure.
func (c *BudgetController) monthQuery(ctx *gin.Context) (month time.Time, ok bool) {
	monthStr := ctx.Query("month")
	if monthStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Missing month parameter",
		})
		return month, false
	}

	month, err := parseMonth(monthStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid month format, expected YYYY-MM",
		})
		return month, false
	}
	return month, true
}

// handleBudgetError maps budget errors to HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrCategoryNotFound),
		errors.Is(err, domainerror.ErrSubcategoryNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainerror.ErrBudgetNegativePlanned),
		errors.Is(err, domainerror.ErrBudgetCategoryRequired),
		errors.Is(err, domainerror.ErrSubcategoryNotInCategory):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}
