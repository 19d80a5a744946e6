package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bk-finance/backend/internal/application/usecase/dashboard"
	"github.com/bk-finance/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles home-page summary and chart endpoints.
type DashboardController struct {
	summaryUseCase *dashboard.GetHomeSummaryUseCase
	chartUseCase   *dashboard.GetCashflowChartUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetHomeSummaryUseCase,
	chartUseCase *dashboard.GetCashflowChartUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase: summaryUseCase,
		chartUseCase:   chartUseCase,
	}
}

// GetSummary handles GET /dashboard/summary requests.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build dashboard summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHomeSummaryResponse(output.Summary))
}

// GetChart handles GET /dashboard/chart requests. The months query
// parameter selects the window, counted backwards from the current month.
func (c *DashboardController) GetChart(ctx *gin.Context) {
	input := dashboard.GetCashflowChartInput{}

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

	output, err := c.chartUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build cash-flow chart",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCashflowChartResponse(output.Points))
}
