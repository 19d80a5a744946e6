package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/bk-finance/backend/internal/application/usecase/actionplan"
	"github.com/bk-finance/backend/internal/domain/entity"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
	"github.com/bk-finance/backend/internal/integration/entrypoint/dto"
)

// ActionPlanController handles 5W2H action-plan endpoints.
type ActionPlanController struct {
	listUseCase   *actionplan.ListActionPlansUseCase
	createUseCase *actionplan.CreateActionPlanUseCase
	updateUseCase *actionplan.UpdateActionPlanUseCase
	deleteUseCase *actionplan.DeleteActionPlanUseCase
}

// NewActionPlanController creates a new action-plan controller instance.
func NewActionPlanController(
	listUseCase *actionplan.ListActionPlansUseCase,
	createUseCase *actionplan.CreateActionPlanUseCase,
	updateUseCase *actionplan.UpdateActionPlanUseCase,
	deleteUseCase *actionplan.DeleteActionPlanUseCase,
) *ActionPlanController {
	return &ActionPlanController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /action-plans requests.
func (c *ActionPlanController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve action plans",
		})
		return
	}

	response := dto.ActionPlanListResponse{
		Plans: make([]dto.ActionPlanResponse, 0, len(output.Plans)),
	}
	for _, plan := range output.Plans {
		response.Plans = append(response.Plans, dto.ToActionPlanResponseWithActivity(plan))
	}

	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /action-plans requests.
func (c *ActionPlanController) Create(ctx *gin.Context) {
	var req dto.CreateActionPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	whenDate, err := parseDate(req.When)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid when date format, expected YYYY-MM-DD",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), actionplan.CreateActionPlanInput{
		ActivityID: req.ActivityID,
		What:       req.What,
		Why:        req.Why,
		Who:        req.Who,
		WhenDate:   whenDate,
		WherePlace: req.Where,
		How:        req.How,
		HowMuch:    decimal.NewFromFloat(req.HowMuch),
		Status:     entity.ActionPlanStatus(req.Status),
	})
	if err != nil {
		c.handleActionPlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToActionPlanResponse(output.Plan))
}

// Update handles PATCH /action-plans/:id requests.
func (c *ActionPlanController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid action plan ID format",
		})
		return
	}

	var req dto.UpdateActionPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	whenDate, err := parseDate(req.When)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid when date format, expected YYYY-MM-DD",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), actionplan.UpdateActionPlanInput{
		ID:         id,
		ActivityID: req.ActivityID,
		What:       req.What,
		Why:        req.Why,
		Who:        req.Who,
		WhenDate:   whenDate,
		WherePlace: req.Where,
		How:        req.How,
		HowMuch:    decimal.NewFromFloat(req.HowMuch),
		Status:     entity.ActionPlanStatus(req.Status),
	})
	if err != nil {
		c.handleActionPlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToActionPlanResponse(output.Plan))
}

// Delete handles DELETE /action-plans/:id requests.
func (c *ActionPlanController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid action plan ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), actionplan.DeleteActionPlanInput{ID: id}); err != nil {
		c.handleActionPlanError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleActionPlanError maps action-plan errors to HTTP responses.
func (c *ActionPlanController) handleActionPlanError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrActionPlanNotFound),
		errors.Is(err, domainerror.ErrActivityNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainerror.ErrActionPlanWhatRequired),
		errors.Is(err, domainerror.ErrInvalidActionPlanStatus):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}
