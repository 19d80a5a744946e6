package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bk-finance/backend/internal/application/usecase/activity"
	"github.com/bk-finance/backend/internal/domain/entity"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
	"github.com/bk-finance/backend/internal/integration/entrypoint/dto"
)

// ActivityController handles activity endpoints.
type ActivityController struct {
	listUseCase   *activity.ListActivitiesUseCase
	createUseCase *activity.CreateActivityUseCase
	updateUseCase *activity.UpdateActivityUseCase
	deleteUseCase *activity.DeleteActivityUseCase
}

// NewActivityController creates a new activity controller instance.
func NewActivityController(
	listUseCase *activity.ListActivitiesUseCase,
	createUseCase *activity.CreateActivityUseCase,
	updateUseCase *activity.UpdateActivityUseCase,
	deleteUseCase *activity.DeleteActivityUseCase,
) *ActivityController {
	return &ActivityController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /activities requests. Parents come first ordered by
// priority, each followed by its children.
func (c *ActivityController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve activities",
		})
		return
	}

	response := dto.ActivityListResponse{
		Activities: make([]dto.ActivityResponse, 0, len(output.Activities)),
	}
	for _, a := range output.Activities {
		response.Activities = append(response.Activities, dto.ToActivityResponse(a))
	}

	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /activities requests. Activities nest one level deep.
func (c *ActivityController) Create(ctx *gin.Context) {
	var req dto.CreateActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	startDate, endDate, ok := c.parseDates(ctx, req.StartDate, req.EndDate)
	if !ok {
		return
	}

	status := entity.ActivityStatus(req.Status)
	if req.Status == "" {
		status = entity.ActivityNotStarted
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), activity.CreateActivityInput{
		ParentID:    req.ParentID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Priority:    entity.ActivityPriority(req.Priority),
		Status:      status,
	})
	if err != nil {
		c.handleActivityError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToActivityResponse(output.Activity))
}

// Update handles PATCH /activities/:id requests.
func (c *ActivityController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid activity ID format",
		})
		return
	}

	var req dto.UpdateActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	startDate, endDate, ok := c.parseDates(ctx, req.StartDate, req.EndDate)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), activity.UpdateActivityInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Priority:    entity.ActivityPriority(req.Priority),
		Status:      entity.ActivityStatus(req.Status),
	})
	if err != nil {
		c.handleActivityError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToActivityResponse(output.Activity))
}

// Delete handles DELETE /activities/:id requests. Children of the activity
// are deleted with it.
func (c *ActivityController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid activity ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), activity.DeleteActivityInput{ID: id}); err != nil {
		c.handleActivityError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseDates parses the start and end date strings, writing the error
// response itself on failure.
func (c *ActivityController) parseDates(ctx *gin.Context, startStr, endStr string) (start, end time.Time, ok bool) {
	start, err := parseDate(startStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start date format, expected YYYY-MM-DD",
		})
		return start, end, false
	}

	end, err = parseDate(endStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end date format, expected YYYY-MM-DD",
		})
		return start, end, false
	}

	return start, end, true
}

// handleActivityError maps activity errors to HTTP responses.
func (c *ActivityController) handleActivityError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrActivityNotFound),
		errors.Is(err, domainerror.ErrParentActivityNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainerror.ErrActivityTitleRequired),
		errors.Is(err, domainerror.ErrInvalidActivityPriority),
		errors.Is(err, domainerror.ErrInvalidActivityStatus),
		errors.Is(err, domainerror.ErrNestedParentActivity):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}
