package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bk-finance/backend/internal/application/usecase/category"
	"github.com/bk-finance/backend/internal/domain/entity"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
	"github.com/bk-finance/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category and subcategory endpoints.
type CategoryController struct {
	listUseCase      *category.ListCategoriesUseCase
	createUseCase    *category.CreateCategoryUseCase
	updateUseCase    *category.UpdateCategoryUseCase
	deleteUseCase    *category.DeleteCategoryUseCase
	addSubUseCase    *category.AddSubcategoryUseCase
	updateSubUseCase *category.UpdateSubcategoryUseCase
	deleteSubUseCase *category.DeleteSubcategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	createUseCase *category.CreateCategoryUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
	addSubUseCase *category.AddSubcategoryUseCase,
	updateSubUseCase *category.UpdateSubcategoryUseCase,
	deleteSubUseCase *category.DeleteSubcategoryUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:      listUseCase,
		createUseCase:    createUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		addSubUseCase:    addSubUseCase,
		updateSubUseCase: updateSubUseCase,
		deleteSubUseCase: deleteSubUseCase,
	}
}

// List handles GET /categories requests. Categories marked "both" are
// included regardless of the flow filter.
func (c *CategoryController) List(ctx *gin.Context) {
	input := category.ListCategoriesInput{}

	if flow := ctx.Query("flow"); flow != "" {
		flowType := entity.FlowType(flow)
		input.FlowType = &flowType
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve categories",
		})
		return
	}

	response := dto.CategoryListResponse{
		Categories: make([]dto.CategoryResponse, 0, len(output.Categories)),
	}
	for _, cat := range output.Categories {
		response.Categories = append(response.Categories, dto.ToCategoryResponse(cat.Category, cat.Subcategories))
	}

	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		FlowType:           entity.FlowType(req.FlowType),
		Name:               req.Name,
		InitialSubcategory: req.InitialSubcategory,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	var subs []*entity.Subcategory
	if output.Subcategory != nil {
		subs = append(subs, output.Subcategory)
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category, subs))
}

// Update handles PATCH /categories/:id requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), category.UpdateCategoryInput{
		ID:   id,
		Name: req.Name,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category, nil))
}

// Delete handles DELETE /categories/:id requests. The category and its
// subcategories are deactivated; historical transactions keep their
// references.
func (c *CategoryController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategoryInput{ID: id}); err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddSubcategory handles POST /categories/:id/subcategories requests.
func (c *CategoryController) AddSubcategory(ctx *gin.Context) {
	categoryID, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	var req dto.SubcategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.addSubUseCase.Execute(ctx.Request.Context(), category.AddSubcategoryInput{
		CategoryID: categoryID,
		Name:       req.Name,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSubcategoryResponse(output.Subcategory))
}

// UpdateSubcategory handles PATCH /subcategories/:id requests.
func (c *CategoryController) UpdateSubcategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid subcategory ID format",
		})
		return
	}

	var req dto.SubcategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.updateSubUseCase.Execute(ctx.Request.Context(), category.UpdateSubcategoryInput{
		ID:   id,
		Name: req.Name,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSubcategoryResponse(output.Subcategory))
}

// DeleteSubcategory handles DELETE /subcategories/:id requests.
func (c *CategoryController) DeleteSubcategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid subcategory ID format",
		})
		return
	}

	if err := c.deleteSubUseCase.Execute(ctx.Request.Context(), category.DeleteSubcategoryInput{ID: id}); err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleCategoryError maps category errors to HTTP responses.
func (c *CategoryController) handleCategoryError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrCategoryNotFound),
		errors.Is(err, domainerror.ErrSubcategoryNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainerror.ErrCategoryAlreadyExists),
		errors.Is(err, domainerror.ErrSubcategoryAlreadyExists):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainerror.ErrCategoryNameRequired),
		errors.Is(err, domainerror.ErrInvalidFlowType):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}
