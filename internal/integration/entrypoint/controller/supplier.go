package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bk-finance/backend/internal/application/usecase/supplier"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
	"github.com/bk-finance/backend/internal/integration/entrypoint/dto"
)

// SupplierController handles supplier endpoints.
type SupplierController struct {
	listUseCase   *supplier.ListSuppliersUseCase
	createUseCase *supplier.CreateSupplierUseCase
	updateUseCase *supplier.UpdateSupplierUseCase
	deleteUseCase *supplier.DeleteSupplierUseCase
}

// NewSupplierController creates a new supplier controller instance.
func NewSupplierController(
	listUseCase *supplier.ListSuppliersUseCase,
	createUseCase *supplier.CreateSupplierUseCase,
	updateUseCase *supplier.UpdateSupplierUseCase,
	deleteUseCase *supplier.DeleteSupplierUseCase,
) *SupplierController {
	return &SupplierController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /suppliers requests.
func (c *SupplierController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve suppliers",
		})
		return
	}

	response := dto.SupplierListResponse{
		Suppliers: make([]dto.SupplierResponse, 0, len(output.Suppliers)),
	}
	for _, s := range output.Suppliers {
		response.Suppliers = append(response.Suppliers, dto.ToSupplierResponse(s))
	}

	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /suppliers requests.
func (c *SupplierController) Create(ctx *gin.Context) {
	var req dto.CreateSupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), supplier.CreateSupplierInput{
		Name:     req.Name,
		Document: req.Document,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Notes:    req.Notes,
	})
	if err != nil {
		c.handleSupplierError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSupplierResponse(output.Supplier))
}

// Update handles PATCH /suppliers/:id requests.
func (c *SupplierController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid supplier ID format",
		})
		return
	}

	var req dto.UpdateSupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), supplier.UpdateSupplierInput{
		ID:       id,
		Name:     req.Name,
		Document: req.Document,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Notes:    req.Notes,
	})
	if err != nil {
		c.handleSupplierError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierResponse(output.Supplier))
}

// Delete handles DELETE /suppliers/:id requests.
func (c *SupplierController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid supplier ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), supplier.DeleteSupplierInput{ID: id}); err != nil {
		c.handleSupplierError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleSupplierError maps supplier errors to HTTP responses.
func (c *SupplierController) handleSupplierError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrSupplierNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainerror.ErrSupplierNameRequired):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}
