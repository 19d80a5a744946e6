package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/bk-finance/backend/internal/application/usecase/bank"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
	"github.com/bk-finance/backend/internal/integration/entrypoint/dto"
)

// BankController handles bank-account endpoints.
type BankController struct {
	listUseCase   *bank.ListBanksUseCase
	createUseCase *bank.CreateBankUseCase
	updateUseCase *bank.UpdateBankUseCase
	deleteUseCase *bank.DeleteBankUseCase
}

// NewBankController creates a new bank controller instance.
func NewBankController(
	listUseCase *bank.ListBanksUseCase,
	createUseCase *bank.CreateBankUseCase,
	updateUseCase *bank.UpdateBankUseCase,
	deleteUseCase *bank.DeleteBankUseCase,
) *BankController {
	return &BankController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /banks requests.
func (c *BankController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve bank accounts",
		})
		return
	}

	response := dto.BankListResponse{
		Banks:               make([]dto.BankResponse, 0, len(output.Banks)),
		TotalInitialBalance: output.TotalInitialBalance.String(),
	}
	for _, b := range output.Banks {
		response.Banks = append(response.Banks, dto.ToBankResponse(b))
	}

	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /banks requests.
func (c *BankController) Create(ctx *gin.Context) {
	var req dto.CreateBankRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), bank.CreateBankInput{
		Name:           req.Name,
		Account:        req.Account,
		Agency:         req.Agency,
		InitialBalance: decimal.NewFromFloat(req.InitialBalance),
	})
	if err != nil {
		c.handleBankError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBankResponse(output.Bank))
}

// Update handles PATCH /banks/:id requests.
func (c *BankController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid bank ID format",
		})
		return
	}

	var req dto.UpdateBankRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), bank.UpdateBankInput{
		ID:             id,
		Name:           req.Name,
		Account:        req.Account,
		Agency:         req.Agency,
		InitialBalance: decimal.NewFromFloat(req.InitialBalance),
		CurrentBalance: decimal.NewFromFloat(req.CurrentBalance),
	})
	if err != nil {
		c.handleBankError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBankResponse(output.Bank))
}

// Delete handles DELETE /banks/:id requests. Inactive accounts drop out of
// the cash-flow running-balance seed.
func (c *BankController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid bank ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), bank.DeleteBankInput{ID: id}); err != nil {
		c.handleBankError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleBankError maps bank errors to HTTP responses.
func (c *BankController) handleBankError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrBankNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainerror.ErrBankNameRequired):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}
