package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/bk-finance/backend/internal/application/usecase/transaction"
	"github.com/bk-finance/backend/internal/domain/entity"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
	"github.com/bk-finance/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	createUseCase *transaction.CreateTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	input := transaction.ListTransactionsInput{}

	if startDateStr := ctx.Query("start_date"); startDateStr != "" {
		if startDate, err := parseDate(startDateStr); err == nil {
			input.StartDate = &startDate
		}
	}
	if endDateStr := ctx.Query("end_date"); endDateStr != "" {
		if endDate, err := parseDate(endDateStr); err == nil {
			input.EndDate = &endDate
		}
	}
	if status := ctx.Query("status"); status != "" {
		paymentStatus := entity.PaymentStatus(status)
		input.Status = &paymentStatus
	}
	if flow := ctx.Query("flow"); flow != "" {
		flowType := entity.FlowType(flow)
		input.FlowType = &flowType
	}
	if forecast := ctx.Query("forecast"); forecast != "" {
		isForecast := forecast == "true"
		input.IsForecast = &isForecast
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve transactions",
		})
		return
	}

	response := dto.TransactionListResponse{
		Transactions: make([]dto.TransactionResponse, 0, len(output.Transactions)),
	}
	for _, txn := range output.Transactions {
		response.Transactions = append(response.Transactions, dto.ToTransactionResponseWithRefs(txn))
	}

	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /transactions requests. A recurring template expands
// into its occurrences atomically; the response carries every created
// record.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid due date format, expected YYYY-MM-DD",
		})
		return
	}

	paymentDate, ok := parseOptionalDate(ctx, req.PaymentDate)
	if !ok {
		return
	}

	status := entity.PaymentStatus(req.Status)
	if req.Status == "" {
		status = entity.PaymentStatusUnpaid
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		FlowType:         entity.FlowType(req.FlowType),
		CategoryID:       req.CategoryID,
		SubcategoryID:    req.SubcategoryID,
		SupplierID:       req.SupplierID,
		BankID:           req.BankID,
		Description:      req.Description,
		Value:            decimal.NewFromFloat(req.Value),
		Interest:         decimal.NewFromFloat(req.Interest),
		DueDate:          dueDate,
		PaymentDate:      paymentDate,
		Status:           status,
		IsRecurrent:      req.IsRecurrent,
		RecurrencePeriod: entity.RecurrencePeriod(req.RecurrencePeriod),
		Occurrences:      req.Occurrences,
		Notes:            req.Notes,
		IsForecast:       req.IsForecast,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	response := dto.CreateTransactionResponse{
		CreatedCount: output.CreatedCount,
		Transactions: make([]dto.TransactionResponse, 0, len(output.Transactions)),
	}
	if output.RecurrenceGroupID != nil {
		groupID := output.RecurrenceGroupID.String()
		response.RecurrenceGroupID = &groupID
	}
	for _, txn := range output.Transactions {
		response.Transactions = append(response.Transactions, dto.ToTransactionResponse(txn))
	}

	ctx.JSON(http.StatusCreated, response)
}

// Update handles PATCH /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid due date format, expected YYYY-MM-DD",
		})
		return
	}

	paymentDate, ok := parseOptionalDate(ctx, req.PaymentDate)
	if !ok {
		return
	}

	status := entity.PaymentStatus(req.Status)
	if req.Status == "" {
		status = entity.PaymentStatusUnpaid
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), transaction.UpdateTransactionInput{
		ID:            id,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		SupplierID:    req.SupplierID,
		BankID:        req.BankID,
		Description:   req.Description,
		Value:         decimal.NewFromFloat(req.Value),
		Interest:      decimal.NewFromFloat(req.Interest),
		DueDate:       dueDate,
		PaymentDate:   paymentDate,
		Status:        status,
		Notes:         req.Notes,
		IsForecast:    req.IsForecast,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests. Only the addressed
// record is removed; other members of a recurrence group survive.
func (c *TransactionController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{ID: id}); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseOptionalDate parses an optional date string, writing the error
// response itself when the format is invalid.
func parseOptionalDate(ctx *gin.Context, value *string) (*time.Time, bool) {
	if value == nil || *value == "" {
		return nil, true
	}

	parsed, err := parseDate(*value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment date format, expected YYYY-MM-DD",
		})
		return nil, false
	}
	return &parsed, true
}

// handleTransactionError maps transaction errors to HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(c.statusCodeFor(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeFor maps transaction error codes to HTTP status codes.
func (c *TransactionController) statusCodeFor(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound,
		domainerror.ErrCodeTxnCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidFlowType,
		domainerror.ErrCodeNonPositiveValue,
		domainerror.ErrCodeNegativeInterest,
		domainerror.ErrCodeInvalidRecurrencePeriod,
		domainerror.ErrCodeInvalidOccurrenceCount,
		domainerror.ErrCodeCategoryFlowMismatch,
		domainerror.ErrCodeSubcategoryNotInCategory:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
