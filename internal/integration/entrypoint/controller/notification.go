package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bk-finance/backend/internal/application/usecase/notification"
	"github.com/bk-finance/backend/internal/integration/entrypoint/dto"
)

// NotificationController handles due-item and digest endpoints.
type NotificationController struct {
	collectUseCase *notification.CollectDueItemsUseCase
	digestUseCase  *notification.SendDueDigestUseCase
	recipients     []string
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(
	collectUseCase *notification.CollectDueItemsUseCase,
	digestUseCase *notification.SendDueDigestUseCase,
	recipients []string,
) *NotificationController {
	return &NotificationController{
		collectUseCase: collectUseCase,
		digestUseCase:  digestUseCase,
		recipients:     recipients,
	}
}

// ListDueItems handles GET /notifications/due-items requests, returning the
// unpaid transactions and unfinished activities inside the alert window.
func (c *NotificationController) ListDueItems(ctx *gin.Context) {
	output, err := c.collectUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to collect due items",
		})
		return
	}

	response := dto.DueItemListResponse{
		Items: make([]dto.DueItemResponse, 0, len(output.Items)),
	}
	for _, item := range output.Items {
		response.Items = append(response.Items, dto.ToDueItemResponse(item))
	}

	ctx.JSON(http.StatusOK, response)
}

// TriggerDigest handles POST /notifications/digest requests, running one
// digest dispatch outside the worker schedule. Dispatch failures are logged
// and recorded, never surfaced as an HTTP error.
func (c *NotificationController) TriggerDigest(ctx *gin.Context) {
	output, err := c.digestUseCase.Execute(ctx.Request.Context(), notification.SendDueDigestInput{
		Recipients: c.recipients,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to run digest",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.DigestRunResponse{
		ItemCount:  output.ItemCount,
		Dispatched: output.Dispatched,
	})
}
