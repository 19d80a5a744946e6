// Package controller implements the HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController reports process and database liveness.
type HealthController struct {
	dbHealthChecker func() bool
}

// HealthResponse is the GET /health payload.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker func() bool) *HealthController {
	return &HealthController{dbHealthChecker: dbHealthChecker}
}

// Check handles GET /health. A reachable database answers 200 "ok";
// anything else answers 503 "degraded" so load balancers can drain the
// instance.
func (h *HealthController) Check(ctx *gin.Context) {
	response := HealthResponse{
		Status:    "ok",
		Database:  "up",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	code := http.StatusOK
	if h.dbHealthChecker == nil || !h.dbHealthChecker() {
		response.Status = "degraded"
		response.Database = "down"
		code = http.StatusServiceUnavailable
	}

	ctx.JSON(code, response)
}
