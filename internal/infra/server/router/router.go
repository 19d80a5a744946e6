// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/bk-finance/backend/internal/integration/entrypoint/controller"
	"github.com/bk-finance/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	supplierController     *controller.SupplierController
	categoryController     *controller.CategoryController
	bankController         *controller.BankController
	transactionController  *controller.TransactionController
	cashflowController     *controller.CashflowController
	budgetController       *controller.BudgetController
	goalController         *controller.GoalController
	activityController     *controller.ActivityController
	actionPlanController   *controller.ActionPlanController
	dashboardController    *controller.DashboardController
	notificationController *controller.NotificationController
	digestRateLimiter      *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	supplierController *controller.SupplierController,
	categoryController *controller.CategoryController,
	bankController *controller.BankController,
	transactionController *controller.TransactionController,
	cashflowController *controller.CashflowController,
	budgetController *controller.BudgetController,
	goalController *controller.GoalController,
	activityController *controller.ActivityController,
	actionPlanController *controller.ActionPlanController,
	dashboardController *controller.DashboardController,
	notificationController *controller.NotificationController,
	digestRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:       healthController,
		supplierController:     supplierController,
		categoryController:     categoryController,
		bankController:         bankController,
		transactionController:  transactionController,
		cashflowController:     cashflowController,
		budgetController:       budgetController,
		goalController:         goalController,
		activityController:     activityController,
		actionPlanController:   actionPlanController,
		dashboardController:    dashboardController,
		notificationController: notificationController,
		digestRateLimiter:      digestRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.supplierController != nil {
			suppliers := v1.Group("/suppliers")
			{
				suppliers.GET("", r.supplierController.List)
				suppliers.POST("", r.supplierController.Create)
				suppliers.PATCH("/:id", r.supplierController.Update)
				suppliers.DELETE("/:id", r.supplierController.Delete)
			}
		}

		if r.categoryController != nil {
			categories := v1.Group("/categories")
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PATCH("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
				categories.POST("/:id/subcategories", r.categoryController.AddSubcategory)
			}

			subcategories := v1.Group("/subcategories")
			{
				subcategories.PATCH("/:id", r.categoryController.UpdateSubcategory)
				subcategories.DELETE("/:id", r.categoryController.DeleteSubcategory)
			}
		}

		if r.bankController != nil {
			banks := v1.Group("/banks")
			{
				banks.GET("", r.bankController.List)
				banks.POST("", r.bankController.Create)
				banks.PATCH("/:id", r.bankController.Update)
				banks.DELETE("/:id", r.bankController.Delete)
			}
		}

		if r.transactionController != nil {
			transactions := v1.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PATCH("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		if r.cashflowController != nil {
			cashflow := v1.Group("/cashflow")
			{
				cashflow.GET("/statement", r.cashflowController.GetStatement)
				cashflow.GET("/diff", r.cashflowController.GetDiff)
			}
		}

		if r.budgetController != nil {
			budgets := v1.Group("/budgets")
			{
				budgets.GET("", r.budgetController.Get)
				budgets.PUT("", r.budgetController.Upsert)
				budgets.GET("/reconciliation", r.budgetController.Reconcile)
			}
		}

		if r.goalController != nil {
			goals := v1.Group("/goals")
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.PATCH("/:id", r.goalController.Update)
				goals.DELETE("/:id", r.goalController.Delete)
			}
		}

		if r.activityController != nil {
			activities := v1.Group("/activities")
			{
				activities.GET("", r.activityController.List)
				activities.POST("", r.activityController.Create)
				activities.PATCH("/:id", r.activityController.Update)
				activities.DELETE("/:id", r.activityController.Delete)
			}
		}

		if r.actionPlanController != nil {
			actionPlans := v1.Group("/action-plans")
			{
				actionPlans.GET("", r.actionPlanController.List)
				actionPlans.POST("", r.actionPlanController.Create)
				actionPlans.PATCH("/:id", r.actionPlanController.Update)
				actionPlans.DELETE("/:id", r.actionPlanController.Delete)
			}
		}

		if r.dashboardController != nil {
			dashboard := v1.Group("/dashboard")
			{
				dashboard.GET("/summary", r.dashboardController.GetSummary)
				dashboard.GET("/chart", r.dashboardController.GetChart)
			}
		}

		if r.notificationController != nil {
			notifications := v1.Group("/notifications")
			{
				notifications.GET("/due-items", r.notificationController.ListDueItems)
				if r.digestRateLimiter != nil {
					notifications.POST("/digest", r.digestRateLimiter.Middleware(), r.notificationController.TriggerDigest)
				} else {
					notifications.POST("/digest", r.notificationController.TriggerDigest)
				}
			}
		}
	}
}
