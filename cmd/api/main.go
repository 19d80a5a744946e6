// Package main is the entry point for the BK Finance API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/bk-finance/backend/config"
	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/application/usecase/actionplan"
	"github.com/bk-finance/backend/internal/application/usecase/activity"
	"github.com/bk-finance/backend/internal/application/usecase/bank"
	"github.com/bk-finance/backend/internal/application/usecase/budget"
	"github.com/bk-finance/backend/internal/application/usecase/cashflow"
	"github.com/bk-finance/backend/internal/application/usecase/category"
	"github.com/bk-finance/backend/internal/application/usecase/dashboard"
	"github.com/bk-finance/backend/internal/application/usecase/goal"
	"github.com/bk-finance/backend/internal/application/usecase/notification"
	"github.com/bk-finance/backend/internal/application/usecase/supplier"
	"github.com/bk-finance/backend/internal/application/usecase/transaction"
	"github.com/bk-finance/backend/internal/infra/cache"
	"github.com/bk-finance/backend/internal/infra/db"
	"github.com/bk-finance/backend/internal/infra/server/router"
	"github.com/bk-finance/backend/internal/integration/email"
	"github.com/bk-finance/backend/internal/integration/entrypoint/controller"
	"github.com/bk-finance/backend/internal/integration/entrypoint/middleware"
	"github.com/bk-finance/backend/internal/integration/persistence"
	"github.com/bk-finance/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting BK Finance API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.SupplierModel{},
		&model.CategoryModel{},
		&model.SubcategoryModel{},
		&model.BankModel{},
		&model.TransactionModel{},
		&model.BudgetLineModel{},
		&model.GoalModel{},
		&model.ActivityModel{},
		&model.ActionPlanModel{},
		&model.NotificationLogModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize the statement cache. A missing Redis degrades statement
	// reads to uncached; it never blocks startup. The variable stays a nil
	// interface on failure so use cases skip caching cleanly.
	var statementCache adapter.StatementCache
	if redisClient, err := cache.NewRedisConnection(&cfg.Redis); err != nil {
		slog.Warn("Redis connection failed, statements will not be cached", "error", err)
	} else {
		statementCache = cache.NewStatementCache(redisClient, cfg.Cache.StatementTTL)
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("Failed to close Redis connection", "error", err)
			}
		}()
	}

	// Create repositories
	supplierRepo := persistence.NewSupplierRepository(database.DB())
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	bankRepo := persistence.NewBankRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	budgetRepo := persistence.NewBudgetRepository(database.DB())
	goalRepo := persistence.NewGoalRepository(database.DB())
	activityRepo := persistence.NewActivityRepository(database.DB())
	actionPlanRepo := persistence.NewActionPlanRepository(database.DB())
	dashboardRepo := persistence.NewDashboardRepository(database.DB())
	dueItemSource := persistence.NewDueItemSource(database.DB())
	notificationLogRepo := persistence.NewNotificationLogRepository(database.DB())

	// Create the digest sender
	digestSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)

	// Create use cases
	listSuppliers := supplier.NewListSuppliersUseCase(supplierRepo)
	createSupplier := supplier.NewCreateSupplierUseCase(supplierRepo)
	updateSupplier := supplier.NewUpdateSupplierUseCase(supplierRepo)
	deleteSupplier := supplier.NewDeleteSupplierUseCase(supplierRepo)

	listCategories := category.NewListCategoriesUseCase(categoryRepo)
	createCategory := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategory := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategory := category.NewDeleteCategoryUseCase(categoryRepo)
	addSubcategory := category.NewAddSubcategoryUseCase(categoryRepo)
	updateSubcategory := category.NewUpdateSubcategoryUseCase(categoryRepo)
	deleteSubcategory := category.NewDeleteSubcategoryUseCase(categoryRepo)

	listBanks := bank.NewListBanksUseCase(bankRepo)
	createBank := bank.NewCreateBankUseCase(bankRepo)
	updateBank := bank.NewUpdateBankUseCase(bankRepo)
	deleteBank := bank.NewDeleteBankUseCase(bankRepo)

	listTransactions := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransaction := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, statementCache)
	updateTransaction := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, statementCache)
	deleteTransaction := transaction.NewDeleteTransactionUseCase(transactionRepo, statementCache)

	buildStatement := cashflow.NewBuildStatementUseCase(transactionRepo, categoryRepo, bankRepo, statementCache)
	diffStatements := cashflow.NewDiffStatementsUseCase(buildStatement)

	upsertBudget := budget.NewUpsertBudgetUseCase(budgetRepo, categoryRepo)
	getBudget := budget.NewGetBudgetUseCase(budgetRepo)
	reconcileBudget := budget.NewReconcileBudgetUseCase(budgetRepo, transactionRepo, categoryRepo)

	listGoals := goal.NewListGoalsUseCase(goalRepo)
	createGoal := goal.NewCreateGoalUseCase(goalRepo)
	updateGoal := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoal := goal.NewDeleteGoalUseCase(goalRepo)

	listActivities := activity.NewListActivitiesUseCase(activityRepo)
	createActivity := activity.NewCreateActivityUseCase(activityRepo)
	updateActivity := activity.NewUpdateActivityUseCase(activityRepo)
	deleteActivity := activity.NewDeleteActivityUseCase(activityRepo)

	listActionPlans := actionplan.NewListActionPlansUseCase(actionPlanRepo)
	createActionPlan := actionplan.NewCreateActionPlanUseCase(actionPlanRepo, activityRepo)
	updateActionPlan := actionplan.NewUpdateActionPlanUseCase(actionPlanRepo, activityRepo)
	deleteActionPlan := actionplan.NewDeleteActionPlanUseCase(actionPlanRepo)

	homeSummary := dashboard.NewGetHomeSummaryUseCase(dashboardRepo)
	cashflowChart := dashboard.NewGetCashflowChartUseCase(dashboardRepo)

	collectDueItems := notification.NewCollectDueItemsUseCase(dueItemSource)
	sendDueDigest := notification.NewSendDueDigestUseCase(dueItemSource, digestSender, notificationLogRepo)

	// Create controllers
	healthController := controller.NewHealthController(database.HealthCheck)
	supplierController := controller.NewSupplierController(listSuppliers, createSupplier, updateSupplier, deleteSupplier)
	categoryController := controller.NewCategoryController(
		listCategories, createCategory, updateCategory, deleteCategory,
		addSubcategory, updateSubcategory, deleteSubcategory,
	)
	bankController := controller.NewBankController(listBanks, createBank, updateBank, deleteBank)
	transactionController := controller.NewTransactionController(listTransactions, createTransaction, updateTransaction, deleteTransaction)
	cashflowController := controller.NewCashflowController(buildStatement, diffStatements)
	budgetController := controller.NewBudgetController(upsertBudget, getBudget, reconcileBudget)
	goalController := controller.NewGoalController(listGoals, createGoal, updateGoal, deleteGoal)
	activityController := controller.NewActivityController(listActivities, createActivity, updateActivity, deleteActivity)
	actionPlanController := controller.NewActionPlanController(listActionPlans, createActionPlan, updateActionPlan, deleteActionPlan)
	dashboardController := controller.NewDashboardController(homeSummary, cashflowChart)
	notificationController := controller.NewNotificationController(collectDueItems, sendDueDigest, cfg.Email.Recipients)

	digestRateLimiter := middleware.NewRateLimiter()

	// Start the digest worker
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	if cfg.Email.WorkerEnabled {
		worker := email.NewWorker(sendDueDigest, email.WorkerConfig{
			Recipients: cfg.Email.Recipients,
			Interval:   cfg.Email.DigestInterval,
		})
		go worker.Start(workerCtx)
	} else {
		slog.Info("Digest worker disabled")
	}

	// Setup router
	r := router.NewRouter(
		healthController,
		supplierController,
		categoryController,
		bankController,
		transactionController,
		cashflowController,
		budgetController,
		goalController,
		activityController,
		actionPlanController,
		dashboardController,
		notificationController,
		digestRateLimiter,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
