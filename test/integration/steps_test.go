//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

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
	"github.com/bk-finance/backend/internal/infra/server/router"
	"github.com/bk-finance/backend/internal/integration/email"
	"github.com/bk-finance/backend/internal/integration/entrypoint/controller"
	"github.com/bk-finance/backend/internal/integration/entrypoint/middleware"
	"github.com/bk-finance/backend/internal/integration/persistence"
	"github.com/bk-finance/backend/internal/integration/persistence/model"
	"github.com/bk-finance/backend/test/integration/mock"
)

var serverOnce sync.Once
var testServer *httptest.Server
var testDB *mock.Db
var digestSender *email.MockDigestSender

type testContext struct {
	client       *http.Client
	response     *http.Response
	responseBody []byte
}

func startServer() {
	serverOnce.Do(func() {
		_ = os.Setenv("ENV", "test")
		gin.SetMode(gin.TestMode)

		testDB = mock.NewDb([]any{
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
		})

		statementCache := cache.NewStatementCache(mock.NewRedis(), time.Minute)
		digestSender = email.NewMockDigestSender()

		supplierRepo := persistence.NewSupplierRepository(testDB.DbConn)
		categoryRepo := persistence.NewCategoryRepository(testDB.DbConn)
		bankRepo := persistence.NewBankRepository(testDB.DbConn)
		transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
		budgetRepo := persistence.NewBudgetRepository(testDB.DbConn)
		goalRepo := persistence.NewGoalRepository(testDB.DbConn)
		activityRepo := persistence.NewActivityRepository(testDB.DbConn)
		actionPlanRepo := persistence.NewActionPlanRepository(testDB.DbConn)
		dashboardRepo := persistence.NewDashboardRepository(testDB.DbConn)
		dueItemSource := persistence.NewDueItemSource(testDB.DbConn)
		notificationLogRepo := persistence.NewNotificationLogRepository(testDB.DbConn)

		buildStatement := cashflow.NewBuildStatementUseCase(transactionRepo, categoryRepo, bankRepo, statementCache)

		healthController := controller.NewHealthController(func() bool { return true })
		supplierController := controller.NewSupplierController(
			supplier.NewListSuppliersUseCase(supplierRepo),
			supplier.NewCreateSupplierUseCase(supplierRepo),
			supplier.NewUpdateSupplierUseCase(supplierRepo),
			supplier.NewDeleteSupplierUseCase(supplierRepo),
		)
		categoryController := controller.NewCategoryController(
			category.NewListCategoriesUseCase(categoryRepo),
			category.NewCreateCategoryUseCase(categoryRepo),
			category.NewUpdateCategoryUseCase(categoryRepo),
			category.NewDeleteCategoryUseCase(categoryRepo),
			category.NewAddSubcategoryUseCase(categoryRepo),
			category.NewUpdateSubcategoryUseCase(categoryRepo),
			category.NewDeleteSubcategoryUseCase(categoryRepo),
		)
		bankController := controller.NewBankController(
			bank.NewListBanksUseCase(bankRepo),
			bank.NewCreateBankUseCase(bankRepo),
			bank.NewUpdateBankUseCase(bankRepo),
			bank.NewDeleteBankUseCase(bankRepo),
		)
		transactionController := controller.NewTransactionController(
			transaction.NewListTransactionsUseCase(transactionRepo),
			transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, statementCache),
			transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, statementCache),
			transaction.NewDeleteTransactionUseCase(transactionRepo, statementCache),
		)
		cashflowController := controller.NewCashflowController(
			buildStatement,
			cashflow.NewDiffStatementsUseCase(buildStatement),
		)
		budgetController := controller.NewBudgetController(
			budget.NewUpsertBudgetUseCase(budgetRepo, categoryRepo),
			budget.NewGetBudgetUseCase(budgetRepo),
			budget.NewReconcileBudgetUseCase(budgetRepo, transactionRepo, categoryRepo),
		)
		goalController := controller.NewGoalController(
			goal.NewListGoalsUseCase(goalRepo),
			goal.NewCreateGoalUseCase(goalRepo),
			goal.NewUpdateGoalUseCase(goalRepo),
			goal.NewDeleteGoalUseCase(goalRepo),
		)
		activityController := controller.NewActivityController(
			activity.NewListActivitiesUseCase(activityRepo),
			activity.NewCreateActivityUseCase(activityRepo),
			activity.NewUpdateActivityUseCase(activityRepo),
			activity.NewDeleteActivityUseCase(activityRepo),
		)
		actionPlanController := controller.NewActionPlanController(
			actionplan.NewListActionPlansUseCase(actionPlanRepo),
			actionplan.NewCreateActionPlanUseCase(actionPlanRepo, activityRepo),
			actionplan.NewUpdateActionPlanUseCase(actionPlanRepo, activityRepo),
			actionplan.NewDeleteActionPlanUseCase(actionPlanRepo),
		)
		dashboardController := controller.NewDashboardController(
			dashboard.NewGetHomeSummaryUseCase(dashboardRepo),
			dashboard.NewGetCashflowChartUseCase(dashboardRepo),
		)
		notificationController := controller.NewNotificationController(
			notification.NewCollectDueItemsUseCase(dueItemSource),
			notification.NewSendDueDigestUseCase(dueItemSource, digestSender, notificationLogRepo),
			[]string{"owner@example.com"},
		)

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
			middleware.NewRateLimiter(),
		)

		testServer = httptest.NewServer(r.Setup("test"))
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{client: &http.Client{Timeout: 10 * time.Second}}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		startServer()
		if err := testDB.Reset(); err != nil {
			return ctx, err
		}
		if err := mock.ClearRedis(mock.NewRedis()); err != nil {
			return ctx, err
		}
		digestSender.Reset()
		return ctx, nil
	})

	ctx.Step(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.Step(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Step(`^the response list "([^"]*)" should have (\d+) items?$`, test.theResponseListShouldHaveItems)
	ctx.Step(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
}

func (t *testContext) theAPIServerIsRunning() error {
	if testServer == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.doRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	return t.doRequest(method, path, []byte(body.Content))
}

func (t *testContext) doRequest(method, path string, body []byte) error {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, testServer.URL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	t.response = resp
	t.responseBody = nil

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return err
	}
	t.responseBody = buf.Bytes()
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expected int) error {
	if t.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if t.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expected, t.response.StatusCode, t.responseBody)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(path, expected string) error {
	value, err := t.resolveField(path)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("expected field %q to be %q, got %q (body: %s)", path, expected, actual, t.responseBody)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(path string) error {
	if _, err := t.resolveField(path); err != nil {
		return err
	}
	return nil
}

func (t *testContext) theResponseListShouldHaveItems(path string, count int) error {
	value, err := t.resolveField(path)
	if err != nil {
		return err
	}

	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field %q is not a list (body: %s)", path, t.responseBody)
	}
	if len(list) != count {
		return fmt.Errorf("expected list %q to have %d items, got %d (body: %s)", path, count, len(list), t.responseBody)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(substring string) error {
	if !strings.Contains(string(t.responseBody), substring) {
		return fmt.Errorf("expected response to contain %q (body: %s)", substring, t.responseBody)
	}
	return nil
}

// resolveField walks a dot-separated path through the decoded JSON body.
// Numeric segments index into arrays.
func (t *testContext) resolveField(path string) (any, error) {
	var decoded any
	if err := json.Unmarshal(t.responseBody, &decoded); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w (body: %s)", err, t.responseBody)
	}

	current := decoded
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, exists := node[segment]
			if !exists {
				return nil, fmt.Errorf("field %q not found in response (body: %s)", path, t.responseBody)
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("invalid list index %q in path %q (body: %s)", segment, path, t.responseBody)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("cannot descend into %q at segment %q (body: %s)", path, segment, t.responseBody)
		}
	}
	return current, nil
}
