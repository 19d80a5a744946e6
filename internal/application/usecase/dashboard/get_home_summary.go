package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bk-finance/backend/internal/domain/entity"
)

// DueSoonDays is the look-ahead window of the due-soon card.
const DueSoonDays = 3

// HomeSummary holds the home-page cards.
type HomeSummary struct {
	Overdue      decimal.Decimal
	DueSoon      decimal.Decimal
	Receivable   decimal.Decimal
	IncomeToday  decimal.Decimal
	ExpenseToday decimal.Decimal
	BalanceToday decimal.Decimal
}

// GetHomeSummaryOutput wraps the summary.
type GetHomeSummaryOutput struct {
	Summary *HomeSummary
}

// GetHomeSummaryUseCase computes the home-page cards: overdue and due-soon
// payables, open receivables, and today's paid movement. The "today" cards
// go by payment date, so a bill settled early or late still shows up the
// day the money moved.
type GetHomeSummaryUseCase struct {
	repo Repository
	now  func() time.Time
}

// NewGetHomeSummaryUseCase creates a new GetHomeSummaryUseCase instance.
func NewGetHomeSummaryUseCase(repo Repository) *GetHomeSummaryUseCase {
	return &GetHomeSummaryUseCase{repo: repo, now: time.Now}
}

// Execute builds the summary for today.
func (uc *GetHomeSummaryUseCase) Execute(ctx context.Context) (*GetHomeSummaryOutput, error) {
	now := uc.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	overdue, err := uc.repo.SumUnpaidOutflowBefore(ctx, today)
	if err != nil {
		return nil, err
	}

	dueSoon, err := uc.repo.SumUnpaidOutflowBetween(ctx, today, today.AddDate(0, 0, DueSoonDays))
	if err != nil {
		return nil, err
	}

	receivable, err := uc.repo.SumUnpaidInflow(ctx)
	if err != nil {
		return nil, err
	}

	incomeToday, err := uc.repo.SumPaidByFlowOn(ctx, today, entity.FlowTypeInflow)
	if err != nil {
		return nil, err
	}

	expenseToday, err := uc.repo.SumPaidByFlowOn(ctx, today, entity.FlowTypeOutflow)
	if err != nil {
		return nil, err
	}

	return &GetHomeSummaryOutput{Summary: &HomeSummary{
		Overdue:      overdue,
		DueSoon:      dueSoon,
		Receivable:   receivable,
		IncomeToday:  incomeToday,
		ExpenseToday: expenseToday,
		BalanceToday: incomeToday.Sub(expenseToday),
	}}, nil
}
