package cashflow

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
)

// BuildStatementInput selects the statement variant and window.
type BuildStatementInput struct {
	// Months is the window length. Zero selects the default window.
	Months     int
	IsForecast bool
}

// BuildStatementOutput wraps the built statement.
type BuildStatementOutput struct {
	Statement *Statement
}

// BuildStatementUseCase assembles the cash-flow matrix for one forecast
// variant: taxonomy rows from the active category tree, monthly sums from
// the transaction store, and the four footer series.
type BuildStatementUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	bankRepo        adapter.BankRepository
	cache           adapter.StatementCache
	now             func() time.Time
}

// NewBuildStatementUseCase creates a new BuildStatementUseCase instance.
func NewBuildStatementUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	bankRepo adapter.BankRepository,
	cache adapter.StatementCache,
) *BuildStatementUseCase {
	return &BuildStatementUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		bankRepo:        bankRepo,
		cache:           cache,
		now:             time.Now,
	}
}

// Execute builds the statement, serving it from the cache when a fresh copy
// exists. The statement is a pure function of store state, so serving a
// cached copy is always consistent with some recent store snapshot.
func (uc *BuildStatementUseCase) Execute(ctx context.Context, input BuildStatementInput) (*BuildStatementOutput, error) {
	months := input.Months
	if months == 0 {
		months = DefaultWindowMonths
	}
	if months < 1 || months > MaxWindowMonths {
		return nil, domainerror.NewCashflowError(
			domainerror.ErrCodeInvalidWindow,
			fmt.Sprintf("window must be between 1 and %d months", MaxWindowMonths),
			domainerror.ErrInvalidWindow,
		)
	}

	cacheKey := fmt.Sprintf("cashflow:statement:%t:%d", input.IsForecast, months)
	if uc.cache != nil {
		payload, found, err := uc.cache.Get(ctx, cacheKey)
		if err != nil {
			slog.Warn("statement cache read failed", "error", err)
		} else if found {
			var cached Statement
			if err := json.Unmarshal(payload, &cached); err == nil {
				return &BuildStatementOutput{Statement: &cached}, nil
			}
			slog.Warn("discarding malformed cached statement", "key", cacheKey)
		}
	}

	statement, err := uc.build(ctx, months, input.IsForecast)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if payload, err := json.Marshal(statement); err == nil {
			if err := uc.cache.Set(ctx, cacheKey, payload); err != nil {
				slog.Warn("statement cache write failed", "error", err)
			}
		}
	}

	return &BuildStatementOutput{Statement: statement}, nil
}

func (uc *BuildStatementUseCase) build(ctx context.Context, months int, isForecast bool) (*Statement, error) {
	start := windowStart(uc.now().UTC())
	end := start.AddDate(0, months, 0)

	taxonomy, err := uc.categoryRepo.FindActiveWithSubcategories(ctx)
	if err != nil {
		return nil, err
	}

	buckets, err := uc.transactionRepo.SumByMonth(ctx, start, end, isForecast)
	if err != nil {
		return nil, err
	}

	opening, err := uc.bankRepo.SumActiveInitialBalances(ctx)
	if err != nil {
		return nil, err
	}

	statement := &Statement{
		Start:      start,
		Months:     monthLabels(start, months),
		IsForecast: isForecast,
		Rows:       buildRows(taxonomy, buckets, months),
	}

	fillCells(statement.Rows, buckets, start, months)
	appendFooters(statement, opening, months)

	return statement, nil
}

// buildRows lays out the taxonomy: the outflow section first, then inflow,
// each ordered by category then subcategory name. Categories marked "both"
// appear in both sections. A trailing uncategorized row is added per
// section when orphan sums exist.
func buildRows(taxonomy []*entity.CategoryWithSubcategories, buckets []adapter.MonthlyBucket, months int) []StatementRow {
	orphans := map[entity.FlowType]bool{}
	for _, b := range buckets {
		if b.CategoryID == nil {
			orphans[b.FlowType] = true
		}
	}

	var rows []StatementRow
	for _, flow := range []entity.FlowType{entity.FlowTypeOutflow, entity.FlowTypeInflow} {
		for _, node := range taxonomy {
			if !node.Category.Matches(flow) {
				continue
			}
			categoryID := node.Category.ID
			if len(node.Subcategories) == 0 {
				rows = append(rows, StatementRow{
					FlowType:        flow,
					CategoryID:      &categoryID,
					CategoryName:    node.Category.Name,
					SubcategoryName: SubcategoryPlaceholder,
					Values:          zeroSeries(months),
				})
				continue
			}
			for _, sub := range node.Subcategories {
				subID := sub.ID
				rows = append(rows, StatementRow{
					FlowType:        flow,
					CategoryID:      &categoryID,
					SubcategoryID:   &subID,
					CategoryName:    node.Category.Name,
					SubcategoryName: sub.Name,
					Values:          zeroSeries(months),
				})
			}
		}
		if orphans[flow] {
			rows = append(rows, StatementRow{
				FlowType:        flow,
				CategoryName:    UncategorizedLabel,
				SubcategoryName: SubcategoryPlaceholder,
				Values:          zeroSeries(months),
			})
		}
	}
	return rows
}

// fillCells distributes the monthly buckets over the taxonomy rows. Buckets
// of inactive categories have no row and are dropped, matching the
// taxonomy-driven shape of the table.
func fillCells(rows []StatementRow, buckets []adapter.MonthlyBucket, start time.Time, months int) {
	index := make(map[rowKey]int, len(rows))
	for i, row := range rows {
		index[keyOf(row.FlowType, row.CategoryID, row.SubcategoryID)] = i
	}

	for _, b := range buckets {
		i, ok := index[keyOf(b.FlowType, b.CategoryID, b.SubcategoryID)]
		if !ok {
			continue
		}
		m := monthIndex(start, b.Month, months)
		if m < 0 {
			continue
		}
		rows[i].Values[m] = rows[i].Values[m].Add(b.Total)
	}
}

// appendFooters computes the four footer series from the data rows.
func appendFooters(statement *Statement, opening decimal.Decimal, months int) {
	statement.TotalOutflow = zeroSeries(months)
	statement.TotalInflow = zeroSeries(months)
	statement.NetMonth = zeroSeries(months)
	statement.RunningBalance = zeroSeries(months)

	for _, row := range statement.Rows {
		for m, v := range row.Values {
			switch row.FlowType {
			case entity.FlowTypeOutflow:
				statement.TotalOutflow[m] = statement.TotalOutflow[m].Add(v)
			case entity.FlowTypeInflow:
				statement.TotalInflow[m] = statement.TotalInflow[m].Add(v)
			}
		}
	}

	balance := opening
	for m := 0; m < months; m++ {
		statement.NetMonth[m] = statement.TotalInflow[m].Sub(statement.TotalOutflow[m])
		balance = balance.Add(statement.NetMonth[m])
		statement.RunningBalance[m] = balance
	}
}
