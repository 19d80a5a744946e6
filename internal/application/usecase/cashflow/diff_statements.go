package cashflow

import (
	"context"

	"github.com/shopspring/decimal"
)

// DiffStatementsInput selects the window of the comparison.
type DiffStatementsInput struct {
	// Months is the window length. Zero selects the default window.
	Months int
}

// DiffStatementsOutput wraps the difference matrix.
type DiffStatementsOutput struct {
	Diff *DiffStatement
}

// DiffStatementsUseCase builds the forecast and actual statements over the
// same window and subtracts them cell by cell. Rows present in only one
// statement are compared against zeros; footer series are not compared.
type DiffStatementsUseCase struct {
	builder *BuildStatementUseCase
}

// NewDiffStatementsUseCase creates a new DiffStatementsUseCase instance.
func NewDiffStatementsUseCase(builder *BuildStatementUseCase) *DiffStatementsUseCase {
	return &DiffStatementsUseCase{builder: builder}
}

// Execute computes forecast minus actual for every taxonomy cell.
func (uc *DiffStatementsUseCase) Execute(ctx context.Context, input DiffStatementsInput) (*DiffStatementsOutput, error) {
	forecast, err := uc.builder.Execute(ctx, BuildStatementInput{Months: input.Months, IsForecast: true})
	if err != nil {
		return nil, err
	}

	actual, err := uc.builder.Execute(ctx, BuildStatementInput{Months: input.Months, IsForecast: false})
	if err != nil {
		return nil, err
	}

	return &DiffStatementsOutput{Diff: diff(forecast.Statement, actual.Statement)}, nil
}

func diff(forecast, actual *Statement) *DiffStatement {
	months := len(forecast.Months)

	actualByKey := make(map[rowKey][]decimal.Decimal, len(actual.Rows))
	for _, row := range actual.Rows {
		actualByKey[keyOf(row.FlowType, row.CategoryID, row.SubcategoryID)] = row.Values
	}

	result := &DiffStatement{
		Start:  forecast.Start,
		Months: forecast.Months,
	}

	seen := make(map[rowKey]bool, len(forecast.Rows))
	for _, row := range forecast.Rows {
		key := keyOf(row.FlowType, row.CategoryID, row.SubcategoryID)
		seen[key] = true

		values := make([]decimal.Decimal, months)
		actualValues := actualByKey[key]
		for m := 0; m < months; m++ {
			v := row.Values[m]
			if actualValues != nil {
				v = v.Sub(actualValues[m])
			}
			values[m] = v
		}
		result.Rows = append(result.Rows, DiffRow{
			FlowType:        row.FlowType,
			CategoryID:      row.CategoryID,
			SubcategoryID:   row.SubcategoryID,
			CategoryName:    row.CategoryName,
			SubcategoryName: row.SubcategoryName,
			Values:          values,
		})
	}

	// Rows the actual statement has but the forecast lacks compare zero
	// forecast against the actual cells.
	for _, row := range actual.Rows {
		key := keyOf(row.FlowType, row.CategoryID, row.SubcategoryID)
		if seen[key] {
			continue
		}
		values := make([]decimal.Decimal, months)
		for m := 0; m < months; m++ {
			values[m] = decimal.Zero.Sub(row.Values[m])
		}
		result.Rows = append(result.Rows, DiffRow{
			FlowType:        row.FlowType,
			CategoryID:      row.CategoryID,
			SubcategoryID:   row.SubcategoryID,
			CategoryName:    row.CategoryName,
			SubcategoryName: row.SubcategoryName,
			Values:          values,
		})
	}

	return result
}
