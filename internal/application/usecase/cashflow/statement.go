// Package cashflow contains the cash-flow statement use cases.
package cashflow

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bk-finance/backend/internal/domain/entity"
)

// SubcategoryPlaceholder labels the row of a category that has no
// subcategories.
const SubcategoryPlaceholder = "—"

// UncategorizedLabel labels the row that collects transactions without a
// category reference.
const UncategorizedLabel = "(uncategorized)"

// DefaultWindowMonths is the statement window when the caller does not
// choose one.
const DefaultWindowMonths = 24

// MaxWindowMonths caps the statement window.
const MaxWindowMonths = 24

// StatementRow is one taxonomy line of the statement: a (category,
// subcategory, flow) tuple with one cell per month of the window.
type StatementRow struct {
	FlowType        entity.FlowType   `json:"flowType"`
	CategoryID      *uint             `json:"categoryId"`
	SubcategoryID   *uint             `json:"subcategoryId"`
	CategoryName    string            `json:"categoryName"`
	SubcategoryName string            `json:"subcategoryName"`
	Values          []decimal.Decimal `json:"values"`
}

// Statement is the full cash-flow matrix: taxonomy rows plus the four
// footer series, each indexed by month.
type Statement struct {
	Start          time.Time         `json:"start"`
	Months         []string          `json:"months"`
	IsForecast     bool              `json:"isForecast"`
	Rows           []StatementRow    `json:"rows"`
	TotalOutflow   []decimal.Decimal `json:"totalOutflow"`
	TotalInflow    []decimal.Decimal `json:"totalInflow"`
	NetMonth       []decimal.Decimal `json:"netMonth"`
	RunningBalance []decimal.Decimal `json:"runningBalance"`
}

// DiffRow is one line of the forecast-versus-actual difference matrix.
type DiffRow struct {
	FlowType        entity.FlowType   `json:"flowType"`
	CategoryID      *uint             `json:"categoryId"`
	SubcategoryID   *uint             `json:"subcategoryId"`
	CategoryName    string            `json:"categoryName"`
	SubcategoryName string            `json:"subcategoryName"`
	Values          []decimal.Decimal `json:"values"`
}

// DiffStatement holds forecast minus actual per taxonomy cell. It carries
// no footer series.
type DiffStatement struct {
	Start  time.Time `json:"start"`
	Months []string  `json:"months"`
	Rows   []DiffRow `json:"rows"`
}

// rowKey identifies a taxonomy row. Zero IDs stand for nil references.
type rowKey struct {
	flowType      entity.FlowType
	categoryID    uint
	subcategoryID uint
}

func keyOf(flowType entity.FlowType, categoryID, subcategoryID *uint) rowKey {
	k := rowKey{flowType: flowType}
	if categoryID != nil {
		k.categoryID = *categoryID
	}
	if subcategoryID != nil {
		k.subcategoryID = *subcategoryID
	}
	return k
}

// windowStart anchors the statement window at the first day of now's month.
func windowStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// monthLabels renders the window months as YYYY-MM labels.
func monthLabels(start time.Time, months int) []string {
	labels := make([]string, months)
	for i := 0; i < months; i++ {
		labels[i] = start.AddDate(0, i, 0).Format("2006-01")
	}
	return labels
}

// zeroSeries builds a slice of decimal zeros, one per month.
func zeroSeries(months int) []decimal.Decimal {
	series := make([]decimal.Decimal, months)
	for i := range series {
		series[i] = decimal.Zero
	}
	return series
}

// monthIndex returns the zero-based offset of t's month from start, or -1
// when t falls outside the window.
func monthIndex(start, t time.Time, months int) int {
	idx := (t.Year()-start.Year())*12 + int(t.Month()) - int(start.Month())
	if idx < 0 || idx >= months {
		return -1
	}
	return idx
}
