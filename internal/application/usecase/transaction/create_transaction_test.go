package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
)

type mockTransactionRepo struct {
	adapter.TransactionRepository
	created  []*entity.Transaction
	batchErr error
}

func (m *mockTransactionRepo) CreateBatch(_ context.Context, transactions []*entity.Transaction) error {
	if m.batchErr != nil {
		return m.batchErr
	}
	m.created = append(m.created, transactions...)
	return nil
}

type mockCategoryRepo struct {
	adapter.CategoryRepository
	categories    map[uint]*entity.Category
	subcategories map[uint]*entity.Subcategory
}

func (m *mockCategoryRepo) FindByID(_ context.Context, id uint) (*entity.Category, error) {
	category, ok := m.categories[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return category, nil
}

func (m *mockCategoryRepo) FindSubcategoryByID(_ context.Context, id uint) (*entity.Subcategory, error) {
	sub, ok := m.subcategories[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return sub, nil
}

func uintPtr(v uint) *uint { return &v }

func TestCreateTransactionValidation(t *testing.T) {
	categoryRepo := &mockCategoryRepo{
		categories: map[uint]*entity.Category{
			1: {ID: 1, FlowType: entity.FlowTypeOutflow, Name: "Rent", Active: true},
			2: {ID: 2, FlowType: entity.FlowTypeInflow, Name: "Sales", Active: true},
		},
		subcategories: map[uint]*entity.Subcategory{
			10: {ID: 10, CategoryID: 2, Name: "Retail", Active: true},
		},
	}

	base := CreateTransactionInput{
		FlowType: entity.FlowTypeOutflow,
		Value:    decimal.NewFromInt(100),
		Interest: decimal.Zero,
		DueDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:   entity.PaymentStatusUnpaid,
	}

	tests := []struct {
		name     string
		mutate   func(*CreateTransactionInput)
		wantCode domainerror.TransactionErrorCode
	}{
		{
			name:     "rejects unknown flow type",
			mutate:   func(in *CreateTransactionInput) { in.FlowType = "sideways" },
			wantCode: domainerror.ErrCodeInvalidFlowType,
		},
		{
			name:     "rejects zero value",
			mutate:   func(in *CreateTransactionInput) { in.Value = decimal.Zero },
			wantCode: domainerror.ErrCodeNonPositiveValue,
		},
		{
			name:     "rejects negative interest",
			mutate:   func(in *CreateTransactionInput) { in.Interest = decimal.NewFromInt(-1) },
			wantCode: domainerror.ErrCodeNegativeInterest,
		},
		{
			name: "rejects bad recurrence period",
			mutate: func(in *CreateTransactionInput) {
				in.IsRecurrent = true
				in.RecurrencePeriod = "weekly"
				in.Occurrences = 3
			},
			wantCode: domainerror.ErrCodeInvalidRecurrencePeriod,
		},
		{
			name: "rejects occurrence count above cap",
			mutate: func(in *CreateTransactionInput) {
				in.IsRecurrent = true
				in.RecurrencePeriod = entity.RecurrenceMonthly
				in.Occurrences = entity.MaxRecurrenceOccurrences + 1
			},
			wantCode: domainerror.ErrCodeInvalidOccurrenceCount,
		},
		{
			name:     "rejects missing category",
			mutate:   func(in *CreateTransactionInput) { in.CategoryID = uintPtr(99) },
			wantCode: domainerror.ErrCodeTxnCategoryNotFound,
		},
		{
			name: "rejects category with wrong flow",
			mutate: func(in *CreateTransactionInput) {
				in.CategoryID = uintPtr(2)
			},
			wantCode: domainerror.ErrCodeCategoryFlowMismatch,
		},
		{
			name: "rejects subcategory from another category",
			mutate: func(in *CreateTransactionInput) {
				in.CategoryID = uintPtr(1)
				in.SubcategoryID = uintPtr(10)
			},
			wantCode: domainerror.ErrCodeSubcategoryNotInCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockTransactionRepo{}
			uc := NewCreateTransactionUseCase(repo, categoryRepo, nil)

			input := base
			tt.mutate(&input)

			_, err := uc.Execute(context.Background(), input)
			if err == nil {
				t.Fatal("expected an error")
			}

			var txnErr *domainerror.TransactionError
			if !errors.As(err, &txnErr) {
				t.Fatalf("expected a TransactionError, got %T", err)
			}
			if txnErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, txnErr.Code)
			}
			if len(repo.created) != 0 {
				t.Error("nothing must be persisted on validation failure")
			}
		})
	}
}

func TestCreateTransactionRecurrentBatch(t *testing.T) {
	repo := &mockTransactionRepo{}
	uc := NewCreateTransactionUseCase(repo, &mockCategoryRepo{}, nil)

	output, err := uc.Execute(context.Background(), CreateTransactionInput{
		FlowType:         entity.FlowTypeOutflow,
		Description:      "Office lease",
		Value:            decimal.NewFromInt(1200),
		Interest:         decimal.NewFromInt(50),
		DueDate:          time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Status:           entity.PaymentStatusUnpaid,
		IsRecurrent:      true,
		RecurrencePeriod: entity.RecurrenceMonthly,
		Occurrences:      2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.CreatedCount != 3 {
		t.Fatalf("expected 3 records (original plus 2), got %d", output.CreatedCount)
	}
	if output.RecurrenceGroupID == nil {
		t.Fatal("expected a recurrence group ID")
	}

	want := decimal.NewFromInt(1250)
	for i, record := range repo.created {
		if !record.TotalValue.Equal(want) {
			t.Errorf("record %d: expected total %s, got %s", i, want, record.TotalValue)
		}
	}
	if got := repo.created[1].DueDate.Format("2006-01-02"); got != "2024-02-29" {
		t.Errorf("expected second occurrence on 2024-02-29, got %s", got)
	}
}

func TestCreateTransactionBatchFailure(t *testing.T) {
	repo := &mockTransactionRepo{batchErr: errors.New("connection reset")}
	uc := NewCreateTransactionUseCase(repo, &mockCategoryRepo{}, nil)

	_, err := uc.Execute(context.Background(), CreateTransactionInput{
		FlowType: entity.FlowTypeInflow,
		Value:    decimal.NewFromInt(10),
		DueDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:   entity.PaymentStatusPaid,
	})

	var txnErr *domainerror.TransactionError
	if !errors.As(err, &txnErr) {
		t.Fatalf("expected a TransactionError, got %T", err)
	}
	if txnErr.Code != domainerror.ErrCodeBatchInsertFailed {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeBatchInsertFailed, txnErr.Code)
	}
}
