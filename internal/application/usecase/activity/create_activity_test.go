package activity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
)

type stubActivityRepo struct {
	adapter.ActivityRepository
	byID    map[uint]*entity.Activity
	created []*entity.Activity
	deleted []uint
}

func (s *stubActivityRepo) FindByID(_ context.Context, id uint) (*entity.Activity, error) {
	a, ok := s.byID[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return a, nil
}

func (s *stubActivityRepo) Create(_ context.Context, activity *entity.Activity) error {
	s.created = append(s.created, activity)
	return nil
}

func (s *stubActivityRepo) DeleteWithChildren(_ context.Context, id uint) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func validInput() CreateActivityInput {
	return CreateActivityInput{
		Title:     "Close the quarter",
		StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		Priority:  entity.PriorityImportantUrgent,
		Status:    entity.ActivityNotStarted,
	}
}

func TestCreateActivityValidation(t *testing.T) {
	parentID := uint(1)
	childID := uint(2)
	repo := &stubActivityRepo{byID: map[uint]*entity.Activity{
		1: {ID: 1, Title: "Parent"},
		2: {ID: 2, ParentID: &parentID, Title: "Child"},
	}}
	uc := NewCreateActivityUseCase(repo)

	tests := []struct {
		name    string
		mutate  func(*CreateActivityInput)
		wantErr error
	}{
		{
			name:    "rejects empty title",
			mutate:  func(in *CreateActivityInput) { in.Title = "  " },
			wantErr: domainerror.ErrActivityTitleRequired,
		},
		{
			name:    "rejects unknown priority",
			mutate:  func(in *CreateActivityInput) { in.Priority = "someday" },
			wantErr: domainerror.ErrInvalidActivityPriority,
		},
		{
			name:    "rejects unknown status",
			mutate:  func(in *CreateActivityInput) { in.Status = "paused" },
			wantErr: domainerror.ErrInvalidActivityStatus,
		},
		{
			name:    "rejects missing parent",
			mutate:  func(in *CreateActivityInput) { id := uint(99); in.ParentID = &id },
			wantErr: domainerror.ErrParentActivityNotFound,
		},
		{
			name:    "rejects nesting under a child",
			mutate:  func(in *CreateActivityInput) { in.ParentID = &childID },
			wantErr: domainerror.ErrNestedParentActivity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			_, err := uc.Execute(context.Background(), input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	input := validInput()
	input.ParentID = &parentID
	output, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Activity.ParentID == nil || *output.Activity.ParentID != parentID {
		t.Error("expected the activity to keep its parent link")
	}
}

func TestDeleteActivityCascades(t *testing.T) {
	repo := &stubActivityRepo{byID: map[uint]*entity.Activity{
		1: {ID: 1, Title: "Parent"},
	}}
	uc := NewDeleteActivityUseCase(repo)

	if err := uc.Execute(context.Background(), DeleteActivityInput{ID: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != 1 {
		t.Errorf("expected cascade delete of activity 1, got %v", repo.deleted)
	}

	if err := uc.Execute(context.Background(), DeleteActivityInput{ID: 42}); !errors.Is(err, domainerror.ErrActivityNotFound) {
		t.Errorf("expected ErrActivityNotFound, got %v", err)
	}
}
