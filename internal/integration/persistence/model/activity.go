package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bk-finance/backend/internal/domain/entity"
)

// ActivityModel represents the activities table in the database.
type ActivityModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	ParentID    *uint     `gorm:"index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	StartDate   time.Time `gorm:"type:date;not null"`
	EndDate     time.Time `gorm:"type:date;not null;index"`
	Priority    string    `gorm:"type:varchar(25);not null;index"`
	Status      string    `gorm:"type:varchar(15);not null;index"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the ActivityModel.
func (ActivityModel) TableName() string {
	return "activities"
}

// ToEntity converts an ActivityModel to a domain Activity entity.
func (m *ActivityModel) ToEntity() *entity.Activity {
	return &entity.Activity{
		ID:          m.ID,
		ParentID:    m.ParentID,
		Title:       m.Title,
		Description: m.Description,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Priority:    entity.ActivityPriority(m.Priority),
		Status:      entity.ActivityStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ActivityFromEntity converts a domain Activity entity to an ActivityModel.
func ActivityFromEntity(a *entity.Activity) *ActivityModel {
	return &ActivityModel{
		ID:          a.ID,
		ParentID:    a.ParentID,
		Title:       a.Title,
		Description: a.Description,
		StartDate:   a.StartDate,
		EndDate:     a.EndDate,
		Priority:    string(a.Priority),
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// ActionPlanModel represents the action_plans table in the database.
type ActionPlanModel struct {
	ID         uint            `gorm:"primaryKey;autoIncrement"`
	ActivityID *uint           `gorm:"index"`
	What       string          `gorm:"type:text;not null"`
	Why        string          `gorm:"type:text"`
	Who        string          `gorm:"type:varchar(255)"`
	WhenDate   time.Time       `gorm:"type:date;not null;index"`
	WherePlace string          `gorm:"type:varchar(255)"`
	How        string          `gorm:"type:text"`
	HowMuch    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status     string          `gorm:"type:varchar(15);not null;index"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`

	Activity *ActivityModel `gorm:"foreignKey:ActivityID;references:ID"`
}

// TableName returns the table name for the ActionPlanModel.
func (ActionPlanModel) TableName() string {
	return "action_plans"
}

// ToEntity converts an ActionPlanModel to a domain ActionPlan entity.
func (m *ActionPlanModel) ToEntity() *entity.ActionPlan {
	return &entity.ActionPlan{
		ID:         m.ID,
		ActivityID: m.ActivityID,
		What:       m.What,
		Why:        m.Why,
		Who:        m.Who,
		WhenDate:   m.WhenDate,
		WherePlace: m.WherePlace,
		How:        m.How,
		HowMuch:    m.HowMuch,
		Status:     entity.ActionPlanStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// ToEntityWithActivity converts an ActionPlanModel with its preloaded activity.
func (m *ActionPlanModel) ToEntityWithActivity() *entity.ActionPlanWithActivity {
	withActivity := &entity.ActionPlanWithActivity{Plan: m.ToEntity()}
	if m.Activity != nil {
		withActivity.ActivityTitle = m.Activity.Title
	}
	return withActivity
}

// ActionPlanFromEntity converts a domain ActionPlan entity to an ActionPlanModel.
func ActionPlanFromEntity(p *entity.ActionPlan) *ActionPlanModel {
	return &ActionPlanModel{
		ID:         p.ID,
		ActivityID: p.ActivityID,
		What:       p.What,
		Why:        p.Why,
		Who:        p.Who,
		WhenDate:   p.WhenDate,
		WherePlace: p.WherePlace,
		How:        p.How,
		HowMuch:    p.HowMuch,
		Status:     string(p.Status),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
