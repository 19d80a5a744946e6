package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bk-finance/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID           uint            `gorm:"primaryKey;autoIncrement"`
	Title        string          `gorm:"type:varchar(255);not null"`
	Specific     string          `gorm:"type:text"`
	Measurable   string          `gorm:"type:text"`
	Achievable   string          `gorm:"type:text"`
	Relevant     string          `gorm:"type:text"`
	TimeBound    time.Time       `gorm:"type:date;not null;index"`
	TargetValue  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentValue decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status       string          `gorm:"type:varchar(15);not null;index"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:           m.ID,
		Title:        m.Title,
		Specific:     m.Specific,
		Measurable:   m.Measurable,
		Achievable:   m.Achievable,
		Relevant:     m.Relevant,
		TimeBound:    m.TimeBound,
		TargetValue:  m.TargetValue,
		CurrentValue: m.CurrentValue,
		Status:       entity.GoalStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// GoalFromEntity converts a domain Goal entity to a GoalModel.
func GoalFromEntity(g *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:           g.ID,
		Title:        g.Title,
		Specific:     g.Specific,
		Measurable:   g.Measurable,
		Achievable:   g.Achievable,
		Relevant:     g.Relevant,
		TimeBound:    g.TimeBound,
		TargetValue:  g.TargetValue,
		CurrentValue: g.CurrentValue,
		Status:       string(g.Status),
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}
