// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// FlowType represents the direction of money movement.
type FlowType string

const (
	FlowTypeInflow  FlowType = "inflow"
	FlowTypeOutflow FlowType = "outflow"
	// FlowTypeBoth is valid for categories only; transactions are always
	// either inflow or outflow.
	FlowTypeBoth FlowType = "both"
)

// Category represents a transaction category in the BK Finance system.
// Categories are soft-deleted (Active=false) so historical transactions
// keep a valid reference.
type Category struct {
	ID        uint
	FlowType  FlowType
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new active Category entity.
func NewCategory(flowType FlowType, name string) *Category {
	now := time.Now().UTC()

	return &Category{
		FlowType:  flowType,
		Name:      name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Matches reports whether the category accepts transactions of the given
// flow type. Categories marked "both" accept either direction.
func (c *Category) Matches(flowType FlowType) bool {
	return c.FlowType == flowType || c.FlowType == FlowTypeBoth
}

// Subcategory represents a subdivision of a category. Its category
// reference is never nil.
type Subcategory struct {
	ID         uint
	CategoryID uint
	Name       string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewSubcategory creates a new active Subcategory entity.
func NewSubcategory(categoryID uint, name string) *Subcategory {
	now := time.Now().UTC()

	return &Subcategory{
		CategoryID: categoryID,
		Name:       name,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// CategoryWithSubcategories represents a category with its active subcategories.
type CategoryWithSubcategories struct {
	Category      *Category
	Subcategories []*Subcategory
}
