package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/bk-finance/backend/internal/application/adapter"
	"github.com/bk-finance/backend/internal/domain/entity"
	domainerror "github.com/bk-finance/backend/internal/domain/error"
	"github.com/bk-finance/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{db: db}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	if err := r.db.WithContext(ctx).Create(categoryModel).Error; err != nil {
		return err
	}
	category.ID = categoryModel.ID
	return nil
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindByFlowAndName retrieves an active category by flow type and name.
func (r *categoryRepository) FindByFlowAndName(ctx context.Context, flowType entity.FlowType, name string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("flow_type = ? AND name = ? AND active = ?", string(flowType), name, true).
		First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindActive retrieves active categories, optionally restricted to one flow
// direction plus "both" categories.
func (r *categoryRepository) FindActive(ctx context.Context, flowType *entity.FlowType) ([]*entity.Category, error) {
	query := r.db.WithContext(ctx).Where("active = ?", true)
	if flowType != nil {
		query = query.Where("flow_type IN ?", []string{string(*flowType), string(entity.FlowTypeBoth)})
	}

	var categoryModels []model.CategoryModel
	result := query.Order("flow_type ASC, name ASC").Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// FindActiveWithSubcategories retrieves the active category tree in
// taxonomy order.
func (r *categoryRepository) FindActiveWithSubcategories(ctx context.Context) ([]*entity.CategoryWithSubcategories, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Preload("Subcategories", "active = ?", true).
		Where("active = ?", true).
		Order("flow_type ASC, name ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	tree := make([]*entity.CategoryWithSubcategories, len(categoryModels))
	for i, cm := range categoryModels {
		node := &entity.CategoryWithSubcategories{Category: cm.ToEntity()}
		for j := range cm.Subcategories {
			node.Subcategories = append(node.Subcategories, cm.Subcategories[j].ToEntity())
		}
		tree[i] = node
	}
	return tree, nil
}

// Update updates an existing category.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	return r.db.WithContext(ctx).Save(categoryModel).Error
}

// Deactivate soft-deletes a category and all of its subcategories in one
// transaction.
func (r *categoryRepository) Deactivate(ctx context.Context, id uint) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.CategoryModel{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{"active": false, "updated_at": now}).
			Error; err != nil {
			return err
		}
		return tx.Model(&model.SubcategoryModel{}).
			Where("category_id = ?", id).
			Updates(map[string]interface{}{"active": false, "updated_at": now}).
			Error
	})
}

// CreateSubcategory creates a new subcategory in the database.
func (r *categoryRepository) CreateSubcategory(ctx context.Context, subcategory *entity.Subcategory) error {
	subcategoryModel := model.SubcategoryFromEntity(subcategory)
	if err := r.db.WithContext(ctx).Create(subcategoryModel).Error; err != nil {
		return err
	}
	subcategory.ID = subcategoryModel.ID
	return nil
}

// FindSubcategoryByID retrieves a subcategory by its ID.
func (r *categoryRepository) FindSubcategoryByID(ctx context.Context, id uint) (*entity.Subcategory, error) {
	var subcategoryModel model.SubcategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&subcategoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSubcategoryNotFound
		}
		return nil, result.Error
	}
	return subcategoryModel.ToEntity(), nil
}

// FindActiveSubcategories retrieves the active subcategories of a category.
func (r *categoryRepository) FindActiveSubcategories(ctx context.Context, categoryID uint) ([]*entity.Subcategory, error) {
	var subcategoryModels []model.SubcategoryModel
	result := r.db.WithContext(ctx).
		Where("category_id = ? AND active = ?", categoryID, true).
		Order("name ASC").
		Find(&subcategoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	subcategories := make([]*entity.Subcategory, len(subcategoryModels))
	for i, sm := range subcategoryModels {
		subcategories[i] = sm.ToEntity()
	}
	return subcategories, nil
}

// UpdateSubcategory updates an existing subcategory.
func (r *categoryRepository) UpdateSubcategory(ctx context.Context, subcategory *entity.Subcategory) error {
	subcategoryModel := model.SubcategoryFromEntity(subcategory)
	return r.db.WithContext(ctx).Save(subcategoryModel).Error
}

// DeactivateSubcategory soft-deletes a subcategory.
func (r *categoryRepository) DeactivateSubcategory(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&model.SubcategoryModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"active": false, "updated_at": time.Now().UTC()}).
		Error
}
