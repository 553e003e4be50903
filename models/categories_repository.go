package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// ErrCategoryInUse is returned when a category still has products referencing
// it. Deleting such a category is rejected rather than cascaded so that
// product rows are never destroyed as a side effect.
var ErrCategoryInUse = errors.New("category is in use by existing products")

type CategoriesRepository struct {
	db *gorm.DB
}

func NewCategoriesRepository(db *gorm.DB) *CategoriesRepository {
	return &CategoriesRepository{
		db: db,
	}
}

// GetAllCategories returns every category ordered by name, each with a live
// count of the products referencing it.
func (r *CategoriesRepository) GetAllCategories() ([]CategoryWithCount, error) {
	var categories []CategoryWithCount
	if err := r.db.Model(&Category{}).
		Select("categories.*, COUNT(products.product_id) AS products").
		Joins("LEFT JOIN products ON products.category_id = categories.category_id").
		Group("categories.category_id").
		Order("categories.name ASC").
		Scan(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory inserts the category; the store assigns id and timestamps
// back onto the passed struct.
func (r *CategoriesRepository) CreateCategory(category *Category) error {
	return r.db.Create(category).Error
}

// UpdateCategory renames the category and refreshes its updated_at.
func (r *CategoriesRepository) UpdateCategory(id uint, name string) error {
	res := r.db.Model(&Category{}).
		Where("category_id = ?", id).
		Update("name", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// DeleteCategory removes the category unless products still reference it.
// The in-use check and the delete are separate statements; a product created
// in between slips through, same as the store's own autocommit behavior.
func (r *CategoriesRepository) DeleteCategory(id uint) error {
	var inUse int64
	if err := r.db.Model(&Product{}).
		Where("category_id = ?", id).
		Count(&inUse).Error; err != nil {
		return err
	}
	if inUse > 0 {
		return ErrCategoryInUse
	}

	res := r.db.Delete(&Category{}, "category_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
