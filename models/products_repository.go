package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

// GetAllProducts returns every product ordered by name with its category
// preloaded. A product whose category row is gone still comes back, with a
// zero-value Category, so the listing never hides rows.
func (r *ProductsRepository) GetAllProducts() ([]Product, error) {
	var products []Product
	if err := r.db.
		Preload("Category").
		Order("name ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductsRepository) GetByID(id uint) (*Product, error) {
	var product Product
	if err := r.db.
		Preload("Category").
		Where("product_id = ?", id).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// CreateProduct verifies the category exists, then inserts. The check and the
// insert are two statements with no wrapping transaction; a category deleted
// in between is the store's race to lose, matching its autocommit model.
func (r *ProductsRepository) CreateProduct(product *Product) error {
	exists, err := r.categoryExists(product.CategoryID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrCategoryNotFound
	}
	return r.db.Create(product).Error
}

// UpdateProduct applies a partial update by merging the supplied fields into
// the stored row server-side. Omitted fields keep their current values; a
// supplied category_id must resolve to an existing category.
func (r *ProductsRepository) UpdateProduct(id uint, update ProductUpdate) error {
	var product Product
	if err := r.db.
		Where("product_id = ?", id).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	if update.CategoryID != nil {
		exists, err := r.categoryExists(*update.CategoryID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrCategoryNotFound
		}
		product.CategoryID = *update.CategoryID
	}
	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Price != nil {
		product.Price = *update.Price
	}

	return r.db.Save(&product).Error
}

func (r *ProductsRepository) DeleteProduct(id uint) error {
	res := r.db.Delete(&Product{}, "product_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *ProductsRepository) categoryExists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&Category{}).
		Where("category_id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
