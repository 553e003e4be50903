package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCategory(t *testing.T, db *gorm.DB, name string) Category {
	t.Helper()
	c := Category{Name: name}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func seedProduct(t *testing.T, db *gorm.DB, name string, categoryID uint) Product {
	t.Helper()
	p := Product{
		Name:        name,
		Description: "seeded",
		CategoryID:  categoryID,
		Price:       decimal.NewFromFloat(1.50),
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func TestCreateCategory(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoriesRepository(db)

	c := Category{Name: "Beverages"}
	require.NoError(t, repo.CreateCategory(&c))

	assert.NotZero(t, c.CategoryID, "store should assign the id")
	assert.False(t, c.CreatedAt.IsZero())
	assert.WithinDuration(t, c.CreatedAt, c.UpdatedAt, time.Second)
}

func TestGetAllCategories(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoriesRepository(db)

	snacks := seedCategory(t, db, "Snacks")
	beverages := seedCategory(t, db, "Beverages")
	seedProduct(t, db, "Cola", beverages.CategoryID)
	seedProduct(t, db, "Water", beverages.CategoryID)

	categories, err := repo.GetAllCategories()
	require.NoError(t, err)
	require.Len(t, categories, 2)

	// Ordered by name, with a live product count per category.
	assert.Equal(t, "Beverages", categories[0].Name)
	assert.Equal(t, int64(2), categories[0].Products)
	assert.Equal(t, "Snacks", categories[1].Name)
	assert.Equal(t, int64(0), categories[1].Products)

	// The count tracks the current product rows.
	seedProduct(t, db, "Pretzels", snacks.CategoryID)
	categories, err = repo.GetAllCategories()
	require.NoError(t, err)
	assert.Equal(t, int64(1), categories[1].Products)
}

func TestUpdateCategory(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoriesRepository(db)

	c := seedCategory(t, db, "Beverages")

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.UpdateCategory(c.CategoryID, "Drinks"))

	var got Category
	require.NoError(t, db.First(&got, "category_id = ?", c.CategoryID).Error)
	assert.Equal(t, "Drinks", got.Name)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt), "updated_at should be refreshed")
}

func TestUpdateCategoryNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoriesRepository(db)

	err := repo.UpdateCategory(9999, "Drinks")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestDeleteCategory(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoriesRepository(db)

	c := seedCategory(t, db, "Beverages")
	require.NoError(t, repo.DeleteCategory(c.CategoryID))

	var count int64
	require.NoError(t, db.Model(&Category{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoriesRepository(db)

	assert.ErrorIs(t, repo.DeleteCategory(9999), ErrCategoryNotFound)
}

func TestDeleteCategoryInUse(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoriesRepository(db)

	c := seedCategory(t, db, "Beverages")
	seedProduct(t, db, "Cola", c.CategoryID)

	assert.ErrorIs(t, repo.DeleteCategory(c.CategoryID), ErrCategoryInUse)

	// The category and its product both survive a rejected delete.
	var categoryCount, productCount int64
	require.NoError(t, db.Model(&Category{}).Count(&categoryCount).Error)
	require.NoError(t, db.Model(&Product{}).Count(&productCount).Error)
	assert.Equal(t, int64(1), categoryCount)
	assert.Equal(t, int64(1), productCount)
}
