package models

import "time"

// Category groups products. The id and timestamps are assigned by the store.
type Category struct {
	CategoryID uint   `gorm:"primaryKey;column:category_id"`
	Name       string `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (c *Category) TableName() string {
	return "categories"
}

// CategoryWithCount is the read model for category listings: a category
// annotated with the number of products currently referencing it. The count is
// computed at query time and never stored.
type CategoryWithCount struct {
	CategoryID uint
	Name       string
	Products   int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
