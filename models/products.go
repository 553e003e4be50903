package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalogued item. Every product belongs to exactly one category;
// the price is kept as an exact decimal so monetary values never drift.
type Product struct {
	ProductID   uint            `gorm:"primaryKey;column:product_id"`
	Name        string          `gorm:"not null"`
	Description string          `gorm:"not null"`
	CategoryID  uint            `gorm:"not null"`
	Category    Category        `gorm:"foreignKey:CategoryID;references:CategoryID"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p *Product) TableName() string {
	return "products"
}

// ProductUpdate carries the mutable product fields for a partial update.
// A nil field means "leave the stored value alone".
type ProductUpdate struct {
	Name        *string
	Description *string
	CategoryID  *uint
	Price       *decimal.Decimal
}
