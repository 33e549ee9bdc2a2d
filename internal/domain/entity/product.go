package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductStatus is the deletion state derived from DeletedAt
type ProductStatus string

const (
	ProductStatusActive  ProductStatus = "active"
	ProductStatusDeleted ProductStatus = "deleted"
)

// Product represents a product attached to an order.
// DeletedAt is the sole soft-delete marker: nil means active,
// non-nil means the row is hidden from listings but never dropped.
type Product struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID       int             `gorm:"not null;index"`
	Title         string          `gorm:"type:varchar(255);not null"`
	Description   *string         `gorm:"type:varchar(1000)"`
	Quantity      int             `gorm:"not null"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalDiscount decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt     time.Time       `gorm:"autoCreateTime"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime"`
	DeletedAt     *time.Time      `gorm:"index"`
}

func (Product) TableName() string {
	return "products"
}

// BeforeCreate assigns the ID so inserts work on dialects
// without a uuid default (the sqlite test database).
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// IsDeleted checks if the product is currently soft-deleted
func (p *Product) IsDeleted() bool {
	return p.DeletedAt != nil
}

// Status derives the two-state deletion status exposed at the API boundary
func (p *Product) Status() ProductStatus {
	if p.IsDeleted() {
		return ProductStatusDeleted
	}
	return ProductStatusActive
}
