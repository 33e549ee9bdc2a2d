package dto

import (
	"time"

	"product-catalog-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateProductRequest struct {
	OrderID       int              `json:"orderId" validate:"required,gt=0"`
	Title         string           `json:"title" validate:"required,max=255"`
	Description   *string          `json:"description" validate:"omitnil,max=1000"`
	Quantity      int              `json:"quantity" validate:"required,gte=1"`
	TotalPrice    *decimal.Decimal `json:"totalPrice" validate:"required"`
	TotalDiscount *decimal.Decimal `json:"totalDiscount" validate:"required"`
}

// UpdateProductRequest carries a partial update. OrderID is deliberately
// absent: the owning order is immutable, and any attempt to send it is
// rejected as an unknown field at decode time.
type UpdateProductRequest struct {
	Title         *string          `json:"title" validate:"omitnil,min=1,max=255"`
	Description   *string          `json:"description" validate:"omitnil,max=1000"`
	Quantity      *int             `json:"quantity" validate:"omitnil,gte=1"`
	TotalPrice    *decimal.Decimal `json:"totalPrice"`
	TotalDiscount *decimal.Decimal `json:"totalDiscount"`
}

// ListProductsRequest holds the raw, untrusted query parameters as
// received; the query builder validates and defaults them.
type ListProductsRequest struct {
	OrderID   string
	Title     string
	SortBy    string
	SortOrder string
	Page      string
	Limit     string
}

// Response DTOs

type ProductResponse struct {
	ID            uuid.UUID            `json:"id"`
	OrderID       int                  `json:"orderId"`
	Title         string               `json:"title"`
	Description   *string              `json:"description"`
	Quantity      int                  `json:"quantity"`
	TotalPrice    float64              `json:"totalPrice"`
	TotalDiscount float64              `json:"totalDiscount"`
	Status        entity.ProductStatus `json:"status"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
	DeletedAt     *time.Time           `json:"deletedAt"`
}

type ListMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type ProductListResponse struct {
	Data []ProductResponse `json:"data"`
	Meta ListMeta          `json:"meta"`
}

type RestoreAllResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}
