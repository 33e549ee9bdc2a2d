package converter

import (
	"product-catalog-service/internal/delivery/dto"
	"product-catalog-service/internal/domain/entity"
)

// ProductToResponse converts a Product entity to its response DTO.
// Money fields are coerced to plain numbers so they serialize as JSON
// numbers rather than decimal strings.
func ProductToResponse(product *entity.Product) *dto.ProductResponse {
	if product == nil {
		return nil
	}

	return &dto.ProductResponse{
		ID:            product.ID,
		OrderID:       product.OrderID,
		Title:         product.Title,
		Description:   product.Description,
		Quantity:      product.Quantity,
		TotalPrice:    product.TotalPrice.InexactFloat64(),
		TotalDiscount: product.TotalDiscount.InexactFloat64(),
		Status:        product.Status(),
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
		DeletedAt:     product.DeletedAt,
	}
}

// ProductsToResponses converts a slice of entities, keeping an empty
// (non-nil) slice for empty pages so the JSON data field stays an array.
func ProductsToResponses(products []entity.Product) []dto.ProductResponse {
	responses := make([]dto.ProductResponse, len(products))
	for i := range products {
		responses[i] = *ProductToResponse(&products[i])
	}
	return responses
}
