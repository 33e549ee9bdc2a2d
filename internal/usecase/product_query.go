package usecase

import (
	"strconv"
	"strings"

	"product-catalog-service/internal/delivery/dto"
	"product-catalog-service/internal/domain/entity"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100

	defaultSortBy    = "createdAt"
	defaultSortOrder = "desc"
)

// productSortColumns whitelists the sortable fields and maps them to
// column names, so caller input never reaches the ORDER BY clause raw.
var productSortColumns = map[string]string{
	"id":            "id",
	"title":         "title",
	"quantity":      "quantity",
	"totalPrice":    "total_price",
	"totalDiscount": "total_discount",
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
}

// buildProductFilter turns the raw query parameters into a validated
// filter, applying all defaults at this one boundary. Unknown sort values
// are rejected, never silently replaced. The returned page feeds the
// list meta.
func buildProductFilter(req *dto.ListProductsRequest) (*entity.ProductFilter, int, error) {
	fields := make(map[string]string)

	filter := &entity.ProductFilter{
		Title:     strings.TrimSpace(req.Title),
		SortBy:    productSortColumns[defaultSortBy],
		SortOrder: defaultSortOrder,
		Limit:     defaultLimit,
	}

	if req.OrderID != "" {
		orderID, err := strconv.Atoi(req.OrderID)
		if err != nil || orderID < 1 {
			fields["orderId"] = "orderId must be a positive integer"
		} else {
			filter.OrderID = &orderID
		}
	}

	if req.SortBy != "" {
		column, ok := productSortColumns[req.SortBy]
		if !ok {
			fields["sortBy"] = "sortBy must be one of id, title, quantity, totalPrice, totalDiscount, createdAt, updatedAt"
		} else {
			filter.SortBy = column
		}
	}

	if req.SortOrder != "" {
		switch req.SortOrder {
		case "asc", "desc":
			filter.SortOrder = req.SortOrder
		default:
			fields["sortOrder"] = "sortOrder must be asc or desc"
		}
	}

	page := defaultPage
	if req.Page != "" {
		n, err := strconv.Atoi(req.Page)
		if err != nil || n < 1 {
			fields["page"] = "page must be an integer greater than or equal to 1"
		} else {
			page = n
		}
	}

	if req.Limit != "" {
		n, err := strconv.Atoi(req.Limit)
		switch {
		case err != nil || n < 1:
			fields["limit"] = "limit must be an integer greater than or equal to 1"
		case n > maxLimit:
			fields["limit"] = "limit must be at most " + strconv.Itoa(maxLimit)
		default:
			filter.Limit = n
		}
	}

	if len(fields) > 0 {
		return nil, 0, &ValidationError{Fields: fields}
	}

	filter.Offset = (page - 1) * filter.Limit
	return filter, page, nil
}
