package usecase

import (
	"testing"

	"product-catalog-service/internal/delivery/dto"
)

func TestBuildProductFilterDefaults(t *testing.T) {
	filter, page, err := buildProductFilter(&dto.ListProductsRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if filter.SortBy != "created_at" {
		t.Errorf("expected default sort column created_at, got %q", filter.SortBy)
	}
	if filter.SortOrder != "desc" {
		t.Errorf("expected default sort order desc, got %q", filter.SortOrder)
	}
	if page != 1 {
		t.Errorf("expected default page 1, got %d", page)
	}
	if filter.Limit != 10 {
		t.Errorf("expected default limit 10, got %d", filter.Limit)
	}
	if filter.Offset != 0 {
		t.Errorf("expected offset 0, got %d", filter.Offset)
	}
	if filter.OrderID != nil {
		t.Errorf("expected no orderId filter, got %v", *filter.OrderID)
	}
}

func TestBuildProductFilterSortMapping(t *testing.T) {
	tests := []struct {
		sortBy string
		column string
	}{
		{"id", "id"},
		{"title", "title"},
		{"quantity", "quantity"},
		{"totalPrice", "total_price"},
		{"totalDiscount", "total_discount"},
		{"createdAt", "created_at"},
		{"updatedAt", "updated_at"},
	}

	for _, tt := range tests {
		t.Run(tt.sortBy, func(t *testing.T) {
			filter, _, err := buildProductFilter(&dto.ListProductsRequest{SortBy: tt.sortBy, SortOrder: "asc"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if filter.SortBy != tt.column {
				t.Errorf("expected column %q, got %q", tt.column, filter.SortBy)
			}
			if filter.SortOrder != "asc" {
				t.Errorf("expected asc, got %q", filter.SortOrder)
			}
		})
	}
}

func TestBuildProductFilterRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		req   dto.ListProductsRequest
		field string
	}{
		{"unknown sort field", dto.ListProductsRequest{SortBy: "price"}, "sortBy"},
		{"unknown sort order", dto.ListProductsRequest{SortOrder: "down"}, "sortOrder"},
		{"non-integer orderId", dto.ListProductsRequest{OrderID: "abc"}, "orderId"},
		{"zero orderId", dto.ListProductsRequest{OrderID: "0"}, "orderId"},
		{"zero page", dto.ListProductsRequest{Page: "0"}, "page"},
		{"non-integer page", dto.ListProductsRequest{Page: "two"}, "page"},
		{"zero limit", dto.ListProductsRequest{Limit: "0"}, "limit"},
		{"limit above cap", dto.ListProductsRequest{Limit: "101"}, "limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := buildProductFilter(&tt.req)
			validationErr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if _, exists := validationErr.Fields[tt.field]; !exists {
				t.Errorf("expected error on field %q, got %v", tt.field, validationErr.Fields)
			}
		})
	}
}

func TestBuildProductFilterPagination(t *testing.T) {
	filter, page, err := buildProductFilter(&dto.ListProductsRequest{Page: "3", Limit: "25"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page != 3 {
		t.Errorf("expected page 3, got %d", page)
	}
	if filter.Limit != 25 {
		t.Errorf("expected limit 25, got %d", filter.Limit)
	}
	if filter.Offset != 50 {
		t.Errorf("expected offset 50, got %d", filter.Offset)
	}
}

func TestBuildProductFilterOrderIDAndTitle(t *testing.T) {
	filter, _, err := buildProductFilter(&dto.ListProductsRequest{OrderID: "7", Title: "  widget "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filter.OrderID == nil || *filter.OrderID != 7 {
		t.Errorf("expected orderId filter 7, got %v", filter.OrderID)
	}
	if filter.Title != "widget" {
		t.Errorf("expected trimmed title filter, got %q", filter.Title)
	}
}

func TestBuildProductFilterCollectsAllFields(t *testing.T) {
	_, _, err := buildProductFilter(&dto.ListProductsRequest{SortBy: "nope", Limit: "0"})
	validationErr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(validationErr.Fields) != 2 {
		t.Errorf("expected both fields reported, got %v", validationErr.Fields)
	}
}
