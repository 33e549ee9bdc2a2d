package usecase

import (
	"fmt"
	"sort"
	"strings"

	"product-catalog-service/internal/delivery/dto"
	"product-catalog-service/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ValidationError carries every failing field of a rejected input,
// keyed by json field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, e.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// validateCreate normalizes the request in place (trimming title and
// description, blank description becomes absent) and collects every
// constraint violation before returning.
func (u *productUsecase) validateCreate(req *dto.CreateProductRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = normalizeDescription(req.Description)

	fields := make(map[string]string)
	if err := u.validator.Validate(req); err != nil {
		fields = u.validator.FormatValidationErrors(err)
	}

	if req.TotalPrice != nil {
		checkAmount(fields, "totalPrice", *req.TotalPrice)
	}
	if req.TotalDiscount != nil {
		checkAmount(fields, "totalDiscount", *req.TotalDiscount)
	}
	if req.TotalPrice != nil && req.TotalDiscount != nil {
		if _, taken := fields["totalDiscount"]; !taken && req.TotalDiscount.GreaterThan(*req.TotalPrice) {
			fields["totalDiscount"] = "totalDiscount cannot be greater than totalPrice"
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// validateUpdate checks the supplied fields plus the discount/price
// invariant on the merged candidate, so a one-sided change is compared
// against the persisted value of its counterpart.
func (u *productUsecase) validateUpdate(req *dto.UpdateProductRequest, candidate *entity.Product) error {
	fields := make(map[string]string)
	if err := u.validator.Validate(req); err != nil {
		fields = u.validator.FormatValidationErrors(err)
	}

	if req.TotalPrice != nil {
		checkAmount(fields, "totalPrice", *req.TotalPrice)
	}
	if req.TotalDiscount != nil {
		checkAmount(fields, "totalDiscount", *req.TotalDiscount)
	}
	if req.TotalPrice != nil || req.TotalDiscount != nil {
		_, priceBad := fields["totalPrice"]
		_, discountBad := fields["totalDiscount"]
		if !priceBad && !discountBad && candidate.TotalDiscount.GreaterThan(candidate.TotalPrice) {
			fields["totalDiscount"] = "totalDiscount cannot be greater than totalPrice"
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func checkAmount(fields map[string]string, name string, value decimal.Decimal) {
	if _, taken := fields[name]; taken {
		return
	}
	if value.IsNegative() {
		fields[name] = name + " must be greater than or equal to 0"
		return
	}
	// Compare against the rounded value so trailing zeros ("0.100") pass
	// while a third significant decimal place ("9.999") fails.
	if !value.Equal(value.Round(2)) {
		fields[name] = name + " must have at most 2 decimal places"
	}
}

// normalizeUpdate trims supplied strings in place and reports whether the
// update clears the description: a supplied blank description means
// "remove it", which must survive the blank-to-absent normalization.
func normalizeUpdate(req *dto.UpdateProductRequest) (clearDescription bool) {
	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		req.Title = &trimmed
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
		clearDescription = true
	}
	req.Description = normalizeDescription(req.Description)
	return clearDescription
}

// mergeProduct applies the supplied fields of a partial update onto a
// copy of the persisted row, producing the candidate that validation runs
// against and that supplies values for the persisted columns.
func mergeProduct(existing *entity.Product, req *dto.UpdateProductRequest, clearDescription bool) *entity.Product {
	candidate := *existing
	if req.Title != nil {
		candidate.Title = *req.Title
	}
	if clearDescription {
		candidate.Description = nil
	} else if req.Description != nil {
		candidate.Description = req.Description
	}
	if req.Quantity != nil {
		candidate.Quantity = *req.Quantity
	}
	if req.TotalPrice != nil {
		candidate.TotalPrice = *req.TotalPrice
	}
	if req.TotalDiscount != nil {
		candidate.TotalDiscount = *req.TotalDiscount
	}
	return &candidate
}

// normalizeDescription trims the description and maps blank to absent,
// so an empty string is stored as NULL.
func normalizeDescription(description *string) *string {
	if description == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*description)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
