package validator

import "testing"

type sample struct {
	OrderID int    `json:"orderId" validate:"required,gt=0"`
	Title   string `json:"title" validate:"required,max=5"`
}

func TestFormatValidationErrorsUsesJSONNames(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sample{Title: "too long title"})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	fields := cv.FormatValidationErrors(err)
	if _, exists := fields["orderId"]; !exists {
		t.Errorf("expected json name orderId, got %v", fields)
	}
	if _, exists := fields["title"]; !exists {
		t.Errorf("expected json name title, got %v", fields)
	}
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()
	if err := cv.Validate(&sample{OrderID: 1, Title: "ok"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
