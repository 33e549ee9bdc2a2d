package repository

import (
	"context"

	"product-catalog-service/internal/domain/entity"

	"github.com/google/uuid"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// FindAll returns the matching page plus the total count computed
	// over the same filter predicate.
	FindAll(ctx context.Context, filter *entity.ProductFilter) ([]entity.Product, int64, error)
	// FindByID returns the row regardless of deletion state, nil when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// UpdateFields persists only the given columns and refreshes updated_at.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	// Restore clears deleted_at only when it is currently set and reports
	// the number of rows affected, so callers can tell a lost race from a
	// successful restore.
	Restore(ctx context.Context, id uuid.UUID) (int64, error)
	RestoreAll(ctx context.Context) (int64, error)
}
