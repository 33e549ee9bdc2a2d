package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"product-catalog-service/internal/domain/entity"
	domainRepo "product-catalog-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// likeEscaper neutralizes LIKE metacharacters so a filter value
// containing % or _ matches those characters literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// listQuery builds the shared predicate for FindAll: listings never see
// soft-deleted rows. LOWER/LIKE instead of ILIKE keeps the predicate
// portable across Postgres and the sqlite test database.
func (r *productRepository) listQuery(ctx context.Context, filter *entity.ProductFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&entity.Product{}).Where("deleted_at IS NULL")

	if filter.OrderID != nil {
		query = query.Where("order_id = ?", *filter.OrderID)
	}
	if filter.Title != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(filter.Title)) + "%"
		query = query.Where(`LOWER(title) LIKE ? ESCAPE '\'`, pattern)
	}

	return query
}

func (r *productRepository) FindAll(ctx context.Context, filter *entity.ProductFilter) ([]entity.Product, int64, error) {
	var products []entity.Product
	var total int64

	if err := r.listQuery(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := fmt.Sprintf("%s %s", filter.SortBy, strings.ToUpper(filter.SortOrder))
	err := r.listQuery(ctx, filter).
		Order(order).
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&entity.Product{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *productRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entity.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"deleted_at": &now}).Error
}

func (r *productRepository) Restore(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Product{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Updates(map[string]interface{}{"deleted_at": nil})
	return result.RowsAffected, result.Error
}

func (r *productRepository) RestoreAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Product{}).
		Where("deleted_at IS NOT NULL").
		Updates(map[string]interface{}{"deleted_at": nil})
	return result.RowsAffected, result.Error
}
