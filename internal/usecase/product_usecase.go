package usecase

import (
	"context"
	"errors"

	"product-catalog-service/internal/converter"
	"product-catalog-service/internal/delivery/dto"
	"product-catalog-service/internal/domain/entity"
	"product-catalog-service/internal/domain/repository"
	"product-catalog-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrProductNotFound = errors.New("product not found")
	// ErrProductNotDeleted is returned by Restore when the product exists
	// but is not currently soft-deleted.
	ErrProductNotDeleted = errors.New("product is not deleted")
)

// ProductCache caches product detail responses. Implementations are
// best-effort: the usecase logs cache faults and falls through to storage.
type ProductCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, key string) error
	DeletePattern(ctx context.Context, pattern string) error
}

type ProductUsecase interface {
	Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	List(ctx context.Context, req *dto.ListProductsRequest) (*dto.ProductListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	RestoreAll(ctx context.Context) (int64, error)
}

type productUsecase struct {
	productRepo repository.ProductRepository
	validator   *validator.CustomValidator
	cache       ProductCache
	log         *logrus.Logger
}

func NewProductUsecase(
	productRepo repository.ProductRepository,
	customValidator *validator.CustomValidator,
	cache ProductCache,
	log *logrus.Logger,
) ProductUsecase {
	return &productUsecase{
		productRepo: productRepo,
		validator:   customValidator,
		cache:       cache,
		log:         log,
	}
}

func (u *productUsecase) Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := u.validateCreate(req); err != nil {
		return nil, err
	}

	product := &entity.Product{
		OrderID:       req.OrderID,
		Title:         req.Title,
		Description:   req.Description,
		Quantity:      req.Quantity,
		TotalPrice:    *req.TotalPrice,
		TotalDiscount: *req.TotalDiscount,
	}

	if err := u.productRepo.Create(ctx, product); err != nil {
		u.log.Warnf("Failed to create product: %+v", err)
		return nil, err
	}

	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) List(ctx context.Context, req *dto.ListProductsRequest) (*dto.ProductListResponse, error) {
	filter, page, err := buildProductFilter(req)
	if err != nil {
		return nil, err
	}

	products, total, err := u.productRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to list products: %+v", err)
		return nil, err
	}

	totalPages := int(total) / filter.Limit
	if int(total)%filter.Limit > 0 {
		totalPages++
	}

	return &dto.ProductListResponse{
		Data: converter.ProductsToResponses(products),
		Meta: dto.ListMeta{
			Total:      total,
			Page:       page,
			Limit:      filter.Limit,
			TotalPages: totalPages,
		},
	}, nil
}

// GetByID returns the product regardless of deletion state, so the
// detail view can show soft-deleted products.
func (u *productUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	var cached dto.ProductResponse
	found, err := u.cache.Get(ctx, id.String(), &cached)
	if err != nil {
		u.log.Warnf("Product cache read failed: %+v", err)
	}
	if found {
		return &cached, nil
	}

	product, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find product: %+v", err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	response := converter.ProductToResponse(product)
	if err := u.cache.Set(ctx, id.String(), response); err != nil {
		u.log.Warnf("Product cache write failed: %+v", err)
	}

	return response, nil
}

func (u *productUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	// Existence is checked before any validation or write, so an unknown
	// id never produces a partial write.
	existing, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find product: %+v", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrProductNotFound
	}

	clearDescription := normalizeUpdate(req)
	candidate := mergeProduct(existing, req, clearDescription)
	if err := u.validateUpdate(req, candidate); err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if req.Title != nil {
		fields["title"] = candidate.Title
	}
	if req.Description != nil || clearDescription {
		fields["description"] = candidate.Description
	}
	if req.Quantity != nil {
		fields["quantity"] = candidate.Quantity
	}
	if req.TotalPrice != nil {
		fields["total_price"] = candidate.TotalPrice
	}
	if req.TotalDiscount != nil {
		fields["total_discount"] = candidate.TotalDiscount
	}

	if len(fields) > 0 {
		if err := u.productRepo.UpdateFields(ctx, id, fields); err != nil {
			u.log.Warnf("Failed to update product: %+v", err)
			return nil, err
		}
	}

	u.invalidate(ctx, id)

	updated, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to reload product: %+v", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrProductNotFound
	}

	return converter.ProductToResponse(updated), nil
}

// SoftDelete stamps deleted_at with the current time. Deleting an
// already-deleted product re-stamps the marker rather than failing.
func (u *productUsecase) SoftDelete(ctx context.Context, id uuid.UUID) error {
	product, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find product: %+v", err)
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	if err := u.productRepo.SoftDelete(ctx, id); err != nil {
		u.log.Warnf("Failed to soft-delete product: %+v", err)
		return err
	}

	u.invalidate(ctx, id)
	return nil
}

func (u *productUsecase) Restore(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	product, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find product: %+v", err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.IsDeleted() {
		return nil, ErrProductNotDeleted
	}

	// Conditional update: zero rows affected means a concurrent restore
	// got there first.
	affected, err := u.productRepo.Restore(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to restore product: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrProductNotDeleted
	}

	u.invalidate(ctx, id)

	restored, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to reload product: %+v", err)
		return nil, err
	}
	if restored == nil {
		return nil, ErrProductNotFound
	}

	return converter.ProductToResponse(restored), nil
}

// RestoreAll clears the deletion marker on every soft-deleted product.
// Nothing to restore is a success with count zero.
func (u *productUsecase) RestoreAll(ctx context.Context) (int64, error) {
	affected, err := u.productRepo.RestoreAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to restore products: %+v", err)
		return 0, err
	}

	if err := u.cache.DeletePattern(ctx, "*"); err != nil {
		u.log.Warnf("Product cache invalidation failed: %+v", err)
	}

	return affected, nil
}

func (u *productUsecase) invalidate(ctx context.Context, id uuid.UUID) {
	if err := u.cache.Delete(ctx, id.String()); err != nil {
		u.log.Warnf("Product cache invalidation failed: %+v", err)
	}
}
