package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"product-catalog-service/internal/delivery/dto"
	"product-catalog-service/internal/usecase"
	"product-catalog-service/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ProductHandler struct {
	productUsecase usecase.ProductUsecase
}

func NewProductHandler(productUsecase usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase}
}

// decodeBody decodes a JSON request body, rejecting unknown fields so
// extraneous input (an orderId on update, for instance) never gets
// silently dropped or persisted.
func decodeBody(r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

// Create handles product creation
// @Summary Create a new product
// @Description Create a new product attached to an order
// @Tags Products
// @Accept json
// @Produce json
// @Param request body dto.CreateProductRequest true "Create Product Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	product, err := h.productUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create product")
		return
	}

	response.Success(w, http.StatusCreated, "Product created successfully", product)
}

// List handles the filterable, sortable, paginated product listing
// @Summary List products
// @Description List active products with filtering, sorting and pagination
// @Tags Products
// @Produce json
// @Param orderId query int false "Filter by order ID"
// @Param title query string false "Filter by title substring"
// @Param sortBy query string false "Sort field" default(createdAt)
// @Param sortOrder query string false "Sort direction" default(desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &dto.ListProductsRequest{
		OrderID:   query.Get("orderId"),
		Title:     query.Get("title"),
		SortBy:    query.Get("sortBy"),
		SortOrder: query.Get("sortOrder"),
		Page:      query.Get("page"),
		Limit:     query.Get("limit"),
	}

	list, err := h.productUsecase.List(r.Context(), req)
	if err != nil {
		h.writeError(w, err, "Failed to list products")
		return
	}

	response.Success(w, http.StatusOK, "Products retrieved successfully", list)
}

// GetByID handles the product detail view
// @Summary Get product by ID
// @Description Get a product by its ID, including soft-deleted products
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/{id} [get]
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	product, err := h.productUsecase.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to get product")
		return
	}

	response.Success(w, http.StatusOK, "Product retrieved successfully", product)
}

// Update handles partial product updates
// @Summary Update a product
// @Description Update supplied fields of a product; orderId is immutable
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body dto.UpdateProductRequest true "Update Product Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/{id} [patch]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	product, err := h.productUsecase.Update(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update product")
		return
	}

	response.Success(w, http.StatusOK, "Product updated successfully", product)
}

// SoftDelete handles reversible product deletion
// @Summary Soft-delete a product
// @Description Mark a product deleted; it disappears from listings but keeps its row
// @Tags Products
// @Param id path string true "Product ID"
// @Success 204
// @Failure 404 {object} response.Response
// @Router /products/{id} [delete]
func (h *ProductHandler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.productUsecase.SoftDelete(r.Context(), id); err != nil {
		h.writeError(w, err, "Failed to delete product")
		return
	}

	response.NoContent(w)
}

// Restore handles restoring a soft-deleted product
// @Summary Restore a product
// @Description Clear the deletion marker of a soft-deleted product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /products/{id}/restore [patch]
func (h *ProductHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	product, err := h.productUsecase.Restore(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to restore product")
		return
	}

	response.Success(w, http.StatusOK, "Product restored successfully", product)
}

// RestoreAll handles bulk restore of every soft-deleted product
// @Summary Restore all products
// @Description Clear the deletion marker on every soft-deleted product
// @Tags Products
// @Produce json
// @Success 200 {object} response.Response
// @Router /products/restore-all [post]
func (h *ProductHandler) RestoreAll(w http.ResponseWriter, r *http.Request) {
	count, err := h.productUsecase.RestoreAll(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to restore products")
		return
	}

	result := &dto.RestoreAllResponse{
		Message: "Products restored successfully",
		Count:   count,
	}
	response.Success(w, http.StatusOK, result.Message, result)
}

func (h *ProductHandler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *ProductHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	var validationErr *usecase.ValidationError
	switch {
	case errors.As(err, &validationErr):
		response.ValidationError(w, validationErr.Fields)
	case errors.Is(err, usecase.ErrProductNotFound):
		response.NotFound(w, "Product not found")
	case errors.Is(err, usecase.ErrProductNotDeleted):
		response.Conflict(w, "Product is not deleted")
	default:
		response.InternalServerError(w, fallback)
	}
}
