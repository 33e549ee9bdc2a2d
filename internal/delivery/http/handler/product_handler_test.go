package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"product-catalog-service/internal/delivery/dto"
	deliveryHttp "product-catalog-service/internal/delivery/http"
	"product-catalog-service/internal/delivery/http/handler"
	"product-catalog-service/internal/delivery/http/middleware"
	"product-catalog-service/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// fakeProductUsecase returns canned results so the tests exercise only
// the HTTP adapter: decoding, routing and error mapping.
type fakeProductUsecase struct {
	createErr  error
	getErr     error
	updateErr  error
	deleteErr  error
	restoreErr error
	listErr    error

	lastUpdate *dto.UpdateProductRequest
	product    *dto.ProductResponse
	count      int64
}

func (f *fakeProductUsecase) Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.product, nil
}

func (f *fakeProductUsecase) List(ctx context.Context, req *dto.ListProductsRequest) (*dto.ProductListResponse, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return &dto.ProductListResponse{
		Data: []dto.ProductResponse{},
		Meta: dto.ListMeta{Page: 1, Limit: 10},
	}, nil
}

func (f *fakeProductUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.product, nil
}

func (f *fakeProductUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	f.lastUpdate = req
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.product, nil
}

func (f *fakeProductUsecase) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return f.deleteErr
}

func (f *fakeProductUsecase) Restore(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	if f.restoreErr != nil {
		return nil, f.restoreErr
	}
	return f.product, nil
}

func (f *fakeProductUsecase) RestoreAll(ctx context.Context) (int64, error) {
	return f.count, nil
}

func newTestRouter(fake *fakeProductUsecase) *mux.Router {
	log := logrus.New()
	log.SetOutput(io.Discard)

	router := deliveryHttp.NewRouter(
		handler.NewProductHandler(fake),
		middleware.NewCORSMiddleware(),
		middleware.NewLoggingMiddleware(log),
	)
	return router.Setup()
}

func doRequest(t *testing.T, router *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestCreateProductHandler(t *testing.T) {
	fake := &fakeProductUsecase{product: &dto.ProductResponse{ID: uuid.New(), Title: "Widget"}}
	router := newTestRouter(fake)

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/products",
		`{"orderId":1,"title":"Widget","quantity":2,"totalPrice":20,"totalDiscount":5}`)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestCreateProductHandlerRejectsUnknownField(t *testing.T) {
	fake := &fakeProductUsecase{}
	router := newTestRouter(fake)

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/products",
		`{"orderId":1,"title":"Widget","quantity":2,"totalPrice":20,"totalDiscount":5,"surprise":true}`)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}

func TestCreateProductHandlerValidationError(t *testing.T) {
	fake := &fakeProductUsecase{
		createErr: &usecase.ValidationError{Fields: map[string]string{"totalDiscount": "totalDiscount cannot be greater than totalPrice"}},
	}
	router := newTestRouter(fake)

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/products",
		`{"orderId":1,"title":"Widget","quantity":2,"totalPrice":20,"totalDiscount":25}`)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}

	var body struct {
		Success bool              `json:"success"`
		Error   map[string]string `json:"error"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Success {
		t.Error("expected success false")
	}
	if _, exists := body.Error["totalDiscount"]; !exists {
		t.Errorf("expected totalDiscount in error payload, got %v", body.Error)
	}
}

func TestUpdateProductHandlerRejectsOrderID(t *testing.T) {
	fake := &fakeProductUsecase{product: &dto.ProductResponse{}}
	router := newTestRouter(fake)

	recorder := doRequest(t, router, http.MethodPatch, "/api/v1/products/"+uuid.NewString(),
		`{"orderId":9,"title":"Gadget"}`)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for orderId in update body, got %d", recorder.Code)
	}
	if fake.lastUpdate != nil {
		t.Error("expected the usecase never to be called")
	}
}

func TestGetProductHandlerInvalidID(t *testing.T) {
	router := newTestRouter(&fakeProductUsecase{})

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/products/not-a-uuid", "")
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}

func TestGetProductHandlerNotFound(t *testing.T) {
	fake := &fakeProductUsecase{getErr: usecase.ErrProductNotFound}
	router := newTestRouter(fake)

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/products/"+uuid.NewString(), "")
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
}

func TestSoftDeleteHandlerNoContent(t *testing.T) {
	fake := &fakeProductUsecase{}
	router := newTestRouter(fake)

	recorder := doRequest(t, router, http.MethodDelete, "/api/v1/products/"+uuid.NewString(), "")
	if recorder.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", recorder.Code)
	}
}

func TestRestoreHandlerConflictWhenNotDeleted(t *testing.T) {
	fake := &fakeProductUsecase{restoreErr: usecase.ErrProductNotDeleted}
	router := newTestRouter(fake)

	recorder := doRequest(t, router, http.MethodPatch, "/api/v1/products/"+uuid.NewString()+"/restore", "")
	if recorder.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", recorder.Code)
	}
}

func TestRestoreAllHandler(t *testing.T) {
	fake := &fakeProductUsecase{count: 4}
	router := newTestRouter(fake)

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/products/restore-all", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var body struct {
		Data dto.RestoreAllResponse `json:"data"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Data.Count != 4 {
		t.Errorf("expected count 4, got %d", body.Data.Count)
	}
}

func TestListHandlerPassesQueryParams(t *testing.T) {
	fake := &fakeProductUsecase{}
	router := newTestRouter(fake)

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/products?orderId=1&sortBy=totalPrice&sortOrder=asc&page=2&limit=5", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestListHandlerValidationError(t *testing.T) {
	fake := &fakeProductUsecase{
		listErr: &usecase.ValidationError{Fields: map[string]string{"sortBy": "sortBy is invalid"}},
	}
	router := newTestRouter(fake)

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/products?sortBy=bogus", "")
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}
