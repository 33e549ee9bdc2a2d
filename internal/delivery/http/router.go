package http

import (
	"net/http"

	"product-catalog-service/internal/delivery/http/handler"
	"product-catalog-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	productHandler    *handler.ProductHandler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	productHandler *handler.ProductHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		productHandler:    productHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Product catalog
	api.HandleFunc("/products", r.productHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/products", r.productHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/products/restore-all", r.productHandler.RestoreAll).Methods(http.MethodPost)
	api.HandleFunc("/products/{id}", r.productHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", r.productHandler.Update).Methods(http.MethodPatch)
	api.HandleFunc("/products/{id}", r.productHandler.SoftDelete).Methods(http.MethodDelete)
	api.HandleFunc("/products/{id}/restore", r.productHandler.Restore).Methods(http.MethodPatch)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
