package http

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/skavtech/ict-platform/internal/catalog/comparison"
	"github.com/skavtech/ict-platform/internal/catalog/domain"
	"github.com/skavtech/ict-platform/internal/catalog/usecase/command"
	"github.com/skavtech/ict-platform/internal/catalog/usecase/query"
	"github.com/skavtech/ict-platform/pkg/logger"
	"github.com/skavtech/ict-platform/pkg/metrics"
	"github.com/skavtech/ict-platform/pkg/middleware"
)

// CatalogHandler handles HTTP requests for the product catalog using CQRS pattern
type CatalogHandler struct {
	// Command handlers
	createHandler      *command.CreateProductHandler
	updateHandler      *command.UpdateProductHandler
	deleteHandler      *command.DeleteProductHandler
	updateStockHandler *command.UpdateStockHandler

	// Query handlers
	getProductHandler *query.GetProductHandler
	listHandler       *query.ListProductsHandler
	statsHandler      *query.GetStatsHandler
	compareHandler    *query.CompareProductsHandler

	repo          domain.ProductRepository
	metrics       *metrics.HTTPMetrics
	totalProducts prometheus.Gauge
	comparisons   *prometheus.CounterVec
}

// NewCatalogHandler wires every use case on top of one repository.
func NewCatalogHandler(repo domain.ProductRepository, reg prometheus.Registerer) *CatalogHandler {
	return NewCatalogHandlerWithDI(
		command.NewCreateProductHandler(repo),
		command.NewUpdateProductHandler(repo),
		command.NewDeleteProductHandler(repo),
		command.NewUpdateStockHandler(repo),
		query.NewGetProductHandler(repo),
		query.NewListProductsHandler(repo),
		query.NewGetStatsHandler(repo),
		query.NewCompareProductsHandler(repo),
		repo,
		reg,
	)
}

// NewCatalogHandlerWithDI creates a catalog handler using dependency injection
// This is used by Wire for automatic dependency injection
func NewCatalogHandlerWithDI(
	createHandler *command.CreateProductHandler,
	updateHandler *command.UpdateProductHandler,
	deleteHandler *command.DeleteProductHandler,
	updateStockHandler *command.UpdateStockHandler,
	getProductHandler *query.GetProductHandler,
	listHandler *query.ListProductsHandler,
	statsHandler *query.GetStatsHandler,
	compareHandler *query.CompareProductsHandler,
	repo domain.ProductRepository,
	reg prometheus.Registerer,
) *CatalogHandler {
	m := metrics.NewHTTPMetrics(reg, "catalog_service")

	return &CatalogHandler{
		createHandler:      createHandler,
		updateHandler:      updateHandler,
		deleteHandler:      deleteHandler,
		updateStockHandler: updateStockHandler,
		getProductHandler:  getProductHandler,
		listHandler:        listHandler,
		statsHandler:       statsHandler,
		compareHandler:     compareHandler,
		repo:               repo,
		metrics:            m,
		totalProducts:      m.Gauge("total_products", "Total number of active products in the catalog"),
		comparisons:        m.Counter("comparisons_total", "Product comparisons by outcome", "outcome"),
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// MessageResponse is the bare error body of the comparison endpoint.
type MessageResponse struct {
	Message string `json:"message"`
}

// ComparisonResponse is the body of a successful comparison.
type ComparisonResponse struct {
	Products   []domain.Product  `json:"products"`
	Comparison ComparisonPayload `json:"comparison"`
}

// ComparisonPayload is the comparison without the duplicated product list.
type ComparisonPayload struct {
	Results []comparison.Result `json:"results"`
	Summary comparison.Summary  `json:"summary"`
}

func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	m := h.metrics

	// Public routes
	router.HandleFunc("/api/products", m.Wrap("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products/stats", m.Wrap("/api/products/stats", h.GetStats)).Methods("GET")
	router.HandleFunc("/api/products/{id}", m.Wrap("/api/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/comparison", m.Wrap("/api/comparison", h.CompareProducts)).Methods("POST")

	// Admin routes
	router.HandleFunc("/api/products", m.Wrap("/api/products", middleware.Admin(h.CreateProduct))).Methods("POST")
	router.HandleFunc("/api/products/{id}", m.Wrap("/api/products/{id}", middleware.Admin(h.UpdateProduct))).Methods("PUT")
	router.HandleFunc("/api/products/{id}", m.Wrap("/api/products/{id}", middleware.Admin(h.DeleteProduct))).Methods("DELETE")
	router.HandleFunc("/api/products/{id}/stock", m.Wrap("/api/products/{id}/stock", middleware.Admin(h.UpdateStock))).Methods("PATCH")
}

type productRequest struct {
	Name           string           `json:"name"`
	Brand          string           `json:"brand"`
	Category       domain.Category  `json:"category"`
	Condition      domain.Condition `json:"condition"`
	Price          float64          `json:"price"`
	OriginalPrice  *float64         `json:"originalPrice"`
	Description    string           `json:"description"`
	Specifications json.RawMessage  `json:"specifications"`
	WarrantyYears  *int             `json:"warrantyYears"`
	StockQuantity  int              `json:"stockQuantity"`
	ImageURL       string           `json:"imageUrl"`
	IsActive       *bool            `json:"isActive"`
}

// CreateProduct handles POST /api/products
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	product, err := h.createHandler.Handle(r.Context(), command.CreateProductCommand{
		Name:           req.Name,
		Brand:          req.Brand,
		Category:       req.Category,
		Condition:      req.Condition,
		Price:          req.Price,
		OriginalPrice:  req.OriginalPrice,
		Description:    req.Description,
		Specifications: req.Specifications,
		WarrantyYears:  req.WarrantyYears,
		StockQuantity:  req.StockQuantity,
		ImageURL:       req.ImageURL,
		IsActive:       req.IsActive,
	})
	if err != nil {
		h.respondError(w, r, err, "Failed to create product")
		return
	}

	logger.Info(r.Context()).
		Uint("product_id", product.ID).
		Str("name", product.Name).
		Msg("Product created")
	h.updateProductsMetric(r)

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	limit, _ := strconv.Atoi(params.Get("limit"))
	offset, _ := strconv.Atoi(params.Get("offset"))

	page, err := h.listHandler.Handle(r.Context(), query.ListProductsQuery{
		Limit:    limit,
		Offset:   offset,
		Category: params.Get("category"),
	})
	if err != nil {
		h.respondError(w, r, err, "Failed to list products")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    page,
	})
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	product, err := h.getProductHandler.Handle(r.Context(), query.GetProductQuery{ID: id})
	if err != nil {
		h.respondError(w, r, err, "Failed to get product")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

type updateProductRequest struct {
	Name           *string           `json:"name"`
	Brand          *string           `json:"brand"`
	Category       *domain.Category  `json:"category"`
	Condition      *domain.Condition `json:"condition"`
	Price          *float64          `json:"price"`
	OriginalPrice  json.RawMessage   `json:"originalPrice"`
	Description    *string           `json:"description"`
	Specifications json.RawMessage   `json:"specifications"`
	WarrantyYears  *int              `json:"warrantyYears"`
	ImageURL       *string           `json:"imageUrl"`
	IsActive       *bool             `json:"isActive"`
}

// UpdateProduct handles PUT /api/products/{id}
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	var req updateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateProductCommand{
		ID:             id,
		Name:           req.Name,
		Brand:          req.Brand,
		Category:       req.Category,
		Condition:      req.Condition,
		Price:          req.Price,
		Description:    req.Description,
		Specifications: req.Specifications,
		WarrantyYears:  req.WarrantyYears,
		ImageURL:       req.ImageURL,
		IsActive:       req.IsActive,
	}
	// an explicit null clears the original price
	if len(req.OriginalPrice) > 0 {
		if bytes.Equal(bytes.TrimSpace(req.OriginalPrice), []byte("null")) {
			cmd.ClearOriginal = true
		} else {
			var original float64
			if err := json.Unmarshal(req.OriginalPrice, &original); err != nil {
				respondJSON(w, http.StatusBadRequest, Response{
					Success: false,
					Error:   "originalPrice must be a number",
				})
				return
			}
			cmd.OriginalPrice = &original
		}
	}

	product, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, r, err, "Failed to update product")
		return
	}

	h.updateProductsMetric(r)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteProductCommand{ID: id}); err != nil {
		h.respondError(w, r, err, "Failed to delete product")
		return
	}

	h.updateProductsMetric(r)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product deleted successfully",
	})
}

// UpdateStock handles PATCH /api/products/{id}/stock
func (h *CatalogHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	var req struct {
		StockQuantity *int `json:"stockQuantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.StockQuantity == nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateStockCommand{ProductID: id, Stock: *req.StockQuantity}
	if err := h.updateStockHandler.Handle(r.Context(), cmd); err != nil {
		h.respondError(w, r, err, "Failed to update stock")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock updated successfully",
	})
}

// GetStats handles GET /api/products/stats
func (h *CatalogHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle(r.Context(), query.GetStatsQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to get stats")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get statistics",
		})
		return
	}

	h.totalProducts.Set(float64(stats.ActiveProducts))

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    stats,
	})
}

// CompareProducts handles POST /api/comparison
func (h *CatalogHandler) CompareProducts(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductIDs []uint `json:"productIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		req.ProductIDs = nil
	}

	result, err := h.compareHandler.Handle(r.Context(), query.CompareProductsQuery{ProductIDs: req.ProductIDs})
	switch {
	case errors.Is(err, query.ErrCompareSelection):
		h.comparisons.WithLabelValues("rejected").Inc()
		respondJSON(w, http.StatusBadRequest, MessageResponse{
			Message: "Please provide 2-3 product IDs for comparison",
		})
		return
	case errors.Is(err, query.ErrNotEnoughComparable):
		h.comparisons.WithLabelValues("not_found").Inc()
		respondJSON(w, http.StatusNotFound, MessageResponse{
			Message: "Not enough valid products found for comparison",
		})
		return
	case err != nil:
		h.comparisons.WithLabelValues("error").Inc()
		logger.Error(r.Context()).Err(err).Msg("Comparison failed")
		respondJSON(w, http.StatusInternalServerError, MessageResponse{
			Message: "Failed to generate product comparison",
		})
		return
	}

	h.comparisons.WithLabelValues("ok").Inc()
	logger.Info(r.Context()).
		Int("products", len(result.Products)).
		Msg("Products compared")

	respondJSON(w, http.StatusOK, ComparisonResponse{
		Products: result.Products,
		Comparison: ComparisonPayload{
			Results: result.Results,
			Summary: result.Summary,
		},
	})
}

func (h *CatalogHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Catalog service is healthy",
		})
	}).Methods("GET")
}

// respondError maps use case errors onto status codes.
func (h *CatalogHandler) respondError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Product not found"})
	case errors.Is(err, domain.ErrInvalidProduct):
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
	default:
		logger.Error(r.Context()).Err(err).Msg(fallback)
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: fallback})
	}
}

// updateProductsMetric updates the active products gauge
func (h *CatalogHandler) updateProductsMetric(r *http.Request) {
	count, err := h.repo.Count(r.Context(), domain.ListFilter{ActiveOnly: true})
	if err == nil {
		h.totalProducts.Set(float64(count))
	}
}

func productID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil || id == 0 {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return 0, false
	}
	return uint(id), true
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
