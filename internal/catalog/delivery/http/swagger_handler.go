package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a catalog product (Admin only). Warranty defaults to 1 year.
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body productRequest true "Product data"
// @Success 201 {object} Response{data=domain.Product}
// @Failure 400 {object} Response
// @Failure 403 {object} Response
// @Router /api/products [post]
func (h *CatalogHandler) CreateProductDoc() {}

// ListProducts godoc
// @Summary List products
// @Description List active products with pagination
// @Tags Products
// @Produce json
// @Param limit query int false "Limit (default 50, max 200)"
// @Param offset query int false "Offset"
// @Param category query string false "servers, laptops, desktops, accessories or all"
// @Success 200 {object} Response{data=query.ProductPage}
// @Failure 400 {object} Response
// @Router /api/products [get]
func (h *CatalogHandler) ListProductsDoc() {}

// GetProduct godoc
// @Summary Get product by ID
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} Response{data=domain.Product}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/products/{id} [get]
func (h *CatalogHandler) GetProductDoc() {}

// UpdateProduct godoc
// @Summary Update a product
// @Description Partially update a product (Admin only). originalPrice null clears it.
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body updateProductRequest true "Fields to change"
// @Success 200 {object} Response{data=domain.Product}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/products/{id} [put]
func (h *CatalogHandler) UpdateProductDoc() {}

// DeleteProduct godoc
// @Summary Delete a product
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/products/{id} [delete]
func (h *CatalogHandler) DeleteProductDoc() {}

// UpdateStock godoc
// @Summary Update product stock
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body object{stockQuantity=int} true "Stock data"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /api/products/{id}/stock [patch]
func (h *CatalogHandler) UpdateStockDoc() {}

// GetStats godoc
// @Summary Catalog statistics
// @Tags Products
// @Produce json
// @Success 200 {object} Response{data=query.CatalogStats}
// @Failure 500 {object} Response
// @Router /api/products/stats [get]
func (h *CatalogHandler) GetStatsDoc() {}

// CompareProducts godoc
// @Summary Compare products
// @Description Side by side comparison of 2 or 3 products with recommendations
// @Tags Comparison
// @Accept json
// @Produce json
// @Param request body object{productIds=[]int} true "Product ids"
// @Success 200 {object} ComparisonResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Router /api/comparison [post]
func (h *CatalogHandler) CompareProductsDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} Response
// @Failure 503 {object} Response
// @Router /health [get]
func (h *CatalogHandler) HealthCheckDoc() {}
