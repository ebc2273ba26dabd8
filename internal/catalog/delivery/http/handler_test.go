package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/skavtech/ict-platform/internal/catalog/domain"
	"github.com/skavtech/ict-platform/internal/catalog/repository"
	"github.com/skavtech/ict-platform/pkg/auth"
)

func init() {
	auth.Configure("catalog-handler-test", time.Hour)
}

func ptr[T any](v T) *T { return &v }

func newTestRouter(t *testing.T) (*mux.Router, *repository.MemoryProductRepository) {
	t.Helper()
	repo := repository.NewMemoryProductRepository(
		domain.Product{Name: "Dell PowerEdge R750", Brand: "Dell", Category: domain.CategoryServers, Condition: domain.ConditionRefurbished, Price: 4299, OriginalPrice: ptr(6500.0), WarrantyYears: 3, StockQuantity: 5, IsActive: true},
		domain.Product{Name: "Lenovo ThinkPad T14", Brand: "Lenovo", Category: domain.CategoryLaptops, Condition: domain.ConditionRefurbished, Price: 1299, WarrantyYears: 1, StockQuantity: 0, IsActive: true},
		domain.Product{Name: "Apple MacBook Pro 14", Brand: "Apple", Category: domain.CategoryLaptops, Condition: domain.ConditionNew, Price: 1999, WarrantyYears: 1, StockQuantity: 2, IsActive: true},
	)
	router := mux.NewRouter()
	NewCatalogHandler(repo, prometheus.NewRegistry()).RegisterRoutes(router)
	return router, repo
}

func do(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func tokenFor(t *testing.T, role string) string {
	t.Helper()
	token, err := auth.GenerateToken(1, "ops", role)
	assert.NoError(t, err)
	return token
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestCompareProducts(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/api/comparison", "", map[string]any{"productIds": []int{1, 2}})
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Products   []domain.Product `json:"products"`
		Comparison struct {
			Results []struct {
				Field     string `json:"field"`
				BestIndex *int   `json:"bestIndex"`
			} `json:"results"`
			Summary struct {
				Recommendations []string `json:"recommendations"`
			} `json:"summary"`
		} `json:"comparison"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	check.Equal(t, 2, len(body.Products))
	check.Equal(t, uint(1), body.Products[0].ID)
	check.Equal(t, "name", body.Comparison.Results[0].Field)
	assert.True(t, len(body.Comparison.Summary.Recommendations) > 0)
	check.Equal(t, "Best Value: Lenovo ThinkPad T14 at $1,299", body.Comparison.Summary.Recommendations[0])
}

func TestCompareProductsRejectsSelection(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, ids := range [][]int{nil, {1}, {1, 2, 3, 4}} {
		rec := do(t, router, http.MethodPost, "/api/comparison", "", map[string]any{"productIds": ids})
		check.Equal(t, http.StatusBadRequest, rec.Code)
		check.Equal(t, "Please provide 2-3 product IDs for comparison", decode[MessageResponse](t, rec).Message)
	}
}

func TestCompareProductsUnknownIDs(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/api/comparison", "", map[string]any{"productIds": []int{999, 998}})
	check.Equal(t, http.StatusNotFound, rec.Code)
	check.Equal(t, "Not enough valid products found for comparison", decode[MessageResponse](t, rec).Message)
}

func TestGetProduct(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/products/2", "", nil)
	check.Equal(t, http.StatusOK, rec.Code)
	check.True(t, decode[Response](t, rec).Success)

	rec = do(t, router, http.MethodGet, "/api/products/42", "", nil)
	check.Equal(t, http.StatusNotFound, rec.Code)
	check.Equal(t, "Product not found", decode[Response](t, rec).Error)

	rec = do(t, router, http.MethodGet, "/api/products/abc", "", nil)
	check.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListProductsByCategory(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/products?category=laptops", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Products []domain.Product `json:"products"`
			Total    int64            `json:"total"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	check.Equal(t, int64(2), body.Data.Total)

	rec = do(t, router, http.MethodGet, "/api/products?category=phones", "", nil)
	check.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProductRequiresAdmin(t *testing.T) {
	router, repo := newTestRouter(t)
	payload := map[string]any{
		"name":           "HP EliteDesk 800 G6",
		"brand":          "HP",
		"category":       "desktops",
		"condition":      "refurbished",
		"price":          549,
		"specifications": map[string]string{"ram": "16GB"},
		"stockQuantity":  4,
	}

	rec := do(t, router, http.MethodPost, "/api/products", "", payload)
	check.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/products", tokenFor(t, "customer"), payload)
	check.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/products", tokenFor(t, "admin"), payload)
	assert.Equal(t, http.StatusCreated, rec.Code)

	count, err := repo.Count(t.Context(), domain.ListFilter{})
	assert.NoError(t, err)
	check.Equal(t, int64(4), count)
}

func TestCreateProductInvalid(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/api/products", tokenFor(t, "admin"), map[string]any{
		"name": "Widget", "brand": "Acme", "category": "phones", "condition": "new", "price": 10,
	})
	check.Equal(t, http.StatusBadRequest, rec.Code)
	check.NotEqual(t, "", decode[Response](t, rec).Error)
}

func TestUpdateProductClearsOriginalPrice(t *testing.T) {
	router, repo := newTestRouter(t)

	rec := do(t, router, http.MethodPut, "/api/products/1", tokenFor(t, "admin"), map[string]any{
		"price":         3999,
		"originalPrice": nil,
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	p, err := repo.FindByID(t.Context(), 1)
	assert.NoError(t, err)
	check.Equal(t, 3999.0, p.Price)
	check.True(t, p.OriginalPrice == nil)
}

func TestUpdateStockAndDelete(t *testing.T) {
	router, repo := newTestRouter(t)
	admin := tokenFor(t, "admin")

	rec := do(t, router, http.MethodPatch, "/api/products/2/stock", admin, map[string]int{"stockQuantity": 7})
	assert.Equal(t, http.StatusOK, rec.Code)
	p, err := repo.FindByID(t.Context(), 2)
	assert.NoError(t, err)
	check.Equal(t, 7, p.StockQuantity)

	rec = do(t, router, http.MethodPatch, "/api/products/2/stock", admin, map[string]int{})
	check.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodDelete, "/api/products/2", admin, nil)
	check.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, router, http.MethodDelete, "/api/products/2", admin, nil)
	check.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetStats(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/products/stats", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			TotalProducts int64 `json:"totalProducts"`
			OutOfStock    int64 `json:"outOfStock"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	check.Equal(t, int64(3), body.Data.TotalProducts)
	check.Equal(t, int64(1), body.Data.OutOfStock)
}
