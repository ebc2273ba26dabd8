package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"

	"github.com/skavtech/ict-platform/internal/catalog/comparison"
	"github.com/skavtech/ict-platform/internal/catalog/domain"
	"github.com/skavtech/ict-platform/internal/catalog/repository"
	"github.com/skavtech/ict-platform/internal/catalog/seed"
)

type fixedJitter float64

func (f fixedJitter) Float64() float64 { return float64(f) }

func run(t *testing.T, d deps, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd(d)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestEstimateNoJitter(t *testing.T) {
	out, _, err := run(t, deps{}, "estimate",
		"--type", "laptop", "--brand", "Apple", "--model", "MacBook Pro 14",
		"--age", "0-1", "--condition", "excellent", "--no-jitter")
	assert.NoError(t, err)

	var got estimateOutput
	assert.NoError(t, json.Unmarshal([]byte(out), &got))
	// 800 * 1.3 * 0.9 * 1.0 * 1.1 = 1029.6
	check.Equal(t, int64(1030), got.EstimatedValue)
	check.Equal(t, "Apple", got.Breakdown.Brand)
	check.Nil(t, got.Factors)
}

func TestEstimateUsesJitterSource(t *testing.T) {
	out, _, err := run(t, deps{jitter: fixedJitter(0)}, "estimate",
		"--type", "server", "--brand", "Generic", "--model", "Box",
		"--age", "5+", "--condition", "poor", "--explain")
	assert.NoError(t, err)

	var got estimateOutput
	assert.NoError(t, json.Unmarshal([]byte(out), &got))
	// 2000 * 1.0 * 0.3 * 0.25 * 0.95 = 142.5
	check.Equal(t, int64(140), got.EstimatedValue)
	check.NotNil(t, got.Factors)
}

func TestEstimateReportsEveryFieldError(t *testing.T) {
	_, stderr, err := run(t, deps{}, "estimate", "--type", "phone", "--age", "10", "--condition", "mint")
	check.Error(t, err)
	for _, field := range []string{"deviceType", "brand", "model", "age", "condition"} {
		check.True(t, strings.Contains(stderr, field+":"))
	}
}

func writeProducts(t *testing.T, products []domain.Product) string {
	t.Helper()
	data, err := json.Marshal(products)
	assert.NoError(t, err)
	path := filepath.Join(t.TempDir(), "products.json")
	assert.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestCompareFromFile(t *testing.T) {
	original := 1299.0
	path := writeProducts(t, []domain.Product{
		{ID: 1, Name: "EliteBook 840", Brand: "HP", Category: domain.CategoryLaptops, Condition: domain.ConditionRefurbished, Price: 899, OriginalPrice: &original, WarrantyYears: 1, StockQuantity: 7, IsActive: true},
		{ID: 2, Name: "ThinkPad T14", Brand: "Lenovo", Category: domain.CategoryLaptops, Condition: domain.ConditionNew, Price: 1299, WarrantyYears: 3, StockQuantity: 12, IsActive: true},
	})

	out, _, err := run(t, deps{}, "compare", "--file", path)
	assert.NoError(t, err)

	var got comparison.ProductComparison
	assert.NoError(t, json.Unmarshal([]byte(out), &got))
	check.Equal(t, 2, len(got.Products))
	check.Equal(t, 899.0, got.Summary.PriceRange.Min)
	check.Equal(t, 1299.0, got.Summary.PriceRange.Max)
}

func TestCompareNeedsTwoProducts(t *testing.T) {
	path := writeProducts(t, []domain.Product{{ID: 1, Name: "Solo"}})

	_, _, err := run(t, deps{}, "compare", "--file", path)
	check.True(t, errors.Is(err, comparison.ErrNotEnoughProducts))
}

func TestCompareRequiresFile(t *testing.T) {
	_, _, err := run(t, deps{}, "compare")
	check.Error(t, err)
}

func TestSeed(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	closed := false
	d := deps{openCatalog: func(context.Context) (domain.ProductRepository, func() error, error) {
		return repo, func() error { closed = true; return nil }, nil
	}}

	out, _, err := run(t, d, "seed")
	assert.NoError(t, err)
	check.True(t, closed)

	var res seed.Result
	assert.NoError(t, json.Unmarshal([]byte(out), &res))
	check.Equal(t, len(seed.ReferenceProducts()), res.Created)

	out, _, err = run(t, d, "seed")
	assert.NoError(t, err)
	assert.NoError(t, json.Unmarshal([]byte(out), &res))
	check.True(t, res.Skipped)
}

func TestSeedConnectionError(t *testing.T) {
	d := deps{openCatalog: func(context.Context) (domain.ProductRepository, func() error, error) {
		return nil, nil, errors.New("connection refused")
	}}
	_, _, err := run(t, d, "seed")
	check.Error(t, err)
}
