package comparison

import (
	"errors"
	"strings"
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
	"github.com/shopspring/decimal"

	"github.com/skavtech/ict-platform/internal/catalog/domain"
)

func ptr[T any](v T) *T { return &v }

func fixtureProducts() []domain.Product {
	return []domain.Product{
		{
			ID:             1,
			Name:           "Dell Latitude 7420",
			Brand:          "Dell",
			Category:       domain.CategoryLaptops,
			Condition:      domain.ConditionRefurbished,
			Price:          1200,
			Description:    "Business laptop",
			Specifications: []byte(`{"cpu":"i7-1185G7","ram":"16GB"}`),
			WarrantyYears:  3,
			StockQuantity:  4,
		},
		{
			ID:            2,
			Name:          "HP EliteBook 840",
			Brand:         "HP",
			Category:      domain.CategoryLaptops,
			Condition:     domain.ConditionNew,
			Price:         800,
			OriginalPrice: ptr(1000.0),
			WarrantyYears: 1,
			StockQuantity: 0,
		},
	}
}

func mustCompare(t *testing.T, products []domain.Product) *ProductComparison {
	t.Helper()
	c, err := Compare(products)
	assert.NoError(t, err)
	return c
}

func field(t *testing.T, c *ProductComparison, name string) Result {
	t.Helper()
	r, ok := c.Field(name)
	assert.True(t, ok)
	return r
}

func TestCompareRejectsFewerThanTwo(t *testing.T) {
	_, err := Compare(nil)
	check.True(t, errors.Is(err, ErrNotEnoughProducts))

	_, err = Compare(fixtureProducts()[:1])
	check.True(t, errors.Is(err, ErrNotEnoughProducts))
}

func TestCompareFieldOrder(t *testing.T) {
	c := mustCompare(t, fixtureProducts())

	var fields []string
	for _, r := range c.Results {
		fields = append(fields, r.Field)
		check.Equal(t, len(c.Products), len(r.Values))
	}
	check.Equal(t, []string{
		"name", "brand", "category", "condition", "price", "originalPrice",
		"savings", "warrantyYears", "stockQuantity", "description", "specifications",
	}, fields)
}

func TestComparePrice(t *testing.T) {
	c := mustCompare(t, fixtureProducts())

	price := field(t, c, "price")
	check.Equal(t, []any{1200.0, 800.0}, price.Values)
	assert.NotNil(t, price.BestIndex)
	check.Equal(t, 1, *price.BestIndex)
	check.Equal(t, TypePrice, price.Type)
	check.Equal(t, "Price ($)", price.Label)
}

func TestCompareWarranty(t *testing.T) {
	c := mustCompare(t, fixtureProducts())

	w := field(t, c, "warrantyYears")
	check.Equal(t, []any{3, 1}, w.Values)
	assert.NotNil(t, w.BestIndex)
	check.Equal(t, 0, *w.BestIndex)
}

func TestCompareSavings(t *testing.T) {
	c := mustCompare(t, fixtureProducts())

	s := field(t, c, "savings")
	check.Equal(t, []any{0.0, 200.0}, s.Values)
	assert.NotNil(t, s.BestIndex)
	check.Equal(t, 1, *s.BestIndex)

	orig := field(t, c, "originalPrice")
	check.Equal(t, []any{nil, 1000.0}, orig.Values)
	check.True(t, orig.BestIndex == nil)
}

func TestCompareSavingsOmittedWithoutDiscounts(t *testing.T) {
	products := fixtureProducts()
	products[1].OriginalPrice = nil

	c := mustCompare(t, products)
	_, ok := c.Field("savings")
	check.False(t, ok)
	check.Equal(t, 10, len(c.Results))
}

func TestCompareSavingsAreExact(t *testing.T) {
	products := fixtureProducts()
	products[0].Price = 999.99
	products[0].OriginalPrice = ptr(1299.99)

	c := mustCompare(t, products)
	check.Equal(t, []any{300.0, 200.0}, field(t, c, "savings").Values)
}

func TestCompareTextFields(t *testing.T) {
	c := mustCompare(t, fixtureProducts())

	check.Equal(t, []any{"Business laptop", "No description"}, field(t, c, "description").Values)
	check.Equal(t, []any{"cpu: i7-1185G7, ram: 16GB", "Not available"}, field(t, c, "specifications").Values)
	check.Equal(t, []any{"refurbished", "new"}, field(t, c, "condition").Values)

	for _, name := range []string{"name", "brand", "category", "condition", "description", "specifications", "stockQuantity", "originalPrice"} {
		check.True(t, field(t, c, name).BestIndex == nil)
	}
}

func TestCompareMissingSpecifications(t *testing.T) {
	products := fixtureProducts()
	products[0].Specifications = nil
	products[1].Specifications = []byte("null")

	c := mustCompare(t, products)
	check.Equal(t, []any{"Not available", "Not available"}, field(t, c, "specifications").Values)
}

func TestCompareTiesPickFirst(t *testing.T) {
	products := fixtureProducts()
	products[0].Price = 800
	products[0].WarrantyYears = 1

	c := mustCompare(t, products)
	check.Equal(t, 0, *field(t, c, "price").BestIndex)
	check.Equal(t, 0, *field(t, c, "warrantyYears").BestIndex)
	check.Equal(t, uint(1), c.Summary.BestValue.ID)
}

func TestCompareSummary(t *testing.T) {
	c := mustCompare(t, fixtureProducts())

	check.Equal(t, PriceRange{Min: 800, Max: 1200, Avg: 1000}, c.Summary.PriceRange)
	assert.NotNil(t, c.Summary.BestValue)
	check.Equal(t, uint(2), c.Summary.BestValue.ID)
	check.Equal(t, 800.0, c.Summary.BestValue.Price)
}

func TestCompareAverageRounds(t *testing.T) {
	products := fixtureProducts()
	products[0].Price = 1000
	products[1].Price = 1001
	products[1].OriginalPrice = nil

	c := mustCompare(t, products)
	check.Equal(t, int64(1001), c.Summary.PriceRange.Avg)
}

func TestCompareRecommendations(t *testing.T) {
	c := mustCompare(t, fixtureProducts())

	check.Equal(t, []string{
		"Best Value: HP EliteBook 840 at $800",
		"Best Warranty: Dell Latitude 7420 (3 years)",
		"Brand New: HP EliteBook 840",
		"Stock Alert: 1 product(s) currently out of stock",
	}, c.Summary.Recommendations)
}

func TestCompareRecommendationsPriceSpread(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Name: "Dell PowerEdge R750", Condition: domain.ConditionRefurbished, Price: 4299, WarrantyYears: 1, StockQuantity: 2},
		{ID: 2, Name: "Lenovo ThinkPad T14", Condition: domain.ConditionRefurbished, Price: 1299, WarrantyYears: 1, StockQuantity: 3},
		{ID: 3, Name: "HP EliteDesk 800 G6", Condition: domain.ConditionRefurbished, Price: 549, WarrantyYears: 1, StockQuantity: 8},
	}

	c := mustCompare(t, products)
	check.Equal(t, []string{
		"Best Value: HP EliteDesk 800 G6 at $549",
		"Price Range: $3,750 difference between cheapest and most expensive",
	}, c.Summary.Recommendations)
	check.Equal(t, PriceRange{Min: 549, Max: 4299, Avg: 2049}, c.Summary.PriceRange)
}

func TestCompareRecommendationsAlwaysStartWithBestValue(t *testing.T) {
	products := fixtureProducts()
	products[0].Price = 12999.5
	products[1].Price = 12345.678

	c := mustCompare(t, products)
	assert.True(t, len(c.Summary.Recommendations) > 0)
	check.True(t, strings.HasPrefix(c.Summary.Recommendations[0], "Best Value: "))
	check.Equal(t, "Best Value: HP EliteBook 840 at $12,345.678", c.Summary.Recommendations[0])
}

func TestCompareIsGeneralBeyondThree(t *testing.T) {
	products := append(fixtureProducts(), fixtureProducts()...)
	products[2].ID, products[3].ID = 3, 4
	products[3].Price = 100

	c := mustCompare(t, products)
	check.Equal(t, 3, *field(t, c, "price").BestIndex)
	for _, r := range c.Results {
		check.Equal(t, 4, len(r.Values))
	}
}

func TestCompareInsights(t *testing.T) {
	products := fixtureProducts()
	products = append(products, domain.Product{
		ID: 3, Name: "Dell OptiPlex 7090", Brand: "dell", Category: domain.CategoryDesktops,
		Condition: domain.ConditionRefurbished, Price: 650, WarrantyYears: 2, StockQuantity: 1,
	})

	in := mustCompare(t, products).Summary.Insights
	check.Equal(t, map[domain.Condition]int{domain.ConditionNew: 1, domain.ConditionRefurbished: 2}, in.ConditionBreakdown)
	check.Equal(t, map[domain.Category]int{domain.CategoryLaptops: 2, domain.CategoryDesktops: 1}, in.CategoryBreakdown)
	check.Equal(t, 3, in.BrandDiversity)
	check.Equal(t, WarrantyComparison{Best: 3, Average: 2}, in.Warranty)
}

func TestCompareInsightsBrandsAreCaseSensitive(t *testing.T) {
	products := fixtureProducts()
	products[1].Brand = "Dell"

	in := mustCompare(t, products).Summary.Insights
	check.Equal(t, 1, in.BrandDiversity)

	products[1].Brand = "DELL"
	in = mustCompare(t, products).Summary.Insights
	check.Equal(t, 2, in.BrandDiversity)
}

func TestCompareWarrantyAverageRoundsToWholeYears(t *testing.T) {
	products := fixtureProducts()
	products[0].WarrantyYears = 2
	products[1].WarrantyYears = 1

	in := mustCompare(t, products).Summary.Insights
	check.Equal(t, WarrantyComparison{Best: 2, Average: 2}, in.Warranty)

	products = append(products, fixtureProducts()[1])
	products[2].ID = 3
	in = mustCompare(t, products).Summary.Insights
	check.Equal(t, int64(1), in.Warranty.Average)
}

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":          "0",
		"999":        "999",
		"1000":       "1,000",
		"4299.99":    "4,299.99",
		"1234567.5":  "1,234,567.5",
		"12.30":      "12.3",
		"100.123456": "100.123",
	}
	for in, want := range cases {
		check.Equal(t, want, formatMoney(decimalFrom(t, in)))
	}
}

func decimalFrom(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	assert.NoError(t, err)
	return d
}
