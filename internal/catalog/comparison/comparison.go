// Package comparison builds side by side product comparisons with per-field
// winners, a price summary and buying recommendations.
package comparison

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/skavtech/ict-platform/internal/catalog/domain"
)

// ErrNotEnoughProducts is returned when fewer than two products are given.
var ErrNotEnoughProducts = errors.New("at least 2 products required")

const noDescription = "No description"

// ValueType controls how a field is formatted and which direction wins.
type ValueType string

const (
	TypePrice   ValueType = "price"
	TypeNumber  ValueType = "number"
	TypeText    ValueType = "text"
	TypeBoolean ValueType = "boolean"
	TypeDate    ValueType = "date"
)

// Result is one compared field. Values holds one entry per product in input
// order; BestIndex, when set, points at the winning entry.
type Result struct {
	Field     string    `json:"field"`
	Label     string    `json:"label"`
	Values    []any     `json:"values"`
	BestIndex *int      `json:"bestIndex,omitempty"`
	Type      ValueType `json:"type"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg int64   `json:"avg"`
}

type WarrantyComparison struct {
	Best    int   `json:"best"`
	Average int64 `json:"average"`
}

// Insights are aggregate facts about the compared set.
type Insights struct {
	ConditionBreakdown map[domain.Condition]int `json:"conditionBreakdown"`
	CategoryBreakdown  map[domain.Category]int  `json:"categoryBreakdown"`
	BrandDiversity     int                      `json:"brandDiversity"`
	Warranty           WarrantyComparison       `json:"warrantyComparison"`
}

type Summary struct {
	PriceRange      PriceRange      `json:"priceRange"`
	BestValue       *domain.Product `json:"bestValue"`
	Recommendations []string        `json:"recommendations"`
	Insights        Insights        `json:"insights"`
}

// ProductComparison is the full comparison of a product set.
type ProductComparison struct {
	Products []domain.Product `json:"products"`
	Results  []Result         `json:"results"`
	Summary  Summary          `json:"summary"`
}

// Compare compares two or more products. It has no upper bound on the set
// size; callers enforce their own limits.
func Compare(products []domain.Product) (*ProductComparison, error) {
	if len(products) < 2 {
		return nil, ErrNotEnoughProducts
	}

	prices := make([]decimal.Decimal, len(products))
	savings := make([]decimal.Decimal, len(products))
	warranties := make([]int, len(products))
	for i := range products {
		p := &products[i]
		prices[i] = decimal.NewFromFloat(p.Price)
		savings[i] = savingsOf(p)
		warranties[i] = p.WarrantyYears
	}

	cheapest := indexOfMin(prices)
	mostSaved := indexOfMax(savings)
	longestWarranty := indexOfMaxInt(warranties)

	results := []Result{
		project(products, "name", "Product Name", TypeText, func(p *domain.Product) any { return p.Name }),
		project(products, "brand", "Brand", TypeText, func(p *domain.Product) any { return p.Brand }),
		project(products, "category", "Category", TypeText, func(p *domain.Product) any { return string(p.Category) }),
		project(products, "condition", "Condition", TypeText, func(p *domain.Product) any { return string(p.Condition) }),
		withBest(project(products, "price", "Price ($)", TypePrice, func(p *domain.Product) any { return p.Price }), cheapest),
		project(products, "originalPrice", "Original Price ($)", TypePrice, func(p *domain.Product) any {
			if p.OriginalPrice == nil {
				return nil
			}
			return *p.OriginalPrice
		}),
	}

	if savings[mostSaved].IsPositive() {
		values := make([]any, len(savings))
		for i, s := range savings {
			values[i] = s.InexactFloat64()
		}
		results = append(results, withBest(Result{
			Field:  "savings",
			Label:  "Savings ($)",
			Values: values,
			Type:   TypePrice,
		}, mostSaved))
	}

	results = append(results,
		withBest(project(products, "warrantyYears", "Warranty (Years)", TypeNumber, func(p *domain.Product) any { return p.WarrantyYears }), longestWarranty),
		project(products, "stockQuantity", "Stock Quantity", TypeNumber, func(p *domain.Product) any { return p.StockQuantity }),
		project(products, "description", "Description", TypeText, func(p *domain.Product) any {
			if p.Description == "" {
				return noDescription
			}
			return p.Description
		}),
		project(products, "specifications", "Specifications", TypeText, func(p *domain.Product) any {
			return domain.FormatSpecifications(p.Specifications)
		}),
	)

	priceRange := priceRangeOf(prices)
	bestValue := products[cheapest]

	return &ProductComparison{
		Products: products,
		Results:  results,
		Summary: Summary{
			PriceRange:      priceRange,
			BestValue:       &bestValue,
			Recommendations: recommend(products, prices, cheapest, longestWarranty, priceRange),
			Insights:        insightsOf(products, warranties, longestWarranty),
		},
	}, nil
}

// Field returns the result for the named field, if present.
func (c *ProductComparison) Field(name string) (Result, bool) {
	for _, r := range c.Results {
		if r.Field == name {
			return r, true
		}
	}
	return Result{}, false
}

func project(products []domain.Product, field, label string, typ ValueType, value func(*domain.Product) any) Result {
	values := make([]any, len(products))
	for i := range products {
		values[i] = value(&products[i])
	}
	return Result{Field: field, Label: label, Values: values, Type: typ}
}

func withBest(r Result, idx int) Result {
	r.BestIndex = &idx
	return r
}

func savingsOf(p *domain.Product) decimal.Decimal {
	if p.OriginalPrice == nil {
		return decimal.Zero
	}
	diff := decimal.NewFromFloat(*p.OriginalPrice).Sub(decimal.NewFromFloat(p.Price))
	if !diff.IsPositive() {
		return decimal.Zero
	}
	return diff
}

// indexOfMin and friends return the first index on ties.
func indexOfMin(values []decimal.Decimal) int {
	best := 0
	for i, v := range values {
		if v.LessThan(values[best]) {
			best = i
		}
	}
	return best
}

func indexOfMax(values []decimal.Decimal) int {
	best := 0
	for i, v := range values {
		if v.GreaterThan(values[best]) {
			best = i
		}
	}
	return best
}

func indexOfMaxInt(values []int) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}

func priceRangeOf(prices []decimal.Decimal) PriceRange {
	sum := decimal.Zero
	for _, p := range prices {
		sum = sum.Add(p)
	}
	avg := sum.Div(decimal.NewFromInt(int64(len(prices)))).Round(0)

	return PriceRange{
		Min: decimal.Min(prices[0], prices[1:]...).InexactFloat64(),
		Max: decimal.Max(prices[0], prices[1:]...).InexactFloat64(),
		Avg: avg.IntPart(),
	}
}

func recommend(products []domain.Product, prices []decimal.Decimal, cheapest, longestWarranty int, pr PriceRange) []string {
	recs := []string{
		fmt.Sprintf("Best Value: %s at $%s", products[cheapest].Name, formatMoney(prices[cheapest])),
	}

	if w := products[longestWarranty]; w.WarrantyYears > 1 {
		recs = append(recs, fmt.Sprintf("Best Warranty: %s (%d years)", w.Name, w.WarrantyYears))
	}

	for _, p := range products {
		if p.Condition == domain.ConditionNew {
			recs = append(recs, "Brand New: "+p.Name)
			break
		}
	}

	minPrice := decimal.NewFromFloat(pr.Min)
	spread := decimal.NewFromFloat(pr.Max).Sub(minPrice)
	if spread.GreaterThan(decimal.NewFromInt(pr.Avg).Mul(decimal.NewFromFloat(0.5))) {
		recs = append(recs, fmt.Sprintf("Price Range: $%s difference between cheapest and most expensive", formatMoney(spread)))
	}

	outOfStock := 0
	for _, p := range products {
		if p.StockQuantity <= 0 {
			outOfStock++
		}
	}
	if outOfStock > 0 {
		recs = append(recs, fmt.Sprintf("Stock Alert: %d product(s) currently out of stock", outOfStock))
	}

	return recs
}

func insightsOf(products []domain.Product, warranties []int, longestWarranty int) Insights {
	in := Insights{
		ConditionBreakdown: make(map[domain.Condition]int),
		CategoryBreakdown:  make(map[domain.Category]int),
	}

	brands := make(map[string]struct{})
	total := 0
	for _, p := range products {
		in.ConditionBreakdown[p.Condition]++
		in.CategoryBreakdown[p.Category]++
		brands[p.Brand] = struct{}{}
	}
	for _, w := range warranties {
		total += w
	}

	avg := decimal.NewFromInt(int64(total)).Div(decimal.NewFromInt(int64(len(warranties))))

	in.BrandDiversity = len(brands)
	in.Warranty = WarrantyComparison{
		Best:    warranties[longestWarranty],
		Average: avg.Round(0).IntPart(),
	}
	return in
}

// formatMoney renders an amount with thousands separators and at most three
// fraction digits, trailing zeros dropped.
func formatMoney(d decimal.Decimal) string {
	s := d.Round(3).String()
	intPart, frac, hasFrac := strings.Cut(s, ".")

	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
