// Package valuation prices trade-in devices from their type, brand, model,
// age and condition.
package valuation

import (
	"math/rand/v2"
	"strings"

	"github.com/shopspring/decimal"
)

// JitterSource draws the market variance sample. Float64 must return a
// value in [0, 1); out of range values are clamped.
type JitterSource interface {
	Float64() float64
}

// globalRand uses the math/rand/v2 top-level source, which is safe for
// concurrent use.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

var defaultJitter JitterSource = globalRand{}

var (
	fallbackBaseValue = decimal.NewFromInt(500)

	baseValues = map[DeviceType]decimal.Decimal{
		DeviceLaptop:  decimal.NewFromInt(800),
		DeviceDesktop: decimal.NewFromInt(600),
		DeviceServer:  decimal.NewFromInt(2000),
		DeviceTablet:  decimal.NewFromInt(400),
	}

	// keyed by lowercase brand
	brandMultipliers = map[string]decimal.Decimal{
		"apple":  decimal.RequireFromString("1.3"),
		"dell":   decimal.RequireFromString("1.1"),
		"hp":     decimal.RequireFromString("1.1"),
		"lenovo": decimal.RequireFromString("1.1"),
		"asus":   decimal.RequireFromString("1.0"),
	}

	conditionMultipliers = map[Condition]decimal.Decimal{
		ConditionExcellent: decimal.RequireFromString("0.9"),
		ConditionGood:      decimal.RequireFromString("0.75"),
		ConditionFair:      decimal.RequireFromString("0.55"),
		ConditionPoor:      decimal.RequireFromString("0.3"),
	}

	ageMultipliers = map[AgeBucket]decimal.Decimal{
		AgeUnderOne:    decimal.RequireFromString("1.0"),
		AgeOneToTwo:    decimal.RequireFromString("0.85"),
		AgeTwoToThree:  decimal.RequireFromString("0.7"),
		AgeThreeToFive: decimal.RequireFromString("0.5"),
		AgeOverFive:    decimal.RequireFromString("0.25"),
	}

	popularModels = []string{
		"macbook pro",
		"thinkpad",
		"latitude",
		"elitebook",
		"xps",
		"poweredge",
		"proliant",
		"thinksystem",
	}

	popularModelBonus = decimal.RequireFromString("1.1")
	jitterFloor       = decimal.RequireFromString("0.95")
	jitterSpan        = decimal.RequireFromString("0.1")
)

// Factors records every multiplier applied to reach an estimate.
type Factors struct {
	BaseValue           decimal.Decimal `json:"baseValue"`
	BrandMultiplier     decimal.Decimal `json:"brandMultiplier"`
	ConditionMultiplier decimal.Decimal `json:"conditionMultiplier"`
	AgeMultiplier       decimal.Decimal `json:"ageMultiplier"`
	PopularModel        bool            `json:"popularModel"`
	ModelMultiplier     decimal.Decimal `json:"modelMultiplier"`
	Jitter              decimal.Decimal `json:"jitter"`
}

// Estimate is the outcome of a single valuation.
type Estimate struct {
	Value   int64   `json:"estimatedValue"`
	Request Request `json:"breakdown"`
	Factors Factors `json:"-"`
}

// Estimator computes trade-in values. The zero value is not usable; build
// one with NewEstimator.
type Estimator struct {
	jitter JitterSource
}

// NewEstimator returns an Estimator drawing variance from j, or from the
// process-wide random source when j is nil.
func NewEstimator(j JitterSource) *Estimator {
	if j == nil {
		j = defaultJitter
	}
	return &Estimator{jitter: j}
}

// BaseValue is the deterministic part of the valuation: every factor except
// market jitter, unrounded.
func (e *Estimator) BaseValue(req Request) decimal.Decimal {
	f := baseFactors(req)
	return f.BaseValue.
		Mul(f.BrandMultiplier).
		Mul(f.ConditionMultiplier).
		Mul(f.AgeMultiplier).
		Mul(f.ModelMultiplier)
}

// Estimate prices req, applying jitter and rounding to the nearest 10.
func (e *Estimator) Estimate(req Request) Estimate {
	f := baseFactors(req)
	f.Jitter = jitterFactor(e.jitter.Float64())

	value := e.BaseValue(req).Mul(f.Jitter).Round(-1)

	return Estimate{
		Value:   value.IntPart(),
		Request: req,
		Factors: f,
	}
}

func baseFactors(req Request) Factors {
	f := Factors{
		BaseValue:           fallbackBaseValue,
		BrandMultiplier:     decimal.NewFromInt(1),
		ConditionMultiplier: conditionMultipliers[req.Condition],
		AgeMultiplier:       ageMultipliers[req.Age],
		ModelMultiplier:     decimal.NewFromInt(1),
	}

	if v, ok := baseValues[req.DeviceType]; ok {
		f.BaseValue = v
	}
	if m, ok := brandMultipliers[strings.ToLower(req.Brand)]; ok {
		f.BrandMultiplier = m
	}
	if IsPopularModel(req.Model) {
		f.PopularModel = true
		f.ModelMultiplier = popularModelBonus
	}
	return f
}

// IsPopularModel reports whether model names one of the high demand product
// lines, matched case-insensitively as a substring.
func IsPopularModel(model string) bool {
	m := strings.ToLower(model)
	for _, keyword := range popularModels {
		if strings.Contains(m, keyword) {
			return true
		}
	}
	return false
}

func jitterFactor(r float64) decimal.Decimal {
	switch {
	case r < 0:
		r = 0
	case r > 1:
		r = 1
	}
	return jitterFloor.Add(decimal.NewFromFloat(r).Mul(jitterSpan))
}
