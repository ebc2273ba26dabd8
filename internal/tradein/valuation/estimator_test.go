package valuation

import (
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
	"github.com/shopspring/decimal"
)

type fixedJitter float64

func (f fixedJitter) Float64() float64 { return float64(f) }

func mustParse(t *testing.T, raw RawRequest) Request {
	t.Helper()
	req, err := ParseRequest(raw)
	assert.NoError(t, err)
	return req
}

func TestEstimateKnownValues(t *testing.T) {
	cases := []struct {
		name   string
		raw    RawRequest
		jitter float64
		want   int64
	}{
		{
			name:   "apple macbook pro, midpoint jitter",
			raw:    RawRequest{DeviceType: "laptop", Brand: "Apple", Model: "MacBook Pro 14", Age: "0-1", Condition: "excellent"},
			jitter: 0.5,
			want:   1030,
		},
		{
			name:   "apple macbook pro, lowest jitter",
			raw:    RawRequest{DeviceType: "laptop", Brand: "Apple", Model: "MacBook Pro 14", Age: "0-1", Condition: "excellent"},
			jitter: 0,
			want:   980,
		},
		{
			name:   "dell poweredge server",
			raw:    RawRequest{DeviceType: "server", Brand: "Dell", Model: "PowerEdge R740", Age: "2-3", Condition: "good"},
			jitter: 0.5,
			want:   1270,
		},
		{
			name:   "unknown brand tablet at the floor",
			raw:    RawRequest{DeviceType: "tablet", Brand: "Samsung", Model: "Galaxy Tab S7", Age: "5+", Condition: "poor"},
			jitter: 0,
			want:   30,
		},
		{
			name:   "desktop without bonus",
			raw:    RawRequest{DeviceType: "desktop", Brand: "HP", Model: "ProDesk 400", Age: "1-2", Condition: "fair"},
			jitter: 0.5,
			want:   310,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			est := NewEstimator(fixedJitter(tc.jitter)).Estimate(mustParse(t, tc.raw))
			check.Equal(t, tc.want, est.Value)
		})
	}
}

func TestEstimatePositiveAndRoundedForAllInputs(t *testing.T) {
	for _, jitter := range []float64{0, 0.37, 0.999999} {
		e := NewEstimator(fixedJitter(jitter))
		for _, d := range deviceTypes {
			for _, a := range ageBuckets {
				for _, c := range conditions {
					for _, brand := range []string{"Apple", "dell", "Acme"} {
						req := Request{DeviceType: d, Brand: brand, Model: "ThinkPad X1", Age: a, Condition: c}
						v := e.Estimate(req).Value
						check.True(t, v > 0)
						check.Equal(t, int64(0), v%10)
					}
				}
			}
		}
	}
}

func TestEstimateWithinJitterBand(t *testing.T) {
	req := mustParse(t, RawRequest{DeviceType: "server", Brand: "HPE", Model: "ProLiant DL380", Age: "1-2", Condition: "excellent"})
	e := NewEstimator(nil)
	base := e.BaseValue(req).InexactFloat64()

	for i := 0; i < 200; i++ {
		v := float64(e.Estimate(req).Value)
		check.True(t, v >= base*0.95-5)
		check.True(t, v <= base*1.05+5)
	}
}

func TestBaseValueMonotonicInCondition(t *testing.T) {
	e := NewEstimator(nil)
	prev := decimal.NewFromInt(1 << 30)
	for _, c := range conditions {
		v := e.BaseValue(Request{DeviceType: DeviceLaptop, Brand: "Lenovo", Model: "IdeaPad", Age: AgeOneToTwo, Condition: c})
		check.True(t, v.LessThan(prev))
		prev = v
	}
}

func TestBaseValueMonotonicInAge(t *testing.T) {
	e := NewEstimator(nil)
	prev := decimal.NewFromInt(1 << 30)
	for _, a := range ageBuckets {
		v := e.BaseValue(Request{DeviceType: DeviceDesktop, Brand: "Dell", Model: "OptiPlex", Age: a, Condition: ConditionGood})
		check.True(t, v.LessThan(prev))
		prev = v
	}
}

func TestBaseValueBrandAndModel(t *testing.T) {
	e := NewEstimator(nil)
	req := Request{DeviceType: DeviceLaptop, Model: "Generic 15", Age: AgeTwoToThree, Condition: ConditionGood}

	withBrand := func(b string) decimal.Decimal {
		r := req
		r.Brand = b
		return e.BaseValue(r)
	}

	check.True(t, withBrand("Apple").GreaterThan(withBrand("Dell")))
	check.True(t, withBrand("Dell").GreaterThan(withBrand("Acme")))
	check.True(t, withBrand("apple").Equal(withBrand("APPLE")))
	check.True(t, withBrand("Asus").Equal(withBrand("Acme")))

	popular := req
	popular.Brand = "Lenovo"
	popular.Model = "THINKPAD T14"
	plain := popular
	plain.Model = "IdeaPad 5"
	check.True(t, e.BaseValue(popular).GreaterThan(e.BaseValue(plain)))
}

func TestBaseValueFallsBackForUnknownDeviceType(t *testing.T) {
	e := NewEstimator(nil)
	v := e.BaseValue(Request{DeviceType: "phone", Brand: "x", Model: "y", Age: AgeUnderOne, Condition: ConditionExcellent})
	check.True(t, v.Equal(decimal.NewFromInt(450)))
}

func TestEstimateFactors(t *testing.T) {
	req := mustParse(t, RawRequest{DeviceType: "laptop", Brand: "Dell", Model: "Latitude 7420", Age: "3-5", Condition: "fair"})
	est := NewEstimator(fixedJitter(0.5)).Estimate(req)

	check.True(t, est.Factors.PopularModel)
	check.Equal(t, "800", est.Factors.BaseValue.String())
	check.Equal(t, "1.1", est.Factors.BrandMultiplier.String())
	check.Equal(t, "0.55", est.Factors.ConditionMultiplier.String())
	check.Equal(t, "0.5", est.Factors.AgeMultiplier.String())
	check.Equal(t, "1", est.Factors.Jitter.String())
	check.Equal(t, req, est.Request)
}

func TestJitterFactorClamps(t *testing.T) {
	check.Equal(t, "0.95", jitterFactor(-3).String())
	check.Equal(t, "1.05", jitterFactor(7).String())
}

func TestIsPopularModel(t *testing.T) {
	check.True(t, IsPopularModel("HP EliteBook 840 G8"))
	check.True(t, IsPopularModel("Lenovo ThinkSystem SR650"))
	check.True(t, IsPopularModel("xps 13"))
	check.False(t, IsPopularModel("MacBook Air"))
	check.False(t, IsPopularModel(""))
}
