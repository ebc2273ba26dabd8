package domain

import (
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
)

func TestParseSpecificationsKeepsKeyOrder(t *testing.T) {
	specs, ok := ParseSpecifications([]byte(`{"processor":"Intel Xeon Silver 4314","ram":"64GB DDR4","storage":"2x 960GB SSD","cores":16,"hotSwap":true}`))
	assert.True(t, ok)

	check.Equal(t, Specs{
		{Key: "processor", Value: "Intel Xeon Silver 4314"},
		{Key: "ram", Value: "64GB DDR4"},
		{Key: "storage", Value: "2x 960GB SSD"},
		{Key: "cores", Value: "16"},
		{Key: "hotSwap", Value: "true"},
	}, specs)
}

func TestFormatSpecifications(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"object", `{"cpu":"M3 Pro","ram":"18GB"}`, "cpu: M3 Pro, ram: 18GB"},
		{"reverse alphabetical order preserved", `{"z":"1","a":"2"}`, "z: 1, a: 2"},
		{"decimal number kept verbatim", `{"weight":1.60}`, "weight: 1.60"},
		{"array value", `{"ports":["USB-C","HDMI"]}`, "ports: USB-C,HDMI"},
		{"nested object", `{"display":{"size":14, "hz":120}}`, `display: {"size":14,"hz":120}`},
		{"empty object", `{}`, SpecificationsNotAvailable},
		{"missing", ``, SpecificationsNotAvailable},
		{"null", `null`, SpecificationsNotAvailable},
		{"array", `["a","b"]`, SpecificationsNotAvailable},
		{"string", `"fast"`, SpecificationsNotAvailable},
		{"malformed", `{"cpu":`, SpecificationsNotAvailable},
		{"trailing garbage", `{"cpu":"x"} {}`, SpecificationsNotAvailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			check.Equal(t, tc.want, FormatSpecifications([]byte(tc.raw)))
		})
	}
}

func TestProductValidate(t *testing.T) {
	orig := 6500.0
	valid := Product{
		Name:           "Dell PowerEdge R750",
		Brand:          "Dell",
		Category:       CategoryServers,
		Condition:      ConditionRefurbished,
		Price:          4299,
		OriginalPrice:  &orig,
		WarrantyYears:  3,
		StockQuantity:  5,
		Specifications: []byte(`{"ram":"64GB"}`),
	}
	check.NoError(t, valid.Validate())

	nullSpecs := valid
	nullSpecs.Specifications = []byte("null")
	check.NoError(t, nullSpecs.Validate())

	mutations := map[string]func(p *Product){
		"name":           func(p *Product) { p.Name = "" },
		"brand":          func(p *Product) { p.Brand = "" },
		"category":       func(p *Product) { p.Category = "phones" },
		"condition":      func(p *Product) { p.Condition = "used" },
		"price":          func(p *Product) { p.Price = -1 },
		"original price": func(p *Product) { low := 10.0; p.OriginalPrice = &low },
		"warranty":       func(p *Product) { p.WarrantyYears = -1 },
		"stock":          func(p *Product) { p.StockQuantity = -2 },
		"specifications": func(p *Product) { p.Specifications = []byte(`[1,2]`) },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			p := valid
			mutate(&p)
			check.Error(t, p.Validate())
		})
	}
}

func TestProductSavings(t *testing.T) {
	orig := 1000.0
	p := Product{Price: 800, OriginalPrice: &orig}
	check.Equal(t, 200.0, p.Savings())

	p.OriginalPrice = nil
	check.Equal(t, 0.0, p.Savings())

	lower := 500.0
	p.OriginalPrice = &lower
	check.Equal(t, 0.0, p.Savings())
}
