package valuation

import (
	"errors"
	"strings"
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
)

func TestParseRequestValid(t *testing.T) {
	req, err := ParseRequest(RawRequest{
		DeviceType: "server",
		Brand:      "  Dell ",
		Model:      "PowerEdge R750",
		Age:        "3-5",
		Condition:  "good",
	})
	assert.NoError(t, err)

	check.Equal(t, Request{
		DeviceType: DeviceServer,
		Brand:      "Dell",
		Model:      "PowerEdge R750",
		Age:        AgeThreeToFive,
		Condition:  ConditionGood,
	}, req)
}

func TestParseRequestReportsEveryField(t *testing.T) {
	_, err := ParseRequest(RawRequest{DeviceType: "phone", Age: "10+", Condition: "mint"})

	var verrs ValidationErrors
	assert.True(t, errors.As(err, &verrs))
	check.Equal(t, ValidationErrors{
		{Field: "deviceType", Message: "Device type must be laptop, desktop, server, or tablet"},
		{Field: "brand", Message: "Brand is required"},
		{Field: "model", Message: "Model is required"},
		{Field: "age", Message: "Age must be one of: 0-1, 1-2, 2-3, 3-5, 5+"},
		{Field: "condition", Message: "Condition must be excellent, good, fair, or poor"},
	}, verrs)
}

func TestParseRequestLengthLimits(t *testing.T) {
	base := RawRequest{DeviceType: "laptop", Brand: "Apple", Model: "MacBook Pro", Age: "0-1", Condition: "good"}

	atLimit := base
	atLimit.Brand = strings.Repeat("b", MaxBrandLength)
	atLimit.Model = strings.Repeat("m", MaxModelLength)
	_, err := ParseRequest(atLimit)
	check.NoError(t, err)

	tooLong := base
	tooLong.Brand = strings.Repeat("b", MaxBrandLength+1)
	tooLong.Model = strings.Repeat("m", MaxModelLength+1)
	_, err = ParseRequest(tooLong)

	var verrs ValidationErrors
	assert.True(t, errors.As(err, &verrs))
	check.Equal(t, ValidationErrors{
		{Field: "brand", Message: "Brand name too long"},
		{Field: "model", Message: "Model name too long"},
	}, verrs)
}

func TestParseRequestEnumsAreCaseSensitive(t *testing.T) {
	_, err := ParseRequest(RawRequest{DeviceType: "Laptop", Brand: "a", Model: "b", Age: "0-1", Condition: "GOOD"})

	var verrs ValidationErrors
	assert.True(t, errors.As(err, &verrs))
	check.Equal(t, 2, len(verrs))
	check.Equal(t, "deviceType", verrs[0].Field)
	check.Equal(t, "condition", verrs[1].Field)
}

func TestValidationErrorsMessage(t *testing.T) {
	err := ValidationErrors{{Field: "brand", Message: "Brand is required"}}
	check.Equal(t, "invalid trade-in request: brand: Brand is required", err.Error())
}
