package valuation

import (
	"strings"
	"unicode/utf8"
)

const (
	MaxBrandLength = 50
	MaxModelLength = 100
)

// DeviceType is the kind of hardware being traded in.
type DeviceType string

const (
	DeviceLaptop  DeviceType = "laptop"
	DeviceDesktop DeviceType = "desktop"
	DeviceServer  DeviceType = "server"
	DeviceTablet  DeviceType = "tablet"
)

var deviceTypes = []DeviceType{DeviceLaptop, DeviceDesktop, DeviceServer, DeviceTablet}

// ParseDeviceType accepts the lowercase device type names only.
func ParseDeviceType(s string) (DeviceType, bool) {
	for _, d := range deviceTypes {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

// AgeBucket is the age range of a device in years.
type AgeBucket string

const (
	AgeUnderOne    AgeBucket = "0-1"
	AgeOneToTwo    AgeBucket = "1-2"
	AgeTwoToThree  AgeBucket = "2-3"
	AgeThreeToFive AgeBucket = "3-5"
	AgeOverFive    AgeBucket = "5+"
)

var ageBuckets = []AgeBucket{AgeUnderOne, AgeOneToTwo, AgeTwoToThree, AgeThreeToFive, AgeOverFive}

func ParseAgeBucket(s string) (AgeBucket, bool) {
	for _, a := range ageBuckets {
		if string(a) == s {
			return a, true
		}
	}
	return "", false
}

// Condition is the physical condition grade of a trade-in device.
type Condition string

const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionPoor      Condition = "poor"
)

var conditions = []Condition{ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor}

func ParseCondition(s string) (Condition, bool) {
	for _, c := range conditions {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// RawRequest is a trade-in request as received on the wire.
type RawRequest struct {
	DeviceType string `json:"deviceType"`
	Brand      string `json:"brand"`
	Model      string `json:"model"`
	Age        string `json:"age"`
	Condition  string `json:"condition"`
}

// Request is a validated trade-in request. Build it with ParseRequest.
type Request struct {
	DeviceType DeviceType `json:"deviceType"`
	Brand      string     `json:"brand"`
	Model      string     `json:"model"`
	Age        AgeBucket  `json:"age"`
	Condition  Condition  `json:"condition"`
}

// ParseRequest validates every field of raw and returns all violations at
// once as ValidationErrors.
func ParseRequest(raw RawRequest) (Request, error) {
	var errs ValidationErrors
	var req Request

	if d, ok := ParseDeviceType(raw.DeviceType); ok {
		req.DeviceType = d
	} else {
		errs = append(errs, FieldError{Field: "deviceType", Message: "Device type must be laptop, desktop, server, or tablet"})
	}

	req.Brand = strings.TrimSpace(raw.Brand)
	switch {
	case req.Brand == "":
		errs = append(errs, FieldError{Field: "brand", Message: "Brand is required"})
	case utf8.RuneCountInString(req.Brand) > MaxBrandLength:
		errs = append(errs, FieldError{Field: "brand", Message: "Brand name too long"})
	}

	req.Model = strings.TrimSpace(raw.Model)
	switch {
	case req.Model == "":
		errs = append(errs, FieldError{Field: "model", Message: "Model is required"})
	case utf8.RuneCountInString(req.Model) > MaxModelLength:
		errs = append(errs, FieldError{Field: "model", Message: "Model name too long"})
	}

	if a, ok := ParseAgeBucket(raw.Age); ok {
		req.Age = a
	} else {
		errs = append(errs, FieldError{Field: "age", Message: "Age must be one of: 0-1, 1-2, 2-3, 3-5, 5+"})
	}

	if c, ok := ParseCondition(raw.Condition); ok {
		req.Condition = c
	} else {
		errs = append(errs, FieldError{Field: "condition", Message: "Condition must be excellent, good, fair, or poor"})
	}

	if len(errs) > 0 {
		return Request{}, errs
	}
	return req, nil
}
