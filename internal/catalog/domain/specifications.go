package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// SpecificationsNotAvailable is shown for products without usable
// specifications.
const SpecificationsNotAvailable = "Not available"

// Spec is one named hardware attribute.
type Spec struct {
	Key   string
	Value string
}

// Specs is an ordered attribute list, in the order the keys were stored.
type Specs []Spec

// String renders the list as "key: value, key: value".
func (s Specs) String() string {
	if len(s) == 0 {
		return SpecificationsNotAvailable
	}
	parts := make([]string, len(s))
	for i, spec := range s {
		parts[i] = spec.Key + ": " + spec.Value
	}
	return strings.Join(parts, ", ")
}

// IsNullJSON reports whether raw is the JSON literal null.
func IsNullJSON(raw []byte) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

// ParseSpecifications reads a JSON object keeping its key order. ok is false
// when raw is empty, malformed, or not an object.
func ParseSpecifications(raw []byte) (specs Specs, ok bool) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, false
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, false
	}
	if d, isDelim := tok.(json.Delim); !isDelim || d != '{' {
		return nil, false
	}

	specs = Specs{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, isString := keyTok.(string)
		if !isString {
			return nil, false
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, false
		}
		specs = append(specs, Spec{Key: key, Value: formatSpecValue(value)})
	}

	if _, err := dec.Token(); err != nil {
		return nil, false
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}
	return specs, true
}

// FormatSpecifications is the display form used by product comparisons.
func FormatSpecifications(raw []byte) string {
	specs, ok := ParseSpecifications(raw)
	if !ok {
		return SpecificationsNotAvailable
	}
	return specs.String()
}

func formatSpecValue(raw json.RawMessage) string {
	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return string(raw)
	}

	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return fmt.Sprintf("%t", val)
	case nil:
		return "null"
	case []any:
		items := make([]string, len(val))
		for i, item := range val {
			b, _ := json.Marshal(item)
			items[i] = formatSpecValue(b)
		}
		return strings.Join(items, ",")
	default:
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return string(raw)
		}
		return buf.String()
	}
}
