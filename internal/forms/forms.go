// Package forms provides coercion helpers for admin form submissions.
// Malformed or missing fields are never rejected; they coerce to documented
// defaults so a partially filled form always produces a storable row.
package forms

import (
	"net/url"
	"strconv"
)

// Checkbox reports whether a submitted checkbox value is checked. Browsers
// submit the literal "on" for checked boxes; anything else counts as false.
func Checkbox(v string) bool {
	return v == "on"
}

// IntPtr parses a base-10 integer, returning nil on absent or
// non-numeric input.
func IntPtr(v string) *int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

// FloatPtr parses a floating-point number, returning nil on absent or
// non-numeric input.
func FloatPtr(v string) *float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

// StringPtr returns nil for an empty string, otherwise a pointer to it
func StringPtr(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// Values collects every submitted value under key, dropping empty entries.
// Used for multi-value fields like bullet points and target titles.
func Values(form url.Values, key string) []string {
	values := make([]string, 0, len(form[key]))
	for _, v := range form[key] {
		if v != "" {
			values = append(values, v)
		}
	}
	return values
}
