package scraper

import (
	"math"
	"strconv"
	"strings"
)

// Document is a decoded JSON object from one admin endpoint.
type Document map[string]any

// Section returns the nested object stored under key.
// ok is false when the key is missing or does not hold an object.
func (d Document) Section(key string) (Document, bool) {
	v, ok := d[key]
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return Document(m), true
}

// Number returns the numeric value stored under key.
// JSON numbers are returned as is, booleans map to 1/0 and numeric strings are
// parsed. Anything else reports ok=false.
func (d Document) Number(key string) (float64, bool) {
	v, ok := d[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// NumberOr is Number with a fallback for missing or non-numeric values.
func (d Document) NumberOr(key string, fallback float64) float64 {
	if v, ok := d.Number(key); ok {
		return v
	}
	return fallback
}

// NumberOrNaN returns the value under key, or NaN when it is unknown.
func (d Document) NumberOrNaN(key string) float64 {
	return d.NumberOr(key, math.NaN())
}

// Label returns the value under key formatted for use as a label value.
// Strings are returned as is, numbers and booleans are formatted, anything
// else (missing, null, objects, arrays) yields "".
func (d Document) Label(key string) string {
	switch v := d[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// String returns the string stored under key.
func (d Document) String(key string) (string, bool) {
	v, ok := d[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
