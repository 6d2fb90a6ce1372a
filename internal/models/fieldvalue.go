package models

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// FieldKind discriminates the variants of a FieldValue.
type FieldKind int

const (
	KindAbsent FieldKind = iota
	KindString
	KindNumber
	KindDate
)

// FieldValue is a tagged union over the value shapes an extracted field can
// take: a free string, a decimal number, a calendar date (ISO YYYY-MM-DD), or
// absent. Consumers switch on Kind instead of reflecting on interface types.
type FieldValue struct {
	Kind   FieldKind
	Str    string
	Num    decimal.Decimal
	Date   string
}

// StringValue creates a string-kinded field value.
func StringValue(s string) FieldValue {
	return FieldValue{Kind: KindString, Str: s}
}

// NumberValue creates a number-kinded field value.
func NumberValue(d decimal.Decimal) FieldValue {
	return FieldValue{Kind: KindNumber, Num: d}
}

// DateValue creates a date-kinded field value holding an ISO date string.
func DateValue(iso string) FieldValue {
	return FieldValue{Kind: KindDate, Date: iso}
}

// IsAbsent reports whether the value carries no data.
func (v FieldValue) IsAbsent() bool {
	return v.Kind == KindAbsent
}

// Display renders the value for human output (highlights, logs).
func (v FieldValue) Display() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return v.Num.String()
	case KindDate:
		return v.Date
	default:
		return ""
	}
}

// MarshalJSON emits the native JSON shape for each variant: strings and dates
// as JSON strings, numbers as bare numerals, absent as null.
func (v FieldValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindString:
		return json.Marshal(v.Str)
	case KindNumber:
		return []byte(v.Num.String()), nil
	case KindDate:
		return json.Marshal(v.Date)
	case KindAbsent:
		return []byte("null"), nil
	default:
		return nil, fmt.Errorf("unknown field kind %d", v.Kind)
	}
}

// FieldMap maps field names (the fixed per-category vocabulary) to values.
// A field that was not extracted is missing from the map, never a zero value.
type FieldMap map[string]FieldValue

// Has reports whether the named field is present and not absent.
func (m FieldMap) Has(name string) bool {
	v, ok := m[name]
	return ok && !v.IsAbsent()
}

// Number returns the decimal value of a number-kinded field.
func (m FieldMap) Number(name string) (decimal.Decimal, bool) {
	v, ok := m[name]
	if !ok || v.Kind != KindNumber {
		return decimal.Zero, false
	}
	return v.Num, true
}

// String returns the string value of a string-kinded field.
func (m FieldMap) String(name string) (string, bool) {
	v, ok := m[name]
	if !ok || v.Kind != KindString {
		return "", false
	}
	return v.Str, true
}
