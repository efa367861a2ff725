package docstore

import "time"

// Kind identifies the dynamic type carried by a Value.
type Kind int

const (
	// KindNull represents an explicit null or missing value.
	KindNull Kind = iota
	// KindString represents a text value.
	KindString
	// KindNumber represents a numeric value (stored as float64).
	KindNumber
	// KindBool represents a boolean value.
	KindBool
	// KindTime represents a timestamp value.
	KindTime
)

// Value is a tagged union over the types a document field can hold.
// Documents in the store have no fixed schema, so every field arrives
// as one of these shapes and consumers resolve them defensively.
type Value struct {
	Kind Kind
	Str  string
	Num  float64
	Bool bool
	Time time.Time
}

// Record is a single document: an opaque mapping of field name to value.
// Field names vary by producer and era (e.g., trackingId vs tracking_id),
// so reads go through resolver helpers rather than direct key access.
type Record map[string]Value

// String builds a string Value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Number builds a numeric Value.
func Number(f float64) Value { return Value{Kind: KindNumber, Num: f} }

// Boolean builds a boolean Value.
func Boolean(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Timestamp builds a timestamp Value.
func Timestamp(t time.Time) Value { return Value{Kind: KindTime, Time: t} }

// Null builds a null Value.
func Null() Value { return Value{Kind: KindNull} }

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindString:
		return v.Str == o.Str
	case KindNumber:
		return v.Num == o.Num
	case KindBool:
		return v.Bool == o.Bool
	case KindTime:
		return v.Time.Equal(o.Time)
	default:
		return true
	}
}

// Compare orders two values of the same kind: -1 if v < o, 0 if equal, 1 if v > o.
// Values of different kinds are ordered by kind so sorting stays deterministic.
func (v Value) Compare(o Value) int {
	if v.Kind != o.Kind {
		if v.Kind < o.Kind {
			return -1
		}
		return 1
	}
	switch v.Kind {
	case KindString:
		switch {
		case v.Str < o.Str:
			return -1
		case v.Str > o.Str:
			return 1
		}
	case KindNumber:
		switch {
		case v.Num < o.Num:
			return -1
		case v.Num > o.Num:
			return 1
		}
	case KindBool:
		switch {
		case !v.Bool && o.Bool:
			return -1
		case v.Bool && !o.Bool:
			return 1
		}
	case KindTime:
		switch {
		case v.Time.Before(o.Time):
			return -1
		case v.Time.After(o.Time):
			return 1
		}
	}
	return 0
}
