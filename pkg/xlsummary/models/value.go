// Package models defines data structures for Summary sheet maintenance.
package models

import (
	"math"
	"strconv"
)

// Kind identifies which scalar a Value holds.
type Kind int

const (
	// KindUnknown marks an absent or unreadable value.
	KindUnknown Kind = iota
	// KindNumber marks a numeric value.
	KindNumber
	// KindText marks a string value.
	KindText
	// KindBool marks a boolean value.
	KindBool
)

// Value is an optional cell scalar. The zero Value is Unknown.
type Value struct {
	kind Kind
	num  float64
	text string
	flag bool
}

// Unknown returns the absent value.
func Unknown() Value {
	return Value{}
}

// Number returns a numeric value.
func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// Text returns a string value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// Kind reports the kind of scalar held.
func (v Value) Kind() Kind {
	return v.kind
}

// IsUnknown reports whether the value is absent.
func (v Value) IsUnknown() bool {
	return v.kind == KindUnknown
}

// Float returns the numeric payload and whether the value is a number.
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Str returns the text payload and whether the value is text.
func (v Value) Str() (string, bool) {
	return v.text, v.kind == KindText
}

// Boolean returns the boolean payload and whether the value is a bool.
func (v Value) Boolean() (bool, bool) {
	return v.flag, v.kind == KindBool
}

// Equal reports whether two values are the same scalar.
// Numbers compare numerically; a kind mismatch is never equal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == other.num
	case KindText:
		return v.text == other.text
	case KindBool:
		return v.flag == other.flag
	default:
		return true
	}
}

// Interface returns the payload as float64, string, bool or nil.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindText:
		return v.text
	case KindBool:
		return v.flag
	default:
		return nil
	}
}

// String renders the value for humans. Unknown renders as "-".
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindText:
		return v.text
	case KindBool:
		if v.flag {
			return "TRUE"
		}
		return "FALSE"
	default:
		return "-"
	}
}

// ParseValue converts a raw cell string into a Value.
// Empty strings are Unknown, numeric strings are numbers and everything
// else, NaN and Inf included, is text. Booleans come only from boolean cells.
func ParseValue(s string) Value {
	if s == "" {
		return Unknown()
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Number(float64(i))
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return Number(f)
	}
	return Text(s)
}
