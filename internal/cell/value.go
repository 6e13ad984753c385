// Package cell holds playlist cell values and turns them into display text.
package cell

import (
	"strconv"
	"strings"

	"github.com/llehouerou/tracklist/internal/filetype"
)

// Type tags the dynamic type held by a Value.
type Type int

const (
	TypeInvalid Type = iota
	TypeInt
	TypeFloat
	TypeString
	TypeBool
	TypeFileType
)

// Value is a tagged cell value read from a row source.
// The zero Value is invalid.
type Value struct {
	typ Type
	i   int64
	f   float64
	s   string
}

// Int returns an integer value.
func Int(v int64) Value { return Value{typ: TypeInt, i: v} }

// Float returns a floating-point value.
func Float(v float64) Value { return Value{typ: TypeFloat, f: v} }

// String returns a string value.
func String(v string) Value { return Value{typ: TypeString, s: v} }

// Bool returns a boolean value.
func Bool(v bool) Value {
	if v {
		return Value{typ: TypeBool, i: 1}
	}
	return Value{typ: TypeBool}
}

// FileTypeOf returns a file type value.
func FileTypeOf(t filetype.Type) Value { return Value{typ: TypeFileType, i: int64(t)} }

// Type returns the tag of the value.
func (v Value) Type() Type { return v.typ }

// IsValid reports whether the value holds anything.
func (v Value) IsValid() bool { return v.typ != TypeInvalid }

// ToInt converts the value to an integer. Strings are parsed, floats are
// truncated. ok is false when no conversion exists.
func (v Value) ToInt() (n int64, ok bool) {
	switch v.typ {
	case TypeInt, TypeBool, TypeFileType:
		return v.i, true
	case TypeFloat:
		return int64(v.f), true
	case TypeString:
		n, err := strconv.ParseInt(strings.TrimSpace(v.s), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// ToFloat converts the value to a float.
func (v Value) ToFloat() (f float64, ok bool) {
	switch v.typ {
	case TypeInt, TypeBool, TypeFileType:
		return float64(v.i), true
	case TypeFloat:
		return v.f, true
	case TypeString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// String returns the natural string form of the value.
func (v Value) String() string {
	switch v.typ {
	case TypeInt, TypeFileType:
		return strconv.FormatInt(v.i, 10)
	case TypeFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case TypeString:
		return v.s
	case TypeBool:
		return strconv.FormatBool(v.i != 0)
	default:
		return ""
	}
}
