package models

import (
	"fmt"
	"strconv"
)

// ChoiceKind tells which payload a ChoiceValue holds.
type ChoiceKind uint8

const (
	ChoiceUnset ChoiceKind = iota
	ChoiceString
	ChoiceInteger
	ChoiceFloat
)

func (k ChoiceKind) String() string {
	switch k {
	case ChoiceString:
		return "string"
	case ChoiceInteger:
		return "integer"
	case ChoiceFloat:
		return "float"
	default:
		return "unset"
	}
}

// ChoiceValue holds exactly one of a string, a 32-bit integer or a float.
// The zero value holds nothing and never validates.
type ChoiceValue struct {
	kind ChoiceKind
	s    string
	i    int32
	f    float64
}

// StringValue returns a string choice value.
func StringValue(s string) ChoiceValue { return ChoiceValue{kind: ChoiceString, s: s} }

// IntValue returns an integer choice value.
func IntValue(i int32) ChoiceValue { return ChoiceValue{kind: ChoiceInteger, i: i} }

// FloatValue returns a floating point choice value.
func FloatValue(f float64) ChoiceValue { return ChoiceValue{kind: ChoiceFloat, f: f} }

// Kind returns which payload v holds.
func (v ChoiceValue) Kind() ChoiceKind { return v.kind }

// Str returns the string payload and whether v holds one.
func (v ChoiceValue) Str() (string, bool) { return v.s, v.kind == ChoiceString }

// Int returns the integer payload and whether v holds one.
func (v ChoiceValue) Int() (int32, bool) { return v.i, v.kind == ChoiceInteger }

// Float returns the float payload and whether v holds one.
func (v ChoiceValue) Float() (float64, bool) { return v.f, v.kind == ChoiceFloat }

// Any returns the payload as a plain Go value, or nil when unset.
func (v ChoiceValue) Any() any {
	switch v.kind {
	case ChoiceString:
		return v.s
	case ChoiceInteger:
		return v.i
	case ChoiceFloat:
		return v.f
	default:
		return nil
	}
}

func (v ChoiceValue) String() string {
	switch v.kind {
	case ChoiceString:
		return strconv.Quote(v.s)
	case ChoiceInteger:
		return strconv.FormatInt(int64(v.i), 10)
	case ChoiceFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return fmt.Sprintf("<%s>", v.kind)
	}
}

// Choice is one predefined value a user can pick for an option.
type Choice struct {
	// 1-100 characters.
	Name              string
	NameLocalizations Localizations
	Value             ChoiceValue
}
