// Package registry holds the stable integer codes Discord assigns to option
// types, channel types and application command types.
//
// Every variant is declared with an explicit value and listed once in its
// table. A code, once published, never changes and is never reused.
package registry

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownName is returned by the Parse functions when a name has no variant.
var ErrUnknownName = errors.New("unknown variant name")

type entry[T ~uint8] struct {
	variant T
	name    string
}

// table is the single source of truth for one enumeration.
type table[T ~uint8] []entry[T]

func (tb table[T]) name(v T) (string, bool) {
	for _, e := range tb {
		if e.variant == v {
			return e.name, true
		}
	}
	return "", false
}

func (tb table[T]) fromCode(code uint8) (T, bool) {
	for _, e := range tb {
		if uint8(e.variant) == code {
			return e.variant, true
		}
	}
	var zero T
	return zero, false
}

func (tb table[T]) parse(kind, s string) (T, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, e := range tb {
		if e.name == key {
			return e.variant, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%s %q: %w", kind, s, ErrUnknownName)
}

func (tb table[T]) all() []T {
	out := make([]T, len(tb))
	for i, e := range tb {
		out[i] = e.variant
	}
	return out
}

func (tb table[T]) str(kind string, v T) string {
	if n, ok := tb.name(v); ok {
		return n
	}
	return fmt.Sprintf("%s(%d)", kind, uint8(v))
}
