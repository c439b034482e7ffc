package holidays

import (
	"fmt"
	"strings"
)

// Type classifies a holiday.
type Type string

const (
	Public     Type = "public"
	Bank       Type = "bank"
	School     Type = "school"
	Optional   Type = "optional"
	Observance Type = "observance"
)

// typePriority is the order used to pick a type when two holidays collapse
// into one.
var typePriority = []Type{Public, Bank, School, Optional, Observance}

// Valid reports whether t is one of the recognized types.
func (t Type) Valid() bool {
	return t.rank() >= 0
}

func (t Type) rank() int {
	for i, p := range typePriority {
		if p == t {
			return i
		}
	}
	return -1
}

// ParseType resolves a type name case-insensitively.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
	return t, nil
}

// TypeSet is the set of holiday types a session accepts.
type TypeSet map[Type]struct{}

// AllTypes returns a set holding every recognized type.
func AllTypes() TypeSet {
	return NewTypeSet(typePriority...)
}

// NewTypeSet builds a set from types, ignoring unrecognized ones.
func NewTypeSet(types ...Type) TypeSet {
	set := make(TypeSet, len(types))
	for _, t := range types {
		if t.Valid() {
			set[t] = struct{}{}
		}
	}
	return set
}

// Has reports whether t is in the set.
func (s TypeSet) Has(t Type) bool {
	_, ok := s[t]
	return ok
}

// preferredType returns whichever of a and b comes first in typePriority.
func preferredType(a, b Type) Type {
	for _, t := range typePriority {
		if t == a || t == b {
			return t
		}
	}
	return b
}
