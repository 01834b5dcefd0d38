// Package ir builds the intermediate representation of a generation
// request: a canonical, catalog-agnostic type system, the per-schema model
// modules and the hierarchical query namespace tree.
package ir

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Type is a canonical type. The set of implementations is closed: Kind,
// Other, Nullable, Array and UserDefined.
//
// UserDefined holds a slice, so Type values must be compared with Equal or
// Compare and not with the == operator.
type Type interface {
	// String returns the display form of the type. ParseType is its
	// inverse.
	String() string
	isType()
}

type (
	// Other is a catalog type the resolver does not recognize.
	Other struct {
		Schema string
		Name   string
	}

	// Nullable wraps a type whose values may be NULL. Nullable types never
	// nest; use MakeNullable to construct one.
	Nullable struct {
		Elem Type
	}

	// Array is an array of Dim dimensions. Dim is at least 1 and Elem is
	// never itself an Array; use MakeArray to construct one.
	Array struct {
		Elem Type
		Dim  int
	}

	// UserDefined refers to a record or enum declared in the model tree, or
	// to a model synthesized for a query. ModulePath is the path of the
	// module that declares it.
	UserDefined struct {
		ModulePath []string
		Name       string
	}
)

func (Other) isType()       {}
func (Nullable) isType()    {}
func (Array) isType()       {}
func (UserDefined) isType() {}

// MakeNullable wraps t in Nullable unless it is already nullable.
func MakeNullable(t Type) Type {
	if _, ok := t.(Nullable); ok {
		return t
	}
	return Nullable{Elem: t}
}

// MakeArray wraps t in an Array of dim dimensions. A dimension below 1 is
// treated as 1, and wrapping an array adds to its dimension instead of
// nesting.
func MakeArray(t Type, dim int) Type {
	if dim < 1 {
		dim = 1
	}
	if a, ok := t.(Array); ok {
		return Array{Elem: a.Elem, Dim: a.Dim + dim}
	}
	return Array{Elem: t, Dim: dim}
}

// MakeUserDefined returns a UserDefined type. Empty path segments are
// dropped.
func MakeUserDefined(path []string, name string) UserDefined {
	mp := make([]string, 0, len(path))
	for _, p := range path {
		if p != "" {
			mp = append(mp, p)
		}
	}
	return UserDefined{ModulePath: mp, Name: name}
}

// Unwrap strips a Nullable wrapper, if any.
func Unwrap(t Type) Type {
	if n, ok := t.(Nullable); ok {
		return n.Elem
	}
	return t
}

// IsNullable reports whether t is a Nullable type.
func IsNullable(t Type) bool {
	_, ok := t.(Nullable)
	return ok
}

// rank orders the variants of Type.
func rank(t Type) int {
	switch t.(type) {
	case Kind:
		return 0
	case Other:
		return 1
	case Nullable:
		return 2
	case Array:
		return 3
	case UserDefined:
		return 4
	default:
		return 5
	}
}

// Compare returns an integer comparing two types. The order is total:
// types are ordered by variant, then by their content. A nil Type sorts
// first.
func Compare(a, b Type) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if c := cmp.Compare(rank(a), rank(b)); c != 0 {
		return c
	}
	switch a := a.(type) {
	case Kind:
		return cmp.Compare(a, b.(Kind))
	case Other:
		b := b.(Other)
		if c := strings.Compare(a.Schema, b.Schema); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	case Nullable:
		return Compare(a.Elem, b.(Nullable).Elem)
	case Array:
		b := b.(Array)
		if c := Compare(a.Elem, b.Elem); c != 0 {
			return c
		}
		return cmp.Compare(a.Dim, b.Dim)
	case UserDefined:
		b := b.(UserDefined)
		if c := slices.Compare(a.ModulePath, b.ModulePath); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	}
	return 0
}

// Equal reports whether two types are structurally equal.
func Equal(a, b Type) bool {
	return Compare(a, b) == 0
}

// String implements Type.
func (o Other) String() string {
	return "other(" + strconv.Quote(o.Schema) + ", " + strconv.Quote(o.Name) + ")"
}

// String implements Type.
func (n Nullable) String() string {
	return "nullable(" + display(n.Elem) + ")"
}

// String implements Type.
func (a Array) String() string {
	return "array(" + display(a.Elem) + ", " + strconv.Itoa(a.Dim) + ")"
}

// String implements Type.
func (u UserDefined) String() string {
	var b strings.Builder
	b.WriteString("user(")
	for i, p := range u.ModulePath {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(p))
	}
	b.WriteString("; ")
	b.WriteString(strconv.Quote(u.Name))
	b.WriteString(")")
	return b.String()
}

// Module returns the dotted module path.
func (u UserDefined) Module() string {
	return strings.Join(u.ModulePath, ".")
}

func display(t Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
