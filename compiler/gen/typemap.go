package gen

import (
	"slices"

	"github.com/syssam/pgc/compiler/ir"
	"github.com/syssam/pgc/compiler/request"
)

// LanguageType is the projection of a canonical type onto a target
// language.
type LanguageType struct {
	// Name is the declared name of the type, if it has one.
	Name string
	// Annotation is the spelling of the type in a declaration.
	Annotation string
	// Imports are the statements needed to use the annotation.
	Imports []string
	// Module is the dotted path of the module declaring the type.
	Module string
}

// Mapper maps the leaves of the canonical type system onto a target
// language and spells its nullable and array wrappers. The recursion over
// wrappers is done by TypeService.
type Mapper interface {
	// Scalar maps a pg_catalog kind. It must handle every kind.
	Scalar(ir.Kind) LanguageType
	// Other maps a type unknown to the resolver.
	Other(ir.Other) LanguageType
	// UserDefined maps a model reference seen from the module at path.
	UserDefined(path []string, t ir.UserDefined) LanguageType
	// Nullable returns the nullable spelling of an annotation.
	Nullable(annotation string) string
	// Array returns the annotation of a one dimensional array of elements.
	Array(annotation string) string
}

// TypeService resolves canonical types into language types with a Mapper.
// Type overrides from the codegen configuration take precedence over the
// mapper at every level of the recursion. A TypeService is read-only once
// created.
type TypeService struct {
	mapper    Mapper
	overrides map[string]request.TypeConfig
}

// NewTypeService returns a type service. overrides is keyed by the
// catalog-qualified type name ("pg_catalog.int8", "public.mood").
func NewTypeService(m Mapper, overrides map[string]request.TypeConfig) *TypeService {
	return &TypeService{mapper: m, overrides: overrides}
}

// Get returns the language type of t as seen from the module at path.
func (s *TypeService) Get(path []string, t ir.Type) LanguageType {
	if lt, ok := s.override(t); ok {
		return lt
	}
	switch t := t.(type) {
	case ir.Nullable:
		lt := s.Get(path, t.Elem)
		lt.Annotation = s.mapper.Nullable(lt.Annotation)
		return lt
	case ir.Array:
		lt := s.Get(path, t.Elem)
		for range t.Dim {
			lt.Annotation = s.mapper.Array(lt.Annotation)
		}
		lt.Name = ""
		return lt
	case ir.UserDefined:
		return s.mapper.UserDefined(path, t)
	case ir.Other:
		return s.mapper.Other(t)
	case ir.Kind:
		return s.mapper.Scalar(t)
	default:
		return s.mapper.Scalar(ir.TypeAny)
	}
}

func (s *TypeService) override(t ir.Type) (LanguageType, bool) {
	if len(s.overrides) == 0 {
		return LanguageType{}, false
	}
	name, ok := OverrideName(t)
	if !ok {
		return LanguageType{}, false
	}
	tc, ok := s.overrides[name]
	if !ok {
		return LanguageType{}, false
	}
	return LanguageType{
		Annotation: tc.Annotation,
		Imports:    slices.Clone(tc.Import),
	}, true
}

// OverrideName returns the catalog-qualified name a type override is keyed
// by. Wrappers and models synthesized for queries have no such name.
func OverrideName(t ir.Type) (string, bool) {
	switch t := t.(type) {
	case ir.Kind:
		if !t.Valid() {
			return "", false
		}
		return ir.CatalogSchema + "." + t.String(), true
	case ir.Other:
		return t.Schema + "." + t.Name, true
	case ir.UserDefined:
		if len(t.ModulePath) == 2 && t.ModulePath[0] == ir.ModelsModule {
			return t.ModulePath[1] + "." + t.Name, true
		}
	}
	return "", false
}

// same reports if a module path equals the current module path.
func same(path []string, module []string) bool {
	return slices.Equal(path, module)
}
