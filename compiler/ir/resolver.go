package ir

import (
	"strings"

	"github.com/syssam/pgc/compiler/request"
)

// ModelsModule is the root module of the generated models.
const ModelsModule = "models"

// Resolver resolves catalog type references into canonical types. It
// never fails: references it cannot resolve degrade to TypeAny.
type Resolver struct {
	catalog *request.Catalog
}

// NewResolver returns a resolver over the given catalog. The catalog must
// not be modified while the resolver is in use.
func NewResolver(c *request.Catalog) *Resolver {
	return &Resolver{catalog: c}
}

// Resolve returns the canonical type of the schema-qualified type name.
func (r *Resolver) Resolve(schema, name string) Type {
	if schema == CatalogSchema {
		return r.builtin(name)
	}
	s := r.schema(schema)
	if s == nil {
		return TypeAny
	}
	if t, ok := r.record(s, name); ok {
		return t
	}
	if t, ok := r.enum(s, name); ok {
		return t
	}
	return TypeAny
}

// builtin resolves a pg_catalog type name. Element types of catalog
// arrays are named with a leading underscore, as in "_int4".
func (r *Resolver) builtin(name string) Type {
	if k, ok := LookupBuiltin(name); ok {
		return k
	}
	if elem, ok := strings.CutPrefix(name, "_"); ok {
		if k, ok := LookupBuiltin(elem); ok {
			return MakeArray(k, 1)
		}
	}
	return TypeAny
}

// resolveElem resolves the element type of a reference declared as an
// array. The underscore spelling of a catalog element already denotes the
// declared array, so only its element is kept.
func (r *Resolver) resolveElem(schema, name string) Type {
	if schema == CatalogSchema {
		if elem, ok := strings.CutPrefix(name, "_"); ok {
			if _, known := LookupBuiltin(name); !known {
				name = elem
			}
		}
	}
	return r.Resolve(schema, name)
}

// ResolveColumn returns the type of a record column. A column referencing
// a table that is registered as an enum resolves to the enum. Array
// wrapping is applied before nullability.
func (r *Resolver) ResolveColumn(c request.Column) Type {
	var t Type
	if c.Type.IsArray {
		t = r.resolveElem(c.Type.SchemaName, c.Type.Name)
	} else {
		t = r.Resolve(c.Type.SchemaName, c.Type.Name)
	}
	if e, ok := r.tableBackedEnum(c); ok {
		t = e
	}
	if c.Type.IsArray {
		t = MakeArray(t, c.Type.ArrayDimensions)
	}
	if c.IsNullable {
		t = MakeNullable(t)
	}
	return t
}

// ResolveOutput returns the type of a query output column.
func (r *Resolver) ResolveOutput(c request.OutputColumn) Type {
	t := r.ResolveType(c.Type)
	if c.IsNullable {
		t = MakeNullable(t)
	}
	return t
}

// ResolveParameter returns the type of a query parameter. Parameters that
// are not declared NOT NULL are nullable.
func (r *Resolver) ResolveParameter(p request.Parameter) Type {
	t := r.ResolveType(p.Type)
	if !p.NotNull {
		t = MakeNullable(t)
	}
	return t
}

// ResolveType resolves a raw parameter or output type reference.
func (r *Resolver) ResolveType(ot request.OutputType) Type {
	if ot.IsArray {
		return MakeArray(r.resolveElem(ot.Schema, ot.Name), ot.ArrayDimensions)
	}
	return r.Resolve(ot.Schema, ot.Name)
}

func (r *Resolver) tableBackedEnum(c request.Column) (Type, bool) {
	if c.ForeignTableSchema == nil || c.ForeignTableName == nil {
		return nil, false
	}
	s := r.schema(*c.ForeignTableSchema)
	if s == nil {
		return nil, false
	}
	return r.enum(s, *c.ForeignTableName)
}

func (r *Resolver) schema(name string) *request.Schema {
	if r.catalog == nil {
		return nil
	}
	for i := range r.catalog.Schemas {
		if r.catalog.Schemas[i].Name == name {
			return &r.catalog.Schemas[i]
		}
	}
	return nil
}

func (r *Resolver) record(s *request.Schema, name string) (Type, bool) {
	for _, rec := range s.Records {
		if rec.Name == name {
			return SchemaModel(s.Name, name), true
		}
	}
	return nil, false
}

func (r *Resolver) enum(s *request.Schema, name string) (Type, bool) {
	for _, e := range s.Enums {
		if e.Name == name {
			return SchemaModel(s.Name, name), true
		}
	}
	return nil, false
}

// SchemaModel returns the type of a record or enum declared in the model
// module of the given schema.
func SchemaModel(schema, name string) UserDefined {
	return UserDefined{ModulePath: []string{ModelsModule, schema}, Name: name}
}
