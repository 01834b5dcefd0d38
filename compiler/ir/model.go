package ir

import (
	"slices"
	"strings"

	"github.com/syssam/pgc/compiler/request"
)

type (
	// ModelModule holds the models and enums of one schema.
	ModelModule struct {
		Name   string
		Models []*Model
		Enums  []request.Enum
	}

	// Model is a record of the catalog.
	Model struct {
		Name   string
		Module string
		Record request.Record
		Fields []ModelField
	}

	// ModelField is a column of a model.
	ModelField struct {
		Name    string
		Type    Type
		Default *string
	}
)

// Path returns the module path of the model module.
func (m *ModelModule) Path() []string {
	return []string{ModelsModule, m.Name}
}

// Type returns the type referencing the model.
func (m *Model) Type() UserDefined {
	return SchemaModel(m.Module, m.Name)
}

// UsedTypes returns the types referenced by the fields of the module's
// models.
func (m *ModelModule) UsedTypes() TypeSet {
	var s TypeSet
	for _, model := range m.Models {
		for _, f := range model.Fields {
			s = s.Add(f.Type)
		}
	}
	return s
}

// BuildModelModules builds one model module per schema of the catalog,
// sorted by schema name. Schemas sharing a name are merged.
func BuildModelModules(c *request.Catalog, r *Resolver) []*ModelModule {
	var modules []*ModelModule
	for _, s := range c.Schemas {
		mod := &ModelModule{Name: s.Name}
		if i := slices.IndexFunc(modules, func(m *ModelModule) bool { return m.Name == s.Name }); i >= 0 {
			mod = modules[i]
		} else {
			modules = append(modules, mod)
		}
		for _, rec := range s.Records {
			mod.Models = append(mod.Models, buildModel(s.Name, rec, r))
		}
		mod.Enums = append(mod.Enums, s.Enums...)
	}
	slices.SortStableFunc(modules, func(a, b *ModelModule) int {
		return strings.Compare(a.Name, b.Name)
	})
	return modules
}

func buildModel(schema string, rec request.Record, r *Resolver) *Model {
	m := &Model{
		Name:   rec.Name,
		Module: schema,
		Record: rec,
		Fields: make([]ModelField, 0, len(rec.Columns)),
	}
	for _, c := range rec.Columns {
		m.Fields = append(m.Fields, ModelField{
			Name:    c.Name,
			Type:    r.ResolveColumn(c),
			Default: c.Default,
		})
	}
	return m
}
