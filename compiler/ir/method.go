package ir

import (
	"slices"
	"strings"

	"github.com/syssam/pgc/compiler/request"
)

type (
	// Method describes the generated data-access method of a query.
	Method struct {
		Query request.Query
		// Arguments of the method in parameter order. Dotted parameters
		// are grouped into a single argument typed by an input model.
		Arguments   Fields
		InputModels []*MethodModel
		// OutputType is nil for exec queries and queries without output.
		OutputType Type
		// OutputModel is set when the query returns two or more columns.
		OutputModel *MethodModel
		// Columns are the resolved output columns.
		Columns Fields
	}

	// MethodModel is a composite type synthesized for a query.
	MethodModel struct {
		Record string
		Type   UserDefined
		Fields Fields
	}
)

// UsedTypes returns the types referenced by the method.
func (m *Method) UsedTypes() TypeSet {
	var s TypeSet
	for _, f := range m.Arguments.All() {
		s = s.Add(f.Type)
	}
	for _, im := range m.InputModels {
		for _, f := range im.Fields.All() {
			s = s.Add(f.Type)
		}
	}
	if m.OutputModel != nil {
		for _, f := range m.OutputModel.Fields.All() {
			s = s.Add(f.Type)
		}
	}
	if m.OutputType != nil {
		s = s.Add(m.OutputType)
	}
	return s
}

// ReturnsRow reports if the method returns a synthesized row model.
func (m *Method) ReturnsRow() bool { return m.OutputModel != nil }

// MethodBuilder builds methods from queries. Its state is reset on every
// call to Build.
type MethodBuilder struct {
	resolver    *Resolver
	arguments   Fields
	inputModels map[string]*MethodModel
}

// NewMethodBuilder returns a builder resolving types with r.
func NewMethodBuilder(r *Resolver) *MethodBuilder {
	return &MethodBuilder{resolver: r}
}

// Build returns the method of the given query.
func (b *MethodBuilder) Build(q request.Query) *Method {
	b.reset()
	path := namespacePath(q.Namespace())
	for _, p := range q.Parameters {
		t := b.resolver.ResolveParameter(p)
		if record, field, ok := strings.Cut(p.Name, "."); ok {
			b.inputField(path, q.Name, record, field, t)
			continue
		}
		b.arguments.Set(p.Name, t)
	}
	m := &Method{
		Query:     q,
		Arguments: b.arguments,
	}
	for _, im := range b.inputModels {
		m.InputModels = append(m.InputModels, im)
	}
	slices.SortFunc(m.InputModels, func(a, b *MethodModel) int {
		return strings.Compare(a.Record, b.Record)
	})
	for _, c := range q.Output {
		m.Columns.Set(c.Name, b.resolver.ResolveOutput(c))
	}
	if q.Command == request.CommandExec {
		return m
	}
	switch len(q.Output) {
	case 0:
	case 1:
		m.OutputType = m.Columns.All()[0].Type
	default:
		row := MakeUserDefined(path, q.Name+"_row")
		m.OutputType = row
		m.OutputModel = &MethodModel{Type: row}
		for _, c := range q.Output {
			m.OutputModel.Fields.Set(c.Name, b.resolver.ResolveOutput(c))
		}
	}
	return m
}

func (b *MethodBuilder) reset() {
	b.arguments = Fields{}
	b.inputModels = make(map[string]*MethodModel)
}

// inputField adds a field to the input model of record. The first field
// of a record declares the model and its argument.
func (b *MethodBuilder) inputField(path []string, query, record, field string, t Type) {
	im, ok := b.inputModels[record]
	if !ok {
		im = &MethodModel{
			Record: record,
			Type:   MakeUserDefined(path, query+"_"+record),
		}
		b.inputModels[record] = im
	}
	im.Fields.Set(field, t)
	b.arguments.Set(record, im.Type)
}

// namespacePath splits a dotted namespace into its segments, dropping
// empty ones.
func namespacePath(ns string) []string {
	var path []string
	for _, seg := range strings.Split(ns, ".") {
		if seg != "" {
			path = append(path, seg)
		}
	}
	return path
}
