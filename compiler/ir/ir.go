package ir

import "github.com/syssam/pgc/compiler/request"

// IR is the intermediate representation of a request.
type IR struct {
	Request   *request.Request
	Models    []*ModelModule
	Namespace *Namespace
}

// Build builds the IR of a request. It never fails: types that cannot be
// resolved degrade to TypeAny.
func Build(req *request.Request) *IR {
	r := NewResolver(&req.Catalog)
	return &IR{
		Request:   req,
		Models:    BuildModelModules(&req.Catalog, r),
		Namespace: BuildNamespace(req.Queries, NewMethodBuilder(r)),
	}
}

// Model returns the model module of the given schema, or nil.
func (ir *IR) Model(schema string) *ModelModule {
	for _, m := range ir.Models {
		if m.Name == schema {
			return m
		}
	}
	return nil
}
