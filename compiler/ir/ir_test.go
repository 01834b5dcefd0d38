package ir

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/pgc/compiler/request"
)

func TestBuildModelModules(t *testing.T) {
	c := sampleCatalog()
	c.Schemas = append(c.Schemas, request.Schema{
		Name:  "public",
		Enums: []request.Enum{{Name: "color", Values: []string{"red"}}},
	})
	modules := BuildModelModules(&c, NewResolver(&c))
	require.Len(t, modules, 2)
	assert.Equal(t, "auth", modules[0].Name)
	assert.Equal(t, "public", modules[1].Name)

	public := modules[1]
	assert.Equal(t, []string{"models", "public"}, public.Path())
	require.Len(t, public.Enums, 2)
	assert.Equal(t, "mood", public.Enums[0].Name)
	assert.Equal(t, "color", public.Enums[1].Name)
	require.Len(t, public.Models, 1)
	users := public.Models[0]
	assert.Equal(t, "users", users.Name)
	assert.Equal(t, "public", users.Module)
	assert.Equal(t, "table", users.Record.Kind)
	assert.True(t, Equal(SchemaModel("public", "users"), users.Type()))
	assert.Equal(t, []string{"int4", "nullable(text)"}, public.UsedTypes().Strings())
}

func TestModelFieldDefaults(t *testing.T) {
	c := request.Catalog{Schemas: []request.Schema{{
		Name: "public",
		Records: []request.Record{{Name: "t", Columns: []request.Column{
			{Name: "created", Type: request.ColumnType{SchemaName: CatalogSchema, Name: "timestamptz"}, Default: ptr("now()")},
			{Name: "ref", Type: request.ColumnType{SchemaName: "other", Name: "thing"}},
		}}},
	}}}
	modules := BuildModelModules(&c, NewResolver(&c))
	fields := modules[0].Models[0].Fields
	want := []ModelField{
		{Name: "created", Type: TypeTimestampTz, Default: ptr("now()")},
		{Name: "ref", Type: TypeAny},
	}
	if diff := cmp.Diff(want, fields, typeComparer); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildGetUser(t *testing.T) {
	req := &request.Request{
		Catalog: sampleCatalog(),
		Queries: []request.Query{{
			Name:       "get_user",
			Command:    request.CommandOne,
			Path:       "queries/users.sql",
			Query:      "SELECT id, bio FROM users WHERE id = $1",
			Parameters: []request.Parameter{{Name: "id", Type: pgType("int4"), NotNull: true}},
			Output: []request.OutputColumn{
				{Name: "id", Type: pgType("int4")},
				{Name: "bio", Type: pgType("text"), IsNullable: true},
			},
		}},
	}
	ir := Build(req)
	assert.Same(t, req, ir.Request)

	public := ir.Model("public")
	require.NotNil(t, public)
	assert.Nil(t, ir.Model("nope"))
	require.Len(t, public.Models, 1)
	want := []ModelField{{Name: "id", Type: TypeInt4}, {Name: "bio", Type: MakeNullable(TypeText)}}
	if diff := cmp.Diff(want, public.Models[0].Fields, typeComparer); diff != "" {
		t.Errorf("model fields mismatch (-want +got):\n%s", diff)
	}

	node := ir.Namespace.Lookup("users")
	require.NotNil(t, node)
	require.Len(t, node.Methods, 1)
	m := node.Methods[0]
	assert.Equal(t, "get_user", m.Query.Name)
	id, _ := m.Arguments.Get("id")
	assert.Equal(t, TypeInt4, id)
	require.NotNil(t, m.OutputModel)
	assert.Equal(t, "get_user_row", m.OutputModel.Type.Name)
	wantRow := []Field{{Name: "id", Type: TypeInt4}, {Name: "bio", Type: MakeNullable(TypeText)}}
	if diff := cmp.Diff(wantRow, m.OutputModel.Fields.All(), typeComparer); diff != "" {
		t.Errorf("row fields mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDottedParameters(t *testing.T) {
	ir := Build(&request.Request{
		Catalog: sampleCatalog(),
		Queries: []request.Query{{
			Name:    "add_address",
			Command: request.CommandExec,
			Path:    "addresses.sql",
			Parameters: []request.Parameter{
				{Name: "address.street", Type: pgType("text"), NotNull: true},
				{Name: "address.city", Type: pgType("text"), NotNull: true},
			},
		}},
	})
	m := ir.Namespace.Lookup("addresses").Methods[0]
	assert.Equal(t, 1, m.Arguments.Len())
	arg, ok := m.Arguments.Get("address")
	require.True(t, ok)
	assert.True(t, Equal(MakeUserDefined([]string{"addresses"}, "add_address_address"), arg))
	require.Len(t, m.InputModels, 1)
	want := []Field{{Name: "street", Type: TypeText}, {Name: "city", Type: TypeText}}
	if diff := cmp.Diff(want, m.InputModels[0].Fields.All(), typeComparer); diff != "" {
		t.Errorf("input model mismatch (-want +got):\n%s", diff)
	}
}

// TestBuildInvariants builds random requests and checks that no nested
// nullable, nested array or array without dimension is produced.
func TestBuildInvariants(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	for i := range 200 {
		req := randomRequest(rnd)
		ir := Build(req)
		for _, mod := range ir.Models {
			for _, model := range mod.Models {
				for _, f := range model.Fields {
					checkInvariants(t, f.Type)
				}
			}
		}
		require.NoError(t, ir.Namespace.Walk(func(n *Namespace) error {
			for _, m := range n.Methods {
				for _, typ := range m.UsedTypes() {
					checkInvariants(t, typ)
				}
				for _, f := range m.Columns.All() {
					checkInvariants(t, f.Type)
				}
			}
			return nil
		}), "request %d", i)
		again := Build(req)
		assert.Equal(t, len(ir.Models), len(again.Models))
	}
}

func checkInvariants(t *testing.T, typ Type) {
	t.Helper()
	switch typ := typ.(type) {
	case Nullable:
		_, nested := typ.Elem.(Nullable)
		assert.False(t, nested, "nested nullable %s", typ)
		checkInvariants(t, typ.Elem)
	case Array:
		assert.GreaterOrEqual(t, typ.Dim, 1, "array dimension %s", typ)
		_, nested := typ.Elem.(Array)
		assert.False(t, nested, "nested array %s", typ)
		checkInvariants(t, typ.Elem)
	case nil:
		t.Error("nil type")
	}
}

func randomRequest(rnd *rand.Rand) *request.Request {
	names := []string{"int4", "text", "_int8", "bool", "users", "mood", "nope", "jsonb"}
	schemas := []string{CatalogSchema, "public", "missing"}
	rawType := func() (string, string) {
		return schemas[rnd.IntN(len(schemas))], names[rnd.IntN(len(names))]
	}
	c := sampleCatalog()
	for i := range rnd.IntN(4) {
		var cols []request.Column
		for j := range rnd.IntN(6) {
			schema, name := rawType()
			col := request.Column{
				Name:       fmt.Sprintf("c%d", j),
				Type:       request.ColumnType{SchemaName: schema, Name: name, IsArray: rnd.IntN(3) == 0, ArrayDimensions: rnd.IntN(4) - 1},
				IsNullable: rnd.IntN(2) == 0,
			}
			if rnd.IntN(4) == 0 {
				col.ForeignTableSchema, col.ForeignTableName = ptr("public"), ptr("mood")
			}
			cols = append(cols, col)
		}
		c.Schemas[0].Records = append(c.Schemas[0].Records, request.Record{Name: fmt.Sprintf("t%d", i), Columns: cols})
	}
	req := &request.Request{Catalog: c}
	commands := []string{request.CommandOne, request.CommandMany, request.CommandVal, request.CommandExec}
	for i := range rnd.IntN(8) {
		q := request.Query{
			Name:    fmt.Sprintf("q%d", i),
			Command: commands[rnd.IntN(len(commands))],
			Path:    fmt.Sprintf("dir/f%d.sql", rnd.IntN(3)),
		}
		for j := range rnd.IntN(5) {
			schema, name := rawType()
			pname := fmt.Sprintf("p%d", j)
			if rnd.IntN(2) == 0 {
				pname = fmt.Sprintf("r%d.%s", rnd.IntN(2), pname)
			}
			q.Parameters = append(q.Parameters, request.Parameter{
				Name:    pname,
				Type:    request.OutputType{Schema: schema, Name: name, IsArray: rnd.IntN(3) == 0, ArrayDimensions: rnd.IntN(3)},
				NotNull: rnd.IntN(2) == 0,
			})
		}
		for j := range rnd.IntN(4) {
			schema, name := rawType()
			q.Output = append(q.Output, request.OutputColumn{
				Name:       fmt.Sprintf("o%d", j),
				Type:       request.OutputType{Schema: schema, Name: name, IsArray: rnd.IntN(3) == 0, ArrayDimensions: rnd.IntN(3)},
				IsNullable: rnd.IntN(2) == 0,
			})
		}
		req.Queries = append(req.Queries, q)
	}
	return req
}
