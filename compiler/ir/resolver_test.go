package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/pgc/compiler/request"
)

func TestResolverResolve(t *testing.T) {
	c := sampleCatalog()
	r := NewResolver(&c)
	tests := []struct {
		schema, name string
		want         Type
	}{
		{CatalogSchema, "int4", TypeInt4},
		{CatalogSchema, "timestamptz", TypeTimestampTz},
		{CatalogSchema, "varbit", TypeBitVarying},
		{CatalogSchema, "_int4", MakeArray(TypeInt4, 1)},
		{CatalogSchema, "_nope", TypeAny},
		{CatalogSchema, "hstore", TypeAny},
		{"public", "users", SchemaModel("public", "users")},
		{"public", "mood", SchemaModel("public", "mood")},
		{"auth", "roles", SchemaModel("auth", "roles")},
		{"auth", "mood", TypeAny},
		{"missing", "users", TypeAny},
		{"", "int4", TypeAny},
	}
	for _, tt := range tests {
		t.Run(tt.schema+"."+tt.name, func(t *testing.T) {
			got := r.Resolve(tt.schema, tt.name)
			assert.True(t, Equal(tt.want, got), "got %s, want %s", got, tt.want)
			assert.True(t, Equal(got, r.Resolve(tt.schema, tt.name)), "resolution is deterministic")
		})
	}
}

func TestResolverNilCatalog(t *testing.T) {
	r := NewResolver(nil)
	assert.Equal(t, TypeAny, r.Resolve("public", "users"))
	assert.Equal(t, TypeBool, r.Resolve(CatalogSchema, "bool"))
}

func TestResolverRecordBeforeEnum(t *testing.T) {
	c := request.Catalog{Schemas: []request.Schema{{
		Name:    "public",
		Enums:   []request.Enum{{Name: "status"}},
		Records: []request.Record{{Name: "status", Kind: "table"}},
	}}}
	got := NewResolver(&c).Resolve("public", "status")
	assert.True(t, Equal(SchemaModel("public", "status"), got))
}

func TestResolverColumn(t *testing.T) {
	c := sampleCatalog()
	r := NewResolver(&c)
	tests := []struct {
		name   string
		column request.Column
		want   Type
	}{
		{
			name:   "scalar",
			column: column("id", "int4", false),
			want:   TypeInt4,
		},
		{
			name:   "nullable",
			column: column("bio", "text", true),
			want:   MakeNullable(TypeText),
		},
		{
			name: "array",
			column: request.Column{
				Name: "tags",
				Type: request.ColumnType{Name: "text", SchemaName: CatalogSchema, IsArray: true, ArrayDimensions: 2},
			},
			want: Array{Elem: TypeText, Dim: 2},
		},
		{
			name: "array without dimensions",
			column: request.Column{
				Name: "tags",
				Type: request.ColumnType{Name: "text", SchemaName: CatalogSchema, IsArray: true},
			},
			want: Array{Elem: TypeText, Dim: 1},
		},
		{
			name: "nullable array of enum",
			column: request.Column{
				Name:       "moods",
				Type:       request.ColumnType{Name: "mood", SchemaName: "public", IsArray: true, ArrayDimensions: 1},
				IsNullable: true,
			},
			want: Nullable{Elem: Array{Elem: SchemaModel("public", "mood"), Dim: 1}},
		},
		{
			name: "table backed enum",
			column: request.Column{
				Name:               "mood",
				Type:               request.ColumnType{Name: "text", SchemaName: CatalogSchema},
				IsForeignKey:       true,
				ForeignTableSchema: ptr("public"),
				ForeignTableName:   ptr("mood"),
				IsNullable:         true,
			},
			want: Nullable{Elem: SchemaModel("public", "mood")},
		},
		{
			name: "foreign key to a table",
			column: request.Column{
				Name:               "user_id",
				Type:               request.ColumnType{Name: "int4", SchemaName: CatalogSchema},
				IsForeignKey:       true,
				ForeignTableSchema: ptr("public"),
				ForeignTableName:   ptr("users"),
			},
			want: TypeInt4,
		},
		{
			name: "foreign key to a missing schema",
			column: request.Column{
				Name:               "user_id",
				Type:               request.ColumnType{Name: "int8", SchemaName: CatalogSchema},
				ForeignTableSchema: ptr("nope"),
				ForeignTableName:   ptr("mood"),
			},
			want: TypeInt8,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.ResolveColumn(tt.column)
			assert.True(t, Equal(tt.want, got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestResolverParameterAndOutput(t *testing.T) {
	c := sampleCatalog()
	r := NewResolver(&c)

	p := request.Parameter{Name: "id", Type: pgType("int4"), NotNull: true}
	assert.Equal(t, TypeInt4, r.ResolveParameter(p))
	p.NotNull = false
	assert.Equal(t, MakeNullable(TypeInt4), r.ResolveParameter(p))

	ids := request.Parameter{Name: "ids", Type: request.OutputType{Schema: CatalogSchema, Name: "int8", IsArray: true, ArrayDimensions: 1}}
	assert.Equal(t, MakeNullable(MakeArray(TypeInt8, 1)), r.ResolveParameter(ids))

	out := request.OutputColumn{Name: "bio", Type: pgType("text")}
	assert.Equal(t, TypeText, r.ResolveOutput(out))
	out.IsNullable = true
	assert.Equal(t, MakeNullable(TypeText), r.ResolveOutput(out))

	user := request.OutputColumn{Name: "u", Type: request.OutputType{Schema: "public", Name: "users"}}
	assert.True(t, Equal(SchemaModel("public", "users"), r.ResolveOutput(user)))
}

func TestResolverUnderscoreArrays(t *testing.T) {
	c := sampleCatalog()
	r := NewResolver(&c)
	tests := []struct {
		name string
		typ  request.OutputType
		want Type
	}{
		{
			name: "underscore name alone",
			typ:  request.OutputType{Schema: CatalogSchema, Name: "_int4"},
			want: Array{Elem: TypeInt4, Dim: 1},
		},
		{
			name: "underscore name declared as array",
			typ:  request.OutputType{Schema: CatalogSchema, Name: "_int4", IsArray: true, ArrayDimensions: 1},
			want: Array{Elem: TypeInt4, Dim: 1},
		},
		{
			name: "underscore name with two dimensions",
			typ:  request.OutputType{Schema: CatalogSchema, Name: "_text", IsArray: true, ArrayDimensions: 2},
			want: Array{Elem: TypeText, Dim: 2},
		},
		{
			name: "plain element declared as array",
			typ:  request.OutputType{Schema: CatalogSchema, Name: "int4", IsArray: true, ArrayDimensions: 1},
			want: Array{Elem: TypeInt4, Dim: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ResolveType(tt.typ))
		})
	}

	col := request.Column{
		Name: "scores",
		Type: request.ColumnType{Name: "_int4", SchemaName: CatalogSchema, IsArray: true, ArrayDimensions: 1},
	}
	assert.Equal(t, Array{Elem: TypeInt4, Dim: 1}, r.ResolveColumn(col))
}
