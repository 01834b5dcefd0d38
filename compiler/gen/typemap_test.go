package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/pgc/compiler/ir"
	"github.com/syssam/pgc/compiler/request"
)

func newService(t *testing.T, language, driver string, overrides map[string]request.TypeConfig) *TypeService {
	t.Helper()
	target, err := LookupTarget(language, driver)
	require.NoError(t, err)
	codegen := &request.Codegen{
		Language: language,
		Driver:   driver,
		Options:  map[string]any{PackageOption: "app"},
	}
	return NewTypeService(target.NewMapper(codegen), overrides)
}

var (
	publicModule = []string{ir.ModelsModule, "public"}
	authModule   = []string{ir.ModelsModule, "auth"}
	usersType    = ir.MakeUserDefined(publicModule, "users")
	moodType     = ir.MakeUserDefined(publicModule, "mood")
)

func TestMapperCoverage(t *testing.T) {
	for _, target := range Targets() {
		t.Run(target.String(), func(t *testing.T) {
			s := newService(t, target.Language, target.Driver, nil)
			for _, k := range ir.Kinds() {
				lt := s.Get(nil, k)
				assert.NotEmpty(t, lt.Annotation, "kind %s", k)
			}
		})
	}
}

func TestPythonTypes(t *testing.T) {
	s := newService(t, "python", "asyncpg", nil)
	tests := []struct {
		name       string
		path       []string
		typ        ir.Type
		annotation string
		imports    []string
	}{
		{"scalar", nil, ir.TypeInt4, "int", nil},
		{"import", nil, ir.TypeTimestampTz, "datetime.datetime", []string{"import datetime"}},
		{"nullable", nil, ir.MakeNullable(ir.TypeText), "str | None", nil},
		{"array", nil, ir.MakeArray(ir.TypeInt4, 2), "list[list[int]]", nil},
		{"nullable array", nil, ir.MakeNullable(ir.MakeArray(ir.TypeUUID, 1)), "list[uuid.UUID] | None", []string{"import uuid"}},
		{"array of nullable", nil, ir.MakeArray(ir.MakeNullable(ir.TypeInt4), 1), "list[int | None]", nil},
		{"other", nil, ir.Other{Schema: "ext", Name: "citext"}, "str", nil},
		{"model in same module", publicModule, usersType, "Users", nil},
		{"model in other module", authModule, usersType, "models.public.Users", []string{"from app import models"}},
		{"model from namespace", []string{"users"}, ir.MakeNullable(moodType), "models.public.Mood | None", []string{"from app import models"}},
		{"query model", []string{"users"}, ir.MakeUserDefined([]string{"users"}, "get_user_row"), "GetUserRow", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lt := s.Get(tt.path, tt.typ)
			assert.Equal(t, tt.annotation, lt.Annotation)
			assert.Equal(t, tt.imports, lt.Imports)
		})
	}
}

func TestPythonWithoutPackage(t *testing.T) {
	m := newAsyncpgMapper(&request.Codegen{})
	lt := NewTypeService(m, nil).Get(authModule, usersType)
	assert.Equal(t, "models.public.Users", lt.Annotation)
	assert.Equal(t, []string{"import models.public"}, lt.Imports)
}

func TestPsycopgFallsBackToAsyncpg(t *testing.T) {
	s := newService(t, "python", "psycopg", nil)
	assert.Equal(t, "str", s.Get(nil, ir.TypePoint).Annotation)
	assert.Equal(t, "psycopg.types.range.Range[int]", s.Get(nil, ir.TypeInt4Range).Annotation)
	assert.Equal(t, "int", s.Get(nil, ir.TypeInt8).Annotation)
}

func TestTypescriptTypes(t *testing.T) {
	s := newService(t, "typescript", "postgres", nil)
	tests := []struct {
		name       string
		path       []string
		typ        ir.Type
		annotation string
		typeName   string
	}{
		{"number", nil, ir.TypeInt4, "number", "number"},
		{"bigint", nil, ir.TypeInt8, "bigint", "bigint"},
		{"date", nil, ir.TypeTimestampTz, "Date", "Date"},
		{"fallback", nil, ir.TypeInet, "string", "string"},
		{"json", nil, ir.TypeJSONB, "any", ""},
		{"nullable", nil, ir.MakeNullable(ir.TypeBool), "boolean | null", "boolean"},
		{"array clears name", nil, ir.MakeArray(ir.TypeText, 2), "Array<Array<string>>", ""},
		{"model in same module", publicModule, moodType, "Mood", "Mood"},
		{"model in other module", []string{"users"}, usersType, "models.public.Users", "Users"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lt := s.Get(tt.path, tt.typ)
			assert.Equal(t, tt.annotation, lt.Annotation)
			assert.Equal(t, tt.typeName, lt.Name)
		})
	}
}

func TestTypeOverrides(t *testing.T) {
	overrides := map[string]request.TypeConfig{
		"pg_catalog.int8": {Annotation: "str"},
		"public.mood":     {Annotation: "app.Mood", Import: []string{"import app"}},
		"ext.citext":      {Annotation: "CIText"},
	}
	s := newService(t, "python", "asyncpg", overrides)
	tests := []struct {
		name       string
		typ        ir.Type
		annotation string
		imports    []string
	}{
		{"scalar", ir.TypeInt8, "str", nil},
		{"nested scalar", ir.MakeNullable(ir.MakeArray(ir.TypeInt8, 1)), "list[str] | None", nil},
		{"model", moodType, "app.Mood", []string{"import app"}},
		{"nullable model", ir.MakeNullable(moodType), "app.Mood | None", []string{"import app"}},
		{"other", ir.Other{Schema: "ext", Name: "citext"}, "CIText", nil},
		{"no override", ir.TypeInt4, "int", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lt := s.Get([]string{"users"}, tt.typ)
			assert.Equal(t, tt.annotation, lt.Annotation)
			assert.Equal(t, tt.imports, lt.Imports)
		})
	}

	t.Run("imports are copied", func(t *testing.T) {
		lt := s.Get(nil, moodType)
		lt.Imports[0] = "changed"
		assert.Equal(t, "import app", overrides["public.mood"].Import[0])
	})
}

func TestOverrideName(t *testing.T) {
	tests := []struct {
		typ  ir.Type
		name string
		ok   bool
	}{
		{ir.TypeInt4, "pg_catalog.int4", true},
		{ir.Other{Schema: "ext", Name: "citext"}, "ext.citext", true},
		{moodType, "public.mood", true},
		{ir.MakeUserDefined([]string{"users"}, "get_user_row"), "", false},
		{ir.MakeNullable(ir.TypeInt4), "", false},
		{ir.MakeArray(ir.TypeInt4, 1), "", false},
		{ir.TypeInvalid, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			name, ok := OverrideName(tt.typ)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.name, name)
		})
	}
}

func TestParser(t *testing.T) {
	tests := []struct {
		typ    ir.Type
		parser string
		parse  bool
	}{
		{ir.TypeText, "new StringParser()", false},
		{ir.TypeInt4, "new NumberParser()", false},
		{ir.TypeInt8, "new BigIntParser()", true},
		{ir.TypeSerial8, "new BigIntParser()", true},
		{ir.TypeBool, "new BooleanParser()", false},
		{ir.TypeDate, "new DateParser()", false},
		{ir.TypeBytea, "new BufferParser()", false},
		{ir.TypeJSONB, "new JsonParser()", false},
		{ir.MakeNullable(ir.TypeInt8), "new NullParser(new BigIntParser())", true},
		{ir.MakeArray(ir.TypeInt4, 1), "new ArrayParser(new NumberParser())", true},
		{ir.MakeArray(ir.TypeInt4, 3), "new ArrayParser(new NumberParser()).arrayOfThis().arrayOfThis()", true},
		{usersType, "parser.public.users()", true},
		{ir.MakeNullable(ir.MakeUserDefined(publicModule, "user_info")), "new NullParser(parser.public.userInfo())", true},
		{ir.Other{Schema: "ext", Name: "citext"}, "new StringParser()", false},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			assert.Equal(t, tt.parser, Parser(tt.typ))
			assert.Equal(t, tt.parse, RequiresParsing(tt.typ))
		})
	}
}
