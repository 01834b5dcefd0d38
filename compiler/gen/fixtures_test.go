package gen

import (
	"github.com/syssam/pgc/compiler/ir"
	"github.com/syssam/pgc/compiler/request"
)

func ptr[T any](v T) *T { return &v }

func pgType(name string) request.OutputType {
	return request.OutputType{Schema: ir.CatalogSchema, Name: name}
}

func column(schema, name, typ string, nullable bool) request.Column {
	return request.Column{
		Name:       name,
		Type:       request.ColumnType{Name: typ, SchemaName: schema, Display: typ},
		IsNullable: nullable,
	}
}

// sampleRequest has two schemas and queries spread over the root, a leaf
// namespace and a nested one.
func sampleRequest(language, driver string) *request.Request {
	return &request.Request{
		Catalog: request.Catalog{
			Schemas: []request.Schema{
				{
					Name:  "public",
					Enums: []request.Enum{{Name: "mood", Values: []string{"sad", "ok", "happy"}}},
					Records: []request.Record{{
						Kind: "table",
						Name: "users",
						Columns: []request.Column{
							column(ir.CatalogSchema, "id", "int4", false),
							column(ir.CatalogSchema, "name", "text", false),
							column(ir.CatalogSchema, "bio", "text", true),
							column("public", "mood", "mood", true),
						},
					}},
				},
				{
					Name: "auth",
					Records: []request.Record{{
						Kind: "table",
						Name: "roles",
						Columns: []request.Column{
							column(ir.CatalogSchema, "name", "text", false),
							column("public", "owner", "users", false),
						},
					}},
				},
			},
		},
		Queries: []request.Query{
			{
				Name:       "get_user",
				Command:    request.CommandOne,
				Path:       "queries/users.sql",
				Query:      "SELECT id, bio FROM users WHERE id = $1",
				Parameters: []request.Parameter{{Name: "id", Type: pgType("int4"), NotNull: true}},
				Output: []request.OutputColumn{
					{Name: "id", Type: pgType("int4")},
					{Name: "bio", Type: pgType("text"), IsNullable: true},
				},
			},
			{
				Name:    "list_names",
				Command: request.CommandMany,
				Path:    "queries/users.sql",
				Query:   "SELECT name FROM users",
				Output:  []request.OutputColumn{{Name: "name", Type: pgType("text")}},
			},
			{
				Name:    "count_users",
				Command: request.CommandVal,
				Path:    "queries/users.sql",
				Query:   "SELECT count(*) FROM users",
				Output:  []request.OutputColumn{{Name: "count", Type: pgType("int8")}},
			},
			{
				Name:       "delete_user",
				Command:    request.CommandExec,
				Path:       "queries/users.sql",
				Query:      "DELETE FROM users WHERE id = $1",
				Parameters: []request.Parameter{{Name: "id", Type: pgType("int4"), NotNull: true}},
			},
			{
				Name:    "add_address",
				Command: request.CommandExec,
				Path:    "queries/addresses.sql",
				Query:   "INSERT INTO addresses (street, city) VALUES ($1, $2)",
				Parameters: []request.Parameter{
					{Name: "address.street", Type: pgType("text"), NotNull: true},
					{Name: "address.city", Type: pgType("text"), NotNull: true},
				},
			},
			{
				Name:        "ban_user",
				Command:     request.CommandExec,
				Path:        "queries/admin.sql",
				Query:       "UPDATE users SET mood = 'sad' WHERE id = $1",
				Annotations: map[string]request.Annotation{request.NamespaceAnnotation: {Value: ptr("admin.users")}},
				Parameters:  []request.Parameter{{Name: "id", Type: pgType("int4"), NotNull: true}},
			},
			{
				Name:    "ping",
				Command: request.CommandVal,
				Query:   "SELECT 1",
				Output:  []request.OutputColumn{{Name: "one", Type: pgType("int4")}},
			},
		},
		Config: request.Config{
			Version: "1",
			Codegen: request.Codegen{
				Out:      "gen",
				Language: language,
				Driver:   driver,
				Options:  map[string]any{PackageOption: "app"},
			},
		},
	}
}
