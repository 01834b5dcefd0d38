package ir

import "github.com/syssam/pgc/compiler/request"

func ptr[T any](v T) *T { return &v }

func pgType(name string) request.OutputType {
	return request.OutputType{Schema: CatalogSchema, Name: name}
}

func column(name, typ string, nullable bool) request.Column {
	return request.Column{
		Name:       name,
		Type:       request.ColumnType{Name: typ, SchemaName: CatalogSchema, Display: typ},
		IsNullable: nullable,
	}
}

// sampleCatalog has a "public" schema with a "mood" enum and a "users"
// table, and an "auth" schema with a "roles" table.
func sampleCatalog() request.Catalog {
	return request.Catalog{
		Schemas: []request.Schema{
			{
				Name:  "public",
				Enums: []request.Enum{{Name: "mood", Values: []string{"sad", "ok", "happy"}}},
				Records: []request.Record{{
					Kind: "table",
					Name: "users",
					Columns: []request.Column{
						column("id", "int4", false),
						column("bio", "text", true),
					},
				}},
			},
			{
				Name: "auth",
				Records: []request.Record{{
					Kind:    "table",
					Name:    "roles",
					Columns: []request.Column{column("name", "text", false)},
				}},
			},
		},
	}
}
