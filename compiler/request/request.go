// Package request defines the input boundary of the generator: the catalog
// description, the analyzed queries and the codegen configuration, together
// with the codecs used to decode them from a host payload.
package request

import "strings"

// The following types mirror the payload produced by the catalog and query
// analysis step. They are read-only for the duration of a build.
type (
	// Request is a single generation request.
	Request struct {
		Catalog Catalog `json:"catalog" yaml:"catalog" msgpack:"catalog"`
		Queries []Query `json:"queries" yaml:"queries" msgpack:"queries"`
		Config  Config  `json:"config" yaml:"config" msgpack:"config"`
	}

	// Catalog holds every schema visible to the queries.
	Catalog struct {
		Schemas []Schema `json:"schemas" yaml:"schemas" msgpack:"schemas"`
	}

	// Schema is a SQL namespace with its enums and records (tables, views
	// and composite types).
	Schema struct {
		Name    string   `json:"name" yaml:"name" msgpack:"name"`
		Enums   []Enum   `json:"enums" yaml:"enums" msgpack:"enums"`
		Records []Record `json:"records" yaml:"records" msgpack:"records"`
	}

	// Enum is a catalog enum type.
	Enum struct {
		Name   string   `json:"name" yaml:"name" msgpack:"name"`
		Values []string `json:"values" yaml:"values" msgpack:"values"`
	}

	// Record is a table, view or composite type.
	Record struct {
		// Kind is the relation kind as reported by the catalog
		// ("table", "view", "composite", ...).
		Kind    string   `json:"kind" yaml:"kind" msgpack:"kind"`
		Name    string   `json:"name" yaml:"name" msgpack:"name"`
		Columns []Column `json:"columns" yaml:"columns" msgpack:"columns"`
	}

	// Column of a record.
	Column struct {
		Name               string     `json:"name" yaml:"name" msgpack:"name"`
		Type               ColumnType `json:"type" yaml:"type" msgpack:"type"`
		Default            *string    `json:"default,omitempty" yaml:"default,omitempty" msgpack:"default,omitempty"`
		IsUnique           bool       `json:"is_unique" yaml:"is_unique" msgpack:"is_unique"`
		IsNullable         bool       `json:"is_nullable" yaml:"is_nullable" msgpack:"is_nullable"`
		IsForeignKey       bool       `json:"is_foreign_key" yaml:"is_foreign_key" msgpack:"is_foreign_key"`
		IsPrimaryKey       bool       `json:"is_primary_key" yaml:"is_primary_key" msgpack:"is_primary_key"`
		ForeignTableName   *string    `json:"foreign_table_name,omitempty" yaml:"foreign_table_name,omitempty" msgpack:"foreign_table_name,omitempty"`
		ForeignTableSchema *string    `json:"foreign_table_schema,omitempty" yaml:"foreign_table_schema,omitempty" msgpack:"foreign_table_schema,omitempty"`
	}

	// ColumnType is the raw type descriptor of a column.
	ColumnType struct {
		Name            string `json:"name" yaml:"name" msgpack:"name"`
		Display         string `json:"display" yaml:"display" msgpack:"display"`
		SchemaName      string `json:"schema_name" yaml:"schema_name" msgpack:"schema_name"`
		IsArray         bool   `json:"is_array" yaml:"is_array" msgpack:"is_array"`
		IsComposite     bool   `json:"is_composite" yaml:"is_composite" msgpack:"is_composite"`
		ArrayDimensions int    `json:"array_dimensions" yaml:"array_dimensions" msgpack:"array_dimensions"`
	}

	// Query is a named, analyzed SQL statement.
	Query struct {
		Query       string                `json:"query" yaml:"query" msgpack:"query"`
		Name        string                `json:"name" yaml:"name" msgpack:"name"`
		Command     string                `json:"command" yaml:"command" msgpack:"command"`
		Path        string                `json:"path" yaml:"path" msgpack:"path"`
		Annotations map[string]Annotation `json:"annotations" yaml:"annotations" msgpack:"annotations"`
		Output      []OutputColumn        `json:"output" yaml:"output" msgpack:"output"`
		Parameters  []Parameter           `json:"parameters" yaml:"parameters" msgpack:"parameters"`
	}

	// Annotation is a `-- @key: value` comment attached to a query.
	Annotation struct {
		Value *string `json:"value,omitempty" yaml:"value,omitempty" msgpack:"value,omitempty"`
		Line  int     `json:"line" yaml:"line" msgpack:"line"`
	}

	// OutputColumn is a column of the query result.
	OutputColumn struct {
		Name       string     `json:"name" yaml:"name" msgpack:"name"`
		Type       OutputType `json:"type" yaml:"type" msgpack:"type"`
		IsNullable bool       `json:"is_nullable" yaml:"is_nullable" msgpack:"is_nullable"`
	}

	// OutputType is the raw type reference of a parameter or output column.
	OutputType struct {
		Schema          string `json:"schema" yaml:"schema" msgpack:"schema"`
		Name            string `json:"name" yaml:"name" msgpack:"name"`
		ID              int64  `json:"id" yaml:"id" msgpack:"id"`
		IsArray         bool   `json:"is_array,omitempty" yaml:"is_array,omitempty" msgpack:"is_array,omitempty"`
		ArrayDimensions int    `json:"array_dimensions,omitempty" yaml:"array_dimensions,omitempty" msgpack:"array_dimensions,omitempty"`
	}

	// Parameter is a query parameter. Names of the form "record.field"
	// denote a field of a composite input argument named "record".
	Parameter struct {
		Name    string     `json:"name" yaml:"name" msgpack:"name"`
		Type    OutputType `json:"type" yaml:"type" msgpack:"type"`
		NotNull bool       `json:"not_null" yaml:"not_null" msgpack:"not_null"`
	}

	// Config is the user configuration forwarded by the host.
	Config struct {
		Version string   `json:"version" yaml:"version" msgpack:"version"`
		Queries []string `json:"queries" yaml:"queries" msgpack:"queries"`
		Codegen Codegen  `json:"codegen" yaml:"codegen" msgpack:"codegen"`
	}

	// Codegen selects the target and carries target options.
	Codegen struct {
		Out      string                `json:"out" yaml:"out" msgpack:"out"`
		Language string                `json:"language" yaml:"language" msgpack:"language"`
		Driver   string                `json:"driver" yaml:"driver" msgpack:"driver"`
		Types    map[string]TypeConfig `json:"types,omitempty" yaml:"types,omitempty" msgpack:"types,omitempty"`
		Options  map[string]any        `json:"options,omitempty" yaml:"options,omitempty" msgpack:"options,omitempty"`
	}

	// TypeConfig replaces the generated annotation of a catalog type.
	TypeConfig struct {
		Annotation string   `json:"annotation" yaml:"annotation" msgpack:"annotation"`
		Import     []string `json:"import,omitempty" yaml:"import,omitempty" msgpack:"import,omitempty"`
	}
)

// Command kinds of a query.
const (
	CommandOne  = "one"
	CommandMany = "many"
	CommandVal  = "val"
	CommandExec = "exec"
)

// NamespaceAnnotation overrides the namespace derived from the query path.
const NamespaceAnnotation = "namespace"

// Namespace returns the dotted namespace of the query. The namespace
// annotation wins; otherwise it is the base name of the query file without
// its ".sql" suffix.
func (q *Query) Namespace() string {
	if a, ok := q.Annotations[NamespaceAnnotation]; ok && a.Value != nil {
		return *a.Value
	}
	base := q.Path[strings.LastIndexByte(q.Path, '/')+1:]
	for strings.HasSuffix(base, ".sql") {
		base = strings.TrimSuffix(base, ".sql")
	}
	return base
}

// Option returns the codegen option with the given name.
func (c *Codegen) Option(name string) (any, bool) {
	v, ok := c.Options[name]
	return v, ok && v != nil
}

// StringOption returns a string codegen option, or the empty string.
func (c *Codegen) StringOption(name string) string {
	v, _ := c.Option(name)
	s, _ := v.(string)
	return s
}
