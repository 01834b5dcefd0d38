package gen

import (
	"strings"

	"github.com/syssam/pgc/compiler/ir"
	"github.com/syssam/pgc/compiler/request"
)

func ts(annotation, name string) LanguageType {
	return LanguageType{Annotation: annotation, Name: name}
}

var typescriptTypes = map[ir.Kind]LanguageType{
	ir.TypeAny:                   ts("any", ""),
	ir.TypeAnyCompatible:         ts("any", ""),
	ir.TypeAnyCompatibleNonArray: ts("any", ""),
	ir.TypeJSON:                  ts("any", ""),
	ir.TypeJSONB:                 ts("any", ""),
	ir.TypeAnyArray:              ts("Array<any>", ""),
	ir.TypeAnyCompatibleArray:    ts("Array<any>", ""),
	ir.TypeInt8:                  ts("bigint", "bigint"),
	ir.TypeSerial8:               ts("bigint", "bigint"),
	ir.TypeBool:                  ts("boolean", "boolean"),
	ir.TypeBytea:                 ts("Buffer", "Buffer"),
	ir.TypeInt2:                  ts("number", "number"),
	ir.TypeInt4:                  ts("number", "number"),
	ir.TypeSerial2:               ts("number", "number"),
	ir.TypeSerial4:               ts("number", "number"),
	ir.TypeFloat4:                ts("number", "number"),
	ir.TypeFloat8:                ts("number", "number"),
	ir.TypeDate:                  ts("Date", "Date"),
	ir.TypeDateTz:                ts("Date", "Date"),
	ir.TypeTimestamp:             ts("Date", "Date"),
	ir.TypeTimestampTz:           ts("Date", "Date"),
	ir.TypeVoid:                  ts("void", ""),
}

// typescriptMapper maps types for the postgres driver. Kinds without an
// entry in typescriptTypes are decoded as strings.
type typescriptMapper struct{}

func newTypescriptMapper(*request.Codegen) Mapper {
	return typescriptMapper{}
}

func (typescriptMapper) Scalar(k ir.Kind) LanguageType {
	if lt, ok := typescriptTypes[k]; ok {
		return lt
	}
	return ts("string", "string")
}

func (typescriptMapper) Other(ir.Other) LanguageType {
	return ts("string", "string")
}

func (typescriptMapper) UserDefined(path []string, t ir.UserDefined) LanguageType {
	name := pascal(t.Name)
	lt := LanguageType{Name: name, Annotation: name, Module: t.Module()}
	if !same(path, t.ModulePath) && lt.Module != "" {
		lt.Annotation = lt.Module + "." + name
	}
	return lt
}

func (typescriptMapper) Nullable(annotation string) string {
	return annotation + " | null"
}

func (typescriptMapper) Array(annotation string) string {
	return "Array<" + annotation + ">"
}

// Parser returns the expression constructing the runtime parser that
// decodes values of t from their text representation.
func Parser(t ir.Type) string {
	switch t := t.(type) {
	case ir.Nullable:
		return "new NullParser(" + Parser(t.Elem) + ")"
	case ir.Array:
		if t.Dim <= 1 {
			return "new ArrayParser(" + Parser(t.Elem) + ")"
		}
		return Parser(ir.Array{Elem: t.Elem, Dim: t.Dim - 1}) + ".arrayOfThis()"
	case ir.UserDefined:
		var b strings.Builder
		b.WriteString("parser.")
		switch len(t.ModulePath) {
		case 0:
		case 1:
			b.WriteString(t.ModulePath[0])
			b.WriteString(".")
		default:
			b.WriteString(t.ModulePath[1])
			b.WriteString(".")
		}
		b.WriteString(camel(t.Name))
		b.WriteString("()")
		return b.String()
	case ir.Kind:
		switch t {
		case ir.TypeBool:
			return "new BooleanParser()"
		case ir.TypeDate, ir.TypeDateTz, ir.TypeTimestamp, ir.TypeTimestampTz:
			return "new DateParser()"
		case ir.TypeInt8, ir.TypeSerial8:
			return "new BigIntParser()"
		case ir.TypeInt2, ir.TypeInt4, ir.TypeSerial2, ir.TypeSerial4, ir.TypeFloat4, ir.TypeFloat8:
			return "new NumberParser()"
		case ir.TypeBytea:
			return "new BufferParser()"
		case ir.TypeJSON, ir.TypeJSONB:
			return "new JsonParser()"
		}
	}
	return "new StringParser()"
}

// RequiresParsing reports if values of t cannot be used as returned by the
// driver.
func RequiresParsing(t ir.Type) bool {
	switch t := ir.Unwrap(t).(type) {
	case ir.Array, ir.UserDefined:
		return true
	case ir.Kind:
		return t == ir.TypeInt8 || t == ir.TypeSerial8
	}
	return false
}
