package gen

import (
	"slices"

	"github.com/syssam/pgc/compiler/ir"
	"github.com/syssam/pgc/compiler/request"
)

// PackageOption names the python package the generated code lives in.
const PackageOption = "package"

func py(annotation string, imports ...string) LanguageType {
	return LanguageType{Annotation: annotation, Imports: imports}
}

const (
	importAsyncpg  = "import asyncpg"
	importDatetime = "import datetime"
	importDecimal  = "import decimal"
	importRange    = "import psycopg.types.range"
)

var asyncpgTypes = map[ir.Kind]LanguageType{
	ir.TypeBool:                    py("bool"),
	ir.TypeUUID:                    py("uuid.UUID", "import uuid"),
	ir.TypeText:                    py("str"),
	ir.TypeVarChar:                 py("str"),
	ir.TypeBpChar:                  py("str"),
	ir.TypeBytea:                   py("bytes"),
	ir.TypeInt2:                    py("int"),
	ir.TypeInt4:                    py("int"),
	ir.TypeInt8:                    py("int"),
	ir.TypeSerial2:                 py("int"),
	ir.TypeSerial4:                 py("int"),
	ir.TypeSerial8:                 py("int"),
	ir.TypeDecimal:                 py("decimal.Decimal", importDecimal),
	ir.TypeNumeric:                 py("decimal.Decimal", importDecimal),
	ir.TypeMoney:                   py("str"),
	ir.TypeFloat4:                  py("float"),
	ir.TypeFloat8:                  py("float"),
	ir.TypeTimestamp:               py("datetime.datetime", importDatetime),
	ir.TypeDate:                    py("datetime.date", importDatetime),
	ir.TypeTime:                    py("datetime.time", importDatetime),
	ir.TypeTimestampTz:             py("datetime.datetime", importDatetime),
	ir.TypeDateTz:                  py("datetime.date", importDatetime),
	ir.TypeTimeTz:                  py("datetime.time", importDatetime),
	ir.TypeRange:                   py("asyncpg.Range", importAsyncpg),
	ir.TypeInterval:                py("datetime.timedelta", importDatetime),
	ir.TypeInt4Range:               py("asyncpg.Range[int]", importAsyncpg),
	ir.TypeInt8Range:               py("asyncpg.Range[int]", importAsyncpg),
	ir.TypeNumRange:                py("asyncpg.Range[decimal.Decimal]", importAsyncpg, importDecimal),
	ir.TypeTsRange:                 py("asyncpg.Range", importAsyncpg),
	ir.TypeTsTzRange:               py("asyncpg.Range", importAsyncpg),
	ir.TypeDateRange:               py("asyncpg.Range", importAsyncpg),
	ir.TypeDateMultiRange:          py("list[asyncpg.Range]", importAsyncpg),
	ir.TypeInt4MultiRange:          py("list[asyncpg.Range[int]]", importAsyncpg),
	ir.TypeInt8MultiRange:          py("list[asyncpg.Range[int]]", importAsyncpg),
	ir.TypeNumMultiRange:           py("list[asyncpg.Range[decimal.Decimal]]", importAsyncpg, importDecimal),
	ir.TypeTsMultiRange:            py("list[asyncpg.Range]", importAsyncpg),
	ir.TypeTsTzMultiRange:          py("list[asyncpg.Range]", importAsyncpg),
	ir.TypePoint:                   py("asyncpg.Point", importAsyncpg),
	ir.TypeLine:                    py("asyncpg.Line", importAsyncpg),
	ir.TypeLSeg:                    py("asyncpg.LineSegment", importAsyncpg),
	ir.TypeBox:                     py("asyncpg.Box", importAsyncpg),
	ir.TypePath:                    py("asyncpg.Path", importAsyncpg),
	ir.TypePolygon:                 py("asyncpg.Polygon", importAsyncpg),
	ir.TypeCircle:                  py("asyncpg.Circle", importAsyncpg),
	ir.TypeCid:                     py("str"),
	ir.TypeCidr:                    py("ipaddress.IPv4Network | ipaddress.IPv6Network", "import ipaddress"),
	ir.TypeInet:                    py("ipaddress.IPv4Interface | ipaddress.IPv6Interface", "import ipaddress"),
	ir.TypeMacAddr:                 py("str"),
	ir.TypeMacAddr8:                py("str"),
	ir.TypeBit:                     py("asyncpg.BitString", importAsyncpg),
	ir.TypeBitVarying:              py("asyncpg.BitString", importAsyncpg),
	ir.TypeTsVector:                py("str"),
	ir.TypeTsQuery:                 py("str"),
	ir.TypeXML:                     py("str"),
	ir.TypeJSON:                    py("str"),
	ir.TypeJSONB:                   py("str"),
	ir.TypeJSONPath:                py("str"),
	ir.TypeAny:                     py("typing.Any", "import typing"),
	ir.TypeAnyArray:                py("list"),
	ir.TypeAnyElement:              py("typing.Any", "import typing"),
	ir.TypeAnyNonArray:             py("typing.Any", "import typing"),
	ir.TypeAnyEnum:                 py("str"),
	ir.TypeAnyRange:                py("asyncpg.Range", importAsyncpg),
	ir.TypeAnyMultiRange:           py("list[asyncpg.Range]", importAsyncpg),
	ir.TypeAnyCompatible:           py("typing.Any", "import typing"),
	ir.TypeAnyCompatibleArray:      py("list"),
	ir.TypeAnyCompatibleMultiRange: py("list[asyncpg.Range]", importAsyncpg),
	ir.TypeAnyCompatibleNonArray:   py("typing.Any", "import typing"),
	ir.TypeAnyCompatibleRange:      py("asyncpg.Range", importAsyncpg),
	ir.TypeCstring:                 py("str"),
	ir.TypeInternal:                py("typing.Any", "import typing"),
	ir.TypeRecord:                  py("asyncpg.Record", importAsyncpg),
	ir.TypeVoid:                    py("None"),
	ir.TypeUnknown:                 py("typing.Any", "import typing"),
}

// psycopgTypes holds the kinds psycopg decodes differently from asyncpg.
var psycopgTypes = map[ir.Kind]LanguageType{
	ir.TypeBit:                     py("str"),
	ir.TypeBitVarying:              py("str"),
	ir.TypeRecord:                  py("str"),
	ir.TypeLine:                    py("str"),
	ir.TypeLSeg:                    py("str"),
	ir.TypePoint:                   py("str"),
	ir.TypePath:                    py("str"),
	ir.TypePolygon:                 py("str"),
	ir.TypeCircle:                  py("str"),
	ir.TypeBox:                     py("str"),
	ir.TypeRange:                   py("psycopg.types.range.Range", importRange),
	ir.TypeAnyRange:                py("psycopg.types.range.Range", importRange),
	ir.TypeAnyCompatibleRange:      py("psycopg.types.range.Range", importRange),
	ir.TypeInt4Range:               py("psycopg.types.range.Range[int]", importRange),
	ir.TypeInt8Range:               py("psycopg.types.range.Range[int]", importRange),
	ir.TypeNumRange:                py("psycopg.types.range.Range[decimal.Decimal]", importRange, importDecimal),
	ir.TypeTsRange:                 py("psycopg.types.range.Range[datetime.datetime]", importRange, importDatetime),
	ir.TypeTsTzRange:               py("psycopg.types.range.Range[datetime.datetime]", importRange, importDatetime),
	ir.TypeDateRange:               py("psycopg.types.range.Range[datetime.date]", importRange, importDatetime),
	ir.TypeAnyMultiRange:           py("list[psycopg.types.range.Range]", importRange),
	ir.TypeAnyCompatibleMultiRange: py("list[psycopg.types.range.Range]", importRange),
	ir.TypeInt4MultiRange:          py("list[psycopg.types.range.Range[int]]", importRange),
	ir.TypeInt8MultiRange:          py("list[psycopg.types.range.Range[int]]", importRange),
	ir.TypeNumMultiRange:           py("list[psycopg.types.range.Range[decimal.Decimal]]", importRange, importDecimal),
	ir.TypeTsMultiRange:            py("list[psycopg.types.range.Range[datetime.datetime]]", importRange, importDatetime),
	ir.TypeTsTzMultiRange:          py("list[psycopg.types.range.Range[datetime.datetime]]", importRange, importDatetime),
	ir.TypeDateMultiRange:          py("list[psycopg.types.range.Range[datetime.date]]", importRange, importDatetime),
}

// pythonMapper maps types for the python drivers. Models are referenced
// through the top level package of their module, which is imported
// relative to the configured package.
type pythonMapper struct {
	pkg   string
	types []map[ir.Kind]LanguageType
}

func newAsyncpgMapper(c *request.Codegen) Mapper {
	return &pythonMapper{
		pkg:   c.StringOption(PackageOption),
		types: []map[ir.Kind]LanguageType{asyncpgTypes},
	}
}

func newPsycopgMapper(c *request.Codegen) Mapper {
	return &pythonMapper{
		pkg:   c.StringOption(PackageOption),
		types: []map[ir.Kind]LanguageType{psycopgTypes, asyncpgTypes},
	}
}

func (m *pythonMapper) Scalar(k ir.Kind) LanguageType {
	for _, types := range m.types {
		if lt, ok := types[k]; ok {
			lt.Imports = slices.Clone(lt.Imports)
			return lt
		}
	}
	return py("typing.Any", "import typing")
}

func (*pythonMapper) Other(ir.Other) LanguageType {
	return py("str")
}

func (m *pythonMapper) UserDefined(path []string, t ir.UserDefined) LanguageType {
	name := pascal(t.Name)
	lt := LanguageType{Name: name, Annotation: name, Module: t.Module()}
	if same(path, t.ModulePath) || len(t.ModulePath) == 0 {
		return lt
	}
	lt.Annotation = lt.Module + "." + name
	switch {
	case m.pkg != "":
		lt.Imports = []string{"from " + m.pkg + " import " + t.ModulePath[0]}
	default:
		lt.Imports = []string{"import " + lt.Module}
	}
	return lt
}

func (*pythonMapper) Nullable(annotation string) string {
	return annotation + " | None"
}

func (*pythonMapper) Array(annotation string) string {
	return "list[" + annotation + "]"
}
