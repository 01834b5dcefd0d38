package ir

import (
	"slices"
	"strings"
)

// CatalogSchema is the schema holding the built-in types.
const CatalogSchema = "pg_catalog"

type builtin struct {
	name string
	kind Kind
}

// builtins maps pg_catalog type names to kinds. It must stay sorted by
// name; LookupBuiltin relies on binary search.
var builtins = [...]builtin{
	{"any", TypeAny},
	{"anyarray", TypeAnyArray},
	{"anycompatible", TypeAnyCompatible},
	{"anycompatiblearray", TypeAnyCompatibleArray},
	{"anycompatiblemultirange", TypeAnyCompatibleMultiRange},
	{"anycompatiblenonarray", TypeAnyCompatibleNonArray},
	{"anycompatiblerange", TypeAnyCompatibleRange},
	{"anyelement", TypeAnyElement},
	{"anyenum", TypeAnyEnum},
	{"anymultirange", TypeAnyMultiRange},
	{"anynonarray", TypeAnyNonArray},
	{"anyrange", TypeAnyRange},
	{"bit", TypeBit},
	{"bitvarying", TypeBitVarying},
	{"bool", TypeBool},
	{"box", TypeBox},
	{"bpchar", TypeBpChar},
	{"bytea", TypeBytea},
	{"cid", TypeCid},
	{"cidr", TypeCidr},
	{"circle", TypeCircle},
	{"cstring", TypeCstring},
	{"date", TypeDate},
	{"datemultirange", TypeDateMultiRange},
	{"daterange", TypeDateRange},
	{"datetz", TypeDateTz},
	{"decimal", TypeDecimal},
	{"float4", TypeFloat4},
	{"float8", TypeFloat8},
	{"inet", TypeInet},
	{"int2", TypeInt2},
	{"int4", TypeInt4},
	{"int4multirange", TypeInt4MultiRange},
	{"int4range", TypeInt4Range},
	{"int8", TypeInt8},
	{"int8multirange", TypeInt8MultiRange},
	{"int8range", TypeInt8Range},
	{"internal", TypeInternal},
	{"interval", TypeInterval},
	{"json", TypeJSON},
	{"jsonb", TypeJSONB},
	{"jsonpath", TypeJSONPath},
	{"line", TypeLine},
	{"lseg", TypeLSeg},
	{"macaddr", TypeMacAddr},
	{"macaddr8", TypeMacAddr8},
	{"money", TypeMoney},
	{"numeric", TypeNumeric},
	{"nummultirange", TypeNumMultiRange},
	{"numrange", TypeNumRange},
	{"path", TypePath},
	{"point", TypePoint},
	{"polygon", TypePolygon},
	{"range", TypeRange},
	{"record", TypeRecord},
	{"serial2", TypeSerial2},
	{"serial4", TypeSerial4},
	{"serial8", TypeSerial8},
	{"text", TypeText},
	{"time", TypeTime},
	{"timestamp", TypeTimestamp},
	{"timestamptz", TypeTimestampTz},
	{"timetz", TypeTimeTz},
	{"tsmultirange", TypeTsMultiRange},
	{"tsquery", TypeTsQuery},
	{"tsrange", TypeTsRange},
	{"tstzmultirange", TypeTsTzMultiRange},
	{"tstzrange", TypeTsTzRange},
	{"tsvector", TypeTsVector},
	{"unknown", TypeUnknown},
	{"uuid", TypeUUID},
	{"varbit", TypeBitVarying},
	{"varchar", TypeVarChar},
	{"void", TypeVoid},
	{"xml", TypeXML},
}

// LookupBuiltin returns the kind of the given pg_catalog type name.
func LookupBuiltin(name string) (Kind, bool) {
	i, ok := slices.BinarySearchFunc(builtins[:], name, func(b builtin, name string) int {
		return strings.Compare(b.name, name)
	})
	if !ok {
		return TypeInvalid, false
	}
	return builtins[i].kind, true
}
