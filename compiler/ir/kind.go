package ir

// Kind is a scalar catalog type: a built-in type or pseudo-type of the
// pg_catalog namespace.
type Kind uint8

// Scalar kinds.
const (
	TypeInvalid Kind = iota

	// Uncategorized
	TypeBool
	TypeUUID

	// Character and binary
	TypeText
	TypeVarChar
	TypeBpChar
	TypeBytea

	// Numeric
	TypeInt2
	TypeInt4
	TypeInt8
	TypeSerial2
	TypeSerial4
	TypeSerial8
	TypeDecimal
	TypeNumeric
	TypeMoney
	TypeFloat4
	TypeFloat8

	// Date and time
	TypeTimestamp
	TypeDate
	TypeTime
	TypeTimestampTz
	TypeDateTz
	TypeTimeTz
	TypeRange
	TypeInterval

	// Ranges and multiranges
	TypeInt4Range
	TypeInt8Range
	TypeNumRange
	TypeTsRange
	TypeTsTzRange
	TypeDateRange
	TypeDateMultiRange
	TypeInt4MultiRange
	TypeInt8MultiRange
	TypeNumMultiRange
	TypeTsMultiRange
	TypeTsTzMultiRange

	// Geometric
	TypePoint
	TypeLine
	TypeLSeg
	TypeBox
	TypePath
	TypePolygon
	TypeCircle

	// Network
	TypeCid
	TypeCidr
	TypeInet
	TypeMacAddr
	TypeMacAddr8

	// Bit strings
	TypeBit
	TypeBitVarying

	// Text search
	TypeTsVector
	TypeTsQuery

	// Encodings
	TypeXML
	TypeJSON
	TypeJSONB
	TypeJSONPath

	// Pseudo-types
	TypeAny
	TypeAnyArray
	TypeAnyElement
	TypeAnyNonArray
	TypeAnyEnum
	TypeAnyRange
	TypeAnyMultiRange
	TypeAnyCompatible
	TypeAnyCompatibleArray
	TypeAnyCompatibleMultiRange
	TypeAnyCompatibleNonArray
	TypeAnyCompatibleRange
	TypeCstring
	TypeInternal
	TypeRecord
	TypeVoid
	TypeUnknown

	endKinds
)

// kindNames holds the pg_catalog name of every kind.
var kindNames = [...]string{
	TypeInvalid:                 "invalid",
	TypeBool:                    "bool",
	TypeUUID:                    "uuid",
	TypeText:                    "text",
	TypeVarChar:                 "varchar",
	TypeBpChar:                  "bpchar",
	TypeBytea:                   "bytea",
	TypeInt2:                    "int2",
	TypeInt4:                    "int4",
	TypeInt8:                    "int8",
	TypeSerial2:                 "serial2",
	TypeSerial4:                 "serial4",
	TypeSerial8:                 "serial8",
	TypeDecimal:                 "decimal",
	TypeNumeric:                 "numeric",
	TypeMoney:                   "money",
	TypeFloat4:                  "float4",
	TypeFloat8:                  "float8",
	TypeTimestamp:               "timestamp",
	TypeDate:                    "date",
	TypeTime:                    "time",
	TypeTimestampTz:             "timestamptz",
	TypeDateTz:                  "datetz",
	TypeTimeTz:                  "timetz",
	TypeRange:                   "range",
	TypeInterval:                "interval",
	TypeInt4Range:               "int4range",
	TypeInt8Range:               "int8range",
	TypeNumRange:                "numrange",
	TypeTsRange:                 "tsrange",
	TypeTsTzRange:               "tstzrange",
	TypeDateRange:               "daterange",
	TypeDateMultiRange:          "datemultirange",
	TypeInt4MultiRange:          "int4multirange",
	TypeInt8MultiRange:          "int8multirange",
	TypeNumMultiRange:           "nummultirange",
	TypeTsMultiRange:            "tsmultirange",
	TypeTsTzMultiRange:          "tstzmultirange",
	TypePoint:                   "point",
	TypeLine:                    "line",
	TypeLSeg:                    "lseg",
	TypeBox:                     "box",
	TypePath:                    "path",
	TypePolygon:                 "polygon",
	TypeCircle:                  "circle",
	TypeCid:                     "cid",
	TypeCidr:                    "cidr",
	TypeInet:                    "inet",
	TypeMacAddr:                 "macaddr",
	TypeMacAddr8:                "macaddr8",
	TypeBit:                     "bit",
	TypeBitVarying:              "bitvarying",
	TypeTsVector:                "tsvector",
	TypeTsQuery:                 "tsquery",
	TypeXML:                     "xml",
	TypeJSON:                    "json",
	TypeJSONB:                   "jsonb",
	TypeJSONPath:                "jsonpath",
	TypeAny:                     "any",
	TypeAnyArray:                "anyarray",
	TypeAnyElement:              "anyelement",
	TypeAnyNonArray:             "anynonarray",
	TypeAnyEnum:                 "anyenum",
	TypeAnyRange:                "anyrange",
	TypeAnyMultiRange:           "anymultirange",
	TypeAnyCompatible:           "anycompatible",
	TypeAnyCompatibleArray:      "anycompatiblearray",
	TypeAnyCompatibleMultiRange: "anycompatiblemultirange",
	TypeAnyCompatibleNonArray:   "anycompatiblenonarray",
	TypeAnyCompatibleRange:      "anycompatiblerange",
	TypeCstring:                 "cstring",
	TypeInternal:                "internal",
	TypeRecord:                  "record",
	TypeVoid:                    "void",
	TypeUnknown:                 "unknown",
}

func (Kind) isType() {}

// String returns the pg_catalog name of the kind.
func (k Kind) String() string {
	if k < endKinds {
		return kindNames[k]
	}
	return "invalid"
}

// Valid reports if the kind is a known scalar kind.
func (k Kind) Valid() bool { return k > TypeInvalid && k < endKinds }

// Kinds returns all valid scalar kinds in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, 0, endKinds-1)
	for k := TypeInvalid + 1; k < endKinds; k++ {
		ks = append(ks, k)
	}
	return ks
}
