// Package codegen turns introspected MySQL tables into record type
// declarations for a target language.
//
// The pipeline is: classify each column's raw type into a Kind, apply the
// configured overrides, render fields and records through a Language, and
// assemble the records together with the import directives their feature
// flags require.
package codegen

import "strings"

// Kind is a language-neutral scalar category assigned to a column.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindText
	KindBytes
	KindTimestamp // timezone aware
	KindDateTime  // naive
	KindDate
	KindTime
	KindDecimal
	KindJSON
)

var kindNames = [...]string{
	KindInvalid:   "invalid",
	KindBool:      "bool",
	KindInt8:      "int8",
	KindInt16:     "int16",
	KindInt32:     "int32",
	KindInt64:     "int64",
	KindUint8:     "uint8",
	KindUint16:    "uint16",
	KindUint32:    "uint32",
	KindUint64:    "uint64",
	KindFloat32:   "float32",
	KindFloat64:   "float64",
	KindText:      "text",
	KindBytes:     "bytes",
	KindTimestamp: "timestamp",
	KindDateTime:  "datetime",
	KindDate:      "date",
	KindTime:      "time",
	KindDecimal:   "decimal",
	KindJSON:      "json",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames)-1)
	for k := KindBool; k <= KindJSON; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Features returns the feature flags a field of this kind requires.
func (k Kind) Features() Features {
	switch k {
	case KindTimestamp:
		return FeatureTimestamp
	case KindDateTime:
		return FeatureDateTime
	case KindDate:
		return FeatureDate
	case KindTime:
		return FeatureTime
	case KindDecimal:
		return FeatureDecimal
	case KindJSON:
		return FeatureJSON
	default:
		return 0
	}
}

// Features is a set of cross-cutting language features generated code
// depends on, such as a JSON wrapper type or a decimal type.
type Features uint8

const (
	FeatureJSON Features = 1 << iota
	FeatureDecimal
	FeatureDate
	FeatureTime
	FeatureDateTime
	FeatureTimestamp
)

var featureNames = []struct {
	f    Features
	name string
}{
	{FeatureJSON, "json"},
	{FeatureDecimal, "decimal"},
	{FeatureDate, "date"},
	{FeatureTime, "time"},
	{FeatureDateTime, "datetime"},
	{FeatureTimestamp, "timestamp"},
}

// Has reports whether every flag of x is set in f.
func (f Features) Has(x Features) bool { return f&x == x }

func (f Features) String() string {
	if f == 0 {
		return "none"
	}
	var names []string
	for _, fn := range featureNames {
		if f.Has(fn.f) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}
