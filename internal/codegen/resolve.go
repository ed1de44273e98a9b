package codegen

import (
	"strings"

	"github.com/sadopc/dbcodegen/internal/schema"
)

// Override replaces the classified type of one column. CustomType wins over
// WrappedJSONType when both are set.
type Override struct {
	CustomType      string
	WrappedJSONType string
}

// IsZero reports whether the override changes nothing.
func (o Override) IsZero() bool {
	return strings.TrimSpace(o.CustomType) == "" && strings.TrimSpace(o.WrappedJSONType) == ""
}

// Overrides holds per-column overrides keyed by table, then column.
type Overrides map[string]map[string]Override

// Lookup returns the override of table.column. A nil Overrides has none.
func (o Overrides) Lookup(table, column string) (Override, bool) {
	cols, ok := o[table]
	if !ok {
		return Override{}, false
	}
	ov, ok := cols[column]
	return ov, ok
}

// ResolveType returns the rendered type name of col and the features it
// requires. The first applicable rule wins:
//
//  1. a custom type is used verbatim and sets no features
//  2. a wrapped JSON type renders as the language's JSON wrapper and sets
//     FeatureJSON
//  3. otherwise the classified kind is rendered and then replaced by an
//     alias whose key equals the rendered name; the kind's features are set
//     even when an alias applies
//
// Nullable columns are wrapped in the language's optional type last, so the
// optional is always outermost.
func ResolveType(lang Language, col schema.Column, ov Override, aliases map[string]string) (string, Features, error) {
	var (
		typeName string
		features Features
	)
	switch {
	case strings.TrimSpace(ov.CustomType) != "":
		typeName = ov.CustomType
	case strings.TrimSpace(ov.WrappedJSONType) != "":
		typeName = lang.JSONWrapper(ov.WrappedJSONType)
		features = FeatureJSON
	default:
		kind, err := Classify(col.Type)
		if err != nil {
			return "", 0, err
		}
		typeName = lang.TypeName(kind)
		if alias, ok := aliases[typeName]; ok {
			typeName = alias
		}
		features = kind.Features()
	}

	if col.Nullable {
		typeName = lang.Optional(typeName)
	}
	return typeName, features, nil
}
