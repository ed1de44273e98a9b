package codegen

import (
	"fmt"
	"slices"
	"strings"
)

// Rule is one row of the classifier decision table. A rule matches when the
// upper-cased descriptor equals Exact, or contains any of Contains.
type Rule struct {
	Exact    string
	Contains []string
	Kind     Kind
	// Unsigned is the kind used instead of Kind when the descriptor carries
	// the UNSIGNED token. Zero for non-integer rules.
	Unsigned Kind
}

// rules is evaluated top to bottom and the first match wins. Several tokens
// are substrings of others ("INT" in "BIGINT", "DATE" in "DATETIME"), so a
// new rule must be inserted before any rule whose token it contains.
var rules = []Rule{
	{Exact: "TINYINT(1)", Kind: KindBool},
	{Contains: []string{"TINYINT"}, Kind: KindInt8, Unsigned: KindUint8},
	{Contains: []string{"SMALLINT"}, Kind: KindInt16, Unsigned: KindUint16},
	{Contains: []string{"BIGINT"}, Kind: KindInt64, Unsigned: KindUint64},
	{Contains: []string{"INT"}, Kind: KindInt32, Unsigned: KindUint32},
	{Contains: []string{"FLOAT"}, Kind: KindFloat32},
	{Contains: []string{"DOUBLE"}, Kind: KindFloat64},
	{Contains: []string{"VARCHAR", "CHAR", "TEXT"}, Kind: KindText},
	{Contains: []string{"VARBINARY", "BINARY", "BLOB"}, Kind: KindBytes},
	{Contains: []string{"TIMESTAMP"}, Kind: KindTimestamp},
	{Contains: []string{"DATETIME"}, Kind: KindDateTime},
	{Contains: []string{"DATE"}, Kind: KindDate},
	{Contains: []string{"TIME"}, Kind: KindTime},
	{Contains: []string{"DECIMAL"}, Kind: KindDecimal},
	{Contains: []string{"JSON"}, Kind: KindJSON},
}

// Rules returns a copy of the classifier decision table in evaluation order.
func Rules() []Rule {
	return slices.Clone(rules)
}

// Pattern describes the rule's match condition for display.
func (r Rule) Pattern() string {
	if r.Exact != "" {
		return "= " + r.Exact
	}
	return "~ " + strings.Join(r.Contains, " | ")
}

func (r Rule) match(upper string) (Kind, bool) {
	if r.Exact != "" {
		if upper != r.Exact {
			return KindInvalid, false
		}
		return r.Kind, true
	}
	for _, token := range r.Contains {
		if strings.Contains(upper, token) {
			if r.Unsigned != KindInvalid && strings.Contains(upper, "UNSIGNED") {
				return r.Unsigned, true
			}
			return r.Kind, true
		}
	}
	return KindInvalid, false
}

// Classify maps a raw column type descriptor such as "int(10) unsigned" to
// its Kind. Matching is case-insensitive. Descriptors no rule accepts yield
// an error wrapping ErrUnknownType.
func Classify(raw string) (Kind, error) {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	for _, r := range rules {
		if k, ok := r.match(upper); ok {
			return k, nil
		}
	}
	return KindInvalid, fmt.Errorf("%w %q", ErrUnknownType, raw)
}
