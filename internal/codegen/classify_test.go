package codegen

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		raw  string
		want Kind
	}{
		{"TINYINT(1)", KindBool},
		{"tinyint(1)", KindBool},
		{"  tinyint(1) ", KindBool},
		{"TINYINT", KindInt8},
		{"TINYINT UNSIGNED", KindUint8},
		{"tinyint(1) unsigned", KindUint8},
		{"tinyint(4)", KindInt8},
		{"SMALLINT", KindInt16},
		{"smallint(5) unsigned", KindUint16},
		{"BIGINT", KindInt64},
		{"BIGINT UNSIGNED", KindUint64},
		{"bigint(20) unsigned", KindUint64},
		{"INT(11)", KindInt32},
		{"int unsigned", KindUint32},
		{"INT UNSIGNED", KindUint32},
		{"mediumint(8)", KindInt32},
		{"FLOAT", KindFloat32},
		{"float(7,4)", KindFloat32},
		{"DOUBLE", KindFloat64},
		{"double unsigned", KindFloat64},
		{"VARCHAR(255)", KindText},
		{"char(36)", KindText},
		{"longtext", KindText},
		{"BLOB", KindBytes},
		{"varbinary(16)", KindBytes},
		{"binary(16)", KindBytes},
		{"TIMESTAMP", KindTimestamp},
		{"timestamp(6)", KindTimestamp},
		{"DATETIME", KindDateTime},
		{"datetime(3)", KindDateTime},
		{"DATE", KindDate},
		{"TIME", KindTime},
		{"time(6)", KindTime},
		{"DECIMAL(10,2)", KindDecimal},
		{"decimal(65,30) unsigned", KindDecimal},
		{"JSON", KindJSON},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := Classify(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "Classify(%q) = %s, want %s", tt.raw, got, tt.want)
		})
	}
}

func TestClassify_Unknown(t *testing.T) {
	for _, raw := range []string{"ENUM('a','b')", "set('x','y')", "year", "bit(1)", ""} {
		t.Run(raw, func(t *testing.T) {
			got, err := Classify(raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnknownType))
			assert.Equal(t, KindInvalid, got)
			assert.Contains(t, err.Error(), raw)
		})
	}
}

func TestRules_Order(t *testing.T) {
	rs := Rules()
	want := []Kind{
		KindBool, KindInt8, KindInt16, KindInt64, KindInt32, KindFloat32, KindFloat64,
		KindText, KindBytes, KindTimestamp, KindDateTime, KindDate, KindTime, KindDecimal, KindJSON,
	}
	require.Len(t, rs, len(want))
	for i, r := range rs {
		assert.Equal(t, want[i], r.Kind, "rule %d (%s)", i, r.Pattern())
	}
	assert.Equal(t, "TINYINT(1)", rs[0].Exact)
}

// A token containing a token of an earlier rule would never be reached.
func TestRules_NoShadowedTokens(t *testing.T) {
	rs := Rules()
	for j, later := range rs {
		for i := 0; i < j; i++ {
			for _, lt := range later.Contains {
				for _, et := range rs[i].Contains {
					assert.False(t, strings.Contains(lt, et),
						"token %q of rule %d is shadowed by %q of rule %d", lt, j, et, i)
				}
			}
		}
	}
}

func TestRules_IsCopy(t *testing.T) {
	rs := Rules()
	rs[0].Kind = KindJSON
	got, err := Classify("TINYINT(1)")
	require.NoError(t, err)
	assert.Equal(t, KindBool, got)
}

func TestRules_IntegersHaveUnsignedVariant(t *testing.T) {
	for _, r := range Rules() {
		switch r.Kind {
		case KindInt8, KindInt16, KindInt32, KindInt64:
			assert.NotEqual(t, KindInvalid, r.Unsigned, r.Pattern())
		default:
			assert.Equal(t, KindInvalid, r.Unsigned, r.Pattern())
		}
	}
}

func TestKind_Features(t *testing.T) {
	tests := []struct {
		kind Kind
		want Features
	}{
		{KindJSON, FeatureJSON},
		{KindDecimal, FeatureDecimal},
		{KindDate, FeatureDate},
		{KindTime, FeatureTime},
		{KindDateTime, FeatureDateTime},
		{KindTimestamp, FeatureTimestamp},
		{KindText, 0},
		{KindUint64, 0},
		{KindBool, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.Features(), tt.kind.String())
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "uint32", KindUint32.String())
	assert.Equal(t, "datetime", KindDateTime.String())
	assert.Equal(t, "invalid", Kind(200).String())
	assert.Len(t, Kinds(), 19)
}

func TestFeatures(t *testing.T) {
	var f Features
	assert.Equal(t, "none", f.String())

	f |= FeatureJSON | FeatureDecimal
	assert.True(t, f.Has(FeatureJSON))
	assert.True(t, f.Has(FeatureJSON|FeatureDecimal))
	assert.False(t, f.Has(FeatureDate))
	assert.False(t, f.Has(FeatureJSON|FeatureDate))
	assert.Equal(t, "json|decimal", f.String())
}
