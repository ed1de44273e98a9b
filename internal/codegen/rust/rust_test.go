package rust

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadopc/dbcodegen/internal/codegen"
	"github.com/sadopc/dbcodegen/internal/schema"
)

func TestRecordName(t *testing.T) {
	tests := map[string]string{
		"users":        "Users",
		"user_account": "UserAccount",
		"orderItems":   "OrderItems",
		"HTTP_logs":    "HttpLogs",
		"t2_data":      "T2Data",
	}
	for in, want := range tests {
		assert.Equal(t, want, Language{}.RecordName(in), in)
	}
}

func TestFieldName(t *testing.T) {
	l := Language{}
	assert.Equal(t, "id", l.FieldName("id", Reserved))
	assert.Equal(t, "r#type", l.FieldName("type", Reserved))
	assert.Equal(t, "r#match", l.FieldName("match", Reserved))
	assert.Equal(t, "self_", l.FieldName("self", Reserved))
	assert.Equal(t, "Type", l.FieldName("Type", Reserved))
	assert.Equal(t, "r#state", l.FieldName("state", Reserved.With("state")))
}

func TestTypeNames(t *testing.T) {
	l := Language{}
	for _, k := range codegen.Kinds() {
		assert.NotEqual(t, "()", l.TypeName(k), k.String())
	}
	assert.Equal(t, "DateTime<Local>", l.TypeName(codegen.KindTimestamp))
	assert.Equal(t, "Vec<u8>", l.TypeName(codegen.KindBytes))
	assert.Equal(t, "Option<Json<Meta>>", l.Optional(l.JSONWrapper("Meta")))
}

func TestRenderRecord(t *testing.T) {
	got, err := Language{}.RenderRecord(
		schema.Table{Name: "user_roles", Comment: "Role grants"},
		[]codegen.Field{
			{Name: "user_id", Type: "u64", Comment: "Owner"},
			{Name: "r#type", Type: "Option<String>"},
		},
	)
	require.NoError(t, err)
	want := `/// Role grants
#[derive(Debug, Clone, Deserialize, Serialize, FromRow)]
pub struct UserRoles {
    /// Owner
    pub user_id: u64,
    /// 
    pub r#type: Option<String>,
}`
	assert.Equal(t, want, got)
}

func TestImports(t *testing.T) {
	l := Language{}
	all := codegen.FeatureJSON | codegen.FeatureDecimal | codegen.FeatureDate |
		codegen.FeatureTime | codegen.FeatureDateTime | codegen.FeatureTimestamp

	base := []string{"use serde::{Serialize, Deserialize};", "use sqlx::FromRow;"}
	assert.Equal(t, base, l.Imports(codegen.FeatureDecimal|codegen.FeatureDate, codegen.Options{}))

	got := l.Imports(all, codegen.Options{})
	assert.Equal(t, append(base, "use sqlx::types::Json;", "use super::json;"), got)

	got = l.Imports(all, codegen.Options{FeatureImports: true})
	assert.Equal(t, []string{
		"use serde::{Serialize, Deserialize};",
		"use sqlx::FromRow;",
		"use chrono::NaiveDate;",
		"use chrono::NaiveTime;",
		"use chrono::NaiveDateTime;",
		"use chrono::{DateTime, Local};",
		"use sqlx::types::Decimal;",
		"use sqlx::types::Json;",
		"use super::json;",
	}, got)
}

func TestImports_Extra(t *testing.T) {
	got := Language{}.Imports(0, codegen.Options{
		ExtraImports: []string{"uuid::Uuid", "use crate::types::Role;", "  "},
	})
	assert.Equal(t, []string{
		"use serde::{Serialize, Deserialize};",
		"use sqlx::FromRow;",
		"use uuid::Uuid;",
		"use crate::types::Role;",
	}, got)

	pre := Language{}.Preamble(got, codegen.Options{})
	assert.Equal(t, "use serde::{Serialize, Deserialize};\nuse sqlx::FromRow;\nuse uuid::Uuid;\n\nuse crate::types::Role;", pre)
}

func TestRecordName_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "OrderItems", Language{}.RecordName("order_items"))
			}
		}()
	}
	wg.Wait()
}

func TestPreamble(t *testing.T) {
	got := Language{}.Preamble([]string{"use a;", "use super::json;", "use b;"}, codegen.Options{})
	assert.Equal(t, "use a;\nuse b;\n\nuse super::json;", got)
}
