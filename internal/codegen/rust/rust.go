// Package rust renders records as serde and sqlx FromRow structs.
package rust

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sadopc/dbcodegen/internal/codegen"
	"github.com/sadopc/dbcodegen/internal/schema"
)

const derive = "#[derive(Debug, Clone, Deserialize, Serialize, FromRow)]"

// Reserved lists the Rust 2021 strict and reserved keywords. Every one of
// them except the path keywords can be used as a raw identifier.
var Reserved = codegen.NewReservedWords("rust/2021",
	"as", "async", "await", "break", "const", "continue", "dyn", "else", "enum",
	"extern", "false", "fn", "for", "if", "impl", "in", "let", "loop", "match",
	"mod", "move", "mut", "pub", "ref", "return", "static", "struct", "trait",
	"true", "type", "unsafe", "use", "where", "while",
	"abstract", "become", "box", "do", "final", "macro", "override", "priv",
	"try", "typeof", "unsized", "virtual", "yield",
)

// pathKeywords cannot be raw identifiers and get a trailing underscore.
var pathKeywords = map[string]bool{"crate": true, "self": true, "Self": true, "super": true}

func init() {
	codegen.Register(Language{})
}

// Language is the Rust target.
type Language struct{}

var _ codegen.Language = Language{}

func (Language) Name() string { return "rust" }

func (Language) TypeName(k codegen.Kind) string {
	switch k {
	case codegen.KindBool:
		return "bool"
	case codegen.KindInt8:
		return "i8"
	case codegen.KindInt16:
		return "i16"
	case codegen.KindInt32:
		return "i32"
	case codegen.KindInt64:
		return "i64"
	case codegen.KindUint8:
		return "u8"
	case codegen.KindUint16:
		return "u16"
	case codegen.KindUint32:
		return "u32"
	case codegen.KindUint64:
		return "u64"
	case codegen.KindFloat32:
		return "f32"
	case codegen.KindFloat64:
		return "f64"
	case codegen.KindText:
		return "String"
	case codegen.KindBytes:
		return "Vec<u8>"
	case codegen.KindTimestamp:
		return "DateTime<Local>"
	case codegen.KindDateTime:
		return "NaiveDateTime"
	case codegen.KindDate:
		return "NaiveDate"
	case codegen.KindTime:
		return "NaiveTime"
	case codegen.KindDecimal:
		return "Decimal"
	case codegen.KindJSON:
		return "Json<serde_json::Value>"
	default:
		return "()"
	}
}

func (Language) Optional(typeName string) string { return "Option<" + typeName + ">" }

func (Language) JSONWrapper(inner string) string { return "Json<" + inner + ">" }

func (Language) Reserved() codegen.ReservedWords { return Reserved }

// FieldName keeps the column name and escapes reserved words with the raw
// identifier prefix.
func (Language) FieldName(column string, reserved codegen.ReservedWords) string {
	switch {
	case pathKeywords[column]:
		return column + "_"
	case reserved.Contains(column):
		return "r#" + column
	default:
		return column
	}
}

// RecordName converts a table name to UpperCamelCase.
func (Language) RecordName(table string) string {
	title := cases.Title(language.Und)
	words := codegen.SplitWords(table)
	for i, w := range words {
		words[i] = title.String(w)
	}
	return strings.Join(words, "")
}

func (l Language) RenderRecord(t schema.Table, fields []codegen.Field) (string, error) {
	var b strings.Builder
	b.WriteString("/// ")
	b.WriteString(t.Comment)
	b.WriteString("\n")
	b.WriteString(derive)
	b.WriteString("\npub struct ")
	b.WriteString(l.RecordName(t.Name))
	b.WriteString(" {\n")
	for _, f := range fields {
		b.WriteString("    /// ")
		b.WriteString(f.Comment)
		b.WriteString("\n    pub ")
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(f.Type)
		b.WriteString(",\n")
	}
	b.WriteString("}")
	return b.String(), nil
}

// Imports returns the serde and FromRow baseline plus the JSON support when
// any record needs it. Date, time and decimal features are only translated
// when opts.FeatureImports is set. opts.ExtraImports follow as use
// declarations.
func (Language) Imports(features codegen.Features, opts codegen.Options) []string {
	uses := []string{
		"use serde::{Serialize, Deserialize};",
		"use sqlx::FromRow;",
	}
	if opts.FeatureImports {
		if features.Has(codegen.FeatureDate) {
			uses = append(uses, "use chrono::NaiveDate;")
		}
		if features.Has(codegen.FeatureTime) {
			uses = append(uses, "use chrono::NaiveTime;")
		}
		if features.Has(codegen.FeatureDateTime) {
			uses = append(uses, "use chrono::NaiveDateTime;")
		}
		if features.Has(codegen.FeatureTimestamp) {
			uses = append(uses, "use chrono::{DateTime, Local};")
		}
		if features.Has(codegen.FeatureDecimal) {
			uses = append(uses, "use sqlx::types::Decimal;")
		}
	}
	if features.Has(codegen.FeatureJSON) {
		uses = append(uses, "use sqlx::types::Json;", "use super::json;")
	}
	for _, p := range opts.ExtraImports {
		p = strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(p), "use "), ";")
		if p != "" {
			uses = append(uses, "use "+p+";")
		}
	}
	return uses
}

// Preamble lists the use declarations, with local module imports in a
// separate group.
func (Language) Preamble(uses []string, _ codegen.Options) string {
	var external, local []string
	for _, u := range uses {
		if strings.HasPrefix(u, "use super::") || strings.HasPrefix(u, "use crate::") {
			local = append(local, u)
		} else {
			external = append(external, u)
		}
	}
	out := strings.Join(external, "\n")
	if len(local) > 0 {
		out += "\n\n" + strings.Join(local, "\n")
	}
	return out
}

// Finalize returns src unchanged.
func (Language) Finalize(src []byte) ([]byte, error) { return src, nil }
