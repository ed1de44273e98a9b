// Package golang renders records as Go structs.
package golang

import (
	"bytes"
	"fmt"
	"go/format"
	"go/parser"
	"go/token"
	"slices"
	"strconv"
	"strings"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/go/ast/astutil"

	"github.com/sadopc/dbcodegen/internal/codegen"
	"github.com/sadopc/dbcodegen/internal/schema"
)

const (
	// Header marks the output as generated.
	Header = "// Code generated by dbcodegen. DO NOT EDIT."

	// DefaultPackage is used when no package name is configured.
	DefaultPackage = "models"

	sqlcivilPkg = "github.com/sadopc/dbcodegen/pkg/sqlcivil"
	decimalPkg  = "github.com/shopspring/decimal"
	sqljsonPkg  = "github.com/sadopc/dbcodegen/pkg/sqljson"
)

// Reserved holds identifiers a generated field must not use. Field names
// are exported, so Go keywords cannot collide; the method set of every
// record can.
var Reserved = codegen.NewReservedWords("go/1", "TableName")

func init() {
	codegen.Register(Language{})
}

// Language is the Go target.
type Language struct{}

var _ codegen.Language = Language{}

func (Language) Name() string { return "go" }

func (Language) TypeName(k codegen.Kind) string {
	switch k {
	case codegen.KindBool:
		return "bool"
	case codegen.KindInt8:
		return "int8"
	case codegen.KindInt16:
		return "int16"
	case codegen.KindInt32:
		return "int32"
	case codegen.KindInt64:
		return "int64"
	case codegen.KindUint8:
		return "uint8"
	case codegen.KindUint16:
		return "uint16"
	case codegen.KindUint32:
		return "uint32"
	case codegen.KindUint64:
		return "uint64"
	case codegen.KindFloat32:
		return "float32"
	case codegen.KindFloat64:
		return "float64"
	case codegen.KindText:
		return "string"
	case codegen.KindBytes:
		return "[]byte"
	case codegen.KindTimestamp:
		return "time.Time"
	case codegen.KindDateTime:
		return "sqlcivil.DateTime"
	case codegen.KindDate:
		return "sqlcivil.Date"
	case codegen.KindTime:
		return "sqlcivil.Time"
	case codegen.KindDecimal:
		return "decimal.Decimal"
	case codegen.KindJSON:
		return "sqljson.Raw"
	default:
		return "any"
	}
}

func (Language) Optional(typeName string) string { return "*" + typeName }

func (Language) JSONWrapper(inner string) string { return "sqljson.JSON[" + inner + "]" }

func (Language) Reserved() codegen.ReservedWords { return Reserved }

// FieldName renders a column as an exported field name. A name in reserved
// gets a trailing underscore.
func (Language) FieldName(column string, reserved codegen.ReservedWords) string {
	name := pascal(column)
	if reserved.Contains(name) || reserved.Contains(column) {
		name += "_"
	}
	return name
}

func (Language) RecordName(table string) string { return pascal(table) }

// RenderRecord renders the struct of t and its TableName method.
func (l Language) RenderRecord(t schema.Table, fields []codegen.Field) (string, error) {
	name := l.RecordName(t.Name)

	decl := jen.Type().Id(name).StructFunc(func(g *jen.Group) {
		for _, f := range fields {
			if f.Comment != "" {
				g.Comment(f.Comment)
			}
			g.Id(f.Name).Id(f.Type).Tag(map[string]string{
				"db":   f.Column.Name,
				"json": f.Column.Name,
			})
		}
	})
	method := jen.Func().Params(jen.Id(name)).Id("TableName").Params().String().Block(
		jen.Return(jen.Lit(t.Name)),
	)

	var b strings.Builder
	if t.Comment != "" {
		fmt.Fprintf(&b, "// %s %s\n", name, t.Comment)
	}
	if err := decl.Render(&b); err != nil {
		return "", fmt.Errorf("render struct %s: %w", name, err)
	}
	fmt.Fprintf(&b, "\n\n// TableName returns the name of the table backing %s.\n", name)
	if err := method.Render(&b); err != nil {
		return "", fmt.Errorf("render struct %s: %w", name, err)
	}
	return b.String(), nil
}

// Imports returns the import paths features require followed by
// opts.ExtraImports. Every flag maps to an import; paths left unused by type
// aliases are pruned in Finalize.
func (Language) Imports(features codegen.Features, opts codegen.Options) []string {
	var paths []string
	if features.Has(codegen.FeatureTimestamp) {
		paths = append(paths, "time")
	}
	if features&(codegen.FeatureDate|codegen.FeatureTime|codegen.FeatureDateTime) != 0 {
		paths = append(paths, sqlcivilPkg)
	}
	if features.Has(codegen.FeatureDecimal) {
		paths = append(paths, decimalPkg)
	}
	if features.Has(codegen.FeatureJSON) {
		paths = append(paths, sqljsonPkg)
	}
	for _, p := range opts.ExtraImports {
		if p = strings.TrimSpace(p); p != "" && !slices.Contains(paths, p) {
			paths = append(paths, p)
		}
	}
	return paths
}

// Preamble renders the generated-code header, the package clause and the
// import block. Standard library imports come first.
func (Language) Preamble(paths []string, opts codegen.Options) string {
	pkg := opts.Package
	if pkg == "" {
		pkg = DefaultPackage
	}

	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n\npackage ")
	b.WriteString(pkg)

	if len(paths) == 0 {
		return b.String()
	}

	var std, ext []string
	for _, p := range paths {
		if strings.Contains(p, ".") {
			ext = append(ext, p)
		} else {
			std = append(std, p)
		}
	}
	b.WriteString("\n\nimport (\n")
	for _, p := range std {
		fmt.Fprintf(&b, "\t%q\n", p)
	}
	if len(std) > 0 && len(ext) > 0 {
		b.WriteString("\n")
	}
	for _, p := range ext {
		fmt.Fprintf(&b, "\t%q\n", p)
	}
	b.WriteString(")")
	return b.String()
}

// featurePaths are the imports Finalize may remove. Extra imports from the
// configuration are kept as given.
var featurePaths = map[string]bool{
	"time":      true,
	sqlcivilPkg: true,
	decimalPkg:  true,
	sqljsonPkg:  true,
}

// Finalize removes feature imports src does not reference and formats it.
// Imports are never added, so a qualifier in a custom type needs a matching
// extra import.
func (Language) Finalize(src []byte) ([]byte, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "models.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}

	var unused []string
	for _, imp := range f.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			return nil, fmt.Errorf("format generated code: %w", err)
		}
		if featurePaths[path] && !astutil.UsesImport(f, path) {
			unused = append(unused, path)
		}
	}
	for _, path := range unused {
		astutil.DeleteImport(fset, f, path)
	}

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, f); err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return out, nil
}
