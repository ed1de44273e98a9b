package codegen

import (
	"fmt"
	"sort"

	"github.com/sadopc/dbcodegen/internal/schema"
)

// Language renders resolved fields and records for one target language.
type Language interface {
	// Name is the registry key, e.g. "go" or "rust".
	Name() string

	// TypeName returns the default rendering of a kind.
	TypeName(k Kind) string
	// Optional wraps a type name for a nullable column.
	Optional(typeName string) string
	// JSONWrapper wraps the inner type of a JSON-encoded column.
	JSONWrapper(inner string) string

	// Reserved returns the identifiers that must be escaped as field names.
	Reserved() ReservedWords
	// FieldName renders a column name as a field identifier, escaping it
	// when it collides with reserved.
	FieldName(column string, reserved ReservedWords) string
	// RecordName renders a table name as a type identifier.
	RecordName(table string) string
	// RenderRecord renders the declaration of one record.
	RenderRecord(table schema.Table, fields []Field) (string, error)

	// Imports returns the import directives required by features.
	Imports(features Features, opts Options) []string
	// Preamble renders everything that precedes the first record.
	Preamble(imports []string, opts Options) string
	// Finalize post-processes the assembled artifact.
	Finalize(src []byte) ([]byte, error)
}

// Options are the output settings shared by every language.
type Options struct {
	// Package is the package or module name for languages that need one.
	Package string
	// FeatureImports translates every feature flag into an import even for
	// languages whose default is to import the JSON support only.
	FeatureImports bool
	// ExtraImports are added to the preamble as given: Go import paths, or
	// Rust paths to bring into scope. Custom types that reference other
	// packages need them.
	ExtraImports []string
}

// Registry maps a language name to its renderer. Renderers add themselves
// from an init function.
var Registry = map[string]Language{}

// Register adds a language to the registry.
func Register(l Language) {
	Registry[l.Name()] = l
}

// Lookup returns the language registered under name.
func Lookup(name string) (Language, error) {
	l, ok := Registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownLanguage, name, Languages())
	}
	return l, nil
}

// Languages returns the sorted registered language names.
func Languages() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
