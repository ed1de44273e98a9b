package codegen

import (
	"strings"
)

// Assemble joins records, in the given order, under the import directives
// their combined features require, and hands the result to the language's
// finalizer.
func Assemble(lang Language, records []Record, opts Options) ([]byte, error) {
	var features Features
	for _, r := range records {
		features |= r.Features
	}

	var b strings.Builder
	b.WriteString(lang.Preamble(lang.Imports(features, opts), opts))
	for _, r := range records {
		b.WriteString("\n\n")
		b.WriteString(r.Text)
	}
	b.WriteString("\n")

	return lang.Finalize([]byte(b.String()))
}
