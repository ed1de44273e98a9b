// Package theme provides the terminal styles used when dbcodegen writes to
// an interactive terminal: syntax colours for generated code, the rules
// table and the error report.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme holds lipgloss.Style values for every styled element.
type Theme struct {
	Name string

	// Generated code
	CodeKeyword   lipgloss.Style
	CodeType      lipgloss.Style
	CodeString    lipgloss.Style
	CodeNumber    lipgloss.Style
	CodeComment   lipgloss.Style
	CodeOperator  lipgloss.Style
	CodeFunction  lipgloss.Style
	CodeAttribute lipgloss.Style

	// Tables
	TableBorder lipgloss.Style
	TableHeader lipgloss.Style
	TableCell   lipgloss.Style

	// Reports
	ErrorTitle  lipgloss.Style
	ErrorText   lipgloss.Style
	WarningText lipgloss.Style
	SuccessText lipgloss.Style
	MutedText   lipgloss.Style
}

// ---------------------------------------------------------------------------
// Theme definitions
// ---------------------------------------------------------------------------

// newDefaultTheme builds the Default dark theme.
func newDefaultTheme() *Theme {
	return &Theme{
		Name: "default",

		CodeKeyword: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#569CD6")),
		CodeType: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4EC9B0")),
		CodeString: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CE9178")),
		CodeNumber: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#B5CEA8")),
		CodeComment: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#6A9955")),
		CodeOperator: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D4D4D4")),
		CodeFunction: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DCDCAA")),
		CodeAttribute: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C586C0")),

		TableBorder: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3C3C3C")),
		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#569CD6")).
			Padding(0, 1),
		TableCell: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D4D4D4")).
			Padding(0, 1),

		ErrorTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F44747")),
		ErrorText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F44747")),
		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCA700")),
		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6A9955")),
		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080")),
	}
}

// newLightTheme builds a light theme for bright terminal backgrounds.
func newLightTheme() *Theme {
	return &Theme{
		Name: "light",

		CodeKeyword: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0000FF")),
		CodeType: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#267F99")),
		CodeString: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A31515")),
		CodeNumber: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#098658")),
		CodeComment: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#008000")),
		CodeOperator: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1E1E1E")),
		CodeFunction: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#795E26")),
		CodeAttribute: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AF00DB")),

		TableBorder: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D4D4D4")),
		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0451A5")).
			Padding(0, 1),
		TableCell: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1E1E1E")).
			Padding(0, 1),

		ErrorTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#E51400")),
		ErrorText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E51400")),
		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#BF8803")),
		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#16825D")),
		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A0A0A0")),
	}
}

// newMonokaiTheme builds a Monokai-inspired theme.
func newMonokaiTheme() *Theme {
	return &Theme{
		Name: "monokai",

		CodeKeyword: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F92672")),
		CodeType: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#66D9EF")).
			Italic(true),
		CodeString: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E6DB74")),
		CodeNumber: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AE81FF")),
		CodeComment: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#75715E")),
		CodeOperator: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F92672")),
		CodeFunction: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6E22E")),
		CodeAttribute: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FD971F")),

		TableBorder: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#49483E")),
		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A6E22E")).
			Padding(0, 1),
		TableCell: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8F8F2")).
			Padding(0, 1),

		ErrorTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F92672")),
		ErrorText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F92672")),
		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E6DB74")),
		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6E22E")),
		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#75715E")),
	}
}

// ---------------------------------------------------------------------------
// Registry
// ---------------------------------------------------------------------------

// Themes maps theme names to their Theme definitions.
var Themes = map[string]*Theme{
	"default": newDefaultTheme(),
	"light":   newLightTheme(),
	"monokai": newMonokaiTheme(),
}

// Default returns the default dark theme.
func Default() *Theme {
	return Themes["default"]
}

// Get returns the theme identified by name. If no theme with that name exists
// it falls back to the default theme.
func Get(name string) *Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Default()
}
