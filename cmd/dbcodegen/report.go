package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/sadopc/dbcodegen/internal/codegen"
	"github.com/sadopc/dbcodegen/internal/theme"
)

// useColor reports whether output written to w should be styled.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func paint(style lipgloss.Style, s string, colored bool) string {
	if !colored {
		return s
	}
	return style.Render(s)
}

// reportError writes err to w. Classification failures and name collisions
// are listed one per line.
func reportError(w io.Writer, err error, th *theme.Theme, colored bool) {
	cls := codegen.ClassificationErrors(err)
	collisions := codegen.NameCollisions(err)
	if len(cls) == 0 && len(collisions) == 0 {
		fmt.Fprintf(w, "%s %s\n", paint(th.ErrorTitle, "Error:", colored), paint(th.ErrorText, err.Error(), colored))
		return
	}

	if len(cls) > 0 {
		title := fmt.Sprintf("Error: %d %s could not be classified", len(cls), plural(len(cls), "column", "columns"))
		fmt.Fprintln(w, paint(th.ErrorTitle, title, colored))
		for _, ce := range cls {
			fmt.Fprintf(w, "  %s %s\n",
				paint(th.ErrorText, ce.Table+"."+ce.Column, colored),
				paint(th.MutedText, fmt.Sprintf("(%s)", ce.Type), colored),
			)
		}
		fmt.Fprintln(w, paint(th.WarningText, "Hint: set custom_type for these columns.", colored))
	}

	if len(collisions) > 0 {
		title := fmt.Sprintf("Error: %d name %s", len(collisions), plural(len(collisions), "collision", "collisions"))
		fmt.Fprintln(w, paint(th.ErrorTitle, title, colored))
		for _, ce := range collisions {
			fmt.Fprintf(w, "  %s\n", paint(th.ErrorText, ce.Error(), colored))
		}
		fmt.Fprintln(w, paint(th.WarningText, "Hint: rename one of the columns or tables, or leave the table out.", colored))
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// renderRules renders the classifier decision table with the type names
// lang produces for each kind.
func renderRules(lang codegen.Language, th *theme.Theme, colored bool) string {
	var rows [][]string
	for _, r := range codegen.Rules() {
		rows = append(rows, []string{r.Pattern(), r.Kind.String(), lang.TypeName(r.Kind)})
		if r.Unsigned != codegen.KindInvalid {
			rows = append(rows, []string{r.Pattern() + " + UNSIGNED", r.Unsigned.String(), lang.TypeName(r.Unsigned)})
		}
	}

	plain := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("PATTERN", "KIND", lang.Name()).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case !colored:
				return plain
			case row == table.HeaderRow:
				return th.TableHeader
			default:
				return th.TableCell
			}
		})
	if colored {
		t = t.BorderStyle(th.TableBorder)
	}
	return t.String()
}
