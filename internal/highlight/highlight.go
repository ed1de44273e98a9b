// Package highlight colours generated source for terminal output.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/dbcodegen/internal/theme"
)

// Highlighter tokenises source text using chroma and renders it with lipgloss
// styles from a theme.
type Highlighter struct {
	lexer chroma.Lexer
}

// New creates a Highlighter for the language a target emits. Target names
// are chroma lexer aliases ("go", "rust"); unknown targets fall back to the
// plain-text lexer.
func New(target string) *Highlighter {
	l := lexers.Get(target)
	if l == nil {
		l = lexers.Fallback
	}
	l = chroma.Coalesce(l)
	return &Highlighter{lexer: l}
}

// Highlight returns src with each token styled from th. Newlines are emitted
// unstyled so line structure survives.
func (h *Highlighter) Highlight(src string, th *theme.Theme) string {
	if th == nil || src == "" {
		return src
	}

	iter, err := h.lexer.Tokenise(nil, src)
	if err != nil {
		return src
	}

	var b strings.Builder
	b.Grow(len(src) * 2)

	for _, tok := range iter.Tokens() {
		value := tok.Value
		if value == "" {
			continue
		}

		style, ok := styleFor(tok.Type, th)
		if !ok {
			b.WriteString(value)
			continue
		}

		if strings.Contains(value, "\n") {
			lines := strings.Split(value, "\n")
			for i, line := range lines {
				if line != "" {
					b.WriteString(style.Render(line))
				}
				if i < len(lines)-1 {
					b.WriteByte('\n')
				}
			}
		} else {
			b.WriteString(style.Render(value))
		}
	}

	out := b.String()
	// Some lexers append a newline to unterminated input.
	if !strings.HasSuffix(src, "\n") {
		out = strings.TrimSuffix(out, "\n")
	}
	return out
}

// styleFor maps a chroma token type to a theme style. The second return
// value is false when the token passes through unstyled.
func styleFor(tt chroma.TokenType, th *theme.Theme) (lipgloss.Style, bool) {
	switch {
	// Rust attributes lex as preprocessor comments.
	case tt == chroma.CommentPreproc:
		return th.CodeAttribute, true
	case tt == chroma.KeywordType || tt == chroma.NameBuiltin || tt == chroma.NameClass:
		return th.CodeType, true
	case tt == chroma.NameFunction:
		return th.CodeFunction, true
	case tt == chroma.LiteralStringDoc:
		return th.CodeComment, true
	case tt.InCategory(chroma.Keyword):
		return th.CodeKeyword, true
	case tt.InSubCategory(chroma.LiteralString):
		return th.CodeString, true
	case tt.InSubCategory(chroma.LiteralNumber):
		return th.CodeNumber, true
	case tt.InCategory(chroma.Comment):
		return th.CodeComment, true
	case tt.InCategory(chroma.Operator):
		return th.CodeOperator, true
	default:
		return lipgloss.Style{}, false
	}
}
