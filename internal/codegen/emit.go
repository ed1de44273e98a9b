package codegen

import (
	"go.uber.org/multierr"

	"github.com/sadopc/dbcodegen/internal/schema"
)

// Field is one resolved column, ready to be rendered.
type Field struct {
	Name     string
	Type     string
	Comment  string
	Column   schema.Column
	Features Features
}

// Record is the rendered declaration of one table.
type Record struct {
	Table    schema.Table
	Name     string
	Text     string
	Features Features
}

// Emitter resolves and renders tables for one language.
type Emitter struct {
	lang      Language
	reserved  ReservedWords
	aliases   map[string]string
	overrides Overrides
}

// NewEmitter returns an emitter rendering through lang with the overrides,
// aliases and reserved word extensions of s.
func NewEmitter(lang Language, s Settings) *Emitter {
	return &Emitter{
		lang:      lang,
		reserved:  lang.Reserved().With(s.ReservedWords...),
		aliases:   s.Aliases,
		overrides: s.Overrides,
	}
}

// Reserved returns the effective reserved word set.
func (e *Emitter) Reserved() ReservedWords { return e.reserved }

// Resolve turns one column of table into a field.
func (e *Emitter) Resolve(table string, col schema.Column) (Field, error) {
	ov, _ := e.overrides.Lookup(table, col.Name)
	typeName, features, err := ResolveType(e.lang, col, ov, e.aliases)
	if err != nil {
		return Field{}, &ClassificationError{Table: table, Column: col.Name, Type: col.Type, Cause: err}
	}
	return Field{
		Name:     e.lang.FieldName(col.Name, e.reserved),
		Type:     typeName,
		Comment:  collapseLines(col.Comment),
		Column:   col,
		Features: features,
	}, nil
}

// EmitRecord resolves every column of t and renders the record. All
// classification errors and field name collisions of the table are returned
// together; rendering is skipped when there are any.
func (e *Emitter) EmitRecord(t schema.Table, cols []schema.Column) (Record, error) {
	var (
		fields   = make([]Field, 0, len(cols))
		seen     = make(map[string]string, len(cols))
		features Features
		errs     error
	)
	for _, col := range cols {
		f, err := e.Resolve(t.Name, col)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if first, ok := seen[f.Name]; ok {
			errs = multierr.Append(errs, &NameCollisionError{Table: t.Name, Name: f.Name, First: first, Second: col.Name})
			continue
		}
		seen[f.Name] = col.Name
		features |= f.Features
		fields = append(fields, f)
	}
	if errs != nil {
		return Record{}, errs
	}

	t.Comment = collapseLines(t.Comment)
	text, err := e.lang.RenderRecord(t, fields)
	if err != nil {
		return Record{}, err
	}
	return Record{
		Table:    t,
		Name:     e.lang.RecordName(t.Name),
		Text:     text,
		Features: features,
	}, nil
}
