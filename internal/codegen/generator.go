package codegen

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/sadopc/dbcodegen/internal/adapter"
)

// Result is the outcome of one successful generation run.
type Result struct {
	Source   []byte
	Schema   string
	Tables   []string
	Features Features
}

// Generator runs introspection, selection, emission and assembly for one
// schema. It is single-use and not safe for concurrent use.
type Generator struct {
	src      adapter.Introspector
	lang     Language
	settings Settings
	log      *zap.Logger
}

// NewGenerator returns a generator reading from src and rendering through
// lang. A nil logger discards log output.
func NewGenerator(src adapter.Introspector, lang Language, s Settings, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{src: src, lang: lang, settings: s, log: log.Named("codegen")}
}

// Generate produces the artifact for the connection's active schema.
//
// Introspection failures abort the run at once. Classification failures and
// name collisions are collected over every selected table and returned
// together, in which case no output is produced.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	schemaName, err := g.src.SchemaName(ctx)
	if err != nil {
		return nil, err
	}

	all, err := g.src.Tables(ctx, schemaName)
	if err != nil {
		return nil, err
	}
	g.log.Debug("tables introspected", zap.String("schema", schemaName), zap.Int("count", len(all)))

	s := g.settings
	if len(s.Only) > 0 && len(s.Exclude) > 0 {
		g.log.Warn("only_tables is set, exclude_tables is ignored", zap.Strings("exclude_tables", s.Exclude))
	}
	for _, name := range Missing(all, s.Only) {
		fields := []zap.Field{zap.String("table", name)}
		if hint := Suggest(name, all); hint != "" {
			fields = append(fields, zap.String("did_you_mean", hint))
		}
		g.log.Debug("table listed in only_tables not found, skipping", fields...)
	}

	selected := Select(all, s.Only, s.Exclude)
	emitter := NewEmitter(g.lang, s)
	g.log.Debug("reserved words",
		zap.String("version", emitter.Reserved().Version),
		zap.Int("count", emitter.Reserved().Len()),
	)

	var (
		records = make([]Record, 0, len(selected))
		names   = make([]string, 0, len(selected))
		owners  = make(map[string]string, len(selected))
		errs    error
	)
	for _, t := range selected {
		cols, err := g.src.Columns(ctx, t)
		if err != nil {
			return nil, err
		}
		t.Columns = cols

		rec, err := emitter.EmitRecord(t, cols)
		if err != nil {
			if !recoverable(err) {
				return nil, fmt.Errorf("render %s: %w", t.Name, err)
			}
			errs = multierr.Append(errs, err)
			continue
		}
		if first, ok := owners[rec.Name]; ok && first != t.Name {
			errs = multierr.Append(errs, &NameCollisionError{Name: rec.Name, First: first, Second: t.Name})
			continue
		}
		owners[rec.Name] = t.Name
		g.log.Debug("record emitted",
			zap.String("table", t.Name),
			zap.String("record", rec.Name),
			zap.Int("columns", len(cols)),
			zap.Stringer("features", rec.Features),
		)
		records = append(records, rec)
		names = append(names, t.Name)
	}
	if errs != nil {
		return nil, errs
	}

	src, err := Assemble(g.lang, records, s.Options)
	if err != nil {
		return nil, fmt.Errorf("assemble output: %w", err)
	}

	res := &Result{Source: src, Schema: schemaName, Tables: names}
	for _, r := range records {
		res.Features |= r.Features
	}
	g.log.Info("generation complete",
		zap.String("schema", schemaName),
		zap.String("target", g.lang.Name()),
		zap.Int("tables", len(names)),
	)
	return res, nil
}
