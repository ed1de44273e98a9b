// Package adapter defines the schema introspection contract consumed by the
// code generator.
package adapter

import (
	"context"
	"errors"

	"github.com/sadopc/dbcodegen/internal/schema"
)

var (
	ErrConnect       = errors.New("connect to database")
	ErrIntrospection = errors.New("introspect schema")
	ErrNoSchema      = errors.New("missing database in database url")
)

// Introspector reads table and column metadata from a live database.
type Introspector interface {
	// SchemaName returns the name of the active schema (database) of the
	// connection. It fails with ErrNoSchema when none is selected.
	SchemaName(ctx context.Context) (string, error)

	// Tables lists the tables of schemaName. The order is whatever the
	// server returns and must not be relied upon.
	Tables(ctx context.Context, schemaName string) ([]schema.Table, error)

	// Columns lists the columns of t ordered by ordinal position.
	Columns(ctx context.Context, t schema.Table) ([]schema.Column, error)

	Close() error
}
