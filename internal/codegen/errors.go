package codegen

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

var (
	// ErrUnknownType indicates a column type descriptor no classifier rule accepts.
	ErrUnknownType = errors.New("unknown column type")
	// ErrUnknownLanguage indicates a target language that is not registered.
	ErrUnknownLanguage = errors.New("unknown target language")
	// ErrNameCollision indicates two columns or tables rendering to the same
	// identifier.
	ErrNameCollision = errors.New("name collision")
)

// ClassificationError reports a column whose type could not be resolved.
type ClassificationError struct {
	Table  string
	Column string
	Type   string
	Cause  error
}

func (e *ClassificationError) Error() string {
	var b strings.Builder
	b.WriteString("classify ")
	b.WriteString(e.Table)
	b.WriteByte('.')
	b.WriteString(e.Column)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *ClassificationError) Unwrap() error {
	return e.Cause
}

// ClassificationErrors flattens err into the classification errors it
// carries. Other errors are skipped.
func ClassificationErrors(err error) []*ClassificationError {
	var out []*ClassificationError
	for _, e := range multierr.Errors(err) {
		var ce *ClassificationError
		if errors.As(e, &ce) {
			out = append(out, ce)
		}
	}
	return out
}

// NameCollisionError reports two source names that render to the same
// identifier. Table is empty for record names, which collide across tables.
type NameCollisionError struct {
	Table  string
	Name   string
	First  string
	Second string
}

func (e *NameCollisionError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("record %s: tables %q and %q collide", e.Name, e.First, e.Second)
	}
	return fmt.Sprintf("field %s of %s: columns %q and %q collide", e.Name, e.Table, e.First, e.Second)
}

func (e *NameCollisionError) Is(target error) bool {
	return target == ErrNameCollision
}

// NameCollisions flattens err into the name collisions it carries.
func NameCollisions(err error) []*NameCollisionError {
	var out []*NameCollisionError
	for _, e := range multierr.Errors(err) {
		var ce *NameCollisionError
		if errors.As(e, &ce) {
			out = append(out, ce)
		}
	}
	return out
}

// recoverable reports whether every error in err is a classification
// error or a name collision, which are collected instead of aborting a run.
func recoverable(err error) bool {
	for _, e := range multierr.Errors(err) {
		var ce *ClassificationError
		if !errors.As(e, &ce) && !errors.Is(e, ErrNameCollision) {
			return false
		}
	}
	return err != nil
}
