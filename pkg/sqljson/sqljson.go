// Package sqljson provides the JSON column types used by generated Go
// records. Both types implement sql.Scanner and driver.Valuer, so they can
// be scanned from and written to MySQL JSON columns directly.
package sqljson

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/goccy/go-json"
)

var (
	_ sql.Scanner   = (*JSON[any])(nil)
	_ driver.Valuer = JSON[any]{}
	_ sql.Scanner   = (*Raw)(nil)
	_ driver.Valuer = Raw(nil)
)

// JSON holds a column value decoded into T.
type JSON[T any] struct {
	V T
}

// Scan decodes a JSON document. A NULL resets V to its zero value.
func (j *JSON[T]) Scan(src any) error {
	var zero T
	switch v := src.(type) {
	case nil:
		j.V = zero
		return nil
	case []byte:
		return j.decode(v)
	case string:
		return j.decode([]byte(v))
	default:
		return fmt.Errorf("sqljson: cannot scan %T into JSON[%T]", src, zero)
	}
}

func (j *JSON[T]) decode(data []byte) error {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("sqljson: decode: %w", err)
	}
	j.V = v
	return nil
}

// Value encodes V as a JSON document.
func (j JSON[T]) Value() (driver.Value, error) {
	data, err := json.Marshal(j.V)
	if err != nil {
		return nil, fmt.Errorf("sqljson: encode: %w", err)
	}
	return data, nil
}

func (j JSON[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.V)
}

func (j *JSON[T]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &j.V)
}

// Raw is an undecoded JSON document. A nil Raw is SQL NULL.
type Raw []byte

// Scan copies the column bytes; drivers may reuse their buffers.
func (r *Raw) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*r = nil
	case []byte:
		*r = bytes.Clone(v)
	case string:
		*r = Raw(v)
	default:
		return fmt.Errorf("sqljson: cannot scan %T into Raw", src)
	}
	return nil
}

// Value returns the document bytes, or nil for NULL. Invalid JSON is
// rejected before it reaches the database.
func (r Raw) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	if !json.Valid(r) {
		return nil, fmt.Errorf("sqljson: invalid JSON document")
	}
	return []byte(r), nil
}

func (r Raw) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

func (r *Raw) UnmarshalJSON(data []byte) error {
	if r == nil {
		return fmt.Errorf("sqljson: UnmarshalJSON on nil pointer")
	}
	*r = bytes.Clone(data)
	return nil
}
