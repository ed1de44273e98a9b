// Package sqlcivil wraps the civil date and time types so generated Go
// records can scan MySQL DATE, TIME and DATETIME columns. Each wrapper
// implements sql.Scanner and driver.Valuer and accepts both the time.Time
// values the driver returns with parseTime and the raw text form.
package sqlcivil

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/golang-sql/civil"
)

var (
	_ sql.Scanner   = (*Date)(nil)
	_ driver.Valuer = Date{}
	_ sql.Scanner   = (*Time)(nil)
	_ driver.Valuer = Time{}
	_ sql.Scanner   = (*DateTime)(nil)
	_ driver.Valuer = DateTime{}
)

// Date is a DATE column.
type Date struct {
	civil.Date
}

// Scan accepts time.Time, []byte and string. Use *Date for nullable
// columns; scanning NULL into a Date is an error.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Date = civil.DateOf(v)
		return nil
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	default:
		return scanError(src, "Date")
	}
}

func (d *Date) parse(s string) error {
	v, err := civil.ParseDate(s)
	if err != nil {
		return fmt.Errorf("sqlcivil: parse date: %w", err)
	}
	d.Date = v
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Date.String(), nil
}

// Time is a TIME column. Values outside 00:00:00 to 23:59:59 cannot be
// represented and fail to scan.
type Time struct {
	civil.Time
}

func (t *Time) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		t.Time = civil.TimeOf(v)
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	default:
		return scanError(src, "Time")
	}
}

func (t *Time) parse(s string) error {
	v, err := civil.ParseTime(s)
	if err != nil {
		return fmt.Errorf("sqlcivil: parse time: %w", err)
	}
	t.Time = v
	return nil
}

func (t Time) Value() (driver.Value, error) {
	return t.Time.String(), nil
}

// DateTime is a DATETIME column.
type DateTime struct {
	civil.DateTime
}

func (dt *DateTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		dt.DateTime = civil.DateTimeOf(v)
		return nil
	case []byte:
		return dt.parse(string(v))
	case string:
		return dt.parse(v)
	default:
		return scanError(src, "DateTime")
	}
}

// parse accepts MySQL's space separated form as well as RFC 3339 style "T".
func (dt *DateTime) parse(s string) error {
	v, err := civil.ParseDateTime(strings.Replace(s, " ", "T", 1))
	if err != nil {
		return fmt.Errorf("sqlcivil: parse datetime: %w", err)
	}
	dt.DateTime = v
	return nil
}

func (dt DateTime) Value() (driver.Value, error) {
	return dt.Date.String() + " " + dt.Time.String(), nil
}

func scanError(src any, into string) error {
	return fmt.Errorf("sqlcivil: cannot scan %T into %s", src, into)
}
