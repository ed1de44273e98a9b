package schema

// Table represents a database table as reported by information_schema.
// Columns is empty until the table has been selected for generation.
type Table struct {
	Schema  string
	Name    string
	Comment string
	Columns []Column
}

// Column represents a table column.
type Column struct {
	Name     string
	Position uint64 // 1-based ordinal position
	Type     string // raw COLUMN_TYPE descriptor, e.g. "int(10) unsigned"
	Nullable bool
	Comment  string
	Default  *string
	Key      string // COLUMN_KEY: PRI, UNI, MUL or empty
	Extra    string // EXTRA: auto_increment, on update ..., etc.
}
