package codegen

// Settings are the generation options taken from configuration.
type Settings struct {
	// Only lists the tables to emit, in output order. When non-empty,
	// Exclude is ignored.
	Only []string
	// Exclude lists tables to leave out.
	Exclude []string
	// Aliases maps a default rendered type name to its replacement.
	Aliases map[string]string
	// Overrides holds per-column type overrides.
	Overrides Overrides
	// ReservedWords extends the language's reserved identifiers.
	ReservedWords []string

	Options
}
