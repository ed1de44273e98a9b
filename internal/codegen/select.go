package codegen

import (
	"slices"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/sadopc/dbcodegen/internal/schema"
)

// Select narrows the introspected tables.
//
// With a non-empty only list the result holds exactly the named tables in
// list order. Names without a matching table are skipped without error and
// repeated names are emitted once per occurrence. Otherwise every table not
// named in exclude is returned in introspection order.
func Select(all []schema.Table, only, exclude []string) []schema.Table {
	if len(only) > 0 {
		byName := make(map[string]schema.Table, len(all))
		for _, t := range all {
			byName[t.Name] = t
		}
		out := make([]schema.Table, 0, len(only))
		for _, name := range only {
			if t, ok := byName[name]; ok {
				out = append(out, t)
			}
		}
		return out
	}

	out := make([]schema.Table, 0, len(all))
	for _, t := range all {
		if slices.Contains(exclude, t.Name) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Missing returns the names in only that match no table, in list order.
func Missing(all []schema.Table, only []string) []string {
	var missing []string
	for _, name := range only {
		found := slices.ContainsFunc(all, func(t schema.Table) bool { return t.Name == name })
		if !found {
			missing = append(missing, name)
		}
	}
	return missing
}

// tableNames implements fuzzy.Source over lower-cased table names.
type tableNames []string

func (n tableNames) String(i int) string { return n[i] }
func (n tableNames) Len() int            { return len(n) }

// Suggest returns the table name closest to name, or "" when nothing is
// similar enough.
func Suggest(name string, all []schema.Table) string {
	if name == "" || len(all) == 0 {
		return ""
	}
	lower := make(tableNames, len(all))
	for i, t := range all {
		lower[i] = strings.ToLower(t.Name)
	}

	matches := fuzzy.FindFrom(strings.ToLower(name), lower)
	if len(matches) == 0 {
		return ""
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return all[matches[0].Index].Name
}
