package codegen

import (
	"sort"
	"strings"
)

// ReservedWords is a versioned set of identifiers a language does not
// accept as field names without escaping.
type ReservedWords struct {
	Version string
	words   map[string]struct{}
}

// NewReservedWords builds a reserved word set.
func NewReservedWords(version string, words ...string) ReservedWords {
	r := ReservedWords{Version: version, words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		r.words[w] = struct{}{}
	}
	return r
}

// Contains reports whether name is reserved. Matching is case-sensitive.
func (r ReservedWords) Contains(name string) bool {
	_, ok := r.words[name]
	return ok
}

// With returns a copy of r extended with extra words. Blank entries are
// ignored. The receiver is not modified.
func (r ReservedWords) With(extra ...string) ReservedWords {
	out := ReservedWords{Version: r.Version, words: make(map[string]struct{}, len(r.words)+len(extra))}
	for w := range r.words {
		out.words[w] = struct{}{}
	}
	added := false
	for _, w := range extra {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		out.words[w] = struct{}{}
		added = true
	}
	if added {
		out.Version += "+config"
	}
	return out
}

// Words returns the reserved words in sorted order.
func (r ReservedWords) Words() []string {
	out := make([]string, 0, len(r.words))
	for w := range r.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of reserved words.
func (r ReservedWords) Len() int { return len(r.words) }
