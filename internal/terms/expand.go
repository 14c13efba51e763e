// Package terms turns a loose food keyword into the set of query strings
// worth sending to the places provider.
package terms

import (
	"strings"
	"unicode/utf8"

	"restaurant_scout/internal/text"
)

// Expander is read-only after construction and safe for concurrent use.
type Expander struct {
	table   map[string][]string
	generic []string
}

var std = New(expansions)

// Default returns the process-wide expander backed by the built-in table.
func Default() *Expander { return std }

// New builds an expander over a custom synonym table. Keys are lower-cased.
func New(table map[string][]string) *Expander {
	t := make(map[string][]string, len(table))
	for k, v := range table {
		t[text.Lower(strings.TrimSpace(k))] = append([]string(nil), v...)
	}
	return &Expander{table: t, generic: append([]string(nil), genericTerms...)}
}

// Expand returns the trimmed, lower-cased term followed by its synonyms, a
// derived agentive form and the generic eatery fallbacks. The result holds
// no duplicates; order is stable but carries no meaning. Blank input yields nil.
func (e *Expander) Expand(term string) []string {
	base := text.Lower(strings.TrimSpace(term))
	if base == "" {
		return nil
	}
	out := newSet()
	out.add(base)
	out.add(e.table[base]...)

	if !HasAgentiveSuffix(base) {
		out.add(Agentive(base)...)
	}
	if !e.IsGeneric(base) {
		out.add(e.generic...)
	}
	return out.items
}

// IsGeneric reports whether term names a generic eatery category.
func (e *Expander) IsGeneric(term string) bool {
	t := text.Lower(strings.TrimSpace(term))
	for _, g := range e.generic {
		if t == g {
			return true
		}
	}
	return false
}

// HasAgentiveSuffix reports whether word already ends like "köfteci" or "kebapçısı".
func HasAgentiveSuffix(word string) bool {
	for _, s := range agentiveSuffixes {
		if strings.HasSuffix(word, s) {
			return true
		}
	}
	return false
}

// Agentive derives two candidate agentive forms. Words ending in a,e,i,o,u
// take ci/cisi, anything else takes cı/cısı.
func Agentive(word string) []string {
	if word == "" {
		return nil
	}
	last, _ := utf8.DecodeLastRuneInString(word)
	if strings.ContainsRune(suffixVowels, last) {
		return []string{word + "ci", word + "cisi"}
	}
	return []string{word + "cı", word + "cısı"}
}

type set struct {
	seen  map[string]struct{}
	items []string
}

func newSet() *set { return &set{seen: map[string]struct{}{}} }

func (s *set) add(vs ...string) {
	for _, v := range vs {
		if v == "" {
			continue
		}
		if _, ok := s.seen[v]; ok {
			continue
		}
		s.seen[v] = struct{}{}
		s.items = append(s.items, v)
	}
}
