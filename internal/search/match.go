// Package search locates entries in a pane by name.
package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// MatchKind reports how a name matched a query.
type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchPrefix
	MatchExact
)

// Matcher holds a case-folded query. A Matcher is not safe for concurrent use.
type Matcher struct {
	caser  cases.Caser
	folded string
}

// NewMatcher folds query once for repeated matching.
func NewMatcher(query string) *Matcher {
	m := &Matcher{caser: cases.Fold()}
	m.folded = m.caser.String(query)
	return m
}

// Empty reports whether the query has no characters.
func (m *Matcher) Empty() bool {
	return m.folded == ""
}

// Match compares name against the query ignoring case.
func (m *Matcher) Match(name string) MatchKind {
	if m.folded == "" {
		return MatchNone
	}
	folded := m.caser.String(name)
	switch {
	case folded == m.folded:
		return MatchExact
	case strings.HasPrefix(folded, m.folded):
		return MatchPrefix
	default:
		return MatchNone
	}
}

// Find returns the index of the first exact match of query in names, or the
// first prefix match when no name matches exactly. An empty query matches
// nothing.
func Find(names []string, query string) (int, bool) {
	m := NewMatcher(query)
	if m.Empty() {
		return -1, false
	}

	prefix := -1
	for i, name := range names {
		switch m.Match(name) {
		case MatchExact:
			return i, true
		case MatchPrefix:
			if prefix < 0 {
				prefix = i
			}
		}
	}
	return prefix, prefix >= 0
}
