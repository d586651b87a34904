// Package moderation flags user text containing disallowed content.
package moderation

import "strings"

// defaultWords is the built-in disallowed set. Matching is substring
// based, so entries should be lower case.
var defaultWords = []string{"badword1", "badword2", "idiot", "stupid"}

// Filter is a pure predicate over free text. It performs no I/O and is
// safe for concurrent use.
type Filter struct {
	words []string
}

// NewFilter creates a filter over the built-in word set plus any extra
// words from configuration.
func NewFilter(extra ...string) *Filter {
	words := make([]string, 0, len(defaultWords)+len(extra))
	words = append(words, defaultWords...)
	for _, w := range extra {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			words = append(words, w)
		}
	}
	return &Filter{words: words}
}

// Flagged reports whether any disallowed word occurs in text as a
// case-insensitive substring.
func (f *Filter) Flagged(text string) bool {
	lowered := strings.ToLower(text)
	for _, w := range f.words {
		if strings.Contains(lowered, w) {
			return true
		}
	}
	return false
}
