// Package orch orchestrates script injection: it describes scripts as
// entries, wraps function source into self-invoking injectable text, and
// renders entries into script tags.
package orch

import (
	"fmt"
	"html"
	"strings"
	"sync"
)

// ScriptEntry describes a single script, either a reference to an external
// resource or a piece of inline code. An empty field means the field is
// absent. Nothing enforces that only one field is set, the classifiers
// below report each field independently.
type ScriptEntry struct {
	Src        string `json:"src,omitempty"`
	InlineCode string `json:"inlineCode,omitempty"`
}

// IsExternal reports whether the entry points to an external resource.
func (e ScriptEntry) IsExternal() bool {
	return e.Src != ""
}

// IsInline reports whether the entry carries inline code.
func (e ScriptEntry) IsInline() bool {
	return e.InlineCode != ""
}

// Render the entry as a script tag. When both fields are set the external
// reference wins, same as a browser ignoring the body of a script tag that
// has a src attribute. A fully absent entry renders to the empty string.
// A literal "</script>" in inline code is escaped so it can't terminate
// the tag early.
func (e ScriptEntry) Render() string {
	if e.IsExternal() {
		return fmt.Sprintf(`<script src="%s"></script>`, html.EscapeString(e.Src))
	}
	if e.IsInline() {
		code := strings.ReplaceAll(e.InlineCode, "</script>", `<\/script>`)
		return fmt.Sprintf(`<script>%s</script>`, code)
	}
	return ""
}

// Set is a thread-safe collection of script entries.
type Set struct {
	mu      sync.Mutex
	entries []ScriptEntry
}

// NewSet creates a Set with the initial entries.
func NewSet(entries ...ScriptEntry) *Set {
	return &Set{entries: entries}
}

// Add entries to the set.
func (s *Set) Add(entries ...ScriptEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entries...)
}

// List returns a copy of the current entries.
func (s *Set) List() []ScriptEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]ScriptEntry, len(s.entries))
	copy(list, s.entries)
	return list
}

// Len of the set.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
