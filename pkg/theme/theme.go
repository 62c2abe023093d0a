// Package theme resolves symbolic color tokens to concrete color strings.
//
// Tokens use the CSS custom-property spelling ("--chart-mixbar"). The engine
// never holds colors itself: it asks a [Resolver] at draw time, so swapping
// the active table through [Switch] changes the next frame without
// rebuilding anything.
package theme

import (
	"maps"
	"strings"
	"sync/atomic"
)

// Resolver maps a token to a color. Unknown tokens resolve to "".
type Resolver interface {
	Resolve(token string) string
}

// ResolverFunc adapts a function to [Resolver].
type ResolverFunc func(token string) string

// Resolve calls f(token).
func (f ResolverFunc) Resolve(token string) string { return f(token) }

// Table is a static token table.
type Table map[string]string

// Resolve looks the token up, with or without its leading "--".
func (t Table) Resolve(token string) string {
	if c, ok := t[token]; ok {
		return c
	}
	if c, ok := t["--"+strings.TrimPrefix(token, "--")]; ok {
		return c
	}
	return t[strings.TrimPrefix(token, "--")]
}

// Merge returns a copy of t overlaid with other.
func (t Table) Merge(other Table) Table {
	out := maps.Clone(t)
	if out == nil {
		out = Table{}
	}
	maps.Copy(out, other)
	return out
}

// Or resolves token with r and falls back when the result is empty.
func Or(r Resolver, token, fallback string) string {
	if r == nil {
		return fallback
	}
	if c := r.Resolve(token); c != "" {
		return c
	}
	return fallback
}

// Switch is a Resolver whose backing table can be replaced while frames are
// being drawn. The zero value resolves nothing.
type Switch struct {
	cur atomic.Pointer[Table]
}

// NewSwitch returns a Switch starting on t.
func NewSwitch(t Table) *Switch {
	s := &Switch{}
	s.Use(t)
	return s
}

// Use installs t as the active table.
func (s *Switch) Use(t Table) {
	c := maps.Clone(t)
	s.cur.Store(&c)
}

// Resolve resolves against the active table.
func (s *Switch) Resolve(token string) string {
	t := s.cur.Load()
	if t == nil {
		return ""
	}
	return t.Resolve(token)
}
