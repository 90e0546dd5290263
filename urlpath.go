// Package urlpath manipulates URL-style paths as text, without requiring the
// path to exist on disk or on any server. It is meant for comparing, caching,
// or routing on logical paths.
package urlpath

import "strings"

// Path is an immutable wrapper around a raw path string. Construction never
// validates or normalizes; the raw string is kept as-is.
type Path struct {
	raw string
}

func New(raw string) Path {
	return Path{raw: raw}
}

// String returns the raw input string, not the canonical form.
func (p Path) String() string {
	return p.raw
}

// IsExternal reports whether the path is a full http or https URL. External
// paths are opaque: Normalize returns them verbatim.
func (p Path) IsExternal() bool {
	return strings.HasPrefix(p.raw, "http:") || strings.HasPrefix(p.raw, "https:")
}

func (p Path) IsAbsolute() bool {
	return !p.IsExternal() && strings.HasPrefix(p.raw, "/")
}

// Normalize returns the canonical form of the path. It is a pure function of
// the stored string and always returns the same result.
func (p Path) Normalize() string {
	if p.IsExternal() {
		return p.raw
	}
	return Normalize(p.raw)
}

// Last returns the final canonical segment, if any.
func (p Path) Last() (string, bool) {
	segs := p.segments()
	if len(segs) == 0 {
		return "", false
	}
	return segs[len(segs)-1], true
}

// Parent returns the canonical path with the last segment removed. It is
// absent when fewer than two segments remain after resolution.
func (p Path) Parent() (string, bool) {
	segs := p.segments()
	if len(segs) < 2 {
		return "", false
	}
	parent := strings.Join(segs[:len(segs)-1], "/")
	if p.IsAbsolute() {
		parent = "/" + parent
	}
	return parent, true
}

func (p Path) segments() []string {
	if p.IsExternal() {
		return nil
	}
	return resolve(strings.Split(p.raw, "/"), p.IsAbsolute())
}
