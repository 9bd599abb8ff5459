// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package record

import (
	"strconv"
	"strings"
)

// Path addresses a field inside a decoded JSON record with dot separated
// segments. A segment that indexes a list must be a non-negative integer:
//
//	"name"
//	"profile.address"
//	"experience.0.name"
type Path string

func (p Path) segments() []string {
	if p == "" {
		return nil
	}
	return strings.Split(string(p), ".")
}

// overlaps reports whether one path is a prefix of the other, counted in
// whole segments.
func (p Path) overlaps(other Path) bool {
	a, b := p.segments(), other.segments()
	if len(a) > len(b) {
		a, b = b, a
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Get returns the value at p. The boolean is false when any segment of the
// path is missing or walks through a value that is neither an object nor a
// list.
func Get(rec map[string]any, p Path) (any, bool) {
	segs := p.segments()
	if len(segs) == 0 {
		return nil, false
	}

	var cur any = rec
	for _, seg := range segs {
		next, ok := child(cur, seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Set replaces the value at p. It never creates intermediate containers and
// returns false when the parent of the last segment does not exist.
func Set(rec map[string]any, p Path, value any) bool {
	segs := p.segments()
	if len(segs) == 0 {
		return false
	}

	var parent any = rec
	for _, seg := range segs[:len(segs)-1] {
		next, ok := child(parent, seg)
		if !ok {
			return false
		}
		parent = next
	}

	last := segs[len(segs)-1]
	switch c := parent.(type) {
	case map[string]any:
		c[last] = value
		return true
	case []any:
		i, ok := index(last, len(c))
		if !ok {
			return false
		}
		c[i] = value
		return true
	}
	return false
}

func child(node any, seg string) (any, bool) {
	switch c := node.(type) {
	case map[string]any:
		v, ok := c[seg]
		return v, ok
	case []any:
		i, ok := index(seg, len(c))
		if !ok {
			return nil, false
		}
		return c[i], true
	}
	return nil, false
}

func index(seg string, n int) (int, bool) {
	i, err := strconv.Atoi(seg)
	if err != nil || i < 0 || i >= n {
		return 0, false
	}
	return i, true
}
