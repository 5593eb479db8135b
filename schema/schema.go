// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package schema provides the declaration side of a configuration tree.
//
// A [Schema] describes the settings and child configurations a tree of
// config nodes may hold. Schemas are declared once, with [New], and are
// immutable afterwards so they can be shared freely across goroutines.
package schema

import (
	"github.com/z5labs/strata/key"
)

// Schema describes one node of a configuration tree: the setting names
// declared directly on it, their defaults, and its child schemas. The
// root schema additionally holds the template registry for the whole
// tree.
type Schema struct {
	name   string
	path   string
	parent *Schema

	settings   []string
	defaults   map[string]any
	children   map[string]*Schema
	childNames []string

	// only populated on the root schema
	templates map[string]func(*Builder)
}

// Name returns the name this schema was declared under. The root
// schema has no name.
func (s *Schema) Name() string {
	return s.name
}

// Path returns the dotted path this schema occupies relative to the
// tree root. The root schema's path is the empty string.
func (s *Schema) Path() string {
	return s.path
}

// Parent returns the schema this schema was declared on, or nil for
// the root schema.
func (s *Schema) Parent() *Schema {
	return s.parent
}

// Root walks the parent chain to the root schema.
func (s *Schema) Root() *Schema {
	for s.parent != nil {
		s = s.parent
	}
	return s
}

// Settings returns the names of the settings declared directly on this
// schema, in declaration order. Descendant settings are not included.
func (s *Schema) Settings() []string {
	out := make([]string, len(s.settings))
	copy(out, s.settings)
	return out
}

// Default returns the declared default value for the named setting.
func (s *Schema) Default(name string) (any, bool) {
	v, ok := s.defaults[name]
	return v, ok
}

// Child returns the child schema declared under name.
func (s *Schema) Child(name string) (*Schema, bool) {
	c, ok := s.children[name]
	return c, ok
}

// Children returns the names of the child schemas declared on this
// schema, in declaration order.
func (s *Schema) Children() []string {
	out := make([]string, len(s.childNames))
	copy(out, s.childNames)
	return out
}

// Template returns the named template from the tree's template
// registry. Templates are registered on the root schema only.
func (s *Schema) Template(name string) (func(*Builder), bool) {
	t, ok := s.Root().templates[name]
	return t, ok
}

func (s *Schema) hasSetting(name string) bool {
	for _, n := range s.settings {
		if n == name {
			return true
		}
	}
	return false
}

// Ref identifies where a dotted key lands in a schema tree.
type Ref struct {
	// Owner is the schema the final path segment was declared on.
	Owner *Schema

	// Name is the final path segment.
	Name string

	// Path is the fully qualified dotted path from the tree root.
	Path string

	// Child is non-nil when the key names a child configuration
	// rather than a leaf setting.
	Child *Schema
}

// Resolve walks the schema tree along the dotted key. It reports where
// the key lands: on a leaf setting, on a child configuration, or
// nowhere (ok is false).
func (s *Schema) Resolve(k string) (Ref, bool) {
	segs := key.Split(k)
	if len(segs) == 0 {
		return Ref{}, false
	}

	cur := s
	for i, seg := range segs {
		last := i == len(segs)-1

		if child, ok := cur.children[seg]; ok {
			if last {
				return Ref{Owner: cur, Name: seg, Path: child.path, Child: child}, true
			}
			cur = child
			continue
		}

		if last && cur.hasSetting(seg) {
			return Ref{Owner: cur, Name: seg, Path: joinPath(cur.path, seg)}, true
		}
		return Ref{}, false
	}
	return Ref{}, false
}

// Defined reports whether the dotted key resolves to a leaf setting. A
// bare child configuration name is not a defined setting.
func (s *Schema) Defined(k string) bool {
	ref, ok := s.Resolve(k)
	return ok && ref.Child == nil
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
