// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package strata

import (
	"strings"

	"github.com/z5labs/strata/schema"
)

// Config is one node of a configuration tree. The root node owns the
// tree's value store; child nodes hold a navigation reference to the
// node which materialized them and forward all reads and writes to the
// root. Child nodes are obtained through [Config.Get] or [Config.Sub],
// never constructed directly.
type Config struct {
	schema *schema.Schema
	parent *Config

	// non-nil on the root node only
	store *store
}

// New returns the root node of a configuration tree described by s.
func New(s *schema.Schema) *Config {
	return &Config{
		schema: s,
		store:  newStore(),
	}
}

// Schema returns the schema this node was instantiated from.
func (c *Config) Schema() *schema.Schema {
	return c.schema
}

// IsChild reports whether this node is a child configuration. It is
// false only for the tree root.
func (c *Config) IsChild() bool {
	return c.parent != nil
}

// Root walks the parent chain to the tree root.
func (c *Config) Root() *Config {
	for c.parent != nil {
		c = c.parent
	}
	return c
}

// Assigns returns the tree's interpolation variables. The returned map
// is the live map shared by every node of the tree; mutate it directly
// to change how string values interpolate on subsequent reads.
func (c *Config) Assigns() map[string]string {
	return c.Root().store.assigns
}

// Get returns the value of the setting or the child configuration the
// key resolves to. Keys may be dotted paths descending from this node.
// An unset setting yields its declared default, or nil without one.
// Keys which resolve to neither a setting nor a child configuration
// fail with [UndefinedSettingError].
func (c *Config) Get(key string) (any, error) {
	return c.get(key, nil)
}

// GetOr is like [Config.Get] but substitutes fallback, in place of the
// declared default, when the setting is unset.
func (c *Config) GetOr(key string, fallback any) (any, error) {
	return c.get(key, fallback)
}

func (c *Config) get(key string, fallback any) (any, error) {
	ref, ok := c.schema.Resolve(key)
	if !ok {
		return nil, UndefinedSettingError{Key: c.qualify(key)}
	}
	if ref.Child != nil {
		return c.child(ref), nil
	}
	if fallback == nil {
		if def, ok := ref.Owner.Default(ref.Name); ok {
			fallback = def
		}
	}
	return c.Root().store.fetch(ref.Path, fallback), nil
}

// Sub returns the child configuration the key resolves to. Repeated
// calls for the same key, from any node of the tree, return the
// identical *Config.
func (c *Config) Sub(key string) (*Config, error) {
	v, err := c.Get(key)
	if err != nil {
		return nil, err
	}
	sub, ok := v.(*Config)
	if !ok {
		return nil, NotAChildError{Key: c.qualify(key)}
	}
	return sub, nil
}

// Set assigns value to the setting the key resolves to. Keys may be
// dotted paths descending from this node. Setting a key which refers
// to a child configuration fails with [CannotModifyConfigError],
// unless value is a map[string]any, in which case it is applied as
// [Config.Update] on that child. Failures occur before any mutation.
func (c *Config) Set(key string, value any) error {
	ref, ok := c.schema.Resolve(key)
	if !ok {
		return UndefinedSettingError{Key: c.qualify(key)}
	}
	if ref.Child != nil {
		if m, ok := value.(map[string]any); ok {
			return c.child(ref).Update(m)
		}
		return CannotModifyConfigError{Key: ref.Path}
	}
	c.Root().store.values[ref.Path] = value
	return nil
}

// Update applies a nested mapping to the tree: map values descend into
// the matching child configuration, everything else is Set on the
// matching setting. A nil or empty map is a no-op. Update is the bulk
// entry point for external configuration loaders; see also
// [Config.Load].
func (c *Config) Update(m map[string]any) error {
	if len(m) == 0 {
		return nil
	}
	return Map(m).Apply(nodeStore{node: c})
}

// Load applies the given sources to the tree in order. Later sources
// override earlier ones. Keys not declared in the schema fail with
// [UndefinedSettingError], so typos in configuration files surface
// immediately.
func (c *Config) Load(srcs ...Source) error {
	for _, src := range srcs {
		err := src.Apply(nodeStore{node: c})
		if err != nil {
			return err
		}
	}
	return nil
}

// Values returns the fully qualified paths under this node which have
// been explicitly assigned, mapped to their current values. Defaults
// and unset settings are not included. Values are interpolated exactly
// as [Config.Get] would return them.
func (c *Config) Values() map[string]any {
	root := c.Root()
	prefix := c.schema.Path()
	if prefix != "" {
		prefix += "."
	}

	out := make(map[string]any)
	for fq := range root.store.values {
		if prefix != "" && !strings.HasPrefix(fq, prefix) {
			continue
		}
		out[fq] = root.store.fetch(fq, nil)
	}
	return out
}

// child returns the cached node for the resolved child configuration,
// materializing and caching it on first access. The cache lives on the
// root store and is keyed by fully qualified path, so every access
// path to the same child yields the identical node.
func (c *Config) child(ref schema.Ref) *Config {
	root := c.Root()
	if sub, ok := root.store.cache[ref.Path]; ok {
		return sub
	}
	sub := &Config{
		schema: ref.Child,
		parent: c,
	}
	root.store.cache[ref.Path] = sub
	return sub
}

// qualify expands a key relative to this node into a fully qualified
// path for error reporting.
func (c *Config) qualify(key string) string {
	if p := c.schema.Path(); p != "" {
		return p + "." + key
	}
	return key
}
