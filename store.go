// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package strata

// store is the single source of truth for one configuration tree. It
// is owned by the root node; child nodes reach it by walking their
// parent chain. Only leaf settings ever appear in values; child
// configuration paths never do.
type store struct {
	values  map[string]any
	assigns map[string]string
	cache   map[string]*Config
}

func newStore() *store {
	return &store{
		values:  make(map[string]any),
		assigns: make(map[string]string),
		cache:   make(map[string]*Config),
	}
}

// fetch returns the value stored under the fully qualified key,
// substituting def when the key is missing or holds nil. String values
// are interpolated against assigns at read time; the stored raw value
// is never mutated, so assigns changes show up in later reads of the
// same value.
func (s *store) fetch(fqKey string, def any) any {
	v, ok := s.values[fqKey]
	if !ok || v == nil {
		v = def
	}
	if str, ok := v.(string); ok {
		return interpolate(str, s.assigns)
	}
	return v
}
