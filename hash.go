// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package strata

// ToMap returns a nested map mirroring this node's schema shape: every
// declared setting appears, whether set or not (unset settings with no
// default appear as nil), and every child configuration appears as a
// nested map. The result is a snapshot, not a live view.
func (c *Config) ToMap() map[string]any {
	m := make(map[string]any, len(c.schema.Settings())+len(c.schema.Children()))
	for _, name := range c.schema.Settings() {
		v, err := c.Get(name)
		if err != nil {
			// every declared setting resolves on its own schema
			continue
		}
		m[name] = v
	}
	for _, name := range c.schema.Children() {
		sub, err := c.Sub(name)
		if err != nil {
			continue
		}
		m[name] = sub.ToMap()
	}
	return m
}

// Each calls f for every entry of the [Config.ToMap] snapshot, settings
// first and child configurations after, each in declaration order.
func (c *Config) Each(f func(name string, value any)) {
	m := c.ToMap()
	for _, name := range c.schema.Settings() {
		f(name, m[name])
	}
	for _, name := range c.schema.Children() {
		f(name, m[name])
	}
}

// Map returns the [Config.ToMap] snapshot with every value replaced by
// f's result for it.
func (c *Config) Map(f func(name string, value any) any) map[string]any {
	m := c.ToMap()
	for name, v := range m {
		m[name] = f(name, v)
	}
	return m
}

// Select returns the entries of the [Config.ToMap] snapshot for which
// keep returns true.
func (c *Config) Select(keep func(name string, value any) bool) map[string]any {
	m := c.ToMap()
	for name, v := range m {
		if !keep(name, v) {
			delete(m, name)
		}
	}
	return m
}

// Except returns the [Config.ToMap] snapshot without the named
// entries.
func (c *Config) Except(names ...string) map[string]any {
	m := c.ToMap()
	for _, name := range names {
		delete(m, name)
	}
	return m
}
