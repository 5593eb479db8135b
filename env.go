// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package strata

import (
	"os"
	"strings"
)

// Env represents a Source where its underlying values
// are extracted from environment variables.
type Env struct {
	prefix  string
	environ func() []string
}

// FromEnv returns a Source which applies config from the environment
// variables of the current process. Only variables starting with
// prefix are considered. After the prefix is stripped, a double
// underscore separates tree levels and the segments are lowercased,
// so with prefix "APP_" the variable APP_DATABASE__POOL_SIZE=10 sets
// database.pool_size.
func FromEnv(prefix string) Env {
	return Env{
		prefix:  prefix,
		environ: os.Environ,
	}
}

// Apply implements the Source interface.
func (src Env) Apply(store Store) error {
	m := make(Map)
	for _, pair := range src.environ() {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || !strings.HasPrefix(k, src.prefix) {
			continue
		}

		cur := map[string]any(m)
		segs := strings.Split(strings.TrimPrefix(k, src.prefix), "__")
		for i, seg := range segs {
			seg = strings.ToLower(seg)
			if i == len(segs)-1 {
				cur[seg] = v
				break
			}
			next, ok := cur[seg].(map[string]any)
			if !ok {
				next = make(map[string]any)
				cur[seg] = next
			}
			cur = next
		}
	}
	return m.Apply(store)
}
