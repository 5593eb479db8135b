// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package strata

import (
	"github.com/z5labs/strata/key"
)

// Store represents a general key value structure.
type Store interface {
	Set(key.Keyer, any) error
}

// Source defines valid config sources as those who can
// serialize themselves into a key value like structure.
type Source interface {
	Apply(Store) error
}

// nodeStore adapts a Config node to the Store interface so sources
// write through the node's schema-validated set engine.
type nodeStore struct {
	node *Config
}

// Set implements the [Store] interface.
func (s nodeStore) Set(k key.Keyer, v any) error {
	return s.node.Set(k.Key(), v)
}
