// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package strata implements a declarative configuration tree.
//
// A tree is declared once, as a [schema.Schema], and instantiated with
// [New]. Every value in the tree, no matter how deeply nested its
// declaration, lives in a single flat store on the root node keyed by
// fully qualified dotted path. Child configurations are lazily
// materialized proxies which forward every read and write to the root
// store, so the same child is always the same *Config no matter which
// path or syntax reached it.
//
// String values are interpolated at read time against the tree's
// assigns map: a stored value "pre %{x} post" reads as "pre V post"
// while Assigns()["x"] == "V", and follows later changes to assigns
// without being re-set.
//
// strata performs no locking. The intended model is single-owner
// mutation: one goroutine declares and populates the tree, typically
// at process startup, before it is read widely. Schemas are immutable
// after declaration and safe to share.
package strata
