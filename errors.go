// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package strata

import "fmt"

// UndefinedSettingError occurs when a key used with Get, Set or a
// bulk update does not resolve to a declared setting or child
// configuration. Key is the fully qualified dotted path that was
// attempted.
type UndefinedSettingError struct {
	Key string
}

// Error implements the error interface.
func (e UndefinedSettingError) Error() string {
	return fmt.Sprintf("undefined setting: %s", e.Key)
}

// CannotModifyConfigError occurs when Set targets a key which refers
// to a child configuration rather than a leaf setting.
type CannotModifyConfigError struct {
	Key string
}

// Error implements the error interface.
func (e CannotModifyConfigError) Error() string {
	return fmt.Sprintf("cannot set %q: it refers to a child configuration", e.Key)
}

// NotAChildError occurs when Sub is called with a key which resolves
// to a leaf setting rather than a child configuration.
type NotAChildError struct {
	Key string
}

// Error implements the error interface.
func (e NotAChildError) Error() string {
	return fmt.Sprintf("%q does not refer to a child configuration", e.Key)
}
