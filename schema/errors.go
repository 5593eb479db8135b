// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import (
	"errors"
	"fmt"
)

// ErrNilTemplate occurs when a template is declared without a body.
var ErrNilTemplate = errors.New("schema: template declared with nil body")

// ErrTemplateOnChild occurs when a template is declared anywhere other
// than the root schema. The template registry belongs to the tree root.
var ErrTemplateOnChild = errors.New("schema: templates may only be declared on the root schema")

// InvalidNameError occurs when a setting, child configuration or
// template is declared with a name that is not a valid key.
type InvalidNameError struct {
	Name string
}

// Error implements the error interface.
func (e InvalidNameError) Error() string {
	return fmt.Sprintf("schema: invalid name %q: names may only contain ASCII letters, digits and underscores", e.Name)
}

// UnknownTemplateError occurs when a child configuration is declared
// against a template name which has not been registered.
type UnknownTemplateError struct {
	Name string
}

// Error implements the error interface.
func (e UnknownTemplateError) Error() string {
	return fmt.Sprintf("schema: no template found for %q", e.Name)
}

// DuplicateNameError occurs when a declaration collides with an
// existing declaration of a different kind on the same schema, or
// re-declares a child configuration. Settings and child configurations
// share one namespace per schema.
type DuplicateNameError struct {
	Name string
	Path string
}

// Error implements the error interface.
func (e DuplicateNameError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("schema: %q already declared", e.Name)
	}
	return fmt.Sprintf("schema: %q already declared on %q", e.Name, e.Path)
}
