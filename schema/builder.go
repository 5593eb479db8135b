// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import (
	"errors"

	"github.com/z5labs/strata/key"
)

// Builder accumulates setting, child configuration and template
// declarations for one schema. Declaration errors are collected and
// surfaced by [New] so builder methods remain chainable inside
// declaration closures.
type Builder struct {
	schema *Schema
	root   *Schema
	errs   []error
}

// New builds a root schema by running the given declaration function
// against a fresh [Builder]. All declaration errors encountered while
// building, including those from nested child declarations, are
// joined into the returned error.
func New(f func(*Builder)) (*Schema, error) {
	s := newSchema("", nil)
	s.templates = make(map[string]func(*Builder))

	b := &Builder{schema: s, root: s}
	if f != nil {
		f(b)
	}
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	return s, nil
}

// MustNew is like [New] but panics on declaration errors. Useful for
// declaring schemas in package variables.
func MustNew(f func(*Builder)) *Schema {
	s, err := New(f)
	if err != nil {
		panic(err)
	}
	return s
}

func newSchema(name string, parent *Schema) *Schema {
	s := &Schema{
		name:     name,
		parent:   parent,
		defaults: make(map[string]any),
		children: make(map[string]*Schema),
	}
	if parent != nil {
		s.path = joinPath(parent.path, name)
	}
	return s
}

type settingDecl struct {
	def any
}

// SettingOption configures a setting declaration.
type SettingOption func(*settingDecl)

// Default declares the value a setting holds before it has been
// explicitly assigned.
func Default(v any) SettingOption {
	return func(d *settingDecl) {
		d.def = v
	}
}

// Setting declares a leaf setting on the schema under construction.
//
// Re-declaring an existing setting keeps its position in declaration
// order and replaces its default, which lets a [Define] block override
// defaults inherited from a template. A name already held by a child
// configuration is a [DuplicateNameError].
func (b *Builder) Setting(name string, opts ...SettingOption) {
	if !key.Valid(name) {
		b.errs = append(b.errs, InvalidNameError{Name: name})
		return
	}
	if _, ok := b.schema.children[name]; ok {
		b.errs = append(b.errs, DuplicateNameError{Name: name, Path: b.schema.path})
		return
	}

	var decl settingDecl
	for _, opt := range opts {
		opt(&decl)
	}

	if !b.schema.hasSetting(name) {
		b.schema.settings = append(b.schema.settings, name)
	}
	if decl.def != nil {
		b.schema.defaults[name] = decl.def
	}
}

type configDecl struct {
	template string
	define   func(*Builder)
}

// ConfigOption configures a child configuration declaration.
type ConfigOption func(*configDecl)

// FromTemplate applies the named template to the child configuration
// instead of the template matching the child's own name.
func FromTemplate(name string) ConfigOption {
	return func(d *configDecl) {
		d.template = name
	}
}

// Define declares settings and nested child configurations directly on
// the child. It runs after any template, so its declarations add to,
// and may override defaults of, the template's.
func Define(f func(*Builder)) ConfigOption {
	return func(d *configDecl) {
		d.define = f
	}
}

// Config declares a child configuration on the schema under
// construction.
//
// Template resolution: with [FromTemplate] the named template must be
// registered on the root schema. With neither option, a template whose
// name equals the child's own name must be registered. With only
// [Define], no template is consulted.
func (b *Builder) Config(name string, opts ...ConfigOption) {
	if !key.Valid(name) {
		b.errs = append(b.errs, InvalidNameError{Name: name})
		return
	}
	if b.schema.hasSetting(name) {
		b.errs = append(b.errs, DuplicateNameError{Name: name, Path: b.schema.path})
		return
	}
	if _, ok := b.schema.children[name]; ok {
		b.errs = append(b.errs, DuplicateNameError{Name: name, Path: b.schema.path})
		return
	}

	var decl configDecl
	for _, opt := range opts {
		opt(&decl)
	}

	var tmpl func(*Builder)
	switch {
	case decl.template != "":
		t, ok := b.root.templates[decl.template]
		if !ok {
			b.errs = append(b.errs, UnknownTemplateError{Name: decl.template})
			return
		}
		tmpl = t
	case decl.define == nil:
		t, ok := b.root.templates[name]
		if !ok {
			b.errs = append(b.errs, UnknownTemplateError{Name: name})
			return
		}
		tmpl = t
	}

	child := newSchema(name, b.schema)
	cb := &Builder{schema: child, root: b.root}
	if tmpl != nil {
		tmpl(cb)
	}
	if decl.define != nil {
		decl.define(cb)
	}
	b.errs = append(b.errs, cb.errs...)

	b.schema.children[name] = child
	b.schema.childNames = append(b.schema.childNames, name)
}

// Template registers a named, reusable schema fragment on the root
// schema. A child configuration declared with the same name, or with
// [FromTemplate], has the template applied to it. Re-registering a
// template name replaces the previous registration.
func (b *Builder) Template(name string, f func(*Builder)) {
	if b.schema != b.root {
		b.errs = append(b.errs, ErrTemplateOnChild)
		return
	}
	if !key.Valid(name) {
		b.errs = append(b.errs, InvalidNameError{Name: name})
		return
	}
	if f == nil {
		b.errs = append(b.errs, ErrNilTemplate)
		return
	}
	b.root.templates[name] = f
}
