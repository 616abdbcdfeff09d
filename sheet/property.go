// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sheet/property.go
// Summary: The Property contract the registry resolves editors for,
//          plus Field, the stock implementation used by Panel and hosts.

package sheet

import (
	"github.com/framegrace/texelsheet/core"
)

// Editor is a widget that can display and mutate a single value.
type Editor interface {
	core.Widget
	Value() any
	SetValue(v any) error
}

// CommitNotifier is implemented by editors that report user commits.
// The panel uses it to write edited values back into the property.
type CommitNotifier interface {
	SetOnCommit(fn func(v any))
}

// Property is an editable named value. Implementations must be comparable
// (pointers in practice): the registry keys its per-property map on
// Property identity.
type Property interface {
	Name() string
	Type() Type
	Value() any
	SetValue(v any) error
}

// EditorHinted is implemented by properties whose declaration names the
// editor to use. The hint outranks every registry entry.
type EditorHinted interface {
	EditorHint() (Provider, bool)
}

// Enumerated is implemented by properties of enumeration types; it exposes
// the legal value set so an enum editor can be bound to the property.
type Enumerated interface {
	EnumValues() []string
}

// Field is the basic Property implementation. Zero-value Fields are not
// usable; construct with NewField.
type Field struct {
	name string
	typ  Type
	val  any

	hint    Provider
	hasHint bool
	enum    []string

	// OnChange fires after SetValue stores a new value.
	OnChange func(v any)
}

// NewField creates a property with the given name, type tag and initial value.
func NewField(name string, typ Type, initial any) *Field {
	return &Field{name: name, typ: typ, val: initial}
}

func (f *Field) Name() string { return f.name }
func (f *Field) Type() Type   { return f.typ }
func (f *Field) Value() any   { return f.val }

func (f *Field) SetValue(v any) error {
	f.val = v
	if f.OnChange != nil {
		f.OnChange(v)
	}
	return nil
}

// SetHint attaches an explicit editor override to the declaration.
func (f *Field) SetHint(p Provider) { f.hint, f.hasHint = p, true }

// EditorHint implements EditorHinted.
func (f *Field) EditorHint() (Provider, bool) { return f.hint, f.hasHint }

// SetEnumValues declares the legal values for an enum-typed field.
func (f *Field) SetEnumValues(values []string) { f.enum = values }

// EnumValues implements Enumerated.
func (f *Field) EnumValues() []string { return f.enum }
