// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sheet/defaults.go
// Summary: The built-in type→editor table installed by RegisterDefaults.

package sheet

import (
	"github.com/framegrace/texelsheet/editors"
)

func numberKindFor(t Type) editors.NumberKind {
	switch t {
	case TypeFloat64, TypeFloat32:
		return editors.NumberFloat
	case TypeBigInt:
		return editors.NumberBigInt
	case TypeBigFloat:
		return editors.NumberBigFloat
	default:
		return editors.NumberInt
	}
}

func numberProvider(t Type) Provider {
	return ContextualFactory(func(p Property) (Editor, error) {
		e := editors.NewNumberEditor(numberKindFor(t))
		if v := p.Value(); v != nil {
			if err := e.SetValue(v); err != nil {
				return nil, err
			}
		}
		return e, nil
	})
}

func simpleProvider(build func() Editor) Provider {
	return ContextualFactory(func(p Property) (Editor, error) {
		e := build()
		if v := p.Value(); v != nil {
			if err := e.SetValue(v); err != nil {
				return nil, err
			}
		}
		return e, nil
	})
}

// defaultProviders returns a fresh copy of the built-in table, minus the
// environment-dependent font entry (handled in RegisterDefaults).
func defaultProviders() map[Type]Provider {
	table := map[Type]Provider{
		TypeText: simpleProvider(func() Editor { return editors.NewStringEditor() }),
		TypeRune: simpleProvider(func() Editor { return editors.NewCharacterEditor() }),

		TypeBool: simpleProvider(func() Editor { return editors.NewBooleanEditor() }),
		TypeFile: simpleProvider(func() Editor { return editors.NewFileEditor() }),

		TypeColor:  simpleProvider(func() Editor { return editors.NewColorEditor() }),
		TypeSize:   simpleProvider(func() Editor { return editors.NewDimensionEditor() }),
		TypeInsets: simpleProvider(func() Editor { return editors.NewInsetsEditor() }),
		TypeRect:   simpleProvider(func() Editor { return editors.NewRectangleEditor() }),
		TypeDate:   simpleProvider(func() Editor { return editors.NewDateEditor() }),
	}
	for _, t := range []Type{
		TypeFloat64, TypeFloat32,
		TypeInt, TypeInt64, TypeInt16, TypeInt8,
		TypeBigInt, TypeBigFloat,
	} {
		table[t] = numberProvider(t)
	}
	return table
}

// newDefaultEnumEditor synthesizes an enum editor bound to the property.
// Properties that do not expose a value set get an empty selector, which
// still renders but offers nothing to pick.
func newDefaultEnumEditor(p Property) Editor {
	var values []string
	if en, ok := p.(Enumerated); ok {
		values = en.EnumValues()
	}
	e := editors.NewEnumEditor(values)
	if s, ok := p.Value().(string); ok {
		_ = e.SetValue(s)
	}
	return e
}
