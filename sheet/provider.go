// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sheet/provider.go
// Summary: Provider is the tagged registry entry: a ready editor instance
//          or a factory (optionally taking the target property as context).

package sheet

import (
	"errors"
	"fmt"
)

// ErrEditorConstruction marks a registered provider that failed to produce
// an editor. This is a misconfiguration, distinct from "no editor found".
var ErrEditorConstruction = errors.New("sheet: editor construction failed")

type providerKind int

const (
	providerNone providerKind = iota
	providerInstance
	providerFactory
	providerContextual
)

// Provider describes how to obtain an editor. The zero value means
// "no provider". Exactly one variant is set, chosen at registration time.
type Provider struct {
	kind       providerKind
	instance   Editor
	factory    func() (Editor, error)
	contextual func(p Property) (Editor, error)
}

// Instance wraps a ready-made editor. The same instance is handed to every
// caller that resolves through this entry; it is shared, never owned.
func Instance(e Editor) Provider {
	return Provider{kind: providerInstance, instance: e}
}

// Factory wraps a zero-argument constructor.
func Factory(fn func() (Editor, error)) Provider {
	return Provider{kind: providerFactory, factory: fn}
}

// ContextualFactory wraps a constructor that receives the property being
// edited, for editors that need declaration context (enum value sets, the
// numeric type tag, ...).
func ContextualFactory(fn func(p Property) (Editor, error)) Provider {
	return Provider{kind: providerContextual, contextual: fn}
}

// IsZero reports whether no variant is set.
func (pv Provider) IsZero() bool { return pv.kind == providerNone }

// editorFor produces the editor this provider describes. A nil editor with
// nil error never escapes: misbehaving factories surface as hard errors.
func (pv Provider) editorFor(p Property) (Editor, error) {
	switch pv.kind {
	case providerInstance:
		return pv.instance, nil
	case providerFactory:
		e, err := pv.factory()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEditorConstruction, err)
		}
		if e == nil {
			return nil, fmt.Errorf("%w: factory returned nil", ErrEditorConstruction)
		}
		return e, nil
	case providerContextual:
		e, err := pv.contextual(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEditorConstruction, err)
		}
		if e == nil {
			return nil, fmt.Errorf("%w: factory returned nil", ErrEditorConstruction)
		}
		return e, nil
	default:
		return nil, nil
	}
}
