// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sheet/registry.go
// Summary: Maps types and individual properties to editor providers and
//          resolves the editor for a property.
// Usage: The property-sheet panel calls Resolve; hosts customize the
//        mappings with RegisterEditor/RegisterPropertyEditor.

package sheet

import "sync"

// Registry maps semantic types and individual properties to editor
// providers. A property-scoped entry always beats a type-scoped one.
//
// All operations on one Registry are mutually exclusive under a single
// coarse lock; ready-made editor instances stored in the maps are shared
// across resolutions.
type Registry struct {
	mu               sync.Mutex
	typeToEditor     map[Type]Provider
	propertyToEditor map[Property]Provider
}

// NewRegistry creates a registry populated with the built-in default table.
func NewRegistry() *Registry {
	r := &Registry{
		typeToEditor:     make(map[Type]Provider),
		propertyToEditor: make(map[Property]Provider),
	}
	r.RegisterDefaults()
	return r
}

// Resolve finds the editor for a property. The lookup order is:
//
//  1. the property's own editor hint, instantiated immediately
//  2. the property-scoped registry entry
//  3. the type-scoped lookup (CreateEditor)
//  4. the process-wide fallback table
//
// A (nil, nil) return means no editor is available and the caller should
// degrade (render read-only). A non-nil error means a registered provider
// could not be constructed, which is a host misconfiguration.
func (r *Registry) Resolve(p Property) (Editor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h, ok := p.(EditorHinted); ok {
		if prov, ok := h.EditorHint(); ok && !prov.IsZero() {
			return prov.editorFor(p)
		}
	}

	if prov, ok := r.propertyToEditor[p]; ok {
		return prov.editorFor(p)
	}

	editor, err := r.createEditorLocked(p)
	if editor != nil || err != nil {
		return editor, err
	}

	// Last resort: the platform table. Failures here yield no editor
	// rather than an error; see FallbackFactory.
	return FindFallback(p.Type()), nil
}

// CreateEditor finds an editor for the property's type alone, ignoring
// hints, property-scoped entries and the fallback table. Enumeration types
// with no registered entry get a default enum editor bound to the property.
// (nil, nil) means no entry for the type.
func (r *Registry) CreateEditor(p Property) (Editor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.createEditorLocked(p)
}

func (r *Registry) createEditorLocked(p Property) (Editor, error) {
	if prov, ok := r.typeToEditor[p.Type()]; ok {
		return prov.editorFor(p)
	}
	if p.Type().IsEnum() {
		return newDefaultEnumEditor(p), nil
	}
	return nil, nil
}

// RegisterEditor associates a provider with a type, replacing any previous
// entry. No validation happens here; a broken provider surfaces when an
// editor is first constructed.
func (r *Registry) RegisterEditor(t Type, prov Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.typeToEditor[t] = prov
}

// UnregisterEditor removes the type entry if present.
func (r *Registry) UnregisterEditor(t Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.typeToEditor, t)
}

// RegisterPropertyEditor associates a provider with one property identity,
// replacing any previous entry. Property-scoped entries take precedence
// over type-scoped ones.
func (r *Registry) RegisterPropertyEditor(p Property, prov Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.propertyToEditor[p] = prov
}

// UnregisterPropertyEditor removes the property entry if present.
func (r *Registry) UnregisterPropertyEditor(p Property) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.propertyToEditor, p)
}

// RegisterDefaults resets both mappings to the built-in table. It is not
// additive: customizations made through the register calls are discarded.
func (r *Registry) RegisterDefaults() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.typeToEditor = make(map[Type]Provider)
	r.propertyToEditor = make(map[Property]Provider)

	for t, prov := range defaultProviders() {
		r.typeToEditor[t] = prov
	}

	// The font editor is environment-dependent. When no provider has been
	// published the entry is skipped; every other default always installs.
	if prov := fontEditorProvider(); !prov.IsZero() {
		r.typeToEditor[TypeFont] = prov
	}
}
