// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sheet/fallback.go
// Summary: Process-wide, type-keyed fallback editor lookup.
// Usage: Hosts register platform editors at init time; every Registry
//        consults the table as its last resort.

package sheet

import "sync"

// FallbackFactory produces an editor for a type, or nil when it cannot.
// Failures are deliberately quiet here: a nil result just means the
// fallback has nothing to offer.
type FallbackFactory func() Editor

var (
	fallbackMu      sync.RWMutex
	fallbackEditors = make(map[Type]FallbackFactory)
)

// RegisterFallback installs a process-wide fallback factory for a type,
// replacing any previous one. A nil factory removes the entry.
func RegisterFallback(t Type, fn FallbackFactory) {
	fallbackMu.Lock()
	defer fallbackMu.Unlock()
	if fn == nil {
		delete(fallbackEditors, t)
		return
	}
	fallbackEditors[t] = fn
}

// FindFallback returns a fallback editor for the type, or nil.
func FindFallback(t Type) Editor {
	fallbackMu.RLock()
	fn := fallbackEditors[t]
	fallbackMu.RUnlock()
	if fn == nil {
		return nil
	}
	return fn()
}

var (
	fontMu       sync.RWMutex
	fontProvider Provider
)

// SetFontEditorProvider publishes the font editor used by RegisterDefaults.
// The font editor is environment-dependent; when no provider has been
// published the defaults simply skip the font entry. This is the only
// default allowed to be absent.
func SetFontEditorProvider(p Provider) {
	fontMu.Lock()
	defer fontMu.Unlock()
	fontProvider = p
}

func fontEditorProvider() Provider {
	fontMu.RLock()
	defer fontMu.RUnlock()
	return fontProvider
}
