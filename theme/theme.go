// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/theme.go
// Summary: Small palette lookup shared by the editor widgets.
// Usage: Hosts may replace the active theme with Set before building widgets.

package theme

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Theme maps section/key pairs to colors. Missing keys fall back to the
// default passed at the lookup site so widgets always get a usable color.
type Theme struct {
	Colors map[string]map[string]tcell.Color
}

var (
	mu     sync.RWMutex
	active = defaultTheme()
)

func defaultTheme() *Theme {
	return &Theme{
		Colors: map[string]map[string]tcell.Color{
			"ui": {
				"surface_bg":       tcell.ColorBlack,
				"surface_fg":       tcell.ColorWhite,
				"text_bg":          tcell.ColorBlack,
				"text_fg":          tcell.ColorWhite,
				"caret_fg":         tcell.ColorSilver,
				"focus_surface_bg": tcell.ColorDarkBlue,
				"focus_text_fg":    tcell.ColorWhite,
				"muted_fg":         tcell.ColorGray,
				"error_fg":         tcell.ColorRed,
				"accent_fg":        tcell.ColorAqua,
			},
		},
	}
}

// Get returns the active theme.
func Get() *Theme {
	mu.RLock()
	defer mu.RUnlock()
	return active
}

// Set replaces the active theme. Passing nil restores the built-in palette.
func Set(t *Theme) {
	mu.Lock()
	defer mu.Unlock()
	if t == nil {
		t = defaultTheme()
	}
	active = t
}

// GetColor looks up section/key, returning def when absent.
func (t *Theme) GetColor(section, key string, def tcell.Color) tcell.Color {
	sec, ok := t.Colors[section]
	if !ok {
		return def
	}
	c, ok := sec[key]
	if !ok {
		return def
	}
	return c
}

// GetSemanticColor resolves dotted names like "text.primary" against the
// ui section, with a white fallback.
func (t *Theme) GetSemanticColor(name string) tcell.Color {
	switch name {
	case "text.primary":
		return t.GetColor("ui", "text_fg", tcell.ColorWhite)
	case "text.muted":
		return t.GetColor("ui", "muted_fg", tcell.ColorGray)
	case "text.error":
		return t.GetColor("ui", "error_fg", tcell.ColorRed)
	case "bg.surface":
		return t.GetColor("ui", "surface_bg", tcell.ColorBlack)
	case "accent":
		return t.GetColor("ui", "accent_fg", tcell.ColorAqua)
	default:
		return tcell.ColorWhite
	}
}
