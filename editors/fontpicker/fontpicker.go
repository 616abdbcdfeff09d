// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: editors/fontpicker/fontpicker.go
// Summary: Best-effort font-family editor. Importing the package publishes
//          the provider only when the terminal can actually switch fonts,
//          so the default table silently skips the font entry elsewhere.

package fontpicker

import (
	"os"

	"github.com/framegrace/texelsheet/editors"
	"github.com/framegrace/texelsheet/sheet"
)

// families offered when the terminal supports font switching. Terminals
// give us no way to enumerate installed fonts, so this is a stock list.
var families = []string{
	"monospace",
	"DejaVu Sans Mono",
	"JetBrains Mono",
	"Fira Code",
	"Iosevka",
	"Hack",
}

func init() {
	Register()
}

// Register publishes the font editor provider if the environment supports
// it. Safe to call more than once.
func Register() {
	if !Available() {
		return
	}
	sheet.SetFontEditorProvider(sheet.ContextualFactory(func(p sheet.Property) (sheet.Editor, error) {
		e := editors.NewEnumEditor(families)
		if s, ok := p.Value().(string); ok && s != "" {
			_ = e.SetValue(s)
		}
		return e, nil
	}))
}

// Available reports whether the running terminal advertises remote font
// control. Only kitty and wezterm do among the terminals texelation
// targets.
func Available() bool {
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	switch os.Getenv("TERM_PROGRAM") {
	case "kitty", "WezTerm":
		return true
	}
	return false
}
