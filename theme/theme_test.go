// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestGetColorFallsBack(t *testing.T) {
	defer Set(nil)

	tm := Get()
	if c := tm.GetColor("ui", "text_fg", tcell.ColorFuchsia); c != tcell.ColorWhite {
		t.Fatalf("known key should use the palette, got %v", c)
	}
	if c := tm.GetColor("ui", "no_such_key", tcell.ColorFuchsia); c != tcell.ColorFuchsia {
		t.Fatalf("missing key should fall back, got %v", c)
	}
	if c := tm.GetColor("no_such_section", "x", tcell.ColorFuchsia); c != tcell.ColorFuchsia {
		t.Fatalf("missing section should fall back, got %v", c)
	}
}

func TestSetReplacesActiveTheme(t *testing.T) {
	defer Set(nil)

	Set(&Theme{Colors: map[string]map[string]tcell.Color{
		"ui": {"text_fg": tcell.ColorGreen},
	}})
	if c := Get().GetSemanticColor("text.primary"); c != tcell.ColorGreen {
		t.Fatalf("override not applied, got %v", c)
	}

	Set(nil)
	if c := Get().GetSemanticColor("text.primary"); c != tcell.ColorWhite {
		t.Fatalf("nil should restore defaults, got %v", c)
	}
}
