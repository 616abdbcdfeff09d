// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package editors

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelsheet/core"
)

func TestTextEditorEditing(t *testing.T) {
	e := NewTextEditor("json")
	e.Focus()
	typeKeys(e, "{\"a\":1}")
	e.HandleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	pressEnter(e)

	if len(e.Lines) != 2 {
		t.Fatalf("enter should split the line, got %d lines", len(e.Lines))
	}
	if e.Lines[0] != "{\"a\":1" || e.Lines[1] != "}" {
		t.Fatalf("unexpected split: %q / %q", e.Lines[0], e.Lines[1])
	}

	e.HandleKey(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	if len(e.Lines) != 1 || e.Lines[0] != "{\"a\":1}" {
		t.Fatalf("backspace at column zero should join lines, got %q", e.Text())
	}
}

func TestTextEditorCommitsOnBlur(t *testing.T) {
	e := NewTextEditor("json")
	e.Focus()
	var committed any
	e.SetOnCommit(func(v any) { committed = v })
	typeKeys(e, "[1,2]")
	e.Blur()
	if committed != "[1,2]" {
		t.Fatalf("blur should commit the buffer, got %v", committed)
	}
}

func TestTextEditorDrawsHighlightedBuffer(t *testing.T) {
	e := NewTextEditor("json")
	if err := e.SetValue("{\"on\": true}"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	e.Resize(20, 2)

	buf := core.NewBuffer(20, 2, tcell.StyleDefault)
	e.Draw(core.NewPainter(buf))

	var got string
	for _, cell := range buf[0] {
		if cell.Ch != 0 && cell.Ch != ' ' {
			got += string(cell.Ch)
		}
	}
	if got != "{\"on\":true}" {
		t.Fatalf("drawn text mismatch: %q", got)
	}
}
