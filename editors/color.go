// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: editors/color.go
// Summary: Hex color editor with a live swatch.

package editors

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelsheet/core"
)

// ColorEditor edits a tcell.Color as "#rrggbb" or a named color. The two
// leading cells show a swatch of the current value.
type ColorEditor struct {
	Input
	color    tcell.Color
	onCommit func(v any)
}

func NewColorEditor() *ColorEditor {
	e := &ColorEditor{Input: *NewInput(), color: tcell.ColorDefault}
	e.Input.OnCommit = func(text string) { e.commit(text) }
	return e
}

func (e *ColorEditor) commit(text string) {
	c, ok := parseColor(text)
	if !ok {
		e.SetText(formatColor(e.color))
		return
	}
	e.color = c
	e.SetText(formatColor(c))
	if e.onCommit != nil {
		e.onCommit(c)
	}
}

func parseColor(s string) (tcell.Color, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return tcell.ColorDefault, false
	}
	c := tcell.GetColor(s)
	if c == tcell.ColorDefault && s != "default" {
		return tcell.ColorDefault, false
	}
	return c, true
}

func formatColor(c tcell.Color) string {
	if c == tcell.ColorDefault {
		return ""
	}
	return fmt.Sprintf("#%06x", c.Hex())
}

// Draw paints the swatch then the text field shifted right of it.
func (e *ColorEditor) Draw(p *core.Painter) {
	swatch := tcell.StyleDefault.Background(e.color)
	p.SetCell(e.Rect.X, e.Rect.Y, ' ', swatch)
	p.SetCell(e.Rect.X+1, e.Rect.Y, ' ', swatch)

	saved := e.Rect
	e.Input.Rect.X += 3
	e.Input.Rect.W -= 3
	e.Input.Draw(p)
	e.Input.Rect = saved
}

func (e *ColorEditor) Value() any { return e.color }

func (e *ColorEditor) SetValue(v any) error {
	switch c := v.(type) {
	case tcell.Color:
		e.color = c
		e.SetText(formatColor(c))
		return nil
	case string:
		parsed, ok := parseColor(c)
		if !ok {
			return fmt.Errorf("editors: %q is not a color", c)
		}
		e.color = parsed
		e.SetText(formatColor(parsed))
		return nil
	default:
		return fmt.Errorf("editors: color editor given %T", v)
	}
}

func (e *ColorEditor) SetOnCommit(fn func(v any)) { e.onCommit = fn }
