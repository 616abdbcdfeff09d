// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: editors/boolean.go
// Summary: Checkbox-style editor for boolean values.

package editors

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelsheet/core"
	"github.com/framegrace/texelsheet/theme"
)

// BooleanEditor renders [X] / [ ] and toggles on Space or Enter.
type BooleanEditor struct {
	core.BaseWidget
	Checked bool
	Style   tcell.Style

	focusStyle tcell.Style
	onCommit   func(v any)
	inv        func(core.Rect)
}

func NewBooleanEditor() *BooleanEditor {
	tm := theme.Get()
	fg := tm.GetColor("ui", "text_fg", tcell.ColorWhite)
	bg := tm.GetColor("ui", "surface_bg", tcell.ColorBlack)
	focusFg := tm.GetColor("ui", "focus_text_fg", tcell.ColorSilver)
	focusBg := tm.GetColor("ui", "focus_surface_bg", bg)
	e := &BooleanEditor{
		Style:      tcell.StyleDefault.Foreground(fg).Background(bg),
		focusStyle: tcell.StyleDefault.Foreground(focusFg).Background(focusBg),
	}
	e.Resize(3, 1)
	e.SetFocusable(true)
	return e
}

func (e *BooleanEditor) SetInvalidator(fn func(core.Rect)) { e.inv = fn }

func (e *BooleanEditor) Draw(p *core.Painter) {
	style := e.Style
	if e.IsFocused() {
		style = e.focusStyle
	}
	mark := "[ ]"
	if e.Checked {
		mark = "[X]"
	}
	p.DrawText(e.Rect.X, e.Rect.Y, mark, style)
}

func (e *BooleanEditor) HandleKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyEnter,
		ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
		e.Checked = !e.Checked
		if e.inv != nil {
			e.inv(e.Rect)
		}
		if e.onCommit != nil {
			e.onCommit(e.Checked)
		}
		return true
	}
	return false
}

func (e *BooleanEditor) Value() any { return e.Checked }

func (e *BooleanEditor) SetValue(v any) error {
	b, ok := v.(bool)
	if !ok {
		return fmt.Errorf("editors: boolean editor given %T", v)
	}
	e.Checked = b
	return nil
}

func (e *BooleanEditor) SetOnCommit(fn func(v any)) { e.onCommit = fn }
