// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: editors/enum.go
// Summary: Selection editor cycling over a fixed value set.
// Usage: The registry binds one to any enum-typed property lacking an entry.

package editors

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelsheet/core"
	"github.com/framegrace/texelsheet/theme"
)

// EnumEditor renders "< value >" and cycles with Left/Right or Up/Down.
// Enter commits the current selection.
type EnumEditor struct {
	core.BaseWidget
	Values []string
	Style  tcell.Style

	idx        int
	focusStyle tcell.Style
	onCommit   func(v any)
	inv        func(core.Rect)
}

func NewEnumEditor(values []string) *EnumEditor {
	tm := theme.Get()
	fg := tm.GetSemanticColor("text.primary")
	bg := tm.GetSemanticColor("bg.surface")
	accent := tm.GetSemanticColor("accent")
	e := &EnumEditor{
		Values:     values,
		Style:      tcell.StyleDefault.Foreground(fg).Background(bg),
		focusStyle: tcell.StyleDefault.Foreground(accent).Background(bg),
	}
	e.Resize(16, 1)
	e.SetFocusable(true)
	return e
}

func (e *EnumEditor) SetInvalidator(fn func(core.Rect)) { e.inv = fn }

func (e *EnumEditor) current() string {
	if e.idx < 0 || e.idx >= len(e.Values) {
		return ""
	}
	return e.Values[e.idx]
}

func (e *EnumEditor) Draw(p *core.Painter) {
	style := e.Style
	if e.IsFocused() {
		style = e.focusStyle
	}
	p.Fill(core.Rect{X: e.Rect.X, Y: e.Rect.Y, W: e.Rect.W, H: 1}, ' ', style)
	p.DrawText(e.Rect.X, e.Rect.Y, "< "+e.current()+" >", style)
}

func (e *EnumEditor) HandleKey(ev *tcell.EventKey) bool {
	if len(e.Values) == 0 {
		return false
	}
	switch ev.Key() {
	case tcell.KeyLeft, tcell.KeyUp:
		e.idx = (e.idx - 1 + len(e.Values)) % len(e.Values)
	case tcell.KeyRight, tcell.KeyDown:
		e.idx = (e.idx + 1) % len(e.Values)
	case tcell.KeyEnter:
		if e.onCommit != nil {
			e.onCommit(e.current())
		}
	default:
		return false
	}
	if e.inv != nil {
		e.inv(e.Rect)
	}
	return true
}

func (e *EnumEditor) Value() any { return e.current() }

// SetValue selects the matching entry; an unknown value is an error so a
// property initialized outside its own value set is caught early.
func (e *EnumEditor) SetValue(v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("editors: enum editor given %T", v)
	}
	for i, val := range e.Values {
		if val == s {
			e.idx = i
			return nil
		}
	}
	return fmt.Errorf("editors: %q is not in the enum value set", s)
}

func (e *EnumEditor) SetOnCommit(fn func(v any)) { e.onCommit = fn }
