// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: editors/readonly.go
// Summary: Non-editable value display used when no editor resolves.

package editors

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelsheet/core"
	"github.com/framegrace/texelsheet/theme"
)

// ReadOnly shows a value without accepting input. The panel falls back to
// it for properties the registry cannot resolve an editor for.
type ReadOnly struct {
	core.BaseWidget
	Style tcell.Style

	val any
}

func NewReadOnly(v any) *ReadOnly {
	tm := theme.Get()
	e := &ReadOnly{
		Style: tcell.StyleDefault.
			Foreground(tm.GetSemanticColor("text.muted")).
			Background(tm.GetSemanticColor("bg.surface")),
		val: v,
	}
	e.Resize(16, 1)
	return e
}

func (e *ReadOnly) Draw(p *core.Painter) {
	p.Fill(core.Rect{X: e.Rect.X, Y: e.Rect.Y, W: e.Rect.W, H: 1}, ' ', e.Style)
	p.DrawText(e.Rect.X, e.Rect.Y, fmt.Sprint(e.val), e.Style)
}

func (e *ReadOnly) Value() any { return e.val }

func (e *ReadOnly) SetValue(v any) error {
	e.val = v
	return nil
}
