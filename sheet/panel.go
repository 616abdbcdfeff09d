// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sheet/panel.go
// Summary: Property-sheet panel: renders name/editor rows and routes input.
// Usage: Hosts add properties, call Reload, and mount the panel as a widget.

package sheet

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelsheet/core"
	"github.com/framegrace/texelsheet/editors"
	"github.com/framegrace/texelsheet/theme"
)

type panelRow struct {
	prop   Property
	editor Editor // never nil after Reload; read-only rows get a ReadOnly
	live   bool   // false when the row degraded to read-only
}

// Panel is a scrollable property sheet backed by a Registry. Rows render
// "name: editor"; properties without a resolvable editor degrade to a
// read-only value display.
type Panel struct {
	core.BaseWidget
	LabelWidth int

	registry   *Registry
	props      []Property
	rows       []panelRow
	focusIdx   int
	scroll     int
	labelStyle tcell.Style
	bgStyle    tcell.Style
	inv        func(core.Rect)
}

// NewPanel creates an empty panel resolving editors through reg.
func NewPanel(reg *Registry) *Panel {
	tm := theme.Get()
	fg := tm.GetSemanticColor("text.primary")
	bg := tm.GetSemanticColor("bg.surface")
	pl := &Panel{
		LabelWidth: 18,
		registry:   reg,
		focusIdx:   -1,
		labelStyle: tcell.StyleDefault.Foreground(fg).Background(bg).Bold(true),
		bgStyle:    tcell.StyleDefault.Foreground(fg).Background(bg),
	}
	pl.SetFocusable(true)
	return pl
}

func (pl *Panel) SetInvalidator(fn func(core.Rect)) { pl.inv = fn }

// AddProperty appends a property. Call Reload before the next draw.
func (pl *Panel) AddProperty(p Property) { pl.props = append(pl.props, p) }

// SetProperties replaces the property list. Call Reload before the next draw.
func (pl *Panel) SetProperties(props []Property) { pl.props = props }

// Properties returns the current property list in display order.
func (pl *Panel) Properties() []Property { return pl.props }

// Reload resolves an editor for every property. A resolution miss renders
// the row read-only; a construction error is logged (it is a host
// misconfiguration) and the row also degrades rather than crashing the
// sheet.
func (pl *Panel) Reload() {
	pl.rows = pl.rows[:0]
	for _, p := range pl.props {
		row := panelRow{prop: p}
		editor, err := pl.registry.Resolve(p)
		switch {
		case err != nil:
			log.Printf("sheet: editor for %q: %v", p.Name(), err)
		case editor == nil:
			// quiet miss: no editor anywhere for this type
		default:
			row.editor = editor
			row.live = true
			if v := p.Value(); v != nil {
				if serr := editor.SetValue(v); serr != nil {
					log.Printf("sheet: seed editor for %q: %v", p.Name(), serr)
				}
			}
			pl.wireCommit(row)
		}
		if !row.live {
			row.editor = editors.NewReadOnly(p.Value())
		}
		pl.rows = append(pl.rows, row)
	}
	if pl.focusIdx >= len(pl.rows) {
		pl.focusIdx = -1
	}
	pl.invalidate()
}

func (pl *Panel) wireCommit(row panelRow) {
	cn, ok := row.editor.(CommitNotifier)
	if !ok {
		return
	}
	prop := row.prop
	cn.SetOnCommit(func(v any) {
		if err := prop.SetValue(v); err != nil {
			log.Printf("sheet: set %q: %v", prop.Name(), err)
		}
	})
}

func (pl *Panel) rowHeight(i int) int {
	_, h := pl.rows[i].editor.Size()
	if h < 1 {
		h = 1
	}
	return h
}

func (pl *Panel) invalidate() {
	if pl.inv != nil {
		pl.inv(pl.Rect)
	}
}

func (pl *Panel) Draw(p *core.Painter) {
	p.Fill(pl.Rect, ' ', pl.bgStyle)

	y := pl.Rect.Y
	for i := pl.scroll; i < len(pl.rows); i++ {
		h := pl.rowHeight(i)
		if y+h > pl.Rect.Y+pl.Rect.H {
			break
		}
		row := pl.rows[i]

		label := row.prop.Name()
		if len(label) > pl.LabelWidth-2 {
			label = label[:pl.LabelWidth-2]
		}
		p.DrawText(pl.Rect.X, y, label, pl.labelStyle)

		ew := pl.Rect.W - pl.LabelWidth
		if ew < 1 {
			ew = 1
		}
		row.editor.SetPosition(pl.Rect.X+pl.LabelWidth, y)
		w, eh := row.editor.Size()
		if w != ew {
			row.editor.Resize(ew, eh)
		}
		row.editor.Draw(p)
		y += h
	}
}

// HandleKey gives the focused editor first refusal, then handles row
// navigation (Up/Down, Tab/Backtab).
func (pl *Panel) HandleKey(ev *tcell.EventKey) bool {
	if pl.focusIdx >= 0 && pl.focusIdx < len(pl.rows) {
		if pl.rows[pl.focusIdx].editor.HandleKey(ev) {
			pl.invalidate()
			return true
		}
	}
	switch ev.Key() {
	case tcell.KeyUp, tcell.KeyBacktab:
		pl.moveFocus(-1)
		return true
	case tcell.KeyDown, tcell.KeyTab:
		pl.moveFocus(1)
		return true
	}
	return false
}

func (pl *Panel) moveFocus(delta int) {
	if len(pl.rows) == 0 {
		return
	}
	start := pl.focusIdx
	idx := start
	for range pl.rows {
		idx += delta
		if idx < 0 {
			idx = len(pl.rows) - 1
		}
		if idx >= len(pl.rows) {
			idx = 0
		}
		if pl.rows[idx].editor.Focusable() {
			pl.setFocus(idx)
			return
		}
		if idx == start {
			return
		}
	}
}

func (pl *Panel) setFocus(idx int) {
	if pl.focusIdx >= 0 && pl.focusIdx < len(pl.rows) {
		pl.rows[pl.focusIdx].editor.Blur()
	}
	pl.focusIdx = idx
	pl.rows[idx].editor.Focus()
	pl.ensureVisible(idx)
	pl.invalidate()
}

// FocusedProperty returns the property of the focused row, or nil.
func (pl *Panel) FocusedProperty() Property {
	if pl.focusIdx < 0 || pl.focusIdx >= len(pl.rows) {
		return nil
	}
	return pl.rows[pl.focusIdx].prop
}

func (pl *Panel) ensureVisible(idx int) {
	if idx < pl.scroll {
		pl.scroll = idx
		return
	}
	// walk forward until the row fits in the viewport
	for {
		y := 0
		for i := pl.scroll; i <= idx; i++ {
			y += pl.rowHeight(i)
		}
		if y <= pl.Rect.H || pl.scroll >= idx {
			return
		}
		pl.scroll++
	}
}

func (pl *Panel) Focus() {
	pl.BaseWidget.Focus()
	if pl.focusIdx < 0 {
		pl.moveFocus(1)
	}
}

func (pl *Panel) Blur() {
	if pl.focusIdx >= 0 && pl.focusIdx < len(pl.rows) {
		pl.rows[pl.focusIdx].editor.Blur()
	}
	pl.BaseWidget.Blur()
}
