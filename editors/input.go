// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: editors/input.go
// Summary: Single-line text input, the base most editors build on.

package editors

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelsheet/core"
	"github.com/framegrace/texelsheet/theme"
)

// Input is a minimal single-line text editor with a horizontal viewport.
type Input struct {
	core.BaseWidget
	Text        string
	Placeholder string
	Style       tcell.Style
	CaretStyle  tcell.Style

	// OnChange fires on every edit, OnCommit when the user presses Enter.
	OnChange func(text string)
	OnCommit func(text string)

	caret int // rune index into Text
	offX  int
	inv   func(core.Rect)
}

// NewInput creates an unfocused, one-row input.
func NewInput() *Input {
	tm := theme.Get()
	bg := tm.GetColor("ui", "text_bg", tcell.ColorBlack)
	fg := tm.GetColor("ui", "text_fg", tcell.ColorWhite)
	caret := tm.GetColor("ui", "caret_fg", tcell.ColorSilver)
	in := &Input{
		Style:      tcell.StyleDefault.Background(bg).Foreground(fg),
		CaretStyle: tcell.StyleDefault.Background(caret).Foreground(bg),
	}
	in.Resize(10, 1)
	in.SetFocusable(true)
	return in
}

// SetInvalidator allows the UI manager to inject a dirty-region invalidator.
func (in *Input) SetInvalidator(fn func(core.Rect)) { in.inv = fn }

// SetText replaces the content and moves the caret to the end.
func (in *Input) SetText(s string) {
	in.Text = s
	in.caret = len([]rune(s))
	in.clamp()
	in.invalidate()
}

func (in *Input) invalidate() {
	if in.inv != nil {
		in.inv(in.Rect)
	}
}

func (in *Input) clamp() {
	n := len([]rune(in.Text))
	if in.caret < 0 {
		in.caret = 0
	}
	if in.caret > n {
		in.caret = n
	}
	if in.caret < in.offX {
		in.offX = in.caret
	}
	if in.Rect.W > 0 && in.caret >= in.offX+in.Rect.W {
		in.offX = in.caret - in.Rect.W + 1
	}
	if in.offX < 0 {
		in.offX = 0
	}
}

func (in *Input) Draw(p *core.Painter) {
	p.Fill(core.Rect{X: in.Rect.X, Y: in.Rect.Y, W: in.Rect.W, H: 1}, ' ', in.Style)

	text := in.Text
	style := in.Style
	if text == "" && in.Placeholder != "" && !in.IsFocused() {
		text = in.Placeholder
		style = style.Dim(true)
	}

	runes := []rune(text)
	cx := in.Rect.X
	for i := in.offX; i < len(runes); i++ {
		w := runewidth.RuneWidth(runes[i])
		if cx+w > in.Rect.X+in.Rect.W {
			break
		}
		cs := style
		if in.IsFocused() && i == in.caret {
			cs = in.CaretStyle
		}
		p.SetCell(cx, in.Rect.Y, runes[i], cs)
		if w == 2 {
			p.SetCell(cx+1, in.Rect.Y, 0, cs)
		}
		cx += w
	}
	// caret past end of text
	if in.IsFocused() && in.caret >= len(runes) && cx < in.Rect.X+in.Rect.W {
		p.SetCell(cx, in.Rect.Y, ' ', in.CaretStyle)
	}
}

func (in *Input) HandleKey(ev *tcell.EventKey) bool {
	runes := []rune(in.Text)
	switch ev.Key() {
	case tcell.KeyRune:
		runes = append(runes[:in.caret], append([]rune{ev.Rune()}, runes[in.caret:]...)...)
		in.Text = string(runes)
		in.caret++
		in.changed()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if in.caret > 0 {
			runes = append(runes[:in.caret-1], runes[in.caret:]...)
			in.Text = string(runes)
			in.caret--
			in.changed()
		}
	case tcell.KeyDelete:
		if in.caret < len(runes) {
			runes = append(runes[:in.caret], runes[in.caret+1:]...)
			in.Text = string(runes)
			in.changed()
		}
	case tcell.KeyLeft:
		in.caret--
	case tcell.KeyRight:
		in.caret++
	case tcell.KeyHome, tcell.KeyCtrlA:
		in.caret = 0
	case tcell.KeyEnd, tcell.KeyCtrlE:
		in.caret = len(runes)
	case tcell.KeyCtrlU:
		in.Text = ""
		in.caret = 0
		in.changed()
	case tcell.KeyEnter:
		if in.OnCommit != nil {
			in.OnCommit(in.Text)
		}
	default:
		return false
	}
	in.clamp()
	in.invalidate()
	return true
}

func (in *Input) changed() {
	if in.OnChange != nil {
		in.OnChange(in.Text)
	}
}
