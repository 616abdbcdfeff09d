// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/painter.go
// Summary: Painter draws runes, text and fills into a shared cell buffer.
// Usage: Widgets receive a Painter in Draw and never touch the buffer directly.

package core

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Painter draws into a cell buffer, clipping to its bounds.
type Painter struct {
	buf  [][]Cell
	clip Rect
}

// NewPainter wraps a buffer. The clip starts at the full buffer extent.
func NewPainter(buf [][]Cell) *Painter {
	h := len(buf)
	w := 0
	if h > 0 {
		w = len(buf[0])
	}
	return &Painter{buf: buf, clip: Rect{W: w, H: h}}
}

// SetClip restricts subsequent drawing to r intersected with the buffer.
func (p *Painter) SetClip(r Rect) {
	h := len(p.buf)
	w := 0
	if h > 0 {
		w = len(p.buf[0])
	}
	p.clip = r.Intersect(Rect{W: w, H: h})
}

// SetCell writes a single rune at (x, y) if inside the clip.
func (p *Painter) SetCell(x, y int, ch rune, style tcell.Style) {
	if !p.clip.Contains(x, y) {
		return
	}
	p.buf[y][x] = Cell{Ch: ch, Style: style}
}

// Fill floods r with ch in the given style.
func (p *Painter) Fill(r Rect, ch rune, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			p.SetCell(x, y, ch, style)
		}
	}
}

// DrawText writes s starting at (x, y), advancing by display width.
// Wide runes leave a zero-rune continuation cell so the composer can skip it.
func (p *Painter) DrawText(x, y int, s string, style tcell.Style) {
	cx := x
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		p.SetCell(cx, y, ch, style)
		if w == 2 {
			p.SetCell(cx+1, y, 0, style)
		}
		cx += w
	}
}
