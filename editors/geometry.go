// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: editors/geometry.go
// Summary: Editors for sizes, insets and rectangles entered as short
//          textual forms ("80x24", "1,2,1,2", "0,0,80,24").

package editors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/framegrace/texelsheet/core"
)

func splitInts(s string, sep string, want int) ([]int, error) {
	parts := strings.Split(strings.TrimSpace(s), sep)
	if len(parts) != want {
		return nil, fmt.Errorf("editors: want %d fields, got %d", want, len(parts))
	}
	out := make([]int, want)
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// DimensionEditor edits a core.Size as "WxH".
type DimensionEditor struct {
	Input
	size     core.Size
	onCommit func(v any)
}

func NewDimensionEditor() *DimensionEditor {
	e := &DimensionEditor{Input: *NewInput()}
	e.SetText(formatSize(e.size))
	e.Input.OnCommit = func(text string) {
		n, err := splitInts(text, "x", 2)
		if err != nil {
			e.SetText(formatSize(e.size))
			return
		}
		e.size = core.Size{W: n[0], H: n[1]}
		e.SetText(formatSize(e.size))
		if e.onCommit != nil {
			e.onCommit(e.size)
		}
	}
	return e
}

func formatSize(s core.Size) string { return fmt.Sprintf("%dx%d", s.W, s.H) }

func (e *DimensionEditor) Value() any { return e.size }

func (e *DimensionEditor) SetValue(v any) error {
	s, ok := v.(core.Size)
	if !ok {
		return fmt.Errorf("editors: dimension editor given %T", v)
	}
	e.size = s
	e.SetText(formatSize(s))
	return nil
}

func (e *DimensionEditor) SetOnCommit(fn func(v any)) { e.onCommit = fn }

// InsetsEditor edits core.Insets as "top,left,bottom,right".
type InsetsEditor struct {
	Input
	insets   core.Insets
	onCommit func(v any)
}

func NewInsetsEditor() *InsetsEditor {
	e := &InsetsEditor{Input: *NewInput()}
	e.SetText(formatInsets(e.insets))
	e.Input.OnCommit = func(text string) {
		n, err := splitInts(text, ",", 4)
		if err != nil {
			e.SetText(formatInsets(e.insets))
			return
		}
		e.insets = core.Insets{Top: n[0], Left: n[1], Bottom: n[2], Right: n[3]}
		e.SetText(formatInsets(e.insets))
		if e.onCommit != nil {
			e.onCommit(e.insets)
		}
	}
	return e
}

func formatInsets(i core.Insets) string {
	return fmt.Sprintf("%d,%d,%d,%d", i.Top, i.Left, i.Bottom, i.Right)
}

func (e *InsetsEditor) Value() any { return e.insets }

func (e *InsetsEditor) SetValue(v any) error {
	i, ok := v.(core.Insets)
	if !ok {
		return fmt.Errorf("editors: insets editor given %T", v)
	}
	e.insets = i
	e.SetText(formatInsets(i))
	return nil
}

func (e *InsetsEditor) SetOnCommit(fn func(v any)) { e.onCommit = fn }

// RectangleEditor edits a core.Rect as "x,y,w,h".
type RectangleEditor struct {
	Input
	rect     core.Rect
	onCommit func(v any)
}

func NewRectangleEditor() *RectangleEditor {
	e := &RectangleEditor{Input: *NewInput()}
	e.SetText(formatRect(e.rect))
	e.Input.OnCommit = func(text string) {
		n, err := splitInts(text, ",", 4)
		if err != nil {
			e.SetText(formatRect(e.rect))
			return
		}
		e.rect = core.Rect{X: n[0], Y: n[1], W: n[2], H: n[3]}
		e.SetText(formatRect(e.rect))
		if e.onCommit != nil {
			e.onCommit(e.rect)
		}
	}
	return e
}

func formatRect(r core.Rect) string {
	return fmt.Sprintf("%d,%d,%d,%d", r.X, r.Y, r.W, r.H)
}

func (e *RectangleEditor) Value() any { return e.rect }

func (e *RectangleEditor) SetValue(v any) error {
	r, ok := v.(core.Rect)
	if !ok {
		return fmt.Errorf("editors: rectangle editor given %T", v)
	}
	e.rect = r
	e.SetText(formatRect(r))
	return nil
}

func (e *RectangleEditor) SetOnCommit(fn func(v any)) { e.onCommit = fn }
