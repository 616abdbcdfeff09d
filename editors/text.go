// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: editors/text.go
// Summary: Multiline text editor with syntax highlighting, for structured
//          values (JSON by default) too big for a one-line field.

package editors

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelsheet/core"
	"github.com/framegrace/texelsheet/theme"
)

const defaultChromaStyle = "catppuccin-mocha"

// TextEditor is a minimal multiline editor. The buffer is highlighted with
// the configured lexer on every draw; edits work on plain runes. The commit
// fires on blur, matching form-style editing.
type TextEditor struct {
	core.BaseWidget
	Lines      []string
	CaretX     int
	CaretY     int
	OffX       int
	OffY       int
	Style      tcell.Style
	CaretStyle tcell.Style

	lexer    chroma.Lexer
	cstyle   *chroma.Style
	onCommit func(v any)
	inv      func(core.Rect)
}

// NewTextEditor creates an editor highlighting the given language
// ("json", "yaml", ...). An unknown name falls back to plain text.
func NewTextEditor(language string) *TextEditor {
	tm := theme.Get()
	bg := tm.GetColor("ui", "text_bg", tcell.ColorBlack)
	fg := tm.GetColor("ui", "text_fg", tcell.ColorWhite)
	caret := tm.GetColor("ui", "caret_fg", tcell.ColorSilver)

	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	cs := styles.Get(defaultChromaStyle)

	e := &TextEditor{
		Lines:      []string{""},
		Style:      tcell.StyleDefault.Background(bg).Foreground(fg),
		CaretStyle: tcell.StyleDefault.Background(caret).Foreground(bg),
		lexer:      chroma.Coalesce(lexer),
		cstyle:     cs,
	}
	e.Resize(24, 4)
	e.SetFocusable(true)
	return e
}

func (e *TextEditor) SetInvalidator(fn func(core.Rect)) { e.inv = fn }

// SetText replaces the buffer.
func (e *TextEditor) SetText(s string) {
	e.Lines = strings.Split(s, "\n")
	if len(e.Lines) == 0 {
		e.Lines = []string{""}
	}
	e.CaretX, e.CaretY, e.OffX, e.OffY = 0, 0, 0, 0
	e.invalidate()
}

// Text returns the buffer joined with newlines.
func (e *TextEditor) Text() string { return strings.Join(e.Lines, "\n") }

func (e *TextEditor) invalidate() {
	if e.inv != nil {
		e.inv(e.Rect)
	}
}

func (e *TextEditor) clampCaret() {
	if e.CaretY < 0 {
		e.CaretY = 0
	}
	if e.CaretY >= len(e.Lines) {
		e.CaretY = len(e.Lines) - 1
	}
	maxX := len([]rune(e.Lines[e.CaretY]))
	if e.CaretX < 0 {
		e.CaretX = 0
	}
	if e.CaretX > maxX {
		e.CaretX = maxX
	}
}

func (e *TextEditor) ensureVisible() {
	if e.CaretX < e.OffX {
		e.OffX = e.CaretX
	}
	if e.Rect.W > 0 && e.CaretX >= e.OffX+e.Rect.W {
		e.OffX = e.CaretX - e.Rect.W + 1
	}
	if e.CaretY < e.OffY {
		e.OffY = e.CaretY
	}
	if e.Rect.H > 0 && e.CaretY >= e.OffY+e.Rect.H {
		e.OffY = e.CaretY - e.Rect.H + 1
	}
}

// lineStyles tokenizes the whole buffer so the lexer keeps multi-line
// context, then maps token colors onto per-rune styles.
func (e *TextEditor) lineStyles() [][]tcell.Style {
	out := make([][]tcell.Style, len(e.Lines))
	for i, line := range e.Lines {
		row := make([]tcell.Style, len([]rune(line)))
		for j := range row {
			row[j] = e.Style
		}
		out[i] = row
	}

	it, err := e.lexer.Tokenise(nil, e.Text())
	if err != nil {
		return out
	}
	y, x := 0, 0
	for tok := it(); tok != chroma.EOF; tok = it() {
		entry := e.cstyle.Get(tok.Type)
		style := e.Style
		if entry.Colour.IsSet() {
			hex := int32(entry.Colour.Red())<<16 | int32(entry.Colour.Green())<<8 | int32(entry.Colour.Blue())
			style = style.Foreground(tcell.NewHexColor(hex))
		}
		if entry.Bold == chroma.Yes {
			style = style.Bold(true)
		}
		for _, ch := range tok.Value {
			if ch == '\n' {
				y++
				x = 0
				continue
			}
			if y < len(out) && x < len(out[y]) {
				out[y][x] = style
			}
			x++
		}
	}
	return out
}

func (e *TextEditor) Draw(p *core.Painter) {
	p.Fill(e.Rect, ' ', e.Style)
	hl := e.lineStyles()
	for row := 0; row < e.Rect.H; row++ {
		ly := e.OffY + row
		if ly >= len(e.Lines) {
			break
		}
		runes := []rune(e.Lines[ly])
		for col := 0; col < e.Rect.W; col++ {
			lx := e.OffX + col
			if lx >= len(runes) {
				break
			}
			style := hl[ly][lx]
			if e.IsFocused() && ly == e.CaretY && lx == e.CaretX {
				style = e.CaretStyle
			}
			p.SetCell(e.Rect.X+col, e.Rect.Y+row, runes[lx], style)
		}
		if e.IsFocused() && ly == e.CaretY && e.CaretX >= len(runes) {
			cx := e.Rect.X + e.CaretX - e.OffX
			if cx < e.Rect.X+e.Rect.W {
				p.SetCell(cx, e.Rect.Y+row, ' ', e.CaretStyle)
			}
		}
	}
}

func (e *TextEditor) HandleKey(ev *tcell.EventKey) bool {
	line := []rune(e.Lines[e.CaretY])
	switch ev.Key() {
	case tcell.KeyRune:
		line = append(line[:e.CaretX], append([]rune{ev.Rune()}, line[e.CaretX:]...)...)
		e.Lines[e.CaretY] = string(line)
		e.CaretX++
	case tcell.KeyEnter:
		rest := string(line[e.CaretX:])
		e.Lines[e.CaretY] = string(line[:e.CaretX])
		e.Lines = append(e.Lines[:e.CaretY+1], append([]string{rest}, e.Lines[e.CaretY+1:]...)...)
		e.CaretY++
		e.CaretX = 0
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if e.CaretX > 0 {
			line = append(line[:e.CaretX-1], line[e.CaretX:]...)
			e.Lines[e.CaretY] = string(line)
			e.CaretX--
		} else if e.CaretY > 0 {
			prev := []rune(e.Lines[e.CaretY-1])
			e.CaretX = len(prev)
			e.Lines[e.CaretY-1] = string(prev) + string(line)
			e.Lines = append(e.Lines[:e.CaretY], e.Lines[e.CaretY+1:]...)
			e.CaretY--
		}
	case tcell.KeyLeft:
		e.CaretX--
	case tcell.KeyRight:
		e.CaretX++
	case tcell.KeyUp:
		e.CaretY--
	case tcell.KeyDown:
		e.CaretY++
	case tcell.KeyHome:
		e.CaretX = 0
	case tcell.KeyEnd:
		e.CaretX = len(line)
	default:
		return false
	}
	e.clampCaret()
	e.ensureVisible()
	e.invalidate()
	return true
}

// Blur commits the buffer, form-style.
func (e *TextEditor) Blur() {
	e.BaseWidget.Blur()
	if e.onCommit != nil {
		e.onCommit(e.Text())
	}
}

func (e *TextEditor) Value() any { return e.Text() }

func (e *TextEditor) SetValue(v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("editors: text editor given %T", v)
	}
	e.SetText(s)
	return nil
}

func (e *TextEditor) SetOnCommit(fn func(v any)) { e.onCommit = fn }
