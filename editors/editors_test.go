// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package editors

import (
	"math/big"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelsheet/core"
)

func typeKeys(w core.Widget, s string) {
	for _, ch := range s {
		w.HandleKey(tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone))
	}
}

func pressEnter(w core.Widget) {
	w.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
}

func TestInputEditingAndCommit(t *testing.T) {
	in := NewInput()
	in.Resize(10, 1)
	in.Focus()

	var committed string
	in.OnCommit = func(text string) { committed = text }

	typeKeys(in, "hello")
	in.HandleKey(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	typeKeys(in, "p!")
	pressEnter(in)

	if in.Text != "hellp!" {
		t.Fatalf("unexpected text %q", in.Text)
	}
	if committed != "hellp!" {
		t.Fatalf("commit got %q", committed)
	}
}

func TestNumberEditorRevertsInvalidInput(t *testing.T) {
	e := NewNumberEditor(NumberInt)
	e.Focus()
	if err := e.SetValue(42); err != nil {
		t.Fatalf("SetValue: %v", err)
	}

	var committed any
	e.SetOnCommit(func(v any) { committed = v })

	e.Input.HandleKey(tcell.NewEventKey(tcell.KeyCtrlU, 0, tcell.ModNone))
	typeKeys(e, "not a number")
	pressEnter(e)

	if committed != nil {
		t.Fatalf("invalid input must not commit, got %v", committed)
	}
	if e.Value() != int64(42) {
		t.Fatalf("value should revert to 42, got %v", e.Value())
	}
	if e.Text != "42" {
		t.Fatalf("text should revert to the last valid value, got %q", e.Text)
	}

	e.Input.HandleKey(tcell.NewEventKey(tcell.KeyCtrlU, 0, tcell.ModNone))
	typeKeys(e, "-7")
	pressEnter(e)
	if committed != int64(-7) {
		t.Fatalf("expected committed -7, got %v", committed)
	}
}

func TestNumberEditorKinds(t *testing.T) {
	f := NewNumberEditor(NumberFloat)
	if err := f.SetValue(1.5); err != nil {
		t.Fatalf("float SetValue: %v", err)
	}
	if f.Text != "1.5" {
		t.Fatalf("float format got %q", f.Text)
	}

	bi := NewNumberEditor(NumberBigInt)
	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	if err := bi.SetValue(huge); err != nil {
		t.Fatalf("bigint SetValue: %v", err)
	}
	if bi.Text != huge.String() {
		t.Fatalf("bigint format got %q", bi.Text)
	}

	if err := bi.SetValue("nope"); err == nil {
		t.Fatalf("bigint editor accepted a string")
	}
}

func TestBooleanEditorToggles(t *testing.T) {
	e := NewBooleanEditor()
	e.Focus()
	var committed any
	e.SetOnCommit(func(v any) { committed = v })

	e.HandleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if e.Value() != true || committed != true {
		t.Fatalf("space should toggle on and commit, value=%v committed=%v", e.Value(), committed)
	}
	pressEnter(e)
	if e.Value() != false || committed != false {
		t.Fatalf("enter should toggle off and commit")
	}
}

func TestEnumEditorCyclesAndCommits(t *testing.T) {
	e := NewEnumEditor([]string{"left", "center", "right"})
	e.Focus()
	var committed any
	e.SetOnCommit(func(v any) { committed = v })

	e.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	e.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	pressEnter(e)
	if committed != "right" {
		t.Fatalf("expected right, got %v", committed)
	}
	e.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	pressEnter(e)
	if committed != "left" {
		t.Fatalf("cycling should wrap, got %v", committed)
	}
}

func TestColorEditorParsesHexAndNames(t *testing.T) {
	e := NewColorEditor()
	e.Focus()
	var committed any
	e.SetOnCommit(func(v any) { committed = v })

	typeKeys(e, "#ff0000")
	pressEnter(e)
	if committed != tcell.GetColor("#ff0000") {
		t.Fatalf("hex parse got %v", committed)
	}

	e.Input.HandleKey(tcell.NewEventKey(tcell.KeyCtrlU, 0, tcell.ModNone))
	typeKeys(e, "teal")
	pressEnter(e)
	if committed != tcell.ColorTeal {
		t.Fatalf("named parse got %v", committed)
	}

	if err := e.SetValue(12); err == nil {
		t.Fatalf("color editor accepted an int")
	}
}

func TestCharacterEditorKeepsOneRune(t *testing.T) {
	e := NewCharacterEditor()
	e.Focus()
	typeKeys(e, "ab")
	if e.Value() != 'b' {
		t.Fatalf("expected last typed rune, got %q", e.Value())
	}
	if err := e.SetValue("xy"); err == nil {
		t.Fatalf("two runes must be rejected")
	}
}

func TestGeometryEditorsRoundTrip(t *testing.T) {
	d := NewDimensionEditor()
	d.Focus()
	var committed any
	d.SetOnCommit(func(v any) { committed = v })
	d.Input.HandleKey(tcell.NewEventKey(tcell.KeyCtrlU, 0, tcell.ModNone))
	typeKeys(d, "80x24")
	pressEnter(d)
	if committed != (core.Size{W: 80, H: 24}) {
		t.Fatalf("dimension commit got %v", committed)
	}

	r := NewRectangleEditor()
	r.Focus()
	r.SetOnCommit(func(v any) { committed = v })
	r.Input.HandleKey(tcell.NewEventKey(tcell.KeyCtrlU, 0, tcell.ModNone))
	typeKeys(r, "1,2,30,40")
	pressEnter(r)
	if committed != (core.Rect{X: 1, Y: 2, W: 30, H: 40}) {
		t.Fatalf("rectangle commit got %v", committed)
	}

	i := NewInsetsEditor()
	i.Focus()
	i.SetOnCommit(func(v any) { committed = v })
	i.Input.HandleKey(tcell.NewEventKey(tcell.KeyCtrlU, 0, tcell.ModNone))
	typeKeys(i, "1,2")
	pressEnter(i)
	if _, ok := committed.(core.Insets); ok {
		t.Fatalf("short insets input must not commit")
	}
	if i.Text != "0,0,0,0" {
		t.Fatalf("insets should revert, got %q", i.Text)
	}
}

func TestDateEditorParsesISO(t *testing.T) {
	e := NewDateEditor()
	e.Focus()
	var committed any
	e.SetOnCommit(func(v any) { committed = v })

	typeKeys(e, "2025-06-30")
	pressEnter(e)
	want := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	if committed != want {
		t.Fatalf("date commit got %v", committed)
	}

	e.Input.HandleKey(tcell.NewEventKey(tcell.KeyCtrlU, 0, tcell.ModNone))
	typeKeys(e, "junk")
	pressEnter(e)
	if e.Text != "2025-06-30" {
		t.Fatalf("invalid date should revert, got %q", e.Text)
	}
}

func TestFileEditorDrawsMissingMarker(t *testing.T) {
	e := NewFileEditor()
	e.Resize(20, 1)
	if err := e.SetValue("/definitely/not/here"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	buf := core.NewBuffer(20, 1, tcell.StyleDefault)
	e.Draw(core.NewPainter(buf))
	if buf[0][19].Ch != '!' {
		t.Fatalf("expected missing-path marker, got %q", buf[0][19].Ch)
	}

	dir := t.TempDir()
	if err := e.SetValue(dir); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	buf = core.NewBuffer(20, 1, tcell.StyleDefault)
	e.Draw(core.NewPainter(buf))
	if buf[0][19].Ch == '!' {
		t.Fatalf("existing path must not be flagged")
	}
}
