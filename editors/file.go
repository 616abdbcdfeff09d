// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: editors/file.go
// Summary: Path editor; flags paths that do not exist on disk.

package editors

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelsheet/core"
	"github.com/framegrace/texelsheet/theme"
)

// FileEditor edits a filesystem path. A missing path is drawn with a
// trailing marker in the error color; the value commits regardless, since
// pointing at a not-yet-created file is legitimate.
type FileEditor struct {
	Input
	missingStyle tcell.Style
	onCommit     func(v any)
}

func NewFileEditor() *FileEditor {
	tm := theme.Get()
	e := &FileEditor{
		Input:        *NewInput(),
		missingStyle: tcell.StyleDefault.Foreground(tm.GetSemanticColor("text.error")),
	}
	e.Input.OnCommit = func(text string) {
		if e.onCommit != nil {
			e.onCommit(text)
		}
	}
	return e
}

func (e *FileEditor) Draw(p *core.Painter) {
	e.Input.Draw(p)
	if e.Text == "" || e.exists() {
		return
	}
	x := e.Rect.X + e.Rect.W - 1
	p.SetCell(x, e.Rect.Y, '!', e.missingStyle)
}

func (e *FileEditor) exists() bool {
	_, err := os.Stat(e.Text)
	return err == nil
}

func (e *FileEditor) Value() any { return e.Text }

func (e *FileEditor) SetValue(v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("editors: file editor given %T", v)
	}
	e.SetText(s)
	return nil
}

func (e *FileEditor) SetOnCommit(fn func(v any)) { e.onCommit = fn }
