// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/runner.go
// Summary: Runs a property-sheet panel on a local tcell screen.
// Usage: Development harness for the demo binaries; not part of the library API.

package devshell

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/framegrace/texelsheet/core"
	"github.com/framegrace/texelsheet/sheet"
	"github.com/framegrace/texelsheet/theme"
)

// ErrNotATerminal is returned when stdin is not an interactive terminal.
var ErrNotATerminal = errors.New("devshell: stdin is not a terminal")

var (
	screenFactory  = tcell.NewScreen
	defaultFactory = true
)

// SetScreenFactory overrides the screen factory used by Run. Passing nil
// restores the default. Tests inject a simulation screen through this.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		defaultFactory = true
		return
	}
	screenFactory = factory
	defaultFactory = false
}

// Run displays the panel until the user presses Esc or Ctrl+C.
func Run(panel *sheet.Panel) error {
	if defaultFactory && !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrNotATerminal
	}

	screen, err := screenFactory()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.Clear()

	tm := theme.Get()
	bg := tm.GetSemanticColor("bg.surface")
	fg := tm.GetSemanticColor("text.primary")
	baseStyle := tcell.StyleDefault.Background(bg).Foreground(fg)

	w, h := screen.Size()
	panel.SetPosition(0, 0)
	panel.Resize(w, h)
	panel.Reload()
	panel.Focus()

	draw := func() {
		w, h := screen.Size()
		buf := core.NewBuffer(w, h, baseStyle)
		panel.Resize(w, h)
		panel.Draw(core.NewPainter(buf))
		for y := range buf {
			for x := range buf[y] {
				cell := buf[y][x]
				if cell.Ch == 0 {
					continue // wide-rune continuation
				}
				screen.SetContent(x, y, cell.Ch, nil, cell.Style)
			}
		}
		screen.Show()
	}

	draw()
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return nil
			}
			panel.HandleKey(ev)
			draw()
		case nil:
			return nil
		}
	}
}
