// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: editors/string.go
// Summary: Editors for plain text and single characters.

package editors

import "fmt"

// StringEditor edits a text value. Enter commits.
type StringEditor struct {
	Input
}

func NewStringEditor() *StringEditor {
	e := &StringEditor{Input: *NewInput()}
	return e
}

func (e *StringEditor) Value() any { return e.Text }

func (e *StringEditor) SetValue(v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("editors: string editor given %T", v)
	}
	e.SetText(s)
	return nil
}

// SetOnCommit wires the untyped commit callback used by the sheet panel.
func (e *StringEditor) SetOnCommit(fn func(v any)) {
	e.OnCommit = func(text string) { fn(text) }
}

// CharacterEditor edits a single rune. Typing replaces the character.
type CharacterEditor struct {
	Input
}

func NewCharacterEditor() *CharacterEditor {
	e := &CharacterEditor{Input: *NewInput()}
	e.Resize(3, 1)
	// keep at most one rune: replace instead of append
	e.Input.OnChange = func(text string) {
		runes := []rune(text)
		if len(runes) > 1 {
			e.Input.SetText(string(runes[len(runes)-1]))
		}
	}
	return e
}

func (e *CharacterEditor) Value() any {
	runes := []rune(e.Text)
	if len(runes) == 0 {
		return rune(0)
	}
	return runes[0]
}

func (e *CharacterEditor) SetValue(v any) error {
	switch c := v.(type) {
	case rune:
		e.SetText(string(c))
	case string:
		runes := []rune(c)
		if len(runes) > 1 {
			return fmt.Errorf("editors: character editor given %d runes", len(runes))
		}
		e.SetText(c)
	default:
		return fmt.Errorf("editors: character editor given %T", v)
	}
	return nil
}

func (e *CharacterEditor) SetOnCommit(fn func(v any)) {
	e.OnCommit = func(string) { fn(e.Value()) }
}
