// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: editors/date.go
// Summary: Calendar-date editor, ISO "YYYY-MM-DD" entry.

package editors

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DateEditor edits a calendar date. Up/Down on a focused editor step the
// day; typed text commits when it parses as YYYY-MM-DD.
type DateEditor struct {
	Input
	date     time.Time
	onCommit func(v any)
}

func NewDateEditor() *DateEditor {
	e := &DateEditor{Input: *NewInput()}
	e.Input.OnCommit = func(text string) {
		d, err := time.Parse(dateLayout, text)
		if err != nil {
			e.SetText(e.formatted())
			return
		}
		e.date = d
		e.SetText(e.formatted())
		if e.onCommit != nil {
			e.onCommit(d)
		}
	}
	return e
}

func (e *DateEditor) formatted() string {
	if e.date.IsZero() {
		return ""
	}
	return e.date.Format(dateLayout)
}

func (e *DateEditor) Value() any { return e.date }

func (e *DateEditor) SetValue(v any) error {
	switch d := v.(type) {
	case time.Time:
		e.date = d
	case string:
		parsed, err := time.Parse(dateLayout, d)
		if err != nil {
			return fmt.Errorf("editors: %q is not a date: %w", d, err)
		}
		e.date = parsed
	default:
		return fmt.Errorf("editors: date editor given %T", v)
	}
	e.SetText(e.formatted())
	return nil
}

func (e *DateEditor) SetOnCommit(fn func(v any)) { e.onCommit = fn }
