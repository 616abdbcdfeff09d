// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: editors/number.go
// Summary: Numeric editor covering machine ints/floats and big numbers.
// Usage: Constructed with a NumberKind; invalid input reverts on commit.

package editors

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// NumberKind selects the parse/format rules of a NumberEditor.
type NumberKind int

const (
	NumberInt NumberKind = iota
	NumberFloat
	NumberBigInt
	NumberBigFloat
)

// NumberEditor edits a numeric value as text. A commit that fails to parse
// reverts the text to the last valid value instead of propagating garbage.
type NumberEditor struct {
	Input
	Kind NumberKind

	val      any
	onCommit func(v any)
}

func NewNumberEditor(kind NumberKind) *NumberEditor {
	e := &NumberEditor{Input: *NewInput(), Kind: kind}
	e.val = e.zero()
	e.SetText(e.format(e.val))
	e.Input.OnCommit = func(text string) { e.commit(text) }
	return e
}

func (e *NumberEditor) zero() any {
	switch e.Kind {
	case NumberFloat:
		return float64(0)
	case NumberBigInt:
		return new(big.Int)
	case NumberBigFloat:
		return new(big.Float)
	default:
		return int64(0)
	}
}

func (e *NumberEditor) format(v any) string {
	switch n := v.(type) {
	case int64:
		return strconv.FormatInt(n, 10)
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	case *big.Int:
		return n.String()
	case *big.Float:
		return n.Text('g', -1)
	default:
		return fmt.Sprint(v)
	}
}

func (e *NumberEditor) parse(text string) (any, error) {
	text = strings.TrimSpace(text)
	switch e.Kind {
	case NumberFloat:
		return strconv.ParseFloat(text, 64)
	case NumberBigInt:
		n, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return nil, fmt.Errorf("editors: %q is not an integer", text)
		}
		return n, nil
	case NumberBigFloat:
		n, _, err := big.ParseFloat(text, 10, big.MaxPrec, big.ToNearestEven)
		if err != nil {
			return nil, err
		}
		return n, nil
	default:
		return strconv.ParseInt(text, 10, 64)
	}
}

func (e *NumberEditor) commit(text string) {
	v, err := e.parse(text)
	if err != nil {
		e.SetText(e.format(e.val))
		return
	}
	e.val = v
	e.SetText(e.format(v))
	if e.onCommit != nil {
		e.onCommit(v)
	}
}

// Value returns the last committed value as int64, float64, *big.Int or
// *big.Float depending on the kind.
func (e *NumberEditor) Value() any { return e.val }

// SetValue accepts any Go numeric type compatible with the kind.
func (e *NumberEditor) SetValue(v any) error {
	norm, err := e.normalize(v)
	if err != nil {
		return err
	}
	e.val = norm
	e.SetText(e.format(norm))
	return nil
}

func (e *NumberEditor) normalize(v any) (any, error) {
	switch e.Kind {
	case NumberFloat:
		switch n := v.(type) {
		case float64:
			return n, nil
		case float32:
			return float64(n), nil
		case int:
			return float64(n), nil
		}
	case NumberBigInt:
		if n, ok := v.(*big.Int); ok {
			return n, nil
		}
	case NumberBigFloat:
		if n, ok := v.(*big.Float); ok {
			return n, nil
		}
	default:
		switch n := v.(type) {
		case int:
			return int64(n), nil
		case int64:
			return n, nil
		case int32:
			return int64(n), nil
		case int16:
			return int64(n), nil
		case int8:
			return int64(n), nil
		}
	}
	return nil, fmt.Errorf("editors: number editor (kind %d) given %T", e.Kind, v)
}

func (e *NumberEditor) SetOnCommit(fn func(v any)) { e.onCommit = fn }
