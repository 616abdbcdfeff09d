// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sheet/types.go
// Summary: Semantic type tags used as registry keys.
// Usage: Properties declare a Type; the registry maps Types to editor providers.

package sheet

import "strings"

// Type is a semantic type tag. It identifies what kind of value a property
// holds, independent of the Go type carrying it.
type Type string

// Built-in type tags covered by the default editor table.
const (
	TypeText     Type = "text"
	TypeRune     Type = "rune"
	TypeFloat64  Type = "float64"
	TypeFloat32  Type = "float32"
	TypeInt      Type = "int"
	TypeInt64    Type = "int64"
	TypeInt16    Type = "int16"
	TypeInt8     Type = "int8"
	TypeBigInt   Type = "big.Int"
	TypeBigFloat Type = "big.Float"
	TypeBool     Type = "bool"
	TypeFile     Type = "file"
	TypeColor    Type = "color"
	TypeSize     Type = "size"
	TypeInsets   Type = "insets"
	TypeRect     Type = "rect"
	TypeDate     Type = "date"
	TypeFont     Type = "font"
)

const enumPrefix = "enum:"

// EnumOf mints the type tag for a named enumeration. Distinct properties of
// the same enumeration share the tag; the value set travels with the
// property (see Enumerated).
func EnumOf(name string) Type { return Type(enumPrefix + name) }

// IsEnum reports whether the tag names an enumeration.
func (t Type) IsEnum() bool { return strings.HasPrefix(string(t), enumPrefix) }
