// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/sheet-demo/main.go
// Summary: Interactive demo covering the default editor table plus a
//          custom-registered type and an enum.

package main

import (
	"flag"
	"log"
	"math/big"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelsheet/core"
	"github.com/framegrace/texelsheet/editors"
	_ "github.com/framegrace/texelsheet/editors/fontpicker"
	"github.com/framegrace/texelsheet/internal/devshell"
	"github.com/framegrace/texelsheet/sheet"
)

const typeJSON = sheet.Type("json")

func main() {
	flag.Parse()

	reg := sheet.NewRegistry()
	reg.RegisterEditor(typeJSON, sheet.Factory(func() (sheet.Editor, error) {
		e := editors.NewTextEditor("json")
		e.Resize(40, 5)
		return e, nil
	}))

	panel := sheet.NewPanel(reg)
	for _, p := range sampleProperties() {
		panel.AddProperty(p)
	}

	if err := devshell.Run(panel); err != nil {
		log.Fatalf("sheet-demo: %v", err)
	}
}

func sampleProperties() []sheet.Property {
	name := sheet.NewField("name", sheet.TypeText, "New Widget")
	width := sheet.NewField("width", sheet.TypeInt, 80)
	ratio := sheet.NewField("ratio", sheet.TypeFloat64, 1.6180)
	precise := sheet.NewField("precision", sheet.TypeBigFloat, big.NewFloat(3.14159265358979))
	visible := sheet.NewField("visible", sheet.TypeBool, true)
	accent := sheet.NewField("accent", sheet.TypeColor, tcell.ColorTeal)
	bounds := sheet.NewField("bounds", sheet.TypeRect, core.Rect{X: 0, Y: 0, W: 80, H: 24})
	margin := sheet.NewField("margin", sheet.TypeInsets, core.Insets{Top: 1, Left: 2, Bottom: 1, Right: 2})
	minSize := sheet.NewField("min_size", sheet.TypeSize, core.Size{W: 20, H: 5})
	created := sheet.NewField("created", sheet.TypeDate, time.Now().Truncate(24*time.Hour))
	logFile := sheet.NewField("log_file", sheet.TypeFile, "/tmp/sheet-demo.log")
	family := sheet.NewField("font_family", sheet.TypeFont, "monospace")

	align := sheet.NewField("alignment", sheet.EnumOf("alignment"), "left")
	align.SetEnumValues([]string{"left", "center", "right"})

	payload := sheet.NewField("payload", typeJSON, "{\n  \"enabled\": true\n}")

	return []sheet.Property{
		name, width, ratio, precise, visible, accent,
		bounds, margin, minSize, created, logFile, family,
		align, payload,
	}
}
