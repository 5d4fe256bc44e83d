// Package theme maps named styles to tcell styles. One built-in dark
// theme ships with the editor; the lookup falls back through the base
// name (the part before the first dot, so "keyword.function" matches
// "keyword") and finally to Default.
package theme

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Theme is a named style table.
type Theme struct {
	Name   string
	Styles map[string]tcell.Style
}

// GetStyle resolves a style name with base-name and Default fallback.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}
	if dot := strings.Index(name, "."); dot != -1 {
		if style, ok := t.Styles[name[:dot]]; ok {
			return style
		}
	}
	if def, ok := t.Styles["Default"]; ok {
		return def
	}
	return tcell.StyleDefault
}

// EbbDark is the built-in theme.
var EbbDark Theme

func init() {
	fg := tcell.NewHexColor(0xc5cdd9)
	comment := tcell.NewHexColor(0x5c6370)
	orange := tcell.NewHexColor(0xd19a66)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)
	cyan := tcell.NewHexColor(0x56b6c2)
	blue := tcell.NewHexColor(0x61afef)
	statusBG := tcell.NewHexColor(0x2a2f38)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(fg)

	EbbDark = Theme{
		Name: "Ebb Dark",
		Styles: map[string]tcell.Style{
			"Default":    base,
			"Selection":  base.Reverse(true),
			"LineNumber": base.Foreground(comment),
			"StatusBar":  tcell.StyleDefault.Background(statusBG).Foreground(fg),

			// Syntax capture names (tree-sitter highlight queries)
			"keyword":  base.Foreground(blue),
			"string":   base.Foreground(green),
			"comment":  base.Foreground(comment).Italic(true),
			"number":   base.Foreground(orange),
			"constant": base.Foreground(orange),
			"function": base.Foreground(yellow),
			"type":     base.Foreground(cyan),
			"operator": base.Foreground(comment),
			"variable": base,
		},
	}
}

// Current returns the active theme. Theme switching is not supported;
// the indirection keeps call sites ready for it.
func Current() *Theme {
	return &EbbDark
}
