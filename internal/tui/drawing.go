// internal/tui/drawing.go
package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/ebb-editor/ebb/internal/config"
	"github.com/ebb-editor/ebb/internal/core"
	"github.com/ebb-editor/ebb/internal/highlighter"
	"github.com/ebb-editor/ebb/internal/theme"
)

// gutterWidth returns the line-number gutter width for the document, or
// zero when the screen is too narrow for one.
func gutterWidth(lineCount, screenWidth int) int {
	if lineCount <= 0 {
		lineCount = 1
	}
	maxDigits := int(math.Log10(float64(lineCount))) + 1
	w := maxDigits + 1 // one space of padding
	if w >= screenWidth {
		return 0
	}
	return w
}

// DrawBuffer draws the visible portion of the document: gutter, text,
// syntax styles and the Select-mode span.
func DrawBuffer(t *TUI, editor *core.Editor, highlights highlighter.Result) {
	activeTheme := theme.Current()
	defaultStyle := activeTheme.GetStyle("Default")
	lineNumberStyle := activeTheme.GetStyle("LineNumber")
	selectionStyle := activeTheme.GetStyle("Selection")

	width, height := t.Size()
	viewHeight := height - config.StatusBarHeight
	if viewHeight <= 0 || width <= 0 {
		return
	}

	doc := editor.Rope()
	viewY, viewX := editor.ViewportY, editor.ViewportX
	gutter := gutterWidth(doc.LineCount(), width)
	textAreaWidth := width - gutter
	maxDigits := gutter - 1

	selStart, selEnd, selecting := editor.SelectedByteRange()

	for screenY := 0; screenY < viewHeight; screenY++ {
		lineIdx := screenY + viewY

		for fillX := 0; fillX < width; fillX++ {
			t.screen.SetContent(fillX, screenY, ' ', nil, defaultStyle)
		}

		if lineIdx < 0 || lineIdx >= doc.LineCount() {
			continue
		}

		if gutter > 0 {
			numStyle := lineNumberStyle
			if editor.Selection().Head.Line == lineIdx {
				numStyle = numStyle.Bold(true)
			}
			for i, r := range fmt.Sprintf("%*d", maxDigits, lineIdx+1) {
				if i < maxDigits {
					t.screen.SetContent(i, screenY, r, nil, numStyle)
				}
			}
		}

		lineText := doc.Line(lineIdx)
		lineStart := doc.LineToByte(lineIdx)
		lineHighlights := highlights[lineIdx]

		gr := uniseg.NewGraphemes(lineText)
		col := 0
		byteOff := 0
		for gr.Next() {
			clusterRunes := gr.Runes()
			clusterWidth := gr.Width()
			clusterSize := len(gr.Str())
			screenX := (col - viewX) + gutter

			if col+clusterWidth > viewX && col < viewX+textAreaWidth {
				style := defaultStyle
				for _, sr := range lineHighlights {
					if byteOff >= sr.StartByte && byteOff < sr.EndByte {
						style = activeTheme.GetStyle(sr.StyleName)
						break
					}
				}
				abs := lineStart + byteOff
				if selecting && abs >= selStart && abs < selEnd {
					style = selectionStyle
				}

				if screenX >= gutter && screenX < width {
					mainRune := clusterRunes[0]
					if mainRune == '\t' {
						tabWidth := config.Get().Editor.TabWidth
						spaces := tabWidth - (col % tabWidth)
						for i := 0; i < spaces && screenX+i < width; i++ {
							t.screen.SetContent(screenX+i, screenY, ' ', nil, style)
						}
					} else {
						t.screen.SetContent(screenX, screenY, mainRune, clusterRunes[1:], style)
						for cw := 1; cw < clusterWidth; cw++ {
							if screenX+cw < width {
								t.screen.SetContent(screenX+cw, screenY, ' ', nil, style)
							}
						}
					}
				}
			}

			col += clusterWidth
			byteOff += clusterSize
			if col >= viewX+textAreaWidth {
				break
			}
		}
	}
}

// DrawCursor positions the terminal cursor at the selection head.
func DrawCursor(t *TUI, editor *core.Editor) {
	head := editor.Selection().Head
	width, height := t.Size()
	viewHeight := height - config.StatusBarHeight
	gutter := gutterWidth(editor.Rope().LineCount(), width)

	screenX := (head.Col - editor.ViewportX) + gutter
	screenY := head.Line - editor.ViewportY

	if screenX < gutter || screenX >= width || screenY < 0 || screenY >= viewHeight {
		t.screen.HideCursor()
		return
	}
	t.screen.ShowCursor(screenX, screenY)
}

// CursorShape returns the tcell cursor style for a mode name. Insert
// gets a bar, Replace an underline, everything else a block.
func CursorShape(modeName string) tcell.CursorStyle {
	switch modeName {
	case "INSERT":
		return tcell.CursorStyleSteadyBar
	case "REPLACE":
		return tcell.CursorStyleSteadyUnderline
	default:
		return tcell.CursorStyleSteadyBlock
	}
}

// SetCursorShape applies the mode's cursor shape.
func (t *TUI) SetCursorShape(modeName string) {
	t.screen.SetCursorStyle(CursorShape(modeName))
}
