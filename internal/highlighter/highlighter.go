// Package highlighter computes syntax highlights with tree-sitter.
// Parsing is whole-buffer and synchronous; the app re-highlights on
// buffer-modified events.
package highlighter

import (
	"context"
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	gosrc "github.com/smacker/go-tree-sitter/golang"

	"github.com/ebb-editor/ebb/internal/logger"
	"github.com/ebb-editor/ebb/internal/rope"
)

//go:embed queries/go/highlights.scm
var goHighlightsQuery []byte

// StyledRange marks [StartByte, EndByte) within one line with a theme
// style name. Offsets are bytes into the line text.
type StyledRange struct {
	StartByte int
	EndByte   int
	StyleName string
}

// Result maps line number to the styled ranges on that line.
type Result map[int][]StyledRange

// Highlighter parses documents and runs the highlight query.
type Highlighter struct {
	parser *sitter.Parser
	lang   *sitter.Language
	query  *sitter.Query
}

// New creates a highlighter for the given file, or nil when the file
// type has no grammar. Only Go is wired up.
func New(filePath string) (*Highlighter, error) {
	if filepath.Ext(filePath) != ".go" {
		return nil, nil
	}
	lang := gosrc.GetLanguage()
	query, err := sitter.NewQuery(goHighlightsQuery, lang)
	if err != nil {
		return nil, fmt.Errorf("highlight query parse failed: %w", err)
	}
	return &Highlighter{
		parser: sitter.NewParser(),
		lang:   lang,
		query:  query,
	}, nil
}

// Highlight parses the whole document and returns per-line styles.
func (h *Highlighter) Highlight(ctx context.Context, r *rope.Rope) (Result, error) {
	h.parser.SetLanguage(h.lang)

	source := []byte(r.String())
	tree, err := h.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parsing failed: %w", err)
	}
	defer tree.Close()

	qc := sitter.NewQueryCursor()
	qc.Exec(h.query, tree.RootNode())

	result := make(Result)
	for {
		match, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, capture := range match.Captures {
			styleName := styleNameFor(h.query.CaptureNameForId(capture.Index))
			node := capture.Node
			startLine := int(node.StartPoint().Row)
			endLine := int(node.EndPoint().Row)

			if startLine == endLine {
				addRange(result, startLine, StyledRange{
					StartByte: int(node.StartPoint().Column),
					EndByte:   int(node.EndPoint().Column),
					StyleName: styleName,
				})
				continue
			}
			// Multi-line capture: rest of the first line, the whole of
			// intermediate lines, the head of the last line.
			addRange(result, startLine, StyledRange{
				StartByte: int(node.StartPoint().Column),
				EndByte:   len(r.Line(startLine)),
				StyleName: styleName,
			})
			for line := startLine + 1; line < endLine && line < r.LineCount(); line++ {
				addRange(result, line, StyledRange{
					StartByte: 0,
					EndByte:   len(r.Line(line)),
					StyleName: styleName,
				})
			}
			if endLine < r.LineCount() {
				addRange(result, endLine, StyledRange{
					StartByte: 0,
					EndByte:   int(node.EndPoint().Column),
					StyleName: styleName,
				})
			}
		}
	}
	logger.Debugf("highlighter: %d lines highlighted", len(result))
	return result, nil
}

func addRange(result Result, line int, sr StyledRange) {
	if sr.EndByte <= sr.StartByte {
		return
	}
	result[line] = append(result[line], sr)
}

// styleNameFor maps a capture name like "keyword.control" to the theme
// style name ("keyword").
func styleNameFor(captureName string) string {
	captureName = strings.TrimPrefix(captureName, "@")
	if dot := strings.Index(captureName, "."); dot != -1 {
		return captureName[:dot]
	}
	return captureName
}
