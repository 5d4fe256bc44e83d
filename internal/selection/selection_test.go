package selection

import (
	"testing"

	"github.com/ebb-editor/ebb/internal/grapheme"
	"github.com/ebb-editor/ebb/internal/mode"
	"github.com/ebb-editor/ebb/internal/rope"
	"github.com/ebb-editor/ebb/internal/types"
)

func at(line, col int) Selection {
	return Selection{Head: types.Position{Line: line, Col: col}, Sticky: col}
}

func TestMoveToClamping(t *testing.T) {
	r := rope.New("abcdef\nab\n")
	tests := []struct {
		name      string
		col, line int
		m         mode.Mode
		want      types.Position
	}{
		{"negative line", 3, -5, mode.Normal, types.Position{Line: 0, Col: 3}},
		{"line past end", 0, 99, mode.Normal, types.Position{Line: 2, Col: 0}},
		{"col past end normal", 99, 0, mode.Normal, types.Position{Line: 0, Col: 5}},
		{"col past end insert", 99, 0, mode.Insert, types.Position{Line: 0, Col: 6}},
		{"negative col", -7, 1, mode.Normal, types.Position{Line: 1, Col: 0}},
		{"empty line", 4, 2, mode.Normal, types.Position{Line: 2, Col: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New().MoveTo(r, tt.col, tt.line, tt.m)
			if got.Head != tt.want {
				t.Errorf("head = %+v, want %+v", got.Head, tt.want)
			}
		})
	}
}

func TestGraphemeSnapping(t *testing.T) {
	// "a😭b": columns a=0, emoji=1..2 (wide), b=3.
	r := rope.New("a😭b")

	right := at(0, 1).Right(r, mode.Normal)
	if right.Head.Col != 3 {
		t.Errorf("Right from emoji start = col %d, want 3", right.Head.Col)
	}

	left := at(0, 3).Left(r, mode.Normal)
	if left.Head.Col != 1 {
		t.Errorf("Left from 'b' = col %d, want 1", left.Head.Col)
	}

	// A vertical move landing inside the emoji snaps to its start.
	r2 := rope.New("xxx\na😭b")
	down := at(0, 2).Down(r2, mode.Normal)
	if down.Head != (types.Position{Line: 1, Col: 1}) {
		t.Errorf("down into wide cluster = %+v, want line 1 col 1", down.Head)
	}
}

func TestGraphemeSafety(t *testing.T) {
	// No movement may leave the head strictly inside a cluster's span.
	r := rope.New("日本語 text\n😭😭😭😭\nplain")
	moves := []func(Selection) Selection{
		func(s Selection) Selection { return s.Right(r, mode.Normal) },
		func(s Selection) Selection { return s.Right(r, mode.Normal) },
		func(s Selection) Selection { return s.Down(r, mode.Normal) },
		func(s Selection) Selection { return s.Right(r, mode.Normal) },
		func(s Selection) Selection { return s.Up(r, mode.Normal) },
		func(s Selection) Selection { return s.Left(r, mode.Normal) },
		func(s Selection) Selection { return s.Down(r, mode.Normal) },
		func(s Selection) Selection { return s.Down(r, mode.Normal) },
		func(s Selection) Selection { return s.LineEnd(r, mode.Normal) },
	}
	s := New()
	for i, move := range moves {
		s = move(s)
		if !onClusterBoundary(r.Line(s.Head.Line), s.Head.Col) {
			t.Errorf("move %d: head col %d inside a cluster on line %d", i, s.Head.Col, s.Head.Line)
		}
	}
}

func onClusterBoundary(line string, col int) bool {
	pos := 0
	for _, cl := range grapheme.Clusters(line) {
		if col == pos {
			return true
		}
		pos += cl.Width
	}
	return col == pos
}

func TestStickyColumn(t *testing.T) {
	r := rope.New("abcdef\nab\nabcdef")

	s := New().MoveTo(r, 5, 0, mode.Normal)
	s = s.Down(r, mode.Normal)
	if s.Head != (types.Position{Line: 1, Col: 1}) {
		t.Fatalf("down onto short line: %+v", s.Head)
	}
	s = s.Down(r, mode.Normal)
	if s.Head != (types.Position{Line: 2, Col: 5}) {
		t.Errorf("sticky column not restored: %+v", s.Head)
	}

	// An explicit horizontal move resets the sticky column.
	s = s.Left(r, mode.Normal)
	s = s.Up(r, mode.Normal)
	s = s.Up(r, mode.Normal)
	if s.Head != (types.Position{Line: 0, Col: 4}) {
		t.Errorf("after left+up+up: %+v", s.Head)
	}
}

func TestLineStartEnd(t *testing.T) {
	r := rope.New("hello")
	s := at(0, 2)
	if got := s.LineStart(r, mode.Normal); got.Head.Col != 0 {
		t.Errorf("LineStart col = %d", got.Head.Col)
	}
	if got := s.LineEnd(r, mode.Normal); got.Head.Col != 4 {
		t.Errorf("LineEnd normal col = %d, want 4", got.Head.Col)
	}
	if got := s.LineEnd(r, mode.Insert); got.Head.Col != 5 {
		t.Errorf("LineEnd insert col = %d, want 5", got.Head.Col)
	}
}

func TestByteOffsetBridge(t *testing.T) {
	r := rope.New("a😭b\nxy")
	tests := []struct {
		line, col int
		off       int
	}{
		{0, 0, 0},
		{0, 1, 1},
		{0, 3, 5},
		{1, 0, 7},
		{1, 1, 8},
	}
	for _, tt := range tests {
		if got := at(tt.line, tt.col).ByteOffset(r); got != tt.off {
			t.Errorf("ByteOffset(%d,%d) = %d, want %d", tt.line, tt.col, got, tt.off)
		}
		back := FromByteOffset(r, tt.off, mode.Normal)
		if back.Head.Line != tt.line || back.Head.Col != tt.col {
			t.Errorf("FromByteOffset(%d) = %+v, want line %d col %d", tt.off, back.Head, tt.line, tt.col)
		}
	}

	// An offset inside a cluster resolves to the cluster's column.
	mid := FromByteOffset(r, 3, mode.Normal)
	if mid.Head.Col != 1 {
		t.Errorf("FromByteOffset inside emoji = col %d, want 1", mid.Head.Col)
	}
}

func TestWordMotions(t *testing.T) {
	r := rope.New("second line with (words) 😭😭😭😭 hi\nfoo bar")
	tests := []struct {
		name string
		from Selection
		move func(Selection) Selection
		want types.Position
	}{
		{
			"next word start skips whitespace",
			at(0, 0),
			func(s Selection) Selection { return s.NextWordStart(r, mode.Normal, WordKind) },
			types.Position{Line: 0, Col: 7},
		},
		{
			"next word end inside first word",
			at(0, 0),
			func(s Selection) Selection { return s.NextWordEnd(r, mode.Normal, WordKind) },
			types.Position{Line: 0, Col: 5},
		},
		{
			"word stops at punctuation",
			at(0, 12),
			func(s Selection) Selection { return s.NextWordStart(r, mode.Normal, WordKind) },
			types.Position{Line: 0, Col: 17},
		},
		{
			"long word skips punctuation",
			at(0, 12),
			func(s Selection) Selection { return s.NextWordStart(r, mode.Normal, LongWordKind) },
			types.Position{Line: 0, Col: 17},
		},
		{
			"long word end covers the parenthesized run",
			at(0, 16),
			func(s Selection) Selection { return s.NextWordEnd(r, mode.Normal, LongWordKind) },
			types.Position{Line: 0, Col: 23},
		},
		{
			"prev word start",
			at(0, 7),
			func(s Selection) Selection { return s.PrevWordStart(r, mode.Normal, WordKind) },
			types.Position{Line: 0, Col: 0},
		},
		{
			"prev word end",
			at(0, 12),
			func(s Selection) Selection { return s.PrevWordEnd(r, mode.Normal, WordKind) },
			types.Position{Line: 0, Col: 10},
		},
		{
			"forward wraps to the next line",
			at(0, 34),
			func(s Selection) Selection { return s.NextWordStart(r, mode.Normal, WordKind) },
			types.Position{Line: 1, Col: 0},
		},
		{
			"backward wraps to the previous line",
			at(1, 0),
			func(s Selection) Selection { return s.PrevWordStart(r, mode.Normal, WordKind) },
			types.Position{Line: 0, Col: 34},
		},
		{
			"clamps at buffer end",
			at(1, 4),
			func(s Selection) Selection { return s.NextWordStart(r, mode.Normal, WordKind) },
			types.Position{Line: 1, Col: 6},
		},
		{
			"clamps at buffer start",
			at(0, 0),
			func(s Selection) Selection { return s.PrevWordStart(r, mode.Normal, WordKind) },
			types.Position{Line: 0, Col: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.move(tt.from); got.Head != tt.want {
				t.Errorf("head = %+v, want %+v", got.Head, tt.want)
			}
		})
	}
}
