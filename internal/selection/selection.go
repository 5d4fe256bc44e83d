// Package selection implements the grapheme-aligned cursor model. A
// Selection is a (column, line) head plus a sticky column remembering
// the intended column across vertical moves over shorter lines. All
// movement clamps rather than fails, and every resulting head sits on a
// grapheme boundary of its line.
package selection

import (
	"github.com/ebb-editor/ebb/internal/grapheme"
	"github.com/ebb-editor/ebb/internal/mode"
	"github.com/ebb-editor/ebb/internal/rope"
	"github.com/ebb-editor/ebb/internal/types"
)

// UseSticky passed as the column to MoveTo means "no explicit column
// requested, reuse the stored sticky column".
const UseSticky = -1

// Selection is a cursor head with its remembered column. It is held
// per viewing pane; the document itself is shared.
type Selection struct {
	Head   types.Position
	Sticky int
}

// New returns a selection at the origin.
func New() Selection {
	return Selection{Head: types.Position{Line: 0, Col: 0}, Sticky: 0}
}

// maxCol returns the largest valid column on line of r for the given
// mode: the full display width when the cursor may rest past the last
// grapheme (Insert/Replace), otherwise width-1 so it rests on one.
func maxCol(r *rope.Rope, line int, m mode.Mode) int {
	w := grapheme.Width(r.Line(line))
	if m.AllowsPastEOL() {
		return w
	}
	if w == 0 {
		return 0
	}
	return w - 1
}

// MoveTo moves the head toward (col, line), clamping both coordinates
// and snapping the result to a grapheme boundary. Pass UseSticky as col
// to reuse the sticky column (vertical movement); an explicit col
// updates the sticky column after clamping.
func (s Selection) MoveTo(r *rope.Rope, col, line int, m mode.Mode) Selection {
	if line < 0 {
		line = 0
	}
	if line >= r.LineCount() {
		line = r.LineCount() - 1
	}

	explicit := col != UseSticky
	if !explicit {
		col = s.Sticky
	}
	if col < 0 {
		col = 0
	}
	if limit := maxCol(r, line, m); col > limit {
		col = limit
	}

	target := types.Position{Line: line, Col: col}
	target.Col = snapToCluster(r.Line(line), target.Col, s.Head, target, m)

	next := Selection{Head: target, Sticky: s.Sticky}
	if explicit {
		next.Sticky = target.Col
	}
	return next
}

// snapToCluster aligns col to a grapheme boundary of line. If col lands
// strictly inside a multi-column cluster the direction of the movement
// (derived from comparing old and new positions) decides whether to
// snap to the cluster's start or past its end; at end of line outside
// Insert mode the start always wins so the head stays on a grapheme.
func snapToCluster(line string, col int, from, to types.Position, m mode.Mode) int {
	pos := 0
	for _, cl := range grapheme.Clusters(line) {
		if col < pos+cl.Width {
			if col == pos {
				return col // already on a boundary
			}
			// Inside a wide cluster: snap by direction.
			if movingForward(from, to) {
				end := pos + cl.Width
				if end > grapheme.Width(line)-1 && !m.AllowsPastEOL() {
					return pos
				}
				return end
			}
			return pos
		}
		pos += cl.Width
	}
	return pos // at or past end of line; pos == full width
}

// movingForward classifies the movement direction for boundary
// snapping: rightward motion snaps forward, anything else (up, down,
// left, jumps) snaps back.
func movingForward(from, to types.Position) bool {
	return to.Line == from.Line && to.Col > from.Col
}

// Up moves one line up, keeping the sticky column.
func (s Selection) Up(r *rope.Rope, m mode.Mode) Selection {
	return s.MoveTo(r, UseSticky, s.Head.Line-1, m)
}

// Down moves one line down, keeping the sticky column.
func (s Selection) Down(r *rope.Rope, m mode.Mode) Selection {
	return s.MoveTo(r, UseSticky, s.Head.Line+1, m)
}

// Left moves one column left, saturating at the line start.
func (s Selection) Left(r *rope.Rope, m mode.Mode) Selection {
	col := s.Head.Col - 1
	if col < 0 {
		col = 0
	}
	return s.MoveTo(r, col, s.Head.Line, m)
}

// Right moves one column right; MoveTo clamps at the line end.
func (s Selection) Right(r *rope.Rope, m mode.Mode) Selection {
	return s.MoveTo(r, s.Head.Col+1, s.Head.Line, m)
}

// LineStart moves to column zero.
func (s Selection) LineStart(r *rope.Rope, m mode.Mode) Selection {
	return s.MoveTo(r, 0, s.Head.Line, m)
}

// LineEnd moves to the last valid column of the line.
func (s Selection) LineEnd(r *rope.Rope, m mode.Mode) Selection {
	return s.MoveTo(r, maxCol(r, s.Head.Line, m), s.Head.Line, m)
}

// ByteOffset returns the absolute byte offset of the head. This and
// FromByteOffset are the sole bridge between transaction byte ranges
// and cursor coordinates: both accumulate grapheme widths and byte
// lengths along the head's line.
func (s Selection) ByteOffset(r *rope.Rope) int {
	off := r.LineToByte(s.Head.Line)
	col := 0
	for _, cl := range grapheme.Clusters(r.Line(s.Head.Line)) {
		if col >= s.Head.Col {
			break
		}
		off += cl.Size
		col += cl.Width
	}
	return off
}

// FromByteOffset places the head at the grapheme containing the byte at
// off, clamping the offset into the document.
func FromByteOffset(r *rope.Rope, off int, m mode.Mode) Selection {
	if off < 0 {
		off = 0
	}
	if off > r.Len() {
		off = r.Len()
	}
	line := r.ByteToLine(off)
	rel := off - r.LineToByte(line)

	col := 0
	consumed := 0
	for _, cl := range grapheme.Clusters(r.Line(line)) {
		if consumed+cl.Size > rel {
			break
		}
		consumed += cl.Size
		col += cl.Width
	}
	s := Selection{Head: types.Position{Line: line, Col: col}, Sticky: col}
	return s.MoveTo(r, col, line, m)
}
