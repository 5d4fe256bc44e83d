// internal/selection/motions.go
package selection

import (
	"github.com/ebb-editor/ebb/internal/mode"
	"github.com/ebb-editor/ebb/internal/rope"
	"github.com/ebb-editor/ebb/internal/words"
)

// Kind selects word or long-word (WORD) segmentation for motions.
type Kind int

const (
	WordKind Kind = iota
	LongWordKind
)

func forwardIter(line string, k Kind) *words.Iter {
	if k == LongWordKind {
		return words.ForwardLong(line)
	}
	return words.Forward(line)
}

func backwardIter(line string, k Kind) *words.Iter {
	if k == LongWordKind {
		return words.BackwardLong(line)
	}
	return words.Backward(line)
}

// NextWordStart moves to the start of the next word: the first
// non-blank range boundary strictly right of the head, wrapping to
// following lines; clamps at the end of the buffer when none exists.
func (s Selection) NextWordStart(r *rope.Rope, m mode.Mode, k Kind) Selection {
	return s.scanForward(r, m, k, func(rg words.Range) int { return rg.Start })
}

// NextWordEnd moves to the end of the next word.
func (s Selection) NextWordEnd(r *rope.Rope, m mode.Mode, k Kind) Selection {
	return s.scanForward(r, m, k, func(rg words.Range) int { return rg.End })
}

// PrevWordStart moves to the start of the previous word, wrapping to
// preceding lines; clamps at the start of the buffer when none exists.
func (s Selection) PrevWordStart(r *rope.Rope, m mode.Mode, k Kind) Selection {
	return s.scanBackward(r, m, k, func(rg words.Range) int { return rg.Start })
}

// PrevWordEnd moves to the end of the previous word.
func (s Selection) PrevWordEnd(r *rope.Rope, m mode.Mode, k Kind) Selection {
	return s.scanBackward(r, m, k, func(rg words.Range) int { return rg.End })
}

// scanForward walks lines from the head toward the end of the buffer.
// On the head's own line only boundaries strictly past the head count;
// on later lines the first non-blank boundary wins. Whitespace-only
// ranges are never movement targets.
func (s Selection) scanForward(r *rope.Rope, m mode.Mode, k Kind, boundary func(words.Range) int) Selection {
	for line := s.Head.Line; line < r.LineCount(); line++ {
		text := r.Line(line)
		it := forwardIter(text, k)
		for {
			rg, ok := it.Next()
			if !ok {
				break
			}
			if rg.IsBlank(text) {
				continue
			}
			col := boundary(rg)
			if line == s.Head.Line && col <= s.Head.Col {
				continue
			}
			return s.MoveTo(r, col, line, m)
		}
	}
	last := r.LineCount() - 1
	return s.MoveTo(r, maxCol(r, last, m), last, m)
}

// scanBackward mirrors scanForward toward the start of the buffer. The
// backward iterator yields ranges right-to-left, so the first match is
// the nearest boundary left of the head.
func (s Selection) scanBackward(r *rope.Rope, m mode.Mode, k Kind, boundary func(words.Range) int) Selection {
	for line := s.Head.Line; line >= 0; line-- {
		text := r.Line(line)
		it := backwardIter(text, k)
		for {
			rg, ok := it.Next()
			if !ok {
				break
			}
			if rg.IsBlank(text) {
				continue
			}
			col := boundary(rg)
			if line == s.Head.Line && col >= s.Head.Col {
				continue
			}
			return s.MoveTo(r, col, line, m)
		}
	}
	return s.MoveTo(r, 0, 0, m)
}
