// Package text implements the composable, invertible edit scripts the
// editing core is built on. A Transaction is an ordered run of
// Retain/Delete/Insert spans over byte offsets plus the selection that
// results from applying it. Transactions compose associatively and
// invert against the document state they were built on, which is what
// makes history commits and undo possible.
package text

import (
	"fmt"

	"github.com/ebb-editor/ebb/internal/rope"
	"github.com/ebb-editor/ebb/internal/selection"
)

// Edit is one caller-supplied change: replace the byte range
// [Start, End) with Text. Start == End inserts, empty Text deletes.
type Edit struct {
	Start int
	End   int
	Text  string
}

// Transaction is an edit script plus its resulting selection.
type Transaction struct {
	ops []Operation
	sel selection.Selection
}

// Identity returns the empty transaction carrying sel.
func Identity(sel selection.Selection) Transaction {
	return Transaction{sel: sel}
}

// Selection returns the selection that results from applying t.
func (t Transaction) Selection() selection.Selection { return t.sel }

// WithSelection returns t carrying sel as its resulting selection.
// Used by callers that can only compute the post-edit selection after
// applying the ops.
func (t Transaction) WithSelection(sel selection.Selection) Transaction {
	t.sel = sel
	return t
}

// Ops returns the operation spans (read-only view for tests/debugging).
func (t Transaction) Ops() []Operation { return t.ops }

// IsIdentity reports whether t changes nothing (only retains, or no ops).
func (t Transaction) IsIdentity() bool {
	for _, op := range t.ops {
		if op.Kind != OpRetain {
			return false
		}
	}
	return true
}

// LenBefore returns the byte length of the document state t was built
// against.
func (t Transaction) LenBefore() int {
	n := 0
	for _, op := range t.ops {
		n += op.lenBefore()
	}
	return n
}

// LenAfter returns the byte length of the document after applying t.
func (t Transaction) LenAfter() int {
	n := 0
	for _, op := range t.ops {
		n += op.lenAfter()
	}
	return n
}

// push appends an operation, merging it with an adjacent span of the
// same kind and dropping empty spans, so op streams stay normalized.
func (t *Transaction) push(op Operation) {
	if op.Kind == OpInsert && op.Text == "" {
		return
	}
	if op.Kind != OpInsert && op.N == 0 {
		return
	}
	if n := len(t.ops); n > 0 && t.ops[n-1].Kind == op.Kind {
		if op.Kind == OpInsert {
			t.ops[n-1].Text += op.Text
		} else {
			t.ops[n-1].N += op.N
		}
		return
	}
	t.ops = append(t.ops, op)
}

// Change builds a transaction over a document of oldLen bytes from a
// pre-sorted, pairwise disjoint edit list. sel is the selection after
// the change. The ordering precondition is the caller's responsibility;
// violating it is a programming error and panics, because the core
// cannot continue with an inconsistent op stream.
func Change(oldLen int, sel selection.Selection, edits []Edit) Transaction {
	t := Transaction{sel: sel}
	last := 0
	for _, e := range edits {
		if e.Start < last || e.End < e.Start || e.End > oldLen {
			panic(fmt.Sprintf("text: edit %d..%d violates sorted-disjoint precondition (last end %d, len %d)",
				e.Start, e.End, last, oldLen))
		}
		t.push(Retain(e.Start - last))
		t.push(Insert(e.Text))
		t.push(Delete(e.End - e.Start))
		last = e.End
	}
	t.push(Retain(oldLen - last))
	return t
}

// Apply runs the edit script against r, mutating it in place. The
// transaction must cover r exactly; partial coverage is a caller bug.
func (t Transaction) Apply(r *rope.Rope) {
	if got, want := t.LenBefore(), r.Len(); len(t.ops) > 0 && got != want {
		panic(fmt.Sprintf("text: transaction covers %d bytes, document has %d", got, want))
	}
	cursor := 0
	for _, op := range t.ops {
		switch op.Kind {
		case OpRetain:
			cursor += op.N
		case OpDelete:
			r.Delete(cursor, cursor+op.N)
		case OpInsert:
			r.Insert(cursor, op.Text)
			cursor += len(op.Text)
		}
	}
}

// Invert returns the transaction that undoes t when applied to the
// post-edit document. original must be the document state t was built
// against: deleted spans are re-inserted from its content. The result
// carries beforeSel so that undo restores the pre-edit cursor.
func (t Transaction) Invert(original *rope.Rope, beforeSel selection.Selection) Transaction {
	inv := Transaction{sel: beforeSel}
	offset := 0
	for _, op := range t.ops {
		switch op.Kind {
		case OpRetain:
			inv.push(Retain(op.N))
			offset += op.N
		case OpDelete:
			inv.push(Insert(original.Slice(offset, offset+op.N)))
			offset += op.N
		case OpInsert:
			inv.push(Delete(len(op.Text)))
		}
	}
	return inv
}

// Compose merges t and next into a single transaction such that
// applying the result equals applying t then next. next must have been
// built against the document state produced by t. Composing with the
// identity returns the other operand unchanged; otherwise the result's
// selection is next's.
func (t Transaction) Compose(next Transaction) Transaction {
	if len(t.ops) == 0 {
		return next
	}
	if len(next.ops) == 0 {
		return t
	}

	out := Transaction{sel: next.sel}
	a, b := t.ops, next.ops
	var i, j int
	ha, hb := a[0], b[0]
	i, j = 1, 1

	nextA := func() bool {
		if i >= len(a) {
			return false
		}
		ha = a[i]
		i++
		return true
	}
	nextB := func() bool {
		if j >= len(b) {
			return false
		}
		hb = b[j]
		j++
		return true
	}

	aDone, bDone := false, false
	for !aDone || !bDone {
		// Deletes on the left side never interact with the right side:
		// the bytes are gone before next ever saw them.
		if !aDone && ha.Kind == OpDelete {
			out.push(ha)
			aDone = !nextA()
			continue
		}
		// Inserts on the right side are new text unrelated to t's output.
		if !bDone && hb.Kind == OpInsert {
			out.push(hb)
			bDone = !nextB()
			continue
		}
		if aDone || bDone {
			// One stream exhausted with non-passthrough head on the
			// other means the lengths do not line up.
			panic("text: compose length mismatch between transactions")
		}

		switch {
		case ha.Kind == OpRetain && hb.Kind == OpRetain:
			n := min(ha.N, hb.N)
			out.push(Retain(n))
			ha.N -= n
			hb.N -= n
		case ha.Kind == OpRetain && hb.Kind == OpDelete:
			n := min(ha.N, hb.N)
			out.push(Delete(n))
			ha.N -= n
			hb.N -= n
		case ha.Kind == OpInsert && hb.Kind == OpRetain:
			n := min(len(ha.Text), hb.N)
			out.push(Insert(ha.Text[:n]))
			ha.Text = ha.Text[n:]
			hb.N -= n
		case ha.Kind == OpInsert && hb.Kind == OpDelete:
			// Inserted then deleted: the text never existed.
			n := min(len(ha.Text), hb.N)
			ha.Text = ha.Text[n:]
			hb.N -= n
		}

		if ha.N == 0 && (ha.Kind != OpInsert || ha.Text == "") {
			aDone = !nextA()
		}
		if hb.N == 0 && (hb.Kind != OpInsert || hb.Text == "") {
			bDone = !nextB()
		}
	}
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
