// Package history records committed transactions in an append-only
// revision tree with a movable current pointer. Undo walks to the
// parent using the stored inverse; redo follows the most recently
// created child's forward transaction. Revisions are never deleted:
// committing after an undo orphans the previous branch from the redo
// pointer, but its revisions stay in the tree.
package history

import (
	"github.com/ebb-editor/ebb/internal/rope"
	"github.com/ebb-editor/ebb/internal/selection"
	"github.com/ebb-editor/ebb/internal/text"
)

const none = -1

// Revision is one committed edit: the forward transaction and its
// precomputed inverse, linked to its parent. Only the most recently
// created child is recorded, which is what limits redo to the latest
// branch.
type Revision struct {
	parent    int
	lastChild int
	forward   text.Transaction
	inverse   text.Transaction
}

// History is the revision tree. The zero revision is the identity
// root; current always names a valid revision.
type History struct {
	revisions []Revision
	current   int
}

// New creates a history containing only the identity root.
func New() *History {
	return &History{
		revisions: []Revision{{parent: 0, lastChild: none}},
		current:   0,
	}
}

// Commit records forward as a new revision under the current one and
// advances into it. before and beforeSel are the document state the
// transaction was built against; the inverse is computed here so undo
// never has to reconstruct old content.
func (h *History) Commit(forward text.Transaction, before *rope.Rope, beforeSel selection.Selection) {
	inverse := forward.Invert(before, beforeSel)
	id := len(h.revisions)
	h.revisions = append(h.revisions, Revision{
		parent:    h.current,
		lastChild: none,
		forward:   forward,
		inverse:   inverse,
	})
	h.revisions[h.current].lastChild = id
	h.current = id
}

// Undo returns the inverse of the current revision and moves to its
// parent. ok is false at the root: nothing to undo is a normal
// outcome, not an error.
func (h *History) Undo() (text.Transaction, bool) {
	if h.current == 0 {
		return text.Transaction{}, false
	}
	rev := h.revisions[h.current]
	h.current = rev.parent
	return rev.inverse, true
}

// Redo returns the forward transaction of the current revision's most
// recently created child and advances into it. ok is false when the
// current revision has no recorded child. Older siblings are not
// reachable from here; only the latest branch can be redone.
func (h *History) Redo() (text.Transaction, bool) {
	child := h.revisions[h.current].lastChild
	if child == none {
		return text.Transaction{}, false
	}
	h.current = child
	return h.revisions[child].forward, true
}

// AtRoot reports whether the current pointer is at the identity root.
func (h *History) AtRoot() bool { return h.current == 0 }

// CanRedo reports whether a redo target exists.
func (h *History) CanRedo() bool { return h.revisions[h.current].lastChild != none }

// Depth returns the number of undos available from the current revision.
func (h *History) Depth() int {
	d := 0
	for id := h.current; id != 0; id = h.revisions[id].parent {
		d++
	}
	return d
}

// Len returns the total number of revisions including the root.
// Revisions on abandoned branches are counted; they are stored forever.
func (h *History) Len() int { return len(h.revisions) }
