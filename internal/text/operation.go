// internal/text/operation.go
package text

import "fmt"

// OpKind discriminates the operation union.
type OpKind int

const (
	OpRetain OpKind = iota
	OpDelete
	OpInsert
)

// Operation is a single span of an edit script: retain or delete a
// number of bytes of the old document, or insert new text. A
// transaction's Retain and Delete spans together consume exactly the
// byte length of the document state it was built against.
type Operation struct {
	Kind OpKind
	N    int    // byte count for Retain/Delete
	Text string // inserted text for Insert
}

// Retain keeps the next n bytes unchanged.
func Retain(n int) Operation { return Operation{Kind: OpRetain, N: n} }

// Delete removes the next n bytes.
func Delete(n int) Operation { return Operation{Kind: OpDelete, N: n} }

// Insert adds text at the current position.
func Insert(text string) Operation { return Operation{Kind: OpInsert, Text: text} }

// len returns the bytes this operation produces in the new document.
func (op Operation) lenAfter() int {
	switch op.Kind {
	case OpRetain:
		return op.N
	case OpInsert:
		return len(op.Text)
	default:
		return 0
	}
}

// lenBefore returns the bytes this operation consumes from the old document.
func (op Operation) lenBefore() int {
	switch op.Kind {
	case OpRetain, OpDelete:
		return op.N
	default:
		return 0
	}
}

func (op Operation) String() string {
	switch op.Kind {
	case OpRetain:
		return fmt.Sprintf("Retain(%d)", op.N)
	case OpDelete:
		return fmt.Sprintf("Delete(%d)", op.N)
	case OpInsert:
		return fmt.Sprintf("Insert(%q)", op.Text)
	default:
		return "Unknown"
	}
}
