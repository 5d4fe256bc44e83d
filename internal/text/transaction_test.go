package text

import (
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/ebb-editor/ebb/internal/rope"
	"github.com/ebb-editor/ebb/internal/selection"
)

func applyTo(t Transaction, doc string) string {
	r := rope.New(doc)
	t.Apply(r)
	return r.String()
}

func TestChangeApply(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		edits []Edit
		want  string
	}{
		{
			name:  "pure insert",
			doc:   "hello",
			edits: []Edit{{Start: 5, End: 5, Text: "!"}},
			want:  "hello!",
		},
		{
			name:  "pure delete",
			doc:   "hello",
			edits: []Edit{{Start: 0, End: 2}},
			want:  "llo",
		},
		{
			name:  "replacement",
			doc:   "hello world",
			edits: []Edit{{Start: 6, End: 11, Text: "there"}},
			want:  "hello there",
		},
		{
			name: "several disjoint edits",
			doc:  "aaa bbb ccc",
			edits: []Edit{
				{Start: 0, End: 3, Text: "x"},
				{Start: 4, End: 7, Text: "y"},
				{Start: 8, End: 11, Text: "z"},
			},
			want: "x y z",
		},
		{
			// The compound scenario: two replacements, one deletion
			// spanning a newline, one trailing insertion.
			name: "compound edit",
			doc:  "hello world!\ntest world bar",
			edits: []Edit{
				{Start: 6, End: 11, Text: "foo"},
				{Start: 12, End: 17},
				{Start: 18, End: 23, Text: "foo"},
				{Start: 27, End: 27, Text: "!"},
			},
			want: "hello foo! foo bar!",
		},
		{
			name:  "no edits is identity",
			doc:   "unchanged",
			edits: nil,
			want:  "unchanged",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := Change(len(tt.doc), selection.New(), tt.edits)
			if got := applyTo(tx, tt.doc); got != tt.want {
				t.Errorf("apply = %q, want %q", got, tt.want)
			}
			if got := tx.LenBefore(); got != len(tt.doc) {
				t.Errorf("LenBefore() = %d, want %d", got, len(tt.doc))
			}
			if got := tx.LenAfter(); got != len(tt.want) {
				t.Errorf("LenAfter() = %d, want %d", got, len(tt.want))
			}
		})
	}
}

func TestChangePreconditionPanics(t *testing.T) {
	tests := []struct {
		name  string
		edits []Edit
	}{
		{"unsorted", []Edit{{Start: 4, End: 5}, {Start: 0, End: 1}}},
		{"overlapping", []Edit{{Start: 0, End: 3}, {Start: 2, End: 4}}},
		{"end before start", []Edit{{Start: 3, End: 1}}},
		{"past document end", []Edit{{Start: 0, End: 99}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			Change(5, selection.New(), tt.edits)
		})
	}
}

func TestApplyCoverageMismatchPanics(t *testing.T) {
	tx := Change(5, selection.New(), []Edit{{Start: 0, End: 1}})
	defer func() {
		if recover() == nil {
			t.Error("expected panic applying against a different length")
		}
	}()
	tx.Apply(rope.New("length-eleven"))
}

func TestIsIdentity(t *testing.T) {
	sel := selection.New()
	if !Identity(sel).IsIdentity() {
		t.Error("Identity() not identity")
	}
	if !Change(5, sel, nil).IsIdentity() {
		t.Error("retain-only transaction not identity")
	}
	if Change(5, sel, []Edit{{Start: 1, End: 2}}).IsIdentity() {
		t.Error("deleting transaction reported as identity")
	}
}

func TestInvertRoundTrip(t *testing.T) {
	doc := "hello world!\ntest world bar"
	before := rope.New(doc)
	beforeSel := selection.New()

	tx := Change(len(doc), selection.New(), []Edit{
		{Start: 6, End: 11, Text: "foo"},
		{Start: 12, End: 17},
		{Start: 18, End: 23, Text: "foo"},
		{Start: 27, End: 27, Text: "!"},
	})

	after := before.Clone()
	tx.Apply(after)
	if after.String() != "hello foo! foo bar!" {
		t.Fatalf("forward apply = %q", after.String())
	}

	inv := tx.Invert(before, beforeSel)
	inv.Apply(after)
	if after.String() != doc {
		t.Errorf("invert round trip = %q, want %q", after.String(), doc)
	}
	if inv.Selection() != beforeSel {
		t.Errorf("inverse selection = %+v, want %+v", inv.Selection(), beforeSel)
	}
}

// randomEdits builds a sorted, pairwise disjoint edit list over a
// document of length n.
func randomEdits(rng *rand.Rand, n int) []Edit {
	var edits []Edit
	last := 0
	for last <= n && len(edits) < 8 {
		if rng.Intn(3) == 0 {
			break
		}
		start := last + rng.Intn(n-last+1)
		end := start + rng.Intn(n-start+1)
		text := ""
		if rng.Intn(2) == 0 {
			text = randString(rng)
		}
		edits = append(edits, Edit{Start: start, End: end, Text: text})
		last = end
	}
	return edits
}

func randString(rng *rand.Rand) string {
	const alphabet = "ab\nc😭 "
	runes := []rune(alphabet)
	out := make([]rune, rng.Intn(5))
	for i := range out {
		out[i] = runes[rng.Intn(len(runes))]
	}
	return string(out)
}

func TestInvertRoundTripProperty(t *testing.T) {
	property := func(doc string, seed int64) bool {
		rng := rand.New(rand.NewSource(seed))
		before := rope.New(doc)
		tx := Change(before.Len(), selection.New(), randomEdits(rng, before.Len()))

		after := before.Clone()
		tx.Apply(after)
		inv := tx.Invert(before, selection.New())
		inv.Apply(after)
		return after.String() == doc
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

func TestComposeEqualsSequentialApply(t *testing.T) {
	property := func(doc string, seed int64) bool {
		rng := rand.New(rand.NewSource(seed))
		base := rope.New(doc)

		a := Change(base.Len(), selection.New(), randomEdits(rng, base.Len()))
		mid := base.Clone()
		a.Apply(mid)

		b := Change(mid.Len(), selection.New(), randomEdits(rng, mid.Len()))
		sequential := mid.Clone()
		b.Apply(sequential)

		composed := base.Clone()
		a.Compose(b).Apply(composed)
		return composed.String() == sequential.String()
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

func TestComposeCases(t *testing.T) {
	sel := selection.New()
	doc := "abcdef"

	t.Run("identity operands pass through", func(t *testing.T) {
		tx := Change(len(doc), sel, []Edit{{Start: 0, End: 1, Text: "X"}})
		if got := Identity(sel).Compose(tx); len(got.Ops()) != len(tx.Ops()) {
			t.Errorf("identity.Compose(tx) ops = %v", got.Ops())
		}
		if got := tx.Compose(Identity(sel)); len(got.Ops()) != len(tx.Ops()) {
			t.Errorf("tx.Compose(identity) ops = %v", got.Ops())
		}
	})

	t.Run("insert then delete cancels", func(t *testing.T) {
		a := Change(len(doc), sel, []Edit{{Start: 3, End: 3, Text: "XY"}})
		b := Change(len(doc)+2, sel, []Edit{{Start: 3, End: 5}})
		got := a.Compose(b)
		if !got.IsIdentity() {
			t.Errorf("insert+delete did not cancel: %v", got.Ops())
		}
		if applied := applyTo(got, doc); applied != doc {
			t.Errorf("apply = %q, want %q", applied, doc)
		}
	})

	t.Run("adjacent inserts merge", func(t *testing.T) {
		a := Change(len(doc), sel, []Edit{{Start: 2, End: 2, Text: "1"}})
		b := Change(len(doc)+1, sel, []Edit{{Start: 3, End: 3, Text: "2"}})
		got := a.Compose(b)
		if applied := applyTo(got, doc); applied != "ab12cdef" {
			t.Errorf("apply = %q, want %q", applied, "ab12cdef")
		}
	})

	t.Run("result carries the second selection", func(t *testing.T) {
		selB := selection.Selection{Sticky: 7}
		a := Change(len(doc), sel, []Edit{{Start: 0, End: 1}})
		b := Change(len(doc)-1, selB, []Edit{{Start: 0, End: 1}})
		if got := a.Compose(b).Selection(); got != selB {
			t.Errorf("composed selection = %+v, want %+v", got, selB)
		}
	})

	t.Run("length mismatch panics", func(t *testing.T) {
		a := Change(6, sel, []Edit{{Start: 0, End: 2}})
		b := Change(9, sel, []Edit{{Start: 0, End: 1}})
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		a.Compose(b)
	})
}
