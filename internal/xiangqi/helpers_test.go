package xiangqi

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var sortSquares = cmpopts.SortSlices(func(a, b Square) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
})

// place builds a position from FEN letters keyed by square.
func place(t *testing.T, stm Side, pieces map[Square]rune) *Position {
	t.Helper()
	pos := &Position{SideToMove: stm}
	for sq, ch := range pieces {
		pc, ok := pieceFromLetter(ch)
		if !ok {
			t.Fatalf("bad piece letter %q at %v", ch, sq)
		}
		pos.Board.Squares[sq.Index()] = pc
	}
	pos.Hash = pos.CalculateHash()
	return pos
}

func assertSquares(t *testing.T, label string, got, want []Square) {
	t.Helper()
	if want == nil {
		want = []Square{}
	}
	if got == nil {
		got = []Square{}
	}
	if diff := cmp.Diff(want, got, sortSquares); diff != "" {
		t.Fatalf("%s: mismatch (-want +got):\n%s", label, diff)
	}
}

func mustPanic(t *testing.T, label string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", label)
		}
	}()
	fn()
}
