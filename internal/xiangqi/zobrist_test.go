package xiangqi

import "testing"

func TestHashInitializedFromInitialAndFEN(t *testing.T) {
	pos := NewInitialPosition()
	if pos.Hash != pos.CalculateHash() {
		t.Fatalf("initial hash mismatch: got=%d want=%d", pos.Hash, pos.CalculateHash())
	}

	decoded, err := DecodePosition(openingFEN)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.Hash != pos.Hash {
		t.Fatalf("decoded hash mismatch: got=%d want=%d", decoded.Hash, pos.Hash)
	}

	black, err := DecodePosition(openingFEN[:len(openingFEN)-1] + "b")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if black.Hash == pos.Hash {
		t.Fatalf("side to move does not change the hash")
	}
}

func TestApplyMoveHashIncrementalMatchesFullRecompute(t *testing.T) {
	pos := NewInitialPosition()
	for ply := 0; ply < 60; ply++ {
		moves := pos.GenerateLegalMoves()
		if len(moves) == 0 {
			return
		}
		mv := moves[(ply*7)%len(moves)]
		next, ok := pos.ApplyMove(mv)
		if !ok {
			t.Fatalf("apply move failed at ply %d: %+v", ply, mv)
		}
		if got, want := next.Hash, next.CalculateHash(); got != want {
			t.Fatalf("hash mismatch at ply %d: got=%d want=%d move=%+v", ply, got, want, mv)
		}
		pos = next
	}
}
