package xiangqi

// zobristKeys holds one random key per (side, piece type, square) plus the
// black-to-move key. Index 0 of the type axis is the empty square and stays 0.
type zobristKeys struct {
	pieces [2][numPieceTypes][NumSquares]uint64
	black  uint64
}

var zobrist = newZobristKeys(0x2545F4914F6CDD1D)

// splitMix is splitmix64; a fixed seed keeps hashes identical between runs.
type splitMix uint64

func (s *splitMix) next() uint64 {
	*s += 0x9E3779B97F4A7C15
	z := uint64(*s)
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func newZobristKeys(seed uint64) *zobristKeys {
	rng := splitMix(seed)
	k := &zobristKeys{}
	for _, side := range [...]Side{Red, Black} {
		for pt := PieceChariot; pt < numPieceTypes; pt++ {
			for sq := range k.pieces[side][pt] {
				k.pieces[side][pt][sq] = rng.next()
			}
		}
	}
	k.black = rng.next()
	return k
}

func (k *zobristKeys) piece(pc Piece, sq int) uint64 {
	if pc == 0 {
		return 0
	}
	return k.pieces[pc.Side()][pc.Type()][sq]
}

// CalculateHash recomputes the Zobrist hash of the position from scratch.
func (p *Position) CalculateHash() uint64 {
	var h uint64
	for sq, pc := range p.Board.Squares {
		h ^= zobrist.piece(pc, sq)
	}
	if p.SideToMove == Black {
		h ^= zobrist.black
	}
	return h
}

// EnsureHash fills Position.Hash if it was never computed and returns it.
func (p *Position) EnsureHash() uint64 {
	if p.Hash == 0 {
		p.Hash = p.CalculateHash()
	}
	return p.Hash
}
