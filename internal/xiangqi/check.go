package xiangqi

// IsInCheck reports whether side's general is attacked. A side without a
// general is not in check: the game is already over.
func (b *Board) IsInCheck(side Side) bool {
	gen, ok := b.generalSquare(side)
	if !ok {
		return false
	}
	return b.attacked(gen, side.Opposite(), inPalace(side, rowOf(gen), colOf(gen)))
}

func (p *Position) IsInCheck(side Side) bool {
	return p.Board.IsInCheck(side)
}

// attacked reports whether any bySide piece has a raw candidate move onto
// sq. Candidates are not king-safety filtered, which keeps check detection
// from recursing into itself.
//
// palaceOnly skips pieces that can never reach the enemy palace: advisors,
// elephants and soldiers still on their own half.
func (b *Board) attacked(sq int, bySide Side, palaceOnly bool) bool {
	var moves []Move
	for s := 0; s < NumSquares; s++ {
		pc := b.Squares[s]
		if pc == 0 || pc.Side() != bySide {
			continue
		}
		if palaceOnly {
			switch pc.Type() {
			case PieceAdvisor, PieceElephant:
				continue
			case PieceSoldier:
				if !soldierCrossedRiver(bySide, rowOf(s)) {
					continue
				}
			}
		}

		moves = moves[:0]
		genCandidates(b, s, &moves)
		for _, mv := range moves {
			if mv.To == sq {
				return true
			}
		}
	}
	return false
}
