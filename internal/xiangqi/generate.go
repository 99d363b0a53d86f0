package xiangqi

import "fmt"

// genCandidates appends the raw moves of the piece on from. It ignores whose
// turn it is and whether the mover's general is left in check.
func genCandidates(b *Board, from int, moves *[]Move) {
	pc := b.Squares[from]
	switch pc.Type() {
	case PieceNone:
		return
	case PieceChariot:
		genChariotMoves(b, from, moves)
	case PieceHorse:
		genHorseMoves(b, from, moves)
	case PieceCannon:
		genCannonMoves(b, from, moves)
	case PieceElephant:
		genElephantMoves(b, from, moves)
	case PieceAdvisor:
		genAdvisorMoves(b, from, moves)
	case PieceGeneral:
		genGeneralMoves(b, from, moves)
	case PieceSoldier:
		genSoldierMoves(b, from, moves)
	default:
		panic(fmt.Sprintf("xiangqi: unknown piece %d at %v", pc, squareAt(from)))
	}
}

// CandidateMoves returns the raw destinations of the piece on from.
func (b *Board) CandidateMoves(from Square) []Square {
	var moves []Move
	genCandidates(b, from.Index(), &moves)
	return destinations(moves)
}

// LegalMoves returns the destinations of the piece on from that neither
// leave its own general in check nor make the generals face each other.
func (b *Board) LegalMoves(from Square) []Square {
	var out []Move
	b.appendLegal(from.Index(), &out)
	return destinations(out)
}

func (b *Board) appendLegal(from int, out *[]Move) {
	pc := b.Squares[from]
	if pc == 0 {
		return
	}
	side := pc.Side()

	var pseudo []Move
	genCandidates(b, from, &pseudo)
	for _, mv := range pseudo {
		trial := *b
		trial.Squares[mv.To] = pc
		trial.Squares[mv.From] = 0

		if trial.generalsFace() {
			continue
		}
		if trial.IsInCheck(side) {
			continue
		}
		*out = append(*out, mv)
	}
}

func destinations(moves []Move) []Square {
	out := make([]Square, 0, len(moves))
	for _, mv := range moves {
		out = append(out, squareAt(mv.To))
	}
	return out
}

// GeneratePseudoMovesForSide 生成指定一方的伪合法走法
func (p *Position) GeneratePseudoMovesForSide(side Side) []Move {
	var moves []Move
	for sq := 0; sq < NumSquares; sq++ {
		pc := p.Board.Squares[sq]
		if pc == 0 || pc.Side() != side {
			continue
		}
		genCandidates(&p.Board, sq, &moves)
	}
	return moves
}

// GenerateLegalMoves 生成轮到的一方所有合法走法
func (p *Position) GenerateLegalMoves() []Move {
	return p.legalMovesForSide(p.SideToMove, false)
}

func (p *Position) HasLegalMove(side Side) bool {
	return len(p.legalMovesForSide(side, true)) > 0
}

// firstOnly stops at the first piece that has a legal move.
func (p *Position) legalMovesForSide(side Side, firstOnly bool) []Move {
	var out []Move
	for sq := 0; sq < NumSquares; sq++ {
		pc := p.Board.Squares[sq]
		if pc == 0 || pc.Side() != side {
			continue
		}
		p.Board.appendLegal(sq, &out)
		if firstOnly && len(out) > 0 {
			break
		}
	}
	return out
}

// ApplyMove 应用走子：这里默认传进来的就是合法招（由上层检查），
// 只校验起点有轮到一方的棋子。返回新局面，原局面不变。
func (p *Position) ApplyMove(m Move) (*Position, bool) {
	if m.From < 0 || m.From >= NumSquares || m.To < 0 || m.To >= NumSquares {
		return nil, false
	}
	pc := p.Board.Squares[m.From]
	if pc == 0 || pc.Side() != p.SideToMove {
		return nil, false
	}
	captured := p.Board.Squares[m.To]

	np := *p
	np.Board.Squares[m.To] = pc
	np.Board.Squares[m.From] = 0
	np.SideToMove = p.SideToMove.Opposite()

	// 增量更新：起点子出、被吃子出、落点子入、换边
	h := p.EnsureHash()
	h ^= zobrist.piece(pc, m.From) ^ zobrist.piece(captured, m.To) ^ zobrist.piece(pc, m.To)
	h ^= zobrist.black
	np.Hash = h

	return &np, true
}
