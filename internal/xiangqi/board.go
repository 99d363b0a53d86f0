package xiangqi

import (
	"fmt"
	"unicode"
)

const (
	Rows       = 10
	Cols       = 9
	NumSquares = Rows * Cols

	// 红方在下（第 5..9 行），黑方在上（第 0..4 行）；河界在 4、5 行之间
	RiverRow = 5
)

func indexOf(row, col int) int { return row*Cols + col }
func rowOf(sq int) int         { return sq / Cols }
func colOf(sq int) int         { return sq % Cols }

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// Square is a (row, col) cell. Row 0 is Black's back rank, row 9 Red's.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func Sq(row, col int) Square { return Square{Row: row, Col: col} }

func (s Square) Valid() bool { return onBoard(s.Row, s.Col) }

// Index flattens the square. Squares coming from callers must be checked
// with Valid first; an out-of-grid square here is an engine bug.
func (s Square) Index() int {
	if !s.Valid() {
		panic(fmt.Sprintf("xiangqi: square %v outside the 10x9 grid", s))
	}
	return indexOf(s.Row, s.Col)
}

func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
}

func squareAt(sq int) Square {
	if sq < 0 || sq >= NumSquares {
		panic(fmt.Sprintf("xiangqi: square index %d outside the board", sq))
	}
	return Square{Row: rowOf(sq), Col: colOf(sq)}
}

// At returns the piece on s, 0 if empty.
func (b *Board) At(s Square) Piece {
	return b.Squares[s.Index()]
}

// 兵的前进方向：红向上(-1)，黑向下(+1)
func soldierDir(side Side) int {
	if side == Red {
		return -1
	}
	if side == Black {
		return +1
	}
	return 0
}

// 兵是否已经过河
func soldierCrossedRiver(side Side, row int) bool {
	if side == Red {
		return row < RiverRow
	}
	if side == Black {
		return row >= RiverRow
	}
	return false
}

// 是否仍在本方半场（相不能过河）
func onOwnHalf(side Side, row int) bool {
	if side == Red {
		return row >= RiverRow
	}
	if side == Black {
		return row < RiverRow
	}
	return false
}

// 是否在九宫
func inPalace(side Side, row, col int) bool {
	if col < 3 || col > 5 {
		return false
	}
	if side == Black {
		return row >= 0 && row <= 2
	}
	if side == Red {
		return row >= Rows-3 && row <= Rows-1
	}
	return false
}

var letterToPieceType = map[rune]PieceType{
	'r': PieceChariot,
	'n': PieceHorse,
	'b': PieceElephant,
	'a': PieceAdvisor,
	'k': PieceGeneral,
	'c': PieceCannon,
	'p': PieceSoldier,
}

var pieceTypeToLetter = [numPieceTypes]rune{
	PieceChariot:  'r',
	PieceHorse:    'n',
	PieceCannon:   'c',
	PieceElephant: 'b',
	PieceAdvisor:  'a',
	PieceGeneral:  'k',
	PieceSoldier:  'p',
}

// pieceFromLetter reads one FEN letter, upper case for Red.
func pieceFromLetter(ch rune) (Piece, bool) {
	pt, ok := letterToPieceType[unicode.ToLower(ch)]
	if !ok {
		return 0, false
	}
	if unicode.IsUpper(ch) {
		return MakePiece(Red, pt), true
	}
	return MakePiece(Black, pt), true
}

func pieceToChar(p Piece) rune {
	if p == 0 {
		return '.'
	}
	pt := p.Type()
	if pt <= PieceNone || pt >= numPieceTypes {
		return '?'
	}
	base := pieceTypeToLetter[pt]
	if p.Side() == Red {
		return unicode.ToUpper(base)
	}
	return base
}

const initialFEN = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w"

// NewInitialPosition returns the standard opening, red to move.
func NewInitialPosition() *Position {
	pos, err := DecodePosition(initialFEN)
	if err != nil {
		panic("xiangqi: bad opening layout: " + err.Error())
	}
	return pos
}

func (b *Board) pieceCount(side Side) int {
	n := 0
	for _, pc := range b.Squares {
		if pc != 0 && pc.Side() == side {
			n++
		}
	}
	return n
}

// generalSquare finds side's general. Two generals of one side can only
// come from a bug in the move executor.
func (b *Board) generalSquare(side Side) (int, bool) {
	found := -1
	for sq, pc := range b.Squares {
		if pc == 0 || pc.Type() != PieceGeneral || pc.Side() != side {
			continue
		}
		if found >= 0 {
			panic(fmt.Sprintf("xiangqi: %s has two generals (%v and %v)", side, squareAt(found), squareAt(sq)))
		}
		found = sq
	}
	return found, found >= 0
}

// Squares converts the flat indices of m back to grid squares.
func (m Move) Squares() (from, to Square) {
	return squareAt(m.From), squareAt(m.To)
}
