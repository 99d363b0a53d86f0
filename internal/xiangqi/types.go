package xiangqi

import "fmt"

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Black  Side = 1
)

func (s Side) Opposite() Side {
	switch s {
	case Red:
		return Black
	case Black:
		return Red
	}
	return NoSide
}

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Black:
		return "black"
	}
	return "none"
}

type PieceType int8

const (
	PieceNone     PieceType = iota
	PieceChariot            // 车
	PieceHorse              // 马
	PieceCannon             // 炮
	PieceElephant           // 相 / 象
	PieceAdvisor            // 仕 / 士
	PieceGeneral            // 帅 / 将
	PieceSoldier            // 兵 / 卒

	numPieceTypes = 8
)

func (pt PieceType) String() string {
	switch pt {
	case PieceChariot:
		return "chariot"
	case PieceHorse:
		return "horse"
	case PieceCannon:
		return "cannon"
	case PieceElephant:
		return "elephant"
	case PieceAdvisor:
		return "advisor"
	case PieceGeneral:
		return "general"
	case PieceSoldier:
		return "soldier"
	}
	return "none"
}

// Piece packs kind and side into one byte: 0 is empty, >0 red, <0 black,
// abs value is the PieceType.
type Piece int8

func MakePiece(side Side, pt PieceType) Piece {
	if pt == PieceNone || side == NoSide {
		return 0
	}
	if side == Red {
		return Piece(pt)
	}
	return -Piece(pt)
}

func (p Piece) Type() PieceType {
	if p < 0 {
		return PieceType(-p)
	}
	return PieceType(p)
}

func (p Piece) Side() Side {
	if p == 0 {
		return NoSide
	}
	if p > 0 {
		return Red
	}
	return Black
}

func (p Piece) String() string {
	return string(pieceToChar(p))
}

type Board struct {
	Squares [NumSquares]Piece
}

// Move is a from/to pair of flat square indices, as produced by the
// generators. MoveRecord is the history entry built from it.
type Move struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Position = board + side to move + incremental Zobrist hash.
type Position struct {
	Board      Board
	SideToMove Side
	Hash       uint64
}

// MarshalText writes the FEN letter, upper case for Red.
func (p Piece) MarshalText() ([]byte, error) {
	return []byte(string(pieceToChar(p))), nil
}

func (p *Piece) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" || s == "." {
		*p = 0
		return nil
	}
	r := []rune(s)
	if len(r) != 1 {
		return fmt.Errorf("piece %q: want a single letter", s)
	}
	pc, ok := pieceFromLetter(r[0])
	if !ok {
		return fmt.Errorf("piece %q: unknown letter", s)
	}
	*p = pc
	return nil
}
