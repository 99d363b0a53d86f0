package xiangqi

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidFEN = errors.New("invalid FEN")

// Encode 输出 FEN 风格串：10 行用“/”隔开，空位用数字压缩；空格后 w/b 表示轮到红/黑
func (p *Position) Encode() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := p.Board.Squares[indexOf(r, c)]
			if pc == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if p.SideToMove == Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	return sb.String()
}

// DecodePosition parses the output of Encode. Trailing fields (move
// counters in full Xiangqi FEN) are ignored. Each side must have exactly
// one general.
func DecodePosition(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: want board and side fields", ErrInvalidFEN)
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return nil, fmt.Errorf("%w: %d ranks, want %d", ErrInvalidFEN, len(rows), Rows)
	}

	var b Board
	var generals [2]int
	for r, row := range rows {
		c := 0
		for _, ch := range row {
			if c >= Cols {
				return nil, fmt.Errorf("%w: rank %d too long", ErrInvalidFEN, r)
			}
			if ch >= '1' && ch <= '9' {
				c += int(ch - '0')
				continue
			}
			if ch == '.' {
				c++
				continue
			}
			pc, ok := pieceFromLetter(ch)
			if !ok {
				return nil, fmt.Errorf("%w: unknown piece %q", ErrInvalidFEN, ch)
			}
			if !placementOK(pc, r, c) {
				return nil, fmt.Errorf("%w: %s cannot stand on %v", ErrInvalidFEN, pc, Sq(r, c))
			}
			if pc.Type() == PieceGeneral {
				generals[pc.Side()]++
			}
			b.Squares[indexOf(r, c)] = pc
			c++
		}
		if c != Cols {
			return nil, fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, r, c)
		}
	}
	if generals[Red] != 1 || generals[Black] != 1 {
		return nil, fmt.Errorf("%w: want one general per side, got red=%d black=%d", ErrInvalidFEN, generals[Red], generals[Black])
	}

	var stm Side
	switch parts[1] {
	case "w", "r":
		stm = Red
	case "b":
		stm = Black
	default:
		return nil, fmt.Errorf("%w: side %q", ErrInvalidFEN, parts[1])
	}
	pos := &Position{
		Board:      b,
		SideToMove: stm,
	}
	pos.Hash = pos.CalculateHash()
	return pos, nil
}

// 将、士不出九宫，象不过河
func placementOK(pc Piece, row, col int) bool {
	side := pc.Side()
	switch pc.Type() {
	case PieceGeneral, PieceAdvisor:
		return inPalace(side, row, col)
	case PieceElephant:
		return onOwnHalf(side, row)
	}
	return true
}
