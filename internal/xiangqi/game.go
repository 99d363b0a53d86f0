package xiangqi

import (
	"errors"
	"fmt"
	"slices"
)

var ErrIllegalMove = errors.New("illegal move")

const ReasonGeneralCaptured = "general captured"

type Status string

const (
	StatusOngoing         Status = "ongoing"
	StatusCheck           Status = "check"
	StatusNoMoves         Status = "no_moves" // 被将死或困毙；规则上不结束对局
	StatusGeneralCaptured Status = "general_captured"
)

// MoveRecord is one entry of the append-only move history.
type MoveRecord struct {
	Number   int    `json:"number"`
	From     Square `json:"from"`
	To       Square `json:"to"`
	Piece    Piece  `json:"piece"`
	Captured Piece  `json:"captured,omitempty"`
}

type Outcome struct {
	Winner Side   `json:"winner"`
	Reason string `json:"reason"`
}

// Game is an immutable game state. Every accepted move yields a new *Game;
// slices are copied on write so older values never observe later moves.
type Game struct {
	pos      Position
	history  []MoveRecord
	captured [2][]Piece
	hashes   []uint64 // 每一手之后的局面哈希，hashes[0] 为开局
	inCheck  bool
	outcome  *Outcome
}

// NewGame returns the canonical opening, Red to move.
func NewGame() *Game {
	return newGameFrom(NewInitialPosition())
}

// NewGameFromFEN starts a game from an arbitrary decoded position.
func NewGameFromFEN(fen string) (*Game, error) {
	pos, err := DecodePosition(fen)
	if err != nil {
		return nil, err
	}
	return newGameFrom(pos), nil
}

func newGameFrom(pos *Position) *Game {
	pos.EnsureHash()
	return &Game{
		pos:     *pos,
		hashes:  []uint64{pos.Hash},
		inCheck: pos.IsInCheck(pos.SideToMove),
	}
}

// Restart discards everything and returns a fresh opening.
func (g *Game) Restart() *Game {
	return NewGame()
}

func (g *Game) Position() Position { return g.pos }
func (g *Game) Board() Board       { return g.pos.Board }
func (g *Game) SideToMove() Side   { return g.pos.SideToMove }
func (g *Game) Hash() uint64       { return g.pos.Hash }
func (g *Game) InCheck() bool      { return g.inCheck }
func (g *Game) MoveNumber() int    { return len(g.history) + 1 }
func (g *Game) Encode() string     { return g.pos.Encode() }

func (g *Game) PieceAt(s Square) Piece {
	return g.pos.Board.At(s)
}

func (g *Game) History() []MoveRecord {
	return slices.Clone(g.history)
}

func (g *Game) Captured(by Side) []Piece {
	if by != Red && by != Black {
		return nil
	}
	return slices.Clone(g.captured[by])
}

// Terminal reports the winner once a general has been captured.
func (g *Game) Terminal() (Outcome, bool) {
	if g.outcome == nil {
		return Outcome{}, false
	}
	return *g.outcome, true
}

// RepetitionCount is how many times the current position (board and side
// to move) has occurred in this game, including now.
func (g *Game) RepetitionCount() int {
	n := 0
	for _, h := range g.hashes {
		if h == g.pos.Hash {
			n++
		}
	}
	return n
}

func (g *Game) Status() Status {
	if g.outcome != nil {
		return StatusGeneralCaptured
	}
	if !g.pos.HasLegalMove(g.pos.SideToMove) {
		return StatusNoMoves
	}
	if g.inCheck {
		return StatusCheck
	}
	return StatusOngoing
}

// selectable reports whether s holds a piece the side to move may pick up.
func (g *Game) selectable(s Square) bool {
	if g.outcome != nil || !s.Valid() {
		return false
	}
	pc := g.pos.Board.At(s)
	return pc != 0 && pc.Side() == g.pos.SideToMove
}

// SelectPiece returns the legal destinations of the piece on s. It is
// rejected when s is off the board or empty, holds the opponent's piece, or
// the game is over.
func (g *Game) SelectPiece(s Square) ([]Square, bool) {
	if !g.selectable(s) {
		return nil, false
	}
	return g.pos.Board.LegalMoves(s), true
}

// LegalMoves lists every legal move of the side to move.
func (g *Game) LegalMoves() []Move {
	if g.outcome != nil {
		return nil
	}
	return g.pos.GenerateLegalMoves()
}

// AttemptMove returns the game after from->to, or g itself when the move is
// not legal.
func (g *Game) AttemptMove(from, to Square) *Game {
	next, ok := g.ApplyMove(from, to)
	if !ok {
		return g
	}
	return next
}

// ApplyMove is the only way a game advances. It either returns a complete
// new state or (nil, false); g is never modified.
func (g *Game) ApplyMove(from, to Square) (*Game, bool) {
	if !g.selectable(from) || !to.Valid() {
		return nil, false
	}
	if !slices.Contains(g.pos.Board.LegalMoves(from), to) {
		return nil, false
	}

	mover := g.pos.SideToMove
	pc := g.pos.Board.At(from)
	captured := g.pos.Board.At(to)

	np, ok := g.pos.ApplyMove(Move{From: from.Index(), To: to.Index()})
	if !ok {
		return nil, false
	}
	if _, ok := np.Board.generalSquare(mover); !ok {
		panic(fmt.Sprintf("xiangqi: %s lost its own general moving %v->%v", mover, from, to))
	}

	next := &Game{
		pos: *np,
		history: append(g.history[:len(g.history):len(g.history)], MoveRecord{
			Number:   len(g.history) + 1,
			From:     from,
			To:       to,
			Piece:    pc,
			Captured: captured,
		}),
		captured: g.captured,
		hashes:   append(g.hashes[:len(g.hashes):len(g.hashes)], np.Hash),
	}
	if captured != 0 {
		cs := g.captured[mover]
		next.captured[mover] = append(cs[:len(cs):len(cs)], captured)
	}
	if captured.Type() == PieceGeneral {
		next.outcome = &Outcome{Winner: mover, Reason: ReasonGeneralCaptured}
	} else {
		next.inCheck = np.IsInCheck(np.SideToMove)
	}
	return next, true
}

// Replay re-applies history from the opening. Records must be legal in
// order and name the piece that actually moved.
func Replay(history []MoveRecord) (*Game, error) {
	g := NewGame()
	for i, rec := range history {
		if rec.From.Valid() && g.PieceAt(rec.From) != rec.Piece {
			return nil, fmt.Errorf("%w: record %d expects %v on %v", ErrIllegalMove, i+1, rec.Piece, rec.From)
		}
		next, ok := g.ApplyMove(rec.From, rec.To)
		if !ok {
			return nil, fmt.Errorf("%w: record %d %v->%v", ErrIllegalMove, i+1, rec.From, rec.To)
		}
		g = next
	}
	return g, nil
}
