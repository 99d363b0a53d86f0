package httpserver

import (
	"strconv"

	"xiangqi/internal/server/game"
	"xiangqi/internal/xiangqi"
)

// 前端用的招法结构
type MoveDTO struct {
	From xiangqi.Square `json:"from"`
	To   xiangqi.Square `json:"to"`
}

type CapturedDTO struct {
	Red   []xiangqi.Piece `json:"red"`   // 红方吃掉的子
	Black []xiangqi.Piece `json:"black"` // 黑方吃掉的子
}

// StateDTO is the full view of one game sent after every request.
type StateDTO struct {
	Position     string               `json:"position"` // FEN 字符串
	ToMove       int                  `json:"to_move"`  // 0=红(w),1=黑(b)
	Phase        string               `json:"phase"`
	Selected     *xiangqi.Square      `json:"selected,omitempty"`
	Destinations []xiangqi.Square     `json:"destinations"`
	LegalMoves   []MoveDTO            `json:"legal_moves"`
	InCheck      bool                 `json:"in_check"`
	Status       string               `json:"status"` // "ongoing" / "check" / "no_moves" / "general_captured"
	Winner       *int                 `json:"winner,omitempty"`
	Reason       string               `json:"reason,omitempty"`
	History      []xiangqi.MoveRecord `json:"history"`
	Captured     CapturedDTO          `json:"captured"`
	Hash         string               `json:"hash"`
	Repetitions  int                  `json:"repetitions"`
}

type GameRequest struct {
	GameID string `json:"game_id"`
}

type SquareRequest struct {
	GameID string         `json:"game_id"`
	Square xiangqi.Square `json:"square"`
}

type PlayRequest struct {
	GameID string         `json:"game_id"`
	From   xiangqi.Square `json:"from"`
	To     xiangqi.Square `json:"to"`
}

type ResumeRequest struct {
	History []xiangqi.MoveRecord `json:"history"`
}

type NewGameResponse struct {
	GameID string   `json:"game_id"`
	State  StateDTO `json:"state"`
}

type StateResponse struct {
	State StateDTO `json:"state"`
}

type SelectResponse struct {
	Accepted     bool             `json:"accepted"`
	Destinations []xiangqi.Square `json:"destinations"`
	State        StateDTO         `json:"state"`
}

type PlayResponse struct {
	Accepted bool     `json:"accepted"`
	State    StateDTO `json:"state"`
}

type DeleteResponse struct {
	GameID  string `json:"game_id"`
	Deleted bool   `json:"deleted"`
}

type ClickResponse struct {
	Result string   `json:"result"` // "ignored" / "selected" / "cancelled" / "moved"
	State  StateDTO `json:"state"`
}

func sideToInt(s xiangqi.Side) int {
	switch s {
	case xiangqi.Red:
		return 0
	case xiangqi.Black:
		return 1
	default:
		return -1
	}
}

func movesToDTO(ms []xiangqi.Move) []MoveDTO {
	out := make([]MoveDTO, 0, len(ms))
	for _, m := range ms {
		from, to := m.Squares()
		out = append(out, MoveDTO{From: from, To: to})
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func stateToDTO(gs *game.GameState) StateDTO {
	s := gs.Session
	g := s.Game()
	dto := StateDTO{
		Position:     g.Encode(),
		ToMove:       sideToInt(g.SideToMove()),
		Phase:        s.Phase().String(),
		Destinations: nonNil(s.Destinations()),
		LegalMoves:   movesToDTO(g.LegalMoves()),
		InCheck:      g.InCheck(),
		Status:       string(g.Status()),
		History:      nonNil(g.History()),
		Captured: CapturedDTO{
			Red:   nonNil(g.Captured(xiangqi.Red)),
			Black: nonNil(g.Captured(xiangqi.Black)),
		},
		Hash:        strconv.FormatUint(g.Hash(), 16),
		Repetitions: g.RepetitionCount(),
	}
	if sel, ok := s.Selection(); ok {
		dto.Selected = &sel
	}
	if out, over := g.Terminal(); over {
		w := sideToInt(out.Winner)
		dto.Winner = &w
		dto.Reason = out.Reason
	}
	return dto
}
