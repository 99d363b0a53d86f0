package xiangqi

import "slices"

// Phase is where a Session is in the select/move cycle.
type Phase int8

const (
	AwaitingSelection Phase = iota
	AwaitingDestination
	GameOver
)

func (ph Phase) String() string {
	switch ph {
	case AwaitingSelection:
		return "awaiting_selection"
	case AwaitingDestination:
		return "awaiting_destination"
	case GameOver:
		return "game_over"
	}
	return "unknown"
}

// ClickResult tells the caller what a click did.
type ClickResult int8

const (
	ClickIgnored   ClickResult = iota // 无效点击，状态不变
	ClickSelected                     // 选中一枚己方棋子
	ClickCancelled                    // 取消选中
	ClickMoved                        // 走子成功
)

func (cr ClickResult) String() string {
	switch cr {
	case ClickIgnored:
		return "ignored"
	case ClickSelected:
		return "selected"
	case ClickCancelled:
		return "cancelled"
	case ClickMoved:
		return "moved"
	}
	return "unknown"
}

// Session drives one local two-seat game from board clicks. It is not safe
// for concurrent use; callers that share one serialize access.
type Session struct {
	game         *Game
	phase        Phase
	selected     Square
	destinations []Square
}

func NewSession() *Session {
	return &Session{game: NewGame()}
}

// NewSessionFrom wraps an existing game, e.g. one rebuilt by Replay.
func NewSessionFrom(g *Game) *Session {
	s := &Session{game: g}
	if _, over := g.Terminal(); over {
		s.phase = GameOver
	}
	return s
}

func (s *Session) Game() *Game  { return s.game }
func (s *Session) Phase() Phase { return s.phase }

// Selection returns the selected square while awaiting a destination.
func (s *Session) Selection() (Square, bool) {
	if s.phase != AwaitingDestination {
		return Square{}, false
	}
	return s.selected, true
}

func (s *Session) Destinations() []Square {
	return slices.Clone(s.destinations)
}

// Click feeds one board click into the state machine.
func (s *Session) Click(sq Square) ClickResult {
	switch s.phase {
	case AwaitingSelection:
		if !s.selectPiece(sq) {
			return ClickIgnored
		}
		return ClickSelected

	case AwaitingDestination:
		if sq == s.selected {
			s.clearSelection()
			return ClickCancelled
		}
		// 点另一枚己方棋子：直接改选，不经过取消
		if s.game.selectable(sq) {
			s.selectPiece(sq)
			return ClickSelected
		}
		next, ok := s.game.ApplyMove(s.selected, sq)
		s.clearSelection()
		if !ok {
			return ClickCancelled
		}
		s.game = next
		if _, over := next.Terminal(); over {
			s.phase = GameOver
		}
		return ClickMoved

	default:
		return ClickIgnored
	}
}

// Play applies from->to directly, bypassing the click cycle. Any pending
// selection is dropped either way.
func (s *Session) Play(from, to Square) bool {
	if s.phase == GameOver {
		return false
	}
	next, ok := s.game.ApplyMove(from, to)
	s.clearSelection()
	if !ok {
		return false
	}
	s.game = next
	if _, over := next.Terminal(); over {
		s.phase = GameOver
	}
	return true
}

// Restart puts a fresh opening in place from any phase.
func (s *Session) Restart() {
	s.game = s.game.Restart()
	s.clearSelection()
}

func (s *Session) selectPiece(sq Square) bool {
	dests, ok := s.game.SelectPiece(sq)
	if !ok {
		return false
	}
	s.phase = AwaitingDestination
	s.selected = sq
	s.destinations = dests
	return true
}

func (s *Session) clearSelection() {
	s.phase = AwaitingSelection
	s.selected = Square{}
	s.destinations = nil
}
