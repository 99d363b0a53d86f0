package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"xiangqi/internal/xiangqi"
)

func newTestUI(t *testing.T, ascii bool) (*ui, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(80, 24)
	return newUI(s, xiangqi.NewSession(), ascii), s
}

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }
func char(r rune) *tcell.EventKey     { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestKeyboardMovesAPiece(t *testing.T) {
	u, _ := newTestUI(t, true)
	// 光标从 (9,4) 移到红马 (9,1)，再跳到 (7,2)
	for _, ev := range []*tcell.EventKey{char('h'), char('h'), char('h'), key(tcell.KeyEnter)} {
		if !u.handleKey(ev) {
			t.Fatalf("unexpected quit")
		}
	}
	if sel, ok := u.session.Selection(); !ok || sel != xiangqi.Sq(9, 1) {
		t.Fatalf("selection: got=%v ok=%v", sel, ok)
	}
	for _, ev := range []*tcell.EventKey{key(tcell.KeyUp), key(tcell.KeyUp), key(tcell.KeyRight), char(' ')} {
		u.handleKey(ev)
	}
	h := u.session.Game().History()
	if len(h) != 1 || h[0].To != xiangqi.Sq(7, 2) {
		t.Fatalf("history: %v", h)
	}
	if u.message == "" {
		t.Fatalf("no move message")
	}
}

func TestCursorStaysOnBoard(t *testing.T) {
	u, _ := newTestUI(t, true)
	for i := 0; i < 20; i++ {
		u.handleKey(key(tcell.KeyDown))
		u.handleKey(key(tcell.KeyRight))
	}
	if u.cursor != xiangqi.Sq(9, 8) {
		t.Fatalf("cursor: got=%v want=(9,8)", u.cursor)
	}
}

func TestQuitAndRestart(t *testing.T) {
	u, _ := newTestUI(t, true)
	u.click(xiangqi.Sq(9, 1))
	u.click(xiangqi.Sq(7, 2))
	if !u.handleKey(char('r')) {
		t.Fatalf("restart quit the ui")
	}
	if len(u.session.Game().History()) != 0 {
		t.Fatalf("restart kept history")
	}
	if u.handleKey(char('q')) || u.handleKey(key(tcell.KeyEscape)) {
		t.Fatalf("quit keys ignored")
	}
}

func TestDrawRendersBoard(t *testing.T) {
	u, s := newTestUI(t, true)
	u.draw()
	cells, w, _ := s.GetContents()
	at := func(sq xiangqi.Square) rune {
		c := cells[screenRow(sq.Row)*w+originX+sq.Col*cellW+1]
		if len(c.Runes) == 0 {
			return 0
		}
		return c.Runes[0]
	}
	if got := at(xiangqi.Sq(9, 0)); got != 'R' {
		t.Fatalf("red chariot glyph: got=%q", got)
	}
	if got := at(xiangqi.Sq(0, 4)); got != 'k' {
		t.Fatalf("black general glyph: got=%q", got)
	}
}

func TestSquareAtScreen(t *testing.T) {
	for _, sq := range []xiangqi.Square{xiangqi.Sq(0, 0), xiangqi.Sq(4, 8), xiangqi.Sq(5, 3), xiangqi.Sq(9, 4)} {
		got, ok := squareAtScreen(originX+sq.Col*cellW+1, screenRow(sq.Row))
		if !ok || got != sq {
			t.Fatalf("squareAtScreen(%v): got=%v ok=%v", sq, got, ok)
		}
	}
	if _, ok := squareAtScreen(originX, screenRow(xiangqi.RiverRow)-1); ok {
		t.Fatalf("river line mapped to a square")
	}
}
