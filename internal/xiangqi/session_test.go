package xiangqi

import "testing"

func TestSessionSelectAndMove(t *testing.T) {
	s := NewSession()
	if s.Phase() != AwaitingSelection {
		t.Fatalf("initial phase: got=%s", s.Phase())
	}

	steps := []struct {
		name  string
		click Square
		want  ClickResult
		phase Phase
	}{
		{"empty square", Sq(5, 5), ClickIgnored, AwaitingSelection},
		{"opponent piece", Sq(0, 1), ClickIgnored, AwaitingSelection},
		{"off board", Sq(12, 0), ClickIgnored, AwaitingSelection},
		{"select horse", Sq(9, 1), ClickSelected, AwaitingDestination},
		{"same square cancels", Sq(9, 1), ClickCancelled, AwaitingSelection},
		{"select horse again", Sq(9, 1), ClickSelected, AwaitingDestination},
		{"switch to chariot", Sq(9, 0), ClickSelected, AwaitingDestination},
		{"illegal square cancels", Sq(5, 5), ClickCancelled, AwaitingSelection},
		{"select cannon", Sq(7, 1), ClickSelected, AwaitingDestination},
		{"enemy piece out of reach cancels", Sq(0, 0), ClickCancelled, AwaitingSelection},
		{"select horse for move", Sq(9, 1), ClickSelected, AwaitingDestination},
		{"move horse", Sq(7, 2), ClickMoved, AwaitingSelection},
	}
	for _, st := range steps {
		before := s.Game()
		got := s.Click(st.click)
		if got != st.want || s.Phase() != st.phase {
			t.Fatalf("%s: got=%s/%s want=%s/%s", st.name, got, s.Phase(), st.want, st.phase)
		}
		if st.want != ClickMoved && s.Game() != before {
			t.Fatalf("%s: game changed without a move", st.name)
		}
	}

	if s.Game().SideToMove() != Black {
		t.Fatalf("side after move: got=%s want=black", s.Game().SideToMove())
	}
	if _, ok := s.Selection(); ok {
		t.Fatalf("selection should be cleared after a move")
	}
	if got := s.Click(Sq(7, 2)); got != ClickIgnored {
		t.Fatalf("red piece clickable on black's turn: %s", got)
	}
}

func TestSessionExposesDestinations(t *testing.T) {
	s := NewSession()
	s.Click(Sq(9, 1))
	sel, ok := s.Selection()
	if !ok || sel != Sq(9, 1) {
		t.Fatalf("selection: got=%v ok=%v", sel, ok)
	}
	assertSquares(t, "horse", s.Destinations(), []Square{Sq(7, 0), Sq(7, 2)})

	s.Click(Sq(9, 1))
	if len(s.Destinations()) != 0 {
		t.Fatalf("destinations kept after cancel: %v", s.Destinations())
	}
}

func TestSessionGameOver(t *testing.T) {
	g, err := NewGameFromFEN("4k4/9/9/4R4/9/9/9/9/9/3K5 w")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	s := NewSessionFrom(g)
	if got := s.Click(Sq(3, 4)); got != ClickSelected {
		t.Fatalf("select chariot: %s", got)
	}
	if got := s.Click(Sq(0, 4)); got != ClickMoved {
		t.Fatalf("capture general: %s", got)
	}
	if s.Phase() != GameOver {
		t.Fatalf("phase: got=%s want=%s", s.Phase(), GameOver)
	}
	over := s.Game()
	for _, sq := range []Square{Sq(0, 4), Sq(9, 3), Sq(4, 4)} {
		if got := s.Click(sq); got != ClickIgnored {
			t.Fatalf("click %v after game over: %s", sq, got)
		}
	}
	if s.Game() != over {
		t.Fatalf("game changed after game over")
	}

	s.Restart()
	if s.Phase() != AwaitingSelection {
		t.Fatalf("phase after restart: %s", s.Phase())
	}
	if s.Game().Encode() != openingFEN || len(s.Game().History()) != 0 {
		t.Fatalf("restart did not load the opening: %s", s.Game().Encode())
	}
}

func TestSessionFromFinishedGame(t *testing.T) {
	g, _ := NewGameFromFEN("4k4/9/9/4R4/9/9/9/9/9/3K5 w")
	end, _ := g.ApplyMove(Sq(3, 4), Sq(0, 4))
	if s := NewSessionFrom(end); s.Phase() != GameOver {
		t.Fatalf("phase: got=%s want=%s", s.Phase(), GameOver)
	}
}

func TestRestartMidSelection(t *testing.T) {
	s := NewSession()
	s.Click(Sq(9, 1))
	s.Click(Sq(7, 2))
	s.Click(Sq(0, 1))
	s.Restart()
	if s.Phase() != AwaitingSelection || s.Game().SideToMove() != Red {
		t.Fatalf("restart: phase=%s side=%s", s.Phase(), s.Game().SideToMove())
	}
}

func TestSessionPlay(t *testing.T) {
	s := NewSession()
	s.Click(Sq(9, 0))
	if s.Play(Sq(9, 0), Sq(9, 8)) {
		t.Fatalf("blocked chariot move accepted")
	}
	if s.Phase() != AwaitingSelection {
		t.Fatalf("rejected play should drop the selection, phase=%s", s.Phase())
	}
	if !s.Play(Sq(9, 0), Sq(8, 0)) {
		t.Fatalf("legal chariot move rejected")
	}
	if got := s.Game().History()[0].To; got != Sq(8, 0) {
		t.Fatalf("recorded destination: got=%v", got)
	}

	g, _ := NewGameFromFEN("4k4/9/9/4R4/9/9/9/9/9/3K5 w")
	s = NewSessionFrom(g)
	if !s.Play(Sq(3, 4), Sq(0, 4)) || s.Phase() != GameOver {
		t.Fatalf("general capture: phase=%s", s.Phase())
	}
	if s.Play(Sq(9, 3), Sq(9, 4)) {
		t.Fatalf("play accepted after game over")
	}
}
