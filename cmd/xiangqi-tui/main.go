// Command xiangqi-tui plays a local two-seat game in the terminal.
package main

import (
	"flag"
	"io"
	"log"

	"github.com/gdamore/tcell/v2"
	"xiangqi/internal/xiangqi"
)

func main() {
	ascii := flag.Bool("ascii", false, "draw pieces as FEN letters instead of Chinese glyphs")
	flag.Parse()

	s, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := s.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}
	s.EnableMouse()

	// 屏幕接管终端期间不输出日志
	out := log.Writer()
	log.SetOutput(io.Discard)

	u := newUI(s, xiangqi.NewSession(), *ascii)
	u.run()

	s.Fini()
	log.SetOutput(out)
	if g := u.session.Game(); len(g.History()) > 0 {
		log.Printf("final position after %d moves: %s", len(g.History()), g.Encode())
	}
}
