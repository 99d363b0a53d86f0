package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"xiangqi/internal/xiangqi"
)

func perft(p *xiangqi.Position, depth int) int {
	if depth == 0 {
		return 1
	}
	moves := p.GenerateLegalMoves()
	if depth == 1 {
		return len(moves)
	}
	n := 0
	for _, mv := range moves {
		np, ok := p.ApplyMove(mv)
		if !ok {
			log.Fatalf("generated move %+v failed to apply", mv)
		}
		n += perft(np, depth-1)
	}
	return n
}

func main() {
	fen := flag.String("fen", "", "start position (default: opening)")
	depth := flag.Int("depth", 3, "perft depth")
	flag.Parse()

	pos := xiangqi.NewInitialPosition()
	if *fen != "" {
		var err error
		if pos, err = xiangqi.DecodePosition(*fen); err != nil {
			log.Fatalf("decode: %v", err)
		}
	}

	fmt.Println("FEN:", pos.Encode())
	fmt.Println("Pseudo moves:", len(pos.GeneratePseudoMovesForSide(pos.SideToMove)))
	fmt.Println("In check:", pos.IsInCheck(pos.SideToMove))
	for d := 1; d <= *depth; d++ {
		start := time.Now()
		n := perft(pos, d)
		fmt.Printf("perft(%d) = %d  (%v)\n", d, n, time.Since(start))
	}
}
