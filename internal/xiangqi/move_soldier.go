package xiangqi

// 兵：未过河只能前进一格；过河后可前进或左右一格，永不后退
func genSoldierMoves(b *Board, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	pc := b.Squares[from]
	if pc == 0 {
		return
	}
	side := pc.Side()

	if r := row + soldierDir(side); onBoard(r, col) {
		if to := indexOf(r, col); canLand(b, to, side) {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}

	if !soldierCrossedRiver(side, row) {
		return
	}
	for _, dc := range [2]int{-1, +1} {
		c := col + dc
		if !onBoard(row, c) {
			continue
		}
		if to := indexOf(row, c); canLand(b, to, side) {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}
}
