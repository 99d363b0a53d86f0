package xiangqi

// 马的 8 种“日”字：终点偏移 + 马腿偏移
var horseLegMoves = [8]struct {
	Dr, Dc int // 终点
	Br, Bc int // 马腿
}{
	{-2, -1, -1, 0},
	{-2, +1, -1, 0},
	{-1, -2, 0, -1},
	{-1, +2, 0, +1},
	{+1, -2, 0, -1},
	{+1, +2, 0, +1},
	{+2, -1, +1, 0},
	{+2, +1, +1, 0},
}

func genHorseMoves(b *Board, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := b.Squares[from].Side()
	for _, m := range horseLegMoves {
		r := row + m.Dr
		c := col + m.Dc
		if !onBoard(r, c) {
			continue
		}
		if b.Squares[indexOf(row+m.Br, col+m.Bc)] != 0 {
			continue // 蹩马腿
		}
		if to := indexOf(r, c); canLand(b, to, side) {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}
}
