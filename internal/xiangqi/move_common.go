package xiangqi

var (
	orthogonalDirs = [4][2]int{{-1, 0}, {+1, 0}, {0, -1}, {0, +1}}
	diagonalDirs   = [4][2]int{{-1, -1}, {-1, +1}, {+1, -1}, {+1, +1}}
)

// 目标格为空或敌子时可落
func canLand(b *Board, to int, side Side) bool {
	dst := b.Squares[to]
	return dst == 0 || dst.Side() != side
}

// 车：横竖滑行，遇子即停，敌子可吃
func genChariotMoves(b *Board, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := b.Squares[from].Side()
	for _, d := range orthogonalDirs {
		r, c := row+d[0], col+d[1]
		for onBoard(r, c) {
			to := indexOf(r, c)
			pc := b.Squares[to]
			if pc == 0 {
				*moves = append(*moves, Move{From: from, To: to})
			} else {
				if pc.Side() != side {
					*moves = append(*moves, Move{From: from, To: to})
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
}

// 炮：不吃子时同车；吃子必须隔恰好一个炮架
func genCannonMoves(b *Board, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := b.Squares[from].Side()
	for _, d := range orthogonalDirs {
		r, c := row+d[0], col+d[1]

		// 走子阶段：直到第一个棋子（炮架）
		for onBoard(r, c) {
			if b.Squares[indexOf(r, c)] != 0 {
				break
			}
			*moves = append(*moves, Move{From: from, To: indexOf(r, c)})
			r += d[0]
			c += d[1]
		}
		if !onBoard(r, c) {
			continue
		}

		// 吃子阶段：越过炮架，遇到的第一子若是敌子可吃
		r += d[0]
		c += d[1]
		for onBoard(r, c) {
			pc := b.Squares[indexOf(r, c)]
			if pc != 0 {
				if pc.Side() != side {
					*moves = append(*moves, Move{From: from, To: indexOf(r, c)})
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
}

// 相：田字，塞象眼不能走，不能过河
func genElephantMoves(b *Board, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := b.Squares[from].Side()
	for _, d := range diagonalDirs {
		r := row + 2*d[0]
		c := col + 2*d[1]
		if !onBoard(r, c) || !onOwnHalf(side, r) {
			continue
		}
		if b.Squares[indexOf(row+d[0], col+d[1])] != 0 {
			continue
		}
		if to := indexOf(r, c); canLand(b, to, side) {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}
}

// 士：九宫内斜走一格
func genAdvisorMoves(b *Board, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := b.Squares[from].Side()
	for _, d := range diagonalDirs {
		r := row + d[0]
		c := col + d[1]
		if !inPalace(side, r, c) {
			continue
		}
		if to := indexOf(r, c); canLand(b, to, side) {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}
}

// 将：九宫内上下左右一格。对将由 generalsFace 在合法性过滤时处理。
func genGeneralMoves(b *Board, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := b.Squares[from].Side()
	for _, d := range orthogonalDirs {
		r := row + d[0]
		c := col + d[1]
		if !inPalace(side, r, c) {
			continue
		}
		if to := indexOf(r, c); canLand(b, to, side) {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}
}
