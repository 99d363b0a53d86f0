package xiangqi

// generalsFace reports the flying-generals configuration: both generals on
// one file with nothing between them.
func (b *Board) generalsFace() bool {
	red, okRed := b.generalSquare(Red)
	black, okBlack := b.generalSquare(Black)
	if !okRed || !okBlack {
		// 有一方将已经没了：对局结束，不存在对脸
		return false
	}

	col := colOf(red)
	if col != colOf(black) {
		return false
	}
	lo, hi := rowOf(black), rowOf(red)
	if lo > hi {
		lo, hi = hi, lo
	}
	for r := lo + 1; r < hi; r++ {
		if b.Squares[indexOf(r, col)] != 0 {
			return false
		}
	}
	return true
}
