package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"xiangqi/internal/xiangqi"
)

const (
	originX = 4
	originY = 2
	cellW   = 4
)

var (
	redGlyphs   = [...]rune{xiangqi.PieceChariot: '俥', xiangqi.PieceHorse: '傌', xiangqi.PieceCannon: '炮', xiangqi.PieceElephant: '相', xiangqi.PieceAdvisor: '仕', xiangqi.PieceGeneral: '帥', xiangqi.PieceSoldier: '兵'}
	blackGlyphs = [...]rune{xiangqi.PieceChariot: '車', xiangqi.PieceHorse: '馬', xiangqi.PieceCannon: '砲', xiangqi.PieceElephant: '象', xiangqi.PieceAdvisor: '士', xiangqi.PieceGeneral: '將', xiangqi.PieceSoldier: '卒'}

	styleBase   = tcell.StyleDefault
	styleRed    = styleBase.Foreground(tcell.ColorRed).Bold(true)
	styleBlack  = styleBase.Foreground(tcell.ColorWhite).Bold(true)
	styleDest   = styleBase.Background(tcell.ColorDarkGreen)
	styleSelect = styleBase.Background(tcell.ColorOlive)
	styleHint   = styleBase.Foreground(tcell.ColorGray)
)

type ui struct {
	screen  tcell.Screen
	session *xiangqi.Session
	cursor  xiangqi.Square
	ascii   bool
	message string
	buttons tcell.ButtonMask
}

func newUI(s tcell.Screen, session *xiangqi.Session, ascii bool) *ui {
	return &ui{
		screen:  s,
		session: session,
		cursor:  xiangqi.Sq(xiangqi.Rows-1, 4),
		ascii:   ascii,
	}
}

func (u *ui) run() {
	for {
		u.draw()
		switch ev := u.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			u.screen.Sync()
		case *tcell.EventKey:
			if !u.handleKey(ev) {
				return
			}
		case *tcell.EventMouse:
			u.handleMouse(ev)
		}
	}
}

// handleKey returns false when the user asked to quit.
func (u *ui) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		u.moveCursor(-1, 0)
	case tcell.KeyDown:
		u.moveCursor(+1, 0)
	case tcell.KeyLeft:
		u.moveCursor(0, -1)
	case tcell.KeyRight:
		u.moveCursor(0, +1)
	case tcell.KeyEnter:
		u.click(u.cursor)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			u.click(u.cursor)
		case 'r':
			u.session.Restart()
			u.message = "new game"
		case 'k':
			u.moveCursor(-1, 0)
		case 'j':
			u.moveCursor(+1, 0)
		case 'h':
			u.moveCursor(0, -1)
		case 'l':
			u.moveCursor(0, +1)
		}
	}
	return true
}

func (u *ui) handleMouse(ev *tcell.EventMouse) {
	btn := ev.Buttons()
	pressed := btn&tcell.Button1 != 0 && u.buttons&tcell.Button1 == 0
	u.buttons = btn
	if !pressed {
		return
	}
	x, y := ev.Position()
	if sq, ok := squareAtScreen(x, y); ok {
		u.cursor = sq
		u.click(sq)
	}
}

func (u *ui) moveCursor(dr, dc int) {
	next := xiangqi.Sq(u.cursor.Row+dr, u.cursor.Col+dc)
	if next.Valid() {
		u.cursor = next
	}
}

func (u *ui) click(sq xiangqi.Square) {
	res := u.session.Click(sq)
	switch res {
	case xiangqi.ClickIgnored:
		u.message = ""
	case xiangqi.ClickSelected:
		u.message = fmt.Sprintf("selected %v, %d moves", sq, len(u.session.Destinations()))
	case xiangqi.ClickCancelled:
		u.message = "selection cleared"
	case xiangqi.ClickMoved:
		h := u.session.Game().History()
		last := h[len(h)-1]
		u.message = fmt.Sprintf("%d. %s %v-%v", last.Number, last.Piece, last.From, last.To)
		if last.Captured != 0 {
			u.message += " x" + last.Captured.String()
		}
	}
}

// 河界占一行，第 5 行以下整体下移
func screenRow(row int) int {
	y := originY + row
	if row >= xiangqi.RiverRow {
		y++
	}
	return y
}

func squareAtScreen(x, y int) (xiangqi.Square, bool) {
	if x < originX {
		return xiangqi.Square{}, false
	}
	col := (x - originX) / cellW
	for row := 0; row < xiangqi.Rows; row++ {
		if screenRow(row) == y {
			sq := xiangqi.Sq(row, col)
			return sq, sq.Valid()
		}
	}
	return xiangqi.Square{}, false
}

func (u *ui) text(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		u.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (u *ui) glyph(pc xiangqi.Piece) (rune, tcell.Style) {
	if pc == 0 {
		return '·', styleHint
	}
	style := styleRed
	if pc.Side() == xiangqi.Black {
		style = styleBlack
	}
	if u.ascii {
		return []rune(pc.String())[0], style
	}
	if pc.Side() == xiangqi.Red {
		return redGlyphs[pc.Type()], style
	}
	return blackGlyphs[pc.Type()], style
}

func (u *ui) draw() {
	s := u.screen
	s.Clear()
	g := u.session.Game()
	board := g.Board()

	dests := make(map[xiangqi.Square]bool)
	for _, d := range u.session.Destinations() {
		dests[d] = true
	}
	selected, hasSel := u.session.Selection()

	for c := 0; c < xiangqi.Cols; c++ {
		u.text(originX+c*cellW+1, originY-1, styleHint, fmt.Sprint(c))
	}
	for r := 0; r < xiangqi.Rows; r++ {
		y := screenRow(r)
		u.text(0, y, styleHint, fmt.Sprintf("%2d", r))
		for c := 0; c < xiangqi.Cols; c++ {
			sq := xiangqi.Sq(r, c)
			x := originX + c*cellW

			bg := styleBase
			switch {
			case hasSel && sq == selected:
				bg = styleSelect
			case dests[sq]:
				bg = styleDest
			}
			for i := 0; i < cellW-1; i++ {
				s.SetContent(x+i, y, ' ', nil, bg)
			}

			ch, style := u.glyph(board.At(sq))
			_, bgColor, _ := bg.Decompose()
			style = style.Background(bgColor)
			if sq == u.cursor {
				style = style.Reverse(true)
			}
			s.SetContent(x+1, y, ch, nil, style)
		}
	}
	u.text(originX, screenRow(xiangqi.RiverRow)-1, styleHint, "~~~~~~~~~~ river ~~~~~~~~~~~~")

	y := screenRow(xiangqi.Rows-1) + 2
	u.text(0, y, styleBase, u.statusLine(g))
	u.text(0, y+1, styleHint, u.message)
	u.text(0, y+3, styleHint, "arrows/hjkl move  enter/space/click select  r restart  q quit")
	s.Show()
}

func (u *ui) statusLine(g *xiangqi.Game) string {
	if out, over := g.Terminal(); over {
		return fmt.Sprintf("game over: %s wins (%s)", out.Winner, out.Reason)
	}
	line := fmt.Sprintf("move %d, %s to play", g.MoveNumber(), g.SideToMove())
	switch g.Status() {
	case xiangqi.StatusCheck:
		line += ", CHECK"
	case xiangqi.StatusNoMoves:
		line += ", no legal moves"
	}
	return line
}
