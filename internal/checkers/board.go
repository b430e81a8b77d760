package checkers

import (
	"strings"
)

const (
	Rows       = 8
	Cols       = 8
	NumSquares = Rows * Cols
)

func indexOf(row, col int) int { return row*Cols + col }

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// 只有深色格可以落子
func playable(row, col int) bool { return row%2 != col%2 }

// InBounds reports whether c lies on the 8x8 grid.
func (c Coord) InBounds() bool { return onBoard(c.Row, c.Col) }

// Playable reports whether c is one of the 32 dark squares.
func (c Coord) Playable() bool { return c.InBounds() && playable(c.Row, c.Col) }

func Opponent(p Player) Player {
	if p == Black {
		return Red
	}
	if p == Red {
		return Black
	}
	return NoPlayer
}

// 兵的前进方向：黑向下(+1)，红向上(-1)
func forwardDir(p Player) int {
	if p == Black {
		return +1
	}
	if p == Red {
		return -1
	}
	return 0
}

// PromotionRow is the farthest row from p's home edge.
func PromotionRow(p Player) int {
	if p == Black {
		return Rows - 1
	}
	return 0
}

var (
	kingDirs  = [4][2]int{{1, -1}, {1, 1}, {-1, -1}, {-1, 1}}
	blackDirs = kingDirs[:2]
	redDirs   = kingDirs[2:]
)

// 棋子可走的斜线方向：兵 2 个，王 4 个
func directions(pc Piece) [][2]int {
	if pc.IsKing() {
		return kingDirs[:]
	}
	switch pc.Owner() {
	case Black:
		return blackDirs
	case Red:
		return redDirs
	}
	return nil
}

// At returns the cell at c; out-of-bounds coordinates read as Empty.
func (b *Board) At(c Coord) Piece {
	if !c.InBounds() {
		return Empty
	}
	return b.Squares[indexOf(c.Row, c.Col)]
}

// Set places pc at c. Non-playable squares stay empty.
func (b *Board) Set(c Coord, pc Piece) {
	if !c.Playable() {
		return
	}
	b.Squares[indexOf(c.Row, c.Col)] = pc
}

// Count returns how many pieces p has on the board.
func (b *Board) Count(p Player) int {
	n := 0
	for _, pc := range b.Squares {
		if pc != Empty && pc.Owner() == p {
			n++
		}
	}
	return n
}

// Clone returns an independent copy for scratch evaluation.
func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

const initialBoardString = `.b.b.b.b
b.b.b.b.
.b.b.b.b
........
........
r.r.r.r.
.r.r.r.r
r.r.r.r.`

func parseInitialBoard() Board {
	var b Board
	lines := make([]string, 0, Rows)
	for _, line := range strings.Split(initialBoardString, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Rows {
		panic("initialBoardString must have 8 rows")
	}
	for r := 0; r < Rows; r++ {
		if len(lines[r]) != Cols {
			panic("initialBoardString must have 8 columns")
		}
		for c, ch := range lines[r] {
			if ch == '.' {
				continue
			}
			pc, ok := charToPiece(ch)
			if !ok || !playable(r, c) {
				panic("bad initial square: " + string(ch))
			}
			b.Squares[indexOf(r, c)] = pc
		}
	}
	return b
}

// NewInitialBoard returns the standard opening: twelve men per side on the first
// three dark rows of each edge.
func NewInitialBoard() *Board {
	b := parseInitialBoard()
	return &b
}
