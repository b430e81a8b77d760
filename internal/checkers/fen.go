package checkers

import (
	"errors"
	"fmt"
	"strings"
)

func pieceToChar(p Piece) rune {
	switch p {
	case BlackMan:
		return 'b'
	case BlackKing:
		return 'B'
	case RedMan:
		return 'r'
	case RedKing:
		return 'R'
	}
	return '.'
}

func charToPiece(ch rune) (Piece, bool) {
	switch ch {
	case 'b':
		return BlackMan, true
	case 'B':
		return BlackKing, true
	case 'r':
		return RedMan, true
	case 'R':
		return RedKing, true
	}
	return Empty, false
}

// Encode 简单 FEN-like：8 行用“/”隔开，空位用数字压缩；空格后 b/r 表示轮到谁走
func (b *Board) Encode(toMove Player) string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := b.Squares[indexOf(r, c)]
			if pc == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if toMove == Red {
		sb.WriteByte('r')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}

var ErrInvalidFEN = errors.New("invalid FEN")

// DecodePosition parses the Encode format. '.' is accepted as a single empty
// square so that hand-written test boards stay readable.
func DecodePosition(fen string) (*Board, Player, error) {
	parts := strings.Fields(fen)
	if len(parts) != 2 {
		return nil, NoPlayer, ErrInvalidFEN
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return nil, NoPlayer, fmt.Errorf("%w: want %d rows, got %d", ErrInvalidFEN, Rows, len(rows))
	}
	var b Board
	for r, row := range rows {
		c := 0
		for _, ch := range row {
			if c >= Cols {
				return nil, NoPlayer, fmt.Errorf("%w: row %d too long", ErrInvalidFEN, r)
			}
			if ch >= '1' && ch <= '8' {
				c += int(ch - '0')
				continue
			}
			if ch == '.' {
				c++
				continue
			}
			pc, ok := charToPiece(ch)
			if !ok {
				return nil, NoPlayer, fmt.Errorf("%w: unknown piece %q", ErrInvalidFEN, ch)
			}
			if !playable(r, c) {
				return nil, NoPlayer, fmt.Errorf("%w: piece on light square (%d,%d)", ErrInvalidFEN, r, c)
			}
			b.Squares[indexOf(r, c)] = pc
			c++
		}
		if c != Cols {
			return nil, NoPlayer, fmt.Errorf("%w: row %d has %d columns", ErrInvalidFEN, r, c)
		}
	}
	var toMove Player
	switch parts[1] {
	case "b":
		toMove = Black
	case "r":
		toMove = Red
	default:
		return nil, NoPlayer, fmt.Errorf("%w: side %q", ErrInvalidFEN, parts[1])
	}
	return &b, toMove, nil
}

// String renders the board as eight text rows, row 0 first.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			sb.WriteRune(pieceToChar(b.Squares[indexOf(r, c)]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
