package checkers

import "fmt"

type Player int8

const (
	NoPlayer Player = -1
	Black    Player = 0
	Red      Player = 1
)

func (p Player) String() string {
	switch p {
	case Black:
		return "black"
	case Red:
		return "red"
	default:
		return "none"
	}
}

// ParsePlayer is the inverse of Player.String for the two colours.
func ParsePlayer(s string) (Player, error) {
	switch s {
	case "black":
		return Black, nil
	case "red":
		return Red, nil
	}
	return NoPlayer, fmt.Errorf("unknown player %q", s)
}

type PieceType int8

const (
	PieceNone PieceType = iota
	PieceMan
	PieceKing
)

type Piece int8 // 0=empty; >0 black; <0 red; abs=PieceType

const (
	Empty     Piece = 0
	BlackMan  Piece = Piece(PieceMan)
	BlackKing Piece = Piece(PieceKing)
	RedMan    Piece = -Piece(PieceMan)
	RedKing   Piece = -Piece(PieceKing)
)

func makePiece(p Player, pt PieceType) Piece {
	if pt == PieceNone || p == NoPlayer {
		return Empty
	}
	if p == Black {
		return Piece(pt)
	}
	return -Piece(pt)
}

func (p Piece) Type() PieceType {
	if p < 0 {
		return PieceType(-p)
	}
	return PieceType(p)
}

func (p Piece) Owner() Player {
	if p == Empty {
		return NoPlayer
	}
	if p > 0 {
		return Black
	}
	return Red
}

func (p Piece) IsKing() bool { return p.Type() == PieceKing }

// Coord is a 0-based row/col pair. Row 0 is Black's home edge.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Move is one hop of a turn: a diagonal step or a single jump.
type Move struct {
	From Coord `json:"from"`
	To   Coord `json:"to"`
}

func (m Move) String() string { return m.From.String() + "->" + m.To.String() }

// IsJump reports whether the move spans two rows. Legality is checked elsewhere.
func (m Move) IsJump() bool {
	d := m.To.Row - m.From.Row
	return d == 2 || d == -2
}

// Jumped returns the midpoint of a jump.
func (m Move) Jumped() Coord {
	return Coord{Row: (m.From.Row + m.To.Row) / 2, Col: (m.From.Col + m.To.Col) / 2}
}

// Board holds the 64 cells in row-major order.
type Board struct {
	Squares [NumSquares]Piece
}

// PieceMoves lists the destinations of one piece.
type PieceMoves struct {
	From Coord   `json:"from"`
	To   []Coord `json:"to"`
}

// MoveSet is the turn context for one player, split by move kind. Origins are in
// row-major scan order and destinations in direction order, which is the
// enumeration order every strategy tie-breaks on.
type MoveSet struct {
	Captures []PieceMoves
	Simples  []PieceMoves
}

func (ms MoveSet) HasCaptures() bool { return len(ms.Captures) > 0 }

func (ms MoveSet) Empty() bool { return len(ms.Captures) == 0 && len(ms.Simples) == 0 }

// Playable applies the mandatory capture rule.
func (ms MoveSet) Playable() []PieceMoves {
	if len(ms.Captures) > 0 {
		return ms.Captures
	}
	return ms.Simples
}

// Destinations returns the playable destinations for the piece at from.
func (ms MoveSet) Destinations(from Coord) []Coord {
	for _, pm := range ms.Playable() {
		if pm.From == from {
			return pm.To
		}
	}
	return nil
}

// Flatten expands the playable entries into single moves in enumeration order.
func (ms MoveSet) Flatten() []Move {
	var out []Move
	for _, pm := range ms.Playable() {
		for _, to := range pm.To {
			out = append(out, Move{From: pm.From, To: to})
		}
	}
	return out
}
