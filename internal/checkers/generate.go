package checkers

// SimpleMoves returns the empty squares one diagonal step away in the piece's
// directions. An empty or non-playable origin has none.
func (b *Board) SimpleMoves(from Coord) []Coord {
	pc := b.At(from)
	if pc == Empty || !from.Playable() {
		return nil
	}
	var out []Coord
	for _, d := range directions(pc) {
		r, c := from.Row+d[0], from.Col+d[1]
		if !onBoard(r, c) {
			continue
		}
		if b.Squares[indexOf(r, c)] == Empty {
			out = append(out, Coord{Row: r, Col: c})
		}
	}
	return out
}

// CaptureMoves returns landing squares of single jumps over an adjacent
// opposing piece into an empty square beyond it.
func (b *Board) CaptureMoves(from Coord) []Coord {
	pc := b.At(from)
	if pc == Empty || !from.Playable() {
		return nil
	}
	owner := pc.Owner()
	var out []Coord
	for _, d := range directions(pc) {
		mr, mc := from.Row+d[0], from.Col+d[1]
		if !onBoard(mr, mc) {
			continue
		}
		mid := b.Squares[indexOf(mr, mc)]
		// 只能跳过对方棋子（兵或王），空格和己方棋子都不行
		if mid == Empty || mid.Owner() == owner {
			continue
		}
		r, c := mr+d[0], mc+d[1]
		if !onBoard(r, c) {
			continue
		}
		if b.Squares[indexOf(r, c)] == Empty {
			out = append(out, Coord{Row: r, Col: c})
		}
	}
	return out
}

// LegalMovesForPlayer scans the 32 playable squares and reports both kinds of
// moves. Mandatory capture is left to the caller (MoveSet.Playable) so that a
// UI can still explain why a piece with only simple moves is not selectable.
func (b *Board) LegalMovesForPlayer(p Player) MoveSet {
	var ms MoveSet
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if !playable(r, c) {
				continue
			}
			pc := b.Squares[indexOf(r, c)]
			if pc == Empty || pc.Owner() != p {
				continue
			}
			from := Coord{Row: r, Col: c}
			if caps := b.CaptureMoves(from); len(caps) > 0 {
				ms.Captures = append(ms.Captures, PieceMoves{From: from, To: caps})
			}
			if simples := b.SimpleMoves(from); len(simples) > 0 {
				ms.Simples = append(ms.Simples, PieceMoves{From: from, To: simples})
			}
		}
	}
	return ms
}

// ContinuationMoves is the move set of a forced multi-jump: only the piece at
// from, only its captures.
func (b *Board) ContinuationMoves(from Coord) MoveSet {
	caps := b.CaptureMoves(from)
	if len(caps) == 0 {
		return MoveSet{}
	}
	return MoveSet{Captures: []PieceMoves{{From: from, To: caps}}}
}

func containsCoord(cs []Coord, c Coord) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}
