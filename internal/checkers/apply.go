package checkers

// ApplyResult describes what a single hop did to the board.
type ApplyResult struct {
	Captured  Coord
	IsCapture bool
	Promoted  bool
}

// ApplyMove relocates the piece at m.From to m.To, removes the jumped piece of a
// capture and crowns a man that lands on its promotion row. The move is assumed
// legal (checked by the caller); turn ownership is not touched.
func (b *Board) ApplyMove(m Move) ApplyResult {
	pc := b.At(m.From)
	if pc == Empty {
		panic("checkers: ApplyMove from empty square " + m.From.String())
	}

	var res ApplyResult
	if m.IsJump() {
		mid := m.Jumped()
		b.Squares[indexOf(mid.Row, mid.Col)] = Empty
		res.Captured = mid
		res.IsCapture = true
	}

	b.Squares[indexOf(m.From.Row, m.From.Col)] = Empty
	b.Squares[indexOf(m.To.Row, m.To.Col)] = pc

	// 到达底线立即升王（连跳途中也算）；已经是王则不变
	if !pc.IsKing() && m.To.Row == PromotionRow(pc.Owner()) {
		b.Squares[indexOf(m.To.Row, m.To.Col)] = makePiece(pc.Owner(), PieceKing)
		res.Promoted = true
	}
	return res
}
