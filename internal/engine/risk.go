package engine

import "checkers/internal/checkers"

// recapturePenalty looks at opp's capture replies on b. Any reply costs
// recaptureCost; a reply that jumps the piece resting on `resting`, or that
// leaves the capturing piece with a further jump, costs doubleRiskCost more.
// The second value is the number of simulated reply positions.
func recapturePenalty(b *checkers.Board, opp checkers.Player, resting checkers.Coord) (int, int64) {
	replies := b.LegalMovesForPlayer(opp).Captures
	if len(replies) == 0 {
		return 0, 0
	}

	var nodes int64
	for _, pm := range replies {
		for _, to := range pm.To {
			reply := checkers.Move{From: pm.From, To: to}
			if reply.Jumped() == resting {
				return recaptureCost + doubleRiskCost, nodes
			}
			after := *b
			after.ApplyMove(reply)
			nodes++
			// 对方吃完还能连吃
			if len(after.CaptureMoves(to)) > 0 {
				return recaptureCost + doubleRiskCost, nodes
			}
		}
	}
	return recaptureCost, nodes
}
