package engine

import (
	"math/rand/v2"

	"checkers/internal/checkers"
)

// Random plays the first enumerated capture when one exists and otherwise a
// uniformly random simple move.
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) Name() string { return StrategyRandom }

func (r *Random) Search(_ *checkers.Board, _ checkers.Player, legal checkers.MoveSet) (SearchResult, error) {
	if legal.HasCaptures() {
		pm := legal.Captures[0]
		mv := checkers.Move{From: pm.From, To: pm.To[0]}
		return SearchResult{
			BestMove:   mv,
			IsCapture:  true,
			Plan:       []checkers.Move{mv},
			Candidates: 1,
		}, nil
	}

	moves := legal.Flatten()
	if len(moves) == 0 {
		return SearchResult{}, checkers.ErrNoLegalMoves
	}
	mv := moves[r.rng.IntN(len(moves))]
	return SearchResult{
		BestMove:   mv,
		Plan:       []checkers.Move{mv},
		Candidates: len(moves),
	}, nil
}
