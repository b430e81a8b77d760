package engine

import (
	"math"
	"math/rand/v2"

	"checkers/internal/checkers"
)

// 打分常数：手调的启发式，不要随意改动，否则 AI 行为会变
const (
	captureBase       = 1
	simpleBase        = 0
	continuationBonus = 2
	recaptureCost     = 1
	doubleRiskCost    = 1
)

// Lookahead scores each candidate first hop by simulating it, resolving one
// continuation jump at random, and checking the opponent's capture replies.
// The strictly highest score wins; ties go to the first enumerated candidate.
type Lookahead struct {
	rng *rand.Rand
}

func NewLookahead(rng *rand.Rand) *Lookahead {
	return &Lookahead{rng: rng}
}

func (l *Lookahead) Name() string { return StrategyLookahead }

func (l *Lookahead) Search(b *checkers.Board, toMove checkers.Player, legal checkers.MoveSet) (SearchResult, error) {
	// 有吃必吃：有吃子时只考虑吃子走法
	candidates := legal.Flatten()
	if len(candidates) == 0 {
		return SearchResult{}, checkers.ErrNoLegalMoves
	}

	res := SearchResult{
		Score:      math.MinInt,
		Candidates: len(candidates),
	}
	for _, mv := range candidates {
		score, plan, nodes := l.scoreCandidate(b, toMove, mv)
		res.Nodes += nodes
		if score > res.Score {
			res.Score = score
			res.BestMove = mv
			res.Plan = plan
		}
	}
	res.IsCapture = res.BestMove.IsJump()
	return res, nil
}

// scoreCandidate works on a value copy of b, so nothing has to be undone.
func (l *Lookahead) scoreCandidate(b *checkers.Board, toMove checkers.Player, mv checkers.Move) (int, []checkers.Move, int64) {
	scratch := *b
	plan := []checkers.Move{mv}
	nodes := int64(1)

	score := simpleBase
	resting := mv.To
	applied := scratch.ApplyMove(mv)
	if applied.IsCapture {
		score = captureBase
		if cont := scratch.CaptureMoves(mv.To); len(cont) > 0 {
			score += continuationBonus
			next := checkers.Move{From: mv.To, To: cont[l.rng.IntN(len(cont))]}
			scratch.ApplyMove(next)
			plan = append(plan, next)
			resting = next.To
			nodes++
		}
	}

	penalty, replyNodes := recapturePenalty(&scratch, checkers.Opponent(toMove), resting)
	return score - penalty, plan, nodes + replyNodes
}
