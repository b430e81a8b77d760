package main

import (
	"fmt"

	"checkers/internal/checkers"
	"checkers/internal/engine"
)

type Result int

const (
	BlackWins Result = iota
	RedWins
	DrawPlyCap
	DrawRepetition
)

func (r Result) String() string {
	switch r {
	case BlackWins:
		return "black"
	case RedWins:
		return "red"
	case DrawPlyCap:
		return "draw(ply cap)"
	case DrawRepetition:
		return "draw(repetition)"
	}
	return "?"
}

func (r Result) IsDraw() bool { return r == DrawPlyCap || r == DrawRepetition }

// GameRecord is the outcome of one engine-vs-engine game.
type GameRecord struct {
	Index  int
	Black  string
	Red    string
	Result Result
	Plies  int
	Final  string
}

// repetitions 记录每个局面（含走子方）出现的次数
type repetitions map[uint64]int

// add counts h and reports whether it has now occurred three times.
func (r repetitions) add(h uint64) bool {
	r[h]++
	return r[h] >= 3
}

// playGame 引擎对引擎下完一局。和棋只在这里判：超过 maxPlies 或同一局面（同一方走）出现三次。
func playGame(black, red *engine.Engine, maxPlies int) (Result, *checkers.Game, error) {
	g := checkers.NewGame()
	seen := repetitions{}
	start := g.Board()
	seen.add(start.Hash(g.ToMove()))

	for g.Status() == checkers.InProgress {
		if g.Plies() >= maxPlies {
			return DrawPlyCap, g, nil
		}
		e := black
		if g.ToMove() == checkers.Red {
			e = red
		}
		from, to, _, err := g.RequestComputerMove(e)
		if err != nil {
			return 0, g, fmt.Errorf("ply %d: %w", g.Plies(), err)
		}
		out, err := g.SubmitMove(from, to)
		if err != nil {
			return 0, g, fmt.Errorf("ply %d: %w", g.Plies(), err)
		}
		if out.Continuation {
			continue
		}

		b := g.Board()
		if seen.add(b.Hash(g.ToMove())) {
			return DrawRepetition, g, nil
		}
	}

	if g.Status() == checkers.BlackWins {
		return BlackWins, g, nil
	}
	return RedWins, g, nil
}
