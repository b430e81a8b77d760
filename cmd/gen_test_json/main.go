package main

import (
	"encoding/json"
	"flag"
	"math/rand/v2"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"checkers/internal/checkers"
)

type TestCase struct {
	Position string                `json:"position"`
	ToMove   string                `json:"to_move"`
	Board    []int8                `json:"board"` // 64 格，行优先；正数黑，负数红，1 兵 2 王
	Forced   *checkers.Coord       `json:"forced,omitempty"`
	Captures []checkers.PieceMoves `json:"captures"`
	Simples  []checkers.PieceMoves `json:"simples"`
	Chosen   checkers.Move         `json:"chosen"`
	Outcome  string                `json:"outcome"` // 走完 chosen 之后的状态
}

func encodeBoard(b checkers.Board) []int8 {
	out := make([]int8, checkers.NumSquares)
	for i, pc := range b.Squares {
		out[i] = int8(pc)
	}
	return out
}

// playout 随机下完一局，每一跳记录一个用例（连跳中途的局面也记录）
func playout(rng *rand.Rand, maxPlies int) ([]TestCase, error) {
	var cases []TestCase
	g := checkers.NewGame()
	for g.Status() == checkers.InProgress && g.Plies() < maxPlies {
		legal := g.LegalMoves()
		moves := legal.Flatten()
		chosen := moves[rng.IntN(len(moves))]

		tc := TestCase{
			Position: g.Encode(),
			ToMove:   g.ToMove().String(),
			Board:    encodeBoard(g.Board()),
			Captures: legal.Captures,
			Simples:  legal.Simples,
			Chosen:   chosen,
		}
		if g.Forced() {
			c, _ := g.Selected()
			tc.Forced = &c
		}

		out, err := g.SubmitMove(chosen.From, chosen.To)
		if err != nil {
			return nil, err
		}
		tc.Outcome = out.Status.String()
		if out.Continuation {
			tc.Outcome = "continuation"
		}
		cases = append(cases, tc)
	}
	return cases, nil
}

func main() {
	games := flag.Int("games", 10, "number of random playouts")
	maxPlies := flag.Int("maxplies", 300, "ply cap per playout")
	seed := flag.Uint64("seed", 1, "rng seed")
	outPath := flag.String("out", "move_gen_test_data.json", "output file")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))
	var testCases []TestCase
	for i := 0; i < *games; i++ {
		cases, err := playout(rng, *maxPlies)
		if err != nil {
			log.Fatal().Err(err).Int("game", i).Msg("playout failed")
		}
		testCases = append(testCases, cases...)
	}

	file, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("marshal")
	}
	if err := os.WriteFile(*outPath, file, 0o644); err != nil {
		log.Fatal().Err(err).Msg("write")
	}
	log.Info().Int("cases", len(testCases)).Int("games", *games).Str("out", *outPath).Msg("generated test data")
}
