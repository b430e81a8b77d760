package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"checkers/internal/checkers"
	"checkers/internal/engine"
)

// renderBoard 彩色打印棋盘，带行列号
func renderBoard(b *checkers.Board) string {
	var sb strings.Builder
	sb.WriteString("  01234567\n")
	for r := 0; r < checkers.Rows; r++ {
		fmt.Fprintf(&sb, "%d ", r)
		for c := 0; c < checkers.Cols; c++ {
			sq := checkers.Coord{Row: r, Col: c}
			pc := b.At(sq)
			switch {
			case pc == checkers.Empty && sq.Playable():
				sb.WriteString(aurora.Faint("·").String())
			case pc == checkers.Empty:
				sb.WriteByte(' ')
			case pc.Owner() == checkers.Black:
				sym := "b"
				if pc.IsKing() {
					sym = "B"
				}
				sb.WriteString(aurora.Cyan(sym).Bold().String())
			default:
				sym := "r"
				if pc.IsKing() {
					sym = "R"
				}
				sb.WriteString(aurora.Red(sym).Bold().String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func main() {
	fen := flag.String("fen", "", "position to inspect (default: initial position)")
	seed := flag.Uint64("seed", 1, "rng seed for the strategies")
	verbose := flag.Bool("v", false, "engine debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	b := checkers.NewInitialBoard()
	toMove := checkers.Black
	if *fen != "" {
		var err error
		b, toMove, err = checkers.DecodePosition(*fen)
		if err != nil {
			log.Fatal().Err(err).Msg("decode position")
		}
	}

	fmt.Println("FEN:", b.Encode(toMove))
	fmt.Print(renderBoard(b))
	fmt.Printf("to move: %v  pieces: black %d red %d\n", toMove, b.Count(checkers.Black), b.Count(checkers.Red))

	if over, winner := checkers.IsGameOver(b, toMove); over {
		fmt.Println(aurora.Yellow(fmt.Sprintf("game over, %v wins", winner)))
		return
	}

	legal := b.LegalMovesForPlayer(toMove)
	kind := "simple"
	if legal.HasCaptures() {
		kind = "capture"
	}
	moves := legal.Flatten()
	fmt.Printf("legal moves (%s): %d\n", kind, len(moves))
	for _, mv := range moves {
		fmt.Println("  ", mv)
	}

	for _, name := range engine.Strategies() {
		s, err := engine.NewStrategy(name, rand.New(rand.NewPCG(*seed, 7)))
		if err != nil {
			log.Fatal().Err(err).Msg("strategy")
		}
		res, err := engine.NewEngine(s).Search(b, toMove, legal)
		if err != nil {
			log.Fatal().Err(err).Str("strategy", name).Msg("search")
		}
		fmt.Printf("%-10s %v score=%d plan=%v nodes=%d\n", aurora.Green(name), res.BestMove, res.Score, res.Plan, res.Nodes)
	}
}
