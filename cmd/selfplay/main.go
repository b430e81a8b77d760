package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/logrusorgru/aurora"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"checkers/internal/config"
	"checkers/internal/engine"
)

func newBar(n int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(n,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	)
}

func main() {
	cfgPath := flag.String("config", "", "config file (default: search $XDG_CONFIG_HOME/checkers/config.json)")
	stratA := flag.String("a", engine.StrategyLookahead, "strategy A")
	stratB := flag.String("b", engine.StrategyRandom, "strategy B")
	games := flag.Int("games", 0, "number of games, overrides selfplay.games")
	maxPlies := flag.Int("maxplies", 0, "ply cap per game, overrides selfplay.max_plies")
	workers := flag.Int("workers", 0, "concurrent games, overrides selfplay.workers")
	seed := flag.Uint64("seed", 0, "base seed, overrides seed (0 = random)")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if *cfgPath != "" {
		cfg, err = config.Load(*cfgPath)
	} else {
		cfg, err = config.InitConfig()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "games":
			cfg.Selfplay.Games = *games
		case "maxplies":
			cfg.Selfplay.MaxPlies = *maxPlies
		case "workers":
			cfg.Selfplay.Workers = *workers
		case "seed":
			cfg.Seed = *seed
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("bad flags")
	}
	cfg.SetupLogger(os.Stderr)

	baseSeed := cfg.Seed
	if baseSeed == 0 {
		baseSeed = rand.Uint64()
	}
	log.Info().
		Str("a", *stratA).Str("b", *stratB).
		Int("games", cfg.Selfplay.Games).
		Int("workers", cfg.Selfplay.Workers).
		Uint64("seed", baseSeed).
		Msg("selfplay start")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	records, err := runMatch(ctx, *stratA, *stratB, cfg.Selfplay, baseSeed)
	if err != nil {
		log.Fatal().Err(err).Msg("selfplay aborted")
	}
	printSummary(*stratA, *stratB, records)
}

// runMatch plays cfg.Games games, A and B swapping colours every game.
func runMatch(ctx context.Context, stratA, stratB string, cfg config.SelfplayConfig, baseSeed uint64) ([]GameRecord, error) {
	records := make([]GameRecord, cfg.Games)
	bar := newBar(cfg.Games, "selfplay")
	defer bar.Close()

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	for i := 0; i < cfg.Games; i++ {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			blackName, redName := stratA, stratB
			if i%2 == 1 {
				blackName, redName = stratB, stratA
			}
			// 每局各自的 rng，结果只取决于 baseSeed 和局号
			s := baseSeed + uint64(i)*2
			black, err := engine.NewEngineByName(blackName, rand.New(rand.NewPCG(s, 1)))
			if err != nil {
				return err
			}
			red, err := engine.NewEngineByName(redName, rand.New(rand.NewPCG(s+1, 2)))
			if err != nil {
				return err
			}

			res, g, err := playGame(black, red, cfg.MaxPlies)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			records[i] = GameRecord{
				Index:  i,
				Black:  blackName,
				Red:    redName,
				Result: res,
				Plies:  g.Plies(),
				Final:  g.Encode(),
			}
			log.Debug().Int("game", i).Str("black", blackName).Str("red", redName).
				Stringer("result", res).Int("plies", g.Plies()).Str("final", g.Encode()).Msg("game over")
			_ = bar.Add(1)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

type tally struct {
	winsA, winsB, capDraws, repDraws, plies int
}

func summarize(stratA string, records []GameRecord) tally {
	var t tally
	for _, r := range records {
		t.plies += r.Plies
		switch r.Result {
		case DrawPlyCap:
			t.capDraws++
		case DrawRepetition:
			t.repDraws++
		case BlackWins:
			if r.Black == stratA {
				t.winsA++
			} else {
				t.winsB++
			}
		case RedWins:
			if r.Red == stratA {
				t.winsA++
			} else {
				t.winsB++
			}
		}
	}
	return t
}

func printSummary(stratA, stratB string, records []GameRecord) {
	t := summarize(stratA, records)
	n := len(records)
	pct := func(k int) float64 {
		if n == 0 {
			return 0
		}
		return 100 * float64(k) / float64(n)
	}
	fmt.Println()
	fmt.Println(aurora.Bold("=== Final Score ==="))
	fmt.Printf("%-22s %d (%.1f%%)\n", "A "+stratA+":", aurora.Green(t.winsA), pct(t.winsA))
	fmt.Printf("%-22s %d (%.1f%%)\n", "B "+stratB+":", aurora.Red(t.winsB), pct(t.winsB))
	fmt.Printf("%-22s %d (ply cap %d, repetition %d)\n", "Draws:", aurora.Yellow(t.capDraws+t.repDraws), t.capDraws, t.repDraws)
	if n > 0 {
		fmt.Printf("%-22s %.1f\n", "Avg plies:", float64(t.plies)/float64(n))
	}
}
