package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"

	"checkers/internal/config"
	"checkers/internal/server/game"
	httpserver "checkers/internal/server/http"
)

func main() {
	cfgPath := flag.String("config", "", "config file (default: search $XDG_CONFIG_HOME/checkers/config.json)")
	addr := flag.String("addr", "", "listen address, overrides server.addr")
	strategy := flag.String("strategy", "", "default computer strategy: random / lookahead")
	side := flag.String("side", "", "default human side: black / red, overrides human_side")
	seed := flag.Uint64("seed", 0, "rng seed for computer players, 0 = random")
	logLevel := flag.String("log", "", "log level, overrides log_level")
	saveCfg := flag.Bool("save-config", false, "write the effective config to the user config dir and exit")
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

	// 命令行参数覆盖配置文件
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Server.Addr = *addr
		case "strategy":
			cfg.Strategy = *strategy
		case "side":
			cfg.HumanSide = *side
		case "seed":
			cfg.Seed = *seed
		case "log":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("bad flags")
	}
	cfg.SetupLogger(os.Stderr)

	if *saveCfg {
		path, err := cfg.Save()
		if err != nil {
			log.Fatal().Err(err).Msg("save config")
		}
		log.Info().Str("path", path).Msg("config saved")
		return
	}

	games := game.NewManager(cfg.Seed)
	mux := http.NewServeMux()
	mux.Handle("/api/", httpserver.NewServer(httpserver.NewHandler(games, cfg.Strategy, cfg.HumanPlayer())))

	log.Info().Str("addr", cfg.Server.Addr).Str("strategy", cfg.Strategy).Str("human_side", cfg.HumanSide).Msg("listening")
	if err := http.ListenAndServe(cfg.Server.Addr, mux); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
