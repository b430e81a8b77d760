package config

import "checkers/internal/engine"

var DefaultConfig Config

func init() {
	DefaultConfig = Config{
		Strategy:  engine.StrategyLookahead,
		HumanSide: "black",
		Seed:      0,
		LogLevel:  "info",
		Server: ServerConfig{
			Addr: "127.0.0.1:8080",
		},
		Selfplay: SelfplayConfig{
			Games:    100,
			MaxPlies: 200,
			Workers:  4,
		},
	}
}
