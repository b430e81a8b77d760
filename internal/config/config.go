package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"checkers/internal/checkers"
	"checkers/internal/engine"
)

var (
	cfgFile = "checkers/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s", e.err)
}

type ServerConfig struct {
	Addr string `json:"addr"`
}

type SelfplayConfig struct {
	Games    int `json:"games"`
	MaxPlies int `json:"max_plies"` // 超过即判和
	Workers  int `json:"workers"`
}

type Config struct {
	Strategy  string `json:"strategy"`
	HumanSide string `json:"human_side"`
	// 0 表示每局随机种子
	Seed     uint64         `json:"seed"`
	LogLevel string         `json:"log_level"`
	Server   ServerConfig   `json:"server"`
	Selfplay SelfplayConfig `json:"selfplay"`
}

// InitConfig loads the user config file if there is one and overlays it on
// DefaultConfig.
func InitConfig() (*Config, error) {
	path, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		path = ""
	}
	return Load(path)
}

// Load reads path over DefaultConfig. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	config := DefaultConfig
	if path != "" {
		if err := readCfgFile(path, &config); err != nil {
			return nil, err
		}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if !slices.Contains(engine.Strategies(), c.Strategy) {
		return &InvalidConfig{fmt.Sprintf("unknown strategy %q, want one of %v", c.Strategy, engine.Strategies())}
	}
	if _, err := checkers.ParsePlayer(c.HumanSide); err != nil {
		return &InvalidConfig{fmt.Sprintf("human_side must be black or red, got %q", c.HumanSide)}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfig{fmt.Sprintf("bad log_level %q", c.LogLevel)}
	}
	if c.Server.Addr == "" {
		return &InvalidConfig{"server.addr is empty"}
	}
	if c.Selfplay.Games < 1 || c.Selfplay.MaxPlies < 1 || c.Selfplay.Workers < 1 {
		return &InvalidConfig{"selfplay games, max_plies and workers must be positive"}
	}
	return nil
}

// HumanPlayer returns the configured human colour; call after Validate.
func (c *Config) HumanPlayer() checkers.Player {
	p, err := checkers.ParsePlayer(c.HumanSide)
	if err != nil {
		return checkers.Black
	}
	return p
}

// Level returns the parsed log level; call after Validate.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Save writes c to the user config directory and returns the path.
func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", err
	}
	return absPath, saveCfgFile(absPath, c, 0o664)
}

func saveCfgFile(filePath string, a any, perm os.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a any) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}

// SetupLogger points the global zerolog logger at a console writer on w and
// applies the configured level.
func (c *Config) SetupLogger(w io.Writer) {
	zerolog.SetGlobalLevel(c.Level())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly})
}
