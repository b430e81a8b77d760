package game

import (
	"sync"
	"time"

	"checkers/internal/checkers"
	"checkers/internal/engine"
)

// GameState is one session: the rules state machine plus the computer player
// configured for it.
type GameState struct {
	ID        string
	Game      *checkers.Game
	Engine    *engine.Engine
	HumanSide checkers.Player
	CreatedAt time.Time
	UpdatedAt time.Time

	mu sync.Mutex
}

// ComputerSide is the colour the engine plays.
func (g *GameState) ComputerSide() checkers.Player {
	return checkers.Opponent(g.HumanSide)
}
