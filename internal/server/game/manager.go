package game

import (
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"checkers/internal/checkers"
	"checkers/internal/engine"
)

var ErrGameNotFound = errors.New("game not found")

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState

	// seed 为 0 时每局使用随机种子
	seed uint64
}

func NewManager(seed uint64) *Manager {
	return &Manager{games: make(map[string]*GameState), seed: seed}
}

func (m *Manager) rng() *rand.Rand {
	if m.seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(m.seed, m.seed>>1|1))
}

// NewGame creates a session from the opening position. An unknown strategy
// name is returned as engine.ErrUnknownStrategy.
func (m *Manager) NewGame(strategy string, humanSide checkers.Player) (*GameState, error) {
	e, err := engine.NewEngineByName(strategy, m.rng())
	if err != nil {
		return nil, err
	}
	if humanSide != checkers.Red {
		humanSide = checkers.Black
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	now := time.Now()
	g := &GameState{
		ID:        id,
		Game:      checkers.NewGame(),
		Engine:    e,
		HumanSide: humanSide,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.games[id] = g
	return g, nil
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

// With runs fn while holding the session lock and bumps UpdatedAt afterwards.
func (m *Manager) With(id string, fn func(*GameState) error) error {
	g, err := m.Get(id)
	if err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	err = fn(g)
	g.UpdatedAt = time.Now()
	return err
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrGameNotFound
	}
	delete(m.games, id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
