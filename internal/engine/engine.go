package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog/log"

	"checkers/internal/checkers"
)

const (
	StrategyRandom    = "random"
	StrategyLookahead = "lookahead"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategies lists the identifiers NewStrategy accepts.
func Strategies() []string {
	return []string{StrategyRandom, StrategyLookahead}
}

// SearchResult 搜索结果
type SearchResult struct {
	BestMove  checkers.Move   // 第一跳
	IsCapture bool            // 第一跳是否吃子
	Score     int             // 启发式得分（random 策略恒为 0）
	Plan      []checkers.Move // 评分时假设的走法：第一跳 + 随机选出的连跳
	// Candidates is the number of first hops that were considered.
	Candidates int
	Nodes      int64 // 模拟过的局面数
	TimeUsed   time.Duration
}

// Strategy chooses one hop among legal.Playable(). Implementations must leave b
// untouched.
type Strategy interface {
	Name() string
	Search(b *checkers.Board, toMove checkers.Player, legal checkers.MoveSet) (SearchResult, error)
}

// NewStrategy builds a strategy from its configuration identifier.
func NewStrategy(name string, rng *rand.Rand) (Strategy, error) {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	switch name {
	case StrategyRandom:
		return NewRandom(rng), nil
	case StrategyLookahead:
		return NewLookahead(rng), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Engine wraps a strategy with timing and logging and satisfies
// checkers.Selector.
type Engine struct {
	strategy Strategy
	last     SearchResult
}

func NewEngine(s Strategy) *Engine {
	return &Engine{strategy: s}
}

// NewEngineByName is NewStrategy followed by NewEngine.
func NewEngineByName(name string, rng *rand.Rand) (*Engine, error) {
	s, err := NewStrategy(name, rng)
	if err != nil {
		return nil, err
	}
	return NewEngine(s), nil
}

func (e *Engine) Name() string { return e.strategy.Name() }

// Search 只思考不落子
func (e *Engine) Search(b *checkers.Board, toMove checkers.Player, legal checkers.MoveSet) (SearchResult, error) {
	start := time.Now()
	res, err := e.strategy.Search(b, toMove, legal)
	if err != nil {
		log.Warn().Err(err).Str("strategy", e.strategy.Name()).Stringer("player", toMove).Msg("engine search failed")
		return res, err
	}
	res.TimeUsed = time.Since(start)
	log.Debug().
		Str("strategy", e.strategy.Name()).
		Stringer("player", toMove).
		Stringer("move", res.BestMove).
		Bool("capture", res.IsCapture).
		Int("score", res.Score).
		Int("candidates", res.Candidates).
		Int64("nodes", res.Nodes).
		Dur("took", res.TimeUsed).
		Msg("engine move")
	return res, nil
}

func (e *Engine) Select(b *checkers.Board, toMove checkers.Player, legal checkers.MoveSet) (checkers.Move, error) {
	res, err := e.Search(b, toMove, legal)
	if err != nil {
		return checkers.Move{}, err
	}
	e.last = res
	return res.BestMove, nil
}

// LastResult returns the statistics of the most recent Select.
func (e *Engine) LastResult() SearchResult { return e.last }
