package checkers

import "fmt"

type Phase int8

const (
	AwaitingSelection Phase = iota
	AwaitingDestination
)

func (p Phase) String() string {
	if p == AwaitingDestination {
		return "awaiting_destination"
	}
	return "awaiting_selection"
}

type Status int8

const (
	InProgress Status = iota
	BlackWins
	RedWins
)

func (s Status) String() string {
	switch s {
	case BlackWins:
		return "black_wins"
	case RedWins:
		return "red_wins"
	default:
		return "in_progress"
	}
}

// Winner returns the winning player, or NoPlayer while the game runs.
func (s Status) Winner() Player {
	switch s {
	case BlackWins:
		return Black
	case RedWins:
		return Red
	}
	return NoPlayer
}

func statusFor(winner Player) Status {
	switch winner {
	case Black:
		return BlackWins
	case Red:
		return RedWins
	}
	return InProgress
}

// Selector picks one hop for the player to move from the legal set it is given.
// The board is a private copy.
type Selector interface {
	Select(b *Board, toMove Player, legal MoveSet) (Move, error)
}

// MoveOutcome reports the effect of an accepted SubmitMove.
type MoveOutcome struct {
	Move      Move
	Captured  Coord
	IsCapture bool
	Promoted  bool
	// Continuation is set when the same piece must capture again before the
	// turn passes.
	Continuation bool
	ToMove       Player
	Status       Status
}

// Game owns one board and the turn state machine. It is not safe for
// concurrent use.
type Game struct {
	board  Board
	toMove Player
	phase  Phase
	status Status

	selected    Coord
	hasSelected bool
	forced      bool

	// turn context: recomputed at the start of every turn and after every hop
	legal MoveSet
	plies int
}

// NewGame starts from the standard opening with Black to move.
func NewGame() *Game {
	return NewGameFrom(NewInitialBoard(), Black)
}

// NewGameFrom starts a game from an arbitrary position. The status is
// evaluated immediately, so a finished position yields a finished game.
func NewGameFrom(b *Board, toMove Player) *Game {
	g := &Game{board: *b, toMove: toMove}
	g.startTurn()
	return g
}

func (g *Game) startTurn() {
	g.phase = AwaitingSelection
	g.hasSelected = false
	g.forced = false
	g.legal = g.board.LegalMovesForPlayer(g.toMove)
	if over, winner := IsGameOver(&g.board, g.toMove); over {
		g.status = statusFor(winner)
	}
}

// Board returns a copy of the current board.
func (g *Game) Board() Board { return g.board }

func (g *Game) ToMove() Player { return g.toMove }

func (g *Game) Phase() Phase { return g.phase }

func (g *Game) Status() Status { return g.status }

// Plies counts accepted hops, continuation jumps included.
func (g *Game) Plies() int { return g.plies }

// Selected returns the currently selected piece, if any.
func (g *Game) Selected() (Coord, bool) { return g.selected, g.hasSelected }

// Forced reports whether a continuation capture is pending.
func (g *Game) Forced() bool { return g.forced }

// LegalMoves returns the current turn context. During a continuation it holds
// only the forced piece's captures.
func (g *Game) LegalMoves() MoveSet { return g.legal }

// Encode returns the position in the text codec format.
func (g *Game) Encode() string { return g.board.Encode(g.toMove) }

// SelectPiece validates c as the piece to move and returns its destinations.
// Calling it again with the same square returns the same set.
func (g *Game) SelectPiece(c Coord) ([]Coord, error) {
	if g.status != InProgress {
		return nil, ErrGameOver
	}
	dests, err := g.destinationsFor(c)
	if err != nil {
		return nil, err
	}
	g.selected = c
	g.hasSelected = true
	g.phase = AwaitingDestination
	out := make([]Coord, len(dests))
	copy(out, dests)
	return out, nil
}

func (g *Game) destinationsFor(c Coord) ([]Coord, error) {
	if !c.InBounds() {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if g.forced && c != g.selected {
		return nil, fmt.Errorf("%w: must continue capturing with %v", ErrInvalidSelection, g.selected)
	}
	pc := g.board.At(c)
	if pc == Empty {
		return nil, fmt.Errorf("%w: %v is empty", ErrInvalidSelection, c)
	}
	if pc.Owner() != g.toMove {
		return nil, fmt.Errorf("%w: %v belongs to %v", ErrInvalidSelection, c, pc.Owner())
	}
	dests := g.legal.Destinations(c)
	if len(dests) == 0 {
		if g.legal.HasCaptures() {
			return nil, fmt.Errorf("%w: a capture is available elsewhere", ErrInvalidSelection)
		}
		return nil, fmt.Errorf("%w: %v cannot move", ErrInvalidSelection, c)
	}
	return dests, nil
}

// SubmitMove applies one hop for the player to move. A capture that leaves a
// further capture for the same piece keeps the turn and pre-selects that
// piece; otherwise the turn passes and terminal detection runs. Rejected moves
// leave the game untouched.
func (g *Game) SubmitMove(from, to Coord) (MoveOutcome, error) {
	if g.status != InProgress {
		return MoveOutcome{}, ErrGameOver
	}
	if !to.InBounds() {
		return MoveOutcome{}, fmt.Errorf("%w: %v", ErrOutOfBounds, to)
	}
	dests, err := g.destinationsFor(from)
	if err != nil {
		return MoveOutcome{}, err
	}
	if !containsCoord(dests, to) {
		return MoveOutcome{}, fmt.Errorf("%w: %v -> %v", ErrInvalidDestination, from, to)
	}

	m := Move{From: from, To: to}
	res := g.board.ApplyMove(m)
	g.plies++

	out := MoveOutcome{
		Move:      m,
		Captured:  res.Captured,
		IsCapture: res.IsCapture,
		Promoted:  res.Promoted,
	}

	if res.IsCapture {
		if cont := g.board.ContinuationMoves(to); !cont.Empty() {
			g.legal = cont
			g.forced = true
			g.selected = to
			g.hasSelected = true
			g.phase = AwaitingDestination
			out.Continuation = true
			out.ToMove = g.toMove
			out.Status = g.status
			return out, nil
		}
	}

	g.toMove = Opponent(g.toMove)
	g.startTurn()
	out.ToMove = g.toMove
	out.Status = g.status
	return out, nil
}

// RequestComputerMove asks s for the next hop. The result is not applied; the
// caller feeds it to SubmitMove like a human move.
func (g *Game) RequestComputerMove(s Selector) (Coord, Coord, bool, error) {
	if g.status != InProgress {
		return Coord{}, Coord{}, false, ErrGameOver
	}
	if g.legal.Empty() {
		return Coord{}, Coord{}, false, ErrNoLegalMoves
	}
	m, err := s.Select(g.board.Clone(), g.toMove, g.legal)
	if err != nil {
		return Coord{}, Coord{}, false, err
	}
	if !containsCoord(g.legal.Destinations(m.From), m.To) {
		return Coord{}, Coord{}, false, fmt.Errorf("%w: selector chose %v", ErrInvalidDestination, m)
	}
	return m.From, m.To, m.IsJump(), nil
}
