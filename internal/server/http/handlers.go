package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"checkers/internal/checkers"
	"checkers/internal/engine"
	"checkers/internal/server/game"
)

// 超过这个跳数还在连跳说明状态机出错了
const maxHopsPerTurn = 16

var errNotComputerTurn = errors.New("not the computer's turn")

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	games           *game.Manager
	defaultStrategy string
	defaultSide     checkers.Player
}

// NewHandler serves sessions from games. A new_game request that leaves
// strategy or human_side empty gets defaultStrategy / defaultSide.
func NewHandler(games *game.Manager, defaultStrategy string, defaultSide checkers.Player) *Handler {
	return &Handler{games: games, defaultStrategy: defaultStrategy, defaultSide: defaultSide}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/api/new_game":
		h.handleNewGame(w, r)
	case "/api/state":
		h.handleState(w, r)
	case "/api/select":
		h.handleSelect(w, r)
	case "/api/play":
		h.handlePlay(w, r)
	case "/api/ai_move":
		h.handleAiMove(w, r)
	case "/api/delete":
		h.handleDelete(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	side := h.defaultSide
	if req.HumanSide != "" {
		var err error
		if side, err = checkers.ParsePlayer(req.HumanSide); err != nil {
			writeError(w, fmt.Errorf("bad human_side: %w", err))
			return
		}
	}
	strategy := req.Strategy
	if strategy == "" {
		strategy = h.defaultStrategy
	}

	gs, err := h.games.NewGame(strategy, side)
	if err != nil {
		writeError(w, err)
		return
	}
	log.Info().Str("game_id", gs.ID).Str("strategy", strategy).Stringer("human", side).Msg("new game")
	writeJSON(w, http.StatusOK, stateOf(gs))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	var resp StateResponse
	err := h.games.With(req.GameID, func(gs *game.GameState) error {
		resp = stateOf(gs)
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req SelectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	var resp SelectResponse
	err := h.games.With(req.GameID, func(gs *game.GameState) error {
		dests, err := gs.Game.SelectPiece(req.Square)
		if err != nil {
			return err
		}
		resp = SelectResponse{Square: req.Square, Destinations: dests}
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	var resp PlayResponse
	err := h.games.With(req.GameID, func(gs *game.GameState) error {
		out, err := gs.Game.SubmitMove(req.Move.From, req.Move.To)
		if err != nil {
			return err
		}
		resp = PlayResponse{Hop: hopToDTO(out), State: stateOf(gs)}
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleAiMove 让电脑走完整个回合：连跳也逐跳交给策略，每一跳都走正常的 SubmitMove 流程。
func (h *Handler) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req AiMoveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	var resp AiMoveResponse
	err := h.games.With(req.GameID, func(gs *game.GameState) error {
		g := gs.Game
		if g.Status() != checkers.InProgress {
			return checkers.ErrGameOver
		}
		if g.ToMove() != gs.ComputerSide() {
			return errNotComputerTurn
		}
		// 出错只可能发生在第一跳之前：之后每一跳都来自 ContinuationMoves，
		// 且经过 RequestComputerMove 的合法性校验，所以不会留下半个回合。
		for hop := 0; hop < maxHopsPerTurn; hop++ {
			from, to, _, err := g.RequestComputerMove(gs.Engine)
			if err != nil {
				return err
			}
			res := gs.Engine.LastResult()
			if hop == 0 {
				resp.Score = res.Score
				resp.Candidates = res.Candidates
			}
			resp.TimeMs += res.TimeUsed.Milliseconds()

			out, err := g.SubmitMove(from, to)
			if err != nil {
				return err
			}
			resp.Hops = append(resp.Hops, hopToDTO(out))
			if !out.Continuation {
				resp.State = stateOf(gs)
				return nil
			}
		}
		return fmt.Errorf("%w: continuation did not terminate", checkers.ErrNoLegalMoves)
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	var req DeleteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.games.Delete(req.GameID); err != nil {
		writeError(w, err)
		return
	}
	log.Info().Str("game_id", req.GameID).Int("open", h.games.Len()).Msg("game deleted")
	writeJSON(w, http.StatusOK, DeleteResponse{GameID: req.GameID, Deleted: true})
}

func stateOf(gs *game.GameState) StateResponse {
	g := gs.Game
	resp := StateResponse{
		GameID:     gs.ID,
		Position:   g.Encode(),
		ToMove:     g.ToMove().String(),
		HumanSide:  gs.HumanSide.String(),
		Strategy:   gs.Engine.Name(),
		Phase:      g.Phase().String(),
		LegalMoves: g.LegalMoves().Playable(),
		Status:     g.Status().String(),
		Plies:      g.Plies(),
	}
	if g.Status() != checkers.InProgress {
		resp.LegalMoves = nil
		resp.Winner = g.Status().Winner().String()
	}
	if g.Forced() {
		c, _ := g.Selected()
		resp.ForcedPiece = &c
	}
	return resp
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "bad json", Kind: "bad_request"})
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, err error) {
	status, kind := http.StatusBadRequest, "bad_request"
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		status, kind = http.StatusNotFound, "not_found"
	case errors.Is(err, checkers.ErrOutOfBounds):
		kind = "out_of_bounds"
	case errors.Is(err, checkers.ErrInvalidSelection):
		kind = "invalid_selection"
	case errors.Is(err, checkers.ErrInvalidDestination):
		kind = "invalid_destination"
	case errors.Is(err, checkers.ErrGameOver):
		status, kind = http.StatusConflict, "game_over"
	case errors.Is(err, errNotComputerTurn):
		status, kind = http.StatusConflict, "not_computer_turn"
	case errors.Is(err, engine.ErrUnknownStrategy):
		kind = "unknown_strategy"
	case errors.Is(err, checkers.ErrNoLegalMoves):
		status, kind = http.StatusInternalServerError, "internal"
	}
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error(), Kind: kind})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("writeJSON error")
	}
}
