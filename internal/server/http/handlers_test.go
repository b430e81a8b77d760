package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"checkers/internal/checkers"
	"checkers/internal/engine"
	"checkers/internal/server/game"
)

func newTestServer(t *testing.T) (*httptest.Server, *game.Manager) {
	return newTestServerWithSide(t, checkers.Black)
}

func newTestServerWithSide(t *testing.T, side checkers.Player) (*httptest.Server, *game.Manager) {
	t.Helper()
	games := game.NewManager(7)
	srv := httptest.NewServer(NewServer(NewHandler(games, engine.StrategyLookahead, side)))
	t.Cleanup(srv.Close)
	return srv, games
}

func post(t *testing.T, srv *httptest.Server, path string, body any, out any) int {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func sq(r, c int) checkers.Coord { return checkers.Coord{Row: r, Col: c} }

func TestNewGameAndSelect(t *testing.T) {
	srv, games := newTestServer(t)

	var st StateResponse
	require.Equal(t, http.StatusOK, post(t, srv, "/api/new_game", NewGameRequest{}, &st))
	require.NotEmpty(t, st.GameID)
	require.Equal(t, "black", st.ToMove)
	require.Equal(t, "black", st.HumanSide)
	require.Equal(t, engine.StrategyLookahead, st.Strategy)
	require.Equal(t, "in_progress", st.Status)
	require.Equal(t, checkers.NewInitialBoard().Encode(checkers.Black), st.Position)
	require.Len(t, st.LegalMoves, 4)
	require.Equal(t, 1, games.Len())

	var sel SelectResponse
	require.Equal(t, http.StatusOK, post(t, srv, "/api/select", SelectRequest{GameID: st.GameID, Square: sq(2, 1)}, &sel))
	require.Equal(t, []checkers.Coord{sq(3, 0), sq(3, 2)}, sel.Destinations)

	var e ErrorResponse
	require.Equal(t, http.StatusBadRequest, post(t, srv, "/api/select", SelectRequest{GameID: st.GameID, Square: sq(0, 1)}, &e))
	require.Equal(t, "invalid_selection", e.Kind)
	require.Equal(t, http.StatusBadRequest, post(t, srv, "/api/select", SelectRequest{GameID: st.GameID, Square: sq(9, 9)}, &e))
	require.Equal(t, "out_of_bounds", e.Kind)
}

func TestPlayEnforcesMandatoryCapture(t *testing.T) {
	srv, _ := newTestServer(t)
	var st StateResponse
	require.Equal(t, http.StatusOK, post(t, srv, "/api/new_game", NewGameRequest{Strategy: engine.StrategyRandom, HumanSide: "black"}, &st))
	id := st.GameID

	var pr PlayResponse
	require.Equal(t, http.StatusOK, post(t, srv, "/api/play", PlayRequest{GameID: id, Move: checkers.Move{From: sq(2, 1), To: sq(3, 2)}}, &pr))
	require.Nil(t, pr.Hop.Captured)
	require.Equal(t, "red", pr.State.ToMove)

	require.Equal(t, http.StatusOK, post(t, srv, "/api/play", PlayRequest{GameID: id, Move: checkers.Move{From: sq(5, 0), To: sq(4, 1)}}, &pr))
	require.Equal(t, "black", pr.State.ToMove)
	require.Equal(t, []checkers.PieceMoves{{From: sq(3, 2), To: []checkers.Coord{sq(5, 0)}}}, pr.State.LegalMoves)

	var e ErrorResponse
	require.Equal(t, http.StatusBadRequest, post(t, srv, "/api/play", PlayRequest{GameID: id, Move: checkers.Move{From: sq(2, 3), To: sq(3, 4)}}, &e))
	require.Equal(t, "invalid_selection", e.Kind)
	require.Equal(t, http.StatusBadRequest, post(t, srv, "/api/play", PlayRequest{GameID: id, Move: checkers.Move{From: sq(3, 2), To: sq(4, 3)}}, &e))
	require.Equal(t, "invalid_destination", e.Kind)

	require.Equal(t, http.StatusOK, post(t, srv, "/api/play", PlayRequest{GameID: id, Move: checkers.Move{From: sq(3, 2), To: sq(5, 0)}}, &pr))
	require.NotNil(t, pr.Hop.Captured)
	require.Equal(t, sq(4, 1), *pr.Hop.Captured)
	require.False(t, pr.Hop.Continuation)
	require.Equal(t, "red", pr.State.ToMove)
}

func TestAiMovePlaysComputerTurn(t *testing.T) {
	srv, _ := newTestServer(t)
	var st StateResponse
	require.Equal(t, http.StatusOK, post(t, srv, "/api/new_game", NewGameRequest{HumanSide: "red"}, &st))

	var ai AiMoveResponse
	require.Equal(t, http.StatusOK, post(t, srv, "/api/ai_move", AiMoveRequest{GameID: st.GameID}, &ai))
	require.Len(t, ai.Hops, 1)
	require.Equal(t, 7, ai.Candidates)
	require.Equal(t, "red", ai.State.ToMove)
	require.Equal(t, 1, ai.State.Plies)

	var e ErrorResponse
	require.Equal(t, http.StatusConflict, post(t, srv, "/api/ai_move", AiMoveRequest{GameID: st.GameID}, &e))
	require.Equal(t, "not_computer_turn", e.Kind)
}

func TestAiMoveFinishesMultiJump(t *testing.T) {
	srv, games := newTestServer(t)
	var st StateResponse
	require.Equal(t, http.StatusOK, post(t, srv, "/api/new_game", NewGameRequest{HumanSide: "red"}, &st))

	b, toMove, err := checkers.DecodePosition("8/2b5/3r4/8/5r2/8/8/r7 b")
	require.NoError(t, err)
	require.NoError(t, games.With(st.GameID, func(gs *game.GameState) error {
		gs.Game = checkers.NewGameFrom(b, toMove)
		return nil
	}))

	var ai AiMoveResponse
	require.Equal(t, http.StatusOK, post(t, srv, "/api/ai_move", AiMoveRequest{GameID: st.GameID}, &ai))
	require.Len(t, ai.Hops, 2)
	require.True(t, ai.Hops[0].Continuation)
	require.False(t, ai.Hops[1].Continuation)
	require.Equal(t, "red", ai.State.ToMove)
	require.Nil(t, ai.State.ForcedPiece)
}

func TestGameOverAndNotFound(t *testing.T) {
	srv, games := newTestServer(t)
	var st StateResponse
	require.Equal(t, http.StatusOK, post(t, srv, "/api/new_game", NewGameRequest{}, &st))

	b, toMove, err := checkers.DecodePosition("8/8/8/8/8/8/8/r7 b")
	require.NoError(t, err)
	require.NoError(t, games.With(st.GameID, func(gs *game.GameState) error {
		gs.Game = checkers.NewGameFrom(b, toMove)
		return nil
	}))

	require.Equal(t, http.StatusOK, post(t, srv, "/api/state", StateRequest{GameID: st.GameID}, &st))
	require.Equal(t, "red_wins", st.Status)
	require.Equal(t, "red", st.Winner)
	require.Empty(t, st.LegalMoves)

	var e ErrorResponse
	require.Equal(t, http.StatusConflict, post(t, srv, "/api/play", PlayRequest{GameID: st.GameID, Move: checkers.Move{From: sq(7, 0), To: sq(6, 1)}}, &e))
	require.Equal(t, "game_over", e.Kind)

	require.Equal(t, http.StatusNotFound, post(t, srv, "/api/state", StateRequest{GameID: "nope"}, &e))
	require.Equal(t, "not_found", e.Kind)
	require.Equal(t, http.StatusBadRequest, post(t, srv, "/api/new_game", NewGameRequest{Strategy: "minimax"}, &e))
	require.Equal(t, "unknown_strategy", e.Kind)
	require.Equal(t, http.StatusBadRequest, post(t, srv, "/api/new_game", NewGameRequest{HumanSide: "green"}, &e))
	require.Equal(t, "bad_request", e.Kind)
}

func TestNewGameFallsBackToDefaultSide(t *testing.T) {
	srv, games := newTestServerWithSide(t, checkers.Red)

	var st StateResponse
	require.Equal(t, http.StatusOK, post(t, srv, "/api/new_game", NewGameRequest{}, &st))
	require.Equal(t, "red", st.HumanSide)
	gs, err := games.Get(st.GameID)
	require.NoError(t, err)
	require.Equal(t, checkers.Black, gs.ComputerSide())

	// 请求里显式给出的一方优先
	require.Equal(t, http.StatusOK, post(t, srv, "/api/new_game", NewGameRequest{HumanSide: "black"}, &st))
	require.Equal(t, "black", st.HumanSide)
}

func TestDeleteFreesSession(t *testing.T) {
	srv, games := newTestServer(t)
	var st StateResponse
	require.Equal(t, http.StatusOK, post(t, srv, "/api/new_game", NewGameRequest{}, &st))
	require.Equal(t, 1, games.Len())

	var del DeleteResponse
	require.Equal(t, http.StatusOK, post(t, srv, "/api/delete", DeleteRequest{GameID: st.GameID}, &del))
	require.True(t, del.Deleted)
	require.Equal(t, st.GameID, del.GameID)
	require.Zero(t, games.Len())

	var e ErrorResponse
	require.Equal(t, http.StatusNotFound, post(t, srv, "/api/state", StateRequest{GameID: st.GameID}, &e))
	require.Equal(t, http.StatusNotFound, post(t, srv, "/api/delete", DeleteRequest{GameID: st.GameID}, &e))
	require.Equal(t, "not_found", e.Kind)
}

func TestRejectsNonPost(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/state")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/api/state", "application/json", bytes.NewBufferString("{"))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
