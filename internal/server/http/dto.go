package httpserver

import "checkers/internal/checkers"

// NewGameRequest 新开一局；strategy 为空时使用服务端默认配置
type NewGameRequest struct {
	Strategy  string `json:"strategy"`
	HumanSide string `json:"human_side"` // "black" / "red"；为空时使用服务端默认
}

// StateRequest 前端刷新时用 game_id 来要当前盘面
type StateRequest struct {
	GameID string `json:"game_id"`
}

type SelectRequest struct {
	GameID string         `json:"game_id"`
	Square checkers.Coord `json:"square"`
}

type SelectResponse struct {
	Square       checkers.Coord   `json:"square"`
	Destinations []checkers.Coord `json:"destinations"`
}

type PlayRequest struct {
	GameID string        `json:"game_id"`
	Move   checkers.Move `json:"move"`
}

type DeleteRequest struct {
	GameID string `json:"game_id"`
}

type DeleteResponse struct {
	GameID  string `json:"game_id"`
	Deleted bool   `json:"deleted"`
}

type AiMoveRequest struct {
	GameID string `json:"game_id"`
}

// StateResponse is embedded in every successful game response.
type StateResponse struct {
	GameID      string                `json:"game_id"`
	Position    string                `json:"position"` // FEN-like 字符串
	ToMove      string                `json:"to_move"`
	HumanSide   string                `json:"human_side"`
	Strategy    string                `json:"strategy"`
	Phase       string                `json:"phase"`
	ForcedPiece *checkers.Coord       `json:"forced_piece,omitempty"`
	LegalMoves  []checkers.PieceMoves `json:"legal_moves"` // 当前可走（已应用有吃必吃）
	Status      string                `json:"status"`      // in_progress / black_wins / red_wins
	Winner      string                `json:"winner,omitempty"`
	Plies       int                   `json:"plies"`
}

// HopDTO is one applied hop and its effect.
type HopDTO struct {
	Move         checkers.Move   `json:"move"`
	Captured     *checkers.Coord `json:"captured,omitempty"`
	Promoted     bool            `json:"promoted"`
	Continuation bool            `json:"continuation"`
}

type PlayResponse struct {
	Hop   HopDTO        `json:"hop"`
	State StateResponse `json:"state"`
}

type AiMoveResponse struct {
	Hops       []HopDTO      `json:"hops"`
	Score      int           `json:"score"`
	Candidates int           `json:"candidates"`
	TimeMs     int64         `json:"time_ms"`
	State      StateResponse `json:"state"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func hopToDTO(out checkers.MoveOutcome) HopDTO {
	h := HopDTO{
		Move:         out.Move,
		Promoted:     out.Promoted,
		Continuation: out.Continuation,
	}
	if out.IsCapture {
		c := out.Captured
		h.Captured = &c
	}
	return h
}
