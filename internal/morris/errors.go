package morris

import "errors"

// 落子
var (
	ErrInvalidPosition = errors.New("invalid position")
	ErrAlreadyOccupied = errors.New("position is already occupied")
)

// 走子
var (
	ErrInvalidFrom      = errors.New("invalid first position")
	ErrInvalidTo        = errors.New("invalid second position")
	ErrWrongColorAtFrom = errors.New("starting position is not occupied by the mover")
	ErrToOccupied       = errors.New("target position is already occupied")
	ErrNotAdjacent      = errors.New("positions are not adjacent")
)

// 提子（无效坐标复用 ErrInvalidPosition）
var (
	ErrEmptyPosition   = errors.New("cannot remove from an empty position")
	ErrWrongColor      = errors.New("cannot remove your own piece")
	ErrProtectedByMill = errors.New("piece is protected by a mill")
)

// 回合次序
var (
	ErrWrongPhase       = errors.New("operation not allowed in this phase")
	ErrRemovalPending   = errors.New("a mill was formed, a piece must be removed first")
	ErrNoRemovalPending = errors.New("no mill was formed, nothing to remove")
	ErrNoPiecesLeft     = errors.New("no pieces left to place")
	ErrGameOver         = errors.New("game is over")
)

var (
	ErrUnknownPoint    = errors.New("unknown point")
	ErrInvalidNotation = errors.New("invalid notation")
	ErrInvalidColor    = errors.New("invalid color")
)

// Kind 返回错误所属的类别："placement"、"move"、"removal"、"turn"、"input"；
// 不是本包的错误返回空串
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidPosition), errors.Is(err, ErrAlreadyOccupied):
		return "placement"
	case errors.Is(err, ErrInvalidFrom), errors.Is(err, ErrInvalidTo),
		errors.Is(err, ErrWrongColorAtFrom), errors.Is(err, ErrToOccupied),
		errors.Is(err, ErrNotAdjacent):
		return "move"
	case errors.Is(err, ErrEmptyPosition), errors.Is(err, ErrWrongColor),
		errors.Is(err, ErrProtectedByMill):
		return "removal"
	case errors.Is(err, ErrWrongPhase), errors.Is(err, ErrRemovalPending),
		errors.Is(err, ErrNoRemovalPending), errors.Is(err, ErrNoPiecesLeft),
		errors.Is(err, ErrGameOver):
		return "turn"
	case errors.Is(err, ErrUnknownPoint), errors.Is(err, ErrInvalidNotation),
		errors.Is(err, ErrInvalidColor):
		return "input"
	}
	return ""
}
