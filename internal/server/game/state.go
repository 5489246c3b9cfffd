package game

import (
	"sync"
	"time"

	"morris/internal/morris"
)

type GameState struct {
	ID        string
	Game      *morris.Game
	CreatedAt time.Time
	UpdatedAt time.Time

	// 同一局的回合串行执行；Manager 的锁只保护索引
	mu sync.Mutex
}

// Snapshot 是某一时刻对局的只读视图
type Snapshot struct {
	ID       string        `json:"id"`
	Notation string        `json:"notation"`
	Hash     uint64        `json:"hash"`
	Phase    string        `json:"phase"`
	Current  morris.Color  `json:"current"`
	Result   morris.Result `json:"result"`
	History  []morris.Turn `json:"history"`
	Board    string        `json:"board"`
	Updated  time.Time     `json:"updated"`
}

func (s *GameState) snapshot() Snapshot {
	b := s.Game.Board()
	return Snapshot{
		ID:       s.ID,
		Notation: s.Game.Encode(),
		Hash:     s.Game.Hash(),
		Phase:    s.Game.Phase().String(),
		Current:  s.Game.Current(),
		Result:   s.Game.Result(),
		History:  s.Game.History(),
		Board:    b.Render(morris.DefaultGlyphs),
		Updated:  s.UpdatedAt,
	}
}
