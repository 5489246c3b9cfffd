package game

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"morris/internal/morris"
)

var ErrGameNotFound = errors.New("game not found")

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

func (m *Manager) add(g *morris.Game) *GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	now := time.Now()
	s := &GameState{
		ID:        id,
		Game:      g,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.games[id] = s
	return s
}

// NewGame 开一局新棋，first 先行
func (m *Manager) NewGame(first morris.Color) *GameState {
	s := m.add(morris.NewGame(first))
	log.Printf("game %s created, %s moves first", s.ID, s.Game.Current())
	return s
}

// Restore 从记谱恢复一局
func (m *Manager) Restore(notation string) (*GameState, error) {
	g, err := morris.Decode(notation)
	if err != nil {
		return nil, fmt.Errorf("restore %q: %w", notation, err)
	}
	s := m.add(g)
	log.Printf("game %s restored at %s", s.ID, notation)
	return s, nil
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return s, nil
}

// Play 让当前方走完一个回合，返回回合结束后的快照
func (m *Manager) Play(id string, in morris.Input, report func(error)) (Snapshot, error) {
	s, err := m.Get(id)
	if err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Game.PlayTurn(in, report); err != nil {
		return s.snapshot(), err
	}
	s.UpdatedAt = time.Now()
	if r := s.Game.Result(); r.Over {
		log.Printf("game %s over after %d turns: %s", s.ID, len(s.Game.History()), describe(r))
	}
	return s.snapshot(), nil
}

func (m *Manager) Snapshot(id string) (Snapshot, error) {
	s, err := m.Get(id)
	if err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(), nil
}

// Close 结束会话并从索引中移除
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	s, ok := m.games[id]
	delete(m.games, id)
	m.mu.Unlock()
	if !ok {
		return ErrGameNotFound
	}
	log.Printf("game %s closed (%s)", id, s.Game.Encode())
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

func describe(r morris.Result) string {
	if r.Draw {
		return "draw, " + r.Reason.String()
	}
	return fmt.Sprintf("%s wins, %s", r.Winner, r.Reason)
}
