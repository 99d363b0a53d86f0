package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"xiangqi/internal/xiangqi"
)

var ErrGameNotFound = errors.New("game not found")

// Manager keeps every running game in memory. Sessions are single-threaded;
// Manager serializes all access to them.
type Manager struct {
	mu    sync.Mutex
	games map[string]*GameState
	now   func() time.Time
}

func NewManager() *Manager {
	return &Manager{
		games: make(map[string]*GameState),
		now:   time.Now,
	}
}

func (m *Manager) NewGame() *GameState {
	return m.add(xiangqi.NewSession())
}

// Resume registers a game rebuilt from a stored history.
func (m *Manager) Resume(history []xiangqi.MoveRecord) (*GameState, error) {
	g, err := xiangqi.Replay(history)
	if err != nil {
		return nil, fmt.Errorf("resume: %w", err)
	}
	return m.add(xiangqi.NewSessionFrom(g)), nil
}

func (m *Manager) add(s *xiangqi.Session) *GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	g := &GameState{
		ID:        uuid.NewString(),
		Session:   s,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.games[g.ID] = g
	return g
}

// Do runs fn on the game while holding the manager lock. fn must not keep
// the *GameState after it returns.
func (m *Manager) Do(id string, fn func(g *GameState) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	before := g.Session.Game()
	phaseBefore := g.Session.Phase()
	err := fn(g)
	if g.Session.Game() != before || g.Session.Phase() != phaseBefore {
		g.UpdatedAt = m.now()
	}
	return err
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	delete(m.games, id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.games)
}
