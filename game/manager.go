package game

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chess-rules/chessmg"
)

var ErrNotFound = errors.New("game not found")

type entry struct {
	updatedAt time.Time
	game      *Game
}

// Manager holds games keyed by ID and serializes access to each of them.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*entry
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*entry)}
}

// Add registers g under a fresh ID.
func (m *Manager) Add(g *Game) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	m.games[id] = &entry{updatedAt: time.Now(), game: g}
	return id
}

// NewGame starts a game in the variant's initial position.
func (m *Manager) NewGame(v chessmg.Variant) string {
	return m.Add(New(v))
}

// NewGameFromFEN starts a game from a FEN.
func (m *Manager) NewGameFromFEN(fen string, v chessmg.Variant) (string, error) {
	g, err := FromFEN(fen, v)
	if err != nil {
		return "", err
	}
	return m.Add(g), nil
}

// Position returns the current position of a game. Positions are
// immutable, so the result stays valid after the lock is released.
func (m *Manager) Position(id string) (*chessmg.Position, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	return e.game.Position(), nil
}

// Do runs fn with exclusive access to a game.
func (m *Manager) Do(id string, fn func(g *Game) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.games[id]
	if !ok {
		return ErrNotFound
	}
	if err := fn(e.game); err != nil {
		return err
	}
	e.updatedAt = time.Now()
	return nil
}

// Push plays a move given in SAN or UCI.
func (m *Manager) Push(id, text string) (chessmg.Move, error) {
	var played chessmg.Move
	err := m.Do(id, func(g *Game) error {
		mv, err := g.Push(text)
		played = mv
		return err
	})
	return played, err
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrNotFound
	}
	delete(m.games, id)
	return nil
}

// List returns the IDs of all games in sorted order.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := maps.Keys(m.games)
	slices.Sort(ids)
	return ids
}

// Idle returns the IDs of games not modified since before.
func (m *Manager) Idle(before time.Time) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var ids []string
	for id, e := range m.games {
		if e.updatedAt.Before(before) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
