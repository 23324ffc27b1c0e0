package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-rewind/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rewind/internal/game"
)

type SessionRepository interface {
	CreateOrReplace(ctx context.Context, id string) (*game.State, error)
	GetByID(ctx context.Context, id string) (*game.State, error)
	DeleteByID(ctx context.Context, id string) error
}

// memSessions keeps game sessions in process memory. State lives only
// for the session lifetime; nothing survives a restart.
type memSessions struct {
	mu       sync.RWMutex
	sessions map[string]*game.State
}

func NewSessionRepository() SessionRepository {
	return &memSessions{
		sessions: make(map[string]*game.State),
	}
}

// CreateOrReplace starts a fresh game under the given id, discarding any
// previous session with that id.
func (that *memSessions) CreateOrReplace(_ context.Context, id string) (*game.State, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	state := game.NewState()
	that.sessions[id] = state

	return state, nil
}

func (that *memSessions) GetByID(_ context.Context, id string) (*game.State, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	state, ok := that.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", apperror.ErrSessionNotFound, id)
	}

	return state, nil
}

func (that *memSessions) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.sessions[id]; !ok {
		return fmt.Errorf("%w: id %s", apperror.ErrSessionNotFound, id)
	}

	delete(that.sessions, id)

	return nil
}
