package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-rewind/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rewind/internal/game"
)

type sessionRepo interface {
	CreateOrReplace(ctx context.Context, id string) (*game.State, error)
	GetByID(ctx context.Context, id string) (*game.State, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameView is the pull-based snapshot the presentation layer reads after
// every mutation: current board, derived status, and the jump-to-move list.
type GameView struct {
	Board      entity.Board `json:"board"`
	Status     game.Status  `json:"status"`
	Moves      []game.Move  `json:"moves"`
	ActiveStep int          `json:"active_step"`
}

type GameManager struct {
	logger   *slog.Logger
	sessions sessionRepo
}

func NewGameManager(logger *slog.Logger, sessions sessionRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),

		sessions: sessions,
	}
}

// StartSession creates (or restarts) the session and returns its initial view.
func (that *GameManager) StartSession(ctx context.Context, sessionID string) (*GameView, error) {
	log := that.logger.With("method", "StartSession")

	state, err := that.sessions.CreateOrReplace(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	log.Info("session started", "session", sessionID)

	return viewOf(state), nil
}

// ApplyMove plays a cell for the session and returns the refreshed view.
// Rejected moves surface the state machine's sentinel error unchanged.
func (that *GameManager) ApplyMove(ctx context.Context, sessionID string, cell int) (*GameView, error) {
	log := that.logger.With("method", "ApplyMove")

	state, err := that.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if err = state.ApplyMove(cell); err != nil {
		return nil, fmt.Errorf("failed to make move: %w", err)
	}

	log.Debug("move accepted", "session", sessionID, "cell", cell, "step", state.ActiveStep())

	return viewOf(state), nil
}

// JumpTo rewinds or fast-forwards the session to a past step.
func (that *GameManager) JumpTo(ctx context.Context, sessionID string, step int) (*GameView, error) {
	log := that.logger.With("method", "JumpTo")

	state, err := that.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if err = state.JumpTo(step); err != nil {
		return nil, fmt.Errorf("failed to jump: %w", err)
	}

	log.Debug("jumped", "session", sessionID, "step", step)

	return viewOf(state), nil
}

// Snapshot re-reads the session's current view without mutating anything.
func (that *GameManager) Snapshot(ctx context.Context, sessionID string) (*GameView, error) {
	state, err := that.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return viewOf(state), nil
}

// EndSession discards the session's state.
func (that *GameManager) EndSession(ctx context.Context, sessionID string) error {
	if err := that.sessions.DeleteByID(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.logger.Info("session ended", "session", sessionID)

	return nil
}

func viewOf(state *game.State) *GameView {
	return &GameView{
		Board:      state.CurrentBoard(),
		Status:     state.Status(),
		Moves:      state.MoveList(),
		ActiveStep: state.ActiveStep(),
	}
}
