package game

import (
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-rewind/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rewind/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rewind/internal/tictactoe"
)

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
)

const startLabel = "Go to game start"

// Status is a derived view of the active snapshot. It is recomputed on
// every query and never stored, so jumping through history cannot
// desynchronize "whose turn" from "which step".
type Status struct {
	State    string `json:"state"`
	Winner   string `json:"winner,omitempty"`
	NextTurn string `json:"next_turn,omitempty"`
}

func (that Status) IsWon() bool {
	return that.State == StatusWon
}

// Move is one entry of the "jump to move" list.
type Move struct {
	Index int    `json:"index"`
	Label string `json:"label"`
}

// State owns the ordered history of board snapshots and the active-step
// pointer. History is append-only up to the active step; a move made
// after rewinding truncates the abandoned future before appending.
//
// The mutex only serializes callers. There is no concurrent game logic.
type State struct {
	mu         sync.Mutex
	history    []entity.Board
	activeStep int
}

// NewState returns a state holding a single all-empty snapshot at step 0.
func NewState() *State {
	return &State{
		history: []entity.Board{{}},
	}
}

// ApplyMove places the mark whose turn it is at the active step on the
// given cell. The move is rejected, with state untouched, when the cell
// index is invalid, the game is already won at the active snapshot, or
// the cell is occupied. An accepted move discards any snapshots beyond
// the active step and advances the pointer to the new last snapshot.
func (that *State) ApplyMove(cell int) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	current := that.history[that.activeStep]

	if cell < 0 || cell >= len(current) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if tictactoe.Winner(current) != entity.EmptyCell {
		return apperror.ErrGameFinished
	}

	if current[cell] != entity.EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	// drop the future that was visited and abandoned via JumpTo
	that.history = that.history[:that.activeStep+1]

	next := current // value copy, snapshots never alias
	next[cell] = entity.MarkForStep(that.activeStep)

	that.history = append(that.history, next)
	that.activeStep = len(that.history) - 1

	return nil
}

// JumpTo moves the active-step pointer to an existing snapshot without
// touching history. Steps outside [0, Len()-1] are an error and are
// never clamped.
func (that *State) JumpTo(step int) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if step < 0 || step >= len(that.history) {
		return fmt.Errorf("%w: step %d, history has %d", apperror.ErrStepOutOfRange, step, len(that.history))
	}

	that.activeStep = step

	return nil
}

// CurrentBoard returns a copy of the snapshot at the active step.
func (that *State) CurrentBoard() entity.Board {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.history[that.activeStep]
}

// Status reports the game outcome at the active step: the winner when a
// line is complete, otherwise whose turn it is by step parity.
func (that *State) Status() Status {
	that.mu.Lock()
	defer that.mu.Unlock()

	if winner := tictactoe.Winner(that.history[that.activeStep]); winner != entity.EmptyCell {
		return Status{State: StatusWon, Winner: winner}
	}

	return Status{State: StatusOngoing, NextTurn: entity.MarkForStep(that.activeStep)}
}

// MoveList projects history into labeled jump targets, one per snapshot.
func (that *State) MoveList() []Move {
	that.mu.Lock()
	defer that.mu.Unlock()

	moves := make([]Move, len(that.history))
	for i := range that.history {
		label := startLabel
		if i > 0 {
			label = fmt.Sprintf("Go to move #%d", i)
		}

		moves[i] = Move{Index: i, Label: label}
	}

	return moves
}

// Len reports the history length: number of moves played plus one.
func (that *State) Len() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.history)
}

// ActiveStep reports the index of the snapshot currently viewed.
func (that *State) ActiveStep() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.activeStep
}
