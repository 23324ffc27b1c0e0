package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-rewind/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rewind/internal/entity"
)

// playAll applies a sequence of cells and fails the test on any rejection.
func playAll(t *testing.T, state *State, cells ...int) {
	t.Helper()

	for _, cell := range cells {
		require.NoError(t, state.ApplyMove(cell))
	}
}

func TestNewState(t *testing.T) {
	// When: creating a new state
	state := NewState()

	// Then: history holds exactly the all-empty board at step 0
	assert.Equal(t, 1, state.Len())
	assert.Equal(t, 0, state.ActiveStep())
	assert.Equal(t, entity.Board{}, state.CurrentBoard())

	// Then: X moves first
	assert.Equal(t, Status{State: StatusOngoing, NextTurn: entity.MarkX}, state.Status())
}

func TestState_ApplyMove(t *testing.T) {
	t.Run("First move places X and hands the turn to O", func(t *testing.T) {
		// Given: a fresh game
		state := NewState()

		// When: the first move is played at the center
		require.NoError(t, state.ApplyMove(4))

		// Then: the board holds X at index 4 and nothing else
		expected := entity.Board{}
		expected[4] = entity.MarkX
		assert.Equal(t, expected, state.CurrentBoard())

		// Then: it is O's turn and history grew by one
		assert.Equal(t, Status{State: StatusOngoing, NextTurn: entity.MarkO}, state.Status())
		assert.Equal(t, 2, state.Len())
		assert.Equal(t, 1, state.ActiveStep())
	})

	t.Run("Two corners without the middle is not a win", func(t *testing.T) {
		// Given: X on 0 and 2, O on 1 in between
		state := NewState()
		playAll(t, state, 0, 1, 2)

		// Then: line [0,1,2] is mixed, the game goes on
		assert.Equal(t, Status{State: StatusOngoing, NextTurn: entity.MarkO}, state.Status())
	})

	t.Run("Rejects an occupied cell and keeps state untouched", func(t *testing.T) {
		// Given: X already played cell 0
		state := NewState()
		playAll(t, state, 0)
		before := state.CurrentBoard()

		// When: O tries the same cell
		err := state.ApplyMove(0)

		// Then: the move is rejected and nothing changed
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, state.CurrentBoard())
		assert.Equal(t, 2, state.Len())
		assert.Equal(t, 1, state.ActiveStep())
	})

	t.Run("Rejects cell indices outside the board", func(t *testing.T) {
		state := NewState()

		require.ErrorIs(t, state.ApplyMove(9), apperror.ErrInvalidCell)
		require.ErrorIs(t, state.ApplyMove(-1), apperror.ErrInvalidCell)
		assert.Equal(t, 1, state.Len())
	})

	t.Run("Canonical win by X across the top row", func(t *testing.T) {
		// Given: X takes 0,1,2 while O takes 3,4
		state := NewState()
		playAll(t, state, 0, 3, 1, 4, 2)

		// Then: X is reported as the winner
		assert.Equal(t, Status{State: StatusWon, Winner: entity.MarkX}, state.Status())
	})

	t.Run("Rejects any move once the game is won at the active step", func(t *testing.T) {
		// Given: a finished game
		state := NewState()
		playAll(t, state, 0, 3, 1, 4, 2)
		lengthBefore := state.Len()
		boardBefore := state.CurrentBoard()

		// When: a further move targets an empty cell
		err := state.ApplyMove(8)

		// Then: the move is rejected and history is unchanged
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, lengthBefore, state.Len())
		assert.Equal(t, boardBefore, state.CurrentBoard())
	})

	t.Run("Allows forking from a non-winning step of a finished game", func(t *testing.T) {
		// Given: a finished game rewound to before the winning move
		state := NewState()
		playAll(t, state, 0, 3, 1, 4, 2)
		require.NoError(t, state.JumpTo(4))

		// When: X plays a different cell instead of completing the row
		require.NoError(t, state.ApplyMove(8))

		// Then: the branch continues, no winner yet
		assert.Equal(t, Status{State: StatusOngoing, NextTurn: entity.MarkO}, state.Status())
		assert.Equal(t, 6, state.Len())
	})
}

func TestState_JumpTo(t *testing.T) {
	t.Run("Jump to game start restores the empty board without truncating", func(t *testing.T) {
		// Given: a few moves played
		state := NewState()
		playAll(t, state, 4, 0, 8)

		// When: jumping back to the start
		require.NoError(t, state.JumpTo(0))

		// Then: the view is the empty board with X to move
		assert.Equal(t, entity.Board{}, state.CurrentBoard())
		assert.Equal(t, Status{State: StatusOngoing, NextTurn: entity.MarkX}, state.Status())

		// Then: history kept all snapshots
		assert.Equal(t, 4, state.Len())
	})

	t.Run("Turn parity follows the step jumped to", func(t *testing.T) {
		// Given: three moves played
		state := NewState()
		playAll(t, state, 4, 0, 8)

		// When: jumping to step 1
		require.NoError(t, state.JumpTo(1))

		// Then: step 1 is odd, so it is O's turn
		assert.Equal(t, entity.MarkO, state.Status().NextTurn)

		// When: jumping forward again to step 2
		require.NoError(t, state.JumpTo(2))

		// Then: even step, X's turn
		assert.Equal(t, entity.MarkX, state.Status().NextTurn)
	})

	t.Run("Out-of-range steps are rejected, never clamped", func(t *testing.T) {
		// Given: two moves played, active step 2
		state := NewState()
		playAll(t, state, 4, 0)

		// When: jumping one past the end and to a negative step
		errPast := state.JumpTo(state.Len())
		errNegative := state.JumpTo(-1)

		// Then: both fail and the pointer did not move
		require.ErrorIs(t, errPast, apperror.ErrStepOutOfRange)
		require.ErrorIs(t, errNegative, apperror.ErrStepOutOfRange)
		assert.Equal(t, 2, state.ActiveStep())
	})
}

func TestState_BranchTruncation(t *testing.T) {
	t.Run("Move after rewinding discards the abandoned future", func(t *testing.T) {
		// Given: five moves played, then a rewind to step 2
		state := NewState()
		playAll(t, state, 0, 3, 1, 4, 8)
		require.NoError(t, state.JumpTo(2))

		// When: a new move branches off
		require.NoError(t, state.ApplyMove(6))

		// Then: history is step+2 entries long and the pointer sits at its end
		assert.Equal(t, 4, state.Len())
		assert.Equal(t, 3, state.ActiveStep())

		// Then: the old future beyond the truncation point is unreachable
		require.ErrorIs(t, state.JumpTo(4), apperror.ErrStepOutOfRange)

		// Then: the new branch carries the rewound position plus the new move
		expected := entity.Board{}
		expected[0] = entity.MarkX
		expected[3] = entity.MarkO
		expected[6] = entity.MarkX
		assert.Equal(t, expected, state.CurrentBoard())
	})

	t.Run("Occupied cells stay occupied within a branch", func(t *testing.T) {
		// Given: a handful of moves
		state := NewState()
		playAll(t, state, 4, 0, 8, 2)

		// Then: every later snapshot keeps the first move's mark
		for step := 1; step < state.Len(); step++ {
			require.NoError(t, state.JumpTo(step))
			assert.Equal(t, entity.MarkX, state.CurrentBoard()[4], "step %d", step)
		}
	})
}

func TestState_MoveList(t *testing.T) {
	t.Run("Length tracks history and labels are fixed", func(t *testing.T) {
		// Given: three moves played
		state := NewState()
		playAll(t, state, 0, 1, 2)

		// When: projecting the move list
		moves := state.MoveList()

		// Then: one entry per snapshot with the documented labels
		require.Len(t, moves, 4)
		assert.Equal(t, Move{Index: 0, Label: "Go to game start"}, moves[0])
		assert.Equal(t, Move{Index: 1, Label: "Go to move #1"}, moves[1])
		assert.Equal(t, Move{Index: 3, Label: "Go to move #3"}, moves[3])
	})

	t.Run("Jumping does not change the list", func(t *testing.T) {
		// Given: two moves and a rewind
		state := NewState()
		playAll(t, state, 0, 1)
		require.NoError(t, state.JumpTo(0))

		// Then: the projection still covers all snapshots
		assert.Len(t, state.MoveList(), 3)
	})
}

func TestState_CurrentBoardIsACopy(t *testing.T) {
	// Given: a game with one move
	state := NewState()
	playAll(t, state, 0)

	// When: mutating the returned board
	board := state.CurrentBoard()
	board[8] = entity.MarkO

	// Then: the state's snapshot is unaffected
	assert.Equal(t, entity.EmptyCell, state.CurrentBoard()[8])
}
