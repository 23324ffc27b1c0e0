package tictactoe

import "github.com/rocketscienceinc/tictactoe-rewind/internal/entity"

// Winner scans the fixed winning lines in order and returns the mark
// holding the first completed one, or entity.EmptyCell when no line of
// three equal non-empty marks exists. Pure function, no side effects.
func Winner(board entity.Board) string {
	for _, combo := range entity.WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return a
		}
	}

	return entity.EmptyCell
}
