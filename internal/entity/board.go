package entity

const (
	MarkX = "X"
	MarkO = "O"

	EmptyCell = ""
)

// WinCombos lists the 8 winning lines as cell-index triples. The order is
// fixed: the winner scan returns the first satisfied line, which keeps the
// result deterministic even for boards that never arise from legal play.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid stored row-major: row = idx/3, col = idx%3.
// It is a value type, so assigning a Board copies all nine cells.
type Board [9]string

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// MarkForStep derives whose turn it is at a given history step. Players
// strictly alternate starting with X at step 0, so parity is the whole
// story and no turn flag needs to be stored anywhere.
func MarkForStep(step int) string {
	if step%2 == 0 {
		return MarkX
	}

	return MarkO
}
