package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-rewind/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rewind/internal/usecase"
)

const (
	colorMarkX = "9"  // bright red
	colorMarkO = "12" // bright blue
)

// Renderer draws game views for a terminal. With color disabled (or a
// non-tty writer) termenv degrades every style to plain text.
type Renderer struct {
	output *termenv.Output
}

func NewRenderer(out io.Writer, noColor bool) *Renderer {
	opts := []termenv.OutputOption{}
	if noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return &Renderer{
		output: termenv.NewOutput(out, opts...),
	}
}

// Game writes the board grid followed by a status line. Empty cells show
// their index faint, so the player knows what to type.
func (that *Renderer) Game(view *usecase.GameView) {
	var b strings.Builder

	b.WriteString("\n")
	for row := 0; row < 3; row++ {
		b.WriteString(" ")
		for col := 0; col < 3; col++ {
			idx := row*3 + col
			b.WriteString(that.cell(view.Board, idx))
			if col < 2 {
				b.WriteString(" | ")
			}
		}
		b.WriteString("\n")
		if row < 2 {
			b.WriteString("---+---+---\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(that.statusLine(view))
	b.WriteString("\n")

	fmt.Fprint(that.output, b.String())
}

// MoveList writes the jump targets, marking the active step.
func (that *Renderer) MoveList(view *usecase.GameView) {
	for _, move := range view.Moves {
		marker := "  "
		if move.Index == view.ActiveStep {
			marker = "> "
		}

		fmt.Fprintf(that.output, "%s%d: %s\n", marker, move.Index, move.Label)
	}
}

func (that *Renderer) Error(err error) {
	fmt.Fprintf(that.output, "%s\n", that.output.String(err.Error()).Faint())
}

func (that *Renderer) Println(line string) {
	fmt.Fprintln(that.output, line)
}

func (that *Renderer) cell(board entity.Board, idx int) string {
	switch board[idx] {
	case entity.MarkX:
		return that.output.String(entity.MarkX).Foreground(that.output.Color(colorMarkX)).Bold().String()
	case entity.MarkO:
		return that.output.String(entity.MarkO).Foreground(that.output.Color(colorMarkO)).Bold().String()
	default:
		return that.output.String(fmt.Sprintf("%d", idx)).Faint().String()
	}
}

func (that *Renderer) statusLine(view *usecase.GameView) string {
	if view.Status.IsWon() {
		return fmt.Sprintf("%s wins (step %d of %d)", view.Status.Winner, view.ActiveStep, len(view.Moves)-1)
	}

	if view.Board.IsFull() {
		return fmt.Sprintf("draw, no moves left (step %d of %d)", view.ActiveStep, len(view.Moves)-1)
	}

	return fmt.Sprintf("%s to move (step %d of %d)", view.Status.NextTurn, view.ActiveStep, len(view.Moves)-1)
}
