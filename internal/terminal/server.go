package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-rewind/internal/usecase"
)

type gameUseCase interface {
	StartSession(ctx context.Context, sessionID string) (*usecase.GameView, error)
	ApplyMove(ctx context.Context, sessionID string, cell int) (*usecase.GameView, error)
	JumpTo(ctx context.Context, sessionID string, step int) (*usecase.GameView, error)
	Snapshot(ctx context.Context, sessionID string) (*usecase.GameView, error)
}

// Server runs the interactive game loop: it feeds parsed player commands
// into the game use case and re-queries the view after every mutation.
type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
	sessionID   string
	renderer    *Renderer
	in          io.Reader
}

func New(logger *slog.Logger, uc gameUseCase, sessionID string, in io.Reader, out io.Writer, noColor bool) *Server {
	return &Server{
		logger:      logger.With("component", "terminal"),
		gameUseCase: uc,
		sessionID:   sessionID,
		renderer:    NewRenderer(out, noColor),
		in:          in,
	}
}

// Start begins a session and processes input lines until the player
// quits, input ends, or the context is canceled.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	view, err := that.gameUseCase.StartSession(ctx, that.sessionID)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	that.renderer.Println("tic-tac-toe with time travel")
	that.renderer.Println("type a cell number 0-8 to play, help for commands")
	that.renderer.Game(view)

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
		close(lines)
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info("context canceled, leaving game loop")
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				return nil
			}

			if quit := that.handleLine(ctx, line); quit {
				return nil
			}
		}
	}
}

// handleLine dispatches one input line. It reports whether the player
// asked to quit.
func (that *Server) handleLine(ctx context.Context, line string) bool {
	cmd, err := parseCommand(line)
	if errors.Is(err, ErrEmptyCommand) {
		return false
	}

	if err != nil {
		that.renderer.Error(err)
		return false
	}

	switch cmd.Action {
	case actionMove:
		that.handleMove(ctx, cmd.Arg)
	case actionJump:
		that.handleJump(ctx, cmd.Arg)
	case actionList:
		that.handleList(ctx)
	case actionNew:
		that.handleNew(ctx)
	case actionHelp:
		that.handleHelp()
	case actionQuit:
		return true
	}

	return false
}
