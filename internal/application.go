package application

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-rewind/internal/config"
	"github.com/rocketscienceinc/tictactoe-rewind/internal/repository"
	"github.com/rocketscienceinc/tictactoe-rewind/internal/terminal"
	"github.com/rocketscienceinc/tictactoe-rewind/internal/usecase"
)

// RunApp - wires the session store, game manager and terminal loop, and
// runs until the player quits or a shutdown signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	sessionRepo := repository.NewSessionRepository()
	gameUseCase := usecase.NewGameManager(logger, sessionRepo)

	srv := terminal.New(logger, gameUseCase, conf.Terminal.SessionID, os.Stdin, os.Stdout, conf.Terminal.NoColor)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
