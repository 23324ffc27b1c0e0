package terminal

import "context"

func (that *Server) handleMove(ctx context.Context, cell int) {
	log := that.logger.With("method", "handleMove")

	view, err := that.gameUseCase.ApplyMove(ctx, that.sessionID, cell)
	if err != nil {
		log.Debug("move rejected", "cell", cell, "error", err)
		that.renderer.Error(err)

		return
	}

	that.renderer.Game(view)
}

func (that *Server) handleJump(ctx context.Context, step int) {
	log := that.logger.With("method", "handleJump")

	view, err := that.gameUseCase.JumpTo(ctx, that.sessionID, step)
	if err != nil {
		log.Debug("jump rejected", "step", step, "error", err)
		that.renderer.Error(err)

		return
	}

	that.renderer.Game(view)
}

func (that *Server) handleList(ctx context.Context) {
	log := that.logger.With("method", "handleList")

	view, err := that.gameUseCase.Snapshot(ctx, that.sessionID)
	if err != nil {
		log.Error("failed to read session", "error", err)
		that.renderer.Error(err)

		return
	}

	that.renderer.MoveList(view)
}

func (that *Server) handleNew(ctx context.Context) {
	log := that.logger.With("method", "handleNew")

	view, err := that.gameUseCase.StartSession(ctx, that.sessionID)
	if err != nil {
		log.Error("failed to restart session", "error", err)
		that.renderer.Error(err)

		return
	}

	that.renderer.Println("new game")
	that.renderer.Game(view)
}

func (that *Server) handleHelp() {
	that.renderer.Println("commands:")
	that.renderer.Println("  0-8       play the cell with that index")
	that.renderer.Println("  jump N    go to move N (0 is game start)")
	that.renderer.Println("  list      show the move history")
	that.renderer.Println("  new       start a fresh game")
	that.renderer.Println("  quit      leave")
}
