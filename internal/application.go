package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
)

// RunApp - runs one game on the given console streams.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	board := entity.NewBoard()
	display := console.New(in, out, conf.Marks)
	gameController := tictactoe.NewGameController(logger, board, display, display)

	result, err := gameController.Run(ctx)
	if err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	log.Info("Game finished",
		"game_id", result.GameID,
		"outcome", result.Outcome.String(),
		"winner", result.Winner.String(),
		"moves", result.Moves,
	)

	return nil
}
