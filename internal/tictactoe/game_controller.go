package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type display interface {
	ShowWelcome()
	ShowBoard(board *entity.Board)
	ShowTurn(mark entity.Mark)
	ShowRejected(err error)
	ShowWin(mark entity.Mark)
	ShowDraw()
	ShowQuit()
}

type inputSource interface {
	ReadSquare(totalSquares int) (int, error)
}

type Outcome int

const (
	OutcomeWin Outcome = iota + 1
	OutcomeDraw
	OutcomeQuit
)

func (that Outcome) String() string {
	switch that {
	case OutcomeWin:
		return "win"
	case OutcomeDraw:
		return "draw"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Result describes how a game ended.
type Result struct {
	GameID  string
	Outcome Outcome
	Winner  entity.Mark
	Moves   int
}

type GameController struct {
	logger *slog.Logger
	gameID string

	board   *entity.Board
	display display
	input   inputSource
}

func NewGameController(logger *slog.Logger, board *entity.Board, display display, input inputSource) *GameController {
	gameID := uuid.NewString()

	return &GameController{
		logger:  logger.With("component", "game_controller", "game_id", gameID),
		gameID:  gameID,
		board:   board,
		display: display,
		input:   input,
	}
}

// Run - plays turns until a player wins, the board is full or a player quits.
func (that *GameController) Run(ctx context.Context) (Result, error) {
	that.display.ShowWelcome()

	for !that.board.IsFull() {
		if ctx.Err() != nil {
			return that.quit(entity.TurnMark(that.board.MovesPlayed())), nil
		}

		that.display.ShowBoard(that.board)

		mark := entity.TurnMark(that.board.MovesPlayed())
		that.display.ShowTurn(mark)

		square, err := that.readSquare(ctx)
		if err != nil {
			if errors.Is(err, apperror.ErrQuitRequested) || ctx.Err() != nil {
				return that.quit(mark), nil
			}
			return that.result(OutcomeQuit), fmt.Errorf("failed to read square: %w", err)
		}

		pos := entity.PositionFromSquare(square, true)
		if that.board.IsOccupied(pos) {
			that.display.ShowRejected(fmt.Errorf("%w: square %d", apperror.ErrCellOccupied, square))
			continue
		}

		// pos is an empty square legal to move to
		if err = that.board.PlaceMark(pos, mark); err != nil {
			return that.result(OutcomeQuit), fmt.Errorf("failed to place mark: %w", err)
		}

		that.logger.Debug("mark placed", "mark", mark.String(), "square", square, "moves", that.board.MovesPlayed())

		if winner := that.board.Winner(); winner != entity.MarkEmpty {
			that.display.ShowBoard(that.board)
			that.display.ShowWin(winner)
			return that.result(OutcomeWin), nil
		}
	}

	that.display.ShowBoard(that.board)
	that.display.ShowDraw()

	return that.result(OutcomeDraw), nil
}

type squareRead struct {
	square int
	err    error
}

// readSquare - waits for the next square, giving up when ctx is done. A read
// that is still blocked keeps running until the input yields a token.
func (that *GameController) readSquare(ctx context.Context) (int, error) {
	readCh := make(chan squareRead, 1)
	go func() {
		square, err := that.input.ReadSquare(that.board.TotalSquares())
		readCh <- squareRead{square: square, err: err}
	}()

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case read := <-readCh:
		return read.square, read.err
	}
}

func (that *GameController) quit(mark entity.Mark) Result {
	that.logger.Info("player quit", "mark", mark.String())
	that.display.ShowQuit()
	return that.result(OutcomeQuit)
}

func (that *GameController) result(outcome Outcome) Result {
	return Result{
		GameID:  that.gameID,
		Outcome: outcome,
		Winner:  that.board.Winner(),
		Moves:   that.board.MovesPlayed(),
	}
}
