package tictactoe

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	mockedTicTacToe "github.com/rocketscienceinc/tictactoe-console/mocks/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/testing/suite"
)

var errInputBroken = errors.New("input broken")

// expectSquares queues the one-based squares the mocked input returns, in order.
func expectSquares(input *mockedTicTacToe.MockinputSource, squares ...int) {
	for _, square := range squares {
		input.EXPECT().ReadSquare(9).Return(square, nil).Once()
	}
}

func newController(s *suite.Suite, board *entity.Board, input inputSource) *GameController {
	return newControllerWithMarks(s, board, input, config.Marks{First: "X", Second: "O"})
}

func newControllerWithMarks(s *suite.Suite, board *entity.Board, input inputSource, marks config.Marks) *GameController {
	display := console.New(s.Input, s.Output, marks)
	return NewGameController(s.Logger, board, display, input)
}

func TestGameController_Run(t *testing.T) {
	t.Run("Player X wins on a row", func(t *testing.T) {
		// Given: X plays the top row while O plays the middle row
		ctx, s := suite.New(t)
		input := mockedTicTacToe.NewMockinputSource(t)
		expectSquares(input, 1, 4, 2, 5, 3)

		board := entity.NewBoard()
		controller := newController(s, board, input)

		// When: the game runs
		result, err := controller.Run(ctx)

		// Then: X wins after five moves
		require.NoError(t, err)
		assert.Equal(t, OutcomeWin, result.Outcome)
		assert.Equal(t, entity.MarkFirst, result.Winner)
		assert.Equal(t, 5, result.Moves)
		assert.Contains(t, s.Output.String(), "X has won!")

		_, err = uuid.Parse(result.GameID)
		require.NoError(t, err)
	})

	t.Run("Occupied square is retried by the same player", func(t *testing.T) {
		// Given: O selects X's square before picking a free one, then quits
		ctx, s := suite.New(t)
		input := mockedTicTacToe.NewMockinputSource(t)
		expectSquares(input, 5, 5, 1)
		input.EXPECT().ReadSquare(9).Return(0, apperror.ErrQuitRequested).Once()

		board := entity.NewBoard()
		controller := newController(s, board, input)

		// When: the game runs
		result, err := controller.Run(ctx)

		// Then: the rejected move changed nothing and O still played square 1
		require.NoError(t, err)
		assert.Equal(t, OutcomeQuit, result.Outcome)
		assert.Equal(t, 2, result.Moves)
		assert.Equal(t, entity.MarkFirst, board.MarkAt(entity.PositionFromSquare(5, true)))
		assert.Equal(t, entity.MarkSecond, board.MarkAt(entity.PositionFromSquare(1, true)))
		assert.Contains(t, s.Output.String(), "Square occupied. Please try again.")
		assert.Equal(t, 2, strings.Count(s.Output.String(), "Player O"))
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: an alternating fill with no completed line
		ctx, s := suite.New(t)
		input := mockedTicTacToe.NewMockinputSource(t)
		expectSquares(input, 1, 2, 3, 5, 4, 6, 8, 7, 9)

		controller := newController(s, entity.NewBoard(), input)

		// When: the game runs
		result, err := controller.Run(ctx)

		// Then: the game is drawn
		require.NoError(t, err)
		assert.Equal(t, OutcomeDraw, result.Outcome)
		assert.Equal(t, entity.MarkEmpty, result.Winner)
		assert.Equal(t, 9, result.Moves)
		assert.Contains(t, s.Output.String(), "No more moves! Game drawn!")
	})

	t.Run("Quit before any move", func(t *testing.T) {
		// Given: the first player asks to quit
		ctx, s := suite.New(t)
		input := mockedTicTacToe.NewMockinputSource(t)
		input.EXPECT().ReadSquare(9).Return(0, apperror.ErrQuitRequested).Once()

		controller := newController(s, entity.NewBoard(), input)

		// When: the game runs
		result, err := controller.Run(ctx)

		// Then: the game ends without moves
		require.NoError(t, err)
		assert.Equal(t, OutcomeQuit, result.Outcome)
		assert.Equal(t, 0, result.Moves)
		assert.Contains(t, s.Output.String(), "Quitting game!")
	})

	t.Run("Returns input errors", func(t *testing.T) {
		// Given: the input fails
		ctx, s := suite.New(t)
		input := mockedTicTacToe.NewMockinputSource(t)
		input.EXPECT().ReadSquare(9).Return(0, errInputBroken).Once()

		controller := newController(s, entity.NewBoard(), input)

		// When: the game runs
		_, err := controller.Run(ctx)

		// Then: the error is wrapped and returned
		require.ErrorIs(t, err, errInputBroken)
	})

	t.Run("Player X wins on the anti diagonal with custom symbols", func(t *testing.T) {
		// Given: X takes squares 3, 5 and 7 while O plays 1 and 2
		ctx, s := suite.New(t)
		input := mockedTicTacToe.NewMockinputSource(t)
		expectSquares(input, 3, 1, 5, 2, 7)

		board := entity.NewBoard()
		controller := newControllerWithMarks(s, board, input, config.Marks{First: "A", Second: "B"})

		// When: the game runs
		result, err := controller.Run(ctx)

		// Then: X wins and the message uses the configured symbol
		require.NoError(t, err)
		assert.Equal(t, OutcomeWin, result.Outcome)
		assert.Equal(t, entity.MarkFirst, result.Winner)
		assert.Equal(t, 5, result.Moves)
		assert.Contains(t, s.Output.String(), "A has won!")
		assert.NotContains(t, s.Output.String(), "X has won!")
	})

	t.Run("Canceled context quits before reading", func(t *testing.T) {
		// Given: a canceled context
		ctx, s := suite.New(t)
		ctx, cancel := context.WithCancel(ctx)
		cancel()

		input := mockedTicTacToe.NewMockinputSource(t)
		controller := newController(s, entity.NewBoard(), input)

		// When: the game runs
		result, err := controller.Run(ctx)

		// Then: no input is read and the game quits gracefully
		require.NoError(t, err)
		assert.Equal(t, OutcomeQuit, result.Outcome)
		assert.Contains(t, s.Output.String(), "Quitting game!")
	})

	t.Run("Cancel while waiting for input quits", func(t *testing.T) {
		// Given: an input that blocks until released
		ctx, s := suite.New(t)
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		started := make(chan struct{})
		release := make(chan struct{})
		defer close(release)

		input := mockedTicTacToe.NewMockinputSource(t)
		input.EXPECT().ReadSquare(9).RunAndReturn(func(int) (int, error) {
			close(started)
			<-release
			return 5, nil
		}).Once()

		controller := newController(s, entity.NewBoard(), input)

		type runResult struct {
			result Result
			err    error
		}
		done := make(chan runResult, 1)
		go func() {
			result, err := controller.Run(ctx)
			done <- runResult{result: result, err: err}
		}()

		// When: the context is canceled while the read is blocked
		<-started
		cancel()

		// Then: the game quits gracefully without waiting for the input
		select {
		case got := <-done:
			require.NoError(t, got.err)
			assert.Equal(t, OutcomeQuit, got.result.Outcome)
			assert.Equal(t, 0, got.result.Moves)
		case <-time.After(5 * time.Second):
			t.Fatal("game did not stop after cancel")
		}
	})
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "win", OutcomeWin.String())
	assert.Equal(t, "draw", OutcomeDraw.String())
	assert.Equal(t, "quit", OutcomeQuit.String())
	assert.Equal(t, "unknown", Outcome(0).String())
}
