package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const promptMessage = "Enter square number or enter a letter to quit: "

// Display renders the board to a writer and reads square selections from a
// reader, one whitespace separated token at a time.
type Display struct {
	out     io.Writer
	scanner *bufio.Scanner
	symbols map[entity.Mark]string
}

func New(in io.Reader, out io.Writer, marks config.Marks) *Display {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	return &Display{
		out:     out,
		scanner: scanner,
		symbols: map[entity.Mark]string{
			entity.MarkFirst:  marks.First,
			entity.MarkSecond: marks.Second,
		},
	}
}

func (that *Display) ShowWelcome() {
	that.println("Welcome to Tic Tac Toe!")
}

// ShowBoard - prints every cell, using the square number for empty cells so
// players know what to type.
func (that *Display) ShowBoard(board *entity.Board) {
	width := len(strconv.Itoa(board.TotalSquares()))
	rule := strings.Repeat("-", board.Length()*(width+3)-1)

	var sb strings.Builder
	sb.WriteByte('\n')
	for row := 0; row < board.Length(); row++ {
		if row > 0 {
			sb.WriteString(rule)
			sb.WriteByte('\n')
		}

		cells := make([]string, 0, board.Length())
		for col := 0; col < board.Length(); col++ {
			pos := entity.NewPosition(row, col)
			cell := strconv.Itoa(pos.DisplayIndex())
			if mark := board.MarkAt(pos); mark != entity.MarkEmpty {
				cell = that.symbol(mark)
			}
			cells = append(cells, fmt.Sprintf(" %*s ", width, cell))
		}

		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteByte('\n')
	}

	that.print(sb.String())
}

func (that *Display) ShowTurn(mark entity.Mark) {
	that.println("Player " + that.symbol(mark))
}

func (that *Display) ShowRejected(err error) {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		that.println("Square occupied. Please try again.")
	default:
		that.println("You have attempted to make an illegal move.")
	}
}

func (that *Display) ShowWin(mark entity.Mark) {
	that.println("\n" + that.symbol(mark) + " has won!")
}

func (that *Display) ShowDraw() {
	that.println("No more moves! Game drawn!")
}

func (that *Display) ShowQuit() {
	that.println("Quitting game!")
}

// ReadSquare - prompts until a square number within the board is entered.
// A token that is not a number, one too long to scan, or the end of input is
// a quit request.
func (that *Display) ReadSquare(totalSquares int) (int, error) {
	for {
		that.print(promptMessage)

		if !that.scanner.Scan() {
			err := that.scanner.Err()
			if err != nil && !errors.Is(err, bufio.ErrTooLong) {
				return 0, fmt.Errorf("failed to read input: %w", err)
			}
			return 0, apperror.ErrQuitRequested
		}

		square, err := strconv.Atoi(that.scanner.Text())
		if err != nil {
			return 0, apperror.ErrQuitRequested
		}

		if square < 1 || square > totalSquares {
			that.ShowRejected(fmt.Errorf("%w: square %d", apperror.ErrInvalidCell, square))
			continue
		}

		return square, nil
	}
}

func (that *Display) symbol(mark entity.Mark) string {
	if symbol, ok := that.symbols[mark]; ok {
		return symbol
	}
	return mark.String()
}

func (that *Display) print(text string) {
	_, _ = io.WriteString(that.out, text)
}

func (that *Display) println(text string) {
	that.print(text + "\n")
}
