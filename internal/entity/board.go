package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// BoardLength is the side length of the square board.
const BoardLength = 3

// tally counts the marks of one player along every line of the board.
type tally struct {
	rows     [BoardLength]int
	cols     [BoardLength]int
	diagFwd  int
	diagBack int
}

// Board tracks the grid and keeps per-mark line tallies up to date, so a
// completed line is detected without rescanning the grid.
type Board struct {
	grid       [BoardLength][BoardLength]Mark
	movesCount int
	tallies    map[Mark]*tally
	winner     Mark
}

func NewBoard() *Board {
	tallies := make(map[Mark]*tally, len(Marks))
	for _, mark := range Marks {
		tallies[mark] = &tally{}
	}

	return &Board{
		tallies: tallies,
		winner:  MarkEmpty,
	}
}

func (that *Board) Length() int {
	return BoardLength
}

func (that *Board) TotalSquares() int {
	return BoardLength * BoardLength
}

func (that *Board) MovesPlayed() int {
	return that.movesCount
}

// Winner - returns the mark that completed a line first, or MarkEmpty.
func (that *Board) Winner() Mark {
	return that.winner
}

func (that *Board) IsFull() bool {
	return that.movesCount >= that.TotalSquares()
}

func (that *Board) IsFinished() bool {
	return that.winner != MarkEmpty || that.IsFull()
}

// IsOccupied - reports whether a mark cannot be placed at pos. Out of bounds
// positions count as occupied.
func (that *Board) IsOccupied(pos Position) bool {
	if !pos.InBounds() {
		return true
	}
	return that.grid[pos.Row()][pos.Column()] != MarkEmpty
}

// MarkAt - returns the mark in the cell at pos, MarkEmpty when out of bounds.
func (that *Board) MarkAt(pos Position) Mark {
	if !pos.InBounds() {
		return MarkEmpty
	}
	return that.grid[pos.Row()][pos.Column()]
}

// PlaceMark - puts mark into the cell at pos and updates the tallies.
// The caller must check IsOccupied first; occupancy is not re-validated here.
func (that *Board) PlaceMark(pos Position, mark Mark) error {
	if !mark.IsPlayer() {
		return apperror.ErrInvalidMark
	}

	if !pos.InBounds() {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrInvalidCell, pos.Row(), pos.Column())
	}

	that.grid[pos.Row()][pos.Column()] = mark
	that.movesCount++
	that.updateCounts(pos, mark)

	return nil
}

func (that *Board) updateCounts(pos Position, mark Mark) {
	row, col := pos.Row(), pos.Column()
	counts := that.tallies[mark]

	counts.rows[row]++
	counts.cols[col]++

	if row == col {
		counts.diagFwd++
	}

	if row+col == BoardLength-1 {
		counts.diagBack++
	}

	// the first completed line decides the game, later lines are ignored
	if that.winner != MarkEmpty {
		return
	}

	if counts.rows[row] == BoardLength || counts.cols[col] == BoardLength ||
		counts.diagFwd == BoardLength || counts.diagBack == BoardLength {
		that.winner = mark
	}
}
