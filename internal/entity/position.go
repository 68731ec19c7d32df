package entity

// Position is a (row, column) coordinate on the board. It performs no bounds
// checking: out of range squares produce out of range coordinates.
type Position struct {
	row int
	col int
}

func NewPosition(row, col int) Position {
	return Position{row: row, col: col}
}

// PositionFromIndex - builds a position from a zero-based square index.
func PositionFromIndex(index int) Position {
	return Position{
		row: index / BoardLength,
		col: index % BoardLength,
	}
}

// PositionFromSquare - builds a position from a square number that starts at 1
// when isNatural is set, or at 0 otherwise.
func PositionFromSquare(square int, isNatural bool) Position {
	if isNatural {
		square--
	}
	return PositionFromIndex(square)
}

func (that Position) Row() int {
	return that.row
}

func (that Position) Column() int {
	return that.col
}

// Index - returns the zero-based square index.
func (that Position) Index() int {
	return that.row*BoardLength + that.col
}

// DisplayIndex - returns the one-based square number shown to players.
func (that Position) DisplayIndex() int {
	return that.Index() + 1
}

func (that Position) InBounds() bool {
	return that.row >= 0 && that.row < BoardLength && that.col >= 0 && that.col < BoardLength
}
