package entity

// Mark is the content of a board cell.
type Mark uint8

const (
	MarkEmpty Mark = iota
	MarkFirst
	MarkSecond
)

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""
)

// Marks lists the marks that belong to players, in turn order.
var Marks = [...]Mark{MarkFirst, MarkSecond}

func (that Mark) String() string {
	switch that {
	case MarkFirst:
		return PlayerX
	case MarkSecond:
		return PlayerO
	default:
		return EmptyCell
	}
}

// IsPlayer reports whether the mark was placed by a player.
func (that Mark) IsPlayer() bool {
	return that == MarkFirst || that == MarkSecond
}

// TurnMark - returns the mark that moves once movesPlayed marks are on the board.
func TurnMark(movesPlayed int) Mark {
	if movesPlayed%2 == 0 {
		return MarkFirst
	}
	return MarkSecond
}
