package mummymaze

import "github.com/katalvlaran/retrosolve/puzzle"

// State is a packed Mummy Maze position: four 13-bit NPC fields, an
// 11-bit player field, and one gate bit, as described in the package
// doc.
type State uint64

// Hash returns the position verbatim.
func (s State) Hash() uint64 { return uint64(s) }

// Equal reports whether other is the same position.
func (s State) Equal(other puzzle.State) bool {
	o, ok := other.(State)
	return ok && s == o
}

// Direction is a player or NPC facing.
type Direction int

const (
	Wait Direction = iota
	Up
	Left
	Down
	Right

	numDirections = 5
)

// Move is a player action: wait in place, or step one cell in a
// direction.
type Move struct {
	Direction Direction
}

// String renders the move's direction name.
func (m Move) String() string {
	switch m.Direction {
	case Wait:
		return "WAIT"
	case Up:
		return "UP"
	case Left:
		return "LEFT"
	case Down:
		return "DOWN"
	case Right:
		return "RIGHT"
	default:
		return "UNKNOWN MOVE"
	}
}

func offsets(dir Direction) (iOfs, jOfs int) {
	switch dir {
	case Up:
		return -1, 0
	case Left:
		return 0, -1
	case Down:
		return 1, 0
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}
