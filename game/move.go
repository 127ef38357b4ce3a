package game

// Action moves the paddle by a fixed increment.
type Action int

const (
	Stay Action = iota
	Up
	Down
)

// NumActions is the width of a value table row.
const NumActions = 3

// Actions lists every action in value table order.
var Actions = [NumActions]Action{Stay, Up, Down}

func (a Action) String() string {
	switch a {
	case Stay:
		return "stay"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Valid reports whether a is one of Actions.
func (a Action) Valid() bool {
	return a >= Stay && a <= Down
}
