package game

import "fmt"

// Direction is the lane a note travels in and the logical input that hits it.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in lane order.
var Directions = [...]Direction{Up, Down, Left, Right}

var directionNames = map[Direction]string{
	Up:    "Up",
	Down:  "Down",
	Left:  "Left",
	Right: "Right",
}

func ParseDirection(s string) (Direction, error) {
	for d, name := range directionNames {
		if name == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

func (d Direction) String() string {
	name, ok := directionNames[d]
	if !ok {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return name
}

// Lane is the row index a renderer should draw this direction on.
func (d Direction) Lane() int {
	return int(d)
}

func (d Direction) Valid() bool {
	return d <= Right
}

func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid direction %d", uint8(d))
	}
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if nil != err {
		return err
	}
	*d = v
	return nil
}
