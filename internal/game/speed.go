package game

import "fmt"

// Speed is the authored travel speed class of a note.
type Speed uint8

const (
	Slow Speed = iota
	Medium
	Fast
)

var speedNames = map[Speed]string{
	Slow:   "Slow",
	Medium: "Medium",
	Fast:   "Fast",
}

// Authored constants, not derived from anything.
var speedMultipliers = map[Speed]float64{
	Slow:   1.0,
	Medium: 1.2,
	Fast:   1.5,
}

func ParseSpeed(s string) (Speed, error) {
	for sp, name := range speedNames {
		if name == s {
			return sp, nil
		}
	}
	return 0, fmt.Errorf("unknown speed %q", s)
}

func (s Speed) String() string {
	name, ok := speedNames[s]
	if !ok {
		return fmt.Sprintf("Speed(%d)", uint8(s))
	}
	return name
}

func (s Speed) Multiplier() float64 {
	return speedMultipliers[s]
}

// Value is the distance per second travelled by a note of this speed.
func (s Speed) Value(base float64) float64 {
	return base * s.Multiplier()
}

func (s Speed) Valid() bool {
	return s <= Fast
}

func (s Speed) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid speed %d", uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *Speed) UnmarshalText(text []byte) error {
	v, err := ParseSpeed(string(text))
	if nil != err {
		return err
	}
	*s = v
	return nil
}
