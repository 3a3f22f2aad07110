package game

// Entry is a note as authored in a chart document.
type Entry struct {
	ClickTime float64   `toml:"click_time" yaml:"click_time"`
	Speed     Speed     `toml:"speed" yaml:"speed"`
	Direction Direction `toml:"direction" yaml:"direction"`
}

type Note struct {
	SpawnTime float64 // Song time the note enters play, in seconds
	ClickTime float64 // Song time the note reaches the target, in seconds
	Speed     Speed
	Direction Direction
}

// NewNote computes when e has to spawn so that it reaches the target exactly
// at its click time.
func NewNote(e Entry, p Playfield) Note {
	return Note{
		SpawnTime: e.ClickTime - p.Distance/e.Speed.Value(p.BaseSpeed),
		ClickTime: e.ClickTime,
		Speed:     e.Speed,
		Direction: e.Direction,
	}
}
