package game

type Judgement uint8

const (
	Hit Judgement = iota
	Miss
)

func (j Judgement) String() string {
	switch j {
	case Hit:
		return "Hit"
	case Miss:
		return "Miss"
	}
	return "Unknown"
}

// Outcome is the terminal judgement of a single note.
type Outcome struct {
	ID        int // Chart index of the note
	Judgement Judgement
	Direction Direction
	Distance  float64 // Signed offset from the target, only meaningful for hits
	Points    uint64
	SongTime  float64
}
