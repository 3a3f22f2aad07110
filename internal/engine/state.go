package engine

type State uint8

const (
	NotStarted State = iota // Song time is still inside the pre-roll
	Running
	Finished // Every note has been retired, terminal
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case Running:
		return "Running"
	case Finished:
		return "Finished"
	}
	return "Unknown"
}
