package score

import "git.lost.host/meutraa/tempo/internal/game"

type Scorer interface {
	// OnHit records a hit at the signed distance from the target and returns
	// the points it earned.
	OnHit(distance float64) uint64
	OnMiss()

	State() State
	Stats() Stats
	Reset()
}

type Store interface {
	// Save the inputs of a performance of this chart
	Save(chart *game.Chart, history *History) error

	// Load up previous performances of the chart
	Load(chart *game.Chart) ([]History, error)

	Close() error
}

type State struct {
	Score    uint64
	Corrects uint64
	Fails    uint64
}

// Stats describes the spread of hit distances. Misses are not included.
type Stats struct {
	Mean  float64
	Stdev float64
}

type History struct {
	ID      int64
	Sum     string
	PreRoll float64
	Inputs  []game.Input
}
