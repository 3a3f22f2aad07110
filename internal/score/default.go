package score

import "math"

const (
	MaxPoints = 100
	MinPoints = 10
)

// DefaultScorer scores hits on a single linear band: a hit on the target is
// worth MaxPoints, a hit on the edge of the window MinPoints.
type DefaultScorer struct {
	Threshold float64 // Half width of the hit window

	state State

	// Running mean and sum of squared deviations of hit distances
	mean, m2 float64
}

func NewDefaultScorer(threshold float64) *DefaultScorer {
	return &DefaultScorer{Threshold: threshold}
}

// Points converts a hit distance to points. Distances outside the window are
// worth MinPoints.
func Points(threshold, distance float64) uint64 {
	multiplier := (threshold - math.Abs(distance)) / threshold
	return uint64(math.Max(MinPoints, math.Min(MaxPoints, multiplier*100)))
}

func (s *DefaultScorer) OnHit(distance float64) uint64 {
	points := Points(s.Threshold, distance)
	s.state.Corrects++
	s.state.Score += points

	n := float64(s.state.Corrects)
	delta := distance - s.mean
	s.mean += delta / n
	s.m2 += delta * (distance - s.mean)

	return points
}

func (s *DefaultScorer) OnMiss() {
	s.state.Fails++
}

func (s *DefaultScorer) State() State {
	return s.state
}

func (s *DefaultScorer) Stats() Stats {
	stats := Stats{Mean: s.mean}
	if s.state.Corrects > 1 {
		stats.Stdev = math.Sqrt(s.m2 / float64(s.state.Corrects-1))
	}
	return stats
}

func (s *DefaultScorer) Reset() {
	s.state = State{}
	s.mean, s.m2 = 0, 0
}
