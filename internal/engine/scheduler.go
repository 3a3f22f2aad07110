package engine

import (
	"fmt"

	"git.lost.host/meutraa/tempo/internal/game"
)

// Scheduler is a cursor over the chart that activates each note once, on
// the tick whose interval contains its spawn time.
type Scheduler struct {
	chart  *game.Chart
	cursor int
}

func NewScheduler(chart *game.Chart) *Scheduler {
	return &Scheduler{chart: chart}
}

// Advance returns the chart indexes of every pending note spawning in
// [prev, cur), in chart order. All of them are returned however long the
// interval is.
func (s *Scheduler) Advance(prev, cur float64) []int {
	activated := []int{}
	for s.cursor < len(s.chart.Notes) {
		note := s.chart.Notes[s.cursor]
		// Notes are sorted, the rest spawn later
		if note.SpawnTime >= cur {
			break
		}
		if note.SpawnTime < prev {
			panic(fmt.Sprintf("note %v spawning at %v was skipped by interval [%v, %v)", s.cursor, note.SpawnTime, prev, cur))
		}
		activated = append(activated, s.cursor)
		s.cursor++
	}
	return activated
}

func (s *Scheduler) Pending() int {
	return len(s.chart.Notes) - s.cursor
}

func (s *Scheduler) Done() bool {
	return s.cursor == len(s.chart.Notes)
}
