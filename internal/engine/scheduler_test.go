package engine

import (
	"math"
	"math/rand"
	"testing"

	"git.lost.host/meutraa/tempo/internal/game"
	"git.lost.host/meutraa/tempo/internal/testdata"
)

func equalIDs(p, q []int) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

func TestAdvance(t *testing.T) {
	// Spawn times are 2.0, 3.5, 3.5, 4.0, 4.0
	s := NewScheduler(testdata.GetChart())
	steps := []struct {
		Prev, Cur float64
		IDs       []int
	}{
		{math.Inf(-1), 1.0, []int{}},
		{1.0, 1.9, []int{}},
		{1.9, 2.0, []int{}},
		{2.0, 2.1, []int{0}},
		{2.1, 3.5, []int{}},
		{3.5, 3.5, []int{}},
		{3.5, 3.6, []int{1, 2}},
		{3.6, 100, []int{3, 4}},
		{100, 200, []int{}},
	}
	for _, step := range steps {
		ids := s.Advance(step.Prev, step.Cur)
		if !equalIDs(ids, step.IDs) {
			t.Errorf("[%v, %v): activated %v, expected %v", step.Prev, step.Cur, ids, step.IDs)
		}
	}
	if !s.Done() || s.Pending() != 0 {
		t.Error("scheduler should be exhausted")
	}
}

func TestAdvanceStutter(t *testing.T) {
	s := NewScheduler(testdata.GetChart())
	// One long frame covers every spawn time
	ids := s.Advance(0, 10)
	if !equalIDs(ids, []int{0, 1, 2, 3, 4}) {
		t.Error("unexpected activations", ids)
	}
}

func TestAdvanceSkippedPanics(t *testing.T) {
	s := NewScheduler(testdata.GetChart())
	defer func() {
		if nil == recover() {
			t.Error("expected a panic for an interval starting after a pending spawn time")
		}
	}()
	s.Advance(3.0, 5.0)
}

func TestAdvanceIrregularTicks(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	entries := make([]game.Entry, 500)
	for i := range entries {
		entries[i] = game.Entry{
			ClickTime: rng.Float64() * 120,
			Speed:     game.Speed(rng.Intn(3)),
			Direction: game.Direction(rng.Intn(4)),
		}
	}
	chart := game.NewChart("random", "", entries, game.DefaultPlayfield())

	for run := 0; run < 20; run++ {
		s := NewScheduler(chart)
		seen := make([]int, chart.Len())
		prev := math.Inf(-1)
		cur := -5.0
		for !s.Done() {
			// Mostly 60hz frames, with the occasional long stutter
			dt := 1.0 / 60
			if rng.Intn(50) == 0 {
				dt = rng.Float64() * 3
			}
			cur += dt * rng.Float64() * 2
			for _, id := range s.Advance(prev, cur) {
				seen[id]++
				spawn := chart.Notes[id].SpawnTime
				if spawn < prev || spawn >= cur {
					t.Fatalf("note %v spawning at %v activated in [%v, %v)", id, spawn, prev, cur)
				}
			}
			prev = cur
		}
		for id, count := range seen {
			if count != 1 {
				t.Fatalf("note %v activated %v times", id, count)
			}
		}
	}
}
