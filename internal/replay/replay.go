package replay

import (
	"fmt"
	"math"

	"git.lost.host/meutraa/tempo/internal/engine"
	"git.lost.host/meutraa/tempo/internal/game"
	"git.lost.host/meutraa/tempo/internal/score"
	"go.uber.org/zap"
)

// Recorder keeps every press delivered to an engine, with the elapsed time
// of its tick.
type Recorder struct {
	inputs []game.Input
}

func (r *Recorder) Record(elapsed float64, pressed game.Inputs) {
	for _, d := range pressed.Directions() {
		r.inputs = append(r.inputs, game.Input{Direction: d, HitTime: elapsed})
	}
}

func (r *Recorder) Len() int {
	return len(r.inputs)
}

func (r *Recorder) History(preRoll float64) *score.History {
	inputs := make([]game.Input, len(r.inputs))
	copy(inputs, r.inputs)
	return &score.History{PreRoll: preRoll, Inputs: inputs}
}

type Result struct {
	State score.State
	Stats score.Stats
}

// Run plays a history against a fresh engine on the chart's playfield.
// Judgements only depend on the times inputs were pressed, so ticking once
// per distinct press time and once after every note has left the playfield
// reproduces the original result.
func Run(chart *game.Chart, history *score.History, log *zap.Logger) (Result, error) {
	if "" != history.Sum && history.Sum != chart.Sum() {
		return Result{}, fmt.Errorf("history %v was recorded for another version of %v", history.ID, chart.Name)
	}
	p := chart.Playfield
	e := engine.New(chart, engine.Options{Playfield: p, PreRoll: history.PreRoll}, log)

	inputs := history.Inputs
	for i := 0; i < len(inputs); {
		elapsed := inputs[i].HitTime
		var pressed game.Inputs
		for ; i < len(inputs) && inputs[i].HitTime == elapsed; i++ {
			pressed = pressed.With(inputs[i].Direction)
		}
		e.Tick(elapsed, pressed)
	}

	e.Tick(history.PreRoll+clearTime(chart, p), 0)
	if e.State() != engine.Finished {
		return Result{}, fmt.Errorf("replay of %v did not finish at song time %v", chart.Name, e.SongTime())
	}
	view := e.Snapshot()
	return Result{State: view.Score, Stats: view.Stats}, nil
}

// clearTime is a song time by which every note has left the playfield.
func clearTime(chart *game.Chart, p game.Playfield) float64 {
	t := 0.0
	for _, n := range chart.Notes {
		gone := n.SpawnTime + (2*p.TargetX-p.SpawnX)/n.Speed.Value(p.BaseSpeed)
		t = math.Max(t, gone)
	}
	return t + 1
}
