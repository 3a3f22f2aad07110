package engine

import (
	"math"

	"git.lost.host/meutraa/tempo/internal/game"
	"git.lost.host/meutraa/tempo/internal/score"
	"go.uber.org/zap"
)

// Options tune an Engine. The zero value plays the chart on the playfield it
// was built for.
type Options struct {
	Playfield game.Playfield // Zero value means chart.Playfield
	PreRoll   float64        // Seconds of wall time before song time zero
	Scorer    score.Scorer   // Defaults to a score.DefaultScorer for the playfield
}

// Engine drives one session over a chart. It is not safe for concurrent use;
// hosts read Snapshot between ticks.
type Engine struct {
	chart     *game.Chart
	playfield game.Playfield
	preRoll   float64
	log       *zap.Logger

	scheduler *Scheduler
	active    *Active
	judge     Judge
	scorer    score.Scorer

	state    State
	songTime float64
}

// Frame reports what a single tick did.
type Frame struct {
	State    State
	SongTime float64

	// Set on the one tick that crosses song time zero, the host starts
	// audio playback then
	StartAudio bool

	Activated []int
	Outcomes  []game.Outcome
}

func New(chart *game.Chart, opts Options, log *zap.Logger) *Engine {
	if nil == log {
		log = zap.NewNop()
	}
	if opts.Playfield == (game.Playfield{}) {
		opts.Playfield = chart.Playfield
	}
	if opts.Playfield == (game.Playfield{}) {
		opts.Playfield = game.DefaultPlayfield()
	}
	if nil == opts.Scorer {
		opts.Scorer = score.NewDefaultScorer(opts.Playfield.Threshold)
	}
	return &Engine{
		chart:     chart,
		playfield: opts.Playfield,
		preRoll:   opts.PreRoll,
		log:       log.With(zap.String("chart", chart.Name)),
		scheduler: NewScheduler(chart),
		active:    NewActive(),
		judge:     Judge{Playfield: opts.Playfield},
		scorer:    opts.Scorer,
		state:     NotStarted,
		songTime:  -opts.PreRoll,
	}
}

// Tick advances the session to elapsed seconds since it began, judging the
// directions freshly pressed since the previous tick.
func (e *Engine) Tick(elapsed float64, pressed game.Inputs) Frame {
	if e.state == Finished {
		return Frame{State: Finished, SongTime: e.songTime}
	}

	// Song time never runs backwards
	songTime := elapsed - e.preRoll
	if songTime < e.songTime {
		e.log.Debug("elapsed time went backwards",
			zap.Float64("song_time", e.songTime),
			zap.Float64("elapsed", elapsed),
		)
		songTime = e.songTime
	}
	prev := e.songTime
	e.songTime = songTime

	frame := Frame{SongTime: songTime}
	if e.state == NotStarted {
		if songTime < 0 {
			frame.State = NotStarted
			return frame
		}
		e.state = Running
		frame.StartAudio = true
		// Notes spawning before song time zero enter on the first tick
		prev = math.Inf(-1)
		e.log.Info("song started", zap.Float64("song_time", songTime), zap.Int("notes", e.chart.Len()))
	}

	frame.Activated = e.spawn(prev, songTime)
	e.active.Move(e.playfield, songTime)
	frame.Outcomes = e.judge.Evaluate(e.active, pressed, songTime)
	e.score(frame.Outcomes)

	if e.scheduler.Done() && e.active.Len() == 0 {
		e.state = Finished
		state := e.scorer.State()
		e.log.Info("song finished",
			zap.Float64("song_time", songTime),
			zap.Uint64("score", state.Score),
			zap.Uint64("corrects", state.Corrects),
			zap.Uint64("fails", state.Fails),
		)
	}
	frame.State = e.state
	return frame
}

func (e *Engine) spawn(prev, cur float64) []int {
	ids := e.scheduler.Advance(prev, cur)
	for _, id := range ids {
		note := e.chart.Notes[id]
		e.active.Insert(ActiveNote{
			ID:          id,
			Note:        note,
			ActivatedAt: note.SpawnTime,
		})
		e.log.Debug("note activated",
			zap.Int("id", id),
			zap.Stringer("direction", note.Direction),
			zap.Stringer("speed", note.Speed),
			zap.Float64("spawn_time", note.SpawnTime),
		)
	}
	return ids
}

func (e *Engine) score(outcomes []game.Outcome) {
	for i := range outcomes {
		o := &outcomes[i]
		switch o.Judgement {
		case game.Hit:
			o.Points = e.scorer.OnHit(o.Distance)
		case game.Miss:
			e.scorer.OnMiss()
		}
		e.log.Debug("note judged",
			zap.Int("id", o.ID),
			zap.Stringer("judgement", o.Judgement),
			zap.Float64("distance", o.Distance),
			zap.Uint64("points", o.Points),
		)
	}
}

func (e *Engine) State() State {
	return e.state
}

func (e *Engine) SongTime() float64 {
	return e.songTime
}

func (e *Engine) Score() score.State {
	return e.scorer.State()
}

func (e *Engine) Chart() *game.Chart {
	return e.chart
}
