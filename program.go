package main

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/tempo/internal/audio"
	"git.lost.host/meutraa/tempo/internal/config"
	"git.lost.host/meutraa/tempo/internal/engine"
	"git.lost.host/meutraa/tempo/internal/game"
	"git.lost.host/meutraa/tempo/internal/input"
	"git.lost.host/meutraa/tempo/internal/render"
	"git.lost.host/meutraa/tempo/internal/replay"
	"git.lost.host/meutraa/tempo/internal/score"
	"git.lost.host/meutraa/tempo/internal/theme"
	"go.uber.org/zap"
)

// How long the final frame stays up after the last note is judged
const linger = 2 * time.Second

type Program struct {
	Renderer render.Renderer
	Theme    theme.Theme

	cfg   *config.Config
	log   *zap.Logger
	chart *game.Chart

	engine   *engine.Engine
	keyboard *input.Keyboard
	player   player
	store    score.Store
	recorder replay.Recorder

	layout     render.Layout
	sideRow    int
	finishedAt time.Duration
}

type player interface {
	Start() error
	Close() error
	Position() time.Duration
	Length() time.Duration
}

func NewProgram(cfg *config.Config, chart *game.Chart, log *zap.Logger) *Program {
	return &Program{
		Renderer: &render.DefaultRenderer{},
		Theme:    &theme.DefaultTheme{},
		cfg:      cfg,
		log:      log,
		chart:    chart,
	}
}

func (p *Program) Init() error {
	ap, err := audio.Open(p.chart.Audio, p.log)
	if nil != err {
		return err
	}
	p.player = ap

	keys, err := input.NewKeyMap(p.cfg.Keys.Bindings())
	if nil != err {
		return err
	}
	p.keyboard, err = input.OpenKeyboard(keys, p.log)
	if nil != err {
		return err
	}

	if p.cfg.History.Enabled {
		p.store, err = score.OpenStore(p.cfg.History.Path, p.log)
		if nil != err {
			return err
		}
	}

	p.engine = engine.New(p.chart, engine.Options{
		Playfield: p.cfg.Playfield,
		PreRoll:   p.cfg.Session.PreRoll.Seconds(),
	}, p.log)

	if err := p.Renderer.Init(); nil != err {
		return err
	}
	p.Resize()
	return nil
}

func (p *Program) Resize() {
	columns, rows := p.Renderer.Size()
	p.layout = render.NewLayout(columns, rows, p.cfg.Playfield)
	p.sideRow = p.layout.Bottom() + 1
}

func (p *Program) Deinit() {
	if err := p.Renderer.Deinit(); nil != err {
		p.log.Warn("unable to restore terminal", zap.Error(err))
	}
	if nil != p.keyboard {
		if err := p.keyboard.Close(); nil != err {
			p.log.Warn("unable to close keyboard", zap.Error(err))
		}
	}
	if nil != p.player {
		p.player.Close()
	}
	if nil != p.store {
		p.store.Close()
	}
}

func (p *Program) Run() error {
	defer p.Deinit()
	if err := p.Init(); nil != err {
		return err
	}

	p.Renderer.RenderLoop(p.cfg.Session.FramePeriod, func(duration time.Duration) bool {
		cont := p.Update(duration)
		p.Render()
		return cont
	})

	if p.engine.State() != engine.Finished {
		p.log.Info("session abandoned", zap.Float64("song_time", p.engine.SongTime()))
		return nil
	}
	p.save()
	return nil
}

func (p *Program) save() {
	if nil == p.store {
		return
	}
	h := p.recorder.History(p.cfg.Session.PreRoll.Seconds())
	if err := p.store.Save(p.chart, h); nil != err {
		p.log.Error("unable to save input history", zap.Error(err))
		return
	}
	p.log.Info("saved input history", zap.Int64("id", h.ID), zap.Int("inputs", len(h.Inputs)))
}

// Update runs one engine tick and reports whether the loop should continue.
func (p *Program) Update(duration time.Duration) bool {
	pressed, quit := p.keyboard.Poll()
	if quit {
		return false
	}

	elapsed := duration.Seconds()
	p.recorder.Record(elapsed, pressed)
	frame := p.engine.Tick(elapsed, pressed)

	if frame.StartAudio {
		if err := p.player.Start(); nil != err {
			p.log.Error("unable to start audio", zap.Error(err))
		}
	}

	for _, o := range frame.Outcomes {
		row := p.layout.Row(o.Direction)
		col, _ := p.layout.Column(p.cfg.Playfield.TargetX)
		p.Renderer.AddDecoration(col, row-1, p.Theme.RenderJudgement(o.Judgement), 30)
	}

	if frame.State == engine.Finished {
		if p.finishedAt == 0 {
			p.finishedAt = duration
		}
		return duration-p.finishedAt < linger
	}
	return true
}

func (p *Program) Render() {
	view := p.engine.Snapshot()

	for _, d := range game.Directions {
		row := p.layout.Row(d)
		p.Renderer.Clear(row)
		if col, ok := p.layout.Column(p.cfg.Playfield.TargetX); ok {
			p.Renderer.Fill(row, col, p.Theme.RenderTarget(d))
		}
	}

	for _, n := range view.Notes {
		col, ok := p.layout.Column(n.Position)
		if !ok {
			continue
		}
		p.Renderer.Fill(p.layout.Row(n.Direction), col, p.Theme.RenderNote(n.Direction, n.Speed))
	}

	p.renderStats(view)
}

func (p *Program) renderStats(view engine.View) {
	lines := []string{
		fmt.Sprintf("       Song:  %v", p.chart.Name),
		fmt.Sprintf("       Time:  %6.2f / %.2f s  (%v)", view.SongTime, p.chart.Duration(), view.State),
		fmt.Sprintf("      Audio:  %v / %v", p.player.Position().Round(time.Second/10), p.player.Length().Round(time.Second)),
		fmt.Sprintf("      Score:  %6v", view.Score.Score),
		fmt.Sprintf("   Corrects:  %6v", view.Score.Corrects),
		fmt.Sprintf("      Fails:  %6v", view.Score.Fails),
		fmt.Sprintf("       Mean:  %6.2f", view.Stats.Mean),
		fmt.Sprintf("      Stdev:  %6.2f", view.Stats.Stdev),
		fmt.Sprintf("    Pending:  %6v / %v", view.Pending, p.chart.Len()),
	}
	for i, line := range lines {
		p.Renderer.Clear(p.sideRow + i)
		p.Renderer.Fill(p.sideRow+i, p.layout.Left, line)
	}
}
