package engine

import (
	"git.lost.host/meutraa/tempo/internal/game"
	"git.lost.host/meutraa/tempo/internal/score"
)

type NoteView struct {
	ID        int
	Direction game.Direction
	Speed     game.Speed
	Position  float64
}

// View is a copy of the engine state hosts can keep after the next tick.
type View struct {
	State    State
	SongTime float64
	Notes    []NoteView
	Score    score.State
	Stats    score.Stats
	Pending  int // Notes not yet activated
}

func (e *Engine) Snapshot() View {
	active := e.active.Notes()
	notes := make([]NoteView, len(active))
	for i, n := range active {
		notes[i] = NoteView{
			ID:        n.ID,
			Direction: n.Direction,
			Speed:     n.Speed,
			Position:  n.Position,
		}
	}
	return View{
		State:    e.state,
		SongTime: e.songTime,
		Notes:    notes,
		Score:    e.scorer.State(),
		Stats:    e.scorer.Stats(),
		Pending:  e.scheduler.Pending(),
	}
}
