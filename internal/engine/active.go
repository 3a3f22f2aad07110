package engine

import (
	"fmt"

	"git.lost.host/meutraa/tempo/internal/game"
)

// ActiveNote is a note in transit between activation and retirement.
type ActiveNote struct {
	ID int // Chart index
	game.Note
	Position    float64
	ActivatedAt float64 // Origin of the motion model, the note's spawn time
}

// Active is the set of notes in play, iterated in activation order.
type Active struct {
	notes []ActiveNote
	ids   map[int]struct{}
}

func NewActive() *Active {
	return &Active{ids: map[int]struct{}{}}
}

func (a *Active) Len() int {
	return len(a.notes)
}

func (a *Active) Has(id int) bool {
	_, ok := a.ids[id]
	return ok
}

func (a *Active) Insert(n ActiveNote) {
	if a.Has(n.ID) {
		panic(fmt.Sprintf("note %v activated twice", n.ID))
	}
	a.ids[n.ID] = struct{}{}
	a.notes = append(a.notes, n)
}

func (a *Active) Remove(id int) ActiveNote {
	if !a.Has(id) {
		panic(fmt.Sprintf("note %v retired while not active", id))
	}
	delete(a.ids, id)
	for i, n := range a.notes {
		if n.ID == id {
			a.notes = append(a.notes[:i], a.notes[i+1:]...)
			return n
		}
	}
	panic(fmt.Sprintf("note %v missing from active notes", id))
}

// Notes returns a copy of the active notes.
func (a *Active) Notes() []ActiveNote {
	ns := make([]ActiveNote, len(a.notes))
	copy(ns, a.notes)
	return ns
}

// Move recomputes the position of every active note.
func (a *Active) Move(p game.Playfield, songTime float64) {
	for i := range a.notes {
		a.notes[i].Position = p.Position(a.notes[i].Note, songTime)
	}
}
