package engine

import "git.lost.host/meutraa/tempo/internal/game"

type Judge struct {
	Playfield game.Playfield
}

// Evaluate retires every active note that is hit this tick, then every note
// that has left the playfield. A note in the window with no matching input
// stays active. Points are left for the scorer to fill in.
func (j Judge) Evaluate(active *Active, pressed game.Inputs, songTime float64) []game.Outcome {
	outcomes := []game.Outcome{}

	if !pressed.Empty() {
		for _, n := range active.Notes() {
			if !j.Playfield.InWindow(n.Position) || !pressed.Has(n.Direction) {
				continue
			}
			active.Remove(n.ID)
			outcomes = append(outcomes, game.Outcome{
				ID:        n.ID,
				Judgement: game.Hit,
				Direction: n.Direction,
				Distance:  n.Position - j.Playfield.TargetX,
				SongTime:  songTime,
			})
		}
	}

	// Hits are already gone from the active set
	for _, n := range active.Notes() {
		if !j.Playfield.OffScreen(n.Position) {
			continue
		}
		active.Remove(n.ID)
		outcomes = append(outcomes, game.Outcome{
			ID:        n.ID,
			Judgement: game.Miss,
			Direction: n.Direction,
			SongTime:  songTime,
		})
	}

	return outcomes
}
