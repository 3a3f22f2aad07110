package render

import (
	"math"

	"git.lost.host/meutraa/tempo/internal/game"
)

// Layout places the playfield on the terminal. Notes travel left to right,
// one row per direction.
type Layout struct {
	Left, Width int // Columns covering SpawnX to 2 * TargetX
	Top         int // Row of the first lane
	Playfield   game.Playfield
}

func NewLayout(columns, rows int, p game.Playfield) Layout {
	width := columns - 4
	if width < 10 {
		width = 10
	}
	top := rows/2 - len(game.Directions)
	if top < 4 {
		top = 4
	}
	return Layout{Left: 3, Width: width, Top: top, Playfield: p}
}

// Column maps a position to a terminal column. Positions off the playfield
// are not visible.
func (l Layout) Column(position float64) (int, bool) {
	end := 2 * l.Playfield.TargetX
	if position < l.Playfield.SpawnX || position >= end {
		return 0, false
	}
	frac := (position - l.Playfield.SpawnX) / (end - l.Playfield.SpawnX)
	return l.Left + int(math.Round(frac*float64(l.Width-1))), true
}

func (l Layout) Row(d game.Direction) int {
	return l.Top + 2*d.Lane()
}

// Bottom is the first row below the lanes.
func (l Layout) Bottom() int {
	return l.Row(game.Directions[len(game.Directions)-1]) + 2
}
