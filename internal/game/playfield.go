package game

// Playfield holds the constants chart authoring and the engine must agree on.
// Positions are along the single axis notes travel on.
type Playfield struct {
	SpawnX    float64 `toml:"spawn_x"`
	TargetX   float64 `toml:"target_x"`
	Threshold float64 `toml:"threshold"` // Half width of the hit window
	BaseSpeed float64 `toml:"base_speed"`
	Distance  float64 `toml:"distance"` // Travel distance used to compute spawn times
}

func DefaultPlayfield() Playfield {
	return Playfield{
		SpawnX:    -400,
		TargetX:   200,
		Threshold: 20,
		BaseSpeed: 200,
		Distance:  600,
	}
}

// Position is the motion model: linear travel from SpawnX starting at the
// note's spawn time.
func (p Playfield) Position(n Note, songTime float64) float64 {
	return p.SpawnX + n.Speed.Value(p.BaseSpeed)*(songTime-n.SpawnTime)
}

func (p Playfield) InWindow(position float64) bool {
	return position >= p.TargetX-p.Threshold && position <= p.TargetX+p.Threshold
}

// OffScreen reports whether a note has travelled past the far side of the
// playfield.
func (p Playfield) OffScreen(position float64) bool {
	return position >= 2*p.TargetX
}
