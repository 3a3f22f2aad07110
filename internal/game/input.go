package game

// Inputs is the set of logical directions freshly pressed during one tick.
type Inputs uint8

func NewInputs(ds ...Direction) Inputs {
	var in Inputs
	for _, d := range ds {
		in = in.With(d)
	}
	return in
}

func (in Inputs) With(d Direction) Inputs {
	return in | 1<<d
}

func (in Inputs) Has(d Direction) bool {
	return in&(1<<d) != 0
}

func (in Inputs) Empty() bool {
	return in == 0
}

func (in Inputs) Directions() []Direction {
	ds := []Direction{}
	for _, d := range Directions {
		if in.Has(d) {
			ds = append(ds, d)
		}
	}
	return ds
}

// Input is a single press, recorded with the elapsed session time of the tick
// it was delivered in.
type Input struct {
	Direction Direction
	HitTime   float64
}
