package score

import (
	"testing"

	"git.lost.host/meutraa/tempo/internal/game"
)

var compactTests = []struct {
	Inputs  []game.Input
	Compact []InputsCompact
}{
	{[]game.Input{}, []InputsCompact{}},
	{
		[]game.Input{{Direction: game.Up, HitTime: 1.0}, {Direction: game.Right, HitTime: 2.0}},
		[]InputsCompact{
			{Direction: game.Up, Times: []float64{1.0}},
			{Direction: game.Down, Times: []float64{}},
			{Direction: game.Left, Times: []float64{}},
			{Direction: game.Right, Times: []float64{2.0}},
		},
	},
	{
		[]game.Input{{Direction: game.Down, HitTime: 0.5}, {Direction: game.Down, HitTime: 0.75}},
		[]InputsCompact{
			{Direction: game.Up, Times: []float64{}},
			{Direction: game.Down, Times: []float64{0.5, 0.75}},
		},
	},
	{
		[]game.Input{{Direction: game.Left, HitTime: 3.0}, {Direction: game.Up, HitTime: 3.0}},
		[]InputsCompact{
			{Direction: game.Up, Times: []float64{3.0}},
			{Direction: game.Down, Times: []float64{}},
			{Direction: game.Left, Times: []float64{3.0}},
		},
	},
}

func TestCompactInputs(t *testing.T) {
	equal := func(p, q []InputsCompact) bool {
		if len(p) != len(q) {
			return false
		}
		for i := 0; i < len(p); i++ {
			pi, qi := p[i], q[i]
			if pi.Direction != qi.Direction {
				return false
			}
			if len(pi.Times) != len(qi.Times) {
				return false
			}
			for j := 0; j < len(pi.Times); j++ {
				if pi.Times[j] != qi.Times[j] {
					return false
				}
			}
		}
		return true
	}

	for _, test := range compactTests {
		out := compactInputs(test.Inputs)
		if !equal(out, test.Compact) {
			t.Log("out     ", out)
			t.Log("expected", test.Compact)
			t.Fail()
		}
	}
}

func TestUncompactInputs(t *testing.T) {
	// Uncompacted inputs come back in time order, directions breaking ties
	expected := [][]game.Input{
		{},
		{{Direction: game.Up, HitTime: 1.0}, {Direction: game.Right, HitTime: 2.0}},
		{{Direction: game.Down, HitTime: 0.5}, {Direction: game.Down, HitTime: 0.75}},
		{{Direction: game.Up, HitTime: 3.0}, {Direction: game.Left, HitTime: 3.0}},
	}
	for i, test := range compactTests {
		out := uncompactInputs(test.Compact)
		if len(out) != len(expected[i]) {
			t.Fatalf("test %v: %v, expected %v", i, out, expected[i])
		}
		for j := range out {
			if out[j] != expected[i][j] {
				t.Log("in      ", test.Compact)
				t.Log("out     ", out)
				t.Log("expected", expected[i])
				t.Fail()
			}
		}
	}
}
