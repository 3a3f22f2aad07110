package game

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"math"
	"sort"
)

type Chart struct {
	Name  string
	Audio string // Path to the audio asset played with this chart
	Notes []Note // Sorted by SpawnTime, ties in authored order

	// Spawn times were computed for this playfield
	Playfield Playfield

	NoteCounts [len(Directions)]int
}

func NewChart(name, audio string, entries []Entry, p Playfield) *Chart {
	notes := make([]Note, len(entries))
	for i, e := range entries {
		notes[i] = NewNote(e, p)
	}
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].SpawnTime < notes[j].SpawnTime
	})

	c := &Chart{
		Name:  name,
		Audio: audio,
		Notes: notes,

		Playfield: p,
	}
	for _, n := range notes {
		c.NoteCounts[n.Direction]++
	}
	return c
}

func (c *Chart) Len() int {
	return len(c.Notes)
}

// Duration is the click time of the last note to be hit.
func (c *Chart) Duration() float64 {
	last := 0.0
	for _, n := range c.Notes {
		if n.ClickTime > last {
			last = n.ClickTime
		}
	}
	return last
}

// Sum identifies the note content of a chart and the playfield it was built
// for, independent of its name and audio path.
func (c *Chart) Sum() string {
	h := sha256.New()
	var buf [8]byte
	p := c.Playfield
	for _, v := range []float64{p.SpawnX, p.TargetX, p.Threshold, p.BaseSpeed, p.Distance} {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	for _, n := range c.Notes {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(n.ClickTime))
		h.Write(buf[:])
		h.Write([]byte{byte(n.Speed), byte(n.Direction)})
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}
