package parser

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"

	"git.lost.host/meutraa/tempo/internal/game"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultParser reads TOML (.toml) and YAML (.yaml, .yml) chart documents.
// The audio file named by a chart is resolved relative to the chart.
type DefaultParser struct {
	Playfield game.Playfield // Zero value means game.DefaultPlayfield()
}

type document struct {
	Name     string  `toml:"name" yaml:"name"`
	Filename string  `toml:"filename" yaml:"filename"`
	Arrows   []arrow `toml:"arrows" yaml:"arrows"`
}

// Pointers so that missing fields can be told apart from zero values
type arrow struct {
	ClickTime *float64        `toml:"click_time" yaml:"click_time"`
	Speed     *game.Speed     `toml:"speed" yaml:"speed"`
	Direction *game.Direction `toml:"direction" yaml:"direction"`
}

func (p *DefaultParser) playfield() game.Playfield {
	if p.Playfield == (game.Playfield{}) {
		return game.DefaultPlayfield()
	}
	return p.Playfield
}

func (p *DefaultParser) decode(file string, data []byte) (*document, error) {
	var doc document
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc); nil != err {
			return nil, malformed(file, "%w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); nil != err {
			return nil, malformed(file, "%w", err)
		}
	default:
		return nil, malformed(file, "unsupported chart format %q", filepath.Ext(file))
	}
	return &doc, nil
}

func (p *DefaultParser) entries(file string, doc *document) ([]game.Entry, error) {
	entries := make([]game.Entry, len(doc.Arrows))
	for i, a := range doc.Arrows {
		switch {
		case nil == a.ClickTime:
			return nil, malformed(file, "arrow %v: missing click_time", i)
		case nil == a.Speed:
			return nil, malformed(file, "arrow %v: missing speed", i)
		case nil == a.Direction:
			return nil, malformed(file, "arrow %v: missing direction", i)
		}
		ct := *a.ClickTime
		if math.IsNaN(ct) || math.IsInf(ct, 0) || ct < 0 {
			return nil, malformed(file, "arrow %v: invalid click_time %v", i, ct)
		}
		entries[i] = game.Entry{
			ClickTime: ct,
			Speed:     *a.Speed,
			Direction: *a.Direction,
		}
	}
	return entries, nil
}

func (p *DefaultParser) Parse(file string) (*game.Chart, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, ioError(file, err)
	}

	doc, err := p.decode(file, data)
	if nil != err {
		return nil, err
	}
	if strings.TrimSpace(doc.Name) == "" {
		return nil, malformed(file, "missing name")
	}
	if strings.TrimSpace(doc.Filename) == "" {
		return nil, malformed(file, "missing filename")
	}

	entries, err := p.entries(file, doc)
	if nil != err {
		return nil, err
	}

	audio := doc.Filename
	if !filepath.IsAbs(audio) {
		audio = filepath.Join(filepath.Dir(file), audio)
	}
	if _, err := os.Stat(audio); nil != err {
		return nil, ioError(audio, err)
	}

	return game.NewChart(doc.Name, audio, entries, p.playfield()), nil
}
