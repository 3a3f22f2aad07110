package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"git.lost.host/meutraa/tempo/internal/game"
	"git.lost.host/meutraa/tempo/internal/testdata"
)

func equalCharts(t *testing.T, got, expected *game.Chart) {
	t.Helper()
	if got.Name != expected.Name {
		t.Errorf("name %q, expected %q", got.Name, expected.Name)
	}
	if got.Len() != expected.Len() {
		t.Fatalf("%v notes, expected %v", got.Len(), expected.Len())
	}
	for i := range got.Notes {
		if got.Notes[i] != expected.Notes[i] {
			t.Errorf("note %v: %+v, expected %+v", i, got.Notes[i], expected.Notes[i])
		}
	}
}

func TestParseDocuments(t *testing.T) {
	documents := map[string]string{
		"chart.toml": testdata.TOML,
		"chart.yaml": testdata.YAML,
		"chart.yml":  testdata.YAML,
	}
	for name, document := range documents {
		dir := t.TempDir()
		file, err := testdata.WriteChart(dir, name, document)
		if nil != err {
			t.Fatal(err)
		}
		p := DefaultParser{}
		chart, err := p.Parse(file)
		if nil != err {
			t.Fatalf("%v: %v", name, err)
		}
		equalCharts(t, chart, testdata.GetChart())
		if chart.Audio != filepath.Join(dir, testdata.AudioFile) {
			t.Errorf("%v: audio resolved to %q", name, chart.Audio)
		}
	}
}

func TestParsePlayfield(t *testing.T) {
	dir := t.TempDir()
	file, err := testdata.WriteChart(dir, "chart.toml", testdata.TOML)
	if nil != err {
		t.Fatal(err)
	}
	pf := game.DefaultPlayfield()
	pf.Distance = 1200
	p := DefaultParser{Playfield: pf}
	chart, err := p.Parse(file)
	if nil != err {
		t.Fatal(err)
	}
	// Slow note clicked at 5.0 now needs 6 seconds of travel
	if chart.Notes[0].SpawnTime != -1.0 {
		t.Error("unexpected spawn time", chart.Notes[0])
	}
}

var malformedTests = map[string]string{
	"unparsable.toml":  "name = \n",
	"direction.toml":   "name = \"a\"\nfilename = \"song.ogg\"\n[[arrows]]\nclick_time = 1.0\nspeed = \"Slow\"\ndirection = \"Diagonal\"\n",
	"speed.yaml":       "name: a\nfilename: song.ogg\narrows:\n  - {click_time: 1.0, speed: Warp, direction: Up}\n",
	"no_speed.toml":    "name = \"a\"\nfilename = \"song.ogg\"\n[[arrows]]\nclick_time = 1.0\ndirection = \"Up\"\n",
	"no_click.yaml":    "name: a\nfilename: song.ogg\narrows:\n  - {speed: Slow, direction: Up}\n",
	"no_name.toml":     "filename = \"song.ogg\"\n",
	"no_filename.yaml": "name: a\n",
	"negative.toml":    "name = \"a\"\nfilename = \"song.ogg\"\n[[arrows]]\nclick_time = -1.0\nspeed = \"Slow\"\ndirection = \"Up\"\n",
	"shape.yaml":       "name: [1, 2]\n",
	"unknown.json":     "{}",
}

func TestParseMalformed(t *testing.T) {
	for name, document := range malformedTests {
		file, err := testdata.WriteChart(t.TempDir(), name, document)
		if nil != err {
			t.Fatal(err)
		}
		p := DefaultParser{}
		chart, err := p.Parse(file)
		if nil != chart {
			t.Errorf("%v: expected no chart", name)
		}
		if !errors.Is(err, ErrMalformed) || errors.Is(err, ErrIO) {
			t.Errorf("%v: expected malformed error, got %v", name, err)
		}
		var ce *ChartError
		if !errors.As(err, &ce) || ce.File != file {
			t.Errorf("%v: expected chart error for %v, got %v", name, file, err)
		}
	}
}

func TestParseMissingChart(t *testing.T) {
	p := DefaultParser{}
	_, err := p.Parse(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, ErrIO) || !errors.Is(err, os.ErrNotExist) {
		t.Error("expected io error, got", err)
	}
}

func TestParseMissingAudio(t *testing.T) {
	dir := t.TempDir()
	file, err := testdata.WriteChart(dir, "chart.toml", testdata.TOML)
	if nil != err {
		t.Fatal(err)
	}
	if err := os.Remove(filepath.Join(dir, testdata.AudioFile)); nil != err {
		t.Fatal(err)
	}
	p := DefaultParser{}
	chart, err := p.Parse(file)
	if nil != chart || !errors.Is(err, ErrIO) {
		t.Error("expected io error, got", err)
	}
}

func TestParseEmptyChart(t *testing.T) {
	file, err := testdata.WriteChart(t.TempDir(), "empty.toml", "name = \"empty\"\nfilename = \"song.ogg\"\n")
	if nil != err {
		t.Fatal(err)
	}
	p := DefaultParser{}
	chart, err := p.Parse(file)
	if nil != err || chart.Len() != 0 {
		t.Error("expected an empty chart, got", chart, err)
	}
}
