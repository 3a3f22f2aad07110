package score

import (
	"path/filepath"
	"testing"

	"git.lost.host/meutraa/tempo/internal/game"
	"git.lost.host/meutraa/tempo/internal/testdata"
)

func TestStoreSaveLoad(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "history.db"), nil)
	if nil != err {
		t.Fatal(err)
	}
	defer store.Close()

	chart := testdata.GetChart()
	other := game.NewChart("Other", "", []game.Entry{{ClickTime: 1}}, game.DefaultPlayfield())

	h := History{
		PreRoll: 3,
		Inputs: []game.Input{
			{Direction: game.Up, HitTime: 8.0},
			{Direction: game.Left, HitTime: 8.5},
			{Direction: game.Up, HitTime: 10.0},
		},
	}
	if err := store.Save(chart, &h); nil != err {
		t.Fatal(err)
	}
	if h.ID == 0 || h.Sum != chart.Sum() {
		t.Error("save did not fill in id and sum", h)
	}
	if err := store.Save(other, &History{PreRoll: 1}); nil != err {
		t.Fatal(err)
	}

	histories, err := store.Load(chart)
	if nil != err {
		t.Fatal(err)
	}
	if len(histories) != 1 {
		t.Fatalf("expected 1 history, got %v", len(histories))
	}
	loaded := histories[0]
	if loaded.ID != h.ID || loaded.PreRoll != 3 || len(loaded.Inputs) != len(h.Inputs) {
		t.Fatal("unexpected history", loaded)
	}
	for i := range h.Inputs {
		if loaded.Inputs[i] != h.Inputs[i] {
			t.Errorf("input %v: %v, expected %v", i, loaded.Inputs[i], h.Inputs[i])
		}
	}

	histories, err = store.Load(other)
	if nil != err || len(histories) != 1 || len(histories[0].Inputs) != 0 {
		t.Error("unexpected histories for other chart", histories, err)
	}
}

func TestStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	chart := testdata.GetChart()

	store, err := OpenStore(path, nil)
	if nil != err {
		t.Fatal(err)
	}
	if err := store.Save(chart, &History{PreRoll: 3, Inputs: []game.Input{{Direction: game.Down, HitTime: 9}}}); nil != err {
		t.Fatal(err)
	}
	store.Close()

	store, err = OpenStore(path, nil)
	if nil != err {
		t.Fatal(err)
	}
	defer store.Close()
	histories, err := store.Load(chart)
	if nil != err || len(histories) != 1 {
		t.Fatal("history did not survive reopening", histories, err)
	}
}
