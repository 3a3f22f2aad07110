package score

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"

	"git.lost.host/meutraa/tempo/internal/game"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// DefaultStore keeps input histories in a sqlite database. Only inputs are
// stored; scores are reproduced by replaying them.
type DefaultStore struct {
	db  *sql.DB
	log *zap.Logger
}

type InputsCompact struct {
	Direction game.Direction
	Times     []float64
}

func compactInputs(inputs []game.Input) []InputsCompact {
	dirCount := 0
	for _, i := range inputs {
		if int(i.Direction) >= dirCount {
			dirCount = int(i.Direction) + 1
		}
	}
	ins := make([]InputsCompact, dirCount)
	for i := range ins {
		ins[i].Direction = game.Direction(i)
		ins[i].Times = []float64{}
	}
	for _, i := range inputs {
		ins[i.Direction].Times = append(ins[i.Direction].Times, i.HitTime)
	}
	return ins
}

// uncompactInputs returns inputs ordered by time, and by direction for
// inputs at the same time.
func uncompactInputs(inputs []InputsCompact) []game.Input {
	ins := []game.Input{}
	for _, i := range inputs {
		for _, t := range i.Times {
			ins = append(ins, game.Input{Direction: i.Direction, HitTime: t})
		}
	}
	sort.SliceStable(ins, func(i, j int) bool {
		if ins[i].HitTime != ins[j].HitTime {
			return ins[i].HitTime < ins[j].HitTime
		}
		return ins[i].Direction < ins[j].Direction
	})
	return ins
}

func OpenStore(path string, log *zap.Logger) (*DefaultStore, error) {
	db, err := sql.Open("sqlite3", path)
	if nil != err {
		return nil, fmt.Errorf("unable to open history %v: %w", path, err)
	}

	initStatement := `
	create table if not exists histories
	  (
		  id integer not null primary key,
		  sum text not null,
		  pre_roll real not null,
		  inputs blob not null
	  );
	create index if not exists histories_sum on histories(sum);
	`
	if _, err := db.Exec(initStatement); nil != err {
		db.Close()
		return nil, fmt.Errorf("unable to create history tables: %w", err)
	}

	if nil == log {
		log = zap.NewNop()
	}
	return &DefaultStore{db: db, log: log}, nil
}

func (s *DefaultStore) Close() error {
	return s.db.Close()
}

func (s *DefaultStore) Save(c *game.Chart, h *History) error {
	data, err := json.Marshal(compactInputs(h.Inputs))
	if nil != err {
		return fmt.Errorf("unable to marshal inputs: %w", err)
	}
	sum := c.Sum()
	res, err := s.db.Exec("insert into histories(sum, pre_roll, inputs) values(?, ?, ?)", sum, h.PreRoll, data)
	if nil != err {
		return fmt.Errorf("unable to save history: %w", err)
	}
	if id, err := res.LastInsertId(); nil == err {
		h.ID = id
	}
	h.Sum = sum
	s.log.Debug("saved history",
		zap.String("chart", c.Name),
		zap.Int64("id", h.ID),
		zap.Int("inputs", len(h.Inputs)),
	)
	return nil
}

func (s *DefaultStore) Load(c *game.Chart) ([]History, error) {
	histories := []History{}
	rows, err := s.db.Query("select id, sum, pre_roll, inputs from histories where sum = ? order by id", c.Sum())
	if nil != err {
		return nil, fmt.Errorf("unable to load histories: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var h History
		var data []byte
		if err := rows.Scan(&h.ID, &h.Sum, &h.PreRoll, &data); nil != err {
			return nil, fmt.Errorf("unable to read history: %w", err)
		}
		var ins []InputsCompact
		if err := json.Unmarshal(data, &ins); nil != err {
			s.log.Warn("unable to unmarshal input history", zap.Int64("id", h.ID), zap.Error(err))
			continue
		}
		h.Inputs = uncompactInputs(ins)
		histories = append(histories, h)
	}
	return histories, rows.Err()
}
