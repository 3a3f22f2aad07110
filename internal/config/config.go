package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"git.lost.host/meutraa/tempo/internal/game"
	"github.com/BurntSushi/toml"
)

type Config struct {
	Playfield game.Playfield `toml:"playfield"`
	Session   SessionConfig  `toml:"session"`
	Keys      KeysConfig     `toml:"keys"`
	History   HistoryConfig  `toml:"history"`
	Logging   LoggingConfig  `toml:"logging"`
}

type SessionConfig struct {
	PreRoll     time.Duration `toml:"pre_roll"`     // Delay before song time zero
	FramePeriod time.Duration `toml:"frame_period"` // Host tick period
}

// KeysConfig names the keys that press each direction. Names are single
// characters or one of "up", "down", "left", "right", "space".
type KeysConfig struct {
	Up    []string `toml:"up"`
	Down  []string `toml:"down"`
	Left  []string `toml:"left"`
	Right []string `toml:"right"`
}

type HistoryConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"` // sqlite database of recorded inputs
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // Empty logs to stderr
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		Playfield: game.DefaultPlayfield(),
		Session: SessionConfig{
			PreRoll:     3 * time.Second,
			FramePeriod: time.Second / 240,
		},
		Keys: KeysConfig{
			Up:    []string{"up", "d"},
			Down:  []string{"down", "f"},
			Left:  []string{"left", "j"},
			Right: []string{"right", "k"},
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    "./history.db",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func (k KeysConfig) Bindings() map[game.Direction][]string {
	return map[game.Direction][]string{
		game.Up:    k.Up,
		game.Down:  k.Down,
		game.Left:  k.Left,
		game.Right: k.Right,
	}
}

func (c *Config) Validate() error {
	var errs []error
	p := c.Playfield
	if p.Threshold <= 0 {
		errs = append(errs, fmt.Errorf("playfield.threshold must be positive, got %v", p.Threshold))
	}
	if p.BaseSpeed <= 0 {
		errs = append(errs, fmt.Errorf("playfield.base_speed must be positive, got %v", p.BaseSpeed))
	}
	if p.Distance <= 0 {
		errs = append(errs, fmt.Errorf("playfield.distance must be positive, got %v", p.Distance))
	}
	if p.TargetX <= p.SpawnX {
		errs = append(errs, fmt.Errorf("playfield.target_x %v must be past spawn_x %v", p.TargetX, p.SpawnX))
	}
	// Notes miss once they reach 2*target_x
	if p.TargetX <= 0 {
		errs = append(errs, fmt.Errorf("playfield.target_x must be positive, got %v", p.TargetX))
	}
	if p.Threshold >= p.TargetX {
		errs = append(errs, fmt.Errorf("playfield.threshold %v must be below target_x %v", p.Threshold, p.TargetX))
	}
	// Otherwise notes are not on the target at their click time
	if math.Abs(p.Distance-(p.TargetX-p.SpawnX)) > 1e-9 {
		errs = append(errs, fmt.Errorf("playfield.distance %v must equal target_x - spawn_x (%v)", p.Distance, p.TargetX-p.SpawnX))
	}
	if c.Session.PreRoll < 0 {
		errs = append(errs, fmt.Errorf("session.pre_roll must not be negative, got %v", c.Session.PreRoll))
	}
	if c.Session.FramePeriod <= 0 {
		errs = append(errs, fmt.Errorf("session.frame_period must be positive, got %v", c.Session.FramePeriod))
	}

	bound := map[string]game.Direction{}
	for _, d := range game.Directions {
		keys := c.Keys.Bindings()[d]
		if len(keys) == 0 {
			errs = append(errs, fmt.Errorf("keys.%v has no keys", strings.ToLower(d.String())))
		}
		for _, key := range keys {
			key = strings.ToLower(key)
			if other, ok := bound[key]; ok && other != d {
				errs = append(errs, fmt.Errorf("key %q is bound to both %v and %v", key, other, d))
			}
			bound[key] = d
		}
	}

	if c.History.Enabled && c.History.Path == "" {
		errs = append(errs, errors.New("history.path is required when history is enabled"))
	}
	return errors.Join(errs...)
}
