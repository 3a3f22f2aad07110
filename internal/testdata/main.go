package testdata

import (
	"os"
	"path/filepath"

	"git.lost.host/meutraa/tempo/internal/game"
)

const AudioFile = "song.ogg"

const TOML = `name = "Test Song"
filename = "song.ogg"

[[arrows]]
click_time = 5.0
speed = "Slow"
direction = "Up"

[[arrows]]
click_time = 5.5
speed = "Fast"
direction = "Left"

[[arrows]]
click_time = 6.0
speed = "Medium"
direction = "Down"

[[arrows]]
click_time = 7.0
speed = "Slow"
direction = "Right"

[[arrows]]
click_time = 7.0
speed = "Slow"
direction = "Up"
`

const YAML = `name: Test Song
filename: song.ogg
arrows:
  - {click_time: 5.0, speed: Slow, direction: Up}
  - {click_time: 5.5, speed: Fast, direction: Left}
  - {click_time: 6.0, speed: Medium, direction: Down}
  - {click_time: 7.0, speed: Slow, direction: Right}
  - {click_time: 7.0, speed: Slow, direction: Up}
`

// Entries is the authored content of TOML and YAML.
var Entries = []game.Entry{
	{ClickTime: 5.0, Speed: game.Slow, Direction: game.Up},
	{ClickTime: 5.5, Speed: game.Fast, Direction: game.Left},
	{ClickTime: 6.0, Speed: game.Medium, Direction: game.Down},
	{ClickTime: 7.0, Speed: game.Slow, Direction: game.Right},
	{ClickTime: 7.0, Speed: game.Slow, Direction: game.Up},
}

func GetChart() *game.Chart {
	return game.NewChart("Test Song", AudioFile, Entries, game.DefaultPlayfield())
}

// WriteChart writes document as name into dir, next to an empty audio file,
// and returns the chart path.
func WriteChart(dir, name, document string) (string, error) {
	if err := os.WriteFile(filepath.Join(dir, AudioFile), nil, 0o644); nil != err {
		return "", err
	}
	file := filepath.Join(dir, name)
	if err := os.WriteFile(file, []byte(document), 0o644); nil != err {
		return "", err
	}
	return file, nil
}
