package theme

import (
	"fmt"

	"git.lost.host/meutraa/tempo/internal/game"
)

type Color struct {
	R, G, B uint8
}

type DefaultTheme struct {
}

func (t *DefaultTheme) RenderNote(direction game.Direction, speed game.Speed) string {
	color := getNoteColor(speed)
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", color.R, color.G, color.B, syms[direction])
}

func (t *DefaultTheme) RenderTarget(direction game.Direction) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", targetColor.R, targetColor.G, targetColor.B, targetSyms[direction])
}

func (t *DefaultTheme) RenderJudgement(judgement game.Judgement) string {
	switch judgement {
	case game.Hit:
		return "\033[1;32m✓\033[0m"
	case game.Miss:
		return "\033[1;31m✗\033[0m"
	}
	return " "
}

var (
	syms       = [...]string{"▲", "▼", "◀", "▶"}
	targetSyms = [...]string{"△", "▽", "◁", "▷"}

	targetColor = Color{106, 106, 106}
	noteColors  = map[game.Speed]Color{
		game.Slow:   {236, 30, 0},  // red
		game.Medium: {0, 118, 236}, // blue
		game.Fast:   {0, 236, 128}, // green
	}
)

func getNoteColor(s game.Speed) Color {
	col, ok := noteColors[s]
	if !ok {
		return Color{255, 255, 255}
	}
	return col
}
