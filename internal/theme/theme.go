package theme

import "git.lost.host/meutraa/tempo/internal/game"

type Theme interface {
	RenderNote(direction game.Direction, speed game.Speed) string
	RenderTarget(direction game.Direction) string
	RenderJudgement(judgement game.Judgement) string
}
