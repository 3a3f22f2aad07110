package parser

import "git.lost.host/meutraa/tempo/internal/game"

type Parser interface {
	Parse(file string) (*game.Chart, error)
}
