package input

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"git.lost.host/meutraa/tempo/internal/game"
	"github.com/eiannone/keyboard"
)

var namedKeys = map[string]keyboard.Key{
	"up":    keyboard.KeyArrowUp,
	"down":  keyboard.KeyArrowDown,
	"left":  keyboard.KeyArrowLeft,
	"right": keyboard.KeyArrowRight,
	"space": keyboard.KeySpace,
}

// KeyMap translates raw key events into logical directions. Several keys may
// press the same direction.
type KeyMap struct {
	keys  map[keyboard.Key]game.Direction
	runes map[rune]game.Direction
}

func NewKeyMap(bindings map[game.Direction][]string) (*KeyMap, error) {
	km := &KeyMap{
		keys:  map[keyboard.Key]game.Direction{},
		runes: map[rune]game.Direction{},
	}
	for d, names := range bindings {
		for _, name := range names {
			name = strings.ToLower(name)
			if key, ok := namedKeys[name]; ok {
				km.keys[key] = d
				continue
			}
			if utf8.RuneCountInString(name) != 1 {
				return nil, fmt.Errorf("unknown key %q for %v", name, d)
			}
			r, _ := utf8.DecodeRuneInString(name)
			km.runes[r] = d
		}
	}
	return km, nil
}

func (km *KeyMap) Direction(ev keyboard.KeyEvent) (game.Direction, bool) {
	if ev.Rune != 0 {
		d, ok := km.runes[unicode.ToLower(ev.Rune)]
		return d, ok
	}
	d, ok := km.keys[ev.Key]
	return d, ok
}

// Quit reports whether the event asks to end the session.
func Quit(ev keyboard.KeyEvent) bool {
	return ev.Key == keyboard.KeyEsc || ev.Key == keyboard.KeyCtrlC
}
