package input

import (
	"fmt"

	"git.lost.host/meutraa/tempo/internal/game"
	"github.com/eiannone/keyboard"
	"go.uber.org/zap"
)

// Keyboard collects key presses between ticks. Presses are edge triggered,
// a held key does not press again until the terminal repeats it.
type Keyboard struct {
	events <-chan keyboard.KeyEvent
	keys   *KeyMap
	log    *zap.Logger
}

func OpenKeyboard(keys *KeyMap, log *zap.Logger) (*Keyboard, error) {
	events, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, fmt.Errorf("unable to open keyboard: %w", err)
	}
	return NewKeyboard(events, keys, log), nil
}

func NewKeyboard(events <-chan keyboard.KeyEvent, keys *KeyMap, log *zap.Logger) *Keyboard {
	if nil == log {
		log = zap.NewNop()
	}
	return &Keyboard{events: events, keys: keys, log: log}
}

func (k *Keyboard) Close() error {
	return keyboard.Close()
}

// Poll drains the presses that occurred since the last call without
// blocking.
func (k *Keyboard) Poll() (pressed game.Inputs, quit bool) {
	for {
		select {
		case ev, ok := <-k.events:
			if !ok {
				return pressed, true
			}
			if nil != ev.Err {
				k.log.Warn("keyboard error", zap.Error(ev.Err))
				continue
			}
			if Quit(ev) {
				quit = true
				continue
			}
			d, ok := k.keys.Direction(ev)
			if !ok {
				k.log.Debug("unbound key", zap.String("rune", string(ev.Rune)), zap.Uint16("key", uint16(ev.Key)))
				continue
			}
			pressed = pressed.With(d)
		default:
			return pressed, quit
		}
	}
}
