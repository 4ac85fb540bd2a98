package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key codes for the keys the default bindings use. Key values are ebiten key
// codes, so any ebiten.Key converts directly.
const (
	KeyW         = Key(ebiten.KeyW)
	KeyA         = Key(ebiten.KeyA)
	KeyS         = Key(ebiten.KeyS)
	KeyD         = Key(ebiten.KeyD)
	KeyE         = Key(ebiten.KeyE)
	KeyShiftLeft = Key(ebiten.KeyShiftLeft)
	KeyEscape    = Key(ebiten.KeyEscape)
)

// Keyboard is the live Source, polling ebiten's keyboard state.
type Keyboard struct {
	buf []ebiten.Key
}

// PressedKeys returns the keys currently held down.
func (k *Keyboard) PressedKeys() []Key {
	k.buf = inpututil.AppendPressedKeys(k.buf[:0])
	keys := make([]Key, len(k.buf))
	for i, ek := range k.buf {
		keys[i] = Key(ek)
	}
	return keys
}
