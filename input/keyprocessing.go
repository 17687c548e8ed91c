package input

import (
	"log"

	"github.com/richinsley/glquad/graphics"
)

// KeySource is the part of graphics.Context the key processor needs.
type KeySource interface {
	KeyPressed(graphics.Key) bool
	SetShouldClose(bool)
}

type binding struct {
	key     graphics.Key
	fn      func()
	wasDown bool
}

// KeyProcessor polls the keyboard once per frame.
type KeyProcessor struct {
	src      KeySource
	bindings []*binding
}

func NewKeyProcessor(src KeySource) *KeyProcessor {
	return &KeyProcessor{src: src}
}

// OnPress registers fn to run once each time key goes down. Holding the key
// does not repeat the call.
func (kp *KeyProcessor) OnPress(key graphics.Key, fn func()) {
	kp.bindings = append(kp.bindings, &binding{key: key, fn: fn})
}

// ProcessInput closes the window when Escape is held and dispatches any
// registered press bindings.
func (kp *KeyProcessor) ProcessInput() {
	if kp.src.KeyPressed(graphics.KeyEscape) {
		log.Println("window killed")
		kp.src.SetShouldClose(true)
	}

	for _, b := range kp.bindings {
		down := kp.src.KeyPressed(b.key)
		if down && !b.wasDown {
			b.fn()
		}
		b.wasDown = down
	}
}
