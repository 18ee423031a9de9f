// Package input translates ebiten key state into the cabinet's
// input-port bit toggles, grounded on the teacher's
// handleKeyboardInput polling loop (video_backend_ebiten.go), adapted
// from emitting terminal byte sequences to toggling arcade.KeyBit
// latches on key-down/key-up instead.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/h-boehm/invaders8080/arcade"
)

// binding pairs one ebiten key with the cabinet input bit it drives.
type binding struct {
	key ebiten.Key
	bit arcade.KeyBit
}

// EbitenKeymap polls the documented P1/P2/system key set every Update
// tick and mirrors it onto a Machine's port latches.
type EbitenKeymap struct {
	machine  *arcade.Machine
	bindings []binding
	down     map[arcade.KeyBit]bool
}

// NewEbitenKeymap returns a keymap wired to the cabinet's key
// assignment: c for coin; 1/2 for P1/P2 start; z, arrow-left and
// arrow-right for P1 shoot/left/right; s, a and x for P2
// shoot/left/right; d for tilt.
func NewEbitenKeymap(m *arcade.Machine) *EbitenKeymap {
	return &EbitenKeymap{
		machine: m,
		down:    make(map[arcade.KeyBit]bool),
		bindings: []binding{
			{ebiten.KeyC, arcade.KeyCoin},
			{ebiten.Key1, arcade.KeyP1Start},
			{ebiten.Key2, arcade.KeyP2Start},
			{ebiten.KeyZ, arcade.KeyP1Shoot},
			{ebiten.KeyArrowLeft, arcade.KeyP1Left},
			{ebiten.KeyArrowRight, arcade.KeyP1Right},
			{ebiten.KeyD, arcade.KeyTilt},
			{ebiten.KeyS, arcade.KeyP2Shoot},
			{ebiten.KeyA, arcade.KeyP2Left},
			{ebiten.KeyX, arcade.KeyP2Right},
		},
	}
}

// Update polls every bound key and toggles the corresponding port bit
// on the edges only, matching the source's key-down/key-up model.
func (km *EbitenKeymap) Update() {
	km.apply(ebiten.IsKeyPressed)
}

// apply drives the edge detection against an injectable "is this key
// down" query, kept separate from Update so the toggling logic is
// testable without a live ebiten window, the same split the teacher
// uses to unit-test its key-translation helpers apart from the
// polling loop that calls them.
func (km *EbitenKeymap) apply(isPressed func(ebiten.Key) bool) {
	for _, b := range km.bindings {
		pressed := isPressed(b.key)
		if pressed != km.down[b.bit] {
			km.machine.SetKey(b.bit, pressed)
			km.down[b.bit] = pressed
		}
	}
}
