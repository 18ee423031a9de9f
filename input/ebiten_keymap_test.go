package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/h-boehm/invaders8080/arcade"
)

func TestKeymapSetsPortBitOnKeyDown(t *testing.T) {
	m := arcade.NewMachine()
	km := NewEbitenKeymap(m)

	km.apply(func(k ebiten.Key) bool { return k == ebiten.KeyZ })

	got, err := m.In(1)
	if err != nil {
		t.Fatal(err)
	}
	if got&(1<<arcade.KeyP1Shoot.Bit) == 0 {
		t.Fatalf("in_port1 = 0x%02X, P1_SHOOT bit not set", got)
	}
}

func TestKeymapClearsPortBitOnKeyUp(t *testing.T) {
	m := arcade.NewMachine()
	km := NewEbitenKeymap(m)

	km.apply(func(k ebiten.Key) bool { return k == ebiten.KeyZ })
	km.apply(func(ebiten.Key) bool { return false })

	got, err := m.In(1)
	if err != nil {
		t.Fatal(err)
	}
	if got&(1<<arcade.KeyP1Shoot.Bit) != 0 {
		t.Fatalf("in_port1 = 0x%02X, P1_SHOOT bit still set after key-up", got)
	}
}

func TestKeymapIgnoresSteadyState(t *testing.T) {
	m := arcade.NewMachine()
	km := NewEbitenKeymap(m)

	pressed := func(k ebiten.Key) bool { return k == ebiten.KeyArrowLeft }
	km.apply(pressed)
	m.SetKey(arcade.KeyP1Right, true) // perturb a different bit between polls
	km.apply(pressed)

	got, err := m.In(1)
	if err != nil {
		t.Fatal(err)
	}
	if got&(1<<arcade.KeyP1Left.Bit) == 0 {
		t.Fatalf("in_port1 = 0x%02X, P1_LEFT bit should remain set on a steady key", got)
	}
}
