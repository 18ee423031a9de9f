// Package arcade is the Space Invaders cabinet harness that drives a
// cpu8080 interpreter: input/output port latches, the external shift
// register, the sound-latch edge memory, the real-time scheduler, and
// the VRAM-to-pixel framebuffer view. It is the "Machine" half of the
// source's State/Machine split; cpu8080 never imports it.
package arcade

import (
	"fmt"

	"github.com/h-boehm/invaders8080/cpu8080"
)

// KeyBit names the ten input-port bit positions the cabinet exposes,
// per the port table: port 1 holds COIN/START/P1 controls, port 2
// holds TILT and P2 controls.
type KeyBit struct {
	Port byte
	Bit  byte
}

var (
	KeyCoin     = KeyBit{Port: 1, Bit: 0}
	KeyP2Start  = KeyBit{Port: 1, Bit: 1}
	KeyP1Start  = KeyBit{Port: 1, Bit: 2}
	KeyP1Shoot  = KeyBit{Port: 1, Bit: 4}
	KeyP1Left   = KeyBit{Port: 1, Bit: 5}
	KeyP1Right  = KeyBit{Port: 1, Bit: 6}
	KeyTilt     = KeyBit{Port: 2, Bit: 2}
	KeyP2Shoot  = KeyBit{Port: 2, Bit: 4}
	KeyP2Left   = KeyBit{Port: 2, Bit: 5}
	KeyP2Right  = KeyBit{Port: 2, Bit: 6}
)

// Machine owns a CPU state and the cabinet's external hardware: the
// input latches the key mapper toggles, the sound-latch pair read
// edge-triggered by the audio driver, and the barrel shifter wired
// through ports 2/4/3.
type Machine struct {
	CPU *cpu8080.State

	inPort1 byte
	inPort2 byte

	outPort3     byte
	prevOutPort3 byte
	outPort5     byte
	prevOutPort5 byte

	shiftLo     byte
	shiftHi     byte
	shiftOffset byte

	watchdog int
}

// NewMachine returns a Machine over a freshly constructed CPU state.
func NewMachine() *Machine {
	return &Machine{CPU: cpu8080.NewState()}
}

// SetKey toggles the named input bit on key-down (down=true) or clears
// it on key-up, in the corresponding port latch.
func (m *Machine) SetKey(k KeyBit, down bool) {
	target := &m.inPort1
	if k.Port == 2 {
		target = &m.inPort2
	}
	if down {
		*target |= 1 << k.Bit
	} else {
		*target &^= 1 << k.Bit
	}
}

// In implements cpu8080.Ports. Port 2 answers the in_port2 latch per
// spec's recommendation over the source revisions that return 0. Port
// 0 always answers 1, the value attract mode expects from a cabinet
// that wires no coin/credit hardware to it. Any other port is
// unmapped and faults the interpreter, mirroring the unimplemented-
// opcode discipline.
func (m *Machine) In(port byte) (byte, error) {
	switch port {
	case 0:
		return 1, nil
	case 1:
		return m.inPort1, nil
	case 2:
		return m.inPort2, nil
	case 3:
		v := uint16(m.shiftHi)<<8 | uint16(m.shiftLo)
		return byte(v >> (8 - m.shiftOffset)), nil
	default:
		return 0, fmt.Errorf("unmapped input port %d", port)
	}
}

// Out implements cpu8080.Ports.
func (m *Machine) Out(port byte, v byte) {
	switch port {
	case 2:
		m.shiftOffset = v & 7
	case 3:
		m.outPort3 = v
	case 4:
		m.shiftLo = m.shiftHi
		m.shiftHi = v
	case 5:
		m.prevOutPort5 = m.outPort5
		m.outPort5 = v
	case 6:
		m.watchdog++
	}
}

// SoundEdges reports the out_port3/out_port5 rising-edge bitmasks
// since the last call, for the sound board to translate into sample
// triggers, and a falling-edge mask for port 3 bit 0 (the UFO loop
// stop). It then commits the current latch values as the new
// "previous" baseline, matching the edge-detection the source performs
// inline inside its sound-playback routine.
func (m *Machine) SoundEdges() (risingPort3, fallingPort3, risingPort5 byte) {
	risingPort3 = m.outPort3 &^ m.prevOutPort3
	fallingPort3 = m.prevOutPort3 &^ m.outPort3
	risingPort5 = m.outPort5 &^ m.prevOutPort5
	m.prevOutPort3 = m.outPort3
	m.prevOutPort5 = m.outPort5
	return risingPort3, fallingPort3, risingPort5
}
