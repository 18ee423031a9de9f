package arcade

import (
	"testing"
)

// TestScenarioS3ShiftRegister is spec scenario S3 (the shift port):
// OUT 4 twice loads the 16-bit shift register, OUT 2 sets the offset,
// and IN 3 reads the shifted window.
func TestScenarioS3ShiftRegister(t *testing.T) {
	m := NewMachine()
	m.Out(4, 0xAA)
	m.Out(4, 0xBB)
	m.Out(2, 3)
	got, err := m.In(3)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0x5D {
		t.Fatalf("IN 3 = 0x%02X, want 0x5D", got)
	}
}

func TestInPort0ReturnsAttractModeValue(t *testing.T) {
	m := NewMachine()
	got, err := m.In(0)
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Fatalf("IN 0 = 0x%02X, want 1", got)
	}
}

func TestInUnmappedPortFaults(t *testing.T) {
	m := NewMachine()
	if _, err := m.In(7); err == nil {
		t.Fatal("expected an error for unmapped port 7")
	}
}

func TestInPort2ReturnsLatch(t *testing.T) {
	m := NewMachine()
	m.SetKey(KeyTilt, true)
	got, err := m.In(2)
	if err != nil {
		t.Fatal(err)
	}
	if got&(1<<KeyTilt.Bit) == 0 {
		t.Fatalf("in_port2 = 0x%02X, TILT bit not set", got)
	}
}

func TestSetKeyClearsOnKeyUp(t *testing.T) {
	m := NewMachine()
	m.SetKey(KeyP1Left, true)
	down, err := m.In(1)
	if err != nil {
		t.Fatal(err)
	}
	if down == 0 {
		t.Fatal("expected P1_LEFT bit set after key-down")
	}
	m.SetKey(KeyP1Left, false)
	up, err := m.In(1)
	if err != nil {
		t.Fatal(err)
	}
	if up != 0 {
		t.Fatalf("in_port1 = 0x%02X, want 0 after key-up", up)
	}
}

func TestWatchdogPortIgnoredButCounted(t *testing.T) {
	m := NewMachine()
	m.Out(6, 0xFF)
	m.Out(6, 0xFF)
	if m.watchdog != 2 {
		t.Fatalf("watchdog = %d, want 2", m.watchdog)
	}
}

type fakeSink struct {
	events []SampleEvent
}

func (f *fakeSink) Play(ev SampleEvent) { f.events = append(f.events, ev) }

func TestSoundBoardUFOStartStop(t *testing.T) {
	m := NewMachine()
	sink := &fakeSink{}
	sb := NewSoundBoard(m, sink)

	m.Out(3, 0x01)
	sb.Poll()
	if len(sink.events) != 1 || sink.events[0].ID != SampleUFO || sink.events[0].Stop {
		t.Fatalf("expected UFO start event, got %+v", sink.events)
	}

	m.Out(3, 0x00)
	sb.Poll()
	if len(sink.events) != 2 || sink.events[1].ID != SampleUFO || !sink.events[1].Stop {
		t.Fatalf("expected UFO stop event, got %+v", sink.events)
	}
}

func TestSoundBoardFleetMoveBits(t *testing.T) {
	m := NewMachine()
	sink := &fakeSink{}
	sb := NewSoundBoard(m, sink)

	m.Out(5, 0x01)
	sb.Poll()
	if len(sink.events) != 1 || sink.events[0].ID != SampleFleetMove1 {
		t.Fatalf("expected fleet-move-1 event, got %+v", sink.events)
	}
}

// TestSchedulerFirstRunSchedulesInterrupt1 covers the scheduler's
// first-run initialization step: interrupt 1 is due 16ms after the
// first Tick.
func TestSchedulerFirstRunSchedulesInterrupt1(t *testing.T) {
	m := NewMachine()
	m.CPU.IntEnable = true
	sch := NewScheduler(m)

	if _, err := sch.Tick(0); err != nil {
		t.Fatal(err)
	}
	if sch.whichInterrupt != 1 {
		t.Fatalf("whichInterrupt = %d, want 1 after first tick", sch.whichInterrupt)
	}

	if _, err := sch.Tick(17000); err != nil {
		t.Fatal(err)
	}
	if sch.whichInterrupt != 2 {
		t.Fatalf("whichInterrupt = %d, want 2 after deadline passes", sch.whichInterrupt)
	}
}

func TestSchedulerRunsCyclesProportionalToElapsed(t *testing.T) {
	m := NewMachine()
	m.CPU.Mem.Write(0x2000, 0x00) // NOP, 4 cycles
	m.CPU.PC = 0x2000
	sch := NewScheduler(m)

	sch.Tick(0)
	ran, err := sch.Tick(10)
	if err != nil {
		t.Fatal(err)
	}
	if ran < 20 {
		t.Fatalf("expected at least 20 cycles run for 10us elapsed, got %d", ran)
	}
}

type fakeSurface struct {
	pixels map[[2]int][3]byte
}

func newFakeSurface() *fakeSurface { return &fakeSurface{pixels: map[[2]int][3]byte{}} }

func (f *fakeSurface) SetPixel(x, y int, r, g, b byte) {
	f.pixels[[2]int{x, y}] = [3]byte{r, g, b}
}
func (f *fakeSurface) Width() int  { return ScreenWidth }
func (f *fakeSurface) Height() int { return ScreenHeight }

func TestRenderFrameColorBands(t *testing.T) {
	m := NewMachine()
	m.CPU.Mem.Write(0x2400, 0x01) // column 0, row 0 (top band, should be red)
	surf := newFakeSurface()
	var fb Framebuffer
	fb.Render(&m.CPU.Mem, surf, 1)
	if len(surf.pixels) != 1 {
		t.Fatalf("expected exactly one plotted pixel, got %d", len(surf.pixels))
	}
	for _, c := range surf.pixels {
		if c != [3]byte{0xFF, 0x00, 0x00} {
			t.Fatalf("pixel color = %v, want red", c)
		}
	}
}
