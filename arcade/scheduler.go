package arcade

import (
	"log/slog"
	"time"

	"github.com/h-boehm/invaders8080/cpu8080"
)

var log = slog.Default().With("component", "arcade")

// Clock is the injectable wall-clock seam the scheduler's Run loop
// pulls ticks from, grounded on the chip8 CPU's injectable
// time.Tick channel: production code drives Run from a real ticker,
// tests drive Tick directly with synthetic microsecond timestamps.
type Clock interface {
	NowMicros() int64
}

// SystemClock reports microseconds since an arbitrary monotonic
// epoch fixed at construction.
type SystemClock struct {
	epoch time.Time
}

func NewSystemClock() SystemClock {
	return SystemClock{epoch: time.Now()}
}

func (c SystemClock) NowMicros() int64 {
	return time.Since(c.epoch).Microseconds()
}

// Scheduler is the source's "run_cpu": it alternates between running
// the interpreter in cycle-budgeted bursts and injecting the two
// half-frame interrupts a 60 Hz VBLANK produces.
type Scheduler struct {
	machine *Machine

	lastTimerUs     int64
	nextInterruptUs int64
	whichInterrupt  int
	started         bool
}

func NewScheduler(m *Machine) *Scheduler {
	return &Scheduler{machine: m}
}

// Tick runs one scheduler step against the supplied wall-clock
// timestamp (microseconds). It is the direct transliteration of
// spec's five-step run_cpu algorithm: first-run initialization,
// conditional interrupt dispatch, cycle-budget computation, a step
// loop until the budget is met, and timer rebasing.
func (sch *Scheduler) Tick(nowUs int64) (int, error) {
	if !sch.started {
		sch.started = true
		sch.lastTimerUs = nowUs
		sch.nextInterruptUs = nowUs + 16000
		sch.whichInterrupt = 1
		log.Info("scheduler started", "nowUs", nowUs)
	}

	if sch.machine.CPU.IntEnable && nowUs > sch.nextInterruptUs {
		cpu8080.GenerateInterrupt(sch.machine.CPU, sch.whichInterrupt)
		if sch.whichInterrupt == 1 {
			sch.whichInterrupt = 2
		} else {
			sch.whichInterrupt = 1
		}
		sch.nextInterruptUs = nowUs + 8000
	}

	cyclesToRun := 2 * (nowUs - sch.lastTimerUs)
	cyclesRun := int64(0)
	for cyclesRun < cyclesToRun {
		cycles, err := cpu8080.Step(sch.machine.CPU, sch.machine)
		if err != nil {
			log.Error("scheduler stopping on interpreter fault", "err", err)
			return int(cyclesRun), err
		}
		cyclesRun += int64(cycles)
	}

	sch.lastTimerUs = nowUs
	return int(cyclesRun), nil
}

// Run drives Tick once per clk tick until ctx-style cancellation is
// signaled by stop being closed, or a Fault terminates the interpreter.
// Callers that want full control over pacing (e.g. a GUI's own Update
// callback) can ignore Run and call Tick directly instead, as the video
// package's ebiten driver does.
func (sch *Scheduler) Run(clk Clock, tick <-chan time.Time, stop <-chan struct{}) error {
	for {
		select {
		case <-stop:
			return nil
		case <-tick:
			if _, err := sch.Tick(clk.NowMicros()); err != nil {
				return err
			}
		}
	}
}
