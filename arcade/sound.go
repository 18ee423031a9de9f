package arcade

// SampleID names one of the cabinet's nine discrete WAV samples, per
// the source's wav_files table (ufo through UFO-hit).
type SampleID int

const (
	SampleUFO SampleID = iota
	SampleShot
	SamplePlayerDie
	SampleInvaderDie
	SampleFleetMove1
	SampleFleetMove2
	SampleFleetMove3
	SampleFleetMove4
	SampleUFOHit
)

// SampleEvent is one trigger the sound board emits: Start begins
// playback (looped for the UFO sample while it stays on screen), and
// a bare Stop of SampleUFO halts the loop.
type SampleEvent struct {
	ID   SampleID
	Stop bool
}

// SampleSink is the audio package's playback seam; OtoPlayer implements
// it by starting or halting the corresponding sample.
type SampleSink interface {
	Play(ev SampleEvent)
}

// cocktailFlipBit is port 5 bit 5, documented by the source as "NC
// (Cocktail mode control ... to flip screen)". Carried here as a named
// constant rather than silently dropped; no cocktail-cabinet mode
// reads it yet.
const cocktailFlipBit = 0x20

// SoundBoard turns the Machine's edge-triggered out_port3/out_port5
// latches into sample-playback events, the same translation the
// source's play_sounds performs inline once per frame.
type SoundBoard struct {
	machine *Machine
	sink    SampleSink
	ufoOn   bool
}

func NewSoundBoard(m *Machine, sink SampleSink) *SoundBoard {
	return &SoundBoard{machine: m, sink: sink}
}

// Poll should be called once per rendered frame (or per scheduler
// Tick, as the source does); it diffs the latches and fires any
// samples whose trigger bit rose since the last poll.
func (sb *SoundBoard) Poll() {
	rising3, falling3, rising5 := sb.machine.SoundEdges()

	if rising3&0x01 != 0 {
		sb.ufoOn = true
		sb.sink.Play(SampleEvent{ID: SampleUFO})
	}
	if falling3&0x01 != 0 && sb.ufoOn {
		sb.ufoOn = false
		sb.sink.Play(SampleEvent{ID: SampleUFO, Stop: true})
	}
	if rising3&0x02 != 0 {
		sb.sink.Play(SampleEvent{ID: SampleShot})
	}
	if rising3&0x04 != 0 {
		sb.sink.Play(SampleEvent{ID: SamplePlayerDie})
	}
	if rising3&0x08 != 0 {
		sb.sink.Play(SampleEvent{ID: SampleInvaderDie})
	}

	fleetMoves := []SampleID{SampleFleetMove1, SampleFleetMove2, SampleFleetMove3, SampleFleetMove4}
	for i, id := range fleetMoves {
		if rising5&(1<<uint(i)) != 0 {
			sb.sink.Play(SampleEvent{ID: id})
		}
	}
	if rising5&0x10 != 0 {
		sb.sink.Play(SampleEvent{ID: SampleUFOHit})
	}
}
