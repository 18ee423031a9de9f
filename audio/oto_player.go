// Package audio plays the cabinet's nine discrete WAV samples through
// oto, the ambient audio backend the teacher also drives via an
// io.Reader-shaped ring buffer.
package audio

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/h-boehm/invaders8080/arcade"
)

var log = slog.Default().With("component", "audio")

const sampleRate = 44100

// voice is one currently-mixing playback of a loaded sample.
type voice struct {
	pcm     []float32
	pos     int
	looping bool
}

// OtoPlayer implements arcade.SampleSink by mixing active voices into
// a single PCM stream oto.Player reads from, grounded on the teacher's
// OtoPlayer/Read ring-buffer pattern in audio_backend_oto.go.
type OtoPlayer struct {
	ctx    *oto.Context
	player *oto.Player

	mu      sync.Mutex
	samples [][]float32 // indexed by arcade.SampleID
	voices  []*voice    // active voices; only UFO voices are looping
}

// NewOtoPlayer opens the oto context and loads every WAV file named in
// dir (expected to contain "0.wav".."8.wav", matching the source's
// wav_files table and arcade.SampleID ordering).
func NewOtoPlayer(dir string) (*OtoPlayer, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   4,
	})
	if err != nil {
		log.Error("oto context init failed", "err", err)
		return nil, &arcade.ErrAudioInit{Err: err}
	}
	<-ready

	op := &OtoPlayer{ctx: ctx}
	for i := 0; i < 9; i++ {
		path := filepath.Join(dir, fmt.Sprintf("%d.wav", i))
		pcm, err := loadWAVPCM(path)
		if err != nil {
			log.Error("sample load failed", "path", path, "err", err)
			return nil, &arcade.ErrAudioInit{Err: err}
		}
		op.samples = append(op.samples, pcm)
	}
	op.player = ctx.NewPlayer(op)
	op.player.Play()
	log.Info("audio player started", "dir", dir, "samples", len(op.samples))
	return op, nil
}

// Play implements arcade.SampleSink.
func (op *OtoPlayer) Play(ev arcade.SampleEvent) {
	op.mu.Lock()
	defer op.mu.Unlock()

	if ev.ID == arcade.SampleUFO && ev.Stop {
		filtered := op.voices[:0]
		for _, v := range op.voices {
			if !v.looping {
				filtered = append(filtered, v)
			}
		}
		op.voices = filtered
		return
	}

	pcm := op.samples[ev.ID]
	op.voices = append(op.voices, &voice{pcm: pcm, looping: ev.ID == arcade.SampleUFO})
}

// Read implements io.Reader for oto.Player: it mixes every active
// voice's remaining samples into p, dropping finished non-looping
// voices and rewinding looping ones.
func (op *OtoPlayer) Read(p []byte) (int, error) {
	op.mu.Lock()
	defer op.mu.Unlock()

	n := len(p) / 4
	mixed := make([]float32, n)
	alive := op.voices[:0]
	for _, v := range op.voices {
		for i := 0; i < n; i++ {
			if v.pos >= len(v.pcm) {
				if v.looping {
					v.pos = 0
				} else {
					break
				}
			}
			mixed[i] += v.pcm[v.pos]
			v.pos++
		}
		if v.looping || v.pos < len(v.pcm) {
			alive = append(alive, v)
		}
	}
	op.voices = alive

	for i, s := range mixed {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(s))
	}
	return len(p), nil
}

// Close releases the oto player.
func (op *OtoPlayer) Close() error {
	if op.player != nil {
		return op.player.Close()
	}
	return nil
}

// loadWAVPCM reads a canonical-form 16-bit PCM WAV file and returns its
// samples as mono float32 data normalized to oto's [-1,1] range.
func loadWAVPCM(path string) ([]float32, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(raw) < 44 || string(raw[0:4]) != "RIFF" || string(raw[8:12]) != "WAVE" {
		return nil, fmt.Errorf("%s: not a canonical WAV file", path)
	}
	dataOffset := 44
	pcm := make([]float32, (len(raw)-dataOffset)/2)
	for i := range pcm {
		pcm[i] = float32(int16(binary.LittleEndian.Uint16(raw[dataOffset+i*2:]))) / 32768
	}
	return pcm, nil
}
