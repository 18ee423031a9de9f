// Package romset loads the cabinet's ROM segment files into a
// cpu8080.Memory image. It is the "byte-blob producer" spec.md names
// as an out-of-scope external collaborator, implemented here so the
// program has something concrete to run.
package romset

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/h-boehm/invaders8080/cpu8080"
)

var log = slog.Default().With("component", "romset")

// Title identifies one of the four cabinet ROM sets this loader knows
// about, matching the CLI's "game (1..4)" selection.
type Title int

const (
	SpaceInvaders Title = iota + 1
	LunarRescue
	BalloonBomber
	SpaceInvadersDeluxe
)

func (t Title) String() string {
	switch t {
	case SpaceInvaders:
		return "Space Invaders"
	case LunarRescue:
		return "Lunar Rescue"
	case BalloonBomber:
		return "Balloon Bomber"
	case SpaceInvadersDeluxe:
		return "Space Invaders Deluxe"
	default:
		return "unknown"
	}
}

// Segment is one (file, load-offset) pair within a title's ROM set.
type Segment struct {
	File   string
	Offset uint16
}

// Catalog maps each supported title to its ordered ROM segment list,
// grounded on original_source/src/emulator/memory.c's four mem_init_*
// functions. Space Invaders loads four 2 KiB segments filling
// [0x0000,0x2000); the other three titles load a fifth segment at
// 0x4000.
var Catalog = map[Title][]Segment{
	SpaceInvaders: {
		{"invaders.h", 0x0000},
		{"invaders.g", 0x0800},
		{"invaders.f", 0x1000},
		{"invaders.e", 0x1800},
	},
	BalloonBomber: {
		{"tn01", 0x0000},
		{"tn02", 0x0800},
		{"tn03", 0x1000},
		{"tn04", 0x1800},
		{"tn05-1", 0x4000},
	},
	LunarRescue: {
		{"lrescue.1", 0x0000},
		{"lrescue.2", 0x0800},
		{"lrescue.3", 0x1000},
		{"lrescue.4", 0x1800},
		{"lrescue.5", 0x4000},
	},
	SpaceInvadersDeluxe: {
		{"invdelux.h", 0x0000},
		{"invdelux.g", 0x0800},
		{"invdelux.f", 0x1000},
		{"invdelux.e", 0x1800},
		{"invdelux.d", 0x4000},
	},
}

// ErrROMMissing is returned when a catalog segment's file cannot be
// read from dir; it carries enough detail for main to log and exit
// non-zero per spec's fatal-error taxonomy.
type ErrROMMissing struct {
	Title Title
	File  string
	Err   error
}

func (e *ErrROMMissing) Error() string {
	return fmt.Sprintf("romset: %s: missing segment %q: %v", e.Title, e.File, e.Err)
}

func (e *ErrROMMissing) Unwrap() error { return e.Err }

// Load reads every segment of title from dir and stamps it into mem at
// its documented offset. It stops at the first missing or unreadable
// file.
func Load(dir string, title Title, mem *cpu8080.Memory) error {
	segments, ok := Catalog[title]
	if !ok {
		return &ErrROMMissing{Title: title, File: "", Err: fmt.Errorf("unknown title %d", title)}
	}
	for _, seg := range segments {
		path := filepath.Join(dir, seg.File)
		data, err := os.ReadFile(path)
		if err != nil {
			log.Error("rom segment missing", "title", title.String(), "file", seg.File, "err", err)
			return &ErrROMMissing{Title: title, File: seg.File, Err: err}
		}
		mem.Load(seg.Offset, data)
	}
	log.Info("rom set loaded", "title", title.String(), "segments", len(segments))
	return nil
}
