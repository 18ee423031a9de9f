package arcade

import "fmt"

// ErrAudioInit and ErrVideoInit are the fatal subsystem-init failures
// spec.md's error taxonomy names alongside unimplemented opcode and
// missing ROM. main logs and exits non-zero on either.
type ErrAudioInit struct{ Err error }

func (e *ErrAudioInit) Error() string { return fmt.Sprintf("audio init failed: %v", e.Err) }
func (e *ErrAudioInit) Unwrap() error { return e.Err }

type ErrVideoInit struct{ Err error }

func (e *ErrVideoInit) Error() string { return fmt.Sprintf("video init failed: %v", e.Err) }
func (e *ErrVideoInit) Unwrap() error { return e.Err }
