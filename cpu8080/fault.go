package cpu8080

import (
	"fmt"
	"log/slog"
)

var log = slog.Default().With("component", "cpu")

// Fault is the distinguished fatal error the interpreter raises for an
// unimplemented opcode (including HLT, which spec.md treats as
// unimplemented) or an out-of-range port access. No error propagates
// across the interpreter boundary except this one; there is no
// recoverable error taxonomy in the core.
type Fault struct {
	PC     uint16
	Opcode byte
	Reason string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s: opcode %#02x at pc %#04x", f.Reason, f.Opcode, f.PC)
}

// newFault logs the opcode and PC (spec's own requirement for unknown-
// opcode behavior) and builds the Fault the caller returns.
func newFault(pc uint16, opcode byte, reason string) *Fault {
	log.Error("fault", "pc", pc, "opcode", opcode, "reason", reason)
	return &Fault{PC: pc, Opcode: opcode, Reason: reason}
}
