package cpu8080

// Ports is the machine-harness seam the interpreter calls into for
// IN/OUT instead of handling them as ordinary memory accesses. The
// arcade package's Machine implements it; cpu8080 never imports arcade
// (the dependency runs the other way), so the interpreter stays usable
// standalone (e.g. against CPUDIAG) with a no-op Ports.
//
// In returns an error for a port the harness doesn't map, so an
// unmapped IN can terminate the interpreter through the same Fault
// discipline as an unimplemented opcode; Out has no such arm (every
// unmapped OUT is a documented no-op).
type Ports interface {
	In(port byte) (byte, error)
	Out(port byte, v byte)
}

// NullPorts answers 0 to every IN and discards every OUT. It is useful
// for running CPU-only diagnostics (CPUDIAG) that never touch I/O.
type NullPorts struct{}

func (NullPorts) In(byte) (byte, error) { return 0, nil }
func (NullPorts) Out(byte, byte)        {}
