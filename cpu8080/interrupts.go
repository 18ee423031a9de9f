package cpu8080

// GenerateInterrupt is the RST-n equivalent the scheduler calls on the
// CPU's behalf at each vertical-blank and mid-screen interrupt, rather
// than waiting for the program to execute an RST instruction itself.
// It pushes PC, vectors to 8*n and disables further interrupts until
// the program re-enables them with EI. Callers are expected to check
// IntEnable themselves before calling; GenerateInterrupt does not.
func GenerateInterrupt(s *State, n int) {
	push16(s, s.PC)
	s.PC = uint16(n) * 8
	s.IntEnable = false
}
