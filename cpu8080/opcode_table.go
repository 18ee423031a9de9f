package cpu8080

// opFunc executes one decoded instruction against s (and ports, for the
// IN/OUT arms) and returns the cycle count the datasheet assigns it.
// The PC has already been read; each opFunc is responsible for
// advancing PC by the instruction's own length.
type opFunc func(s *State, p Ports) (cycles int, err error)

// opcodeTable is the complete 0x00..0xFF dispatch table, built once at
// package init time the way the teacher's CPU_Z80 builds baseOps: loop
// over a mnemonic family's opcode range, close over the decoded operand,
// and assign. Entries left at opUnimplemented are the 8080's five
// undocumented duplicate opcodes (CB, D9, DD, ED, FD), out of scope per
// spec's Non-goals.
var opcodeTable [256]opFunc

func init() {
	for i := range opcodeTable {
		opcodeTable[i] = opUnimplemented
	}

	// NOP and its seven undocumented-but-architecturally-NOP aliases.
	for _, op := range []byte{0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38} {
		opcodeTable[op] = opNOP
	}

	// LXI r16,d16 / INX r16 / DAD r16 / DCX r16 — one loop per family,
	// parameterized by register-pair index 0=BC,1=DE,2=HL,3=SP.
	for rp := byte(0); rp < 4; rp++ {
		rp := rp
		opcodeTable[0x01+rp<<4] = func(s *State, p Ports) (int, error) { return opLXI(s, rp) }
		opcodeTable[0x03+rp<<4] = func(s *State, p Ports) (int, error) { return opINX(s, rp) }
		opcodeTable[0x09+rp<<4] = func(s *State, p Ports) (int, error) { return opDAD(s, rp) }
		opcodeTable[0x0B+rp<<4] = func(s *State, p Ports) (int, error) { return opDCX(s, rp) }
	}

	opcodeTable[0x02] = func(s *State, p Ports) (int, error) { return opSTAX(s, s.BC()) }
	opcodeTable[0x12] = func(s *State, p Ports) (int, error) { return opSTAX(s, s.DE()) }
	opcodeTable[0x0A] = func(s *State, p Ports) (int, error) { return opLDAX(s, s.BC()) }
	opcodeTable[0x1A] = func(s *State, p Ports) (int, error) { return opLDAX(s, s.DE()) }

	opcodeTable[0x22] = func(s *State, p Ports) (int, error) { return opSHLD(s) }
	opcodeTable[0x2A] = func(s *State, p Ports) (int, error) { return opLHLD(s) }
	opcodeTable[0x32] = func(s *State, p Ports) (int, error) { return opSTA(s) }
	opcodeTable[0x3A] = func(s *State, p Ports) (int, error) { return opLDA(s) }

	// INR r / DCR r / MVI r,d8 — one loop covering all eight register
	// slots, including M (the (HL) pseudo-register), via reg code
	// (opcode>>3)&7.
	incDecMvi := []byte{0x04, 0x0C, 0x14, 0x1C, 0x24, 0x2C, 0x34, 0x3C}
	for _, op := range incDecMvi {
		op := op
		reg := (op >> 3) & 0x07
		opcodeTable[op] = func(s *State, p Ports) (int, error) { return opINR(s, reg) }
	}
	dcrOps := []byte{0x05, 0x0D, 0x15, 0x1D, 0x25, 0x2D, 0x35, 0x3D}
	for _, op := range dcrOps {
		op := op
		reg := (op >> 3) & 0x07
		opcodeTable[op] = func(s *State, p Ports) (int, error) { return opDCR(s, reg) }
	}
	mviOps := []byte{0x06, 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x36, 0x3E}
	for _, op := range mviOps {
		op := op
		reg := (op >> 3) & 0x07
		opcodeTable[op] = func(s *State, p Ports) (int, error) { return opMVI(s, reg) }
	}

	opcodeTable[0x07] = func(s *State, p Ports) (int, error) { return opRLC(s) }
	opcodeTable[0x0F] = func(s *State, p Ports) (int, error) { return opRRC(s) }
	opcodeTable[0x17] = func(s *State, p Ports) (int, error) { return opRAL(s) }
	opcodeTable[0x1F] = func(s *State, p Ports) (int, error) { return opRAR(s) }

	opcodeTable[0x27] = func(s *State, p Ports) (int, error) { return opDAA(s) }
	opcodeTable[0x2F] = func(s *State, p Ports) (int, error) { return opCMA(s) }
	opcodeTable[0x37] = func(s *State, p Ports) (int, error) { return opSTC(s) }
	opcodeTable[0x3F] = func(s *State, p Ports) (int, error) { return opCMC(s) }

	// MOV r,r' fills 0x40..0x7F except 0x76 (HLT).
	for op := 0x40; op <= 0x7F; op++ {
		if op == 0x76 {
			continue
		}
		op := byte(op)
		dst := (op >> 3) & 0x07
		src := op & 0x07
		opcodeTable[op] = func(s *State, p Ports) (int, error) { return opMOV(s, dst, src) }
	}
	opcodeTable[0x76] = func(s *State, p Ports) (int, error) { return opHLT(s) }

	// ALU reg families 0x80..0xBF: ADD, ADC, SUB, SBB, ANA, XRA, ORA, CMP.
	aluFamilies := []struct {
		base byte
		fn   func(s *State, v byte)
	}{
		{0x80, aluADD}, {0x88, aluADC}, {0x90, aluSUB}, {0x98, aluSBB},
		{0xA0, aluANA}, {0xA8, aluXRA}, {0xB0, aluORA}, {0xB8, aluCMP},
	}
	for _, fam := range aluFamilies {
		fam := fam
		for src := byte(0); src < 8; src++ {
			src := src
			opcodeTable[fam.base+src] = func(s *State, p Ports) (int, error) {
				v := readReg8(s, src)
				fam.fn(s, v)
				cycles := 4
				if src == 6 {
					cycles = 7
				}
				return cycles, nil
			}
		}
	}

	// ALU immediate forms.
	aluImm := []struct {
		op byte
		fn func(s *State, v byte)
	}{
		{0xC6, aluADD}, {0xCE, aluADC}, {0xD6, aluSUB}, {0xDE, aluSBB},
		{0xE6, aluANA}, {0xEE, aluXRA}, {0xF6, aluORA}, {0xFE, aluCMP},
	}
	for _, e := range aluImm {
		e := e
		opcodeTable[e.op] = func(s *State, p Ports) (int, error) {
			v := s.Mem.Read(s.PC + 1)
			s.PC += 2
			e.fn(s, v)
			return 7, nil
		}
	}

	// Conditional RET / JMP / CALL — one loop over the eight condition
	// codes, whose encoding already matches the opcode's cc field.
	for cc := byte(0); cc < 8; cc++ {
		cc := cc
		opcodeTable[0xC0+cc<<3] = func(s *State, p Ports) (int, error) { return opRETcc(s, cc) }
		opcodeTable[0xC2+cc<<3] = func(s *State, p Ports) (int, error) { return opJMPcc(s, cc) }
		opcodeTable[0xC4+cc<<3] = func(s *State, p Ports) (int, error) { return opCALLcc(s, cc) }
	}

	opcodeTable[0xC3] = func(s *State, p Ports) (int, error) { return opJMP(s) }
	opcodeTable[0xCD] = func(s *State, p Ports) (int, error) { return opCALL(s) }
	opcodeTable[0xC9] = func(s *State, p Ports) (int, error) { return opRET(s) }

	for rp := byte(0); rp < 4; rp++ {
		rp := rp
		opcodeTable[0xC5+rp<<4] = func(s *State, p Ports) (int, error) { return opPUSH(s, rp) }
		opcodeTable[0xC1+rp<<4] = func(s *State, p Ports) (int, error) { return opPOP(s, rp) }
	}

	for n := byte(0); n < 8; n++ {
		n := n
		opcodeTable[0xC7+n<<3] = func(s *State, p Ports) (int, error) { return opRST(s, n) }
	}

	opcodeTable[0xEB] = func(s *State, p Ports) (int, error) { return opXCHG(s) }
	opcodeTable[0xE3] = func(s *State, p Ports) (int, error) { return opXTHL(s) }
	opcodeTable[0xE9] = func(s *State, p Ports) (int, error) { return opPCHL(s) }
	opcodeTable[0xF9] = func(s *State, p Ports) (int, error) { return opSPHL(s) }

	opcodeTable[0xDB] = func(s *State, p Ports) (int, error) { return opIN(s, p) }
	opcodeTable[0xD3] = func(s *State, p Ports) (int, error) { return opOUT(s, p) }

	opcodeTable[0xFB] = func(s *State, p Ports) (int, error) { return opEI(s) }
	opcodeTable[0xF3] = func(s *State, p Ports) (int, error) { return opDI(s) }
}

// Step decodes and executes the instruction at PC, returning the
// cycles it consumed. A Fault is returned (never a generic error) for
// an unimplemented opcode.
func Step(s *State, p Ports) (int, error) {
	opcode := s.Mem.Read(s.PC)
	return opcodeTable[opcode](s, p)
}

func opUnimplemented(s *State, p Ports) (int, error) {
	return 0, newFault(s.PC, s.Mem.Read(s.PC), "unimplemented opcode")
}
