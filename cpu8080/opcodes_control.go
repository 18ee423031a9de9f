package cpu8080

// testCC evaluates one of the eight condition codes embedded in the
// conditional JMP/CALL/RET opcodes: 0=NZ,1=Z,2=NC,3=C,4=PO,5=PE,6=P,7=M.
func testCC(s *State, cc byte) bool {
	switch cc {
	case 0:
		return !s.Flags.Z
	case 1:
		return s.Flags.Z
	case 2:
		return !s.Flags.CY
	case 3:
		return s.Flags.CY
	case 4:
		return !s.Flags.P
	case 5:
		return s.Flags.P
	case 6:
		return !s.Flags.S
	default:
		return s.Flags.S
	}
}

func push16(s *State, v uint16) {
	s.SP -= 2
	s.Mem.Write(s.SP, byte(v))
	s.Mem.Write(s.SP+1, byte(v>>8))
}

func pop16(s *State) uint16 {
	v := uint16(s.Mem.Read(s.SP)) | uint16(s.Mem.Read(s.SP+1))<<8
	s.SP += 2
	return v
}

func opJMP(s *State) (int, error) {
	s.PC = imm16(s)
	return 10, nil
}

func opJMPcc(s *State, cc byte) (int, error) {
	target := imm16(s)
	if testCC(s, cc) {
		s.PC = target
	} else {
		s.PC += 3
	}
	return 10, nil
}

func opCALL(s *State) (int, error) {
	target := imm16(s)
	push16(s, s.PC+3)
	s.PC = target
	return 17, nil
}

func opCALLcc(s *State, cc byte) (int, error) {
	target := imm16(s)
	if testCC(s, cc) {
		push16(s, s.PC+3)
		s.PC = target
		return 17, nil
	}
	s.PC += 3
	return 11, nil
}

func opRET(s *State) (int, error) {
	s.PC = pop16(s)
	return 10, nil
}

func opRETcc(s *State, cc byte) (int, error) {
	if testCC(s, cc) {
		s.PC = pop16(s)
		return 11, nil
	}
	s.PC++
	return 5, nil
}

// opPUSH and opPOP special-case rp==3 to mean PSW (A and packed flags)
// rather than SP, the encoding PUSH/POP share with LXI/DAD/etc except
// for that one slot.
func opPUSH(s *State, rp byte) (int, error) {
	if rp == 3 {
		push16(s, uint16(s.A)<<8|uint16(packFlags(s.Flags)))
	} else {
		push16(s, rp16(s, rp))
	}
	s.PC++
	return 11, nil
}

func opPOP(s *State, rp byte) (int, error) {
	v := pop16(s)
	if rp == 3 {
		s.A = byte(v >> 8)
		s.Flags = unpackFlags(byte(v))
	} else {
		setRP16(s, rp, v)
	}
	s.PC++
	return 10, nil
}

func opRST(s *State, n byte) (int, error) {
	push16(s, s.PC+1)
	s.PC = uint16(n) * 8
	return 11, nil
}

func opIN(s *State, p Ports) (int, error) {
	port := s.Mem.Read(s.PC + 1)
	v, err := p.In(port)
	if err != nil {
		return 0, newFault(s.PC, 0xDB, err.Error())
	}
	s.A = v
	s.PC += 2
	return 10, nil
}

func opOUT(s *State, p Ports) (int, error) {
	port := s.Mem.Read(s.PC + 1)
	p.Out(port, s.A)
	s.PC += 2
	return 10, nil
}

func opEI(s *State) (int, error) {
	s.IntEnable = true
	s.PC++
	return 4, nil
}

func opDI(s *State) (int, error) {
	s.IntEnable = false
	s.PC++
	return 4, nil
}
