package cpu8080

// Register-operand encoding shared by MOV, the ALU reg forms, INR/DCR
// and MVI: 0=B,1=C,2=D,3=E,4=H,5=L,6=M (memory[HL]),7=A.
func readReg8(s *State, code byte) byte {
	switch code {
	case 0:
		return s.B
	case 1:
		return s.C
	case 2:
		return s.D
	case 3:
		return s.E
	case 4:
		return s.H
	case 5:
		return s.L
	case 6:
		return s.M()
	default:
		return s.A
	}
}

func writeReg8(s *State, code byte, v byte) {
	switch code {
	case 0:
		s.B = v
	case 1:
		s.C = v
	case 2:
		s.D = v
	case 3:
		s.E = v
	case 4:
		s.H = v
	case 5:
		s.L = v
	case 6:
		s.SetM(v)
	default:
		s.A = v
	}
}

func imm16(s *State) uint16 {
	lo := s.Mem.Read(s.PC + 1)
	hi := s.Mem.Read(s.PC + 2)
	return uint16(hi)<<8 | uint16(lo)
}

// rp16 reads register-pair rp (0=BC,1=DE,2=HL,3=SP), the encoding
// shared by LXI/INX/DCX/DAD/PUSH/POP.
func rp16(s *State, rp byte) uint16 {
	switch rp {
	case 0:
		return s.BC()
	case 1:
		return s.DE()
	case 2:
		return s.HL()
	default:
		return s.SP
	}
}

func setRP16(s *State, rp byte, v uint16) {
	switch rp {
	case 0:
		s.SetBC(v)
	case 1:
		s.SetDE(v)
	case 2:
		s.SetHL(v)
	default:
		s.SP = v
	}
}

func opNOP(s *State, p Ports) (int, error) {
	s.PC++
	return 4, nil
}

func opLXI(s *State, rp byte) (int, error) {
	setRP16(s, rp, imm16(s))
	s.PC += 3
	return 10, nil
}

func opSTAX(s *State, addr uint16) (int, error) {
	s.Mem.Write(addr, s.A)
	s.PC++
	return 7, nil
}

func opLDAX(s *State, addr uint16) (int, error) {
	s.A = s.Mem.Read(addr)
	s.PC++
	return 7, nil
}

func opSHLD(s *State) (int, error) {
	addr := imm16(s)
	s.Mem.Write(addr, s.L)
	s.Mem.Write(addr+1, s.H)
	s.PC += 3
	return 16, nil
}

func opLHLD(s *State) (int, error) {
	addr := imm16(s)
	s.L = s.Mem.Read(addr)
	s.H = s.Mem.Read(addr + 1)
	s.PC += 3
	return 16, nil
}

func opSTA(s *State) (int, error) {
	s.Mem.Write(imm16(s), s.A)
	s.PC += 3
	return 13, nil
}

func opLDA(s *State) (int, error) {
	s.A = s.Mem.Read(imm16(s))
	s.PC += 3
	return 13, nil
}

func opMVI(s *State, reg byte) (int, error) {
	v := s.Mem.Read(s.PC + 1)
	writeReg8(s, reg, v)
	s.PC += 2
	if reg == 6 {
		return 10, nil
	}
	return 7, nil
}

func opMOV(s *State, dst, src byte) (int, error) {
	writeReg8(s, dst, readReg8(s, src))
	s.PC++
	if dst == 6 || src == 6 {
		return 7, nil
	}
	return 5, nil
}

func opXCHG(s *State) (int, error) {
	s.H, s.D = s.D, s.H
	s.L, s.E = s.E, s.L
	s.PC++
	return 5, nil
}

func opXTHL(s *State) (int, error) {
	lo := s.Mem.Read(s.SP)
	hi := s.Mem.Read(s.SP + 1)
	s.Mem.Write(s.SP, s.L)
	s.Mem.Write(s.SP+1, s.H)
	s.L, s.H = lo, hi
	s.PC++
	return 18, nil
}

func opPCHL(s *State) (int, error) {
	s.PC = s.HL()
	return 5, nil
}

func opSPHL(s *State) (int, error) {
	s.SP = s.HL()
	s.PC++
	return 5, nil
}

func opHLT(s *State) (int, error) {
	return 0, newFault(s.PC, 0x76, "HLT is unimplemented")
}
