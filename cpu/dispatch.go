package cpu

// dispatch executes the single instruction named by opcode. It is a dense
// switch over all 256 byte values, including the undocumented duplicate
// encodings (0x08/0x10/0x18/0x20/0x28/0x30/0x38 as NOP, 0xCB as JMP, 0xD9 as
// RET, 0xDD/0xED/0xFD as CALL).
func (c *Cpu) dispatch(opcode byte) {
	switch opcode {

	case 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38: // NOP (+ dupes)

	case 0x37: // STC
		c.Flags.C = true
	case 0x3F: // CMC
		c.Flags.C = !c.Flags.C
	case 0x2F: // CMA
		c.A = ^c.A

	case 0x27: // DAA
		c.opDaa()

	// INR r
	case 0x04:
		c.B = c.opInr(c.B)
	case 0x0C:
		c.C = c.opInr(c.C)
	case 0x14:
		c.D = c.opInr(c.D)
	case 0x1C:
		c.E = c.opInr(c.E)
	case 0x24:
		c.H = c.opInr(c.H)
	case 0x2C:
		c.L = c.opInr(c.L)
	case 0x34:
		c.writeByte(c.hl(), c.opInr(c.readByte(c.hl())))
	case 0x3C:
		c.A = c.opInr(c.A)

	// DCR r
	case 0x05:
		c.B = c.opDcr(c.B)
	case 0x0D:
		c.C = c.opDcr(c.C)
	case 0x15:
		c.D = c.opDcr(c.D)
	case 0x1D:
		c.E = c.opDcr(c.E)
	case 0x25:
		c.H = c.opDcr(c.H)
	case 0x2D:
		c.L = c.opDcr(c.L)
	case 0x35:
		c.writeByte(c.hl(), c.opDcr(c.readByte(c.hl())))
	case 0x3D:
		c.A = c.opDcr(c.A)

	// MVI r,d8
	case 0x06:
		c.B = c.nextByte()
	case 0x0E:
		c.C = c.nextByte()
	case 0x16:
		c.D = c.nextByte()
	case 0x1E:
		c.E = c.nextByte()
	case 0x26:
		c.H = c.nextByte()
	case 0x2E:
		c.L = c.nextByte()
	case 0x36:
		c.writeByte(c.hl(), c.nextByte())
	case 0x3E:
		c.A = c.nextByte()

	// LXI rp,d16
	case 0x01:
		c.setBC(c.nextWord())
	case 0x11:
		c.setDE(c.nextWord())
	case 0x21:
		c.setHL(c.nextWord())
	case 0x31:
		c.SP = c.nextWord()

	// INX rp
	case 0x03:
		c.setBC(c.bc() + 1)
	case 0x13:
		c.setDE(c.de() + 1)
	case 0x23:
		c.setHL(c.hl() + 1)
	case 0x33:
		c.SP++

	// DCX rp
	case 0x0B:
		c.setBC(c.bc() - 1)
	case 0x1B:
		c.setDE(c.de() - 1)
	case 0x2B:
		c.setHL(c.hl() - 1)
	case 0x3B:
		c.SP--

	// DAD rp
	case 0x09:
		c.opDad(c.bc())
	case 0x19:
		c.opDad(c.de())
	case 0x29:
		c.opDad(c.hl())
	case 0x39:
		c.opDad(c.SP)

	// STAX / LDAX
	case 0x02:
		c.writeByte(c.bc(), c.A)
	case 0x12:
		c.writeByte(c.de(), c.A)
	case 0x0A:
		c.A = c.readByte(c.bc())
	case 0x1A:
		c.A = c.readByte(c.de())

	case 0x32: // STA a16
		c.writeByte(c.nextWord(), c.A)
	case 0x3A: // LDA a16
		c.A = c.readByte(c.nextWord())
	case 0x22: // SHLD a16
		c.writeWord(c.nextWord(), c.hl())
	case 0x2A: // LHLD a16
		c.setHL(c.readWord(c.nextWord()))

	case 0xEB: // XCHG
		c.setHL2DE()
	case 0xE3: // XTHL
		val := c.readWord(c.SP)
		c.writeWord(c.SP, c.hl())
		c.setHL(val)
	case 0xF9: // SPHL
		c.SP = c.hl()
	case 0xE9: // PCHL
		c.PC = c.hl()

	case 0x07: // RLC
		c.opRlc()
	case 0x0F: // RRC
		c.opRrc()
	case 0x17: // RAL
		c.opRal()
	case 0x1F: // RAR
		c.opRar()

	// PUSH / POP
	case 0xC5:
		c.stackPush(c.bc())
	case 0xD5:
		c.stackPush(c.de())
	case 0xE5:
		c.stackPush(c.hl())
	case 0xF5:
		c.pushPSW()
	case 0xC1:
		c.setBC(c.stackPop())
	case 0xD1:
		c.setDE(c.stackPop())
	case 0xE1:
		c.setHL(c.stackPop())
	case 0xF1:
		c.popPSW()

	case 0x76: // HLT
		c.Halted = true

	case 0xFB: // EI
		c.Inte = true
		c.interruptDelay = true
	case 0xF3: // DI
		c.Inte = false

	case 0xDB: // IN p8
		c.A = c.Bus.ReadDevice(c.Bus.UserData, c.nextByte())
	case 0xD3: // OUT p8
		c.Bus.WriteDevice(c.Bus.UserData, c.nextByte(), c.A)

	// Unconditional jump/call/return (+ undocumented duplicate encodings)
	case 0xC3, 0xCB: // JMP
		c.PC = c.nextWord()
	case 0xCD, 0xDD, 0xED, 0xFD: // CALL
		c.opCall(c.nextWord())
	case 0xC9, 0xD9: // RET
		c.PC = c.stackPop()

	// Conditional jumps — the operand word is always consumed.
	case 0xC2:
		c.opJmpCond(c.nextWord(), !c.Flags.Z)
	case 0xCA:
		c.opJmpCond(c.nextWord(), c.Flags.Z)
	case 0xD2:
		c.opJmpCond(c.nextWord(), !c.Flags.C)
	case 0xDA:
		c.opJmpCond(c.nextWord(), c.Flags.C)
	case 0xE2:
		c.opJmpCond(c.nextWord(), !c.Flags.P)
	case 0xEA:
		c.opJmpCond(c.nextWord(), c.Flags.P)
	case 0xF2:
		c.opJmpCond(c.nextWord(), !c.Flags.S)
	case 0xFA:
		c.opJmpCond(c.nextWord(), c.Flags.S)

	// Conditional calls
	case 0xC4:
		c.opCallCond(c.nextWord(), !c.Flags.Z)
	case 0xCC:
		c.opCallCond(c.nextWord(), c.Flags.Z)
	case 0xD4:
		c.opCallCond(c.nextWord(), !c.Flags.C)
	case 0xDC:
		c.opCallCond(c.nextWord(), c.Flags.C)
	case 0xE4:
		c.opCallCond(c.nextWord(), !c.Flags.P)
	case 0xEC:
		c.opCallCond(c.nextWord(), c.Flags.P)
	case 0xF4:
		c.opCallCond(c.nextWord(), !c.Flags.S)
	case 0xFC:
		c.opCallCond(c.nextWord(), c.Flags.S)

	// Conditional returns
	case 0xC0:
		c.opRetCond(!c.Flags.Z)
	case 0xC8:
		c.opRetCond(c.Flags.Z)
	case 0xD0:
		c.opRetCond(!c.Flags.C)
	case 0xD8:
		c.opRetCond(c.Flags.C)
	case 0xE0:
		c.opRetCond(!c.Flags.P)
	case 0xE8:
		c.opRetCond(c.Flags.P)
	case 0xF0:
		c.opRetCond(!c.Flags.S)
	case 0xF8:
		c.opRetCond(c.Flags.S)

	// RST 0-7
	case 0xC7:
		c.opCall(0x00)
	case 0xCF:
		c.opCall(0x08)
	case 0xD7:
		c.opCall(0x10)
	case 0xDF:
		c.opCall(0x18)
	case 0xE7:
		c.opCall(0x20)
	case 0xEF:
		c.opCall(0x28)
	case 0xF7:
		c.opCall(0x30)
	case 0xFF:
		c.opCall(0x38)

	// ADI/ACI/SUI/SBI/ANI/XRI/ORI/CPI
	case 0xC6:
		c.opAdd(c.nextByte(), 0)
	case 0xCE:
		c.opAdd(c.nextByte(), b2u8(c.Flags.C))
	case 0xD6:
		c.opSub(c.nextByte(), 0)
	case 0xDE:
		c.opSub(c.nextByte(), b2u8(c.Flags.C))
	case 0xE6:
		c.opAna(c.nextByte())
	case 0xEE:
		c.opXra(c.nextByte())
	case 0xF6:
		c.opOra(c.nextByte())
	case 0xFE:
		c.opCmp(c.nextByte())

	default:
		c.dispatchRegisterOps(opcode)
	}
}

// setHL2DE swaps the contents of the HL and DE register pairs (XCHG).
func (c *Cpu) setHL2DE() {
	h, l := c.H, c.L
	c.H, c.L = c.D, c.E
	c.D, c.E = h, l
}
