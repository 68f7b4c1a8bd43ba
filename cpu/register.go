package cpu

// dispatchRegisterOps handles the two regularly-encoded instruction blocks:
// MOV r,r (0x40-0x7F, minus 0x76=HLT already handled) and the eight
// accumulator ALU ops against a register operand (0x80-0xBF). Both blocks
// share the same 3-bit register field encoding in their low 3 (and, for
// MOV, middle 3) bits, so they're handled by indexing into the register
// file rather than by 120-odd individual cases.
func (c *Cpu) dispatchRegisterOps(opcode byte) {
	switch {
	case opcode >= 0x40 && opcode <= 0x7F:
		dst := (opcode >> 3) & 0x07
		src := opcode & 0x07
		c.setReg(dst, c.reg(src))

	case opcode >= 0x80 && opcode <= 0xBF:
		val := c.reg(opcode & 0x07)
		switch (opcode >> 3) & 0x07 {
		case 0: // ADD
			c.opAdd(val, 0)
		case 1: // ADC
			c.opAdd(val, b2u8(c.Flags.C))
		case 2: // SUB
			c.opSub(val, 0)
		case 3: // SBB
			c.opSub(val, b2u8(c.Flags.C))
		case 4: // ANA
			c.opAna(val)
		case 5: // XRA
			c.opXra(val)
		case 6: // ORA
			c.opOra(val)
		case 7: // CMP
			c.opCmp(val)
		}

	default:
		panic("cpu: unreachable opcode in dispatchRegisterOps")
	}
}

// reg reads one of the eight 3-bit-encoded register operands: B C D E H L M A.
func (c *Cpu) reg(idx byte) byte {
	switch idx {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.readByte(c.hl())
	default:
		return c.A
	}
}

// setReg writes one of the eight 3-bit-encoded register operands.
func (c *Cpu) setReg(idx byte, val byte) {
	switch idx {
	case 0:
		c.B = val
	case 1:
		c.C = val
	case 2:
		c.D = val
	case 3:
		c.E = val
	case 4:
		c.H = val
	case 5:
		c.L = val
	case 6:
		c.writeByte(c.hl(), val)
	default:
		c.A = val
	}
}
