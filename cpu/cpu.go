// Package cpu implements the Intel 8080 microprocessor: register file,
// flag logic, 256-entry opcode dispatch, and the interrupt acknowledgement
// sequence.
//
// The Cpu owns none of its own memory. Every byte it touches — instruction
// fetch, operand fetch, data access, device I/O — goes through a caller
// supplied mem.Bus.
package cpu

import (
	"fmt"
	"io"

	"i8080/mem"
	"i8080/opcodes"
)

// Flags are the five observable condition bits of the 8080.
type Flags struct {
	S bool // sign
	Z bool // zero
	A bool // auxiliary carry
	P bool // parity (even)
	C bool // carry
}

// Cpu holds the complete architectural state of an Intel 8080.
type Cpu struct {
	Bus *mem.Bus

	A, B, C, D, E, H, L byte

	PC, SP uint16

	Flags Flags

	Inte             bool // interrupt-enable flip-flop
	interruptPending bool
	interruptOpcode  byte
	interruptDelay   bool
	Halted           bool

	Cycles uint64
}

// parityTable holds even-parity for every byte value, computed once. The
// 8080's P flag is set whenever the result of an operation has an even
// number of 1 bits.
var parityTable [256]bool

func init() {
	for i := range 256 {
		ones := 0
		for b := range 8 {
			if (i>>b)&1 == 1 {
				ones++
			}
		}
		parityTable[i] = ones%2 == 0
	}
}

// New returns a zeroed Cpu wired to the given bus.
func New(bus *mem.Bus) *Cpu {
	c := &Cpu{}
	c.Init()
	c.Bus = bus
	return c
}

// Init zeroes all architectural state: registers, flags, PC, SP, cycle
// counter, and clears halted/INTE/interrupt-pending.
func (c *Cpu) Init() {
	c.A, c.B, c.C, c.D, c.E, c.H, c.L = 0, 0, 0, 0, 0, 0, 0
	c.PC, c.SP = 0, 0
	c.Flags = Flags{}
	c.Inte = false
	c.interruptPending = false
	c.interruptOpcode = 0
	c.interruptDelay = false
	c.Halted = false
	c.Cycles = 0
}

// RequestInterrupt latches a pending interrupt whose delivery will inject
// the given opcode (typically an RST n or a CALL instruction).
func (c *Cpu) RequestInterrupt(opcode byte) {
	c.interruptPending = true
	c.interruptOpcode = opcode
}

func (c *Cpu) readByte(addr uint16) byte {
	return c.Bus.ReadByte(c.Bus.UserData, addr)
}

func (c *Cpu) writeByte(addr uint16, val byte) {
	c.Bus.WriteByte(c.Bus.UserData, addr, val)
}

func (c *Cpu) readWord(addr uint16) uint16 {
	return c.Bus.ReadWord(addr)
}

func (c *Cpu) writeWord(addr uint16, w uint16) {
	c.Bus.WriteWord(addr, w)
}

// nextByte reads the byte at PC and advances PC by one.
func (c *Cpu) nextByte() byte {
	b := c.readByte(c.PC)
	c.PC++
	return b
}

// nextWord reads the word at PC and advances PC by two.
func (c *Cpu) nextWord() uint16 {
	w := c.readWord(c.PC)
	c.PC += 2
	return w
}

// Step performs exactly one unit of progress: it either recognises a
// pending interrupt, fetches and dispatches the next opcode, or — if
// halted with nothing to recognise — does nothing.
func (c *Cpu) Step() {
	switch {
	case c.interruptPending && c.Inte && !c.interruptDelay:
		c.interruptPending = false
		c.Inte = false
		c.Halted = false
		// The interrupt-injected opcode is not read from memory, so PC
		// is not advanced before dispatch.
		c.execNext(c.interruptOpcode)
	case !c.Halted:
		c.execNext(c.nextByte())
	}
}

// execNext dispatches a single opcode byte, already consumed from the
// instruction stream (or injected by an interrupt).
func (c *Cpu) execNext(opcode byte) {
	c.Cycles += uint64(opcodes.Table[opcode].Cycles)

	if c.interruptDelay {
		c.interruptDelay = false
	}

	c.dispatch(opcode)
}

// PrintState writes a diagnostic dump of the Cpu's architectural state.
func (c *Cpu) PrintState(w io.Writer) {
	fmt.Fprintf(w,
		"a:0x%02x, b:0x%02x, c:0x%02x, d:0x%02x, e:0x%02x, h:0x%02x, l:0x%02x\n"+
			"bc:0x%04x, de:0x%04x, hl:0x%04x\n"+
			"pc:0x%04x, sp:0x%04x\n"+
			"s:%v, z:%v, a:%v, p:%v, c:%v\n"+
			"inte:%v, interrupt_pending:%v, interrupt_opcode:0x%02x\n"+
			"halted:%v\n"+
			"cycles:%d\n",
		c.A, c.B, c.C, c.D, c.E, c.H, c.L,
		c.bc(), c.de(), c.hl(),
		c.PC, c.SP,
		c.Flags.S, c.Flags.Z, c.Flags.A, c.Flags.P, c.Flags.C,
		c.Inte, c.interruptPending, c.interruptOpcode,
		c.Halted,
		c.Cycles,
	)
}
