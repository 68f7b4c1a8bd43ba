package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"i8080/mem"
	"i8080/opcodes"
)

func newTestCpu() (*Cpu, *mem.FlatRAM) {
	bus, ram := mem.NewFlatBus()
	return New(bus), ram
}

func TestAllOpcodesDispatchWithoutPanicking(t *testing.T) {
	for op := range 256 {
		c, ram := newTestCpu()
		c.PC = 0x0100
		// Feed enough trailing zero bytes for any operand-bearing opcode.
		ram.RAM[0x0100] = byte(op)

		assert.NotPanics(t, func() {
			c.Step()
		}, "opcode %#02x panicked", op)

		// Conditional CALL/RET add 6 cycles on top of the table's base
		// (not-taken) figure when the branch is actually taken, so the
		// cycle count can only ever be at least the table entry.
		entry := opcodes.Table[op]
		assert.GreaterOrEqual(t, c.Cycles, uint64(entry.Cycles), "opcode %#02x cycle count", op)
	}
}

func TestMVIAndMOV(t *testing.T) {
	c, ram := newTestCpu()
	ram.RAM[0x0000] = 0x06 // MVI B,0x42
	ram.RAM[0x0001] = 0x42
	ram.RAM[0x0002] = 0x78 // MOV A,B

	c.Step()
	assert.Equal(t, byte(0x42), c.B)

	c.Step()
	assert.Equal(t, byte(0x42), c.A)
}

func TestAddSetsCarryAndAux(t *testing.T) {
	c, _ := newTestCpu()
	c.A = 0xFF
	c.opAdd(0x01, 0)
	assert.Equal(t, byte(0x00), c.A)
	assert.True(t, c.Flags.Z)
	assert.True(t, c.Flags.C)
	assert.True(t, c.Flags.A)
}

func TestSubBorrow(t *testing.T) {
	c, _ := newTestCpu()
	c.A = 0x00
	c.opSub(0x01, 0)
	assert.Equal(t, byte(0xFF), c.A)
	assert.True(t, c.Flags.C) // borrow
}

// TestAnaAuxCarryQuirk checks the 8080's documented ANA aux-carry rule: AC
// comes from the OR of the operands' bit 3, not the AND.
func TestAnaAuxCarryQuirk(t *testing.T) {
	c, _ := newTestCpu()
	c.A = 0xFC
	c.opAna(0x0F)
	assert.Equal(t, byte(0x0C), c.A)
	assert.True(t, c.Flags.A)
	assert.False(t, c.Flags.C)
}

func TestDaaPacksBcd(t *testing.T) {
	c, _ := newTestCpu()
	c.A = 0x3A
	c.opDaa()
	assert.Equal(t, byte(0x40), c.A)
	assert.False(t, c.Flags.C)
}

func TestDadCarry(t *testing.T) {
	c, _ := newTestCpu()
	c.setHL(0xFFFF)
	c.setBC(0x0001)
	c.opDad(c.bc())
	assert.Equal(t, uint16(0x0000), c.hl())
	assert.True(t, c.Flags.C)
}

func TestPushPopPSWRoundTrip(t *testing.T) {
	c, _ := newTestCpu()
	c.SP = 0xFFFE
	c.A = 0x5A
	c.Flags = Flags{S: true, Z: false, A: true, P: true, C: true}

	c.pushPSW()
	c.A = 0
	c.Flags = Flags{}
	c.popPSW()

	assert.Equal(t, byte(0x5A), c.A)
	assert.Equal(t, Flags{S: true, Z: false, A: true, P: true, C: true}, c.Flags)
}

func TestRst3PushesReturnAddressAndJumps(t *testing.T) {
	c, ram := newTestCpu()
	c.SP = 0x2400
	c.PC = 0x2000
	ram.RAM[0x2000] = 0xDF // RST 3

	c.Step()

	assert.Equal(t, uint16(0x0018), c.PC)
	assert.Equal(t, uint16(0x23FE), c.SP)
	assert.Equal(t, uint16(0x2001), c.readWord(c.SP))
}

// TestEiDelaysInterruptRecognitionByOneInstruction verifies that an
// interrupt requested right after EI is not serviced until after the
// following instruction has executed.
func TestEiDelaysInterruptRecognitionByOneInstruction(t *testing.T) {
	c, ram := newTestCpu()
	ram.RAM[0x0000] = 0xFB // EI
	ram.RAM[0x0001] = 0x00 // NOP

	c.Step() // EI
	c.RequestInterrupt(0xC7) // RST 0
	c.Step()                 // must execute the NOP, not the interrupt

	assert.Equal(t, uint16(0x0002), c.PC)

	c.Step() // now the interrupt is recognised
	assert.Equal(t, uint16(0x0000), c.PC)
}

func TestHaltedCpuWakesOnInterrupt(t *testing.T) {
	c, ram := newTestCpu()
	ram.RAM[0x0000] = 0x76 // HLT
	c.Step()
	assert.True(t, c.Halted)

	c.Inte = true
	c.RequestInterrupt(0xCF) // RST 1
	c.Step()

	assert.False(t, c.Halted)
	assert.Equal(t, uint16(0x0008), c.PC)
}

func TestConditionalJumpAlwaysConsumesOperand(t *testing.T) {
	c, ram := newTestCpu()
	ram.RAM[0x0000] = 0xC2 // JNZ
	ram.RAM[0x0001] = 0x34
	ram.RAM[0x0002] = 0x12
	c.Flags.Z = true // condition false: must not jump, but must still skip operand

	c.Step()

	assert.Equal(t, uint16(0x0003), c.PC)
}
