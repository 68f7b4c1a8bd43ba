package disasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisassembleOrdersByAddress(t *testing.T) {
	// LXI B,1234h ; MVI A,42h ; NOP
	program := []byte{0x01, 0x34, 0x12, 0x3E, 0x42, 0x00}

	d := Disassemble(program, len(program), 0x0000)

	assert.True(t, d.IsValid())
	ops := d.Ops()
	assert.Len(t, ops, 3)
	assert.Equal(t, uint16(0x0000), ops[0].Addr)
	assert.Equal(t, uint16(0x0003), ops[1].Addr)
	assert.Equal(t, uint16(0x0005), ops[2].Addr)
	for i, op := range ops {
		assert.Equal(t, i, op.Index)
	}
}

func TestDisassembleEmptyImageIsInvalid(t *testing.T) {
	d := Disassemble(nil, 0, 0)
	assert.False(t, d.IsValid())
}

func TestFindByAddress(t *testing.T) {
	program := []byte{0x01, 0x34, 0x12, 0x3E, 0x42, 0x00}
	d := Disassemble(program, len(program), 0x1000)

	op, ok := d.Find(0x1003)
	assert.True(t, ok)
	assert.Equal(t, "mvi a,%02x", op.Entry.Mnemonic)

	_, ok = d.Find(0x1001) // mid-instruction, not a decode boundary
	assert.False(t, ok)
}

func TestListWindowsAroundAddressAndClamps(t *testing.T) {
	program := []byte{0x00, 0x00, 0x00, 0x00, 0x00} // 5 NOPs
	d := Disassemble(program, len(program), 0x0000)

	ops := d.List(0x0000, 4)
	assert.Equal(t, uint16(0x0000), ops[0].Addr)
	assert.LessOrEqual(t, len(ops), 5)

	ops = d.List(0x0004, 4)
	assert.Equal(t, uint16(0x0004), ops[len(ops)-1].Addr)
}

func TestStringRendersOperandAndCondBits(t *testing.T) {
	program := []byte{0x3E, 0x42} // MVI A,42h
	d := Disassemble(program, len(program), 0x0000)

	op, ok := d.Find(0x0000)
	assert.True(t, ok)

	s := d.String(op)
	assert.Contains(t, s, "0000")
	assert.Contains(t, s, "mvi a,42")
	assert.Contains(t, s, "condbits: none")
	assert.Contains(t, s, "description:")
}
