// Package disasm implements a static disassembler for Intel 8080 machine
// code, sharing its instruction table with package cpu.
//
// Disassemble performs one linear sweep over the image, producing a
// strictly address-ordered, immutable slice of Ops that Find locates by
// binary search and List windows around.
package disasm

import (
	"fmt"
	"sort"

	"i8080/opcodes"
)

// Op is one decoded instruction: its opcode table entry, the address it
// was found at, and its index into the owning Disassembly's Ops slice.
type Op struct {
	Entry opcodes.Entry
	Addr  uint16
	Index int
}

// Disassembly is the immutable result of disassembling one program image.
// Its fields are unexported; callers reach decoded instructions only
// through Find, List, and Ops.
type Disassembly struct {
	memory []byte
	origin uint16
	ops    []Op
}

// IsValid reports whether d is a usable disassembly. A nil *Disassembly —
// the result of disassembling an empty image — is not valid.
func (d *Disassembly) IsValid() bool {
	return d != nil
}

// Ops returns the full ordered instruction slice. Callers must not mutate
// it.
func (d *Disassembly) Ops() []Op {
	if d == nil {
		return nil
	}
	return d.ops
}

// Disassemble walks memory from origin for size bytes, decoding one
// instruction per iteration according to its opcode's declared size.
// memory[0] is the byte at address origin. It returns nil if size is zero
// or memory is empty.
func Disassemble(memory []byte, size int, origin uint16) *Disassembly {
	if size <= 0 || len(memory) == 0 {
		return nil
	}

	d := &Disassembly{memory: memory, origin: origin}

	addr := origin
	end := origin + uint16(size)
	for addr < end {
		entry := opcodes.Table[memory[addr-origin]]
		d.ops = append(d.ops, Op{Entry: entry, Addr: addr, Index: len(d.ops)})
		step := entry.Size
		if step <= 0 {
			step = 1
		}
		addr += uint16(step)
	}

	return d
}

// Find locates the Op at addr via binary search. The second return value
// is false if d is invalid or no instruction starts exactly at addr.
func (d *Disassembly) Find(addr uint16) (Op, bool) {
	if !d.IsValid() {
		return Op{}, false
	}
	i := sort.Search(len(d.ops), func(i int) bool { return d.ops[i].Addr >= addr })
	if i == len(d.ops) || d.ops[i].Addr != addr {
		return Op{}, false
	}
	return d.ops[i], true
}

// List returns the instruction at addr together with up to n/2 instructions
// before it and up to n/2 after it, clamped to the bounds of the Ops slice;
// for an even n that is at most n+1 instructions. It returns nil if addr
// does not name a decoded instruction.
func (d *Disassembly) List(addr uint16, n int) []Op {
	op, ok := d.Find(addr)
	if !ok {
		return nil
	}

	half := n / 2
	min := op.Index - half
	if min < 0 {
		min = 0
	}
	max := op.Index + half
	if max > len(d.ops)-1 {
		max = len(d.ops) - 1
	}

	return d.ops[min : max+1]
}

// String renders op using the fixed column layout:
// addr, mnemonic, a reserved operand column (always blank), affected
// condition bits, and description.
func (d *Disassembly) String(op Op) string {
	return fmt.Sprintf("%04x    %-15s %-12s; condbits: %-12s description: %-12s",
		op.Addr, mnemonicString(d.memory[op.Addr-d.origin:], op), "", op.Entry.CondBits.String(), op.Entry.Desc)
}

// mnemonicString expands op's mnemonic template against its operand bytes,
// per its declared size. memory starts at op's opcode byte.
func mnemonicString(memory []byte, op Op) string {
	switch op.Entry.Size {
	case 1:
		return op.Entry.Mnemonic
	case 2:
		return fmt.Sprintf(op.Entry.Mnemonic, memory[1])
	case 3:
		word := uint16(memory[2])<<8 | uint16(memory[1])
		return fmt.Sprintf(op.Entry.Mnemonic, word)
	default:
		return ""
	}
}
