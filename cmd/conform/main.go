// Command conform runs a CP/M-hosted Intel 8080 test ROM to completion and
// checks its reported cycle count against an expected value.
//
// It reproduces the BDOS hook convention the classic 8080 test suite
// (TST8080, CPUTEST, 8080PRE, 8080EXM) expects: OUT 0,A at address 0x0000
// ends the run, and OUT 1,A followed by RET at 0x0005 services the two
// BDOS console calls (C_WRITE for register E, C_WRITESTR for a
// '$'-terminated string at DE) that the ROMs use to print their own
// pass/fail banner.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"

	"i8080/cpu"
	"i8080/mem"
)

var (
	passStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

func main() {
	rom := flag.String("rom", "", "path to a .COM test image")
	expectedCycles := flag.Uint64("cycles", 0, "expected cycle count reported by the ROM's own documentation")
	maxSteps := flag.Uint64("max-steps", 2_000_000_000, "abort after this many Step calls if device 0 is never written")
	flag.Parse()

	if *rom == "" {
		log.Fatal("conform: -rom is required")
	}

	image, err := os.ReadFile(*rom)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("conform: %s not present, skipping\n", *rom)
			return
		}
		log.Fatalf("conform: %v", err)
	}

	actual, err := run(image, *maxSteps)
	if err != nil {
		log.Fatalf("conform: %v", err)
	}

	diff := int64(actual) - int64(*expectedCycles)
	if diff < 0 {
		diff = -diff
	}

	if diff == 0 {
		fmt.Println(passStyle.Render(fmt.Sprintf("PASS %s: %d cycles", *rom, actual)))
	} else {
		fmt.Println(failStyle.Render(fmt.Sprintf("FAIL %s: got %d cycles, want %d (diff %d)", *rom, actual, *expectedCycles, diff)))
		os.Exit(1)
	}
}

// run loads image at 0x0100 (the standard CP/M TPA origin), installs the
// BDOS hooks at 0x0000 and 0x0005, and steps the cpu until device 0 is
// written. It fails if device 0 is still unwritten after maxSteps Step calls.
func run(image []byte, maxSteps uint64) (uint64, error) {
	bus, ram := mem.NewFlatBus()

	copy(ram.RAM[0x0100:], image)
	copy(ram.RAM[0x0000:], []byte{0xD3, 0x00})       // OUT 0,A
	copy(ram.RAM[0x0005:], []byte{0xD3, 0x01, 0xC9}) // OUT 1,A; RET

	c := cpu.New(bus)
	c.PC = 0x0100

	done := false
	bus.WriteDevice = func(userdata any, port byte, val byte) {
		ram := userdata.(*mem.FlatRAM)
		ram.Devices[port] = val
		switch port {
		case 0:
			done = true
		case 1:
			printBDOSCall(ram, c)
		}
	}

	for steps := uint64(0); !done; steps++ {
		if steps == maxSteps {
			return c.Cycles, fmt.Errorf("device 0 not written after %d steps", maxSteps)
		}
		c.Step()
		if c.Halted {
			return c.Cycles, fmt.Errorf("cpu halted unexpectedly at pc=%#04x", c.PC)
		}
	}

	return c.Cycles, nil
}

// printBDOSCall emulates just enough of CP/M's BDOS console functions for
// the 8080 test ROMs to report their own results: function 2 prints
// register E as a character, function 9 prints a '$'-terminated string at
// DE.
func printBDOSCall(ram *mem.FlatRAM, c *cpu.Cpu) {
	switch c.C {
	case 2:
		fmt.Printf("%c", c.E)
	case 9:
		addr := uint16(c.D)<<8 | uint16(c.E)
		for ram.RAM[addr] != '$' {
			fmt.Printf("%c", ram.RAM[addr])
			addr++
		}
	}
}
