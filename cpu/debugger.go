package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"i8080/disasm"
	"i8080/mem"
)

// model is the bubbletea model driving the single-step inspector: one
// cpu.Step() per keypress, with the surrounding disassembly and register
// file redrawn each time.
type model struct {
	cpu  *Cpu
	dasm *disasm.Disassembly
}

var (
	borderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	pcStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
)

// Debug loads program at origin into a fresh FlatRAM-backed Cpu and runs an
// interactive single-step TUI against it: space/j steps one instruction, q
// quits.
func Debug(program []byte, origin uint16) error {
	bus, ram := mem.NewFlatBus()
	copy(ram.RAM[origin:], program)

	c := New(bus)
	c.PC = origin

	d := disasm.Disassemble(program, len(program), origin)

	m := model{cpu: c, dasm: d}
	_, err := tea.NewProgram(m).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.cpu.Step()
		}
	}
	return m, nil
}

func (m model) View() string {
	listing := m.renderListing()
	status := m.renderStatus()
	dump := spew.Sdump(m.cpu.Flags)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, borderStyle.Render(listing), borderStyle.Render(status)),
		borderStyle.Render(strings.TrimSpace(dump)),
	)
}

func (m model) renderListing() string {
	if !m.dasm.IsValid() {
		return "(no program loaded)"
	}
	ops := m.dasm.List(m.cpu.PC, 16)
	if ops == nil {
		ops = m.dasm.Ops()
	}

	var b strings.Builder
	for _, op := range ops {
		line := m.dasm.String(op)
		if op.Addr == m.cpu.PC {
			line = pcStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m model) renderStatus() string {
	c := m.cpu
	return fmt.Sprintf(
		"a=%02x b=%02x c=%02x d=%02x e=%02x h=%02x l=%02x\n"+
			"pc=%04x sp=%04x\n"+
			"s=%v z=%v a=%v p=%v c=%v\n"+
			"halted=%v inte=%v\n"+
			"cycles=%d",
		c.A, c.B, c.C, c.D, c.E, c.H, c.L,
		c.PC, c.SP,
		c.Flags.S, c.Flags.Z, c.Flags.A, c.Flags.P, c.Flags.C,
		c.Halted, c.Inte,
		c.Cycles,
	)
}
