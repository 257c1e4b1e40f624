package z80

// CPU holds the full Z80 architectural state: the main and shadow
// register files, the program counter, stack pointer, index registers,
// the halt latch, and the 64 KiB address space the core executes
// against.
type CPU struct {
	A, F, B, C, D, E, H, L         uint8
	A2, F2, B2, C2, D2, E2, H2, L2 uint8

	PC, SP, IX, IY uint16

	Halted bool

	memory [65536]uint8
}

// NewCPU returns a CPU in its reset state.
func NewCPU() *CPU {
	c := &CPU{}
	c.Reset()
	return c
}

// Reset zeroes every register, main and shadow, clears PC/SP/IX/IY and
// the halt latch, and fills memory with zero.
func (c *CPU) Reset() {
	*c = CPU{}
}

// ReadByte returns the byte at addr. Addressing wraps implicitly since
// addr is already a 16-bit value.
func (c *CPU) ReadByte(addr uint16) uint8 {
	return c.memory[addr]
}

// WriteByte stores val at addr.
func (c *CPU) WriteByte(addr uint16, val uint8) {
	c.memory[addr] = val
}

// LoadBytes copies p into memory starting at addr, wrapping at 0xFFFF.
// A convenience for hosts seeding a program image; not part of the
// architectural interface.
func (c *CPU) LoadBytes(addr uint16, p []uint8) {
	for _, b := range p {
		c.memory[addr] = b
		addr++
	}
}

// --- 16-bit pair views (big-endian: high byte is the first-named register) ---

func (c *CPU) AF() uint16 { return uint16(c.A)<<8 | uint16(c.F) }
func (c *CPU) BC() uint16 { return uint16(c.B)<<8 | uint16(c.C) }
func (c *CPU) DE() uint16 { return uint16(c.D)<<8 | uint16(c.E) }
func (c *CPU) HL() uint16 { return uint16(c.H)<<8 | uint16(c.L) }

func (c *CPU) SetAF(v uint16) { c.A, c.F = uint8(v>>8), uint8(v) }
func (c *CPU) SetBC(v uint16) { c.B, c.C = uint8(v>>8), uint8(v) }
func (c *CPU) SetDE(v uint16) { c.D, c.E = uint8(v>>8), uint8(v) }
func (c *CPU) SetHL(v uint16) { c.H, c.L = uint8(v>>8), uint8(v) }

func (c *CPU) AF2() uint16 { return uint16(c.A2)<<8 | uint16(c.F2) }
func (c *CPU) BC2() uint16 { return uint16(c.B2)<<8 | uint16(c.C2) }
func (c *CPU) DE2() uint16 { return uint16(c.D2)<<8 | uint16(c.E2) }
func (c *CPU) HL2() uint16 { return uint16(c.H2)<<8 | uint16(c.L2) }

func (c *CPU) SetAF2(v uint16) { c.A2, c.F2 = uint8(v>>8), uint8(v) }
func (c *CPU) SetBC2(v uint16) { c.B2, c.C2 = uint8(v>>8), uint8(v) }
func (c *CPU) SetDE2(v uint16) { c.D2, c.E2 = uint8(v>>8), uint8(v) }
func (c *CPU) SetHL2(v uint16) { c.H2, c.L2 = uint8(v>>8), uint8(v) }

// --- index register / PC / SP setters, for host seeding of test state ---

func (c *CPU) SetIX(v uint16) { c.IX = v }
func (c *CPU) SetIY(v uint16) { c.IY = v }
func (c *CPU) SetSP(v uint16) { c.SP = v }
func (c *CPU) SetPC(v uint16) { c.PC = v }
