package z80

import "testing"

func TestResetZeroesEverything(t *testing.T) {
	c := NewCPU()
	c.A, c.B, c.C2 = 1, 2, 3
	c.PC, c.SP, c.IX, c.IY = 1, 2, 3, 4
	c.Halted = true
	c.WriteByte(0x1234, 0xAA)

	c.Reset()

	if c.A != 0 || c.B != 0 || c.C2 != 0 {
		t.Error("Reset did not zero registers")
	}
	if c.PC != 0 || c.SP != 0 || c.IX != 0 || c.IY != 0 {
		t.Error("Reset did not zero PC/SP/IX/IY")
	}
	if c.Halted {
		t.Error("Reset did not clear Halted")
	}
	if c.ReadByte(0x1234) != 0 {
		t.Error("Reset did not zero memory")
	}
}

func TestPairViews(t *testing.T) {
	c := NewCPU()
	c.SetBC(0x1234)
	if c.B != 0x12 || c.C != 0x34 || c.BC() != 0x1234 {
		t.Errorf("SetBC(0x1234): got B=%#02x C=%#02x", c.B, c.C)
	}
	c.SetHL2(0xABCD)
	if c.H2 != 0xAB || c.L2 != 0xCD || c.HL2() != 0xABCD {
		t.Errorf("SetHL2(0xABCD): got H2=%#02x L2=%#02x", c.H2, c.L2)
	}
}

func TestMemoryTopOfAddressSpace(t *testing.T) {
	c := NewCPU()
	c.WriteByte(0xFFFF, 0x42)
	if c.ReadByte(0xFFFF) != 0x42 {
		t.Error("write/read at top of address space failed")
	}
}
