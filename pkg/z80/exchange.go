package z80

// exDEHL implements EX DE,HL: swaps the DE and HL pairs in place.
func (c *CPU) exDEHL() {
	c.D, c.H = c.H, c.D
	c.E, c.L = c.L, c.E
}

// exAFAF implements EX AF,AF': swaps the main and shadow accumulator
// and flag register.
func (c *CPU) exAFAF() {
	c.A, c.A2 = c.A2, c.A
	c.F, c.F2 = c.F2, c.F
}

// exx implements EXX: swaps BC, DE and HL with their shadow
// counterparts, all at once. AF is untouched.
func (c *CPU) exx() {
	c.B, c.B2 = c.B2, c.B
	c.C, c.C2 = c.C2, c.C
	c.D, c.D2 = c.D2, c.D
	c.E, c.E2 = c.E2, c.E
	c.H, c.H2 = c.H2, c.H
	c.L, c.L2 = c.L2, c.L
}
