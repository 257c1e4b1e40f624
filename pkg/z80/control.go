package z80

// jp implements JP nn: PC is replaced outright, not advanced past the
// operand (the fetch of nn already consumed it; this assigns PC to nn).
func (c *CPU) jp(nn uint16) {
	c.PC = nn
}

// jpCond implements JP cc,nn: nn has already been fetched and PC already
// advanced past it; PC is overwritten only if the condition holds.
func (c *CPU) jpCond(cc uint8, nn uint16) {
	if c.evalCond(cc) {
		c.PC = nn
	}
}

// jr implements JR e: PC has already advanced past the displacement
// byte; the destination is relative to that (the byte after e).
func (c *CPU) jr(e int8) {
	c.PC = uint16(int32(c.PC) + int32(e))
}

// jrCond implements JR cc,e for cc in {NZ,Z,NC,C} (codes 0..3).
func (c *CPU) jrCond(cc uint8, e int8) {
	if c.evalCond(cc) {
		c.jr(e)
	}
}

// call implements CALL nn: pushes the return address (PC, already past
// the operand) then jumps.
func (c *CPU) call(nn uint16) {
	c.push(c.PC)
	c.PC = nn
}

// callCond implements CALL cc,nn.
func (c *CPU) callCond(cc uint8, nn uint16) {
	if c.evalCond(cc) {
		c.call(nn)
	}
}

// ret implements RET: PC is replaced with the popped return address.
func (c *CPU) ret() {
	c.PC = c.pop()
}

// retCond implements RET cc: pops only if the condition holds; otherwise
// PC is left alone (it is already past the opcode byte).
func (c *CPU) retCond(cc uint8) {
	if c.evalCond(cc) {
		c.ret()
	}
}

// halt implements HALT (0x76): sets Halted and backs PC up over the
// opcode so PC stays on the HALT instruction, the architectural
// "stuck at halt" behavior in the absence of interrupts. Step is a
// no-op while Halted is set.
func (c *CPU) halt() {
	c.Halted = true
	c.PC--
}
