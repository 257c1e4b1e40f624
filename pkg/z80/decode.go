package z80

// Step advances the machine by one architectural instruction. If Halted
// is true it is a no-op. Otherwise it reads one byte at PC, post-
// increments PC, and dispatches: 0xDD/0xFD are prefixes that route the
// following opcode through the indexed table (IX for 0xDD, IY for 0xFD);
// everything else dispatches through the base table.
func (c *CPU) Step() {
	if c.Halted {
		return
	}
	op := c.fetch()
	switch op {
	case 0xDD:
		c.execOp(c.fetch(), &c.IX)
	case 0xFD:
		c.execOp(c.fetch(), &c.IY)
	default:
		c.execOp(op, nil)
	}
}

// fetch reads the byte at PC and post-increments PC.
func (c *CPU) fetch() uint8 {
	b := c.ReadByte(c.PC)
	c.PC++
	return b
}

// fetchImm16 reads a little-endian 16-bit immediate, advancing PC past it.
func (c *CPU) fetchImm16() uint16 {
	lo := c.fetch()
	hi := c.fetch()
	return uint16(hi)<<8 | uint16(lo)
}

// regPtr returns a pointer to the 8-bit register named by the r-field
// code (0=B,1=C,2=D,3=E,4=H,5=L,7=A). Code 6 ((HL)/(IX+d)/(IY+d)) is not
// a plain register and is handled by the memory-operand helpers below.
func (c *CPU) regPtr(code uint8) *uint8 {
	switch code & 0x07 {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	return nil
}

// operandAddr resolves the effective address for r-field code 6: HL when
// idx is nil, or (idx + sign-extend8(d)) & 0xFFFF when idx is an index
// register, reading the displacement byte that immediately follows the
// opcode.
func (c *CPU) operandAddr(idx *uint16) uint16 {
	if idx == nil {
		return c.HL()
	}
	d := int8(c.fetch())
	return uint16(int32(*idx) + int32(d))
}

// readOperand8 returns the 8-bit value named by an r-field code: a plain
// register, or the memory byte at (HL)/(IX+d)/(IY+d) for code 6.
func (c *CPU) readOperand8(code uint8, idx *uint16) uint8 {
	if code&0x07 == 6 {
		return c.ReadByte(c.operandAddr(idx))
	}
	return *c.regPtr(code)
}

// writeOperand8 stores value into the location named by an r-field code.
func (c *CPU) writeOperand8(code uint8, idx *uint16, value uint8) {
	if code&0x07 == 6 {
		c.WriteByte(c.operandAddr(idx), value)
		return
	}
	*c.regPtr(code) = value
}

// loadImm8 implements LD r,n / LD (HL),n / LD (IX+d),n / LD (IY+d),n: the
// displacement (if any) is read before the immediate byte n.
func (c *CPU) loadImm8(code uint8, idx *uint16) {
	if code&0x07 == 6 {
		addr := c.operandAddr(idx)
		n := c.fetch()
		c.WriteByte(addr, n)
		return
	}
	*c.regPtr(code) = c.fetch()
}

// loadRPImm implements LD rr,nn for rp in {BC,DE,HL,SP}. In the indexed
// space, rp==2 (the HL slot) targets IX/IY instead of HL.
func (c *CPU) loadRPImm(rp uint8, idx *uint16) {
	nn := c.fetchImm16()
	switch rp & 0x03 {
	case 0:
		c.SetBC(nn)
	case 1:
		c.SetDE(nn)
	case 2:
		if idx != nil {
			*idx = nn
		} else {
			c.SetHL(nn)
		}
	case 3:
		c.SP = nn
	}
}

// incDec applies INC or DEC to the operand named by an r-field code.
func (c *CPU) incDec(code uint8, idx *uint16, inc bool) {
	if code&0x07 == 6 {
		addr := c.operandAddr(idx)
		v := c.ReadByte(addr)
		if inc {
			c.aluInc(&v)
		} else {
			c.aluDec(&v)
		}
		c.WriteByte(addr, v)
		return
	}
	r := c.regPtr(code)
	if inc {
		c.aluInc(r)
	} else {
		c.aluDec(r)
	}
}

// applyALU dispatches the 10oooxxx 8-bit ALU family (ooo selects the
// operation, xxx the operand) and the eight ALU-immediate opcodes.
func (c *CPU) applyALU(op uint8, value uint8) {
	switch op {
	case 0:
		c.aluAdd(value)
	case 1:
		c.aluAdc(value)
	case 2:
		c.aluSub(value)
	case 3:
		c.aluSbc(value)
	case 4:
		c.aluAnd(value)
	case 5:
		c.aluXor(value)
	case 6:
		c.aluOr(value)
	case 7:
		c.aluCp(value)
	}
}

// evalCond evaluates one of the eight 3-bit condition codes against F.
func (c *CPU) evalCond(cc uint8) bool {
	switch cc & 0x07 {
	case 0: // NZ
		return c.F&flagZ == 0
	case 1: // Z
		return c.F&flagZ != 0
	case 2: // NC
		return c.F&flagC == 0
	case 3: // C
		return c.F&flagC != 0
	case 4: // PO
		return c.F&flagP == 0
	case 5: // PE
		return c.F&flagP != 0
	case 6: // P (sign positive)
		return c.F&flagS == 0
	case 7: // M (sign negative)
		return c.F&flagS != 0
	}
	return false
}

// execOp decodes and executes one opcode. idx is nil for the base table,
// or &IX/&IY when reached through the 0xDD/0xFD prefix. Most opcodes
// ignore idx outright; only those that touch a code-6 operand, or the
// 0x21/0x36 special cases, are affected by it — which is exactly the set
// of instructions spec.md documents as index-sensitive.
func (c *CPU) execOp(op uint8, idx *uint16) {
	if op == 0x76 { // LD (HL),(HL) is HALT, not a load — must win over 01xxxyyy
		c.halt()
		return
	}

	switch op >> 6 {
	case 0x01: // 01xxxyyy: LD r,r' / LD r,(HL) / LD (HL),r and indexed variants
		dst := (op >> 3) & 0x07
		src := op & 0x07
		c.writeOperand8(dst, idx, c.readOperand8(src, idx))
		return
	case 0x02: // 10oooxxx: 8-bit ALU, register/memory operand
		c.applyALU((op>>3)&0x07, c.readOperand8(op&0x07, idx))
		return
	}

	switch {
	case op&0xC7 == 0x04: // 00rrr100: INC r/(HL)/(IX+d)
		c.incDec((op>>3)&0x07, idx, true)
		return
	case op&0xC7 == 0x05: // 00rrr101: DEC r/(HL)/(IX+d)
		c.incDec((op>>3)&0x07, idx, false)
		return
	case op&0xC7 == 0x06: // 00rrr110: LD r,n / LD (HL),n / LD (IX+d),n
		c.loadImm8((op>>3)&0x07, idx)
		return
	}

	if op&0xCF == 0x01 { // 00rp0001: LD rr,nn
		c.loadRPImm((op>>4)&0x03, idx)
		return
	}

	switch op {
	case 0x00: // NOP
		return
	case 0x08: // EX AF,AF'
		c.exAFAF()
		return
	case 0xEB: // EX DE,HL
		c.exDEHL()
		return
	case 0xD9: // EXX
		c.exx()
		return
	case 0x27: // DAA
		c.daa()
		return
	case 0x37: // SCF
		c.scf()
		return

	case 0xC6:
		c.applyALU(0, c.fetch())
		return
	case 0xCE:
		c.applyALU(1, c.fetch())
		return
	case 0xD6:
		c.applyALU(2, c.fetch())
		return
	case 0xDE:
		c.applyALU(3, c.fetch())
		return
	case 0xE6:
		c.applyALU(4, c.fetch())
		return
	case 0xEE:
		c.applyALU(5, c.fetch())
		return
	case 0xF6:
		c.applyALU(6, c.fetch())
		return
	case 0xFE:
		c.applyALU(7, c.fetch())
		return

	case 0xC3: // JP nn
		c.jp(c.fetchImm16())
		return
	case 0x18: // JR e
		c.jr(int8(c.fetch()))
		return
	case 0xCD: // CALL nn
		c.call(c.fetchImm16())
		return
	case 0xC9: // RET
		c.ret()
		return

	case 0xC5:
		c.push(c.BC())
		return
	case 0xD5:
		c.push(c.DE())
		return
	case 0xE5:
		c.push(c.HL())
		return
	case 0xF5:
		c.push(c.AF())
		return
	case 0xC1:
		c.SetBC(c.pop())
		return
	case 0xD1:
		c.SetDE(c.pop())
		return
	case 0xE1:
		c.SetHL(c.pop())
		return
	case 0xF1:
		c.SetAF(c.pop())
		return
	}

	// JP cc,nn: 11ccc010
	if op&0xC7 == 0xC2 {
		nn := c.fetchImm16()
		c.jpCond((op>>3)&0x07, nn)
		return
	}
	// CALL cc,nn: 11ccc100
	if op&0xC7 == 0xC4 {
		nn := c.fetchImm16()
		c.callCond((op>>3)&0x07, nn)
		return
	}
	// RET cc: 11ccc000
	if op&0xC7 == 0xC0 {
		c.retCond((op >> 3) & 0x07)
		return
	}
	// JR cc,e: 001cc000, cc in 0..3 (NZ,Z,NC,C)
	if op&0xE7 == 0x20 {
		e := int8(c.fetch())
		c.jrCond((op>>3)&0x03, e)
		return
	}

	// Unimplemented opcode: silently ignored, PC left past whatever was
	// already consumed.
}
