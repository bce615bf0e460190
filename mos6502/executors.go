package mos6502

import "github.com/bdwalton/nescore/memmap"

// execFunc implements one instruction's effect given its resolved
// addressing mode and effective address. It returns any cycle penalty
// beyond the opcode's base/page-cross cycles (used by branches).
type execFunc func(c *CPU, bus Bus, mode Mode, ea uint16, crossed bool) int

func execLDA(c *CPU, bus Bus, mode Mode, ea uint16, _ bool) int {
	c.A = c.readOperand(bus, mode, ea)
	c.setZN(c.A)
	return 0
}

func execLDX(c *CPU, bus Bus, mode Mode, ea uint16, _ bool) int {
	c.X = c.readOperand(bus, mode, ea)
	c.setZN(c.X)
	return 0
}

func execLDY(c *CPU, bus Bus, mode Mode, ea uint16, _ bool) int {
	c.Y = c.readOperand(bus, mode, ea)
	c.setZN(c.Y)
	return 0
}

func execSTA(c *CPU, bus Bus, _ Mode, ea uint16, _ bool) int {
	bus.Write8(ea, c.A)
	return 0
}

func execSTX(c *CPU, bus Bus, _ Mode, ea uint16, _ bool) int {
	bus.Write8(ea, c.X)
	return 0
}

func execSTY(c *CPU, bus Bus, _ Mode, ea uint16, _ bool) int {
	bus.Write8(ea, c.Y)
	return 0
}

func execTAX(c *CPU, _ Bus, _ Mode, _ uint16, _ bool) int { c.X = c.A; c.setZN(c.X); return 0 }
func execTAY(c *CPU, _ Bus, _ Mode, _ uint16, _ bool) int { c.Y = c.A; c.setZN(c.Y); return 0 }
func execTXA(c *CPU, _ Bus, _ Mode, _ uint16, _ bool) int { c.A = c.X; c.setZN(c.A); return 0 }
func execTYA(c *CPU, _ Bus, _ Mode, _ uint16, _ bool) int { c.A = c.Y; c.setZN(c.A); return 0 }
func execTSX(c *CPU, _ Bus, _ Mode, _ uint16, _ bool) int { c.X = c.SP; c.setZN(c.X); return 0 }
func execTXS(c *CPU, _ Bus, _ Mode, _ uint16, _ bool) int { c.SP = c.X; return 0 }

func execPHA(c *CPU, bus Bus, _ Mode, _ uint16, _ bool) int { c.push(bus, c.A); return 0 }
func execPHP(c *CPU, bus Bus, _ Mode, _ uint16, _ bool) int {
	c.push(bus, c.P|uint8(FlagB))
	return 0
}
func execPLA(c *CPU, bus Bus, _ Mode, _ uint16, _ bool) int {
	c.A = c.pop(bus)
	c.setZN(c.A)
	return 0
}
func execPLP(c *CPU, bus Bus, _ Mode, _ uint16, _ bool) int {
	c.setP(c.pop(bus))
	return 0
}

// adcCore implements ADC's bit-exact arithmetic; SBC reuses it over the
// bitwise-inverted operand (SBC(A,M,c) == ADC(A,~M,c), spec §8 invariant 2).
func (c *CPU) adcCore(m uint8) {
	carry := uint16(0)
	if c.GetFlag(FlagC) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(m) + carry
	result := uint8(sum)
	c.SetFlag(FlagC, sum > 0xFF)
	c.SetFlag(FlagV, (^(c.A^m)&(c.A^result)&0x80) != 0)
	c.A = result
	c.setZN(c.A)
}

func execADC(c *CPU, bus Bus, mode Mode, ea uint16, _ bool) int {
	c.adcCore(c.readOperand(bus, mode, ea))
	return 0
}

func execSBC(c *CPU, bus Bus, mode Mode, ea uint16, _ bool) int {
	c.adcCore(c.readOperand(bus, mode, ea) ^ 0xFF)
	return 0
}

func execAND(c *CPU, bus Bus, mode Mode, ea uint16, _ bool) int {
	c.A &= c.readOperand(bus, mode, ea)
	c.setZN(c.A)
	return 0
}

func execORA(c *CPU, bus Bus, mode Mode, ea uint16, _ bool) int {
	c.A |= c.readOperand(bus, mode, ea)
	c.setZN(c.A)
	return 0
}

func execEOR(c *CPU, bus Bus, mode Mode, ea uint16, _ bool) int {
	c.A ^= c.readOperand(bus, mode, ea)
	c.setZN(c.A)
	return 0
}

func execBIT(c *CPU, bus Bus, _ Mode, ea uint16, _ bool) int {
	m := bus.Read8(ea)
	c.SetFlag(FlagZ, c.A&m == 0)
	c.SetFlag(FlagN, m&0x80 != 0)
	c.SetFlag(FlagV, m&0x40 != 0)
	return 0
}

func execASL(c *CPU, bus Bus, mode Mode, ea uint16, _ bool) int {
	v := c.readOperand(bus, mode, ea)
	carry := v&0x80 != 0
	v <<= 1
	c.writeResult(bus, mode, ea, v)
	c.SetFlag(FlagC, carry)
	c.setZN(v)
	return 0
}

func execLSR(c *CPU, bus Bus, mode Mode, ea uint16, _ bool) int {
	v := c.readOperand(bus, mode, ea)
	carry := v&0x01 != 0
	v >>= 1
	c.writeResult(bus, mode, ea, v)
	c.SetFlag(FlagC, carry)
	c.setZN(v)
	return 0
}

func execROL(c *CPU, bus Bus, mode Mode, ea uint16, _ bool) int {
	v := c.readOperand(bus, mode, ea)
	oldCarry := c.GetFlag(FlagC)
	carry := v&0x80 != 0
	v <<= 1
	if oldCarry {
		v |= 0x01
	}
	c.writeResult(bus, mode, ea, v)
	c.SetFlag(FlagC, carry)
	c.setZN(v)
	return 0
}

func execROR(c *CPU, bus Bus, mode Mode, ea uint16, _ bool) int {
	v := c.readOperand(bus, mode, ea)
	oldCarry := c.GetFlag(FlagC)
	carry := v&0x01 != 0
	v >>= 1
	if oldCarry {
		v |= 0x80
	}
	c.writeResult(bus, mode, ea, v)
	c.SetFlag(FlagC, carry)
	c.setZN(v)
	return 0
}

// writeResult stores a read-modify-write result back to the accumulator
// or to memory, mirroring readOperand's mode switch.
func (c *CPU) writeResult(bus Bus, mode Mode, ea uint16, v uint8) {
	if mode == ModeAccumulator {
		c.A = v
		return
	}
	bus.Write8(ea, v)
}

func execINC(c *CPU, bus Bus, _ Mode, ea uint16, _ bool) int {
	v := bus.Read8(ea) + 1
	bus.Write8(ea, v)
	c.setZN(v)
	return 0
}

func execDEC(c *CPU, bus Bus, _ Mode, ea uint16, _ bool) int {
	v := bus.Read8(ea) - 1
	bus.Write8(ea, v)
	c.setZN(v)
	return 0
}

func execINX(c *CPU, _ Bus, _ Mode, _ uint16, _ bool) int { c.X++; c.setZN(c.X); return 0 }
func execINY(c *CPU, _ Bus, _ Mode, _ uint16, _ bool) int { c.Y++; c.setZN(c.Y); return 0 }
func execDEX(c *CPU, _ Bus, _ Mode, _ uint16, _ bool) int { c.X--; c.setZN(c.X); return 0 }
func execDEY(c *CPU, _ Bus, _ Mode, _ uint16, _ bool) int { c.Y--; c.setZN(c.Y); return 0 }

// cmpCore implements CMP/CPX/CPY: reg - M in 9 bits, with reg unaffected.
func (c *CPU) cmpCore(reg, m uint8) {
	r := uint16(reg) - uint16(m)
	c.SetFlag(FlagC, reg >= m)
	c.SetFlag(FlagZ, reg == m)
	c.SetFlag(FlagN, uint8(r)&0x80 != 0)
}

func execCMP(c *CPU, bus Bus, mode Mode, ea uint16, _ bool) int {
	c.cmpCore(c.A, c.readOperand(bus, mode, ea))
	return 0
}

func execCPX(c *CPU, bus Bus, mode Mode, ea uint16, _ bool) int {
	c.cmpCore(c.X, c.readOperand(bus, mode, ea))
	return 0
}

func execCPY(c *CPU, bus Bus, mode Mode, ea uint16, _ bool) int {
	c.cmpCore(c.Y, c.readOperand(bus, mode, ea))
	return 0
}

// branch implements the shared taken/page-cross cycle accounting for all
// eight conditional branches; ea is already the resolved relative target
// (see resolveAddress's ModeRelative case) and crossed reflects whether
// it differs in page from PC-after-operand.
func (c *CPU) branch(taken bool, ea uint16, crossed bool) int {
	if !taken {
		return 0
	}
	c.PC = ea
	if crossed {
		return 2
	}
	return 1
}

func execBCC(c *CPU, _ Bus, _ Mode, ea uint16, crossed bool) int {
	return c.branch(!c.GetFlag(FlagC), ea, crossed)
}
func execBCS(c *CPU, _ Bus, _ Mode, ea uint16, crossed bool) int {
	return c.branch(c.GetFlag(FlagC), ea, crossed)
}
func execBEQ(c *CPU, _ Bus, _ Mode, ea uint16, crossed bool) int {
	return c.branch(c.GetFlag(FlagZ), ea, crossed)
}
func execBNE(c *CPU, _ Bus, _ Mode, ea uint16, crossed bool) int {
	return c.branch(!c.GetFlag(FlagZ), ea, crossed)
}
func execBMI(c *CPU, _ Bus, _ Mode, ea uint16, crossed bool) int {
	return c.branch(c.GetFlag(FlagN), ea, crossed)
}
func execBPL(c *CPU, _ Bus, _ Mode, ea uint16, crossed bool) int {
	return c.branch(!c.GetFlag(FlagN), ea, crossed)
}
func execBVC(c *CPU, _ Bus, _ Mode, ea uint16, crossed bool) int {
	return c.branch(!c.GetFlag(FlagV), ea, crossed)
}
func execBVS(c *CPU, _ Bus, _ Mode, ea uint16, crossed bool) int {
	return c.branch(c.GetFlag(FlagV), ea, crossed)
}

func execJMP(c *CPU, _ Bus, _ Mode, ea uint16, _ bool) int {
	c.PC = ea
	return 0
}

func execJSR(c *CPU, bus Bus, _ Mode, ea uint16, _ bool) int {
	// c.PC has already advanced past both operand bytes (resolveAddress,
	// ModeAbsolute): c.PC-1 is the address of the operand's high byte,
	// i.e. the last byte of the JSR instruction - what hardware pushes.
	c.pushAddr(bus, c.PC-1)
	c.PC = ea
	return 0
}

func execRTS(c *CPU, bus Bus, _ Mode, _ uint16, _ bool) int {
	c.PC = c.popAddr(bus) + 1
	return 0
}

func execBRK(c *CPU, bus Bus, _ Mode, _ uint16, _ bool) int {
	// BRK is a 2-byte instruction on real hardware (the byte after the
	// opcode is a padding byte); c.PC is currently startPC+1, so PC+1
	// is the return address past the padding byte.
	c.pushAddr(bus, c.PC+1)
	c.push(bus, c.P|uint8(FlagB))
	c.SetFlag(FlagI, true)
	c.PC = c.readVector(bus, memmap.IRQVectorLow, memmap.IRQVectorHigh)
	return 0
}

func execRTI(c *CPU, bus Bus, _ Mode, _ uint16, _ bool) int {
	c.setP(c.pop(bus))
	c.PC = c.popAddr(bus)
	return 0
}

func execCLC(c *CPU, _ Bus, _ Mode, _ uint16, _ bool) int { c.SetFlag(FlagC, false); return 0 }
func execSEC(c *CPU, _ Bus, _ Mode, _ uint16, _ bool) int { c.SetFlag(FlagC, true); return 0 }
func execCLI(c *CPU, _ Bus, _ Mode, _ uint16, _ bool) int { c.SetFlag(FlagI, false); return 0 }
func execSEI(c *CPU, _ Bus, _ Mode, _ uint16, _ bool) int { c.SetFlag(FlagI, true); return 0 }
func execCLV(c *CPU, _ Bus, _ Mode, _ uint16, _ bool) int { c.SetFlag(FlagV, false); return 0 }
func execCLD(c *CPU, _ Bus, _ Mode, _ uint16, _ bool) int { c.SetFlag(FlagD, false); return 0 }
func execSED(c *CPU, _ Bus, _ Mode, _ uint16, _ bool) int { c.SetFlag(FlagD, true); return 0 }

func execNOP(_ *CPU, _ Bus, _ Mode, _ uint16, _ bool) int { return 0 }
