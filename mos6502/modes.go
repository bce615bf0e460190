package mos6502

// Mode identifies a 6502 addressing mode: the ten memory-referencing modes
// plus implied, accumulator and relative.
type Mode uint8

const (
	ModeImplied Mode = iota
	ModeAccumulator
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirect
	ModeIndexedIndirect // ($nn,X)
	ModeIndirectIndexed // ($nn),Y
	ModeRelative        // branches
)

// modeBytes reports the total instruction length (opcode byte included)
// for mode. Deriving this from the addressing mode, rather than storing
// it per opcode row, removes a whole class of table-entry bugs.
func modeBytes(m Mode) uint8 {
	switch m {
	case ModeImplied, ModeAccumulator:
		return 1
	case ModeImmediate, ModeZeroPage, ModeZeroPageX, ModeZeroPageY,
		ModeIndexedIndirect, ModeIndirectIndexed, ModeRelative:
		return 2
	case ModeAbsolute, ModeAbsoluteX, ModeAbsoluteY, ModeIndirect:
		return 3
	default:
		return 1
	}
}

// resolveAddress consumes the operand bytes for mode from bus starting at
// c.PC (advancing c.PC past them) and returns the effective address plus
// whether resolution crossed a page boundary. For ModeImplied and
// ModeAccumulator there is no operand and ea is meaningless.
func (c *CPU) resolveAddress(bus Bus, mode Mode) (ea uint16, crossed bool) {
	switch mode {
	case ModeImplied, ModeAccumulator:
		return 0, false

	case ModeImmediate:
		ea = c.PC
		c.PC++
		return ea, false

	case ModeZeroPage:
		b := bus.Read8(c.PC)
		c.PC++
		return uint16(b), false

	case ModeZeroPageX:
		b := bus.Read8(c.PC)
		c.PC++
		return uint16(b + c.X), false

	case ModeZeroPageY:
		b := bus.Read8(c.PC)
		c.PC++
		return uint16(b + c.Y), false

	case ModeAbsolute:
		lo := bus.Read8(c.PC)
		c.PC++
		hi := bus.Read8(c.PC)
		c.PC++
		return uint16(hi)<<8 | uint16(lo), false

	case ModeAbsoluteX:
		lo := bus.Read8(c.PC)
		c.PC++
		hi := bus.Read8(c.PC)
		c.PC++
		base := uint16(hi)<<8 | uint16(lo)
		ea = base + uint16(c.X)
		return ea, (base & 0xFF00) != (ea & 0xFF00)

	case ModeAbsoluteY:
		lo := bus.Read8(c.PC)
		c.PC++
		hi := bus.Read8(c.PC)
		c.PC++
		base := uint16(hi)<<8 | uint16(lo)
		ea = base + uint16(c.Y)
		return ea, (base & 0xFF00) != (ea & 0xFF00)

	case ModeIndirect:
		lo := bus.Read8(c.PC)
		c.PC++
		hi := bus.Read8(c.PC)
		c.PC++
		ptr := uint16(hi)<<8 | uint16(lo)
		// Hardware bug: when the pointer's low byte is 0xFF, the MSB is
		// read from ptr&0xFF00 instead of ptr+1 (no page carry).
		hiAddr := (ptr & 0xFF00) | ((ptr + 1) & 0x00FF)
		l := bus.Read8(ptr)
		h := bus.Read8(hiAddr)
		return uint16(h)<<8 | uint16(l), false

	case ModeIndexedIndirect:
		b := bus.Read8(c.PC)
		c.PC++
		ptr := b + c.X
		l := bus.Read8(uint16(ptr))
		h := bus.Read8(uint16(ptr + 1))
		return uint16(h)<<8 | uint16(l), false

	case ModeIndirectIndexed:
		b := bus.Read8(c.PC)
		c.PC++
		l := bus.Read8(uint16(b))
		h := bus.Read8(uint16(b + 1))
		base := uint16(h)<<8 | uint16(l)
		ea = base + uint16(c.Y)
		return ea, (base & 0xFF00) != (ea & 0xFF00)

	case ModeRelative:
		offset := bus.Read8(c.PC)
		c.PC++
		target := c.PC + uint16(int8(offset))
		return target, (target & 0xFF00) != (c.PC & 0xFF00)

	default:
		return 0, false
	}
}

// readOperand returns the value an instruction should operate on: the
// accumulator for ModeAccumulator, otherwise the byte at ea (which, for
// ModeImmediate, is the address of the literal operand itself).
func (c *CPU) readOperand(bus Bus, mode Mode, ea uint16) uint8 {
	if mode == ModeAccumulator {
		return c.A
	}
	return bus.Read8(ea)
}
