// Package mos6502 implements the MOS 6502-family CPU interpreter at the
// heart of the NES: register file, flag semantics, the ten addressing
// modes, the full official instruction set, and the fetch-decode-execute
// cycle. Illegal/unofficial opcodes and decimal mode are intentionally
// unimplemented.
package mos6502

import (
	"fmt"

	"github.com/bdwalton/nescore/memmap"
)

// Bus is everything the CPU needs from its memory/device collaborator.
type Bus interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, val uint8)
}

// IllegalOpcodePolicy selects how Step reacts to a byte with no entry in
// the official opcode table.
type IllegalOpcodePolicy int

const (
	// Halt returns an *IllegalOpcodeError and leaves PC pointing at the
	// offending opcode. The default.
	Halt IllegalOpcodePolicy = iota
	// TreatAsNOP advances one byte and costs 2 cycles, invoking the
	// configured trace callback if any.
	TreatAsNOP
)

// TraceEvent is reported to a configured trace callback when Step takes a
// notable, non-fatal branch (currently: illegal opcodes under
// TreatAsNOP).
type TraceEvent struct {
	PC     uint16
	Opcode uint8
	Note   string
}

// Option configures a CPU at construction time.
type Option func(*CPU)

// WithIllegalOpcodePolicy overrides the default Halt policy.
func WithIllegalOpcodePolicy(p IllegalOpcodePolicy) Option {
	return func(c *CPU) { c.illegalPolicy = p }
}

// WithTrace registers a callback invoked for TraceEvents.
func WithTrace(fn func(TraceEvent)) Option {
	return func(c *CPU) { c.trace = fn }
}

// CPU is the 6502 register file plus execution state. It holds no bus
// reference between calls: Reset/Step/NMI/IRQ all take the Bus they
// should operate against, per call, matching the host's ownership of
// memory (spec §5/§6).
type CPU struct {
	A, X, Y uint8
	SP      uint8
	PC      uint16
	P       uint8

	illegalPolicy IllegalOpcodePolicy
	trace         func(TraceEvent)
}

// New constructs a CPU. Call Reset before stepping it to establish the
// hardware-accurate post-reset register state.
func New(opts ...Option) *CPU {
	c := &CPU{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reset loads PC from the reset vector and establishes the hardware
// post-reset register state: SP=0xFD, P=0x24 (I set, bit 5 set), A/X/Y=0.
func (c *CPU) Reset(bus Bus) {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.P = 0x24
	lo := bus.Read8(memmap.ResetVectorLow)
	hi := bus.Read8(memmap.ResetVectorHigh)
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// Step executes exactly one instruction and returns its total cycle
// count (base cycles plus any page-cross/branch-taken penalties).
func (c *CPU) Step(bus Bus) (int, error) {
	opByte := bus.Read8(c.PC)
	entry := opcodeTable[opByte]
	if entry.exec == nil {
		return c.handleIllegal(opByte)
	}

	c.PC++
	ea, crossed := c.resolveAddress(bus, entry.mode)

	cycles := int(entry.cycles)
	if entry.pageCrossCheck && crossed {
		cycles++
	}
	cycles += entry.exec(c, bus, entry.mode, ea, crossed)

	return cycles, nil
}

func (c *CPU) handleIllegal(opByte uint8) (int, error) {
	switch c.illegalPolicy {
	case TreatAsNOP:
		if c.trace != nil {
			c.trace(TraceEvent{PC: c.PC, Opcode: opByte, Note: "illegal opcode treated as NOP"})
		}
		c.PC++
		return 2, nil
	default:
		return 0, &IllegalOpcodeError{Opcode: opByte, PC: c.PC}
	}
}

// NMI pushes PC and P (with B=0) and loads PC from the NMI vector. It
// cannot be masked by the I flag.
func (c *CPU) NMI(bus Bus) int {
	c.pushAddr(bus, c.PC)
	c.push(bus, c.P&^uint8(FlagB))
	c.SetFlag(FlagI, true)
	c.PC = c.readVector(bus, memmap.NMIVectorLow, memmap.NMIVectorHigh)
	return 7
}

// IRQ pushes PC and P (with B=0) and loads PC from the IRQ/BRK vector,
// unless the I flag is set, in which case it is a no-op.
func (c *CPU) IRQ(bus Bus) int {
	if c.GetFlag(FlagI) {
		return 0
	}
	c.pushAddr(bus, c.PC)
	c.push(bus, c.P&^uint8(FlagB))
	c.SetFlag(FlagI, true)
	c.PC = c.readVector(bus, memmap.IRQVectorLow, memmap.IRQVectorHigh)
	return 7
}

func (c *CPU) readVector(bus Bus, lo, hi uint16) uint16 {
	l := bus.Read8(lo)
	h := bus.Read8(hi)
	return uint16(h)<<8 | uint16(l)
}

func (c *CPU) push(bus Bus, v uint8) {
	bus.Write8(memmap.StackBase+uint16(c.SP), v)
	c.SP--
}

func (c *CPU) pop(bus Bus) uint8 {
	c.SP++
	return bus.Read8(memmap.StackBase + uint16(c.SP))
}

func (c *CPU) pushAddr(bus Bus, addr uint16) {
	c.push(bus, uint8(addr>>8))
	c.push(bus, uint8(addr))
}

func (c *CPU) popAddr(bus Bus) uint16 {
	lo := c.pop(bus)
	hi := c.pop(bus)
	return uint16(hi)<<8 | uint16(lo)
}

// IllegalOpcodeError reports a Step call that hit a byte with no entry in
// the official opcode table while the Halt policy is in effect.
type IllegalOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *IllegalOpcodeError) Error() string {
	return fmt.Sprintf("mos6502: illegal opcode %#02x at %#04x", e.Opcode, e.PC)
}

func (c *CPU) String() string {
	return fmt.Sprintf("A=%02X X=%02X Y=%02X SP=%02X PC=%04X P=%08b", c.A, c.X, c.Y, c.SP, c.PC, c.P)
}
