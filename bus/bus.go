// Package bus wires the NES memory map (package memmap) to a cartridge
// mapper and optional PPU/APU device handlers, producing the concrete
// Bus a mos6502.CPU steps against.
package bus

import (
	"github.com/bdwalton/nescore/mappers"
	"github.com/bdwalton/nescore/memmap"
)

// Device is the seam external collaborators (PPU, APU) attach through.
// Addresses passed in are already resolved to device-local offsets (e.g.
// 0x0000-0x0007 for a PPU register, not the raw CPU address).
type Device interface {
	Read(offset uint16) uint8
	Write(offset uint16, val uint8)
}

// DefaultBus is the default, concrete Bus implementation: 2 KiB of
// internal RAM owned directly (not duplicated inside the mapper, unlike
// an earlier draft of this codebase — see DESIGN.md), a cartridge mapper,
// and pluggable PPU/APU device handlers.
type DefaultBus struct {
	ram    [memmap.RAMEnd + 1]uint8
	mapper mappers.Mapper
	ppu    Device
	apu    Device
}

// New constructs a DefaultBus over mapper. PPU/APU devices may be attached
// later with AttachPPU/AttachAPU; until then their address ranges behave
// as open bus (reads return 0, writes are no-ops).
func New(mapper mappers.Mapper) *DefaultBus {
	return &DefaultBus{mapper: mapper}
}

// AttachPPU registers the device that owns the 0x2000-0x3FFF range.
func (b *DefaultBus) AttachPPU(d Device) { b.ppu = d }

// AttachAPU registers the device that owns the 0x4000-0x401F range.
func (b *DefaultBus) AttachAPU(d Device) { b.apu = d }

// Read8 implements mos6502.Bus.
func (b *DefaultBus) Read8(addr uint16) uint8 {
	switch memmap.Classify(addr) {
	case memmap.RegionRAM:
		return b.ram[memmap.MirrorRAM(addr)]
	case memmap.RegionPPU:
		if b.ppu == nil {
			return 0
		}
		return b.ppu.Read(memmap.MirrorPPU(addr) - memmap.PPUStart)
	case memmap.RegionAPUIO:
		if b.apu == nil {
			return 0
		}
		return b.apu.Read(addr - memmap.APUIOStart)
	default:
		return b.mapper.PrgRead(addr)
	}
}

// Write8 implements mos6502.Bus.
func (b *DefaultBus) Write8(addr uint16, val uint8) {
	switch memmap.Classify(addr) {
	case memmap.RegionRAM:
		b.ram[memmap.MirrorRAM(addr)] = val
	case memmap.RegionPPU:
		if b.ppu != nil {
			b.ppu.Write(memmap.MirrorPPU(addr)-memmap.PPUStart, val)
		}
	case memmap.RegionAPUIO:
		if b.apu != nil {
			b.apu.Write(addr-memmap.APUIOStart, val)
		}
	default:
		b.mapper.PrgWrite(addr, val)
	}
}
