// Package mappers implements and registers mappers that are referenced
// numerically by iNES and NES2.0 ROM files.
package mappers

import (
	"fmt"

	"github.com/bdwalton/nescore/ines"
)

// A global registry of mapper constructors, keyed by mapper id.
var ctors = map[uint8]func(*ines.ROM) Mapper{}

// RegisterMapper makes a Mapper constructor available under id. It panics
// on a duplicate id, mirroring the package-init-time registration pattern
// used throughout this codebase.
func RegisterMapper(id uint8, newFn func(*ines.ROM) Mapper) {
	if _, ok := ctors[id]; ok {
		panic(fmt.Sprintf("mappers: id %d already registered", id))
	}
	ctors[id] = newFn
}

// Get constructs the Mapper for rom's declared mapper id, or an error if
// no mapper is registered for it.
func Get(rom *ines.ROM) (Mapper, error) {
	id := rom.Header.Mapper()
	newFn, ok := ctors[id]
	if !ok {
		return nil, fmt.Errorf("mappers: unknown mapper id %d", id)
	}
	return newFn(rom), nil
}

// Mapper abstracts a cartridge board's address decoding for PRG/CHR
// access. Internal 2 KiB RAM is owned by the bus, not the mapper (see
// DESIGN.md) — a mapper only ever sees cartridge-space addresses.
type Mapper interface {
	ID() uint8
	Name() string
	PrgRead(uint16) uint8
	PrgWrite(uint16, uint8)
	ChrRead(uint16) uint8
	ChrWrite(uint16, uint8)
	MirroringMode() ines.Mirroring
	HasSaveRAM() bool
}

// baseMapper factors out the bookkeeping every Mapper implementation
// shares: id/name and a handle on the parsed ROM for mirroring/save-RAM
// predicates.
type baseMapper struct {
	id   uint8
	name string
	rom  *ines.ROM
}

func newBaseMapper(id uint8, name string, rom *ines.ROM) baseMapper {
	return baseMapper{id: id, name: name, rom: rom}
}

func (bm *baseMapper) ID() uint8 { return bm.id }

func (bm *baseMapper) Name() string { return bm.name }

func (bm *baseMapper) String() string { return bm.name }

func (bm *baseMapper) MirroringMode() ines.Mirroring {
	return bm.rom.Header.Mirroring()
}

func (bm *baseMapper) HasSaveRAM() bool {
	return bm.rom.Header.HasBatteryBackedPRGRAM() || bm.rom.Header.HasPRGRAM()
}
