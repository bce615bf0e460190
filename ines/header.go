// Package ines implements the iNES ROM file format:
// https://www.nesdev.org/wiki/INES
package ines

import "fmt"

// HeaderSize is the fixed length of an iNES header.
const HeaderSize = 16

var magic = [4]byte{'N', 'E', 'S', 0x1A}

// flags6 bits
const (
	flag6Mirroring   = 1 << 0
	flag6BatteryRAM  = 1 << 1
	flag6Trainer     = 1 << 2
	flag6FourScreen  = 1 << 3
	flag6MapperMask  = 0xF0
)

// flags7 bits
const (
	flag7VSUnisystem  = 1 << 0
	flag7PlayChoice10 = 1 << 1
	flag7NES2Mask     = 0x0C
	flag7NES2Value    = 0x08
	flag7MapperMask   = 0xF0
)

// flags10 bits
const (
	flag10TVMask        = 0x03
	flag10HasPRGRAM     = 1 << 4
	flag10BoardConflict = 1 << 5
)

// TVSystem identifies the television standard a cartridge targets.
type TVSystem int

const (
	TVNTSC TVSystem = iota
	TVPAL
	TVDual
)

// Mirroring identifies which nametable-mirroring mode the PPU should use.
type Mirroring int

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
	MirrorFourScreen
)

// Header is the parsed 16-byte iNES header.
type Header struct {
	prgSize16k uint8
	chrSize8k  uint8
	flags6     uint8
	flags7     uint8
	flags8     uint8
	flags9     uint8
	flags10    uint8
}

// ParseHeader decodes the first 16 bytes of an iNES file. It fails only if
// the magic number does not match or fewer than HeaderSize bytes are
// supplied.
func ParseHeader(b []byte) (*Header, error) {
	if len(b) < HeaderSize {
		return nil, &HeaderError{Kind: ShortHeader, Detail: fmt.Sprintf("need %d bytes, got %d", HeaderSize, len(b))}
	}
	if b[0] != magic[0] || b[1] != magic[1] || b[2] != magic[2] || b[3] != magic[3] {
		return nil, &HeaderError{Kind: InvalidMagic, Detail: fmt.Sprintf("got %v", b[0:4])}
	}
	return &Header{
		prgSize16k: b[4],
		chrSize8k:  b[5],
		flags6:     b[6],
		flags7:     b[7],
		flags8:     b[8],
		flags9:     b[9],
		flags10:    b[10],
	}, nil
}

// PrgSize16k is the number of 16 KiB PRG-ROM units.
func (h *Header) PrgSize16k() uint8 { return h.prgSize16k }

// ChrSize8k is the number of 8 KiB CHR-ROM units; 0 means CHR-RAM.
func (h *Header) ChrSize8k() uint8 { return h.chrSize8k }

// PrgBytes is the total PRG-ROM size in bytes.
func (h *Header) PrgBytes() int { return int(h.prgSize16k) * 16384 }

// ChrBytes is the total CHR-ROM size in bytes.
func (h *Header) ChrBytes() int { return int(h.chrSize8k) * 8192 }

// Mirroring resolves the mirroring mode, giving four-screen priority over
// the single mirroring bit per the iNES convention.
func (h *Header) Mirroring() Mirroring {
	if h.flags6&flag6FourScreen != 0 {
		return MirrorFourScreen
	}
	if h.flags6&flag6Mirroring != 0 {
		return MirrorVertical
	}
	return MirrorHorizontal
}

// HasBatteryBackedPRGRAM reports flags6 bit 1.
func (h *Header) HasBatteryBackedPRGRAM() bool { return h.flags6&flag6BatteryRAM != 0 }

// HasTrainer reports flags6 bit 2.
func (h *Header) HasTrainer() bool { return h.flags6&flag6Trainer != 0 }

// HasFourScreenVRAM reports flags6 bit 3.
func (h *Header) HasFourScreenVRAM() bool { return h.flags6&flag6FourScreen != 0 }

// HasVSUnisystem reports flags7 bit 0.
func (h *Header) HasVSUnisystem() bool { return h.flags7&flag7VSUnisystem != 0 }

// HasPlayChoice10 reports flags7 bit 1.
func (h *Header) HasPlayChoice10() bool { return h.flags7&flag7PlayChoice10 != 0 }

// IsNES2Format reports whether flags7 encodes the NES 2.0 identifier.
func (h *Header) IsNES2Format() bool {
	return h.flags7&flag7NES2Mask == flag7NES2Value
}

// IsINesFormat always reports true for a successfully parsed Header: a
// Header only exists after ParseHeader validated the magic number.
func (h *Header) IsINesFormat() bool { return true }

// Mapper returns the iNES mapper number, assembled from the high nibble of
// flags7 and the high nibble of flags6.
func (h *Header) Mapper() uint8 {
	lo := (h.flags6 & flag6MapperMask) >> 4
	hi := h.flags7 & flag7MapperMask
	return hi | lo
}

// PrgRAMSize8k is the declared PRG-RAM size in 8 KiB units (flags8,
// verbatim — 0 is a valid, if ambiguous, declaration of "none specified").
func (h *Header) PrgRAMSize8k() uint8 { return h.flags8 }

// TVSystem resolves flags10's two low bits into an NTSC/PAL/Dual value.
func (h *Header) TVSystem() TVSystem {
	switch h.flags10 & flag10TVMask {
	case 0:
		return TVNTSC
	case 2:
		return TVPAL
	default:
		return TVDual
	}
}

// HasPRGRAM reports flags10 bit 4.
func (h *Header) HasPRGRAM() bool { return h.flags10&flag10HasPRGRAM != 0 }

// HasBoardConflicts reports flags10 bit 5.
func (h *Header) HasBoardConflicts() bool { return h.flags10&flag10BoardConflict != 0 }

func (h *Header) String() string {
	return fmt.Sprintf("prg=%dx16k chr=%dx8k mapper=%d mirroring=%v flags(%02x,%02x,%02x,%02x,%02x)",
		h.prgSize16k, h.chrSize8k, h.Mapper(), h.Mirroring(), h.flags6, h.flags7, h.flags8, h.flags9, h.flags10)
}
