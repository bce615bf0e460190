package mappers

import "github.com/bdwalton/nescore/ines"

func init() {
	RegisterMapper(0, newNROM)
}

const (
	nromBankSize = 16384
	prgRAMSize   = 8192
)

// nrom implements mapper 0 (NROM): either one 16 KiB PRG-ROM bank mirrored
// across both halves of cartridge PRG space, or two consecutive banks
// (32 KiB) with no mirroring; CHR is ROM or, when the header declares
// chrSize8k() == 0, a writable 8 KiB RAM bank. An 8 KiB PRG-RAM window is
// always exposed at 0x6000-0x7FFF, whatever the header declares.
type nrom struct {
	baseMapper

	prg []byte
	chr []byte

	hasCHRRAM bool
	prgRAM    [prgRAMSize]byte
}

func newNROM(rom *ines.ROM) Mapper {
	n := &nrom{baseMapper: newBaseMapper(0, "NROM", rom)}
	if rom == nil {
		return n
	}

	n.prg = rom.PRG
	if len(rom.CHR) == 0 {
		n.hasCHRRAM = true
		n.chr = make([]byte, 8192)
	} else {
		n.chr = rom.CHR
	}
	return n
}

// PrgRead maps a CPU cartridge-space address (0x4020-0xFFFF, but
// meaningfully 0x8000-0xFFFF for NROM) onto the PRG-ROM image, mirroring
// the single bank when only 16 KiB is present, and serving PRG-RAM for
// the 0x6000-0x7FFF window. Addresses below 0x6000 are unmapped and read
// as 0.
func (n *nrom) PrgRead(addr uint16) uint8 {
	if addr < 0x6000 {
		return 0
	}
	if addr >= 0x6000 && addr < 0x8000 {
		return n.prgRAM[addr-0x6000]
	}
	return n.prg[n.prgOffset(addr)]
}

func (n *nrom) PrgWrite(addr uint16, val uint8) {
	if addr >= 0x6000 && addr < 0x8000 {
		n.prgRAM[addr-0x6000] = val
		return
	}
	// NROM's PRG-ROM is not writable; hardware-accurate NROM carts
	// ignore writes to $8000-$FFFF.
}

func (n *nrom) prgOffset(addr uint16) int {
	off := int(addr - 0x8000)
	if len(n.prg) <= nromBankSize {
		off %= nromBankSize
	}
	return off
}

func (n *nrom) ChrRead(addr uint16) uint8 {
	return n.chr[addr]
}

func (n *nrom) ChrWrite(addr uint16, val uint8) {
	if n.hasCHRRAM {
		n.chr[addr] = val
	}
	// writes to CHR-ROM are ignored.
}
