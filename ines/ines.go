package ines

import (
	"fmt"
	"io"
	"os"
)

const (
	trainerSize     = 512
	playChoiceInst  = 8192
	playChoicePROM  = 32
)

// PlayChoicePROM is the optional 32-byte hint-screen counterpart shipped
// with some PlayChoice-10 ROM images: 16 bytes of data followed by 16
// bytes of "counter-out" data.
type PlayChoicePROM struct {
	Data       [16]byte
	CounterOut [16]byte
}

// ROM is a fully loaded iNES cartridge image: the parsed header plus every
// payload the header declares.
type ROM struct {
	Header *Header

	Trainer []byte // 512 bytes, present iff Header.HasTrainer()
	PRG     []byte
	CHR     []byte // empty when the header declares CHR-RAM (ChrSize8k() == 0)

	PCInstROM []byte           // present iff Header.HasPlayChoice10()
	PCPROM    *PlayChoicePROM // optional even when PlayChoice-10 is set
}

// Open reads path and loads the full ROM image it contains.
func Open(path string) (*ROM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &RomError{Kind: IoError, Detail: fmt.Sprintf("opening %q", path), Err: err}
	}
	defer f.Close()
	return Load(f)
}

// Load reads a full ROM image from r: header, then trainer (if declared),
// PRG-ROM, CHR-ROM, and optional PlayChoice-10 payloads.
func Load(r io.Reader) (*ROM, error) {
	hbytes := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, hbytes); err != nil {
		return nil, &HeaderError{Kind: ShortHeader, Detail: err.Error()}
	}
	h, err := ParseHeader(hbytes)
	if err != nil {
		return nil, err
	}

	rom := &ROM{Header: h}

	if h.HasTrainer() {
		rom.Trainer = make([]byte, trainerSize)
		if _, err := io.ReadFull(r, rom.Trainer); err != nil {
			return nil, &RomError{Kind: ShortFile, Detail: "reading trainer", Err: err}
		}
	}

	prgLen := h.PrgBytes()
	rom.PRG = make([]byte, prgLen)
	if n, err := io.ReadFull(r, rom.PRG); err != nil {
		return nil, &RomError{Kind: ShortFile, Detail: fmt.Sprintf("reading PRG-ROM (got %d, want %d)", n, prgLen), Err: err}
	}

	chrLen := h.ChrBytes()
	if chrLen > 0 {
		rom.CHR = make([]byte, chrLen)
		if n, err := io.ReadFull(r, rom.CHR); err != nil {
			return nil, &RomError{Kind: ShortFile, Detail: fmt.Sprintf("reading CHR-ROM (got %d, want %d)", n, chrLen), Err: err}
		}
	}

	if h.HasPlayChoice10() {
		rom.PCInstROM = make([]byte, playChoiceInst)
		if n, err := io.ReadFull(r, rom.PCInstROM); err != nil {
			return nil, &RomError{Kind: ShortFile, Detail: fmt.Sprintf("reading PlayChoice INST-ROM (got %d, want %d)", n, playChoiceInst), Err: err}
		}

		// Some old PlayChoice-10 dumps omit the trailing PROM entirely;
		// its absence is not a ShortFile condition.
		pcprom := make([]byte, playChoicePROM)
		if _, err := io.ReadFull(r, pcprom); err == nil {
			rom.PCPROM = &PlayChoicePROM{}
			copy(rom.PCPROM.Data[:], pcprom[:16])
			copy(rom.PCPROM.CounterOut[:], pcprom[16:])
		}
	}

	return rom, nil
}
