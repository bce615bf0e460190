package mappers

import (
	"bytes"
	"testing"

	"github.com/bdwalton/nescore/ines"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHeader(t *testing.T, flags6, flags7, prgUnits, chrUnits uint8) *ines.Header {
	t.Helper()
	b := []byte{'N', 'E', 'S', 0x1A, prgUnits, chrUnits, flags6, flags7, 0, 0, 0, 0, 0, 0, 0, 0}
	h, err := ines.ParseHeader(b)
	require.NoError(t, err)
	return h
}

func TestNROM16KMirrors(t *testing.T) {
	h := mustHeader(t, 0, 0, 1, 1)
	prg := bytes.Repeat([]byte{0}, nromBankSize)
	prg[0] = 0x42
	prg[nromBankSize-1] = 0x99
	rom := &ines.ROM{Header: h, PRG: prg, CHR: make([]byte, 8192)}

	m, err := Get(rom)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x42), m.PrgRead(0x8000))
	assert.Equal(t, uint8(0x99), m.PrgRead(0xBFFF))
	// mirrored into the upper half
	assert.Equal(t, uint8(0x42), m.PrgRead(0xC000))
	assert.Equal(t, uint8(0x99), m.PrgRead(0xFFFF))
}

func TestNROM32KNoMirror(t *testing.T) {
	h := mustHeader(t, 0, 0, 2, 1)
	prg := make([]byte, 2*nromBankSize)
	prg[0] = 0x11
	prg[2*nromBankSize-1] = 0x22
	rom := &ines.ROM{Header: h, PRG: prg, CHR: make([]byte, 8192)}

	m, err := Get(rom)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x11), m.PrgRead(0x8000))
	assert.Equal(t, uint8(0x22), m.PrgRead(0xFFFF))
}

func TestNROMCHRRAMFallback(t *testing.T) {
	h := mustHeader(t, 0, 0, 1, 0) // chrUnits == 0 -> CHR-RAM
	rom := &ines.ROM{Header: h, PRG: make([]byte, nromBankSize)}

	m, err := Get(rom)
	require.NoError(t, err)
	m.ChrWrite(0x10, 0x55)
	assert.Equal(t, uint8(0x55), m.ChrRead(0x10))
}

func TestNROMPrgRAMWindow(t *testing.T) {
	h := mustHeader(t, 0, 0, 1, 1)
	rom := &ines.ROM{Header: h, PRG: make([]byte, nromBankSize), CHR: make([]byte, 8192)}

	m, err := Get(rom)
	require.NoError(t, err)
	m.PrgWrite(0x6000, 0x7A)
	assert.Equal(t, uint8(0x7A), m.PrgRead(0x6000))
}

func TestGetUnknownMapper(t *testing.T) {
	h := mustHeader(t, 0xF0, 0xF0, 1, 1) // mapper 0xFF is unregistered
	rom := &ines.ROM{Header: h, PRG: make([]byte, nromBankSize), CHR: make([]byte, 8192)}

	_, err := Get(rom)
	assert.Error(t, err)
}
