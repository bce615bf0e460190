// End-to-end test exercising the full data flow described in SPEC_FULL.md
// §2: an iNES image loads, its mapper is selected, a bus is built over
// it, and the CPU fetches and executes instructions straight out of
// cartridge space.
package nescore

import (
	"bytes"
	"testing"

	"github.com/bdwalton/nescore/bus"
	"github.com/bdwalton/nescore/ines"
	"github.com/bdwalton/nescore/mappers"
	"github.com/bdwalton/nescore/mos6502"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildNROMImage(resetLo, resetHi byte, code []byte) []byte {
	prg := make([]byte, 16384)
	copy(prg, code)
	prg[0x3FFC] = resetLo // (0xFFFC - 0x8000) mod 16K: offset within a mirrored 16K bank
	prg[0x3FFD] = resetHi

	header := []byte{'N', 'E', 'S', 0x1A, 1, 1, 0x00, 0x00, 0, 0, 0, 0, 0, 0, 0, 0}
	var buf bytes.Buffer
	buf.Write(header)
	buf.Write(prg)
	buf.Write(bytes.Repeat([]byte{0}, 8192)) // CHR-ROM
	return buf.Bytes()
}

func TestEndToEndLoadAndExecute(t *testing.T) {
	// LDA #$42; STA $0010; BRK
	code := []byte{0xA9, 0x42, 0x85, 0x10, 0x00}
	img := buildNROMImage(0x00, 0x80, code)

	rom, err := ines.Load(bytes.NewReader(img))
	require.NoError(t, err)

	mapper, err := mappers.Get(rom)
	require.NoError(t, err)

	b := bus.New(mapper)
	cpu := mos6502.New()
	cpu.Reset(b)
	assert.Equal(t, uint16(0x8000), cpu.PC)

	_, err = cpu.Step(b) // LDA #$42
	require.NoError(t, err)
	assert.Equal(t, uint8(0x42), cpu.A)

	_, err = cpu.Step(b) // STA $0010
	require.NoError(t, err)
	assert.Equal(t, uint8(0x42), b.Read8(0x0010))
	assert.Equal(t, uint8(0x42), b.Read8(0x0810)) // RAM mirror
}
