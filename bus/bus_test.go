package bus

import (
	"testing"

	"github.com/bdwalton/nescore/ines"
	"github.com/stretchr/testify/assert"
)

// fakeMapper is a minimal in-memory stand-in for mappers.Mapper, in the
// style of the pack's dummy-mapper test fakes.
type fakeMapper struct {
	prg [0x10000]uint8
	chr [0x10000]uint8
}

func (m *fakeMapper) ID() uint8                      { return 0 }
func (m *fakeMapper) Name() string                   { return "fake" }
func (m *fakeMapper) PrgRead(addr uint16) uint8       { return m.prg[addr] }
func (m *fakeMapper) PrgWrite(addr uint16, val uint8) { m.prg[addr] = val }
func (m *fakeMapper) ChrRead(addr uint16) uint8       { return m.chr[addr] }
func (m *fakeMapper) ChrWrite(addr uint16, val uint8) { m.chr[addr] = val }
func (m *fakeMapper) MirroringMode() ines.Mirroring   { return ines.MirrorHorizontal }
func (m *fakeMapper) HasSaveRAM() bool                { return false }

type fakeDevice struct {
	reg [8]uint8
}

func (d *fakeDevice) Read(offset uint16) uint8       { return d.reg[offset] }
func (d *fakeDevice) Write(offset uint16, val uint8) { d.reg[offset] = val }

func TestRAMMirroring(t *testing.T) {
	b := New(&fakeMapper{})
	b.Write8(0x0000, 0x42)
	assert.Equal(t, uint8(0x42), b.Read8(0x0800))
	assert.Equal(t, uint8(0x42), b.Read8(0x1000))
	assert.Equal(t, uint8(0x42), b.Read8(0x1800))
}

func TestPPUMirroringOpenBusWithoutDevice(t *testing.T) {
	b := New(&fakeMapper{})
	assert.Equal(t, uint8(0), b.Read8(0x2000))
	b.Write8(0x2000, 0xFF) // no-op, no device attached
	assert.Equal(t, uint8(0), b.Read8(0x2000))
}

func TestPPUMirroringWithDevice(t *testing.T) {
	b := New(&fakeMapper{})
	d := &fakeDevice{}
	b.AttachPPU(d)

	b.Write8(0x2003, 0x7A)
	assert.Equal(t, uint8(0x7A), b.Read8(0x2003))
	assert.Equal(t, uint8(0x7A), b.Read8(0x200B)) // mirrored every 8 bytes
	assert.Equal(t, uint8(0x7A), b.Read8(0x3FFB))
}

func TestAPUOpenBusAndAttached(t *testing.T) {
	b := New(&fakeMapper{})
	assert.Equal(t, uint8(0), b.Read8(0x4000))

	d := &fakeDevice{}
	b.AttachAPU(d)
	b.Write8(0x4000, 0x13)
	assert.Equal(t, uint8(0x13), b.Read8(0x4000))
}

func TestCartridgeDelegatesToMapper(t *testing.T) {
	m := &fakeMapper{}
	b := New(m)
	b.Write8(0x8000, 0x99)
	assert.Equal(t, uint8(0x99), m.prg[0x8000])
	assert.Equal(t, uint8(0x99), b.Read8(0x8000))
}
